// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"net"
	"strconv"

	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/crypto/ripemd160"
)

// PeerAddress is a 16-byte IPv6-form network address. An IPv4 address is
// carried in its IPv4-mapped form, ::ffff:a.b.c.d.
type PeerAddress [16]byte

func (a PeerAddress) encode(w io.Writer) error {
	if _, err := w.Write(a[:]); err != nil {
		return wrapErr(ErrRead, "PeerAddress.encode", "short write", err)
	}
	return nil
}

func (a *PeerAddress) decode(r io.Reader) error {
	return readFull(r, a[:])
}

// toNetIP returns the standard net.IP this address represents; an
// IPv4-mapped address prints in dotted-quad form via net.IP.String.
func (a PeerAddress) toNetIP() net.IP {
	ip := make(net.IP, 16)
	copy(ip, a[:])
	return ip
}

// socketAddrString formats addr/port as a host:port pair suitable for
// substitution into a URL, e.g. "1.2.3.4:20443" or "[::1]:20443".
func socketAddrString(addr PeerAddress, port uint16) string {
	return net.JoinHostPort(addr.toNetIP().String(), strconv.Itoa(int(port)))
}

// ConsensusHash identifies a burnchain consensus state.
type ConsensusHash [20]byte

func (h ConsensusHash) encode(w io.Writer) error {
	if _, err := w.Write(h[:]); err != nil {
		return wrapErr(ErrRead, "ConsensusHash.encode", "short write", err)
	}
	return nil
}

func (h *ConsensusHash) decode(r io.Reader) error {
	return readFull(r, h[:])
}

func (h ConsensusHash) String() string {
	return hex.EncodeToString(h[:])
}

// Hash160 is a 20-byte RIPEMD160(SHA256(x)) digest, used as a compact
// fingerprint of a public key.
type Hash160 [20]byte

// Hash160FromPublicKeyBytes computes RIPEMD160(SHA256(pubkey)), the same
// construction used to derive a Bitcoin-style public key hash.
func Hash160FromPublicKeyBytes(pubkey []byte) Hash160 {
	sum := sha256.Sum256(pubkey)
	r := ripemd160.New()
	r.Write(sum[:])
	var out Hash160
	copy(out[:], r.Sum(nil))
	return out
}

func (h Hash160) encode(w io.Writer) error {
	if _, err := w.Write(h[:]); err != nil {
		return wrapErr(ErrRead, "Hash160.encode", "short write", err)
	}
	return nil
}

func (h *Hash160) decode(r io.Reader) error {
	return readFull(r, h[:])
}

func (h Hash160) String() string {
	return hex.EncodeToString(h[:])
}

// hash32 is the shared 32-byte codec backing BurnchainHeaderHash,
// BlockHeaderHash, and StacksBlockId. It reuses chainhash.Hash's storage
// shape (the same 32-byte array the rest of the dcrd tree uses for block
// and transaction identifiers) without adopting chainhash's
// reversed-for-display convention, since Stacks hashes are not displayed
// byte-reversed the way Bitcoin/Decred hashes are.
type hash32 chainhash.Hash

func (h hash32) encode(w io.Writer) error {
	if _, err := w.Write(h[:]); err != nil {
		return wrapErr(ErrRead, "hash32.encode", "short write", err)
	}
	return nil
}

func (h *hash32) decode(r io.Reader) error {
	return readFull(r, h[:])
}

func (h hash32) String() string {
	return hex.EncodeToString(h[:])
}

// BurnchainHeaderHash identifies a burnchain block.
type BurnchainHeaderHash hash32

func (h BurnchainHeaderHash) encode(w io.Writer) error { return hash32(h).encode(w) }
func (h *BurnchainHeaderHash) decode(r io.Reader) error {
	return (*hash32)(h).decode(r)
}
func (h BurnchainHeaderHash) String() string { return hash32(h).String() }

// BlockHeaderHash identifies a Stacks block (independent of the anchoring
// consensus hash).
type BlockHeaderHash hash32

func (h BlockHeaderHash) encode(w io.Writer) error { return hash32(h).encode(w) }
func (h *BlockHeaderHash) decode(r io.Reader) error {
	return (*hash32)(h).decode(r)
}
func (h BlockHeaderHash) String() string { return hash32(h).String() }

// StacksBlockId is the index hash derived from a (ConsensusHash,
// BlockHeaderHash) pair; it uniquely identifies a Stacks block within its
// fork.
type StacksBlockId hash32

func (h StacksBlockId) encode(w io.Writer) error { return hash32(h).encode(w) }
func (h *StacksBlockId) decode(r io.Reader) error {
	return (*hash32)(h).decode(r)
}
func (h StacksBlockId) String() string { return hash32(h).String() }

// MakeIndexBlockHash computes the StacksBlockId for a (consensus_hash,
// block_header_hash) pair: SHA512/256(consensus_hash || block_header_hash).
func MakeIndexBlockHash(ch ConsensusHash, bhh BlockHeaderHash) StacksBlockId {
	digest := sha512Trunc256(append(append([]byte{}, ch[:]...), bhh[:]...))
	var id StacksBlockId
	copy(id[:], digest[:])
	return id
}
