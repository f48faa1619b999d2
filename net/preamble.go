// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"bytes"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Preamble is the fixed-size header carried by every StacksMessage: network
// identity, sequencing, chain-tip context, signature, and body length.
type Preamble struct {
	PeerVersion           uint32
	NetworkID             uint32
	Seq                   uint32
	BurnBlockHeight       uint64
	BurnBlockHash         BurnchainHeaderHash
	BurnStableBlockHeight uint64
	BurnStableBlockHash   BurnchainHeaderHash
	AdditionalData        uint32
	Signature             MessageSignature
	PayloadLen            uint32
}

// NewPreamble builds an unsigned preamble (zero signature, seq 0) from the
// chain-tip fields a BurnchainView supplies.
func NewPreamble(
	peerVersion, networkID uint32,
	blockHeight uint64,
	burnBlockHash BurnchainHeaderHash,
	stableBlockHeight uint64,
	stableBurnBlockHash BurnchainHeaderHash,
	payloadLen uint32,
) Preamble {
	return Preamble{
		PeerVersion:           peerVersion,
		NetworkID:             networkID,
		BurnBlockHeight:       blockHeight,
		BurnBlockHash:         burnBlockHash,
		BurnStableBlockHeight: stableBlockHeight,
		BurnStableBlockHash:   stableBurnBlockHash,
		PayloadLen:            payloadLen,
	}
}

// Encode writes the preamble in declared field order. It never consumes or
// produces more than PreambleEncodedSize bytes.
func (p Preamble) Encode(w io.Writer) error {
	if err := writeUint32(w, p.PeerVersion); err != nil {
		return err
	}
	if err := writeUint32(w, p.NetworkID); err != nil {
		return err
	}
	if err := writeUint32(w, p.Seq); err != nil {
		return err
	}
	if err := writeUint64(w, p.BurnBlockHeight); err != nil {
		return err
	}
	if err := p.BurnBlockHash.encode(w); err != nil {
		return err
	}
	if err := writeUint64(w, p.BurnStableBlockHeight); err != nil {
		return err
	}
	if err := p.BurnStableBlockHash.encode(w); err != nil {
		return err
	}
	if err := writeUint32(w, p.AdditionalData); err != nil {
		return err
	}
	if err := p.Signature.encode(w); err != nil {
		return err
	}
	return writeUint32(w, p.PayloadLen)
}

// Decode reads all preamble fields and enforces the structural invariants:
// payload_len must be at least 5 (an empty relayer vector plus a type tag)
// and strictly less than MaxMessageLen, and burn_block_height must exceed
// burn_stable_block_height.
func (p *Preamble) Decode(r io.Reader) error {
	var tmp Preamble
	var err error
	if tmp.PeerVersion, err = readUint32(r); err != nil {
		return err
	}
	if tmp.NetworkID, err = readUint32(r); err != nil {
		return err
	}
	if tmp.Seq, err = readUint32(r); err != nil {
		return err
	}
	if tmp.BurnBlockHeight, err = readUint64(r); err != nil {
		return err
	}
	if err = tmp.BurnBlockHash.decode(r); err != nil {
		return err
	}
	if tmp.BurnStableBlockHeight, err = readUint64(r); err != nil {
		return err
	}
	if err = tmp.BurnStableBlockHash.decode(r); err != nil {
		return err
	}
	if tmp.AdditionalData, err = readUint32(r); err != nil {
		return err
	}
	if err = tmp.Signature.decode(r); err != nil {
		return err
	}
	if tmp.PayloadLen, err = readUint32(r); err != nil {
		return err
	}

	// minimum is 5 bytes: a zero-length relayer vector (4 bytes of zero)
	// plus a 1-byte payload type tag.
	if tmp.PayloadLen < 5 {
		return newErr(ErrDeserialize, "Preamble.Decode", "payload_len is too small")
	}
	if tmp.PayloadLen >= MaxMessageLen {
		return newErr(ErrDeserialize, "Preamble.Decode", "payload_len is too big")
	}
	if tmp.BurnBlockHeight <= tmp.BurnStableBlockHeight {
		return newErr(ErrDeserialize, "Preamble.Decode", "burn_block_height <= burn_stable_block_height")
	}

	*p = tmp
	return nil
}

// signingDigest computes SHA-512/256(encode(preamble-with-blanked-signature)
// || messageBits). It never mutates p; it operates on a value copy, which in
// Go is already the default behavior of assignment, so there is no shared
// mutable state to restore on any exit path.
func (p Preamble) signingDigest(messageBits []byte) ([32]byte, error) {
	blanked := p
	blanked.Signature = EmptyMessageSignature

	var buf bytes.Buffer
	if err := blanked.Encode(&buf); err != nil {
		return [32]byte{}, err
	}
	buf.Write(messageBits)
	return sha512Trunc256(buf.Bytes()), nil
}

// Sign computes the canonical signing digest over messageBits (which must
// equal the encoded relayers followed by the encoded payload) and stores
// the resulting recoverable secp256k1 signature in p.Signature.
func (p *Preamble) Sign(messageBits []byte, privkey *secp256k1.PrivateKey) error {
	digest, err := p.signingDigest(messageBits)
	if err != nil {
		return err
	}
	sig, err := signRecoverable(privkey, digest[:])
	if err != nil {
		return wrapErr(ErrSigning, "Preamble.Sign", "secp256k1 signing failed", err)
	}
	p.Signature = sig
	return nil
}

// Verify recomputes the canonical signing digest (temporarily treating the
// stored signature as blanked, without mutating p) and checks it against
// p.Signature under pubkey.
func (p Preamble) Verify(messageBits []byte, pubkey *secp256k1.PublicKey) error {
	digest, err := p.signingDigest(messageBits)
	if err != nil {
		return err
	}
	ok, err := verifyRecoverable(pubkey, p.Signature, digest[:])
	if err != nil {
		return wrapErr(ErrVerifying, "Preamble.Verify", "failed to verify signature", err)
	}
	if !ok {
		return newErr(ErrVerifying, "Preamble.Verify", "invalid message signature")
	}
	return nil
}
