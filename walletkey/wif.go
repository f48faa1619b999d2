// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package walletkey implements the Wallet Import Format (WIF) this
// project's CLI tooling uses to read a node's signing key from a
// copy-pasteable string, adapted from the dcrutil/exccutil WIF codec
// down to the single signature scheme Stacks peers actually sign
// messages with: compressed-public-key secp256k1 ECDSA.
package walletkey

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/decred/base58"
	"github.com/decred/dcrd/chaincfg/chainhash"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ErrMalformedPrivateKey means the decoded WIF payload was the wrong
// length to contain a 32-byte private key, compression flag, and
// checksum, or carried a compression flag other than 0x01 (in which case
// it is returned wrapped).
var ErrMalformedPrivateKey = errors.New("walletkey: malformed private key")

// ErrChecksumMismatch means the WIF's trailing checksum did not match
// the double-SHA256 of the preceding bytes.
var ErrChecksumMismatch = errors.New("walletkey: checksum mismatch")

const (
	privKeyBytesLen = 32
	cksumBytesLen   = 4
)

// WIF is a network-tagged, checksummed, base58-encoded secp256k1 private
// key, always for the compressed public key form Stacks nodes use.
type WIF struct {
	PrivKey *secp256k1.PrivateKey
	NetID   byte
}

// NewWIF wraps privKey for encoding under the given network identifier
// byte.
func NewWIF(privKey *secp256k1.PrivateKey, netID byte) *WIF {
	return &WIF{PrivKey: privKey, NetID: netID}
}

// String returns the base58check encoding: netID ‖ privkey(32) ‖
// compression-flag(0x01) ‖ checksum(4).
func (w *WIF) String() string {
	a := make([]byte, 0, 1+privKeyBytesLen+1+cksumBytesLen)
	a = append(a, w.NetID)
	a = append(a, w.PrivKey.Serialize()...)
	a = append(a, 0x01)
	cksum := chainhash.DoubleHashB(a)[:cksumBytesLen]
	a = append(a, cksum...)
	return base58.Encode(a)
}

// DecodeWIF parses s, requiring it to decode to exactly netID ‖
// privkey(32) ‖ compression-flag ‖ checksum(4) and its checksum to
// verify.
func DecodeWIF(s string) (*WIF, error) {
	decoded := base58.Decode(s)
	if len(decoded) != 1+privKeyBytesLen+1+cksumBytesLen {
		return nil, ErrMalformedPrivateKey
	}

	body := decoded[:1+privKeyBytesLen+1]
	cksum := chainhash.DoubleHashB(body)[:cksumBytesLen]
	if !bytes.Equal(cksum, decoded[len(decoded)-cksumBytesLen:]) {
		return nil, ErrChecksumMismatch
	}

	netID := decoded[0]
	privKeyBytes := decoded[1 : 1+privKeyBytesLen]
	compressFlag := decoded[1+privKeyBytesLen]
	if compressFlag != 0x01 {
		return nil, fmt.Errorf("%w: unrecognized compression flag %#02x", ErrMalformedPrivateKey, compressFlag)
	}

	return &WIF{
		PrivKey: secp256k1.PrivKeyFromBytes(privKeyBytes),
		NetID:   netID,
	}, nil
}
