// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"bytes"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// recoveryCodeOffset is the base ecdsa.SignCompact adds to the raw 0..3
// recovery id before writing it as the compact signature's leading byte:
// 27 for an uncompressed key, +4 more when the key is compressed. Stacks
// public keys on the wire are always the 33-byte compressed form, so the
// offset is fixed at 31. MessageSignature stores the raw recovery id
// instead (per the wire format), so signing/verifying must add and strip
// this offset at the boundary with the ecdsa package.
const recoveryCodeOffset = 27 + 4

// signRecoverable produces a recoverable secp256k1 signature over digest
// and stores it as a raw 1-byte-recid + r(32) + s(32) MessageSignature.
func signRecoverable(privkey *secp256k1.PrivateKey, digest []byte) (MessageSignature, error) {
	compact := ecdsa.SignCompact(privkey, digest, true)
	var sig MessageSignature
	sig[0] = compact[0] - recoveryCodeOffset
	copy(sig[1:], compact[1:])
	return sig, nil
}

// verifyRecoverable recovers the public key implied by sig over digest and
// reports whether it matches pubkey's compressed encoding. It returns an
// error only when the signature itself fails to recover a point (malformed
// signature, not a mismatched key).
func verifyRecoverable(pubkey *secp256k1.PublicKey, sig MessageSignature, digest []byte) (bool, error) {
	compact := make([]byte, 65)
	compact[0] = sig[0] + recoveryCodeOffset
	copy(compact[1:], sig[1:])

	recovered, _, err := ecdsa.RecoverCompact(compact, digest)
	if err != nil {
		return false, err
	}
	return bytes.Equal(recovered.SerializeCompressed(), pubkey.SerializeCompressed()), nil
}
