// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import "crypto/sha512"

// sha512Trunc256 computes SHA-512/256, the truncated SHA-512 variant used
// for both the preamble signing digest and the StacksBlockId derivation.
// The standard library implements this natively; no third-party hash
// package is needed (see DESIGN.md).
func sha512Trunc256(data []byte) [32]byte {
	return sha512.Sum512_256(data)
}
