// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import "io"

// TransactionData wraps a StacksTransaction. Transaction content (inputs,
// post-conditions, Clarity payloads, ...) is an external codec this
// package does not implement; it is carried here as its still-encoded
// bytes, a length-prefixed byte sequence capped at MaxMessageLen.
type TransactionData struct {
	Transaction []byte
}

func (d TransactionData) MessageID() StacksMessageID { return IDTransaction }
func (d TransactionData) Name() string               { return "Transaction" }
func (d TransactionData) Description() string        { return "a relayed Stacks transaction" }

func (d TransactionData) encodeBody(w io.Writer) error {
	return writeByteSequence(w, d.Transaction)
}

func (d *TransactionData) Decode(r io.Reader) error {
	tx, err := readByteSequenceAtMost(r, MaxMessageLen)
	if err != nil {
		return err
	}
	d.Transaction = tx
	return nil
}
