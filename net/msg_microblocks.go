// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import "io"

// MicroblocksData is a microblock stream anchored to a Stacks block,
// identified by its index block hash. Individual microblock content
// decode is out of scope (see TransactionData); each is carried as its
// still-encoded, length-prefixed bytes.
type MicroblocksData struct {
	IndexAnchorBlock StacksBlockId
	Microblocks      [][]byte
}

func (d MicroblocksData) MessageID() StacksMessageID { return IDMicroblocks }
func (d MicroblocksData) Name() string               { return "Microblocks" }
func (d MicroblocksData) Description() string        { return "a pushed microblock stream" }

func (d MicroblocksData) encodeBody(w io.Writer) error {
	if err := d.IndexAnchorBlock.encode(w); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(d.Microblocks))); err != nil {
		return err
	}
	for i := range d.Microblocks {
		if err := writeByteSequence(w, d.Microblocks[i]); err != nil {
			return err
		}
	}
	return nil
}

// Decode reads the whole microblock sequence through a reader bounded to
// MaxMessageLen: the preamble already caps the overall message this body
// lives in, but the bound is reasserted here so the sequence can never
// run away even if this decoder is ever invoked on an unbounded source.
func (d *MicroblocksData) Decode(r io.Reader) error {
	if err := d.IndexAnchorBlock.decode(r); err != nil {
		return err
	}
	bounded := newBoundReader(r, MaxMessageLen)

	n, err := readUint32(bounded)
	if err != nil {
		return err
	}
	// n is attacker-controlled and can be as large as 2^32-1; unlike
	// readByteSequenceAtMost's own length prefix (capped by max below),
	// nothing here bounds n directly, so the slice is grown one append
	// at a time instead of being pre-sized with make([][]byte, 0, n).
	// Each iteration still has to read real bytes out of bounded, which
	// is itself capped at MaxMessageLen, so the loop can never run
	// longer than the bytes actually available allow.
	var microblocks [][]byte
	for i := uint32(0); i < n; i++ {
		mb, err := readByteSequenceAtMost(bounded, MaxMessageLen)
		if err != nil {
			return err
		}
		microblocks = append(microblocks, mb)
	}
	d.Microblocks = microblocks
	return nil
}
