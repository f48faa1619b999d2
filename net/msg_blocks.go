// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import "io"

// BlocksEntry pairs an anchoring consensus hash with its still-encoded
// StacksBlock bytes (block content decode is out of scope; see
// TransactionData).
type BlocksEntry struct {
	ConsensusHash ConsensusHash
	Block         []byte
}

func (e BlocksEntry) encode(w io.Writer) error {
	if err := e.ConsensusHash.encode(w); err != nil {
		return err
	}
	return writeByteSequence(w, e.Block)
}

// decode reads the entry's block inside a reader bounded to MaxBlockLen,
// so however large the block's length prefix claims to be, the entry can
// consume at most MaxBlockLen bytes of r.
func (e *BlocksEntry) decode(r io.Reader) error {
	if err := e.ConsensusHash.decode(r); err != nil {
		return err
	}
	bounded := newBoundReader(r, MaxBlockLen)
	block, err := readByteSequenceAtMost(bounded, MaxBlockLen)
	if err != nil {
		return err
	}
	e.Block = block
	return nil
}

// BlocksData is an unsolicited batch of pushed blocks.
type BlocksData struct {
	Blocks []BlocksEntry
}

func (d BlocksData) MessageID() StacksMessageID { return IDBlocks }
func (d BlocksData) Name() string               { return "Blocks" }
func (d BlocksData) Description() string        { return "pushed blocks" }

func (d BlocksData) encodeBody(w io.Writer) error {
	if err := writeUint32(w, uint32(len(d.Blocks))); err != nil {
		return err
	}
	for i := range d.Blocks {
		if err := d.Blocks[i].encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (d *BlocksData) Decode(r io.Reader) error {
	n, err := readUint32(r)
	if err != nil {
		return err
	}
	if n > BlocksPushedMax {
		return newErr(ErrOverflow, "BlocksData.Decode", "too many blocks")
	}
	seen := make(map[ConsensusHash]struct{}, n)
	blocks := make([]BlocksEntry, 0, n)
	for i := uint32(0); i < n; i++ {
		var e BlocksEntry
		if err := e.decode(r); err != nil {
			return err
		}
		if _, dup := seen[e.ConsensusHash]; dup {
			return newErr(ErrDeserialize, "BlocksData.Decode", "duplicate consensus_hash")
		}
		seen[e.ConsensusHash] = struct{}{}
		blocks = append(blocks, e)
	}
	d.Blocks = blocks
	return nil
}
