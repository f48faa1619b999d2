// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import "io"

// GetBlocksInv requests a block/microblock-stream presence inventory
// anchored at a consensus hash.
type GetBlocksInv struct {
	ConsensusHash ConsensusHash
	NumBlocks     uint16
}

func (d GetBlocksInv) MessageID() StacksMessageID { return IDGetBlocksInv }
func (d GetBlocksInv) Name() string               { return "GetBlocksInv" }
func (d GetBlocksInv) Description() string        { return "request a block inventory" }

func (d GetBlocksInv) encodeBody(w io.Writer) error {
	if err := d.ConsensusHash.encode(w); err != nil {
		return err
	}
	return writeUint16(w, d.NumBlocks)
}

func (d *GetBlocksInv) Decode(r io.Reader) error {
	var tmp GetBlocksInv
	if err := tmp.ConsensusHash.decode(r); err != nil {
		return err
	}
	numBlocks, err := readUint16(r)
	if err != nil {
		return err
	}
	if numBlocks < 1 {
		return newErr(ErrDeserialize, "GetBlocksInv.Decode", "num_blocks must be at least 1")
	}
	tmp.NumBlocks = numBlocks
	*d = tmp
	return nil
}

// BlocksInvData reports, for each of bitlen consecutive blocks starting
// at the requested anchor, whether the block and its microblock stream
// are present.
type BlocksInvData struct {
	Bitlen            uint16
	BlockBitvec       []byte
	MicroblocksBitvec []byte
}

func (d BlocksInvData) MessageID() StacksMessageID { return IDBlocksInv }
func (d BlocksInvData) Name() string               { return "BlocksInv" }
func (d BlocksInvData) Description() string        { return "block and microblock presence inventory" }

// HasIthBlock reports whether the block at offset i is marked present.
func (d BlocksInvData) HasIthBlock(i uint16) bool {
	return hasIthBit(d.BlockBitvec, d.Bitlen, i)
}

// HasIthMicroblockStream reports whether the microblock stream at offset
// i is marked present.
func (d BlocksInvData) HasIthMicroblockStream(i uint16) bool {
	return hasIthBit(d.MicroblocksBitvec, d.Bitlen, i)
}

func (d BlocksInvData) encodeBody(w io.Writer) error {
	if err := writeUint16(w, d.Bitlen); err != nil {
		return err
	}
	if err := writeByteSequence(w, d.BlockBitvec); err != nil {
		return err
	}
	return writeByteSequence(w, d.MicroblocksBitvec)
}

func (d *BlocksInvData) Decode(r io.Reader) error {
	bitlen, err := readUint16(r)
	if err != nil {
		return err
	}
	if bitlen < 1 {
		return newErr(ErrDeserialize, "BlocksInvData.Decode", "bitlen must be at least 1")
	}
	want := bitvecLen(bitlen)
	blockBv, err := readByteSequenceExact(r, want)
	if err != nil {
		return err
	}
	mblockBv, err := readByteSequenceExact(r, want)
	if err != nil {
		return err
	}
	d.Bitlen = bitlen
	d.BlockBitvec = blockBv
	d.MicroblocksBitvec = mblockBv
	return nil
}
