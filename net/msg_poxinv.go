// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import "io"

// GetPoxInv requests a reward-cycle PoX inventory bitvec anchored at a
// consensus hash.
type GetPoxInv struct {
	ConsensusHash ConsensusHash
	NumCycles     uint16
}

func (d GetPoxInv) MessageID() StacksMessageID { return IDGetPoxInv }
func (d GetPoxInv) Name() string               { return "GetPoxInv" }
func (d GetPoxInv) Description() string        { return "request a PoX reward-cycle inventory" }

func (d GetPoxInv) encodeBody(w io.Writer) error {
	if err := d.ConsensusHash.encode(w); err != nil {
		return err
	}
	return writeUint16(w, d.NumCycles)
}

func (d *GetPoxInv) Decode(r io.Reader) error {
	var tmp GetPoxInv
	if err := tmp.ConsensusHash.decode(r); err != nil {
		return err
	}
	numCycles, err := readUint16(r)
	if err != nil {
		return err
	}
	if err := validatePoxInvBitlen(numCycles); err != nil {
		return err
	}
	tmp.NumCycles = numCycles
	*d = tmp
	return nil
}

func validatePoxInvBitlen(bitlen uint16) error {
	if bitlen == 0 {
		return newErr(ErrDeserialize, "validatePoxInvBitlen", "bitlen must be at least 1")
	}
	if uint64(bitlen) > GetPoxInvMaxBitlen {
		return newErr(ErrOverflow, "validatePoxInvBitlen", "bitlen exceeds GetPoxInvMaxBitlen")
	}
	return nil
}

// PoxInvData is the reply to GetPoxInv: a bitvec over reward cycles.
type PoxInvData struct {
	Bitlen    uint16
	PoxBitvec []byte
}

func (d PoxInvData) MessageID() StacksMessageID { return IDPoxInv }
func (d PoxInvData) Name() string               { return "PoxInv" }
func (d PoxInvData) Description() string        { return "PoX reward-cycle inventory" }

// HasIthRewardCycle reports whether reward cycle i is marked present.
func (d PoxInvData) HasIthRewardCycle(i uint16) bool {
	return hasIthBit(d.PoxBitvec, d.Bitlen, i)
}

func (d PoxInvData) encodeBody(w io.Writer) error {
	if err := writeUint16(w, d.Bitlen); err != nil {
		return err
	}
	return writeByteSequence(w, d.PoxBitvec)
}

func (d *PoxInvData) Decode(r io.Reader) error {
	bitlen, err := readUint16(r)
	if err != nil {
		return err
	}
	if err := validatePoxInvBitlen(bitlen); err != nil {
		return err
	}
	want := bitvecLen(bitlen)
	bv, err := readByteSequenceExact(r, want)
	if err != nil {
		return err
	}
	d.Bitlen = bitlen
	d.PoxBitvec = bv
	return nil
}
