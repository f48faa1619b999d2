// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"bytes"
	"testing"
)

func TestBitvecLen(t *testing.T) {
	tests := []struct {
		bitlen uint16
		want   uint32
	}{
		{0, 0},
		{1, 1},
		{8, 1},
		{9, 2},
		{16, 2},
		{17, 3},
	}
	for _, test := range tests {
		if got := bitvecLen(test.bitlen); got != test.want {
			t.Errorf("bitvecLen(%d): got %d, want %d", test.bitlen, got, test.want)
		}
	}
}

func TestCompressBools(t *testing.T) {
	tests := []struct {
		bits []bool
		want []byte
	}{
		{nil, []byte{}},
		{[]bool{true}, []byte{0x01}},
		{[]bool{false, true}, []byte{0x02}},
		{
			[]bool{true, false, true, false, true, false, true, false},
			[]byte{0x55},
		},
		{
			[]bool{true, false, true, false, true, false, true, false, true},
			[]byte{0x55, 0x01},
		},
	}
	for _, test := range tests {
		got := compressBools(test.bits)
		if !bytes.Equal(got, test.want) {
			t.Errorf("compressBools(%v): got %v, want %v", test.bits, got, test.want)
		}
	}
}

func TestHasIthBit(t *testing.T) {
	// byte 0 = 0b00000101 (bits 0 and 2 set), bitlen 10
	bv := []byte{0x05, 0x00}
	for i := uint16(0); i < 10; i++ {
		want := i == 0 || i == 2
		if got := hasIthBit(bv, 10, i); got != want {
			t.Errorf("hasIthBit(%d): got %v, want %v", i, got, want)
		}
	}
}

func TestHasIthBitBeyondBitlenIsFalse(t *testing.T) {
	// trailing partial byte carries a garbage high bit that must not leak
	// through once bitlen says it is out of range.
	bv := []byte{0xff}
	if hasIthBit(bv, 3, 3) {
		t.Fatal("expected bit 3 to read false when bitlen is 3, even though the underlying byte has it set")
	}
	if !hasIthBit(bv, 3, 2) {
		t.Fatal("expected bit 2 to read true when bitlen is 3")
	}
}
