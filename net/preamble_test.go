// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"bytes"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

func testPreamble(payloadLen uint32) Preamble {
	return NewPreamble(
		0x18000000, 0x17000000,
		100, BurnchainHeaderHash{1, 2, 3},
		90, BurnchainHeaderHash{4, 5, 6},
		payloadLen,
	)
}

func TestPreambleEncodeDecodeRoundTrip(t *testing.T) {
	p := testPreamble(5)
	p.Seq = 42
	p.AdditionalData = 7

	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if uint32(buf.Len()) != PreambleEncodedSize {
		t.Fatalf("encoded preamble is %d bytes, want %d", buf.Len(), PreambleEncodedSize)
	}

	var got Preamble
	if err := got.Decode(&buf); err != nil {
		t.Fatal(err)
	}
	if got != p {
		t.Fatalf("got %+v, want %+v", got, p)
	}
}

// TestPreambleEncodeMatchesFixture checks the exact 165-byte wire layout
// against a known-good fixture preamble, byte for byte.
func TestPreambleEncodeMatchesFixture(t *testing.T) {
	p := Preamble{
		PeerVersion:           0x01020304,
		NetworkID:             0x05060708,
		Seq:                   0x090a0b0c,
		BurnBlockHeight:       0x00001122,
		BurnStableBlockHeight: 0x00001111,
		AdditionalData:        0x33333333,
		PayloadLen:            0x000007ff,
	}
	for i := range p.BurnBlockHash {
		p.BurnBlockHash[i] = 0x11
	}
	for i := range p.BurnStableBlockHash {
		p.BurnStableBlockHash[i] = 0x22
	}
	for i := range p.Signature {
		p.Signature[i] = 0x44
	}

	want := []byte{
		// peer_version
		0x01, 0x02, 0x03, 0x04,
		// network_id
		0x05, 0x06, 0x07, 0x08,
		// seq
		0x09, 0x0a, 0x0b, 0x0c,
		// burn_block_height
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x11, 0x22,
	}
	want = append(want, bytes.Repeat([]byte{0x11}, 32)...)
	want = append(want,
		// burn_stable_block_height
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x11, 0x11,
	)
	want = append(want, bytes.Repeat([]byte{0x22}, 32)...)
	want = append(want,
		// additional_data
		0x33, 0x33, 0x33, 0x33,
	)
	want = append(want, bytes.Repeat([]byte{0x44}, 65)...)
	want = append(want,
		// payload_len
		0x00, 0x00, 0x07, 0xff,
	)

	if uint32(len(want)) != PreambleEncodedSize {
		t.Fatalf("fixture is %d bytes, want %d", len(want), PreambleEncodedSize)
	}

	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("encoded preamble does not match fixture:\ngot:  %x\nwant: %x", buf.Bytes(), want)
	}

	var got Preamble
	if err := got.Decode(bytes.NewReader(want)); err != nil {
		t.Fatal(err)
	}
	if got != p {
		t.Fatalf("decoded preamble %+v does not match fixture preamble %+v", got, p)
	}
}

func TestPreambleDecodeRejectsSmallPayloadLen(t *testing.T) {
	p := testPreamble(4)
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	var got Preamble
	if err := got.Decode(&buf); err == nil {
		t.Fatal("expected an error for payload_len < 5, got nil")
	}
}

func TestPreambleDecodeRejectsOversizePayloadLen(t *testing.T) {
	p := testPreamble(MaxMessageLen)
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	var got Preamble
	if err := got.Decode(&buf); err == nil {
		t.Fatal("expected an error for payload_len >= MaxMessageLen, got nil")
	}
}

func TestPreambleDecodeRejectsStaleBurnView(t *testing.T) {
	p := NewPreamble(
		0x18000000, 0x17000000,
		90, BurnchainHeaderHash{1, 2, 3},
		100, BurnchainHeaderHash{4, 5, 6},
		5,
	)
	var buf bytes.Buffer
	if err := p.Encode(&buf); err != nil {
		t.Fatal(err)
	}
	var got Preamble
	if err := got.Decode(&buf); err == nil {
		t.Fatal("expected an error when burn_block_height <= burn_stable_block_height, got nil")
	}
}

func TestPreambleSignVerifyRoundTrip(t *testing.T) {
	privkey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	p := testPreamble(0)
	bits := []byte("relayers-and-payload")

	if err := p.Sign(bits, privkey); err != nil {
		t.Fatal(err)
	}
	if err := p.Verify(bits, privkey.PubKey()); err != nil {
		t.Fatalf("verification of an untampered signature failed: %s", err)
	}
}

func TestPreambleVerifyFailsOnTamperedBits(t *testing.T) {
	privkey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	p := testPreamble(0)
	bits := []byte("relayers-and-payload")
	if err := p.Sign(bits, privkey); err != nil {
		t.Fatal(err)
	}

	tampered := []byte("relayers-and-PAYLOAD")
	if err := p.Verify(tampered, privkey.PubKey()); err == nil {
		t.Fatal("expected verification of tampered bits to fail, got nil error")
	}
}

func TestPreambleVerifyFailsOnWrongKey(t *testing.T) {
	privkey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	otherKey, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		t.Fatal(err)
	}
	p := testPreamble(0)
	bits := []byte("relayers-and-payload")
	if err := p.Sign(bits, privkey); err != nil {
		t.Fatal(err)
	}
	if err := p.Verify(bits, otherKey.PubKey()); err == nil {
		t.Fatal("expected verification against the wrong public key to fail, got nil error")
	}
}
