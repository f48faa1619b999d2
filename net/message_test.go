// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"bytes"
	"testing"
)

// payloadRoundTrip encodes msg via EncodePayload, decodes it back via
// DecodePayload, and returns the result for the caller to inspect.
func payloadRoundTrip(t *testing.T, msg StacksMessageType) StacksMessageType {
	t.Helper()
	var buf bytes.Buffer
	if err := EncodePayload(&buf, msg); err != nil {
		t.Fatalf("encode %s: %s", msg.Name(), err)
	}
	got, err := DecodePayload(&buf)
	if err != nil {
		t.Fatalf("decode %s: %s", msg.Name(), err)
	}
	if got.MessageID() != msg.MessageID() {
		t.Fatalf("decoded message id %s, want %s", got.MessageID(), msg.MessageID())
	}
	return got
}

func TestDecodePayloadDispatchesEveryVariant(t *testing.T) {
	var handshake HandshakeData
	handshake.Port = 20444
	handshake.DataURL = "https://example.com"

	variants := []StacksMessageType{
		handshake,
		HandshakeAcceptData{Handshake: handshake, HeartbeatInterval: 60},
		HandshakeRejectData{},
		GetNeighborsData{},
		NeighborsData{Neighbors: []NeighborAddress{testNeighborAddress(1)}},
		GetPoxInv{ConsensusHash: ConsensusHash{1}, NumCycles: 10},
		PoxInvData{Bitlen: 10, PoxBitvec: compressBools(make([]bool, 10))},
		GetBlocksInv{ConsensusHash: ConsensusHash{1}, NumBlocks: 10},
		BlocksInvData{
			Bitlen:            10,
			BlockBitvec:       compressBools(make([]bool, 10)),
			MicroblocksBitvec: compressBools(make([]bool, 10)),
		},
		BlocksAvailableData{Available: []BlocksAvailableEntry{{ConsensusHash: ConsensusHash{1}}}},
		MicroblocksAvailableData{Available: []BlocksAvailableEntry{{ConsensusHash: ConsensusHash{1}}}},
		BlocksData{Blocks: []BlocksEntry{{ConsensusHash: ConsensusHash{1}, Block: []byte("block")}}},
		MicroblocksData{Microblocks: [][]byte{[]byte("mb1"), []byte("mb2")}},
		TransactionData{Transaction: []byte("tx")},
		NackData{ErrorCode: 1},
		PingData{Nonce: 7},
		PongData{Nonce: 7},
		NatPunchRequestData{Nonce: 9},
		NatPunchData{Port: 20444, Nonce: 9},
	}

	for _, v := range variants {
		payloadRoundTrip(t, v)
	}
}

func TestDecodePayloadRejectsReservedTag(t *testing.T) {
	var buf bytes.Buffer
	if err := writeUint8(&buf, uint8(IDReserved)); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodePayload(&buf); err == nil {
		t.Fatal("expected decoding the reserved tag to fail, got nil")
	}
}

func TestDecodePayloadRejectsUnknownTag(t *testing.T) {
	var buf bytes.Buffer
	if err := writeUint8(&buf, 200); err != nil {
		t.Fatal(err)
	}
	if _, err := DecodePayload(&buf); err == nil {
		t.Fatal("expected decoding an unknown tag to fail, got nil")
	}
}

func TestMessageIDString(t *testing.T) {
	if got, want := IDHandshake.String(), "Handshake"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := IDReserved.String(), "Reserved"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
	if got, want := StacksMessageID(200).String(), "Unknown"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
