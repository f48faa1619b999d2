// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"bytes"
	"testing"
)

func TestBlocksDataRoundTrip(t *testing.T) {
	data := BlocksData{Blocks: []BlocksEntry{
		{ConsensusHash: ConsensusHash{1}, Block: []byte("block-one")},
		{ConsensusHash: ConsensusHash{2}, Block: []byte("block-two")},
	}}
	got := payloadRoundTrip(t, data).(BlocksData)
	if len(got.Blocks) != len(data.Blocks) {
		t.Fatalf("got %d blocks, want %d", len(got.Blocks), len(data.Blocks))
	}
	for i := range data.Blocks {
		if !bytes.Equal(got.Blocks[i].Block, data.Blocks[i].Block) {
			t.Errorf("block %d: got %q, want %q", i, got.Blocks[i].Block, data.Blocks[i].Block)
		}
	}
}

func TestBlocksDataDecodeRejectsTooMany(t *testing.T) {
	var buf bytes.Buffer
	if err := writeUint32(&buf, BlocksPushedMax+1); err != nil {
		t.Fatal(err)
	}
	var got BlocksData
	if err := got.Decode(&buf); err == nil {
		t.Fatal("expected overflow error, got nil")
	} else if e, ok := err.(*Error); !ok || e.Kind != ErrOverflow {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}

func TestBlocksDataDecodeRejectsDuplicateConsensusHash(t *testing.T) {
	entry := BlocksEntry{ConsensusHash: ConsensusHash{5}, Block: []byte("x")}
	data := BlocksData{Blocks: []BlocksEntry{entry, entry}}

	var buf bytes.Buffer
	if err := data.encodeBody(&buf); err != nil {
		t.Fatal(err)
	}
	var got BlocksData
	if err := got.Decode(&buf); err == nil {
		t.Fatal("expected a duplicate consensus_hash error, got nil")
	} else if e, ok := err.(*Error); !ok || e.Kind != ErrDeserialize {
		t.Fatalf("expected ErrDeserialize, got %v", err)
	}
}
