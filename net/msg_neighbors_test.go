// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"bytes"
	"testing"
)

func TestNeighborsDataRoundTrip(t *testing.T) {
	data := NeighborsData{Neighbors: []NeighborAddress{
		testNeighborAddress(1),
		testNeighborAddress(2),
	}}
	got := payloadRoundTrip(t, data).(NeighborsData)
	if len(got.Neighbors) != len(data.Neighbors) {
		t.Fatalf("got %d neighbors, want %d", len(got.Neighbors), len(data.Neighbors))
	}
}

func TestNeighborsDataDecodeRejectsOverflow(t *testing.T) {
	var buf bytes.Buffer
	if err := writeUint32(&buf, MaxNeighborsDataLen+1); err != nil {
		t.Fatal(err)
	}
	var got NeighborsData
	if err := got.Decode(&buf); err == nil {
		t.Fatal("expected overflow error, got nil")
	} else if e, ok := err.(*Error); !ok || e.Kind != ErrOverflow {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}
