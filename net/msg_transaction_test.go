// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"bytes"
	"testing"
)

func TestTransactionDataRoundTrip(t *testing.T) {
	data := TransactionData{Transaction: []byte("a still-encoded StacksTransaction")}
	got := payloadRoundTrip(t, data).(TransactionData)
	if !bytes.Equal(got.Transaction, data.Transaction) {
		t.Fatalf("got %q, want %q", got.Transaction, data.Transaction)
	}
}

func TestTransactionDataDecodeRejectsOversizeLength(t *testing.T) {
	var buf bytes.Buffer
	if err := writeUint32(&buf, MaxMessageLen+1); err != nil {
		t.Fatal(err)
	}
	var got TransactionData
	if err := got.Decode(&buf); err == nil {
		t.Fatal("expected overflow error, got nil")
	} else if e, ok := err.(*Error); !ok || e.Kind != ErrOverflow {
		t.Fatalf("expected ErrOverflow, got %v", err)
	}
}
