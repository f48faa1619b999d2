// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package atlas

import (
	"testing"

	p2p "github.com/stacks-network/stacks-p2p/net"
)

func testAttachment(height uint64, ch byte, page, pos uint32) AttachmentInstance {
	return AttachmentInstance{
		PageIndex:       page,
		PositionInPage:  pos,
		BlockHeight:     height,
		ConsensusHash:   p2p.ConsensusHash{ch},
		BlockHeaderHash: p2p.BlockHeaderHash{ch},
	}
}

func TestAddRequestAdoptsAnchorFromFirstEntry(t *testing.T) {
	r := New()
	a := testAttachment(100, 1, 0, 0)
	if !r.AddRequest(a) {
		t.Fatal("AddRequest on an empty request should never be refused")
	}
	if r.BlockHeight != 100 {
		t.Fatalf("got block height %d, want 100", r.BlockHeight)
	}
	if r.ConsensusHash != a.ConsensusHash || r.BlockHeaderHash != a.BlockHeaderHash {
		t.Fatal("anchor was not adopted from the first entry")
	}
}

func TestAddRequestRefusesDifferentAnchorOnceNonEmpty(t *testing.T) {
	r := New()
	r.AddRequest(testAttachment(100, 1, 0, 0))

	other := testAttachment(100, 2, 1, 1)
	if r.AddRequest(other) {
		t.Fatal("expected AddRequest to refuse an entry anchored to a different block")
	}
	if len(r.GetPagesIndexes()) != 1 {
		t.Fatal("a refused AddRequest must not mutate the request")
	}
}

func TestAddRequestStrictlyGreaterHeightWins(t *testing.T) {
	r := New()
	r.AddRequest(testAttachment(100, 1, 0, 0))
	// same block (same consensus_hash/header_hash logically would differ in
	// a real scenario, but IsAttachmentInSameBlock only looks at the hash
	// pair, so keep them identical to stay within the same group while
	// varying only the height).
	second := testAttachment(100, 1, 0, 1)
	second.BlockHeight = 150
	r.AddRequest(second)

	if r.BlockHeight != 150 {
		t.Fatalf("got block height %d, want 150 (strict > adopts the new height)", r.BlockHeight)
	}
}

func TestAddRequestTieKeepsEarliestAnchor(t *testing.T) {
	r := New()
	first := testAttachment(100, 1, 0, 0)
	r.AddRequest(first)

	tie := testAttachment(100, 1, 0, 1)
	tie.ConsensusHash[5] = 0xff // would be a different anchor if adopted
	r.AddRequest(tie)

	if r.ConsensusHash != first.ConsensusHash {
		t.Fatal("a tied block height must not overwrite the earliest anchor")
	}
}

func TestAddRequestNeverAdoptsBurnBlockHeightFromAttachment(t *testing.T) {
	r := New()
	r.BurnBlockHeight = 42
	r.AddRequest(testAttachment(100, 1, 0, 0))
	if r.BurnBlockHeight != 42 {
		t.Fatalf("got burn_block_height %d, want unchanged 42", r.BurnBlockHeight)
	}
}

func TestGetPagesIndexes(t *testing.T) {
	r := New()
	r.AddRequest(testAttachment(100, 1, 0, 0))
	r.AddRequest(testAttachment(100, 1, 1, 0))
	r.AddRequest(testAttachment(100, 1, 1, 1))

	pages := r.GetPagesIndexes()
	if len(pages) != 2 {
		t.Fatalf("got %d distinct pages, want 2", len(pages))
	}
	if _, ok := pages[0]; !ok {
		t.Error("expected page 0 to be present")
	}
	if _, ok := pages[1]; !ok {
		t.Error("expected page 1 to be present")
	}
}

func TestGetStacksBlockIdMatchesMakeIndexBlockHash(t *testing.T) {
	r := New()
	r.AddRequest(testAttachment(100, 1, 0, 0))
	want := p2p.MakeIndexBlockHash(r.ConsensusHash, r.BlockHeaderHash)
	if got := r.GetStacksBlockId(); got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestIdentityExcludesAttachmentMap(t *testing.T) {
	r1 := New()
	r1.AddRequest(testAttachment(100, 1, 0, 0))

	r2 := New()
	r2.AddRequest(testAttachment(100, 1, 5, 9))

	if r1.Identity() != r2.Identity() {
		t.Fatal("two requests anchored to the same block should share an identity regardless of entries")
	}
}

func TestIsAttachmentInSameBlock(t *testing.T) {
	r := New()
	r.AddRequest(testAttachment(100, 1, 0, 0))

	if !r.IsAttachmentInSameBlock(testAttachment(100, 1, 9, 9)) {
		t.Fatal("expected an attachment sharing the anchor hash pair to be in the same block")
	}
	if r.IsAttachmentInSameBlock(testAttachment(100, 2, 9, 9)) {
		t.Fatal("expected an attachment with a different anchor hash pair to not be in the same block")
	}
}
