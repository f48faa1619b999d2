// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package atlas groups attachment-inventory requests that share a single
// anchor block.
package atlas

import (
	p2p "github.com/stacks-network/stacks-p2p/net"
)

// AttachmentInstance identifies one attachment within a block's
// attachment pages.
type AttachmentInstance struct {
	PageIndex       uint32
	PositionInPage  uint32
	ContentHash     p2p.Hash160
	BlockHeight     uint64
	ConsensusHash   p2p.ConsensusHash
	BlockHeaderHash p2p.BlockHeaderHash
}

type pageSlot struct {
	PageIndex      uint32
	PositionInPage uint32
}

// AnchorIdentity is the subset of AttachmentsInvRequest fields used as
// its identity: two requests with the same anchor identity describe the
// same set of candidate attachments, regardless of which individual
// entries happened to populate their maps.
type AnchorIdentity struct {
	BlockHeight     uint64
	ConsensusHash   p2p.ConsensusHash
	BlockHeaderHash p2p.BlockHeaderHash
	BurnBlockHeight uint64
}

// AttachmentsInvRequest groups attachment requests that all anchor to
// the same (consensus_hash, block_header_hash) block.
type AttachmentsInvRequest struct {
	BlockHeight        uint64
	ConsensusHash      p2p.ConsensusHash
	BlockHeaderHash    p2p.BlockHeaderHash
	BurnBlockHeight    uint64
	missingAttachments map[pageSlot]p2p.Hash160
}

// New returns an empty request with a zeroed anchor.
func New() *AttachmentsInvRequest {
	return &AttachmentsInvRequest{
		missingAttachments: make(map[pageSlot]p2p.Hash160),
	}
}

// IsAttachmentInSameBlock reports whether attachment anchors to the same
// block as the request's current anchor.
func (r *AttachmentsInvRequest) IsAttachmentInSameBlock(attachment AttachmentInstance) bool {
	return r.BlockHeaderHash == attachment.BlockHeaderHash && r.ConsensusHash == attachment.ConsensusHash
}

// AddRequest records attachment in the group. It refuses (returning
// false, without mutating the request) once the group is non-empty and
// attachment anchors to a different block. The anchor triple is adopted
// from whichever attachment carries the greatest block height seen so
// far; ties retain whichever attachment arrived first.
func (r *AttachmentsInvRequest) AddRequest(attachment AttachmentInstance) bool {
	if len(r.missingAttachments) != 0 && !r.IsAttachmentInSameBlock(attachment) {
		return false
	}

	key := pageSlot{PageIndex: attachment.PageIndex, PositionInPage: attachment.PositionInPage}
	r.missingAttachments[key] = attachment.ContentHash

	if attachment.BlockHeight > r.BlockHeight {
		r.BlockHeight = attachment.BlockHeight
		r.ConsensusHash = attachment.ConsensusHash
		r.BlockHeaderHash = attachment.BlockHeaderHash
	}
	return true
}

// GetPagesIndexes returns the set of distinct page indices referenced
// by this request's entries.
func (r *AttachmentsInvRequest) GetPagesIndexes() map[uint32]struct{} {
	indexes := make(map[uint32]struct{})
	for slot := range r.missingAttachments {
		indexes[slot.PageIndex] = struct{}{}
	}
	return indexes
}

// GetStacksBlockId derives the index block hash of this request's
// anchor block.
func (r *AttachmentsInvRequest) GetStacksBlockId() p2p.StacksBlockId {
	return p2p.MakeIndexBlockHash(r.ConsensusHash, r.BlockHeaderHash)
}

// Identity returns the fields this request compares equal by: two
// requests with the same anchor identity group the same candidate
// block, independent of which individual attachment entries their maps
// happen to hold.
func (r *AttachmentsInvRequest) Identity() AnchorIdentity {
	return AnchorIdentity{
		BlockHeight:     r.BlockHeight,
		ConsensusHash:   r.ConsensusHash,
		BlockHeaderHash: r.BlockHeaderHash,
		BurnBlockHeight: r.BurnBlockHeight,
	}
}
