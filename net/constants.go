// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

// Bound constants for the wire protocol. These are fixed per network;
// the values below are the ones this implementation chooses.
const (
	// MaxMessageLen is the largest a single framed StacksMessage may be,
	// preamble included.
	MaxMessageLen uint32 = 2 * 1024 * 1024

	// PreambleEncodedSize is the fixed encoded size of a Preamble:
	// peer_version(4) + network_id(4) + seq(4) + burn_block_height(8) +
	// burn_block_hash(32) + burn_stable_block_height(8) +
	// burn_stable_block_hash(32) + additional_data(4) + signature(65) +
	// payload_len(4).
	PreambleEncodedSize uint32 = 165

	// NeighborAddressEncodedSize is the fixed encoded size of a
	// NeighborAddress: addrbytes(16) + port(2) + public_key_hash(20).
	NeighborAddressEncodedSize uint32 = 38

	// MaxRelayersLen bounds the relay chain carried in a StacksMessage
	// envelope.
	MaxRelayersLen uint32 = 16

	// MaxNeighborsDataLen bounds a single Neighbors reply.
	MaxNeighborsDataLen uint32 = 128

	// GetPoxInvMaxBitlen bounds the number of reward cycles a GetPoxInv /
	// PoxInv payload may describe.
	GetPoxInvMaxBitlen uint64 = 4000

	// BlocksAvailableMaxLen bounds a BlocksAvailable/MicroblocksAvailable
	// batch.
	BlocksAvailableMaxLen uint32 = 32

	// BlocksPushedMax bounds the number of blocks in an unsolicited
	// Blocks push.
	BlocksPushedMax uint32 = 32

	// MaxBlockLen bounds the encoded size of a single StacksBlock nested
	// inside a Blocks payload entry.
	MaxBlockLen uint32 = 2 * 1024 * 1024
)
