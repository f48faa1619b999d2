// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import "io"

// BlocksAvailableEntry announces that the sender has a block (or
// microblock stream) anchored at the given consensus hash.
type BlocksAvailableEntry struct {
	ConsensusHash  ConsensusHash
	BurnHeaderHash BurnchainHeaderHash
}

func (e BlocksAvailableEntry) encode(w io.Writer) error {
	if err := e.ConsensusHash.encode(w); err != nil {
		return err
	}
	return e.BurnHeaderHash.encode(w)
}

func (e *BlocksAvailableEntry) decode(r io.Reader) error {
	if err := e.ConsensusHash.decode(r); err != nil {
		return err
	}
	return e.BurnHeaderHash.decode(r)
}

// BlocksAvailableData is the shared shape of BlocksAvailable and
// MicroblocksAvailable: a bounded batch of availability announcements.
type BlocksAvailableData struct {
	Available []BlocksAvailableEntry
}

// TryPush appends entry if the batch has not yet reached
// BlocksAvailableMaxLen, reporting whether it was added.
func (d *BlocksAvailableData) TryPush(entry BlocksAvailableEntry) bool {
	if uint32(len(d.Available)) >= BlocksAvailableMaxLen {
		return false
	}
	d.Available = append(d.Available, entry)
	return true
}

func (d BlocksAvailableData) MessageID() StacksMessageID { return IDBlocksAvailable }
func (d BlocksAvailableData) Name() string               { return "BlocksAvailable" }
func (d BlocksAvailableData) Description() string        { return "announces available blocks" }

func (d BlocksAvailableData) encodeBody(w io.Writer) error {
	return encodeBlocksAvailable(w, d.Available)
}

func (d *BlocksAvailableData) Decode(r io.Reader) error {
	available, err := decodeBlocksAvailable(r)
	if err != nil {
		return err
	}
	d.Available = available
	return nil
}

// MicroblocksAvailableData is BlocksAvailableData's sibling for
// microblock-stream availability.
type MicroblocksAvailableData struct {
	Available []BlocksAvailableEntry
}

// TryPush appends entry if the batch has not yet reached
// BlocksAvailableMaxLen, reporting whether it was added.
func (d *MicroblocksAvailableData) TryPush(entry BlocksAvailableEntry) bool {
	if uint32(len(d.Available)) >= BlocksAvailableMaxLen {
		return false
	}
	d.Available = append(d.Available, entry)
	return true
}

func (d MicroblocksAvailableData) MessageID() StacksMessageID { return IDMicroblocksAvailable }
func (d MicroblocksAvailableData) Name() string               { return "MicroblocksAvailable" }
func (d MicroblocksAvailableData) Description() string        { return "announces available microblock streams" }

func (d MicroblocksAvailableData) encodeBody(w io.Writer) error {
	return encodeBlocksAvailable(w, d.Available)
}

func (d *MicroblocksAvailableData) Decode(r io.Reader) error {
	available, err := decodeBlocksAvailable(r)
	if err != nil {
		return err
	}
	d.Available = available
	return nil
}

func encodeBlocksAvailable(w io.Writer, entries []BlocksAvailableEntry) error {
	if err := writeUint32(w, uint32(len(entries))); err != nil {
		return err
	}
	for i := range entries {
		if err := entries[i].encode(w); err != nil {
			return err
		}
	}
	return nil
}

func decodeBlocksAvailable(r io.Reader) ([]BlocksAvailableEntry, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	if n > BlocksAvailableMaxLen {
		return nil, newErr(ErrOverflow, "decodeBlocksAvailable", "too many entries")
	}
	entries := make([]BlocksAvailableEntry, 0, n)
	for i := uint32(0); i < n; i++ {
		var e BlocksAvailableEntry
		if err := e.decode(r); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}
