// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import "io"

// NeighborsData is a bounded list of peer addresses, returned in answer
// to a GetNeighbors request.
type NeighborsData struct {
	Neighbors []NeighborAddress
}

func (d NeighborsData) MessageID() StacksMessageID { return IDNeighbors }
func (d NeighborsData) Name() string               { return "Neighbors" }
func (d NeighborsData) Description() string        { return "neighbor address list" }

func (d NeighborsData) encodeBody(w io.Writer) error {
	if err := writeUint32(w, uint32(len(d.Neighbors))); err != nil {
		return err
	}
	for i := range d.Neighbors {
		if err := d.Neighbors[i].Encode(w); err != nil {
			return err
		}
	}
	return nil
}

func (d *NeighborsData) Decode(r io.Reader) error {
	n, err := readUint32(r)
	if err != nil {
		return err
	}
	if n > MaxNeighborsDataLen {
		return newErr(ErrOverflow, "NeighborsData.Decode", "too many neighbors")
	}
	neighbors := make([]NeighborAddress, 0, n)
	for i := uint32(0); i < n; i++ {
		var na NeighborAddress
		if err := na.Decode(r); err != nil {
			return err
		}
		neighbors = append(neighbors, na)
	}
	d.Neighbors = neighbors
	return nil
}
