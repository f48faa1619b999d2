// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import "io"

// NeighborAddress identifies a peer by network address, port, and the
// Hash160 of its public key.
type NeighborAddress struct {
	AddrBytes     PeerAddress
	Port          uint16
	PublicKeyHash Hash160
}

func (n NeighborAddress) Encode(w io.Writer) error {
	if err := n.AddrBytes.encode(w); err != nil {
		return err
	}
	if err := writeUint16(w, n.Port); err != nil {
		return err
	}
	return n.PublicKeyHash.encode(w)
}

func (n *NeighborAddress) Decode(r io.Reader) error {
	if err := n.AddrBytes.decode(r); err != nil {
		return err
	}
	port, err := readUint16(r)
	if err != nil {
		return err
	}
	n.Port = port
	return n.PublicKeyHash.decode(r)
}

// RelayData records a single hop a message has taken: the relaying peer's
// address and the sequence number it carried at that hop.
type RelayData struct {
	Peer NeighborAddress
	Seq  uint32
}

func (r RelayData) Encode(w io.Writer) error {
	if err := r.Peer.Encode(w); err != nil {
		return err
	}
	return writeUint32(w, r.Seq)
}

func (r *RelayData) Decode(reader io.Reader) error {
	if err := r.Peer.Decode(reader); err != nil {
		return err
	}
	seq, err := readUint32(reader)
	if err != nil {
		return err
	}
	r.Seq = seq
	return nil
}

// encodeRelayers writes a bounded sequence of RelayData: u32 count then
// elements.
func encodeRelayers(w io.Writer, relayers []RelayData) error {
	if err := writeUint32(w, uint32(len(relayers))); err != nil {
		return err
	}
	for i := range relayers {
		if err := relayers[i].Encode(w); err != nil {
			return err
		}
	}
	return nil
}

// decodeRelayers reads a sequence of RelayData bounded by max elements,
// rejecting the count before allocating backing storage for more than max.
func decodeRelayers(r io.Reader, max uint32) ([]RelayData, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	if n > max {
		return nil, newErr(ErrOverflow, "decodeRelayers", "too many relayers")
	}
	relayers := make([]RelayData, 0, n)
	for i := uint32(0); i < n; i++ {
		var rd RelayData
		if err := rd.Decode(r); err != nil {
			return nil, err
		}
		relayers = append(relayers, rd)
	}
	return relayers, nil
}
