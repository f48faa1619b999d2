// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincfg defines the per-network identifiers a Preamble is
// stamped with. It plays the role the original chaincfg.Params played
// for a Decred node's genesis/proof-of-work parameters, trimmed down to
// the handful of fields the P2P wire codec actually consumes: a node
// picks one of these before constructing preambles, and every peer on
// the same network must agree on the same values or handshakes will be
// rejected by downstream nodes for carrying a mismatched network_id.
package chaincfg

// Params holds the identifiers that distinguish one Stacks network from
// another at the P2P wire level.
type Params struct {
	// Name is the human-readable network name, e.g. "mainnet".
	Name string

	// PeerVersion is the value every Preamble on this network carries
	// in its peer_version field.
	PeerVersion uint32

	// NetworkID is the value every Preamble on this network carries in
	// its network_id field; peers on different networks must never
	// accept each other's messages.
	NetworkID uint32

	// DefaultPort is the TCP port peers on this network listen on by
	// convention.
	DefaultPort string
}

// MainNetParams returns the parameters for the production Stacks
// network.
func MainNetParams() *Params {
	return &Params{
		Name:        "mainnet",
		PeerVersion: 0x18000000,
		NetworkID:   0x17000000,
		DefaultPort: "20444",
	}
}

// TestNetParams returns the parameters for the public Stacks test
// network.
func TestNetParams() *Params {
	return &Params{
		Name:        "testnet",
		PeerVersion: 0x18000000,
		NetworkID:   0xff000007,
		DefaultPort: "20444",
	}
}

// MockNetParams returns the parameters for local single-node
// development networks.
func MockNetParams() *Params {
	return &Params{
		Name:        "mocknet",
		PeerVersion: 0x18000000,
		NetworkID:   0x80000000,
		DefaultPort: "20444",
	}
}
