// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import "github.com/decred/dcrd/dcrec/secp256k1/v4"

// LocalPeer is the identity and signing material this node presents to
// the rest of the network. Callers supply a concrete implementation;
// this package never constructs one.
type LocalPeer interface {
	// AddrBytes is this node's locally-bound network address.
	AddrBytes() PeerAddress
	// Port is this node's locally-bound port.
	Port() uint16
	// PublicIPAddress is the externally-reachable address/port this
	// node should advertise instead of AddrBytes/Port, if one is
	// configured (e.g. from a NAT/port-forward override).
	PublicIPAddress() (addr PeerAddress, port uint16, ok bool)
	// Services is the bitmask of services this node offers.
	Services() uint16
	// PrivateKey is the secp256k1 key this node signs messages with.
	PrivateKey() *secp256k1.PrivateKey
	// PrivateKeyExpire is the burn block height at which PrivateKey
	// should no longer be trusted by peers.
	PrivateKeyExpire() uint64
	// DataURL is the URL peers can fetch this node's data from, or the
	// empty UrlString if it does not serve one.
	DataURL() UrlString
}

// BurnchainView is the chain-tip context a Preamble is stamped with.
type BurnchainView interface {
	BurnBlockHeight() uint64
	BurnBlockHash() BurnchainHeaderHash
	BurnStableBlockHeight() uint64
	BurnStableBlockHash() BurnchainHeaderHash
}

// NewPreambleFromView builds an unsigned preamble for the current
// protocol/network identifiers from a BurnchainView snapshot.
func NewPreambleFromView(peerVersion, networkID uint32, view BurnchainView) Preamble {
	return NewPreamble(
		peerVersion,
		networkID,
		view.BurnBlockHeight(),
		view.BurnBlockHash(),
		view.BurnStableBlockHeight(),
		view.BurnStableBlockHash(),
		0,
	)
}
