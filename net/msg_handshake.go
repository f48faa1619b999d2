// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"fmt"
	"io"
)

// HandshakeData announces a peer's identity, services, and contact
// details.
type HandshakeData struct {
	AddrBytes         PeerAddress
	Port              uint16
	Services          uint16
	NodePublicKey     StacksPublicKeyBuffer
	ExpireBlockHeight uint64
	DataURL           UrlString
}

// NewHandshakeDataFromLocalPeer builds the HandshakeData a node sends to
// announce itself, substituting its publicly-reachable address when the
// LocalPeer has one configured (NAT/port-forward override).
//
// The data URL is resolved the same way: if it already names a routable
// host, it is sent as-is. If it has no routable host but does carry a
// port, that port is combined with the (possibly public-IP-substituted)
// address into "http://host:port". Otherwise the data URL compels
// binding to an unroutable address and the empty URL is sent instead.
func NewHandshakeDataFromLocalPeer(lp LocalPeer) HandshakeData {
	addr, port := lp.AddrBytes(), lp.Port()
	if pubAddr, pubPort, ok := lp.PublicIPAddress(); ok {
		addr, port = pubAddr, pubPort
	}

	dataURL := lp.DataURL()
	var resolvedURL UrlString
	switch {
	case dataURL.hasRoutableHost():
		resolvedURL = dataURL
	default:
		if dataPort, ok := dataURL.port(); ok {
			resolvedURL = UrlString(fmt.Sprintf("http://%s", socketAddrString(addr, dataPort)))
		} else {
			resolvedURL = ""
		}
	}

	pubkey := lp.PrivateKey().PubKey()
	var keyBuf StacksPublicKeyBuffer
	copy(keyBuf[:], pubkey.SerializeCompressed())

	return HandshakeData{
		AddrBytes:         addr,
		Port:              port,
		Services:          lp.Services(),
		NodePublicKey:     keyBuf,
		ExpireBlockHeight: lp.PrivateKeyExpire(),
		DataURL:           resolvedURL,
	}
}

func (d HandshakeData) MessageID() StacksMessageID { return IDHandshake }
func (d HandshakeData) Name() string               { return "Handshake" }
func (d HandshakeData) Description() string        { return "peer identity announcement" }

func (d HandshakeData) encodeBody(w io.Writer) error {
	return d.encode(w)
}

func (d HandshakeData) encode(w io.Writer) error {
	if d.Port == 0 {
		return newErr(ErrDeserialize, "HandshakeData.encode", "port must not be 0")
	}
	if err := d.AddrBytes.encode(w); err != nil {
		return err
	}
	if err := writeUint16(w, d.Port); err != nil {
		return err
	}
	if err := writeUint16(w, d.Services); err != nil {
		return err
	}
	if err := d.NodePublicKey.encode(w); err != nil {
		return err
	}
	if err := writeUint64(w, d.ExpireBlockHeight); err != nil {
		return err
	}
	return d.DataURL.encode(w)
}

func (d *HandshakeData) Decode(r io.Reader) error {
	var tmp HandshakeData
	if err := tmp.AddrBytes.decode(r); err != nil {
		return err
	}
	port, err := readUint16(r)
	if err != nil {
		return err
	}
	if port == 0 {
		return newErr(ErrDeserialize, "HandshakeData.Decode", "port must not be 0")
	}
	tmp.Port = port
	if tmp.Services, err = readUint16(r); err != nil {
		return err
	}
	if err := tmp.NodePublicKey.decode(r); err != nil {
		return err
	}
	if tmp.ExpireBlockHeight, err = readUint64(r); err != nil {
		return err
	}
	if err := tmp.DataURL.decode(r); err != nil {
		return err
	}
	*d = tmp
	return nil
}

// HandshakeAcceptData is a Handshake answer plus the accepting peer's
// preferred heartbeat interval, in seconds.
type HandshakeAcceptData struct {
	Handshake         HandshakeData
	HeartbeatInterval uint32
}

func (d HandshakeAcceptData) MessageID() StacksMessageID { return IDHandshakeAccept }
func (d HandshakeAcceptData) Name() string               { return "HandshakeAccept" }
func (d HandshakeAcceptData) Description() string        { return "handshake acceptance" }

func (d HandshakeAcceptData) encodeBody(w io.Writer) error {
	if err := d.Handshake.encode(w); err != nil {
		return err
	}
	return writeUint32(w, d.HeartbeatInterval)
}

func (d *HandshakeAcceptData) Decode(r io.Reader) error {
	if err := d.Handshake.Decode(r); err != nil {
		return err
	}
	interval, err := readUint32(r)
	if err != nil {
		return err
	}
	d.HeartbeatInterval = interval
	return nil
}
