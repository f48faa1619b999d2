// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"io"
	"math/rand"
)

// HandshakeRejectData carries no fields.
type HandshakeRejectData struct{}

func (HandshakeRejectData) MessageID() StacksMessageID { return IDHandshakeReject }
func (HandshakeRejectData) Name() string               { return "HandshakeReject" }
func (HandshakeRejectData) Description() string         { return "peer declined a handshake" }
func (HandshakeRejectData) encodeBody(io.Writer) error  { return nil }

// GetNeighborsData carries no fields.
type GetNeighborsData struct{}

func (GetNeighborsData) MessageID() StacksMessageID { return IDGetNeighbors }
func (GetNeighborsData) Name() string               { return "GetNeighbors" }
func (GetNeighborsData) Description() string        { return "request a peer's neighbor list" }
func (GetNeighborsData) encodeBody(io.Writer) error  { return nil }

// NackData reports a request-level failure.
type NackData struct {
	ErrorCode uint32
}

func (d NackData) MessageID() StacksMessageID { return IDNack }
func (d NackData) Name() string               { return "Nack" }
func (d NackData) Description() string        { return "negative acknowledgement" }

func (d NackData) encodeBody(w io.Writer) error {
	return writeUint32(w, d.ErrorCode)
}

func (d *NackData) Decode(r io.Reader) error {
	code, err := readUint32(r)
	if err != nil {
		return err
	}
	d.ErrorCode = code
	return nil
}

// PingData carries a liveness-check nonce.
type PingData struct {
	Nonce uint32
}

// NewPingData draws a fresh nonce from a non-cryptographic PRNG. No
// security property depends on its unpredictability; it exists only to
// pair a Ping with its Pong.
func NewPingData() PingData {
	return PingData{Nonce: rand.Uint32()}
}

func (d PingData) MessageID() StacksMessageID { return IDPing }
func (d PingData) Name() string               { return "Ping" }
func (d PingData) Description() string        { return "liveness check" }

func (d PingData) encodeBody(w io.Writer) error {
	return writeUint32(w, d.Nonce)
}

func (d *PingData) Decode(r io.Reader) error {
	nonce, err := readUint32(r)
	if err != nil {
		return err
	}
	d.Nonce = nonce
	return nil
}

// PongData echoes a Ping's nonce.
type PongData struct {
	Nonce uint32
}

// PongDataFromPing builds the Pong that answers ping.
func PongDataFromPing(ping PingData) PongData {
	return PongData{Nonce: ping.Nonce}
}

func (d PongData) MessageID() StacksMessageID { return IDPong }
func (d PongData) Name() string               { return "Pong" }
func (d PongData) Description() string        { return "liveness reply" }

func (d PongData) encodeBody(w io.Writer) error {
	return writeUint32(w, d.Nonce)
}

func (d *PongData) Decode(r io.Reader) error {
	nonce, err := readUint32(r)
	if err != nil {
		return err
	}
	d.Nonce = nonce
	return nil
}

// NatPunchRequestData carries the nonce a peer will expect echoed back in
// the matching NatPunchData.
type NatPunchRequestData struct {
	Nonce uint32
}

func (d NatPunchRequestData) MessageID() StacksMessageID { return IDNatPunchRequest }
func (d NatPunchRequestData) Name() string               { return "NatPunchRequest" }
func (d NatPunchRequestData) Description() string        { return "request NAT-punch assistance" }

func (d NatPunchRequestData) encodeBody(w io.Writer) error {
	return writeUint32(w, d.Nonce)
}

// NatPunchData is the reply to a NatPunchRequest: the address the
// responder observed the request arrive from, plus the echoed nonce.
type NatPunchData struct {
	AddrBytes PeerAddress
	Port      uint16
	Nonce     uint32
}

func (d NatPunchData) MessageID() StacksMessageID { return IDNatPunchReply }
func (d NatPunchData) Name() string               { return "NatPunchReply" }
func (d NatPunchData) Description() string        { return "observed address reply for NAT-punch" }

func (d NatPunchData) encodeBody(w io.Writer) error {
	if err := d.AddrBytes.encode(w); err != nil {
		return err
	}
	if err := writeUint16(w, d.Port); err != nil {
		return err
	}
	return writeUint32(w, d.Nonce)
}

func (d *NatPunchData) Decode(r io.Reader) error {
	if err := d.AddrBytes.decode(r); err != nil {
		return err
	}
	port, err := readUint16(r)
	if err != nil {
		return err
	}
	nonce, err := readUint32(r)
	if err != nil {
		return err
	}
	d.Port = port
	d.Nonce = nonce
	return nil
}
