// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"bytes"
	"io"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// StacksMessage is the full wire envelope: preamble, relay chain, and
// tagged payload.
type StacksMessage struct {
	Preamble Preamble
	Relayers []RelayData
	Payload  StacksMessageType
}

// Encode writes preamble, relayers, then payload, in that order.
func (m StacksMessage) Encode(w io.Writer) error {
	if err := m.Preamble.Encode(w); err != nil {
		return err
	}
	if err := encodeRelayers(w, m.Relayers); err != nil {
		return err
	}
	return EncodePayload(w, m.Payload)
}

// Decode reads a preamble, checks its payload_len against the remaining
// message budget, then reads relayers and payload through a reader
// bounded to exactly payload_len bytes.
func (m *StacksMessage) Decode(r io.Reader) error {
	var tmp StacksMessage
	if err := tmp.Preamble.Decode(r); err != nil {
		return err
	}
	if tmp.Preamble.PayloadLen > MaxMessageLen-PreambleEncodedSize {
		return newErr(ErrDeserialize, "StacksMessage.Decode", "payload_len exceeds remaining message budget")
	}

	bounded := newBoundReader(r, tmp.Preamble.PayloadLen)
	relayers, err := decodeRelayers(bounded, MaxRelayersLen)
	if err != nil {
		return err
	}
	payload, err := DecodePayload(bounded)
	if err != nil {
		return err
	}

	tmp.Relayers = relayers
	tmp.Payload = payload
	*m = tmp
	return nil
}

// messageBits encodes relayers ‖ payload, the bytes that are both signed
// and recorded as the preamble's payload_len.
func (m StacksMessage) messageBits() ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeRelayers(&buf, m.Relayers); err != nil {
		return nil, err
	}
	if err := EncodePayload(&buf, m.Payload); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Sign stamps the message as freshly originated by this node: it
// requires an empty relay chain, sets the sequence number, and signs
// relayers ‖ payload.
func (m *StacksMessage) Sign(seq uint32, privkey *secp256k1.PrivateKey) error {
	if len(m.Relayers) != 0 {
		return newErr(ErrInvalidMessage, "StacksMessage.Sign", "cannot originate-sign a message that already carries relayers")
	}
	m.Preamble.Seq = seq
	bits, err := m.messageBits()
	if err != nil {
		return err
	}
	m.Preamble.PayloadLen = uint32(len(bits))
	return m.Preamble.Sign(bits, privkey)
}

// SignRelay appends ourAddr as a new relay hop and re-signs the message
// under our own sequence number. It refuses to do so if the relay chain
// is already at capacity, or if ourAddr has already relayed this
// message (which would indicate a routing loop).
func (m *StacksMessage) SignRelay(privkey *secp256k1.PrivateKey, ourSeq uint32, ourAddr NeighborAddress) error {
	if uint32(len(m.Relayers)) >= MaxRelayersLen {
		log.Warnf("not relaying message: relayer list is already at capacity (%d)", MaxRelayersLen)
		return newErr(ErrInvalidMessage, "StacksMessage.SignRelay", "relayer list is already at capacity")
	}
	for i := range m.Relayers {
		if m.Relayers[i].Peer.PublicKeyHash == ourAddr.PublicKeyHash {
			log.Warnf("not relaying message: %s has already relayed it", ourAddr.PublicKeyHash)
			return newErr(ErrInvalidMessage, "StacksMessage.SignRelay", "this peer has already relayed this message")
		}
	}

	m.Relayers = append(m.Relayers, RelayData{Peer: ourAddr, Seq: m.Preamble.Seq})
	m.Preamble.Seq = ourSeq

	bits, err := m.messageBits()
	if err != nil {
		return err
	}
	m.Preamble.PayloadLen = uint32(len(bits))
	return m.Preamble.Sign(bits, privkey)
}

// VerifySecp256k1 parses pubkeyBuf and verifies the message's signature
// against it.
func (m StacksMessage) VerifySecp256k1(pubkeyBuf StacksPublicKeyBuffer) error {
	pubkey, err := secp256k1.ParsePubKey(pubkeyBuf[:])
	if err != nil {
		return wrapErr(ErrVerifying, "StacksMessage.VerifySecp256k1", "invalid public key buffer", err)
	}
	bits, err := m.messageBits()
	if err != nil {
		return err
	}
	return m.Preamble.Verify(bits, pubkey)
}

// StacksP2P is the protocol-family adapter: it describes the preamble's
// fixed size and the always-known payload length to a generic
// length-prefixed message transport.
type StacksP2P struct{}

// PreambleSizeHint returns the fixed encoded size of a Preamble.
func (StacksP2P) PreambleSizeHint() uint32 { return PreambleEncodedSize }

// PayloadLen returns preamble's declared payload length. Stacks messages
// always carry a known length; there is no streaming variant.
func (StacksP2P) PayloadLen(preamble Preamble) uint32 { return preamble.PayloadLen }

// StreamPayload is unsupported: this protocol family never streams a
// payload of unknown length. Calling it is a programming error.
func (StacksP2P) StreamPayload(io.Reader) (StacksMessageType, error) {
	panic("net: StacksP2P does not support streaming payloads; payload length is always known")
}

// ReadPreamble decodes a Preamble from the front of buf, requiring at
// least PreambleEncodedSize bytes.
func (StacksP2P) ReadPreamble(buf []byte) (Preamble, error) {
	if uint32(len(buf)) < PreambleEncodedSize {
		return Preamble{}, newErr(ErrUnderflow, "StacksP2P.ReadPreamble", "buffer shorter than PreambleEncodedSize")
	}
	var p Preamble
	if err := p.Decode(bytes.NewReader(buf)); err != nil {
		return Preamble{}, err
	}
	return p, nil
}

// ReadPayload returns the payload_len bytes of body this preamble
// declares, requiring body to be at least that long.
func (StacksP2P) ReadPayload(preamble Preamble, body []byte) ([]byte, error) {
	if uint32(len(body)) < preamble.PayloadLen {
		return nil, newErr(ErrUnderflow, "StacksP2P.ReadPayload", "buffer shorter than payload_len")
	}
	return body[:preamble.PayloadLen], nil
}

// WriteMessage encodes a full StacksMessage to w.
func (StacksP2P) WriteMessage(w io.Writer, m StacksMessage) error {
	return m.Encode(w)
}
