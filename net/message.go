// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import "io"

// StacksMessageID is the one-byte tag preceding every payload body.
type StacksMessageID uint8

// Message tag values. One value, Reserved, is carved out and must never be
// emitted; decoding it is always an error, along with any other byte
// outside this enumeration.
const (
	IDHandshake StacksMessageID = iota
	IDHandshakeAccept
	IDHandshakeReject
	IDGetNeighbors
	IDNeighbors
	IDGetPoxInv
	IDPoxInv
	IDGetBlocksInv
	IDBlocksInv
	IDBlocksAvailable
	IDMicroblocksAvailable
	IDBlocks
	IDMicroblocks
	IDTransaction
	IDNack
	IDPing
	IDPong
	IDNatPunchRequest
	IDNatPunchReply

	IDReserved StacksMessageID = 255
)

func (id StacksMessageID) String() string {
	switch id {
	case IDHandshake:
		return "Handshake"
	case IDHandshakeAccept:
		return "HandshakeAccept"
	case IDHandshakeReject:
		return "HandshakeReject"
	case IDGetNeighbors:
		return "GetNeighbors"
	case IDNeighbors:
		return "Neighbors"
	case IDGetPoxInv:
		return "GetPoxInv"
	case IDPoxInv:
		return "PoxInv"
	case IDGetBlocksInv:
		return "GetBlocksInv"
	case IDBlocksInv:
		return "BlocksInv"
	case IDBlocksAvailable:
		return "BlocksAvailable"
	case IDMicroblocksAvailable:
		return "MicroblocksAvailable"
	case IDBlocks:
		return "Blocks"
	case IDMicroblocks:
		return "Microblocks"
	case IDTransaction:
		return "Transaction"
	case IDNack:
		return "Nack"
	case IDPing:
		return "Ping"
	case IDPong:
		return "Pong"
	case IDNatPunchRequest:
		return "NatPunchRequest"
	case IDNatPunchReply:
		return "NatPunchReply"
	case IDReserved:
		return "Reserved"
	default:
		return "Unknown"
	}
}

// StacksMessageType is the closed sum of P2P payload variants. Each
// concrete type in this package (HandshakeData, PingData, ...)
// implements it; the marker method keeps the set closed to this package.
type StacksMessageType interface {
	MessageID() StacksMessageID
	Name() string
	Description() string
	encodeBody(w io.Writer) error
}

// EncodePayload writes the one-byte tag followed by the variant body.
func EncodePayload(w io.Writer, msg StacksMessageType) error {
	if err := writeUint8(w, uint8(msg.MessageID())); err != nil {
		return err
	}
	return msg.encodeBody(w)
}

// DecodePayload reads the tag and dispatches to the matching variant
// decoder, rejecting unknown or reserved tags.
func DecodePayload(r io.Reader) (StacksMessageType, error) {
	idByte, err := readUint8(r)
	if err != nil {
		return nil, err
	}
	id := StacksMessageID(idByte)

	switch id {
	case IDHandshake:
		var m HandshakeData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDHandshakeAccept:
		var m HandshakeAcceptData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDHandshakeReject:
		return HandshakeRejectData{}, nil
	case IDGetNeighbors:
		return GetNeighborsData{}, nil
	case IDNeighbors:
		var m NeighborsData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDGetPoxInv:
		var m GetPoxInv
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDPoxInv:
		var m PoxInvData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDGetBlocksInv:
		var m GetBlocksInv
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDBlocksInv:
		var m BlocksInvData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDBlocksAvailable:
		var m BlocksAvailableData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDMicroblocksAvailable:
		var m MicroblocksAvailableData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDBlocks:
		var m BlocksData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDMicroblocks:
		var m MicroblocksData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDTransaction:
		var m TransactionData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDNack:
		var m NackData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDPing:
		var m PingData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDPong:
		var m PongData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDNatPunchRequest:
		nonce, err := readUint32(r)
		if err != nil {
			return nil, err
		}
		return NatPunchRequestData{Nonce: nonce}, nil
	case IDNatPunchReply:
		var m NatPunchData
		if err := m.Decode(r); err != nil {
			return nil, err
		}
		return m, nil
	case IDReserved:
		return nil, newErr(ErrDeserialize, "DecodePayload", "message id 'reserved' is not supported")
	default:
		return nil, newErr(ErrDeserialize, "DecodePayload", "unknown message id")
	}
}
