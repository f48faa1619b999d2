// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"encoding/binary"
	"errors"
	"io"
)

// writeUint8 through writeUint64 write a fixed-width big-endian integer.
// All multi-byte integers on the wire are big-endian; callers must not rely
// on host byte order.
func writeUint8(w io.Writer, v uint8) error {
	_, err := w.Write([]byte{v})
	if err != nil {
		return wrapErr(ErrRead, "writeUint8", "short write", err)
	}
	return nil
}

func writeUint16(w io.Writer, v uint16) error {
	var buf [2]byte
	binary.BigEndian.PutUint16(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return wrapErr(ErrRead, "writeUint16", "short write", err)
	}
	return nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return wrapErr(ErrRead, "writeUint32", "short write", err)
	}
	return nil
}

func writeUint64(w io.Writer, v uint64) error {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	if _, err := w.Write(buf[:]); err != nil {
		return wrapErr(ErrRead, "writeUint64", "short write", err)
	}
	return nil
}

func readFull(r io.Reader, buf []byte) error {
	_, err := io.ReadFull(r, buf)
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return wrapErr(ErrUnderflow, "readFull", "not enough bytes", err)
		}
		return wrapErr(ErrRead, "readFull", "read failed", err)
	}
	return nil
}

func readUint8(r io.Reader) (uint8, error) {
	var buf [1]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return buf[0], nil
}

func readUint16(r io.Reader) (uint16, error) {
	var buf [2]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(buf[:]), nil
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func readUint64(r io.Reader) (uint64, error) {
	var buf [8]byte
	if err := readFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// writeByteSequence writes a u32 big-endian length prefix followed by the
// bytes themselves.
func writeByteSequence(w io.Writer, b []byte) error {
	if err := writeUint32(w, uint32(len(b))); err != nil {
		return err
	}
	if len(b) == 0 {
		return nil
	}
	if _, err := w.Write(b); err != nil {
		return wrapErr(ErrRead, "writeByteSequence", "short write", err)
	}
	return nil
}

// readByteSequenceExact reads a u32 length prefix and requires the decoded
// length equal exactly want.
func readByteSequenceExact(r io.Reader, want uint32) ([]byte, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	if n != want {
		return nil, newErr(ErrDeserialize, "readByteSequenceExact", "length mismatch")
	}
	return readBoundedBytes(r, n)
}

// readByteSequenceAtMost reads a u32 length prefix and rejects it outright
// if it exceeds max, before allocating any backing storage for the
// element count. This is the "no speculative allocation" discipline the
// spec requires of every length-prefixed decode path.
func readByteSequenceAtMost(r io.Reader, max uint32) ([]byte, error) {
	n, err := readUint32(r)
	if err != nil {
		return nil, err
	}
	if n > max {
		return nil, newErr(ErrOverflow, "readByteSequenceAtMost", "declared length exceeds cap")
	}
	return readBoundedBytes(r, n)
}

func readBoundedBytes(r io.Reader, n uint32) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, n)
	if err := readFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// boundReader caps the number of bytes a nested decode can consume,
// regardless of how the inner decoder behaves, so a malicious length
// prefix embedded in a variable-size payload (a StacksBlock inside Blocks,
// a StacksMicroblock inside Microblocks) cannot drain the outer buffer.
// Once a decode enters the window the reader guarantees it cannot read
// past it on any exit path, successful or not.
type boundReader struct {
	r *io.LimitedReader
}

func newBoundReader(r io.Reader, limit uint32) *boundReader {
	return &boundReader{r: &io.LimitedReader{R: r, N: int64(limit)}}
}

func (b *boundReader) Read(p []byte) (int, error) {
	return b.r.Read(p)
}
