// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import (
	"encoding/hex"
	"io"
	"net"
	"net/url"
	"strconv"
)

// MessageSignature is a recoverable secp256k1 signature: a 1-byte recovery
// id followed by the 32-byte r and 32-byte s values, raw (not the
// offset-encoded "compact signature" byte some secp256k1 libraries use on
// the wire; see sign.go for the conversion to/from
// github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa's compact format).
type MessageSignature [65]byte

// EmptyMessageSignature is the all-zero signature substituted into a
// preamble's signature field when computing the canonical signing digest.
var EmptyMessageSignature MessageSignature

func (s MessageSignature) encode(w io.Writer) error {
	if _, err := w.Write(s[:]); err != nil {
		return wrapErr(ErrRead, "MessageSignature.encode", "short write", err)
	}
	return nil
}

func (s *MessageSignature) decode(r io.Reader) error {
	return readFull(r, s[:])
}

func (s MessageSignature) String() string {
	return hex.EncodeToString(s[:])
}

// StacksPublicKeyBuffer is a 33-byte SEC1-compressed secp256k1 public key.
type StacksPublicKeyBuffer [33]byte

func (b StacksPublicKeyBuffer) encode(w io.Writer) error {
	if _, err := w.Write(b[:]); err != nil {
		return wrapErr(ErrRead, "StacksPublicKeyBuffer.encode", "short write", err)
	}
	return nil
}

func (b *StacksPublicKeyBuffer) decode(r io.Reader) error {
	return readFull(r, b[:])
}

func (b StacksPublicKeyBuffer) String() string {
	return hex.EncodeToString(b[:])
}

// UrlString is a u8-length-prefixed UTF-8 string, at most 255 bytes long.
// The empty string is legal and commonly sent when a peer has no routable
// data URL.
type UrlString string

// NewUrlString validates s fits the wire constraint before constructing a
// UrlString.
func NewUrlString(s string) (UrlString, error) {
	if len(s) > 255 {
		return "", newErr(ErrDeserialize, "NewUrlString", "url exceeds 255 bytes")
	}
	return UrlString(s), nil
}

func (u UrlString) encode(w io.Writer) error {
	if err := writeUint8(w, uint8(len(u))); err != nil {
		return err
	}
	if len(u) == 0 {
		return nil
	}
	if _, err := io.WriteString(w, string(u)); err != nil {
		return wrapErr(ErrRead, "UrlString.encode", "short write", err)
	}
	return nil
}

func (u *UrlString) decode(r io.Reader) error {
	l, err := readUint8(r)
	if err != nil {
		return err
	}
	if l == 0 {
		*u = ""
		return nil
	}
	buf := make([]byte, l)
	if err := readFull(r, buf); err != nil {
		return err
	}
	*u = UrlString(buf)
	return nil
}

// hasRoutableHost reports whether u names a host other peers could
// actually dial: parseable, non-empty, and not a wildcard/unspecified
// address such as 0.0.0.0 or ::.
func (u UrlString) hasRoutableHost() bool {
	parsed, err := url.Parse(string(u))
	if err != nil {
		return false
	}
	host := parsed.Hostname()
	if host == "" {
		return false
	}
	if ip := net.ParseIP(host); ip != nil && ip.IsUnspecified() {
		return false
	}
	return true
}

// port returns the port named in u, if any.
func (u UrlString) port() (uint16, bool) {
	parsed, err := url.Parse(string(u))
	if err != nil {
		return 0, false
	}
	s := parsed.Port()
	if s == "" {
		return 0, false
	}
	p, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, false
	}
	return uint16(p), true
}
