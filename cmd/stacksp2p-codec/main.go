// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command stacksp2p-codec is a small diagnostic tool for the net
// package: it decodes raw StacksMessage bytes from a file and either
// dumps or describes the result, or checks a message's signature
// against a supplied public key.
package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/davecgh/go-spew/spew"

	"github.com/stacks-network/stacks-p2p/chaincfg"
	p2p "github.com/stacks-network/stacks-p2p/net"
	"github.com/stacks-network/stacks-p2p/walletkey"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fatalf("%s", err)
	}

	switch cfg.Args.Command {
	case "decode":
		runDecode(cfg.Args.Files)
	case "describe":
		runDescribe(cfg.Args.Files, cfg.activeNet)
	case "verify":
		runVerify(cfg.Args.Files)
	case "sign":
		runSign(cfg.Args.Files)
	default:
		fatalf("unknown command %q: expected decode, describe, verify, or sign", cfg.Args.Command)
	}
}

func readMessage(path string) p2p.StacksMessage {
	data, err := os.ReadFile(path)
	if err != nil {
		fatalf("reading %s: %s", path, err)
	}
	var msg p2p.StacksMessage
	if err := msg.Decode(bytes.NewReader(data)); err != nil {
		fatalf("decoding %s: %s", path, err)
	}
	return msg
}

func runDecode(files []string) {
	if len(files) != 1 {
		fatalf("decode takes exactly one file argument")
	}
	msg := readMessage(files[0])
	spew.Dump(msg)
}

func runDescribe(files []string, net *chaincfg.Params) {
	if len(files) != 1 {
		fatalf("describe takes exactly one file argument")
	}
	msg := readMessage(files[0])
	log.Infof("preamble: peer_version=%d network_id=%d seq=%d payload_len=%d",
		msg.Preamble.PeerVersion, msg.Preamble.NetworkID, msg.Preamble.Seq, msg.Preamble.PayloadLen)
	fmt.Printf("relayers: %d\n", len(msg.Relayers))
	fmt.Printf("payload:  %s (%s)\n", msg.Payload.Name(), msg.Payload.Description())

	if msg.Preamble.NetworkID != net.NetworkID {
		log.Warnf("message network_id %#08x does not match %s (%#08x)",
			msg.Preamble.NetworkID, net.Name, net.NetworkID)
	}
}

func runVerify(files []string) {
	if len(files) != 2 {
		fatalf("verify takes a file argument and a hex-encoded compressed public key")
	}
	msg := readMessage(files[0])

	rawKey, err := hex.DecodeString(files[1])
	if err != nil {
		fatalf("decoding public key hex: %s", err)
	}
	if len(rawKey) != 33 {
		fatalf("public key must be the 33-byte compressed form, got %d bytes", len(rawKey))
	}
	var pubkeyBuf p2p.StacksPublicKeyBuffer
	copy(pubkeyBuf[:], rawKey)

	if err := msg.VerifySecp256k1(pubkeyBuf); err != nil {
		fatalf("verification failed: %s", err)
	}
	fmt.Println("signature OK")
}

// runSign reads an unsigned message (relayers and payload already set,
// signature field still blank), signs it with a WIF-encoded key, and
// writes the signed encoding to stdout.
func runSign(files []string) {
	if len(files) != 3 {
		fatalf("sign takes a file argument, a WIF-encoded private key, and a sequence number")
	}
	msg := readMessage(files[0])

	wif, err := walletkey.DecodeWIF(files[1])
	if err != nil {
		fatalf("decoding WIF key: %s", err)
	}

	seq, err := strconv.ParseUint(files[2], 10, 32)
	if err != nil {
		fatalf("parsing sequence number: %s", err)
	}

	if err := msg.Sign(uint32(seq), wif.PrivKey); err != nil {
		fatalf("signing failed: %s", err)
	}
	if err := msg.Encode(os.Stdout); err != nil {
		fatalf("writing signed message: %s", err)
	}
}
