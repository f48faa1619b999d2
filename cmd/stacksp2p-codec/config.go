// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	flags "github.com/jessevdk/go-flags"

	"github.com/stacks-network/stacks-p2p/chaincfg"
)

const defaultLogFilename = "stacksp2p-codec.log"

// options holds the flags shared by every subcommand.
type options struct {
	LogDir   string `long:"logdir" description:"Directory to write the rotated log file to" default:"."`
	LogLevel string `short:"l" long:"loglevel" description:"Logging level {trace, debug, info, warn, error, critical}" default:"info"`
	Network  string `short:"n" long:"network" description:"Network whose identifiers a message should be checked against {mainnet, testnet, mocknet}" default:"mainnet"`

	Args struct {
		Command string   `positional-arg-name:"command" description:"decode | describe | verify | sign"`
		Files   []string `positional-arg-name:"files"`
	} `positional-args:"yes"`

	activeNet *chaincfg.Params
}

// loadConfig parses command-line flags the way dcrd-family daemons do:
// a go-flags parser over a struct of long/short options, with logging
// stood up as a side effect before the subcommand runs.
func loadConfig() (*options, error) {
	var cfg options
	parser := flags.NewParser(&cfg, flags.HelpFlag|flags.PassDoubleDash)
	if _, err := parser.Parse(); err != nil {
		return nil, err
	}

	if cfg.Args.Command == "" {
		return nil, fmt.Errorf("a command is required: decode, describe, verify, or sign")
	}

	switch cfg.Network {
	case "mainnet":
		cfg.activeNet = chaincfg.MainNetParams()
	case "testnet":
		cfg.activeNet = chaincfg.TestNetParams()
	case "mocknet":
		cfg.activeNet = chaincfg.MockNetParams()
	default:
		return nil, fmt.Errorf("unknown network %q: expected mainnet, testnet, or mocknet", cfg.Network)
	}

	initLogRotator(filepath.Join(cfg.LogDir, defaultLogFilename))
	setLogLevel(cfg.LogLevel)

	return &cfg, nil
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
