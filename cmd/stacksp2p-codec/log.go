// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/decred/slog"
	"github.com/jrick/logrotate/rotator"

	p2p "github.com/stacks-network/stacks-p2p/net"
)

var (
	backendLog = slog.NewBackend(logWriter{})
	logRotator *rotator.Rotator
	log        = backendLog.Logger("CODC")
)

func init() {
	p2p.UseLogger(log)
}

// logWriter duplicates log output to stdout and the rotating log file,
// the same split dcrd-family daemons use for their backendLog writer.
type logWriter struct{}

func (logWriter) Write(p []byte) (int, error) {
	os.Stdout.Write(p)
	if logRotator != nil {
		logRotator.Write(p)
	}
	return len(p), nil
}

// initLogRotator creates the rolling log file logFile is rotated into
// once it passes 10 MiB (the rotator's threshold is given in KB),
// keeping up to 3 old copies.
func initLogRotator(logFile string) {
	logDir, _ := filepath.Split(logFile)
	if logDir != "" {
		if err := os.MkdirAll(logDir, 0700); err != nil {
			fmt.Fprintln(os.Stderr, "failed to create log directory:", err)
			os.Exit(1)
		}
	}
	r, err := rotator.New(logFile, 10*1024, false, 3)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to create file rotator:", err)
		os.Exit(1)
	}
	logRotator = r
}

func setLogLevel(levelStr string) {
	level, ok := slog.LevelFromString(levelStr)
	if !ok {
		level = slog.LevelInfo
	}
	log.SetLevel(level)
}
