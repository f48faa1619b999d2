// Copyright (c) 2024 The Stacks Open Internet Foundation
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package net

import "github.com/decred/slog"

// log is the package-wide subsystem logger. It defaults to disabled
// output; a host application wires it up with UseLogger, the same
// pattern dcrd-family packages use to keep library code independent of
// any particular logging backend.
var log = slog.Disabled

// UseLogger sets the subsystem logger used by this package. Call it
// before using the package if logging output is desired.
func UseLogger(logger slog.Logger) {
	log = logger
}
