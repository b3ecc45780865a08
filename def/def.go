// Copyright (c) 2015 Mute Communications Ltd.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package def defines all default values used in numbase.
package def

import (
	"github.com/mutecomm/numbase/def/version"
)

// Version is the current numbase version.
const Version = version.Number

const (
	// CmdPrefix is the prefix of numbase log lines.
	CmdPrefix = "nbase"

	// LogLevel is the default logging level.
	LogLevel = "info"

	// VerifyFrom is the default start of the verification range.
	VerifyFrom = 0

	// VerifyTo is the default end (inclusive) of the verification range.
	VerifyTo = 1 << 20

	// Prompt is the prompt shown in interactive mode.
	Prompt = "numbase> "
)

// SampleValues are the values shown by the demo command.
var SampleValues = []uint64{
	0,
	1,
	2,
	3,
	4,
	9,
	10,
	16,
	245,
	999,
	1000,
	6735,
	16384,
	23478,
	23865,
	1<<53 + 1,
	18446744073709551615,
}
