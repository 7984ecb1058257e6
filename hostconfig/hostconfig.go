/*
 * GX-VM - Host run configuration
 *
 * Copyright 2024, Richard Cornwell
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in
 * all copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 */

// Package hostconfig holds the run-time options a GX-VM host picks before
// starting a program: the program binary path, an optional instruction
// cap, whether to install the disassembling exit hook, and where log output
// goes. It is deliberately small; the binary program format itself is
// the loader package's concern, not this one's.
package hostconfig

import (
	"errors"
	"strings"
)

// LogDest selects where structured log output is written.
type LogDest int

const (
	LogStderr LogDest = iota
	LogStdout
	LogDiscard
)

func (d LogDest) String() string {
	switch d {
	case LogStderr:
		return "stderr"
	case LogStdout:
		return "stdout"
	case LogDiscard:
		return "discard"
	default:
		return "unknown"
	}
}

// ParseLogDest converts a command-line flag value to a LogDest.
func ParseLogDest(s string) (LogDest, error) {
	switch strings.ToLower(s) {
	case "stderr", "":
		return LogStderr, nil
	case "stdout":
		return LogStdout, nil
	case "discard", "none":
		return LogDiscard, nil
	default:
		return LogStderr, errors.New("hostconfig: unknown log destination: " + s)
	}
}

// Config is one run's worth of host-level options.
type Config struct {
	ProgramPath string

	// MaxInstructions caps Run via RunLimited; zero means unbounded.
	MaxInstructions uint64

	// Debug installs the default disassembling exit_hook: on a fault, the
	// instruction at the fault PC is rendered via gxvm.Disassemble instead
	// of just logging the fault kind. cmd/gxvm still runs to completion
	// unattended; the interactive REPL lives in cmd/gxdbg.
	Debug bool

	LogDest  LogDest
	LogDebug bool // include debug-level records, not just info and above
}

// Validate reports the first configuration error found, or nil if Config
// is runnable. A missing ProgramPath is always an error; every other field
// has a usable zero value.
func (c Config) Validate() error {
	if c.ProgramPath == "" {
		return errors.New("hostconfig: no program path given")
	}
	return nil
}
