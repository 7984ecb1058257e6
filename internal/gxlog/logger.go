/*
 * GX-VM - Wrapper for slog
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

// Package gxlog wraps slog with a text handler that tees debug-level
// records to stderr regardless of the configured output, the way a host
// running a simulator wants a persistent run log plus live stderr chatter
// when debugging.
package gxlog

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/austinhamilton1/gx-vm/hostconfig"
)

// Handler is a slog.Handler that writes a compact "time level message
// attrs" line to out, and additionally tees to stderr when debug is set or
// the record is above debug level.
type Handler struct {
	out   io.Writer
	h     slog.Handler
	mu    *sync.Mutex
	debug bool
}

func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.h.Enabled(ctx, level)
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithAttrs(attrs), mu: h.mu, debug: h.debug}
}

func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{out: h.out, h: h.h.WithGroup(name), mu: h.mu, debug: h.debug}
}

func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	level := r.Level.String() + ":"
	formattedTime := r.Time.Format("2006/01/02 15:04:05")

	strs := []string{formattedTime, level, r.Message}
	if r.NumAttrs() != 0 {
		r.Attrs(func(a slog.Attr) bool {
			strs = append(strs, a.Key+"="+a.Value.String())
			return true
		})
	}
	line := strings.Join(strs, " ") + "\n"
	b := []byte(line)

	h.mu.Lock()
	defer h.mu.Unlock()

	var err error
	if h.out != nil {
		_, err = h.out.Write(b)
	}
	if h.debug || r.Level > slog.LevelDebug {
		_, err = os.Stderr.Write(b)
	}
	return err
}

// New builds a Handler writing to w at the given level. debug tees every
// record to stderr, not just info and above.
func New(w io.Writer, level slog.Level, debug bool) *Handler {
	return &Handler{
		out:   w,
		h:     slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}),
		mu:    &sync.Mutex{},
		debug: debug,
	}
}

// NewFromConfig resolves a hostconfig.LogDest to its destination writer and
// builds a ready-to-use *slog.Logger for the host binaries.
func NewFromConfig(cfg hostconfig.Config) *slog.Logger {
	var w io.Writer
	switch cfg.LogDest {
	case hostconfig.LogStdout:
		w = os.Stdout
	case hostconfig.LogDiscard:
		w = io.Discard
	default:
		w = os.Stderr
	}
	level := slog.LevelInfo
	if cfg.LogDebug {
		level = slog.LevelDebug
	}
	return slog.New(New(w, level, cfg.LogDebug))
}

// Fault logs a VM fault at error level with PC/kind/message attrs, the
// shape cmd/gxvm reports a halting error with when --debug is not set.
func Fault(log *slog.Logger, pc uint32, kind string, msg string) {
	log.Error("fault", slog.Uint64("pc", uint64(pc)), slog.String("kind", kind), slog.String("msg", msg))
}
