/*
 * GX-VM - Debugger command parser
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

// Package debugger implements an interactive command REPL for inspecting
// and single-stepping a gxvm.VM: register/memory/frontier inspection,
// breakpoints, and step/continue control.
package debugger

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// cmdLine is a cursor over one command line being tokenized.
type cmdLine struct {
	line string
	pos  int
}

type cmd struct {
	name     string
	min      int // minimum prefix length that uniquely matches this command
	process  func(*cmdLine, *Debugger) (bool, error)
	complete func(*cmdLine) []string
}

var cmdList = []cmd{
	{name: "step", min: 1, process: cmdStep},
	{name: "continue", min: 1, process: cmdContinue},
	{name: "regs", min: 1, process: cmdRegs},
	{name: "mem", min: 1, process: cmdMem},
	{name: "frontier", min: 1, process: cmdFrontier},
	{name: "break", min: 2, process: cmdBreak},
	{name: "delete", min: 1, process: cmdDelete},
	{name: "disasm", min: 2, process: cmdDisasm},
	{name: "quit", min: 1, process: cmdQuit},
	{name: "help", min: 1, process: cmdHelp},
}

// ProcessCommand parses and runs one line of debugger input. The returned
// bool is true when the REPL should exit (the "quit" command).
func ProcessCommand(commandLine string, dbg *Debugger) (bool, error) {
	line := cmdLine{line: commandLine}
	word := line.getWord()

	match := matchList(word)
	if len(match) == 0 {
		return false, errors.New("command not found: " + word)
	}
	if len(match) > 1 {
		return false, errors.New("ambiguous command: " + word)
	}
	return match[0].process(&line, dbg)
}

// CompleteCmd returns tab-completion candidates for liner's SetCompleter.
func CompleteCmd(commandLine string) []string {
	line := cmdLine{line: commandLine}
	word := line.getWord()

	if !line.isEOL() && commandLine[line.pos-1] == ' ' {
		match := matchList(word)
		if len(match) != 1 || match[0].complete == nil {
			return nil
		}
		return match[0].complete(&line)
	}

	match := matchList(word)
	names := make([]string, len(match))
	for i, m := range match {
		names[i] = m.name
	}
	return names
}

func matchCommand(m cmd, word string) bool {
	if len(word) > len(m.name) || len(word) < m.min {
		return false
	}
	return m.name[:len(word)] == word
}

func matchList(word string) []cmd {
	if word == "" {
		return nil
	}
	var match []cmd
	for _, m := range cmdList {
		if matchCommand(m, word) {
			match = append(match, m)
		}
	}
	return match
}

func (l *cmdLine) isEOL() bool {
	return l.pos >= len(l.line)
}

func (l *cmdLine) skipSpace() {
	for !l.isEOL() && unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
}

// getWord returns the next whitespace-delimited lowercase token.
func (l *cmdLine) getWord() string {
	l.skipSpace()
	start := l.pos
	for !l.isEOL() && !unicode.IsSpace(rune(l.line[l.pos])) {
		l.pos++
	}
	return strings.ToLower(l.line[start:l.pos])
}

// getInt parses the next token as a decimal or 0x-prefixed hex integer.
func (l *cmdLine) getInt() (int64, error) {
	tok := l.getWord()
	if tok == "" {
		return 0, errors.New("expected a number")
	}
	if strings.HasPrefix(tok, "0x") {
		return strconv.ParseInt(tok[2:], 16, 64)
	}
	return strconv.ParseInt(tok, 10, 64)
}
