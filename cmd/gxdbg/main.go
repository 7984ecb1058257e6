/*
 * GX-VM - Standalone debugger CLI
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

// Command gx-dbg loads a GX-VM program binary straight into the
// interactive debugger REPL, skipping the unattended-run path entirely.
package main

import (
	"fmt"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/austinhamilton1/gx-vm/debugger"
	"github.com/austinhamilton1/gx-vm/frontier"
	"github.com/austinhamilton1/gx-vm/gxvm"
	"github.com/austinhamilton1/gx-vm/loader"
)

func main() {
	os.Exit(run())
}

func run() int {
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		return 0
	}

	args := getopt.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: gx-dbg <program.bin>")
		return 2
	}

	f, err := os.Open(args[0])
	if err != nil {
		fmt.Fprintln(os.Stderr, "opening program:", err)
		return 1
	}
	defer f.Close()

	img, err := loader.Load(f)
	if err != nil {
		fmt.Fprintln(os.Stderr, "loading program:", err)
		return 1
	}

	vm := gxvm.New(img.Graph, frontier.New(), frontier.New())
	img.Install(vm)

	dbg := debugger.New(vm, os.Stdout)
	debugger.ConsoleREPL(dbg)
	if vm.Fault != nil {
		return 1
	}
	return 0
}
