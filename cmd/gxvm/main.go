/*
 * GX-VM - Host CLI
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

// Command gx-vm loads and runs a GX-VM program binary to completion
// unattended. With --debug it installs a default exit_hook that renders the
// faulting instruction via gxvm.Disassemble; the interactive REPL is a
// separate binary, cmd/gxdbg.
package main

import (
	"fmt"
	"log/slog"
	"os"

	getopt "github.com/pborman/getopt/v2"

	"github.com/austinhamilton1/gx-vm/frontier"
	"github.com/austinhamilton1/gx-vm/gxvm"
	"github.com/austinhamilton1/gx-vm/hostconfig"
	"github.com/austinhamilton1/gx-vm/internal/gxlog"
	"github.com/austinhamilton1/gx-vm/loader"
)

func main() {
	os.Exit(run())
}

func run() int {
	optMaxInstr := getopt.Uint64Long("max-instr", 'n', 0, "Instruction execution cap (0 = unbounded)")
	optDebug := getopt.BoolLong("debug", 'd', "Install the disassembling exit_hook on fault")
	optLogDest := getopt.StringLong("log", 'l', "stderr", "Log destination: stderr, stdout, or discard")
	optLogDebug := getopt.BoolLong("verbose", 'v', "Include debug-level log records")
	optHelp := getopt.BoolLong("help", 'h', "Help")
	getopt.Parse()

	if *optHelp {
		getopt.Usage()
		return 0
	}

	args := getopt.Args()
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: gx-vm [options] <program.bin>")
		return 2
	}

	logDest, err := hostconfig.ParseLogDest(*optLogDest)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	cfg := hostconfig.Config{
		ProgramPath:     args[0],
		MaxInstructions: *optMaxInstr,
		Debug:           *optDebug,
		LogDest:         logDest,
		LogDebug:        *optLogDebug,
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log := gxlog.NewFromConfig(cfg)
	slog.SetDefault(log)

	f, err := os.Open(cfg.ProgramPath)
	if err != nil {
		log.Error("opening program", "path", cfg.ProgramPath, "err", err)
		return 1
	}
	defer f.Close()

	img, err := loader.Load(f)
	if err != nil {
		log.Error("loading program", "err", err)
		return 1
	}

	vm := gxvm.New(img.Graph, frontier.New(), frontier.New())
	img.Install(vm)

	log.Info("program loaded", "path", cfg.ProgramPath, "nodes", img.Graph.N)

	if cfg.Debug {
		vm.ExitHook = disassemblingExitHook(log)
	}

	var status gxvm.Status
	if cfg.MaxInstructions > 0 {
		status = vm.RunLimited(cfg.MaxInstructions)
	} else {
		status = vm.Run()
	}

	if status == gxvm.StatusError {
		if !cfg.Debug && vm.Fault != nil {
			gxlog.Fault(log, vm.Fault.PC, vm.Fault.Kind.String(), vm.Fault.Msg)
		}
		return 1
	}
	log.Info("program halted", "clock", vm.Clock)
	return 0
}

// disassemblingExitHook is the default --debug exit_hook (SPEC_FULL.md §4):
// on a fault it renders the faulting instruction via gxvm.Disassemble
// alongside the fault kind, instead of just the fault kind and message.
func disassemblingExitHook(log *slog.Logger) gxvm.ExitHook {
	return func(vm *gxvm.VM, status gxvm.Status) {
		if status != gxvm.StatusError || vm.Fault == nil {
			return
		}
		inst := gxvm.Disassemble(vm.Program[vm.Fault.PC])
		log.Error("fault",
			"pc", vm.Fault.PC,
			"kind", vm.Fault.Kind.String(),
			"msg", vm.Fault.Msg,
			"inst", inst)
	}
}
