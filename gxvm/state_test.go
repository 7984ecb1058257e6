package gxvm

import "testing"

func TestWriteRDiscardsHardwiredRegisters(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(RZero, 42)
	vm.WriteR(RCore, 42)
	if vm.R[RZero] != 0 || vm.R[RCore] != 0 {
		t.Errorf("R_ZERO/R_CORE = %d/%d, want 0/0", vm.R[RZero], vm.R[RCore])
	}
}

func TestWriteFDiscardsZeroRegister(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteF(FZero, 3.14)
	if vm.F[FZero] != 0 {
		t.Errorf("F_ZERO = %v, want 0", vm.F[FZero])
	}
}

func TestWriteROrdinaryRegisterSucceeds(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(RAcc, 7)
	if vm.R[RAcc] != 7 {
		t.Errorf("R_ACC = %d, want 7", vm.R[RAcc])
	}
}

// TestResetIdempotent exercises the round-trip invariant from spec §8: reset
// followed by any number of further resets yields a bitwise-identical state.
func TestResetIdempotent(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(RAcc, 99)
	vm.PC = 5
	vm.Clock = 1000
	vm.Reset()
	first := *vm
	vm.Reset()
	second := *vm
	if first.PC != second.PC || first.Clock != second.Clock || first.R != second.R {
		t.Errorf("Reset() not idempotent: %+v vs %+v", first, second)
	}
	if vm.R[RAcc] != 0 || vm.PC != 0 || vm.Clock != 0 {
		t.Errorf("Reset() left stale state: R_ACC=%d PC=%d Clock=%d", vm.R[RAcc], vm.PC, vm.Clock)
	}
	if vm.Graph == nil {
		t.Error("Reset() must not clear Graph")
	}
}
