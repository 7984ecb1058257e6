package gxvm

import "testing"

func TestSyncOpcodesAreNoOps(t *testing.T) {
	vm := newTestVM(g6Graph())
	before := *vm
	handlers := []func(*VM, Decoded) (Status, error){
		(*VM).opPARALLEL, (*VM).opBARRIER, (*VM).opLOCK, (*VM).opUNLOCK,
	}
	for _, h := range handlers {
		status, err := h(vm, Decoded{})
		if err != nil || status != StatusContinue {
			t.Fatalf("sync opcode returned %v, %v", status, err)
		}
	}
	if vm.R != before.R || vm.F != before.F || vm.Flags != before.Flags || vm.PC != before.PC {
		t.Error("synchronisation opcodes must not mutate observable state")
	}
}
