package gxvm

import "testing"

func TestOpJMPSetsPC(t *testing.T) {
	vm := newTestVM(g6Graph())
	status, err := vm.opJMP(Decoded{Imm: 42})
	if err != nil || status != StatusContinue {
		t.Fatalf("opJMP() = %v, %v", status, err)
	}
	if vm.PC != 42 {
		t.Errorf("PC = %d, want 42", vm.PC)
	}
}

func TestOpJMPOutOfRangeFaults(t *testing.T) {
	vm := newTestVM(g6Graph())
	_, err := vm.opJMP(Decoded{Imm: ProgSize})
	assertFault(t, err, BranchOutOfRange)
}

func TestOpJMPNegativeFaults(t *testing.T) {
	vm := newTestVM(g6Graph())
	_, err := vm.opJMP(Decoded{Imm: -1})
	assertFault(t, err, BranchOutOfRange)
}

func TestConditionalBranches(t *testing.T) {
	cases := []struct {
		name   string
		flags  uint8
		branch func(*VM, Decoded) (Status, error)
		taken  bool
	}{
		{"BZ taken", FlagZ, (*VM).opBZ, true},
		{"BZ not taken", FlagN, (*VM).opBZ, false},
		{"BNZ taken", FlagN, (*VM).opBNZ, true},
		{"BNZ not taken", FlagZ, (*VM).opBNZ, false},
		{"BLT taken", FlagN, (*VM).opBLT, true},
		{"BLT not taken", FlagP, (*VM).opBLT, false},
		{"BGE taken on P", FlagP, (*VM).opBGE, true},
		{"BGE taken on Z", FlagZ, (*VM).opBGE, true},
		{"BGE not taken", FlagN, (*VM).opBGE, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			vm := newTestVM(g6Graph())
			vm.Flags = c.flags
			vm.PC = 10
			_, err := c.branch(vm, Decoded{Imm: 99})
			if err != nil {
				t.Fatalf("branch error = %v", err)
			}
			wantPC := uint32(10)
			if c.taken {
				wantPC = 99
			}
			if vm.PC != wantPC {
				t.Errorf("PC = %d, want %d", vm.PC, wantPC)
			}
		})
	}
}

func TestOpHALTReturnsHaltStatus(t *testing.T) {
	vm := newTestVM(g6Graph())
	status, err := vm.opHALT(Decoded{})
	if err != nil || status != StatusHalt {
		t.Errorf("opHALT() = %v, %v", status, err)
	}
}

func assertFault(t *testing.T, err error, kind Kind) {
	t.Helper()
	f, ok := err.(*Fault)
	if !ok {
		t.Fatalf("error = %v, want *Fault", err)
	}
	if f.Kind != kind {
		t.Errorf("Fault.Kind = %v, want %v", f.Kind, kind)
	}
}
