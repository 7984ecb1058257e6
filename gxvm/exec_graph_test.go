package gxvm

import "testing"

func TestOpNITERRejectsOutOfRangeSlot(t *testing.T) {
	vm := newTestVM(g6Graph())
	_, err := vm.opNITER(Decoded{Arg1: NumIterCursor})
	assertFault(t, err, IteratorOutOfRange)
}

func TestOpNNEXTWalksNeighbours(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(RNode, 0)
	if _, err := vm.opNITER(Decoded{Arg1: 0}); err != nil {
		t.Fatalf("opNITER() error = %v", err)
	}
	var neighbours []int32
	for i := 0; i < 4; i++ {
		status, err := vm.opNNEXT(Decoded{Arg1: 0})
		if err != nil {
			t.Fatalf("opNNEXT() error = %v", err)
		}
		_ = status
		if vm.Flags&FlagZ != 0 {
			break
		}
		neighbours = append(neighbours, vm.R[RNbr])
	}
	want := []int32{1, 2, 5}
	if len(neighbours) != len(want) {
		t.Fatalf("neighbours = %v, want %v", neighbours, want)
	}
	for i := range want {
		if neighbours[i] != want[i] {
			t.Errorf("neighbours[%d] = %d, want %d", i, neighbours[i], want[i])
		}
	}
}

func TestOpNNEXTSetsZOnExhaustionWithoutAdvancingCursor(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(RNode, 4) // degree 2
	vm.opNITER(Decoded{Arg1: 0})
	vm.opNNEXT(Decoded{Arg1: 0})
	vm.opNNEXT(Decoded{Arg1: 0})
	cursorAfterTwo := vm.NIter[0]
	status, err := vm.opNNEXT(Decoded{Arg1: 0})
	if err != nil || status != StatusContinue {
		t.Fatalf("opNNEXT() = %v, %v", status, err)
	}
	if vm.Flags&FlagZ == 0 {
		t.Error("expected FLAGS.Z on exhaustion")
	}
	if vm.NIter[0] != cursorAfterTwo {
		t.Errorf("NIter[0] = %d, want unchanged %d", vm.NIter[0], cursorAfterTwo)
	}
}

func TestOpEITERResetsCursorAndNode(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(RNode, 3)
	vm.EIter = 7
	vm.opEITER(Decoded{})
	if vm.EIter != 0 || vm.R[RNode] != 0 {
		t.Errorf("EIter=%d R_NODE=%d, want 0/0", vm.EIter, vm.R[RNode])
	}
}

func TestOpENEXTFullEdgeScan(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.opEITER(Decoded{})
	type tuple struct{ node, nbr, val int32 }
	var got []tuple
	for i := 0; i < 100; i++ {
		vm.opENEXT(Decoded{})
		if vm.Flags&FlagZ != 0 {
			break
		}
		got = append(got, tuple{vm.R[RNode], vm.R[RNbr], vm.R[RVal]})
	}
	if len(got) != 18 {
		t.Fatalf("edge count = %d, want 18 (sum of degrees)", len(got))
	}
	if got[0].node != 0 || got[0].nbr != 1 {
		t.Errorf("first tuple = %+v, want node=0 nbr=1", got[0])
	}
	if got[len(got)-1].node != 5 {
		t.Errorf("last tuple node = %d, want 5", got[len(got)-1].node)
	}
}

func TestOpHASEInvertedPolarity(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(RNode, 0)
	vm.WriteR(RNbr, 1)
	vm.opHASE(Decoded{})
	if vm.Flags&FlagZ != 0 {
		t.Error("expected Z clear for present edge 0->1")
	}

	vm.WriteR(RNbr, 3)
	vm.opHASE(Decoded{})
	if vm.Flags&FlagZ == 0 {
		t.Error("expected Z set for absent edge 0->3")
	}
}

func TestOpDEG(t *testing.T) {
	vm := newTestVM(g6Graph())
	vm.WriteR(RNode, 2)
	vm.opDEG(Decoded{Arg1: RNode})
	if vm.R[RVal] != 4 {
		t.Errorf("R_VAL = %d, want 4", vm.R[RVal])
	}
}
