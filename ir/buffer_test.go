package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuffer_EmitAndNames(t *testing.T) {
	buf := New()

	loc := buf.Emit("+", "a", "b", "t0")
	if loc != 0 {
		t.Fatalf("first emit should land at 0, got %d", loc)
	}
	if buf.Len() != 1 {
		t.Fatalf("length should track HighEmitLoc, got %d", buf.Len())
	}

	if got := buf.NewTemp(); got != "t0" {
		t.Fatalf("first temp should be t0, got %s", got)
	}
	if got := buf.NewTemp(); got != "t1" {
		t.Fatalf("second temp should be t1, got %s", got)
	}
	if got := buf.NewLabel(); got != "L1" {
		t.Fatalf("first label should be L1 (L0 reserved), got %s", got)
	}
	if got := buf.NewLabel(); got != "L2" {
		t.Fatalf("second label should be L2, got %s", got)
	}
}

func TestBuffer_BackpatchRoundTrip(t *testing.T) {
	buf := New()

	buf.Emit("label", "", "", "L1")
	saved := buf.EmitSkip(1)
	buf.Emit("+", "a", "b", "t0")

	if buf.Len() != 3 {
		t.Fatalf("expected 3 instructions reserved after emit+skip+emit, got %d", buf.Len())
	}

	buf.EmitBackup(saved)
	buf.Emit("j=", "t0", "false", "L1")
	buf.EmitRestore()

	buf.Emit("goto", "", "", "L1")

	want := []Instruction{
		{Op: "label", C: "L1"},
		{Op: "j=", A: "t0", B: "false", C: "L1"},
		{Op: "+", A: "a", B: "b", C: "t0"},
		{Op: "goto", C: "L1"},
	}
	if diff := cmp.Diff(want, buf.Instructions()); diff != "" {
		t.Fatalf("unexpected instructions (-want +got):\n%s", diff)
	}
}
