package listing

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tiny-lang/tinyc/ir"
)

func TestWriteInstructions_Text(t *testing.T) {
	buf := ir.New()
	buf.Emit(":=", "5", "", "x")
	buf.Emit("+", "x", "1", "t0")
	buf.Emit("read", "", "", "y")
	buf.Emit("write", "t0", "", "")
	buf.Emit("label", "", "", "L1")
	buf.Emit("j=", "x", "false", "L1")

	var out bytes.Buffer
	if err := WriteInstructions(&out, buf, Text); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 rendered lines, got %d: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "x := 5") {
		t.Fatalf("unexpected assign line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "t0 := x + 1") {
		t.Fatalf("unexpected arithmetic line: %q", lines[1])
	}
	if !strings.Contains(lines[2], "read y") {
		t.Fatalf("unexpected read line: %q", lines[2])
	}
	if !strings.Contains(lines[3], "write t0") {
		t.Fatalf("unexpected write line: %q", lines[3])
	}
	if !strings.Contains(lines[4], "label L1") {
		t.Fatalf("unexpected label line: %q", lines[4])
	}
	if !strings.Contains(lines[5], "if x = false goto L1") {
		t.Fatalf("unexpected conditional jump line: %q", lines[5])
	}
}

func TestWriteInstructions_JSON(t *testing.T) {
	buf := ir.New()
	buf.Emit(":=", "1", "", "x")

	var out bytes.Buffer
	if err := WriteInstructions(&out, buf, JSON); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), `"op": ":="`) {
		t.Fatalf("expected JSON output to include the op field, got: %s", out.String())
	}
}
