package diag

import (
	"strings"
	"testing"
)

func TestBag_Add(t *testing.T) {
	bag := NewBag()
	if bag.HasErrors() {
		t.Fatalf("a fresh bag should have no errors")
	}

	bag.Add(Syntax, 4, "missing ';'")
	if !bag.HasErrors() {
		t.Fatalf("adding a diagnostic should flip HasErrors")
	}

	diags := bag.Diagnostics()
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(diags))
	}
	if diags[0].Line != 4 || diags[0].Kind != Syntax {
		t.Fatalf("unexpected diagnostic: %+v", diags[0])
	}
}

func TestDiagnostic_Error(t *testing.T) {
	tests := []struct {
		caption string
		kind    Kind
		want    string
	}{
		{caption: "lexical", kind: Lexical, want: "Lexical error at line 2: bad char"},
		{caption: "syntax", kind: Syntax, want: "Syntax error at line 2: bad char"},
		{caption: "symbol", kind: Symbol, want: "Symbol error at line 2: bad char"},
		{caption: "type", kind: TypeErr, want: "Type error at line 2: bad char"},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			d := &Diagnostic{Kind: tt.kind, Line: 2, Message: "bad char"}
			if got := d.Error(); got != tt.want {
				t.Fatalf("unexpected message; want: %q, got: %q", tt.want, got)
			}
		})
	}
}

func TestBag_Error_JoinsAllDiagnostics(t *testing.T) {
	bag := NewBag()
	bag.Add(Syntax, 1, "one")
	bag.Add(Symbol, 2, "two")

	msg := bag.Error()
	if !strings.Contains(msg, "one") || !strings.Contains(msg, "two") {
		t.Fatalf("expected combined message to mention both diagnostics, got: %q", msg)
	}
}
