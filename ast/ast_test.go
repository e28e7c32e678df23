package ast

import (
	"testing"

	"github.com/tiny-lang/tinyc/token"
)

func TestType_String(t *testing.T) {
	tests := []struct {
		typ  Type
		want string
	}{
		{Void, "void"},
		{Integer, "int"},
		{Boolean, "bool"},
		{String, "string"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Fatalf("unexpected string for %d; want: %q, got: %q", tt.typ, tt.want, got)
		}
	}
}

func TestNewStmtNode_SiblingChaining(t *testing.T) {
	first := NewStmtNode(ReadStmt, 1)
	first.Name = "x"
	second := NewStmtNode(WriteStmt, 2)
	first.Sibling = second

	if first.Kind != StmtNode || first.Sibling.Kind != StmtNode {
		t.Fatalf("both nodes should be statement nodes")
	}
	if first.Sibling != second {
		t.Fatalf("sibling link should be preserved")
	}
}

func TestNewExpNode_OpNodeShape(t *testing.T) {
	left := NewExpNode(ConstExp, 1)
	left.Val = 2
	right := NewExpNode(ConstExp, 1)
	right.Val = 3

	op := NewExpNode(OpExp, 1)
	op.Op = token.PLUS
	op.Children[0] = left
	op.Children[1] = right

	if op.Kind != ExpNode || op.Exp != OpExp {
		t.Fatalf("op node should be an ExpNode/OpExp")
	}
	if op.Children[0].Val != 2 || op.Children[1].Val != 3 {
		t.Fatalf("children values not wired correctly")
	}
	if op.Children[2] != nil {
		t.Fatalf("a binary op should leave the third child nil")
	}
}
