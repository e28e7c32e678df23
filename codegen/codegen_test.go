package codegen

import (
	"testing"

	"github.com/tiny-lang/tinyc/ast"
	"github.com/tiny-lang/tinyc/ir"
	"github.com/tiny-lang/tinyc/token"
)

func constInt(v int) *ast.Node {
	n := ast.NewExpNode(ast.ConstExp, 1)
	n.Val = v
	return n
}

func idExp(name string) *ast.Node {
	n := ast.NewExpNode(ast.IdExp, 1)
	n.Name = name
	return n
}

func TestGenerate_ConstantAssignment(t *testing.T) {
	assign := ast.NewStmtNode(ast.AssignStmt, 1)
	assign.Name = "x"
	assign.Children[0] = constInt(7)

	buf := ir.New()
	Generate(assign, buf, nil)

	ins := buf.Instructions()
	if len(ins) != 2 {
		t.Fatalf("expected assign + end label, got %+v", ins)
	}
	if ins[0].Op != ":=" || ins[0].A != "7" || ins[0].C != "x" {
		t.Fatalf("unexpected assign instruction: %+v", ins[0])
	}
	if ins[1].Op != "label" || ins[1].C != "L0" {
		t.Fatalf("expected the final L0 label, got %+v", ins[1])
	}
}

func TestGenerate_ArithmeticUsesOneTempPerOp(t *testing.T) {
	mul := ast.NewExpNode(ast.OpExp, 1)
	mul.Op = token.TIMES
	mul.Children[0] = constInt(3)
	mul.Children[1] = constInt(4)

	add := ast.NewExpNode(ast.OpExp, 1)
	add.Op = token.PLUS
	add.Children[0] = constInt(2)
	add.Children[1] = mul

	assign := ast.NewStmtNode(ast.AssignStmt, 1)
	assign.Name = "x"
	assign.Children[0] = add

	buf := ir.New()
	Generate(assign, buf, nil)

	ins := buf.Instructions()
	if len(ins) != 4 {
		t.Fatalf("expected mul, add, assign, and the end label, got %+v", ins)
	}
	if ins[0].Op != "*" || ins[0].C != "t0" {
		t.Fatalf("expected the inner multiply to compute first into t0: %+v", ins[0])
	}
	if ins[1].Op != "+" || ins[1].A != "2" || ins[1].B != "t0" || ins[1].C != "t1" {
		t.Fatalf("expected the add to use t0 as its right operand: %+v", ins[1])
	}
	if ins[2].Op != ":=" || ins[2].A != "t1" {
		t.Fatalf("expected the assign to use the add's temp: %+v", ins[2])
	}
}

func TestGenerate_IfWithoutElseBackpatchesFalseLabel(t *testing.T) {
	ifNode := ast.NewStmtNode(ast.IfStmt, 1)
	ifNode.Children[0] = idExp("flag")
	body := ast.NewStmtNode(ast.AssignStmt, 1)
	body.Name = "x"
	body.Children[0] = constInt(1)
	ifNode.Children[1] = body

	buf := ir.New()
	Generate(ifNode, buf, nil)

	ins := buf.Instructions()
	if len(ins) != 4 {
		t.Fatalf("expected jump, assign, false-label, and the end label, got %+v", ins)
	}
	if ins[0].Op != "j=" || ins[0].A != "flag" || ins[0].C != "L1" {
		t.Fatalf("unexpected backpatched jump: %+v", ins[0])
	}
	if ins[1].Op != ":=" {
		t.Fatalf("expected the then-branch to follow the jump: %+v", ins[1])
	}
	if ins[2].Op != "label" || ins[2].C != "L1" {
		t.Fatalf("expected the false label to land right after the then-branch: %+v", ins[2])
	}
}

func TestGenerate_WhileLoopJumpsBackToTop(t *testing.T) {
	whileNode := ast.NewStmtNode(ast.WhileStmt, 1)
	whileNode.Children[0] = idExp("flag")
	body := ast.NewStmtNode(ast.AssignStmt, 1)
	body.Name = "x"
	body.Children[0] = constInt(1)
	whileNode.Children[1] = body

	buf := ir.New()
	Generate(whileNode, buf, nil)

	ins := buf.Instructions()
	if ins[0].Op != "label" || ins[0].C != "L1" {
		t.Fatalf("expected a top label first: %+v", ins[0])
	}
	if ins[1].Op != "j=" || ins[1].C != "L2" {
		t.Fatalf("expected a backpatched exit jump: %+v", ins[1])
	}
	last := ins[len(ins)-3]
	if last.Op != "goto" || last.C != "L1" {
		t.Fatalf("expected the loop body to jump back to the top label: %+v", last)
	}
}

func TestGenerate_WriteOfStringLiteralQuotesIt(t *testing.T) {
	write := ast.NewStmtNode(ast.WriteStmt, 1)
	strNode := ast.NewExpNode(ast.StrExp, 1)
	strNode.Name = "hello"
	write.Children[0] = strNode

	buf := ir.New()
	Generate(write, buf, nil)

	ins := buf.Instructions()
	if ins[0].Op != "write" || ins[0].A != `"hello"` {
		t.Fatalf("expected a quoted string literal operand, got %+v", ins[0])
	}
}
