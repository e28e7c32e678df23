// Package codegen lowers a type-checked syntax tree to the
// three-address instructions of package ir, backpatching jump targets
// for If, Repeat, and While once their bodies have been generated.
package codegen

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tiny-lang/tinyc/ast"
	"github.com/tiny-lang/tinyc/ir"
	"github.com/tiny-lang/tinyc/token"
)

// generator holds the single piece of cross-call state the lowering
// needs: the temporary that last held an Op expression's result, the
// channel genExp publishes through to its caller instead of returning
// a value directly.
type generator struct {
	buf      *ir.Buffer
	lastTemp string
	trace    io.Writer
}

// Generate lowers tree into buf and appends the program-end label.
// trace may be nil to disable per-instruction tracing.
func Generate(tree *ast.Node, buf *ir.Buffer, trace io.Writer) {
	g := &generator{buf: buf, trace: trace}
	g.gen(tree)
	buf.Emit("label", "", "", "L0")
}

func (g *generator) gen(t *ast.Node) {
	if t == nil {
		return
	}
	switch t.Kind {
	case ast.StmtNode:
		g.genStmt(t)
	case ast.ExpNode:
		g.genExp(t)
	}
	g.gen(t.Sibling)
}

// operand materialises the three-address representation of an
// expression operand without generating code for anything but Op
// subtrees: an Id is used by name, and any other leaf (Const or Bool)
// is used by its integer Val, matching the language's single integer
// representation for both.
func (g *generator) operand(e *ast.Node) string {
	if e == nil {
		return ""
	}
	switch e.Exp {
	case ast.OpExp:
		g.genExp(e)
		return g.lastTemp
	case ast.IdExp:
		return e.Name
	default:
		return strconv.Itoa(e.Val)
	}
}

func (g *generator) genStmt(t *ast.Node) {
	switch t.Stmt {
	case ast.IfStmt:
		g.genIf(t)
	case ast.RepeatStmt:
		g.genRepeat(t)
	case ast.WhileStmt:
		g.genWhile(t)
	case ast.AssignStmt:
		rhs := g.operand(t.Children[0])
		g.buf.Emit(":=", rhs, "", t.Name)
	case ast.ReadStmt:
		g.buf.Emit("read", "", "", t.Name)
	case ast.WriteStmt:
		g.genWrite(t)
	}
}

func (g *generator) genIf(t *ast.Node) {
	cond := g.operand(t.Children[0])
	savedThen := g.buf.EmitSkip(1)

	g.gen(t.Children[1])

	hasElse := t.Children[2] != nil
	var savedElse int
	if hasElse {
		savedElse = g.buf.EmitSkip(1)
	}

	falseLabel := g.buf.NewLabel()
	g.buf.Emit("label", "", "", falseLabel)
	g.buf.EmitBackup(savedThen)
	g.buf.Emit("j=", cond, "false", falseLabel)
	g.buf.EmitRestore()

	if hasElse {
		g.gen(t.Children[2])
		endLabel := g.buf.NewLabel()
		g.buf.Emit("label", "", "", endLabel)
		g.buf.EmitBackup(savedElse)
		g.buf.Emit("goto", "", "", endLabel)
		g.buf.EmitRestore()
	}
}

func (g *generator) genRepeat(t *ast.Node) {
	top := g.buf.NewLabel()
	g.buf.Emit("label", "", "", top)
	g.gen(t.Children[0])
	cond := g.operand(t.Children[1])
	g.buf.Emit("j=", cond, "false", top)
}

func (g *generator) genWhile(t *ast.Node) {
	top := g.buf.NewLabel()
	g.buf.Emit("label", "", "", top)
	cond := g.operand(t.Children[0])
	saved := g.buf.EmitSkip(1)
	g.gen(t.Children[1])
	g.buf.Emit("goto", "", "", top)
	exit := g.buf.NewLabel()
	g.buf.Emit("label", "", "", exit)
	g.buf.EmitBackup(saved)
	g.buf.Emit("j=", cond, "false", exit)
	g.buf.EmitRestore()
}

func (g *generator) genWrite(t *ast.Node) {
	child := t.Children[0]
	if child != nil && child.Exp == ast.StrExp {
		g.buf.Emit("write", strconv.Quote(child.Name), "", "")
		return
	}
	g.buf.Emit("write", g.operand(child), "", "")
}

func (g *generator) genExp(t *ast.Node) {
	if t.Exp != ast.OpExp {
		return
	}

	a := g.operand(t.Children[0])
	var b string
	if t.Op != token.NOT {
		b = g.operand(t.Children[1])
	}

	temp := g.buf.NewTemp()
	switch t.Op {
	case token.PLUS:
		g.buf.Emit("+", a, b, temp)
	case token.MINUS:
		g.buf.Emit("-", a, b, temp)
	case token.TIMES:
		g.buf.Emit("*", a, b, temp)
	case token.OVER:
		g.buf.Emit("/", a, b, temp)
	case token.LT:
		g.buf.Emit("<", a, b, temp)
	case token.LE:
		g.buf.Emit("<=", a, b, temp)
	case token.GT:
		g.buf.Emit(">", a, b, temp)
	case token.GE:
		g.buf.Emit(">=", a, b, temp)
	case token.EQ:
		g.buf.Emit("=", a, b, temp)
	case token.AND:
		g.buf.Emit("and", a, b, temp)
	case token.OR:
		g.buf.Emit("or", a, b, temp)
	case token.NOT:
		g.buf.Emit("not", a, "", temp)
	default:
		g.buf.Emit("BUG: Unknown operator", "", "", "")
	}
	g.lastTemp = temp
	if g.trace != nil {
		fmt.Fprintf(g.trace, "line %4d: %s holds the result of %s\n", t.Line, temp, t.Op)
	}
}
