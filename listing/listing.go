// Package listing renders compiler output: the three-address
// instruction listing in the original fixed text format, plus JSON
// and indented-tree variants used for debugging.
package listing

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/tiny-lang/tinyc/ast"
	"github.com/tiny-lang/tinyc/ir"
)

// Format selects how WriteInstructions renders a buffer.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
)

var arithmeticOps = map[string]bool{
	"+": true, "-": true, "*": true, "/": true,
	"and": true, "or": true,
	"<": true, "<=": true, ">": true, ">=": true, "=": true,
}

// WriteInstructions renders buf's instructions to w in the requested
// format.
func WriteInstructions(w io.Writer, buf *ir.Buffer, format Format) error {
	if format == JSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(buf.Instructions())
	}
	for i, ins := range buf.Instructions() {
		if _, err := fmt.Fprintln(w, formatInstruction(i, ins)); err != nil {
			return err
		}
	}
	return nil
}

func formatInstruction(i int, ins ir.Instruction) string {
	prefix := fmt.Sprintf("%5d)  ", i)
	switch {
	case arithmeticOps[ins.Op]:
		return fmt.Sprintf("%s%s := %s %s %s", prefix, ins.C, ins.A, ins.Op, ins.B)
	case ins.Op == "read":
		return fmt.Sprintf("%sread %s", prefix, ins.C)
	case ins.Op == "write":
		return fmt.Sprintf("%swrite %s", prefix, ins.A)
	case ins.Op == ":=":
		return fmt.Sprintf("%s%s := %s", prefix, ins.C, ins.A)
	case ins.Op == "label" || ins.Op == "goto":
		return fmt.Sprintf("%s%s %s", prefix, ins.Op, ins.C)
	case ins.Op == "j=":
		return fmt.Sprintf("%sif %s = %s goto %s", prefix, ins.A, ins.B, ins.C)
	default:
		return fmt.Sprintf("%s%s", prefix, ins.Op)
	}
}

// WriteTree prints tree as an indented outline, one node per line.
func WriteTree(w io.Writer, tree *ast.Node) {
	printNode(w, tree, 0)
}

func printNode(w io.Writer, n *ast.Node, depth int) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), describe(n))
	for _, c := range n.Children {
		printNode(w, c, depth+1)
	}
	printNode(w, n.Sibling, depth)
}

func describe(n *ast.Node) string {
	if n.Kind == ast.StmtNode {
		switch n.Stmt {
		case ast.IfStmt:
			return "If"
		case ast.RepeatStmt:
			return "Repeat"
		case ast.WhileStmt:
			return "While"
		case ast.AssignStmt:
			return fmt.Sprintf("Assign: %s", n.Name)
		case ast.ReadStmt:
			return fmt.Sprintf("Read: %s", n.Name)
		case ast.WriteStmt:
			return "Write"
		}
	}
	switch n.Exp {
	case ast.OpExp:
		return fmt.Sprintf("Op: %s", n.Op)
	case ast.ConstExp:
		return fmt.Sprintf("Const: %d", n.Val)
	case ast.IdExp:
		return fmt.Sprintf("Id: %s", n.Name)
	case ast.StrExp:
		return fmt.Sprintf("Str: %q", n.Name)
	case ast.BoolExp:
		return fmt.Sprintf("Bool: %d", n.Val)
	}
	return "?"
}
