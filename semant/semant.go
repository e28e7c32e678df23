// Package semant implements two-pass semantic analysis: a preorder
// pass that resolves identifier uses against the symbol table the
// parser already populated with declarations, and a postorder pass
// that propagates types bottom-up and reports type errors.
package semant

import (
	"fmt"
	"io"

	"github.com/tiny-lang/tinyc/ast"
	"github.com/tiny-lang/tinyc/diag"
	"github.com/tiny-lang/tinyc/symtab"
	"github.com/tiny-lang/tinyc/token"
)

// traverse is the generic recursive walk every analysis pass is built
// from: visit the node, then each child in order, then the postorder
// hook, then the sibling.
func traverse(n *ast.Node, pre, post func(*ast.Node)) {
	if n == nil {
		return
	}
	pre(n)
	for _, c := range n.Children {
		traverse(c, pre, post)
	}
	post(n)
	traverse(n.Sibling, pre, post)
}

// BuildSymtab resolves every Assign, Read, and Id use against table,
// reporting an undeclared-identifier diagnostic the first time a name
// is seen without a prior declaration and appending the line to the
// entry's use list otherwise.
func BuildSymtab(tree *ast.Node, table *symtab.Table, diags *diag.Bag, trace io.Writer) {
	reported := make(map[string]bool)
	traverse(tree, func(n *ast.Node) {
		name, ok := identifierUse(n)
		if !ok {
			return
		}
		if _, declared := table.Lookup(name); !declared {
			if !reported[name] {
				reported[name] = true
				diags.Add(diag.Symbol, n.Line, "undeclared identifier")
			}
			return
		}
		table.AddLine(name, n.Line)
		if trace != nil {
			fmt.Fprintf(trace, "line %4d: resolved %s\n", n.Line, name)
		}
	}, func(*ast.Node) {})
}

func identifierUse(n *ast.Node) (string, bool) {
	switch {
	case n.Kind == ast.StmtNode && (n.Stmt == ast.AssignStmt || n.Stmt == ast.ReadStmt):
		return n.Name, true
	case n.Kind == ast.ExpNode && n.Exp == ast.IdExp:
		return n.Name, true
	default:
		return "", false
	}
}

// TypeCheck propagates types bottom-up over tree, reporting a type
// error at every site where an operand's type is not what its context
// requires.
func TypeCheck(tree *ast.Node, table *symtab.Table, diags *diag.Bag, trace io.Writer) {
	traverse(tree, func(*ast.Node) {}, func(n *ast.Node) {
		checkNode(n, table, diags)
		if trace != nil {
			fmt.Fprintf(trace, "line %4d: type %s\n", n.Line, n.Type)
		}
	})
}

func childType(n *ast.Node, i int) ast.Type {
	if n == nil || n.Children[i] == nil {
		return ast.Void
	}
	return n.Children[i].Type
}

// childLine reports the line of n's i'th child, matching the
// original's practice of blaming the offending subexpression rather
// than the enclosing statement; it falls back to n's own line if the
// child is absent (a syntax error already latched the pipeline in
// that case, so this path is defensive only).
func childLine(n *ast.Node, i int) int {
	if n == nil || n.Children[i] == nil {
		return n.Line
	}
	return n.Children[i].Line
}

func checkNode(n *ast.Node, table *symtab.Table, diags *diag.Bag) {
	if n.Kind == ast.ExpNode {
		checkExp(n, table, diags)
		return
	}
	checkStmt(n, table, diags)
}

func checkExp(n *ast.Node, table *symtab.Table, diags *diag.Bag) {
	switch n.Exp {
	case ast.ConstExp:
		n.Type = ast.Integer
	case ast.StrExp:
		n.Type = ast.String
	case ast.BoolExp:
		n.Type = ast.Boolean
	case ast.IdExp:
		n.Type = table.Type(n.Name)
	case ast.OpExp:
		checkOp(n, diags)
	}
}

func checkOp(n *ast.Node, diags *diag.Bag) {
	left := childType(n, 0)
	if n.Op == token.NOT {
		if left != ast.Boolean {
			diags.Add(diag.TypeErr, n.Line, "'not' operator needs a boolean expression")
		}
		n.Type = ast.Boolean
		return
	}

	right := childType(n, 1)
	switch {
	case left == ast.String || right == ast.String:
		diags.Add(diag.TypeErr, n.Line, "string value is not usable here")
	case left != right:
		diags.Add(diag.TypeErr, n.Line, "the types of operands are not equal")
	}

	switch n.Op {
	case token.EQ, token.LT, token.LE, token.GT, token.GE, token.AND, token.OR:
		n.Type = ast.Boolean
	default:
		n.Type = ast.Integer
	}
}

func checkStmt(n *ast.Node, table *symtab.Table, diags *diag.Bag) {
	switch n.Stmt {
	case ast.IfStmt:
		if childType(n, 0) != ast.Boolean {
			diags.Add(diag.TypeErr, childLine(n, 0), "if test is not Boolean")
		}
	case ast.RepeatStmt:
		if childType(n, 1) != ast.Boolean {
			diags.Add(diag.TypeErr, childLine(n, 1), "repeat test is not Boolean")
		}
	case ast.WhileStmt:
		if childType(n, 0) != ast.Boolean {
			diags.Add(diag.TypeErr, childLine(n, 0), "while test is not Boolean")
		}
	case ast.AssignStmt:
		declared := table.Type(n.Name)
		n.Type = declared
		rhs := childType(n, 0)
		switch {
		case rhs == ast.String:
			diags.Add(diag.TypeErr, childLine(n, 0), "string value is not usable here")
		case rhs != declared:
			diags.Add(diag.TypeErr, childLine(n, 0), "assignment of a different type value")
		}
	case ast.ReadStmt:
		n.Type = table.Type(n.Name)
	case ast.WriteStmt:
		child := n.Children[0]
		if child != nil && child.Exp == ast.StrExp {
			return
		}
		if childType(n, 0) != ast.Integer {
			diags.Add(diag.TypeErr, childLine(n, 0), "write of non-integer value")
		}
	}
}
