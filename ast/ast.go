// Package ast defines the syntax tree the parser builds and the
// semantic analyzer and code generator walk.
package ast

import "github.com/tiny-lang/tinyc/token"

// Type is the small type domain the analyzer works with. Void
// signals "not yet resolved" or "not applicable".
type Type int

const (
	Void Type = iota
	Integer
	Boolean
	String
)

func (t Type) String() string {
	switch t {
	case Integer:
		return "int"
	case Boolean:
		return "bool"
	case String:
		return "string"
	default:
		return "void"
	}
}

// NodeKind distinguishes the two families of tree node.
type NodeKind int

const (
	StmtNode NodeKind = iota
	ExpNode
)

// StmtKind enumerates statement-node variants.
type StmtKind int

const (
	IfStmt StmtKind = iota
	RepeatStmt
	AssignStmt
	ReadStmt
	WriteStmt
	WhileStmt
)

// ExpKind enumerates expression-node variants.
type ExpKind int

const (
	OpExp ExpKind = iota
	ConstExp
	IdExp
	StrExp
	BoolExp
)

// MaxChildren bounds the fixed child array, mirroring the arena-style
// tree of the language this compiler targets: an If node is the only
// shape that needs all three slots (cond, then-seq, else-seq).
const MaxChildren = 3

// Node is a single syntax-tree node. Which fields are meaningful
// depends on Kind and, within Kind, on Stmt or Exp:
//
//   - If:      Children[0]=cond, Children[1]=then-seq, Children[2]=else-seq (optional)
//   - Repeat:  Children[0]=body-seq, Children[1]=cond
//   - While:   Children[0]=cond, Children[1]=body-seq
//   - Assign:  Children[0]=rhs, Name=lhs identifier
//   - Read:    Name=identifier, no children
//   - Write:   Children[0]=value
//   - Op:      Op=operator, one child for NOT, two otherwise
//   - Const:   Val=integer value
//   - Id:      Name=identifier
//   - Str:     Name=string content
//   - Bool:    Val=0 or 1
//
// A node exclusively owns its children and its sibling; Sibling
// chains statements within a sequence and is never set on expression
// nodes.
type Node struct {
	Kind NodeKind
	Stmt StmtKind
	Exp  ExpKind
	Line int

	Children [MaxChildren]*Node
	Sibling  *Node

	Op   token.Kind
	Val  int
	Name string

	Type Type
}

// NewStmtNode allocates a statement node of the given kind at line.
func NewStmtNode(kind StmtKind, line int) *Node {
	return &Node{Kind: StmtNode, Stmt: kind, Line: line}
}

// NewExpNode allocates an expression node of the given kind at line.
func NewExpNode(kind ExpKind, line int) *Node {
	return &Node{Kind: ExpNode, Exp: kind, Line: line}
}
