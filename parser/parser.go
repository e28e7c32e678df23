// Package parser implements a recursive-descent parser for TINY:
// mixed arithmetic/relational/boolean precedence, a prologue of
// declarations feeding directly into the symbol table, and
// best-effort recovery that keeps advancing the token cursor past a
// syntax error rather than aborting.
package parser

import (
	"fmt"
	"io"
	"strconv"

	"github.com/tiny-lang/tinyc/ast"
	"github.com/tiny-lang/tinyc/diag"
	"github.com/tiny-lang/tinyc/symtab"
	"github.com/tiny-lang/tinyc/token"
)

// Parser consumes a token.Source and builds a syntax tree, inserting
// declared identifiers into table as it goes and reporting problems
// to diags.
type Parser struct {
	src   token.Source
	cur   token.Token
	table *symtab.Table
	diags *diag.Bag
	trace io.Writer
}

// New constructs a Parser over src. The first token is fetched
// immediately so Parse can inspect p.cur right away. trace may be nil
// to disable per-token tracing.
func New(src token.Source, table *symtab.Table, diags *diag.Bag, trace io.Writer) *Parser {
	p := &Parser{src: src, table: table, diags: diags, trace: trace}
	p.advance()
	return p
}

// Parse consumes the entire token stream and returns the root of the
// statement sequence. The cursor stands at ENDFILE on return in a
// well-formed program; any problems encountered are in the Parser's
// diagnostic bag, not returned directly, so the caller can decide
// whether to keep going.
func (p *Parser) Parse() *ast.Node {
	if p.cur.Kind == token.INT || p.cur.Kind == token.BOOL || p.cur.Kind == token.STRING {
		p.declarations()
	}
	tree := p.stmtSequence()
	if p.cur.Kind != token.ENDFILE {
		p.errorf("code ends before file")
	}
	return tree
}

func (p *Parser) advance() {
	tok, err := p.src.Next()
	if err != nil {
		p.diags.Add(diag.Lexical, p.src.Line(), err.Error())
		tok = token.Token{Kind: token.ENDFILE, Line: p.src.Line()}
	}
	p.cur = tok
	if p.trace != nil {
		fmt.Fprintf(p.trace, "%4d  %-12s %q\n", tok.Line, tok.Kind, tok.Lexeme)
	}
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.diags.Add(diag.Syntax, p.cur.Line, fmt.Sprintf(format, args...))
}

// match consumes the current token if it is of kind expected and
// reports a targeted diagnostic otherwise. When ASSIGN is expected but
// EQ is seen, the parser reports the confusion and still consumes the
// EQ to resynchronise; every other mismatch leaves the cursor
// untouched.
func (p *Parser) match(expected token.Kind) bool {
	if p.cur.Kind == expected {
		p.advance()
		return true
	}
	switch expected {
	case token.SEMI:
		p.errorf("missing ';'")
	case token.THEN:
		p.errorf("missing 'then'")
	case token.END:
		p.errorf("missing 'end'")
	case token.UNTIL:
		p.errorf("missing 'until'")
	case token.DO:
		p.errorf("missing 'do'")
	case token.ID:
		p.errorf("need an identifier")
	case token.RPAREN:
		p.errorf("parenthesis matching error, need a right parenthesis")
	case token.ASSIGN:
		if p.cur.Kind == token.EQ {
			p.errorf("should be ':=' instead of '='")
			p.advance()
		} else {
			p.errorf("missing ':='")
		}
	default:
		p.errorf("unexpected token")
	}
	return false
}

func (p *Parser) declarations() {
	for p.cur.Kind == token.INT || p.cur.Kind == token.BOOL || p.cur.Kind == token.STRING {
		typ := typeOf(p.cur.Kind)
		p.advance()

		p.declareOne(typ)
		for p.cur.Kind == token.COMMA {
			p.advance()
			p.declareOne(typ)
		}
		p.match(token.SEMI)
	}
}

func typeOf(k token.Kind) ast.Type {
	switch k {
	case token.INT:
		return ast.Integer
	case token.BOOL:
		return ast.Boolean
	case token.STRING:
		return ast.String
	default:
		return ast.Void
	}
}

func (p *Parser) declareOne(typ ast.Type) {
	if p.cur.Kind != token.ID {
		p.match(token.ID)
		return
	}
	name, line := p.cur.Lexeme, p.cur.Line
	p.advance()
	if _, inserted := p.table.Insert(name, typ, line); !inserted {
		p.diags.Add(diag.Symbol, line, "redeclared identifier")
	}
}

func (p *Parser) stmtSequence() *ast.Node {
	head := p.statement()
	tail := head
	for p.cur.Kind != token.ENDFILE && p.cur.Kind != token.END &&
		p.cur.Kind != token.ELSE && p.cur.Kind != token.UNTIL {
		p.match(token.SEMI)
		next := p.statement()
		if next == nil {
			continue
		}
		if head == nil {
			head, tail = next, next
		} else {
			tail.Sibling = next
			tail = next
		}
	}
	return head
}

func (p *Parser) statement() *ast.Node {
	switch p.cur.Kind {
	case token.IF:
		return p.ifStmt()
	case token.REPEAT:
		return p.repeatStmt()
	case token.WHILE:
		return p.whileStmt()
	case token.ID:
		return p.assignStmt()
	case token.READ:
		return p.readStmt()
	case token.WRITE:
		return p.writeStmt()
	case token.ENDFILE:
		p.errorf("unexpected end of file")
		return nil
	default:
		p.errorf("unexpected token")
		p.advance()
		return nil
	}
}

func (p *Parser) ifStmt() *ast.Node {
	t := ast.NewStmtNode(ast.IfStmt, p.cur.Line)
	p.match(token.IF)
	t.Children[0] = p.boolExp()
	p.match(token.THEN)
	t.Children[1] = p.stmtSequence()
	if p.cur.Kind == token.ELSE {
		p.advance()
		t.Children[2] = p.stmtSequence()
	}
	p.match(token.END)
	return t
}

func (p *Parser) repeatStmt() *ast.Node {
	t := ast.NewStmtNode(ast.RepeatStmt, p.cur.Line)
	p.match(token.REPEAT)
	t.Children[0] = p.stmtSequence()
	p.match(token.UNTIL)
	t.Children[1] = p.boolExp()
	return t
}

func (p *Parser) whileStmt() *ast.Node {
	t := ast.NewStmtNode(ast.WhileStmt, p.cur.Line)
	p.match(token.WHILE)
	t.Children[0] = p.boolExp()
	p.match(token.DO)
	t.Children[1] = p.stmtSequence()
	p.match(token.END)
	return t
}

func (p *Parser) assignStmt() *ast.Node {
	t := ast.NewStmtNode(ast.AssignStmt, p.cur.Line)
	t.Name = p.cur.Lexeme
	p.match(token.ID)
	p.match(token.ASSIGN)
	t.Children[0] = p.expr()
	return t
}

func (p *Parser) readStmt() *ast.Node {
	t := ast.NewStmtNode(ast.ReadStmt, p.cur.Line)
	p.match(token.READ)
	if p.cur.Kind == token.ID {
		t.Name = p.cur.Lexeme
	}
	p.match(token.ID)
	return t
}

func (p *Parser) writeStmt() *ast.Node {
	t := ast.NewStmtNode(ast.WriteStmt, p.cur.Line)
	p.match(token.WRITE)
	t.Children[0] = p.expr()
	return t
}

// expr implements "STR | bool_exp": a bare string literal is only
// legal here, never inside bool_exp or its descendants.
func (p *Parser) expr() *ast.Node {
	if p.cur.Kind == token.STR {
		t := ast.NewExpNode(ast.StrExp, p.cur.Line)
		t.Name = p.cur.Lexeme
		p.advance()
		return t
	}
	return p.boolExp()
}

func (p *Parser) boolExp() *ast.Node {
	t := p.bterm()
	for p.cur.Kind == token.OR {
		op, line := p.cur.Kind, p.cur.Line
		p.advance()
		n := ast.NewExpNode(ast.OpExp, line)
		n.Op = op
		n.Children[0] = t
		n.Children[1] = p.bterm()
		t = n
	}
	return t
}

func (p *Parser) bterm() *ast.Node {
	t := p.bfactor()
	for p.cur.Kind == token.AND {
		op, line := p.cur.Kind, p.cur.Line
		p.advance()
		n := ast.NewExpNode(ast.OpExp, line)
		n.Op = op
		n.Children[0] = t
		n.Children[1] = p.bfactor()
		t = n
	}
	return t
}

func isRelop(k token.Kind) bool {
	switch k {
	case token.LT, token.LE, token.GT, token.GE, token.EQ:
		return true
	default:
		return false
	}
}

func (p *Parser) bfactor() *ast.Node {
	switch p.cur.Kind {
	case token.BTRUE, token.BFALSE:
		t := ast.NewExpNode(ast.BoolExp, p.cur.Line)
		if p.cur.Kind == token.BTRUE {
			t.Val = 1
		}
		p.advance()
		return t
	case token.NOT:
		t := ast.NewExpNode(ast.OpExp, p.cur.Line)
		t.Op = token.NOT
		p.advance()
		t.Children[0] = p.bfactor()
		return t
	case token.NUM, token.ID, token.LPAREN:
		t := p.simpleExp()
		if isRelop(p.cur.Kind) {
			op, line := p.cur.Kind, p.cur.Line
			p.advance()
			n := ast.NewExpNode(ast.OpExp, line)
			n.Op = op
			n.Children[0] = t
			n.Children[1] = p.simpleExp()
			t = n
		}
		return t
	default:
		p.errorf("unexpected token")
		p.advance()
		return nil
	}
}

func (p *Parser) simpleExp() *ast.Node {
	t := p.term()
	for p.cur.Kind == token.PLUS || p.cur.Kind == token.MINUS {
		op, line := p.cur.Kind, p.cur.Line
		p.advance()
		n := ast.NewExpNode(ast.OpExp, line)
		n.Op = op
		n.Children[0] = t
		n.Children[1] = p.term()
		t = n
	}
	return t
}

func (p *Parser) term() *ast.Node {
	t := p.factor()
	for p.cur.Kind == token.TIMES || p.cur.Kind == token.OVER {
		op, line := p.cur.Kind, p.cur.Line
		p.advance()
		n := ast.NewExpNode(ast.OpExp, line)
		n.Op = op
		n.Children[0] = t
		n.Children[1] = p.factor()
		t = n
	}
	return t
}

func (p *Parser) factor() *ast.Node {
	switch p.cur.Kind {
	case token.NUM:
		t := ast.NewExpNode(ast.ConstExp, p.cur.Line)
		v, err := strconv.Atoi(p.cur.Lexeme)
		if err != nil {
			p.diags.Add(diag.Lexical, p.cur.Line, fmt.Sprintf("invalid numeric literal %q", p.cur.Lexeme))
		}
		t.Val = v
		p.advance()
		return t
	case token.ID:
		t := ast.NewExpNode(ast.IdExp, p.cur.Line)
		t.Name = p.cur.Lexeme
		p.advance()
		return t
	case token.LPAREN:
		p.advance()
		t := p.boolExp()
		p.match(token.RPAREN)
		return t
	default:
		p.errorf("unexpected token")
		p.advance()
		return nil
	}
}
