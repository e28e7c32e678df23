// Package compiler wires the token, lexer, parser, semant, ir, and
// codegen packages into a single pipeline, replacing a global error
// flag with an explicit, per-call context that each phase checks
// before doing further work.
package compiler

import (
	"io"

	"github.com/tiny-lang/tinyc/ast"
	"github.com/tiny-lang/tinyc/codegen"
	"github.com/tiny-lang/tinyc/diag"
	"github.com/tiny-lang/tinyc/ir"
	"github.com/tiny-lang/tinyc/lexer"
	"github.com/tiny-lang/tinyc/parser"
	"github.com/tiny-lang/tinyc/semant"
	"github.com/tiny-lang/tinyc/symtab"
)

// Options controls which phases write to the trace stream a caller
// passes to Compile. They mirror the CLI's --trace-* flags one for
// one.
type Options struct {
	TraceScanner bool
	TraceParse   bool
	TraceAnalyze bool
	TraceCode    bool
}

// Result carries everything a caller might want out of a compilation,
// even a failed one: the tree and symbol table are populated as far as
// the pipeline got before Diagnostics gained an error.
type Result struct {
	Tree        *ast.Node
	Table       *symtab.Table
	Buffer      *ir.Buffer
	Diagnostics *diag.Bag
}

// Compile runs src through scanning, parsing, semantic analysis, and
// code generation, stopping at the first phase boundary where
// Diagnostics already holds an error. Buffer is nil unless code
// generation ran. trace receives the per-phase diagnostic narration
// opts enables; it may be nil, which disables all tracing regardless
// of opts.
func Compile(src io.Reader, trace io.Writer, opts Options) *Result {
	table := symtab.New()
	diags := diag.NewBag()

	lx := lexer.New(src)
	lx.Trace = phaseTrace(trace, opts.TraceScanner)
	p := parser.New(lx, table, diags, phaseTrace(trace, opts.TraceParse))
	tree := p.Parse()

	res := &Result{Tree: tree, Table: table, Diagnostics: diags}
	if diags.HasErrors() {
		return res
	}

	analyzeTrace := phaseTrace(trace, opts.TraceAnalyze)
	semant.BuildSymtab(tree, table, diags, analyzeTrace)
	if diags.HasErrors() {
		return res
	}
	semant.TypeCheck(tree, table, diags, analyzeTrace)
	if diags.HasErrors() {
		return res
	}

	buf := ir.New()
	codegen.Generate(tree, buf, phaseTrace(trace, opts.TraceCode))
	res.Buffer = buf
	return res
}

// phaseTrace returns trace when enabled is true and trace is non-nil,
// and nil otherwise, so a disabled phase never writes.
func phaseTrace(trace io.Writer, enabled bool) io.Writer {
	if !enabled || trace == nil {
		return nil
	}
	return trace
}
