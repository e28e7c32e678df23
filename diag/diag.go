// Package diag collects compiler diagnostics and provides the latch
// the pipeline gates subsequent phases on, replacing the single
// process-wide error flag of the language this compiler targets with
// an explicit, per-compilation value.
package diag

import (
	"fmt"
	"strings"
)

// Kind classifies a diagnostic by the phase that raised it.
type Kind string

const (
	Lexical Kind = "lexical"
	Syntax  Kind = "syntax"
	Symbol  Kind = "symbol"
	TypeErr Kind = "type"
)

// Diagnostic is a single reported problem, always tied to a source
// line.
type Diagnostic struct {
	Kind    Kind
	Line    int
	Message string
}

var kindLabel = map[Kind]string{
	Lexical: "Lexical",
	Syntax:  "Syntax",
	Symbol:  "Symbol",
	TypeErr: "Type",
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s error at line %d: %s", kindLabel[d.Kind], d.Line, d.Message)
}

// Bag accumulates diagnostics across a single compilation. Its
// HasErrors method is the gate every phase after the first checks
// before doing further work.
type Bag struct {
	diagnostics []*Diagnostic
}

// NewBag returns an empty diagnostic bag.
func NewBag() *Bag {
	return &Bag{}
}

// Add records a diagnostic.
func (b *Bag) Add(kind Kind, line int, message string) {
	b.diagnostics = append(b.diagnostics, &Diagnostic{Kind: kind, Line: line, Message: message})
}

// HasErrors reports whether any diagnostic has been recorded.
func (b *Bag) HasErrors() bool {
	return len(b.diagnostics) > 0
}

// Diagnostics returns all recorded diagnostics in report order.
func (b *Bag) Diagnostics() []*Diagnostic {
	return b.diagnostics
}

// Error implements error so a Bag can be returned directly from a
// function that failed because diagnostics were raised.
func (b *Bag) Error() string {
	lines := make([]string, len(b.diagnostics))
	for i, d := range b.diagnostics {
		lines[i] = d.Error()
	}
	return strings.Join(lines, "\n")
}
