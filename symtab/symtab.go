// Package symtab implements the single global symbol table: a map
// from name to (type, location, use lines). Location is assigned once
// per name, in declaration order, and never changes afterward.
package symtab

import "github.com/tiny-lang/tinyc/ast"

// Entry is one symbol table record.
type Entry struct {
	Name     string
	Type     ast.Type
	Location int
	Lines    []int
}

// Table is the compiler's single, global name space.
type Table struct {
	entries      map[string]*Entry
	order        []string
	nextLocation int
}

// New returns an empty symbol table.
func New() *Table {
	return &Table{entries: make(map[string]*Entry)}
}

// Insert adds name with the given type and declaration line, assigning
// it the next free location. If name is already present, Insert
// leaves the existing entry untouched and returns it with ok=false so
// the caller can report a redeclaration.
func (t *Table) Insert(name string, typ ast.Type, line int) (entry *Entry, ok bool) {
	if e, exists := t.entries[name]; exists {
		return e, false
	}
	e := &Entry{
		Name:     name,
		Type:     typ,
		Location: t.nextLocation,
		Lines:    []int{line},
	}
	t.nextLocation++
	t.entries[name] = e
	t.order = append(t.order, name)
	return e, true
}

// Lookup returns the entry for name, if declared.
func (t *Table) Lookup(name string) (*Entry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// AddLine appends line to name's use-line list. It is a no-op if name
// is not declared.
func (t *Table) AddLine(name string, line int) {
	if e, ok := t.entries[name]; ok {
		e.Lines = append(e.Lines, line)
	}
}

// Type returns the declared type of name, or ast.Void if it is not
// declared.
func (t *Table) Type(name string) ast.Type {
	if e, ok := t.entries[name]; ok {
		return e.Type
	}
	return ast.Void
}

// Entries returns every entry in declaration order.
func (t *Table) Entries() []*Entry {
	out := make([]*Entry, len(t.order))
	for i, name := range t.order {
		out[i] = t.entries[name]
	}
	return out
}
