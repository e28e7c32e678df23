// Package ir implements the mutable three-address instruction buffer
// the code generator backpatches: emit/emitSkip/emitBackup/emitRestore
// over an array indexed by position, plus the temp and label name
// generators.
package ir

import "strconv"

// Instruction is a four-field three-address instruction. Which fields
// are meaningful depends on Op; see package listing for the rendering
// rules.
type Instruction struct {
	Op string `json:"op"`
	A  string `json:"a"`
	B  string `json:"b"`
	C  string `json:"c"`
}

// Buffer is the single mutable instruction sequence a compilation
// writes through. EmitLoc is the next write position; HighEmitLoc is
// the highest position ever reserved, used by EmitRestore.
type Buffer struct {
	instructions []Instruction
	emitLoc      int
	highEmitLoc  int
	tempCount    int
	labelCount   int
}

// New returns an empty code buffer. Label numbering starts at 1; L0
// is reserved for the program's end label and is never produced by
// NewLabel.
func New() *Buffer {
	return &Buffer{labelCount: 1}
}

func (b *Buffer) reserve(upTo int) {
	for len(b.instructions) < upTo {
		b.instructions = append(b.instructions, Instruction{})
	}
}

// Emit writes an instruction at the current EmitLoc, advances it, and
// returns the location written. HighEmitLoc advances with it.
func (b *Buffer) Emit(op, a, c1, c string) int {
	loc := b.emitLoc
	b.reserve(loc + 1)
	b.instructions[loc] = Instruction{Op: op, A: a, B: c1, C: c}
	b.emitLoc++
	if b.highEmitLoc < b.emitLoc {
		b.highEmitLoc = b.emitLoc
	}
	return loc
}

// EmitSkip reserves n instruction slots for later backpatching and
// returns the first reserved location.
func (b *Buffer) EmitSkip(n int) int {
	loc := b.emitLoc
	b.emitLoc += n
	b.reserve(b.emitLoc)
	if b.highEmitLoc < b.emitLoc {
		b.highEmitLoc = b.emitLoc
	}
	return loc
}

// EmitBackup moves EmitLoc back to a previously skipped location so
// the next Emit overwrites it. loc must not exceed HighEmitLoc.
func (b *Buffer) EmitBackup(loc int) {
	b.emitLoc = loc
}

// EmitRestore moves EmitLoc forward to the highest position ever
// reserved, resuming normal emission after a backpatch.
func (b *Buffer) EmitRestore() {
	b.emitLoc = b.highEmitLoc
}

// NewTemp returns the next fresh temporary name: t0, t1, t2, ...
func (b *Buffer) NewTemp() string {
	name := "t" + strconv.Itoa(b.tempCount)
	b.tempCount++
	return name
}

// NewLabel returns the next fresh label name: L1, L2, L3, ...
func (b *Buffer) NewLabel() string {
	name := "L" + strconv.Itoa(b.labelCount)
	b.labelCount++
	return name
}

// Len returns HighEmitLoc, the number of instructions a caller should
// read back.
func (b *Buffer) Len() int {
	return b.highEmitLoc
}

// Instructions returns the instructions in 0..HighEmitLoc, in order.
func (b *Buffer) Instructions() []Instruction {
	return b.instructions[:b.highEmitLoc]
}
