package scanner

import (
	"fmt"
)

// Position is an immutable snapshot of scanner state.
// Two positions are equal (==) iff line, offset, and byte offset are equal.
type Position struct {
	line, offset, pos int
}

// NewPosition creates position with given line number (1-based), column offset (0-based, tabs expanded),
// and absolute byte offset.
func NewPosition(line, offset, pos int) Position {
	return Position{line, offset, pos}
}

// Line returns 1-based line number.
func (p Position) Line() int {
	return p.line
}

// Offset returns 0-based column offset on current line, tabs are expanded.
func (p Position) Offset() int {
	return p.offset
}

// Pos returns absolute byte offset.
func (p Position) Pos() int {
	return p.pos
}

func (p Position) String() string {
	return fmt.Sprintf("line %d offset %d pos %d", p.line, p.offset, p.pos)
}

// Location binds position to scanner label, it is used to construct textparser errors.
type Location struct {
	Label string
	Position
}

// SourceName returns scanner label.
func (l Location) SourceName() string {
	return l.Label
}

// Col returns 1-based column number.
func (l Location) Col() int {
	return l.offset + 1
}
