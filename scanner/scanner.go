// Package scanner defines positional cursors over finite input used by grammar rules.
package scanner

import (
	"strings"
)

// DefaultTabSize is the tab width used to compute column offsets unless WithTabSize option is given.
const DefaultTabSize = 8

// Scanner is a cursor over immutable input.
// Reading methods never fail on short reads, they return whatever is available (possibly nothing).
// A scanner is not safe for concurrent use.
type Scanner interface {
	// ReadBytes consumes up to size bytes.
	ReadBytes(size int) string
	// ReadBytesAhead returns up to size bytes without consuming them.
	ReadBytesAhead(size int) string
	// MoveBytes consumes and discards up to size bytes.
	MoveBytes(size int)
	// ReadRemainingBytes consumes everything up to the end of input.
	ReadRemainingBytes() string
	// ReadAheadRemainingBytes returns everything up to the end of input without consuming it.
	ReadAheadRemainingBytes() string
	// MovePastWhitespaceOnCurrentLine consumes spaces and tabs, returns true if anything was consumed.
	MovePastWhitespaceOnCurrentLine() bool
	// MovePastWhitespace consumes spaces, tabs, CRs and LFs, returns true if anything was consumed.
	MovePastWhitespace() bool
	// IsAtEndOfInput returns true if there is nothing left to read.
	IsAtEndOfInput() bool
	// Position returns current position.
	Position() Position
	// SetPosition moves cursor to given position, previously returned by Position.
	SetPosition(p Position)
	// StartPosition returns the position captured at construction.
	StartPosition() Position
	// Label returns human-readable input name.
	Label() string
	// String returns whole input.
	String() string
	// Err returns the first error reported by underlying source or nil.
	Err() error
}

// Option configures scanner at construction.
type Option func(*config)

type config struct {
	tabSize int
	line    int
	offset  int
}

// WithTabSize sets tab width, values less than 1 are ignored.
func WithTabSize(size int) Option {
	return func(c *config) {
		if size > 0 {
			c.tabSize = size
		}
	}
}

// WithStartLine sets line number and column offset of the first input byte.
func WithStartLine(line, offset int) Option {
	return func(c *config) {
		if line > 0 {
			c.line = line
		}
		if offset >= 0 {
			c.offset = offset
		}
	}
}

func newConfig(opts []Option) config {
	c := config{tabSize: DefaultTabSize, line: 1}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

type tracker struct {
	line, offset, pos int
	tabSize           int
}

func (t *tracker) position() Position {
	return Position{t.line, t.offset, t.pos}
}

func (t *tracker) setPosition(p Position) {
	t.line = p.line
	t.offset = p.offset
	t.pos = p.pos
}

// advance updates position after text is consumed.
// Each tab adds the distance from the previous tab (or from the line remainder start) and is then
// rounded up to the next tab stop.
func (t *tracker) advance(text string) {
	t.pos += len(text)

	if last := strings.LastIndexByte(text, '\n'); last >= 0 {
		t.line += strings.Count(text, "\n")
		t.offset = 0
		text = text[last+1:]
	}

	lastTab := -1
	prevTab := 0
	for i := 0; i < len(text); i++ {
		if text[i] != '\t' {
			continue
		}

		t.offset += i - prevTab
		t.offset += t.tabSize - t.offset%t.tabSize
		prevTab = i
		lastTab = i
	}

	if lastTab >= 0 {
		t.offset += len(text) - lastTab - 1
	} else {
		t.offset += len(text)
	}
}

// skipSpace consumes leading whitespace of text, returns the number of consumed bytes.
func (t *tracker) skipSpace(text string, crossLines bool) int {
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ':
			t.offset++
		case '\t':
			t.offset += t.tabSize - t.offset%t.tabSize
		case '\r':
			if !crossLines {
				return i
			}
			t.offset++
		case '\n':
			if !crossLines {
				return i
			}
			t.line++
			t.offset = 0
		default:
			return i
		}
		t.pos++
	}
	return len(text)
}
