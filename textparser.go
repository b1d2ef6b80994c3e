/*
Package textparser is a recursive-descent parser-combinator toolkit.

Consists of subpackages:
  - scanner: positional cursor over a string or a seekable stream, tracking line, column offset, and byte offset;
  - lexeme: named matched values and their lazy evaluation;
  - grammar: grammar rules (sequence, alternation, repetition, discard, reference, terminals),
    the matching engine, grammar registry and validation;
  - grammar/adjust: reusable hooks invoked around every rule attempt (whitespace skipping, tracing);
  - terminals: ready to use terminal rules (numbers, quoted strings, punctuation);
  - evaluators: value transforms to attach to rules.

Typical usage is:

1. Describe grammar as a map of named rules, using grammar.Reference to refer to other named rules
(references are resolved at match time, so rules may be mutually recursive).

2. Build the registry with grammar.New, it fails if the grammar refers to unknown rules.

3. Wrap input in a scanner and match the entry rule against it.

4. Evaluate the resulting lexeme tree; evaluators attached to rules are applied bottom-up.
*/
package textparser

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	ScannerErrors   = 1   // used by scanner
	GrammarErrors   = 101 // used by grammar validation
	ParseErrors     = 201 // used by grammar.Parse
	EvaluatorErrors = 301 // used by evaluators
)

// Error is returned by every failing operation of textparser subpackages.
// Callers that need to tell failures apart should compare Code, not Message.
type Error struct {
	Code    int
	Message string

	// Label of the scanner the error refers to, empty when the error is not tied to input.
	SourceName string

	// 1-based line and column, both are 0 when the error is not tied to input.
	Line, Col int
}

// SourcePos locates an error in scanned input; scanner.Location implements it.
type SourcePos interface {
	SourceName() string
	Line() int
	Col() int
}

// NewError builds Error, appending " in <name> at line <line> col <col>" to msg
// when all three location parts are known.
func NewError(code int, msg, name string, line, col int) *Error {
	if name != "" && line != 0 && col != 0 {
		msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
	}
	return &Error{code, msg, name, line, col}
}

func (e *Error) Error() string {
	return e.Message
}

// FormatError builds Error not tied to input. msg is a fmt format string if params are present.
func FormatError(code int, msg string, params ...any) *Error {
	return FormatErrorPos(nil, code, msg, params...)
}

// FormatErrorPos is FormatError with location taken from pos.
// nil pos yields the same result as FormatError.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	if pos == nil {
		return NewError(code, msg, "", 0, 0)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
