package grammar

import (
	"github.com/ava12/textparser/lexeme"
	"github.com/ava12/textparser/scanner"
)

// Adjuster is a hook called by the engine around every rule attempt.
// It lets a grammar apply cross-cutting scanner changes (e.g. whitespace skipping)
// without changing rules themselves.
type Adjuster interface {
	// AdjustBeforeStart is called before rule records its start position.
	AdjustBeforeStart(s scanner.Scanner)
	// AdjustAfterMatch is called after rule r matched.
	AdjustAfterMatch(s scanner.Scanner, r Rule, hasValue bool, value lexeme.Value)
}

// NoopAdjuster does nothing.
type NoopAdjuster struct{}

func (NoopAdjuster) AdjustBeforeStart(scanner.Scanner) {}

func (NoopAdjuster) AdjustAfterMatch(scanner.Scanner, Rule, bool, lexeme.Value) {}
