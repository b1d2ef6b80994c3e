// Package adjust contains reusable grammar.Adjuster implementations.
package adjust

import (
	"github.com/sirupsen/logrus"

	"github.com/ava12/textparser/grammar"
	"github.com/ava12/textparser/lexeme"
	"github.com/ava12/textparser/scanner"
)

// Whitespace skips whitespace before every rule attempt.
// Line breaks are skipped only if CrossLines is set.
type Whitespace struct {
	CrossLines bool
}

func (w Whitespace) AdjustBeforeStart(s scanner.Scanner) {
	if w.CrossLines {
		s.MovePastWhitespace()
	} else {
		s.MovePastWhitespaceOnCurrentLine()
	}
}

func (Whitespace) AdjustAfterMatch(scanner.Scanner, grammar.Rule, bool, lexeme.Value) {}

type chain []grammar.Adjuster

// Chain returns adjuster calling given adjusters in order. nil adjusters are skipped.
func Chain(adjusters ...grammar.Adjuster) grammar.Adjuster {
	result := make(chain, 0, len(adjusters))
	for _, a := range adjusters {
		if a != nil {
			result = append(result, a)
		}
	}
	return result
}

func (c chain) AdjustBeforeStart(s scanner.Scanner) {
	for _, a := range c {
		a.AdjustBeforeStart(s)
	}
}

func (c chain) AdjustAfterMatch(s scanner.Scanner, r grammar.Rule, hasValue bool, value lexeme.Value) {
	for _, a := range c {
		a.AdjustAfterMatch(s, r, hasValue, value)
	}
}

// Trace logs every rule attempt and every match at debug level.
// Next adjuster, if any, is called first, so logged positions are the ones rules see.
type Trace struct {
	Logger logrus.FieldLogger
	Next   grammar.Adjuster
}

// NewTrace creates Trace. nil logger means logrus standard logger.
func NewTrace(logger logrus.FieldLogger, next grammar.Adjuster) *Trace {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Trace{logger, next}
}

func positionFields(s scanner.Scanner) logrus.Fields {
	p := s.Position()
	return logrus.Fields{
		"label":  s.Label(),
		"line":   p.Line(),
		"offset": p.Offset(),
		"pos":    p.Pos(),
	}
}

// enabled reports whether debug entries can be emitted.
// Loggers of unknown types are assumed to accept everything.
func (t *Trace) enabled() bool {
	switch l := t.Logger.(type) {
	case *logrus.Logger:
		return l.IsLevelEnabled(logrus.DebugLevel)
	case *logrus.Entry:
		return l.Logger.IsLevelEnabled(logrus.DebugLevel)
	default:
		return true
	}
}

func (t *Trace) AdjustBeforeStart(s scanner.Scanner) {
	if t.Next != nil {
		t.Next.AdjustBeforeStart(s)
	}
	if !t.enabled() {
		return
	}

	t.Logger.WithFields(positionFields(s)).Debug("attempt")
}

func (t *Trace) AdjustAfterMatch(s scanner.Scanner, r grammar.Rule, hasValue bool, value lexeme.Value) {
	if t.Next != nil {
		t.Next.AdjustAfterMatch(s, r, hasValue, value)
	}
	if !t.enabled() {
		return
	}

	fields := positionFields(s)
	fields["rule"] = r.Kind().String()
	fields["bnf"] = r.BNF()
	if hasValue && value != nil {
		fields["value"] = lexeme.Dump(value)
	}
	t.Logger.WithFields(fields).Debug("matched")
}
