package grammar

import (
	"sort"

	"github.com/ava12/textparser/lexeme"
	"github.com/ava12/textparser/scanner"
)

// Grammar is an immutable registry of named rules.
type Grammar struct {
	rules map[string]Rule
}

// New validates rules and creates Grammar. rules map is copied.
// Returns the error reported by Validate if there are problems.
func New(rules map[string]Rule) (*Grammar, error) {
	if e := Validate(rules); e != nil {
		return nil, e
	}

	g := &Grammar{make(map[string]Rule, len(rules))}
	for name, r := range rules {
		g.rules[name] = r
	}
	return g, nil
}

// MustNew is like New but panics on error.
func MustNew(rules map[string]Rule) *Grammar {
	g, e := New(rules)
	if e != nil {
		panic(e)
	}
	return g
}

// Rule returns the rule registered under given name. Nil Grammar contains no rules.
func (g *Grammar) Rule(name string) (Rule, bool) {
	if g == nil {
		return nil, false
	}

	r, found := g.rules[name]
	return r, found
}

// Names returns sorted rule names.
func (g *Grammar) Names() []string {
	if g == nil {
		return nil
	}

	names := make([]string, 0, len(g.rules))
	for name := range g.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Match matches the rule registered under entry name, the value is named after entry.
// Unknown entry is reported as a failure expecting Ref(entry).
func (g *Grammar) Match(entry string, s scanner.Scanner, adj Adjuster) Result {
	r, found := g.Rule(entry)
	if !found {
		return failure(Ref(entry), s.Position())
	}

	return Match(g, r, entry, s, adj)
}

// Parse matches the rule registered under entry name against the whole input.
// adj may be nil; its AdjustBeforeStart is also called before checking for the end of input,
// so trailing input skipped by adjuster is not an error.
// Returns nil value if the entry rule produced no value.
// Returns UnknownRuleError (hinting at similar rule names), UnexpectedInputError, TrailingInputError,
// or scanner error.
func (g *Grammar) Parse(entry string, s scanner.Scanner, adj Adjuster) (lexeme.Value, error) {
	r, found := g.Rule(entry)
	if !found {
		return nil, unknownRuleError(entry, g.Names())
	}

	if adj == nil {
		adj = NoopAdjuster{}
	}

	res := Match(g, r, entry, s, adj)
	if e := s.Err(); e != nil {
		return nil, e
	}

	if !res.Matched {
		return nil, unexpectedInputError(s.Label(), res)
	}

	adj.AdjustBeforeStart(s)
	if !s.IsAtEndOfInput() {
		return nil, trailingInputError(s.Label(), entry, s.Position())
	}

	if !res.HasValue {
		return nil, nil
	}
	return res.Value, nil
}
