package grammar

import (
	"unicode/utf8"

	"github.com/ava12/textparser/lexeme"
	"github.com/ava12/textparser/scanner"
)

// Result describes an attempt to match a rule.
type Result struct {
	// Matched tells whether the rule matched.
	Matched bool
	// HasValue tells whether Value is meaningful.
	HasValue bool
	// Value is the matched value tree.
	Value lexeme.Value
	// Position is where the attempt started; for a propagated failure it is where the failed sub-rule started.
	Position scanner.Position
	// Expected is the rule that failed, nil on success.
	Expected Rule
}

func failure(r Rule, start scanner.Position) Result {
	return Result{Position: start, Expected: r}
}

func success(value lexeme.Value) Result {
	return Result{Matched: true, HasValue: true, Value: value}
}

// Match matches r against s. name is given to produced value, g resolves references and may be nil
// if r contains no references. adj may be nil.
//
// adj.AdjustBeforeStart is called before the start position is recorded;
// on failure the scanner is restored to the start position,
// on success adj.AdjustAfterMatch is called.
func Match(g *Grammar, r Rule, name string, s scanner.Scanner, adj Adjuster) Result {
	if adj == nil {
		adj = NoopAdjuster{}
	}

	adj.AdjustBeforeStart(s)
	start := s.Position()

	var res Result
	switch rule := r.(type) {
	case *Sequence:
		res = matchSequence(g, rule, name, s, adj)
	case *Alternation:
		res = matchAlternation(g, rule, name, s, adj, start)
	case *Repetition:
		res = matchRepetition(g, rule, name, s, adj, start)
	case *Discard:
		res = matchDiscard(g, rule, name, s, adj)
	case *Reference:
		res = matchReference(g, rule, name, s, adj, start)
	case *Prefix:
		res = matchPrefix(rule, name, s, start)
	case *Regex:
		res = matchRegex(rule, name, s, start)
	case OptionalWhitespace, *OptionalWhitespace:
		res = matchOptionalWhitespace(name, s, start)
	case *Remaining:
		res = matchRemaining(rule, name, s, start)
	case Empty, *Empty:
		res = Result{Matched: true}
	case *Terminal:
		res = matchTerminal(rule, name, s, start)
	default:
		panic("grammar: unsupported rule type")
	}

	if !res.Matched {
		s.SetPosition(start)
		return res
	}

	res.Position = start
	res.Expected = nil
	adj.AdjustAfterMatch(s, r, res.HasValue, res.Value)
	return res
}

func matchSequence(g *Grammar, rule *Sequence, name string, s scanner.Scanner, adj Adjuster) Result {
	items := make([]lexeme.Item, 0, len(rule.Slots))
	for i, slot := range rule.Slots {
		key := slot.key(i)
		res := Match(g, slot.Rule, key, s, adj)
		if !res.Matched {
			return res
		}

		if res.HasValue {
			items = append(items, lexeme.Item{Key: key, Value: res.Value})
		}
	}

	if len(items) == 0 {
		return Result{Matched: true}
	}

	return success(lexeme.NewList(name, items, rule.Evaluator))
}

// matchAlternation returns the first match or, if there is none, the failure that got furthest.
func matchAlternation(g *Grammar, rule *Alternation, name string, s scanner.Scanner, adj Adjuster, start scanner.Position) Result {
	best := failure(rule, start)
	for _, alt := range rule.Rules {
		s.SetPosition(start)
		res := Match(g, alt, name, s, adj)
		if res.Matched {
			return res
		}

		if res.Position.Pos() > best.Position.Pos() {
			best = res
		}
	}

	return best
}

const (
	itemName      = "item"
	separatorName = "separator"
)

func matchRepetition(g *Grammar, rule *Repetition, name string, s scanner.Scanner, adj Adjuster, start scanner.Position) Result {
	var values []lexeme.Value
	collect := func(res Result) {
		if res.HasValue {
			values = append(values, res.Value)
		}
	}

	res := Match(g, rule.Body, itemName, s, adj)
	if !res.Matched {
		if rule.AllowEmpty {
			return success(lexeme.Sequential(name, nil, rule.Evaluator))
		}
		return failure(rule, start)
	}
	collect(res)

	for {
		iterStart := s.Position().Pos()
		if rule.Separator != nil {
			sep := Match(g, rule.Separator, separatorName, s, adj)
			if !sep.Matched {
				break
			}
			collect(sep)

			res = Match(g, rule.Body, itemName, s, adj)
			if !res.Matched {
				return res
			}
		} else {
			res = Match(g, rule.Body, itemName, s, adj)
			if !res.Matched {
				break
			}
		}
		collect(res)

		if s.Position().Pos() == iterStart {
			break
		}
	}

	return success(lexeme.Sequential(name, values, rule.Evaluator))
}

func matchDiscard(g *Grammar, rule *Discard, name string, s scanner.Scanner, adj Adjuster) Result {
	res := Match(g, rule.Rule, name, s, adj)
	if !res.Matched {
		return res
	}

	return Result{Matched: true, Value: lexeme.New(name, nil, nil)}
}

func matchReference(g *Grammar, rule *Reference, name string, s scanner.Scanner, adj Adjuster, start scanner.Position) Result {
	target, found := g.Rule(rule.Target)
	if !found {
		return failure(rule, start)
	}

	res := Match(g, target, name, s, adj)
	if !res.Matched {
		return res
	}

	var value any
	if res.HasValue {
		value = res.Value
	}
	return success(lexeme.New(rule.Target, value, rule.Evaluator))
}

func matchPrefix(rule *Prefix, name string, s scanner.Scanner, start scanner.Position) Result {
	size := len(rule.Literal)
	if s.ReadBytesAhead(size) != rule.Literal {
		return failure(rule, start)
	}

	s.MoveBytes(size)
	return success(lexeme.New(name, rule.Literal, rule.Evaluator))
}

func matchRegex(rule *Regex, name string, s scanner.Scanner, start scanner.Position) Result {
	if rule.re == nil {
		return failure(rule, start)
	}

	text := s.ReadBytesAhead(rule.window)
	m, e := rule.re.FindStringMatch(text)
	if e != nil || m == nil {
		return failure(rule, start)
	}

	size := runeBytes(text, m.Length)
	if size == 0 {
		return Result{Matched: true}
	}

	s.MoveBytes(size)
	return success(lexeme.New(name, text[:size], rule.evaluator))
}

// runeBytes returns byte length of the first n runes of text, regexp2 reports match bounds in runes.
func runeBytes(text string, n int) int {
	size := 0
	for ; n > 0 && size < len(text); n-- {
		_, l := utf8.DecodeRuneInString(text[size:])
		size += l
	}
	return size
}

func matchOptionalWhitespace(name string, s scanner.Scanner, start scanner.Position) Result {
	s.MovePastWhitespace()
	end := s.Position()
	s.SetPosition(start)
	text := s.ReadBytes(end.Pos() - start.Pos())
	return success(lexeme.New(name, text, nil))
}

func matchRemaining(rule *Remaining, name string, s scanner.Scanner, start scanner.Position) Result {
	if s.IsAtEndOfInput() {
		return failure(rule, start)
	}

	return success(lexeme.New(name, s.ReadRemainingBytes(), rule.Evaluator))
}

func matchTerminal(rule *Terminal, name string, s scanner.Scanner, start scanner.Position) Result {
	text, matched := rule.Matcher.MatchTerminal(s)
	if !matched {
		return failure(rule, start)
	}

	if text == "" {
		return Result{Matched: true}
	}
	return success(lexeme.New(name, text, rule.Evaluator))
}
