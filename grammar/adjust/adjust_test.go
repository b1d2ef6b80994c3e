package adjust

import (
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/ava12/textparser/grammar"
	"github.com/ava12/textparser/internal/test"
	"github.com/ava12/textparser/lexeme"
	"github.com/ava12/textparser/scanner"
)

var (
	word = grammar.MustRegex(`[a-z]+`, 16, nil)
	list = grammar.AtLeastOnce(word, grammar.Skip(grammar.Lit(",")))
)

func TestWhitespace(t *testing.T) {
	samples := []struct {
		adjuster grammar.Adjuster
		input    string
		matched  bool
		values   []any
	}{
		{Whitespace{}, "a , b,\tc", true, []any{"a", "b", "c"}},
		{Whitespace{}, "a ,\n b", false, nil},
		{Whitespace{CrossLines: true}, "a ,\n b", true, []any{"a", "b"}},
		{Whitespace{CrossLines: true}, "\n\n  a", true, []any{"a"}},
		{nil, "a , b", true, []any{"a"}},
	}

	for i, sample := range samples {
		s := scanner.NewString(sample.input, "unit test")
		res := grammar.Match(nil, list, "list", s, sample.adjuster)
		if res.Matched != sample.matched {
			t.Errorf("sample #%d: expecting matched=%v", i, sample.matched)
			continue
		}
		if !res.Matched {
			continue
		}

		v, e := res.Value.Evaluate()
		if e != nil {
			t.Errorf("sample #%d: unexpected error: %s", i, e)
			continue
		}
		test.ExpectDeep(t, sample.values, lexeme.Slice(v.(*lexeme.Values)))
	}
}

type counter struct {
	before, after int
}

func (c *counter) AdjustBeforeStart(scanner.Scanner) {
	c.before++
}

func (c *counter) AdjustAfterMatch(scanner.Scanner, grammar.Rule, bool, lexeme.Value) {
	c.after++
}

func TestChain(t *testing.T) {
	first := &counter{}
	second := &counter{}
	adj := Chain(first, nil, Whitespace{}, second)

	s := scanner.NewString(" x", "unit test")
	res := grammar.Match(nil, grammar.Lit("x"), "x", s, adj)
	test.Assert(t, res.Matched, "expecting whitespace to be skipped")
	test.Expect(t, *first == counter{1, 1}, counter{1, 1}, *first)
	test.Expect(t, *second == counter{1, 1}, counter{1, 1}, *second)
}

func TestTrace(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	s := scanner.NewString("ab, cd", "trace test")
	res := grammar.Match(nil, list, "list", s, NewTrace(logger, Whitespace{}))
	test.Assert(t, res.Matched, "expecting match")

	entries := hook.AllEntries()
	test.Assert(t, len(entries) > 0, "expecting log entries")
	for _, entry := range entries {
		test.Expect(t, entry.Level == logrus.DebugLevel, logrus.DebugLevel, entry.Level)
		test.Expect(t, entry.Data["label"] == "trace test", "trace test", entry.Data["label"])
	}

	last := hook.LastEntry()
	test.ExpectString(t, "matched", last.Message)
	test.Expect(t, last.Data["rule"] == "repetition", "repetition", last.Data["rule"])
	test.Expect(t, last.Data["pos"] == 6, 6, last.Data["pos"])
	test.Expect(t, last.Data["value"] == `(list 0:"ab" 1:"cd")`, `(list 0:"ab" 1:"cd")`, last.Data["value"])

	var cd *logrus.Entry
	for _, entry := range entries {
		if entry.Message == "attempt" && entry.Data["pos"] == 4 {
			cd = entry
			break
		}
	}
	test.Assert(t, cd != nil, "expecting attempt after skipped whitespace")
	test.Expect(t, cd.Data["offset"] == 4, 4, cd.Data["offset"])
	test.Expect(t, cd.Data["line"] == 1, 1, cd.Data["line"])
}

func TestTraceIsSilentAboveDebug(t *testing.T) {
	logger, hook := logtest.NewNullLogger()
	s := scanner.NewString("ab", "unit test")
	grammar.Match(nil, word, "word", s, NewTrace(logger, nil))
	test.ExpectInt(t, 0, len(hook.AllEntries()))
}

type bnfCounter struct {
	calls int
}

func (c *bnfCounter) BNF() string {
	c.calls++
	return "<any-byte>"
}

func (c *bnfCounter) MatchTerminal(s scanner.Scanner) (string, bool) {
	text := s.ReadBytes(1)
	return text, text != ""
}

func TestTraceSkipsDescriptionsAboveDebug(t *testing.T) {
	samples := []struct {
		level  logrus.Level
		entry  bool
		traced bool
	}{
		{logrus.InfoLevel, false, false},
		{logrus.InfoLevel, true, false},
		{logrus.DebugLevel, false, true},
		{logrus.DebugLevel, true, true},
	}

	for i, sample := range samples {
		logger, hook := logtest.NewNullLogger()
		logger.SetLevel(sample.level)
		var fl logrus.FieldLogger = logger
		if sample.entry {
			fl = logger.WithField("grammar", "bytes")
		}

		matcher := &bnfCounter{}
		r := grammar.AtLeastOnce(&grammar.Terminal{Matcher: matcher}, nil)
		res := grammar.Match(nil, r, "bytes", scanner.NewString("abc", "unit test"), NewTrace(fl, nil))
		if !res.Matched {
			t.Errorf("sample #%d: expecting match", i)
			continue
		}

		traced := matcher.calls > 0 || len(hook.AllEntries()) > 0
		if traced != sample.traced {
			t.Errorf("sample #%d: expecting traced=%v, got %d BNF calls and %d entries",
				i, sample.traced, matcher.calls, len(hook.AllEntries()))
		}
	}
}
