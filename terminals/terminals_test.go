package terminals

import (
	"strings"
	"testing"

	"github.com/ava12/textparser/grammar"
	"github.com/ava12/textparser/internal/test"
	"github.com/ava12/textparser/lexeme"
	"github.com/ava12/textparser/scanner"
)

const tail = " not part of a token"

var dataset = map[string]string{
	"float_zero":            "0.0",
	"float_positive":        "3.1415927",
	"float_positive_signed": "+3.1415927",
	"float_negative":        "-3.1415927",
	"integer_zero":          "0",
	"integer_one":           "1",
	"integer_positive":      "100",
	"integer_positive_max":  "9223372036854775807",
	"integer_negative":      "-100",
	"integer_8bit_max":      "255",
	"percentage_min":        "0%",
	"percentage_ten":        "10%",
	"percentage_max":        "100%",
	"percentage_large":      "250%",
	"leading_zero_percent":  "05%",
	"hex_zero":              "00",
	"hex_lower":             "af",
	"hex_upper":             "AF",
	"hex_word":              "ffff",
	"hex_signed":            "-ff",
	"quoted_string":         `"@100"`,
	"quoted_empty":          `""`,
	"quoted_escape":         `"say \"hi\""`,
	"unclosed_quote":        `"@100`,
	"period":                ".",
	"comma":                 ",",
	"word":                  "word",
	"empty":                 "",
}

type terminalSample struct {
	rule    *grammar.Regex
	matches map[string]any
}

func matchTerminal(rule grammar.Rule, input string, backing int) (grammar.Result, scanner.Scanner) {
	var s scanner.Scanner
	if backing == 0 {
		s = scanner.NewString(input, "unit test")
	} else {
		s, _ = scanner.NewStream(strings.NewReader(input), "unit test")
	}
	return grammar.Match(nil, rule, "unit", s, nil), s
}

func TestRegexTerminals(t *testing.T) {
	samples := map[string]terminalSample{
		"Number": {Number, map[string]any{
			"float_zero":            0.0,
			"float_positive":        3.1415927,
			"float_positive_signed": 3.1415927,
			"float_negative":        -3.1415927,
			"integer_zero":          int64(0),
			"integer_one":           int64(1),
			"integer_positive":      int64(100),
			"integer_positive_max":  int64(9223372036854775807),
			"integer_negative":      int64(-100),
			"integer_8bit_max":      int64(255),
			"hex_zero":              int64(0),
		}},
		"HexNumber": {HexNumber, map[string]any{
			"hex_zero":   int64(0),
			"hex_lower":  int64(175),
			"hex_upper":  int64(175),
			"hex_word":   int64(65535),
			"hex_signed": int64(-255),
		}},
		"IntPercentage": {IntPercentage, map[string]any{
			"percentage_min":   int64(0),
			"percentage_ten":   int64(10),
			"percentage_max":   int64(100),
			"percentage_large": int64(250),
		}},
		"DoubleQuotedString": {DoubleQuotedString, map[string]any{
			"quoted_string": `"@100"`,
			"quoted_empty":  `""`,
			"quoted_escape": `"say \"hi\""`,
		}},
	}

	for name, sample := range samples {
		for key, text := range dataset {
			for backing := 0; backing < 2; backing++ {
				res, s := matchTerminal(sample.rule, text+tail, backing)
				expected, shouldMatch := sample.matches[key]
				if res.Matched != shouldMatch {
					t.Errorf("%s, %s: expecting matched=%v", name, key, shouldMatch)
					continue
				}

				remaining := s.ReadRemainingBytes()
				if !shouldMatch {
					if res.Expected != grammar.Rule(sample.rule) || remaining != text+tail {
						t.Errorf("%s, %s: expecting failure at start, got %v, remaining %q", name, key, res.Expected, remaining)
					}
					continue
				}

				if remaining != tail {
					t.Errorf("%s, %s: expecting remainder %q, got %q", name, key, tail, remaining)
				}
				raw := res.Value.(*lexeme.Lexeme).Raw()
				if raw != text {
					t.Errorf("%s, %s: expecting raw value %q, got %q", name, key, text, raw)
				}
				got, e := res.Value.Evaluate()
				if e != nil || got != expected {
					t.Errorf("%s, %s: expecting %#v, got %#v (%v)", name, key, expected, got, e)
				}
			}
		}
	}
}

func TestRegexTerminalBNF(t *testing.T) {
	test.ExpectString(t, `regex /([-+]{0,1}[0-9][0-9\.]*)(?![0-9%])/`, Number.BNF())
	test.ExpectString(t, `regex /([-+]{0,1}([A-Fa-f0-9]{2})+)(?![0-9%])/`, HexNumber.BNF())
	test.ExpectString(t, `regex /([1-9][0-9]*|[0-9])%/`, IntPercentage.BNF())
	test.ExpectInt(t, QuotedStringWindow, DoubleQuotedString.Window())
}

func TestQuotedStringStopsAtFirstClosingQuote(t *testing.T) {
	res, s := matchTerminal(DoubleQuotedString, `"@100", "@101"`, 0)
	test.Assert(t, res.Matched, "expecting match")
	test.Expect(t, res.Value.(*lexeme.Lexeme).Raw() == `"@100"`, `"@100"`, res.Value.(*lexeme.Lexeme).Raw())
	test.ExpectString(t, `, "@101"`, s.ReadRemainingBytes())
}

func TestPunctuation(t *testing.T) {
	samples := []struct {
		rule  *grammar.Prefix
		input string
	}{
		{Comma, ","}, {Period, "."}, {Colon, ":"}, {Semicolon, ";"},
		{OpenParen, "("}, {CloseParen, ")"}, {OpenBrace, "{"}, {CloseBrace, "}"},
		{OpenSquare, "["}, {CloseSquare, "]"}, {Equals, "="}, {Plus, "+"},
		{Minus, "-"}, {Asterisk, "*"}, {Slash, "/"}, {Percent, "%"}, {At, "@"}, {Hash, "#"},
	}

	for i, sample := range samples {
		for _, count := range []int{1, 2, 10} {
			input := strings.Repeat(sample.input, count)
			res, s := matchTerminal(sample.rule, input, i%2)
			if !res.Matched || s.Position().Pos() != 1 {
				t.Errorf("sample #%d: expecting single %q to match in %q", i, sample.input, input)
				continue
			}
			if got, _ := res.Value.Evaluate(); got != sample.input {
				t.Errorf("sample #%d: expecting %q, got %v", i, sample.input, got)
			}
		}

		res, _ := matchTerminal(sample.rule, "word", i%2)
		if res.Matched {
			t.Errorf("sample #%d: unexpected match", i)
		}
	}
}

func TestMetaTerminals(t *testing.T) {
	res, _ := matchTerminal(Whitespace, "  x", 0)
	test.Assert(t, res.Matched, "expecting whitespace to match")
	res, _ = matchTerminal(Remaining, "rest", 1)
	test.Assert(t, res.Matched, "expecting remaining text to match")
	res, _ = matchTerminal(Empty, "", 0)
	test.Assert(t, res.Matched && !res.HasValue, "expecting empty match")
}

func TestTerminalsInGrammar(t *testing.T) {
	g := grammar.MustNew(map[string]grammar.Rule{
		"call": grammar.NamedSeq(
			grammar.Slot{Name: "name", Rule: grammar.MustRegex(`[a-z]+`, 16, nil)},
			grammar.Slot{Rule: grammar.Skip(OpenParen)},
			grammar.Slot{Name: "args", Rule: grammar.ZeroOrMore(grammar.Ref("arg"), grammar.Skip(Comma))},
			grammar.Slot{Rule: grammar.Skip(CloseParen)},
		),
		"arg": grammar.AnyOf(IntPercentage, Number, DoubleQuotedString),
	})

	v, e := g.Parse("call", scanner.NewString(`rgb(10%,0.5,"x")`, "unit test"), nil)
	test.Assert(t, e == nil, "unexpected error: %v", e)
	result, e := v.Evaluate()
	test.Assert(t, e == nil, "unexpected error: %v", e)

	values := result.(*lexeme.Values)
	name, _ := values.Get("name")
	test.Expect(t, name == "rgb", "rgb", name)
	args, _ := values.Get("args")
	test.ExpectDeep(t, []any{int64(10), 0.5, `"x"`}, lexeme.Slice(args.(*lexeme.Values)))
}
