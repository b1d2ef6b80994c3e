// Package terminals contains ready to use terminal rules.
//
// All rules are immutable and may be shared by any number of grammars.
// Regex based terminals use look-ahead windows large enough for typical input,
// use grammar.NewRegex with the same pattern to match longer tokens.
package terminals

import (
	"github.com/ava12/textparser/evaluators"
	"github.com/ava12/textparser/grammar"
)

// Look-ahead windows of regex based terminals:
const (
	NumberWindow       = 32
	HexNumberWindow    = 32
	PercentageWindow   = 16
	QuotedStringWindow = 1024
)

// Number matches a decimal integer or fraction with optional sign, e.g. "-12" or "0.25".
// A number immediately followed by a digit or "%" sign (i.e. a percentage) does not match.
// Evaluates to int64 or float64.
var Number = grammar.MustRegex(`([-+]{0,1}[0-9][0-9\.]*)(?![0-9%])`, NumberWindow, evaluators.CastToNumber)

// HexNumber matches an even number of hex digits with optional sign, e.g. "ff" or "-0A10".
// Evaluates to int64.
var HexNumber = grammar.MustRegex(`([-+]{0,1}([A-Fa-f0-9]{2})+)(?![0-9%])`, HexNumberWindow, evaluators.ParseHex)

// IntPercentage matches an integer percentage without leading zeroes, e.g. "50%".
// Evaluates to int64 without the percent sign.
var IntPercentage = grammar.MustRegex(`([1-9][0-9]*|[0-9])%`, PercentageWindow,
	evaluators.Chain(evaluators.TrimSuffix("%"), evaluators.CastToNumber))

// DoubleQuotedString matches a string enclosed in double quotes, a quote preceded by backslash
// does not end the string. Evaluates to matched text including quotes.
var DoubleQuotedString = grammar.MustRegex(`"(?:[^"\\]|\\.)*"`, QuotedStringWindow, nil)

// Punctuation:
var (
	Comma       = grammar.Lit(",")
	Period      = grammar.Lit(".")
	Colon       = grammar.Lit(":")
	Semicolon   = grammar.Lit(";")
	OpenParen   = grammar.Lit("(")
	CloseParen  = grammar.Lit(")")
	OpenBrace   = grammar.Lit("{")
	CloseBrace  = grammar.Lit("}")
	OpenSquare  = grammar.Lit("[")
	CloseSquare = grammar.Lit("]")
	Equals      = grammar.Lit("=")
	Plus        = grammar.Lit("+")
	Minus       = grammar.Lit("-")
	Asterisk    = grammar.Lit("*")
	Slash       = grammar.Lit("/")
	Percent     = grammar.Lit("%")
	At          = grammar.Lit("@")
	Hash        = grammar.Lit("#")
)

// Whitespace matches optional whitespace including line breaks.
var Whitespace grammar.Rule = grammar.OptionalWhitespace{}

// Remaining matches everything up to the end of input.
var Remaining = &grammar.Remaining{}

// Empty matches nothing.
var Empty grammar.Rule = grammar.Empty{}
