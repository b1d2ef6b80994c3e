package grammar

import (
	"github.com/ava12/textparser"
	"github.com/ava12/textparser/scanner"
)

// Error codes used by grammar construction and validation:
const (
	// UnknownReferenceError indicates a Reference to a rule missing from the grammar.
	UnknownReferenceError = textparser.GrammarErrors + iota

	// NilRuleError indicates a nil rule in the grammar.
	NilRuleError

	// TooDeepError indicates that rule nesting exceeds MaxValidationDepth.
	TooDeepError

	// InvalidRegexError indicates that Regex pattern cannot be compiled.
	InvalidRegexError
)

// Error codes used by Grammar.Parse:
const (
	// UnknownRuleError indicates that entry rule is not defined.
	UnknownRuleError = textparser.ParseErrors + iota

	// UnexpectedInputError indicates that entry rule does not match the input.
	UnexpectedInputError

	// TrailingInputError indicates that entry rule matched but some input remains.
	TrailingInputError
)

func unknownReferenceError(name, target string) *textparser.Error {
	return textparser.FormatError(UnknownReferenceError, "%s: refers to unknown grammar %s", name, target)
}

func nilRuleError(name string) *textparser.Error {
	return textparser.FormatError(NilRuleError, "%s: contains nil rule", name)
}

func tooDeepError(name string) *textparser.Error {
	return textparser.FormatError(TooDeepError, "grammar is too deep to validate (rule %s)", name)
}

func invalidRegexError(pattern string, e error) *textparser.Error {
	return textparser.FormatError(InvalidRegexError, "incorrect regexp /%s/ (%s)", pattern, e.Error())
}

func unknownRuleError(name string, candidates []string) *textparser.Error {
	return textparser.FormatError(UnknownRuleError, "unknown rule %q%s", name, hint(closestNames(name, candidates)))
}

func unexpectedInputError(label string, res Result) *textparser.Error {
	expected := "<nothing>"
	if res.Expected != nil {
		expected = res.Expected.BNF()
	}
	return textparser.FormatErrorPos(scanner.Location{Label: label, Position: res.Position}, UnexpectedInputError,
		"unexpected input, expecting %s", expected)
}

func trailingInputError(label, entry string, p scanner.Position) *textparser.Error {
	return textparser.FormatErrorPos(scanner.Location{Label: label, Position: p}, TrailingInputError,
		"unexpected input after %s", entry)
}
