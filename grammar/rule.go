// Package grammar defines grammar rules, the engine matching them against scanners,
// and the registry of named rules.
//
// Rules form an immutable tree; cycles are only possible through Reference,
// which holds the name of another rule and is resolved via Grammar at match time.
// A rule tree may be shared by any number of concurrent matches using separate scanners.
package grammar

import (
	"strconv"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/ava12/textparser/lexeme"
	"github.com/ava12/textparser/scanner"
)

// Kind identifies rule variant.
type Kind int

const (
	SequenceKind Kind = iota
	AlternationKind
	RepetitionKind
	DiscardKind
	ReferenceKind
	PrefixKind
	RegexKind
	OptionalWhitespaceKind
	RemainingKind
	EmptyKind
	TerminalKind
)

var kindNames = []string{
	"sequence", "alternation", "repetition", "discard", "reference",
	"prefix", "regex", "optional-whitespace", "remaining", "empty", "terminal",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Rule is a grammar node. The set of implementations is closed, external terminals are plugged in with Terminal.
type Rule interface {
	// Kind returns rule variant.
	Kind() Kind
	// BNF returns pseudo-BNF description used in diagnostics.
	BNF() string
	// Children returns immediate sub-rules, nil for terminals and references.
	Children() []Rule

	rule()
}

func joinBNF(rules []Rule, sep string) string {
	bnfs := make([]string, len(rules))
	for i, r := range rules {
		if r != nil {
			bnfs[i] = r.BNF()
		}
	}
	return strings.Join(bnfs, sep)
}

// Slot is a named Sequence element. Empty name means the element is keyed by its index.
type Slot struct {
	Name string
	Rule Rule
}

func (s Slot) key(index int) string {
	if s.Name == "" {
		return strconv.Itoa(index)
	}
	return s.Name
}

// Sequence matches all slots one after another.
// Its value is a lexeme.List of slot values, slots without value are omitted.
type Sequence struct {
	Slots     []Slot
	Evaluator lexeme.Evaluator
}

// Seq creates Sequence of unnamed slots.
func Seq(rules ...Rule) *Sequence {
	slots := make([]Slot, len(rules))
	for i, r := range rules {
		slots[i].Rule = r
	}
	return &Sequence{Slots: slots}
}

// NamedSeq creates Sequence of given slots.
func NamedSeq(slots ...Slot) *Sequence {
	return &Sequence{Slots: slots}
}

// WithEvaluator returns a copy of s with evaluator e.
func (s *Sequence) WithEvaluator(e lexeme.Evaluator) *Sequence {
	c := *s
	c.Evaluator = e
	return &c
}

func (s *Sequence) Kind() Kind {
	return SequenceKind
}

func (s *Sequence) BNF() string {
	return joinBNF(s.Children(), " ")
}

func (s *Sequence) Children() []Rule {
	result := make([]Rule, len(s.Slots))
	for i, slot := range s.Slots {
		result[i] = slot.Rule
	}
	return result
}

func (*Sequence) rule() {}

// Alternation tries rules in order from the same position, the first match wins.
type Alternation struct {
	Rules []Rule
}

// AnyOf creates Alternation.
func AnyOf(rules ...Rule) *Alternation {
	return &Alternation{rules}
}

func (a *Alternation) Kind() Kind {
	return AlternationKind
}

func (a *Alternation) BNF() string {
	return "anyof(" + joinBNF(a.Rules, " || ") + ")"
}

func (a *Alternation) Children() []Rule {
	return a.Rules
}

func (*Alternation) rule() {}

// Repetition matches Body one or more times (zero or more if AllowEmpty is set), items are separated by Separator.
// A failed Separator ends the list, a Separator not followed by Body is a failure of the whole repetition.
// nil Separator means items follow each other directly.
// Its value is a lexeme.List with sequential keys holding both item and separator values.
type Repetition struct {
	Body       Rule
	Separator  Rule
	AllowEmpty bool
	Evaluator  lexeme.Evaluator
}

// AtLeastOnce creates one-or-more Repetition.
func AtLeastOnce(body, separator Rule) *Repetition {
	return &Repetition{Body: body, Separator: separator}
}

// ZeroOrMore creates zero-or-more Repetition.
func ZeroOrMore(body, separator Rule) *Repetition {
	return &Repetition{Body: body, Separator: separator, AllowEmpty: true}
}

// WithEvaluator returns a copy of r with evaluator e.
func (r *Repetition) WithEvaluator(e lexeme.Evaluator) *Repetition {
	c := *r
	c.Evaluator = e
	return &c
}

func (r *Repetition) Kind() Kind {
	return RepetitionKind
}

func (r *Repetition) BNF() string {
	body := r.Body.BNF()
	var result string
	if r.Separator == nil {
		result = body + " [" + body + " ...]"
	} else {
		result = body + " [" + r.Separator.BNF() + " " + body + " ...]"
	}
	if r.AllowEmpty {
		result = "[" + result + "]"
	}
	return result
}

func (r *Repetition) Children() []Rule {
	if r.Separator == nil {
		return []Rule{r.Body}
	}
	return []Rule{r.Body, r.Separator}
}

func (*Repetition) rule() {}

// Discard matches Rule but drops its value.
type Discard struct {
	Rule Rule
}

// Skip creates Discard.
func Skip(r Rule) *Discard {
	return &Discard{r}
}

func (d *Discard) Kind() Kind {
	return DiscardKind
}

func (d *Discard) BNF() string {
	return "-" + d.Rule.BNF() + "-"
}

func (d *Discard) Children() []Rule {
	return []Rule{d.Rule}
}

func (*Discard) rule() {}

// Reference matches the rule registered under Target name.
// Its value is a lexeme.Lexeme named Target wrapping the value of referenced rule.
type Reference struct {
	Target    string
	Evaluator lexeme.Evaluator
}

// Ref creates Reference.
func Ref(target string) *Reference {
	return &Reference{Target: target}
}

// WithEvaluator returns a copy of r with evaluator e.
func (r *Reference) WithEvaluator(e lexeme.Evaluator) *Reference {
	c := *r
	c.Evaluator = e
	return &c
}

func (r *Reference) Kind() Kind {
	return ReferenceKind
}

func (r *Reference) BNF() string {
	return r.Target
}

func (r *Reference) Children() []Rule {
	return nil
}

func (*Reference) rule() {}

// Prefix matches literal text byte by byte.
type Prefix struct {
	Literal   string
	Evaluator lexeme.Evaluator
}

// Lit creates Prefix.
func Lit(literal string) *Prefix {
	return &Prefix{Literal: literal}
}

// WithEvaluator returns a copy of p with evaluator e.
func (p *Prefix) WithEvaluator(e lexeme.Evaluator) *Prefix {
	c := *p
	c.Evaluator = e
	return &c
}

func (p *Prefix) Kind() Kind {
	return PrefixKind
}

func (p *Prefix) BNF() string {
	return p.Literal
}

func (p *Prefix) Children() []Rule {
	return nil
}

func (*Prefix) rule() {}

// DefaultWindow is the default number of bytes a Regex looks ahead.
const DefaultWindow = 8

// Regex matches a pattern anchored at current position against a fixed-size look-ahead window.
// Matches longer than the window are truncated to what fits into it, window size must be chosen
// to hold the longest expected match.
// Patterns use regexp2 syntax, which allows look-around assertions.
type Regex struct {
	pattern   string
	window    int
	evaluator lexeme.Evaluator
	re        *regexp2.Regexp
}

// NewRegex compiles pattern. window less than 1 means DefaultWindow. evaluator may be nil.
// Returns InvalidRegexError if pattern cannot be compiled.
func NewRegex(pattern string, window int, evaluator lexeme.Evaluator) (*Regex, error) {
	re, e := regexp2.Compile(`\A(?:`+pattern+`)`, regexp2.None)
	if e != nil {
		return nil, invalidRegexError(pattern, e)
	}

	if window <= 0 {
		window = DefaultWindow
	}
	return &Regex{pattern, window, evaluator, re}, nil
}

// MustRegex is like NewRegex but panics on error.
func MustRegex(pattern string, window int, evaluator lexeme.Evaluator) *Regex {
	r, e := NewRegex(pattern, window, evaluator)
	if e != nil {
		panic(e)
	}
	return r
}

// WithEvaluator returns a copy of r with evaluator e.
func (r *Regex) WithEvaluator(e lexeme.Evaluator) *Regex {
	c := *r
	c.evaluator = e
	return &c
}

func (r *Regex) Pattern() string {
	return r.pattern
}

func (r *Regex) Window() int {
	return r.window
}

func (r *Regex) Kind() Kind {
	return RegexKind
}

func (r *Regex) BNF() string {
	return "regex /" + r.pattern + "/"
}

func (r *Regex) Children() []Rule {
	return nil
}

func (*Regex) rule() {}

// OptionalWhitespace consumes any whitespace including line breaks, it never fails.
// Its value is consumed text, possibly empty.
type OptionalWhitespace struct{}

func (OptionalWhitespace) Kind() Kind {
	return OptionalWhitespaceKind
}

func (OptionalWhitespace) BNF() string {
	return `regex /\s\v{0,}/`
}

func (OptionalWhitespace) Children() []Rule {
	return nil
}

func (OptionalWhitespace) rule() {}

// Remaining consumes everything up to the end of input, it fails at end of input.
type Remaining struct {
	Evaluator lexeme.Evaluator
}

func (r *Remaining) Kind() Kind {
	return RemainingKind
}

func (r *Remaining) BNF() string {
	return "<all-remaining-text>"
}

func (r *Remaining) Children() []Rule {
	return nil
}

func (*Remaining) rule() {}

// Empty matches nothing and always succeeds without value.
type Empty struct{}

func (Empty) Kind() Kind {
	return EmptyKind
}

func (Empty) BNF() string {
	return "<empty>"
}

func (Empty) Children() []Rule {
	return nil
}

func (Empty) rule() {}

// TerminalMatcher is an external terminal implementation.
// MatchTerminal may consume input freely; if it returns false the scanner is restored by the engine.
type TerminalMatcher interface {
	BNF() string
	MatchTerminal(s scanner.Scanner) (text string, matched bool)
}

// Terminal adapts TerminalMatcher to Rule. Empty matched text produces no value.
type Terminal struct {
	Matcher   TerminalMatcher
	Evaluator lexeme.Evaluator
}

func (t *Terminal) Kind() Kind {
	return TerminalKind
}

func (t *Terminal) BNF() string {
	return t.Matcher.BNF()
}

func (t *Terminal) Children() []Rule {
	return nil
}

func (*Terminal) rule() {}
