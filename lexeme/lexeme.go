// Package lexeme defines values produced by successful grammar matches.
//
// A match produces a tree of Lexeme and List nodes holding raw matched text.
// The tree is never evaluated automatically: Evaluate walks it bottom-up applying evaluators
// attached by grammar rules, the tree itself is not modified.
package lexeme

import (
	"fmt"
	"strconv"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Evaluator transforms evaluated value of a node. Returned error is passed to Evaluate caller as is.
type Evaluator = func(value any) (any, error)

// Values is an evaluated List: child values keyed by slot name or index, in match order.
type Values = orderedmap.OrderedMap[string, any]

// Value is a node of matched value tree.
type Value interface {
	// Name returns the name given to the node by the rule that produced it.
	Name() string
	// Evaluate returns evaluated node value.
	Evaluate() (any, error)
}

// Lexeme is a named leaf value. Raw value is either a string, a nested Value, or nil.
type Lexeme struct {
	name      string
	value     any
	evaluator Evaluator
}

// New creates Lexeme. evaluator may be nil.
func New(name string, value any, evaluator Evaluator) *Lexeme {
	return &Lexeme{name, value, evaluator}
}

func (l *Lexeme) Name() string {
	return l.name
}

// Raw returns the value as matched.
func (l *Lexeme) Raw() any {
	return l.value
}

// HasEvaluator tells whether an evaluator is attached.
func (l *Lexeme) HasEvaluator() bool {
	return l.evaluator != nil
}

// Evaluate evaluates nested Value if any, then applies evaluator if any.
func (l *Lexeme) Evaluate() (any, error) {
	value := l.value
	if v, ok := value.(Value); ok {
		var e error
		value, e = v.Evaluate()
		if e != nil {
			return nil, e
		}
	}

	if l.evaluator != nil {
		return l.evaluator(value)
	}

	return value, nil
}

// Item is a keyed List element.
type Item struct {
	Key   string
	Value Value
}

// List is a named ordered collection of values.
type List struct {
	name      string
	items     []Item
	evaluator Evaluator
}

// NewList creates List, items are copied. evaluator may be nil.
func NewList(name string, items []Item, evaluator Evaluator) *List {
	is := make([]Item, len(items))
	copy(is, items)
	return &List{name, is, evaluator}
}

// Sequential creates List keyed by element indexes.
func Sequential(name string, values []Value, evaluator Evaluator) *List {
	is := make([]Item, len(values))
	for i, v := range values {
		is[i] = Item{strconv.Itoa(i), v}
	}
	return &List{name, is, evaluator}
}

func (l *List) Name() string {
	return l.name
}

func (l *List) Len() int {
	return len(l.items)
}

// Item returns i-th element. Panics if i is out of range.
func (l *List) Item(i int) Item {
	return l.items[i]
}

// Get returns the first element with given key.
func (l *List) Get(key string) (Value, bool) {
	for _, it := range l.items {
		if it.Key == key {
			return it.Value, true
		}
	}
	return nil, false
}

// Items returns a copy of list elements.
func (l *List) Items() []Item {
	result := make([]Item, len(l.items))
	copy(result, l.items)
	return result
}

// HasEvaluator tells whether an evaluator is attached.
func (l *List) HasEvaluator() bool {
	return l.evaluator != nil
}

// Evaluate evaluates every element in order and collects results into new *Values,
// then applies evaluator if any. Elements sharing a key keep the last evaluated value
// at the position of the first one.
func (l *List) Evaluate() (any, error) {
	values := orderedmap.New[string, any](len(l.items))
	for _, it := range l.items {
		var value any
		if it.Value != nil {
			var e error
			value, e = it.Value.Evaluate()
			if e != nil {
				return nil, e
			}
		}
		values.Set(it.Key, value)
	}

	if l.evaluator != nil {
		return l.evaluator(values)
	}

	return values, nil
}

// Slice returns evaluated values in order, dropping keys.
func Slice(values *Values) []any {
	if values == nil {
		return nil
	}

	result := make([]any, 0, values.Len())
	for pair := values.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Value)
	}
	return result
}

// Keys returns keys of evaluated values in order.
func Keys(values *Values) []string {
	if values == nil {
		return nil
	}

	result := make([]string, 0, values.Len())
	for pair := values.Oldest(); pair != nil; pair = pair.Next() {
		result = append(result, pair.Key)
	}
	return result
}

// Dump returns compact textual representation of raw value tree, e.g.
// (list 0:"1" 1:(ref "2")).
func Dump(v Value) string {
	b := &strings.Builder{}
	dump(v, b)
	return b.String()
}

func dump(v Value, b *strings.Builder) {
	switch n := v.(type) {
	case nil:
		b.WriteString("nil")
	case *Lexeme:
		switch raw := n.value.(type) {
		case nil:
			b.WriteString("(" + n.name + ")")
		case string:
			b.WriteString(strconv.Quote(raw))
		case Value:
			b.WriteString("(" + n.name + " ")
			dump(raw, b)
			b.WriteString(")")
		default:
			b.WriteString(fmt.Sprint(raw))
		}
	case *List:
		b.WriteString("(" + n.name)
		for _, it := range n.items {
			b.WriteString(" " + it.Key + ":")
			dump(it.Value, b)
		}
		b.WriteString(")")
	default:
		b.WriteString("(" + v.Name() + " ?)")
	}
}
