// Package evaluators contains lexeme.Evaluator implementations for common value conversions.
//
// Evaluators pass values they do not handle through unchanged, so they can be attached
// to rules producing either strings or evaluated lists.
package evaluators

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/ava12/textparser"
	"github.com/ava12/textparser/lexeme"
)

// Error codes used by evaluators:
const (
	// NumberError indicates that value cannot be converted to a number.
	NumberError = textparser.EvaluatorErrors + iota

	// StringError indicates that value cannot be converted to a string.
	StringError
)

func numberError(value any, e error) *textparser.Error {
	return textparser.FormatError(NumberError, "cannot convert %q to number: %s", cast.ToString(value), e.Error())
}

func stringError(value any, e error) *textparser.Error {
	return textparser.FormatError(StringError, "cannot convert %T to string: %s", value, e.Error())
}

// Chain returns evaluator applying evaluators in order, each one receives the result of the previous one.
// nil evaluators are skipped.
func Chain(evaluators ...lexeme.Evaluator) lexeme.Evaluator {
	return func(value any) (any, error) {
		var e error
		for _, ev := range evaluators {
			if ev == nil {
				continue
			}

			value, e = ev(value)
			if e != nil {
				return nil, e
			}
		}
		return value, nil
	}
}

// CastToNumber converts a decimal string to int64 if it holds an integer, to float64 otherwise.
// Surrounding whitespace is ignored. Numeric values are converted to int64 or float64 as well,
// other values are returned as is. Returns NumberError if a string is not a number.
func CastToNumber(value any) (any, error) {
	switch v := value.(type) {
	case string:
		s := strings.TrimSpace(v)
		if i, e := strconv.ParseInt(s, 10, 64); e == nil {
			return i, nil
		}

		f, e := cast.ToFloat64E(s)
		if e != nil {
			return nil, numberError(v, e)
		}
		return f, nil

	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32:
		return cast.ToInt64E(v)

	case uint64, float32, float64:
		return cast.ToFloat64E(v)

	default:
		return value, nil
	}
}

// ParseHex converts a hexadecimal string with optional sign to int64, e.g. "-ff" to -255.
// Non-string values are returned as is. Returns NumberError if a string is not a hex number
// or does not fit into int64.
func ParseHex(value any) (any, error) {
	s, isString := value.(string)
	if !isString {
		return value, nil
	}

	i, e := strconv.ParseInt(strings.TrimSpace(s), 16, 64)
	if e != nil {
		return nil, numberError(s, e)
	}
	return i, nil
}

// CastToString converts scalar values to string. nil becomes empty string.
// Returns StringError for values that have no string form.
func CastToString(value any) (any, error) {
	s, e := cast.ToStringE(value)
	if e != nil {
		return nil, stringError(value, e)
	}
	return s, nil
}

// Trim removes leading and trailing whitespace from strings.
func Trim(value any) (any, error) {
	if s, isString := value.(string); isString {
		return strings.TrimSpace(s), nil
	}
	return value, nil
}

// TrimSuffix returns evaluator removing suffix from strings.
func TrimSuffix(suffix string) lexeme.Evaluator {
	return func(value any) (any, error) {
		if s, isString := value.(string); isString {
			return strings.TrimSuffix(s, suffix), nil
		}
		return value, nil
	}
}
