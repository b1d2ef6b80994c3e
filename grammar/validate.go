package grammar

import (
	"sort"

	"github.com/hashicorp/go-multierror"
)

// MaxValidationDepth limits rule nesting checked by Validate.
// It does not limit matching depth: recursion through references is not followed by validation.
const MaxValidationDepth = 500

// Validate checks that every Reference in rules refers to a rule present in rules.
// Problems are reported as *multierror.Error containing one *textparser.Error per problem,
// ordered by rule name. Nesting deeper than MaxValidationDepth aborts validation with TooDeepError.
// Returns nil if there are no problems.
func Validate(rules map[string]Rule) error {
	names := make([]string, 0, len(rules))
	for name := range rules {
		names = append(names, name)
	}
	sort.Strings(names)

	var result *multierror.Error
	for _, name := range names {
		e := validateRule(rules, name, rules[name], 0, &result)
		if e != nil {
			return e
		}
	}

	return result.ErrorOrNil()
}

func validateRule(rules map[string]Rule, name string, r Rule, depth int, result **multierror.Error) error {
	if depth >= MaxValidationDepth {
		return tooDeepError(name)
	}

	if r == nil {
		*result = multierror.Append(*result, nilRuleError(name))
		return nil
	}

	if ref, isRef := r.(*Reference); isRef {
		if _, found := rules[ref.Target]; !found {
			*result = multierror.Append(*result, unknownReferenceError(name, ref.Target))
		}
		return nil
	}

	for _, child := range r.Children() {
		e := validateRule(rules, name, child, depth+1, result)
		if e != nil {
			return e
		}
	}
	return nil
}
