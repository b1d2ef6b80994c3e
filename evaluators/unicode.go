package evaluators

import (
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

var unicodeEscapes = map[rune]string{
	'\\': `\\`,
	'\n': `\n`,
	'\t': `\t`,
	'\r': `\r`,
	'\b': `\b`,
	'\f': `\f`,
	'"':  `\"`,
	'\'': `\'`,
	'/':  `\/`,
}

// DecodeUnicode replaces \uXXXX escape sequences in a string with UTF-8 characters.
// Decoded characters that have special meaning in quoted strings are escaped again
// (e.g. " becomes \" and \u000a becomes \n), so the result can be decoded further as a quoted string.
// UTF-16 surrogate pairs are combined, unpaired surrogates become U+FFFD.
// Other text, including other escape sequences, is left as is. Non-string values are returned as is.
func DecodeUnicode(value any) (any, error) {
	s, isString := value.(string)
	if !isString || !strings.Contains(s, `\u`) {
		return value, nil
	}

	b := &strings.Builder{}
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := unicodeEscape(s[i:])
		if size == 0 {
			b.WriteByte(s[i])
			i++
			continue
		}

		i += size
		if utf16.IsSurrogate(r) {
			low, lowSize := unicodeEscape(s[i:])
			if lowSize > 0 {
				if paired := utf16.DecodeRune(r, low); paired != utf8.RuneError {
					r = paired
					i += lowSize
				}
			}
			if utf16.IsSurrogate(r) {
				r = utf8.RuneError
			}
		}

		if escaped, found := unicodeEscapes[r]; found {
			b.WriteString(escaped)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String(), nil
}

// unicodeEscape decodes \uXXXX at the start of s, returns 0 size if there is none.
func unicodeEscape(s string) (rune, int) {
	if len(s) < 6 || s[0] != '\\' || s[1] != 'u' {
		return 0, 0
	}

	code, e := strconv.ParseUint(s[2:6], 16, 16)
	if e != nil {
		return 0, 0
	}
	return rune(code), 6
}
