package scanner

import (
	"github.com/ava12/textparser"
)

// Error codes used by scanners:
const (
	// InvalidSourceError indicates that scanner cannot be constructed for given source.
	InvalidSourceError = textparser.ScannerErrors + iota

	// StreamError indicates that underlying stream failed to read or seek.
	StreamError
)

func invalidSourceError(label string) *textparser.Error {
	return textparser.FormatError(InvalidSourceError, "cannot make a stream scanner %q from nil stream", label)
}

func streamError(label string, e error) *textparser.Error {
	return textparser.FormatError(StreamError, "stream %q: %s", label, e.Error())
}
