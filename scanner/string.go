package scanner

// StringScanner is a Scanner over in-memory string.
type StringScanner struct {
	tracker
	input string
	label string
	start Position
}

// NewString creates scanner over input. label is used in error messages.
func NewString(input, label string, opts ...Option) *StringScanner {
	c := newConfig(opts)
	s := &StringScanner{
		tracker: tracker{line: c.line, offset: c.offset, tabSize: c.tabSize},
		input:   input,
		label:   label,
	}
	s.start = s.position()
	return s
}

func (s *StringScanner) ahead(size int) string {
	if size <= 0 || s.pos >= len(s.input) {
		return ""
	}

	end := s.pos + size
	if end > len(s.input) || end < s.pos {
		end = len(s.input)
	}
	return s.input[s.pos:end]
}

func (s *StringScanner) ReadBytes(size int) string {
	text := s.ahead(size)
	s.advance(text)
	return text
}

func (s *StringScanner) ReadBytesAhead(size int) string {
	return s.ahead(size)
}

func (s *StringScanner) MoveBytes(size int) {
	s.ReadBytes(size)
}

func (s *StringScanner) ReadRemainingBytes() string {
	text := s.ReadAheadRemainingBytes()
	s.advance(text)
	return text
}

func (s *StringScanner) ReadAheadRemainingBytes() string {
	if s.pos >= len(s.input) {
		return ""
	}
	return s.input[s.pos:]
}

func (s *StringScanner) MovePastWhitespaceOnCurrentLine() bool {
	return s.skipSpace(s.ReadAheadRemainingBytes(), false) > 0
}

func (s *StringScanner) MovePastWhitespace() bool {
	return s.skipSpace(s.ReadAheadRemainingBytes(), true) > 0
}

func (s *StringScanner) IsAtEndOfInput() bool {
	return s.pos >= len(s.input)
}

func (s *StringScanner) Position() Position {
	return s.position()
}

// SetPosition moves cursor to p, byte offset is clamped to input bounds.
func (s *StringScanner) SetPosition(p Position) {
	s.setPosition(p)
	if s.pos > len(s.input) {
		s.pos = len(s.input)
	} else if s.pos < 0 {
		s.pos = 0
	}
}

func (s *StringScanner) StartPosition() Position {
	return s.start
}

func (s *StringScanner) Label() string {
	return s.label
}

func (s *StringScanner) String() string {
	return s.input
}

// Err always returns nil.
func (s *StringScanner) Err() error {
	return nil
}
