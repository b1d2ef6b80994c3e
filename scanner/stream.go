package scanner

import (
	"io"
)

const whitespaceChunkSize = 64

// StreamScanner is a Scanner over seekable byte stream.
// Cursor position always matches the physical stream position, so every peek is followed by a seek.
// The first stream error is remembered and reported by Err, subsequent reads return nothing.
type StreamScanner struct {
	tracker
	r     io.ReadSeeker
	label string
	start Position
	err   error
}

// NewStream creates scanner over r starting at its current offset. label is used in error messages.
// Returns InvalidSourceError if r is nil.
func NewStream(r io.ReadSeeker, label string, opts ...Option) (*StreamScanner, error) {
	if r == nil {
		return nil, invalidSourceError(label)
	}

	pos, e := r.Seek(0, io.SeekCurrent)
	if e != nil {
		return nil, streamError(label, e)
	}

	c := newConfig(opts)
	s := &StreamScanner{
		tracker: tracker{line: c.line, offset: c.offset, pos: int(pos), tabSize: c.tabSize},
		r:       r,
		label:   label,
	}
	s.start = s.position()
	return s, nil
}

func (s *StreamScanner) fail(e error) {
	if s.err == nil {
		s.err = streamError(s.label, e)
	}
}

func (s *StreamScanner) seek(pos int) {
	if s.err != nil {
		return
	}

	if _, e := s.r.Seek(int64(pos), io.SeekStart); e != nil {
		s.fail(e)
	}
}

func (s *StreamScanner) read(size int) string {
	if size <= 0 || s.err != nil {
		return ""
	}

	// buffer grows with actual content, size may be arbitrarily large
	content, e := io.ReadAll(io.LimitReader(s.r, int64(size)))
	if e != nil {
		s.fail(e)
	}
	return string(content)
}

func (s *StreamScanner) readAll() string {
	if s.err != nil {
		return ""
	}

	content, e := io.ReadAll(s.r)
	if e != nil {
		s.fail(e)
	}
	return string(content)
}

func (s *StreamScanner) ReadBytes(size int) string {
	text := s.read(size)
	s.advance(text)
	return text
}

func (s *StreamScanner) ReadBytesAhead(size int) string {
	text := s.read(size)
	if text != "" {
		s.seek(s.pos)
	}
	return text
}

func (s *StreamScanner) MoveBytes(size int) {
	s.ReadBytes(size)
}

func (s *StreamScanner) ReadRemainingBytes() string {
	text := s.readAll()
	s.advance(text)
	return text
}

func (s *StreamScanner) ReadAheadRemainingBytes() string {
	text := s.readAll()
	s.seek(s.pos)
	return text
}

func (s *StreamScanner) movePastWhitespace(crossLines bool) bool {
	start := s.pos
	for {
		chunk := s.read(whitespaceChunkSize)
		n := s.skipSpace(chunk, crossLines)
		if n < len(chunk) {
			s.seek(s.pos)
		}
		if n == 0 || n < len(chunk) {
			break
		}
	}
	return s.pos != start
}

func (s *StreamScanner) MovePastWhitespaceOnCurrentLine() bool {
	return s.movePastWhitespace(false)
}

func (s *StreamScanner) MovePastWhitespace() bool {
	return s.movePastWhitespace(true)
}

func (s *StreamScanner) IsAtEndOfInput() bool {
	return s.ReadBytesAhead(1) == ""
}

func (s *StreamScanner) Position() Position {
	return s.position()
}

// SetPosition moves both cursor and underlying stream to p.
func (s *StreamScanner) SetPosition(p Position) {
	s.setPosition(p)
	if s.pos < 0 {
		s.pos = 0
	}
	s.seek(s.pos)
}

func (s *StreamScanner) StartPosition() Position {
	return s.start
}

func (s *StreamScanner) Label() string {
	return s.label
}

// String returns the whole stream content starting at offset 0, cursor position is preserved.
func (s *StreamScanner) String() string {
	s.seek(0)
	text := s.readAll()
	s.seek(s.pos)
	return text
}

func (s *StreamScanner) Err() error {
	return s.err
}
