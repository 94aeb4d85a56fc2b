package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Reader is a cursor over a command line or document. Parsers share one
// Reader so that several arguments can be read from the same line, each
// leaving the cursor just after what it consumed.
type Reader struct {
	input  string
	cursor int
}

func NewReader(s string) *Reader {
	return &Reader{input: s}
}

func (r *Reader) Input() string {
	return r.input
}

func (r *Reader) Cursor() int {
	return r.cursor
}

func (r *Reader) SetCursor(i int) {
	r.cursor = i
}

// Pos returns the position of the cursor.
func (r *Reader) Pos() *Pos {
	return &Pos{Input: r.input, Offset: r.cursor}
}

// PosAt returns the position of offset i.
func (r *Reader) PosAt(i int) *Pos {
	return &Pos{Input: r.input, Offset: i}
}

func (r *Reader) CanRead() bool {
	return r.cursor < len(r.input)
}

func (r *Reader) CanReadN(n int) bool {
	return r.cursor+n <= len(r.input)
}

func (r *Reader) Peek() byte {
	return r.input[r.cursor]
}

func (r *Reader) PeekAt(off int) byte {
	return r.input[r.cursor+off]
}

func (r *Reader) Skip() {
	r.cursor++
}

func (r *Reader) Read() byte {
	c := r.input[r.cursor]
	r.cursor++
	return c
}

// Remaining returns the unread part of the input.
func (r *Reader) Remaining() string {
	return r.input[r.cursor:]
}

// Consumed returns the read part of the input.
func (r *Reader) Consumed() string {
	return r.input[:r.cursor]
}

func IsWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func (r *Reader) SkipWhitespace() {
	for r.CanRead() && IsWhitespace(r.Peek()) {
		r.cursor++
	}
}

// Expect consumes c or fails without moving the cursor.
func (r *Reader) Expect(c byte) error {
	if !r.CanRead() || r.Peek() != c {
		return ExpectedErr(strconv.QuoteRune(rune(c)), r.Pos())
	}
	r.cursor++
	return nil
}

func isNumberChar(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-'
}

// ReadInt reads a signed decimal integer.
func (r *Reader) ReadInt() (int, error) {
	start := r.cursor
	for r.CanRead() && isNumberChar(r.Peek()) {
		r.cursor++
	}
	s := r.input[start:r.cursor]
	if s == "" {
		return 0, ExpectedErr("integer", r.Pos())
	}
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		r.cursor = start
		return 0, NewSyntaxErr(fmt.Errorf("%w %q", ErrBadInt, s), r.Pos())
	}
	return int(i), nil
}

func IsQuote(c byte) bool {
	return c == '"' || c == '\''
}

// IsUnquotedChar reports whether c may appear in an unquoted string.
func IsUnquotedChar(c byte) bool {
	return c >= '0' && c <= '9' ||
		c >= 'A' && c <= 'Z' ||
		c >= 'a' && c <= 'z' ||
		c == '_' || c == '-' || c == '.' || c == '+'
}

// ReadUnquoted reads a possibly empty run of unquoted string characters.
func (r *Reader) ReadUnquoted() string {
	start := r.cursor
	for r.CanRead() && IsUnquotedChar(r.Peek()) {
		r.cursor++
	}
	return r.input[start:r.cursor]
}

// ReadQuoted reads a single or double quoted string. Inside, a backslash
// escapes a backslash or the opening quote character.
func (r *Reader) ReadQuoted() (string, error) {
	if !r.CanRead() {
		return "", nil
	}
	q := r.Peek()
	if !IsQuote(q) {
		return "", ExpectedErr("quote", r.Pos())
	}
	start := r.cursor
	r.cursor++
	b := &strings.Builder{}
	esc := false
	for r.CanRead() {
		c := r.Read()
		switch {
		case esc:
			if c != q && c != '\\' {
				r.cursor--
				return "", NewSyntaxErr(fmt.Errorf("%w \\%c", ErrBadEscape, c), r.Pos())
			}
			b.WriteByte(c)
			esc = false
		case c == '\\':
			esc = true
		case c == q:
			return b.String(), nil
		default:
			b.WriteByte(c)
		}
	}
	return "", NewSyntaxErr(fmt.Errorf("%w quoted string", ErrUnterminated), r.PosAt(start))
}

// ReadString reads a quoted string if the cursor is at a quote, and an
// unquoted one otherwise.
func (r *Reader) ReadString() (string, error) {
	if !r.CanRead() {
		return "", nil
	}
	if IsQuote(r.Peek()) {
		return r.ReadQuoted()
	}
	return r.ReadUnquoted(), nil
}

// ReadUntil reads up to but excluding the first delim, or to the end of
// input.
func (r *Reader) ReadUntil(delim byte) string {
	start := r.cursor
	for r.CanRead() && r.Peek() != delim {
		r.cursor++
	}
	return r.input[start:r.cursor]
}
