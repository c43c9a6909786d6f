package scriptor

import (
	"strconv"
	"strings"
)

// SyntaxEscape and SyntaxQuote are the characters the cursor treats specially
// while reading quoted strings.
const (
	SyntaxEscape = '\\'
	SyntaxQuote  = '"'
)

// Reader is the read-only view of a cursor over an input string: the subset
// of *StringReader's API that error construction and parse-result inspection
// need without being able to advance the cursor themselves.
type Reader interface {
	String() string
	RemainingLength() int
	TotalLength() int
	Cursor() int
	Read() string
	Remaining() string
	CanRead(length int) bool
	CanReadOne() bool
	Peek() byte
	PeekAt(offset int) byte
}

// StringReader is the sole mutable view over an input string during a parse.
// Every candidate branch in the dispatcher owns its own copy so that trying
// one sibling can never disturb another's cursor.
type StringReader struct {
	s      string
	cursor int
}

func NewStringReader(s string) *StringReader {
	return &StringReader{s: s}
}

// NewStringReaderFrom copies another reader's string and cursor position,
// giving the copy an independent cursor.
func NewStringReaderFrom(other *StringReader) *StringReader {
	return &StringReader{s: other.s, cursor: other.cursor}
}

func (r *StringReader) String() string         { return r.s }
func (r *StringReader) RemainingLength() int    { return len(r.s) - r.cursor }
func (r *StringReader) TotalLength() int        { return len(r.s) }
func (r *StringReader) Cursor() int             { return r.cursor }
func (r *StringReader) SetCursor(cursor int)    { r.cursor = cursor }
func (r *StringReader) Read() string            { return r.s[:r.cursor] }
func (r *StringReader) Remaining() string       { return r.s[r.cursor:] }

func (r *StringReader) CanRead(length int) bool { return r.cursor+length <= len(r.s) }
func (r *StringReader) CanReadOne() bool        { return r.CanRead(1) }

func (r *StringReader) Peek() byte { return r.s[r.cursor] }
func (r *StringReader) PeekAt(offset int) byte { return r.s[r.cursor+offset] }

// Next consumes and returns the current character.
func (r *StringReader) Next() byte {
	c := r.s[r.cursor]
	r.cursor++
	return c
}

// Skip unconditionally advances the cursor by one (used to step over the
// single-space argument separator).
func (r *StringReader) Skip() { r.cursor++ }

func (r *StringReader) SkipWhitespace() {
	for r.CanReadOne() && isWhitespace(r.Peek()) {
		r.Skip()
	}
}

func isWhitespace(c byte) bool { return c == ' ' }

func isAllowedNumber(c byte) bool {
	return (c >= '0' && c <= '9') || c == '.' || c == '-'
}

func isQuotedStringStart(c byte) bool {
	return c == '"' || c == '\''
}

func isAllowedInUnquotedString(c byte) bool {
	return (c >= '0' && c <= '9') ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_' || c == '-' || c == '.' || c == '+'
}

// readNumberBody consumes the longest run of [0-9.-], without interpreting
// it; the caller decides how to parse (or reject) the resulting token.
func (r *StringReader) readNumberBody() string {
	start := r.cursor
	for r.CanReadOne() && isAllowedNumber(r.Peek()) {
		r.Skip()
	}
	return r.s[start:r.cursor]
}

func (r *StringReader) ReadInt() (int, error) {
	start := r.cursor
	body := r.readNumberBody()
	if body == "" {
		r.cursor = start
		return 0, errReaderExpectedInt().withContext(r)
	}
	value, err := strconv.Atoi(body)
	if err != nil {
		r.cursor = start
		return 0, errReaderInvalidInt(body).withContext(r)
	}
	return value, nil
}

func (r *StringReader) ReadLong() (int64, error) {
	start := r.cursor
	body := r.readNumberBody()
	if body == "" {
		r.cursor = start
		return 0, errReaderExpectedLong().withContext(r)
	}
	value, err := strconv.ParseInt(body, 10, 64)
	if err != nil {
		r.cursor = start
		return 0, errReaderInvalidLong(body).withContext(r)
	}
	return value, nil
}

func (r *StringReader) ReadFloat() (float32, error) {
	start := r.cursor
	body := r.readNumberBody()
	if body == "" {
		r.cursor = start
		return 0, errReaderExpectedFloat().withContext(r)
	}
	value, err := strconv.ParseFloat(body, 32)
	if err != nil {
		r.cursor = start
		return 0, errReaderInvalidFloat(body).withContext(r)
	}
	return float32(value), nil
}

func (r *StringReader) ReadDouble() (float64, error) {
	start := r.cursor
	body := r.readNumberBody()
	if body == "" {
		r.cursor = start
		return 0, errReaderExpectedDouble().withContext(r)
	}
	value, err := strconv.ParseFloat(body, 64)
	if err != nil {
		r.cursor = start
		return 0, errReaderInvalidDouble(body).withContext(r)
	}
	return value, nil
}

func (r *StringReader) ReadUnquotedString() string {
	start := r.cursor
	for r.CanReadOne() && isAllowedInUnquotedString(r.Peek()) {
		r.Skip()
	}
	return r.s[start:r.cursor]
}

// ReadQuotedString reads a string whose terminator is determined by whatever
// quote character opens it, honoring backslash escapes of the quote and of
// backslash itself only.
func (r *StringReader) ReadQuotedString() (string, error) {
	if !r.CanReadOne() {
		return "", nil
	}
	start := r.cursor
	next := r.Peek()
	if !isQuotedStringStart(next) {
		return "", errReaderExpectedStartOfQuote().withContext(r)
	}
	r.Skip()
	value, err := r.ReadStringUntil(next)
	if err != nil {
		r.cursor = start
		return "", err
	}
	return value, nil
}

// ReadStringUntil reads until terminator, un-escaping \\ and \<terminator>;
// any other escaped character aborts the read.
func (r *StringReader) ReadStringUntil(terminator byte) (string, error) {
	var b strings.Builder
	escaped := false
	start := r.cursor
	for r.CanReadOne() {
		c := r.Next()
		if escaped {
			if c == terminator || c == SyntaxEscape {
				b.WriteByte(c)
				escaped = false
			} else {
				r.cursor--
				err := errReaderInvalidEscape(string(c)).withContext(r)
				r.cursor = start
				return "", err
			}
		} else if c == SyntaxEscape {
			escaped = true
		} else if c == terminator {
			return b.String(), nil
		} else {
			b.WriteByte(c)
		}
	}
	err := errReaderExpectedEndOfQuote().withContext(r)
	r.cursor = start
	return "", err
}

// ReadString reads a quoted string if the next character is a quote,
// otherwise an unquoted one.
func (r *StringReader) ReadString() (string, error) {
	if r.CanReadOne() && isQuotedStringStart(r.Peek()) {
		return r.ReadQuotedString()
	}
	return r.ReadUnquotedString(), nil
}

func (r *StringReader) ReadBoolean() (bool, error) {
	start := r.cursor
	value, _ := r.ReadString()
	if value == "" {
		r.cursor = start
		return false, errReaderExpectedBool().withContext(r)
	}
	switch value {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		r.cursor = start
		return false, errReaderInvalidBool(value).withContext(r)
	}
}

func (r *StringReader) Expect(c byte) error {
	if !r.CanReadOne() || r.Peek() != c {
		return errReaderExpectedSymbol(c).withContext(r)
	}
	r.Skip()
	return nil
}
