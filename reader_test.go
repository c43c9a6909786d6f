package scriptor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringReaderPrimitives(t *testing.T) {
	r := NewStringReader("123 -45.6 true \"a\\\"b\" plain")

	n, err := r.ReadInt()
	require.NoError(t, err)
	assert.Equal(t, 123, n)

	r.Skip()
	f, err := r.ReadDouble()
	require.NoError(t, err)
	assert.InDelta(t, -45.6, f, 1e-9)

	r.Skip()
	b, err := r.ReadBoolean()
	require.NoError(t, err)
	assert.True(t, b)

	r.Skip()
	s, err := r.ReadQuotedString()
	require.NoError(t, err)
	assert.Equal(t, `a"b`, s)

	r.Skip()
	word := r.ReadUnquotedString()
	assert.Equal(t, "plain", word)
}

func TestReadIntCursorRestoresOnFailure(t *testing.T) {
	r := NewStringReader("abc")
	start := r.Cursor()
	_, err := r.ReadInt()
	require.Error(t, err)
	assert.Equal(t, start, r.Cursor())
	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, KindReaderExpectedInt, se.Kind)
}

func TestReadLongUsesFullTokenNotSingleChar(t *testing.T) {
	r := NewStringReader("-123456789012")
	value, err := r.ReadLong()
	require.NoError(t, err)
	assert.EqualValues(t, -123456789012, value)
	assert.False(t, r.CanReadOne())
}

func TestReadStringUntilInvalidEscapeRestoresCursor(t *testing.T) {
	r := NewStringReader(`"a\b"`)
	start := r.Cursor()
	_, err := r.ReadQuotedString()
	require.Error(t, err)
	assert.Equal(t, start, r.Cursor())
	assert.ErrorIs(t, err, ErrReaderInvalidEscape)

	var se *SyntaxError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Cursor(), "error should be positioned at the offending escape character, not the reset cursor")
}

func TestExpectMismatchRestoresCursor(t *testing.T) {
	r := NewStringReader("abc")
	err := r.Expect('x')
	require.Error(t, err)
	assert.Equal(t, 0, r.Cursor())
}

func TestSyntaxErrorContextTruncates(t *testing.T) {
	input := "this is a fairly long command line"
	se := errReaderExpectedInt().atPosition(input, 20)
	ctx := se.Context()
	assert.Contains(t, ctx, "...")
	assert.Contains(t, ctx, "<-- here")
}
