package scriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerArgumentTypeBounds(t *testing.T) {
	ty := IntegerInRange[testSource](0, 10)

	v, err := ty.Parse(NewStringReader("5"))
	require.NoError(t, err)
	assert.Equal(t, 5, v)

	_, err = ty.Parse(NewStringReader("11"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntegerTooHigh)

	_, err = ty.Parse(NewStringReader("-1"))
	require.Error(t, err)
}

func TestLongArgumentTypeReadsFullToken(t *testing.T) {
	ty := Long[testSource]()
	v, err := ty.Parse(NewStringReader("9999999999"))
	require.NoError(t, err)
	assert.EqualValues(t, 9999999999, v)
}

func TestBoolArgumentTypeSuggestionsRespectPrefix(t *testing.T) {
	ty := &BoolArgumentType[testSource]{}
	b := NewSuggestionsBuilder("tr", 0)
	suggestions, err := ty.ListSuggestions(nil, nil, b)
	require.NoError(t, err)
	require.Len(t, suggestions.List, 1)
	assert.Equal(t, "true", suggestions.List[0].Text)
}

func TestStringArgumentTypeWordStopsAtSpace(t *testing.T) {
	r := NewStringReader("hello world")
	v, err := Word[testSource]().Parse(r)
	require.NoError(t, err)
	assert.Equal(t, "hello", v)
	assert.Equal(t, " world", r.Remaining())
}

func TestStringArgumentTypeGreedyConsumesEverything(t *testing.T) {
	r := NewStringReader(`raw "text" untouched`)
	v, err := Greedy[testSource]().Parse(r)
	require.NoError(t, err)
	assert.Equal(t, `raw "text" untouched`, v)
	assert.False(t, r.CanReadOne())
}

func TestEscapeIfRequiredRoundTrips(t *testing.T) {
	escaped := EscapeIfRequired("has space")
	assert.Equal(t, `"has space"`, escaped)

	r := NewStringReader(escaped)
	v, err := r.ReadString()
	require.NoError(t, err)
	assert.Equal(t, "has space", v)

	assert.Equal(t, "plainword", EscapeIfRequired("plainword"))
}
