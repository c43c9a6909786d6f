package scriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuggestionExpandPadsAroundNarrowerRange(t *testing.T) {
	input := "foobar baz"
	s := NewSuggestion(NewStringRange(0, 3), "foo")
	expanded := s.expand(input, NewStringRange(0, 6))
	assert.Equal(t, "foobar", expanded.Text)
}

func TestCreateSuggestionsKeepsTextsDifferingOnlyInCase(t *testing.T) {
	suggestions := createSuggestions("f", []*Suggestion{
		NewSuggestion(NewStringRange(0, 1), "Foo"),
		NewSuggestion(NewStringRange(0, 1), "foo"),
		NewSuggestion(NewStringRange(0, 1), "bar"),
	})
	assert.Len(t, suggestions.List, 3)
}

func TestIntSuggestionSortsNumerically(t *testing.T) {
	suggestions := createSuggestions("", []*Suggestion{
		NewIntSuggestion(NewStringRange(0, 0), 20),
		NewIntSuggestion(NewStringRange(0, 0), 3),
		NewIntSuggestion(NewStringRange(0, 0), 100),
	})
	var texts []string
	for _, s := range suggestions.List {
		texts = append(texts, s.Text)
	}
	assert.Equal(t, []string{"3", "20", "100"}, texts)
}

func TestMergeSuggestionsEmptyInputReturnsCanonicalEmpty(t *testing.T) {
	merged := MergeSuggestions("anything", nil)
	assert.True(t, merged.IsEmpty())
	assert.Equal(t, NewStringRangeAt(0), merged.Range)
}

func TestSuggestionsBuilderSkipsExactRemainingMatch(t *testing.T) {
	b := NewSuggestionsBuilder("foo", 0)
	b.Suggest("foo")
	assert.Empty(t, b.Build().List)
}
