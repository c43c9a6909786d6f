package scriptor

import (
	"context"
	"strings"
)

// StringType selects how StringArgumentType consumes the remaining input.
type StringType int

const (
	// SingleWord reads an unquoted run of identifier-like characters.
	SingleWord StringType = iota
	// QuotablePhrase reads either a quoted string or a single word.
	QuotablePhrase
	// GreedyPhrase consumes everything left in the input, unmodified.
	GreedyPhrase
)

type StringArgumentType[S any] struct {
	kind StringType
}

func Word[S any]() *StringArgumentType[S] { return &StringArgumentType[S]{kind: SingleWord} }

func Phrase[S any]() *StringArgumentType[S] { return &StringArgumentType[S]{kind: QuotablePhrase} }

func Greedy[S any]() *StringArgumentType[S] { return &StringArgumentType[S]{kind: GreedyPhrase} }

func (t *StringArgumentType[S]) Parse(reader *StringReader) (string, error) {
	switch t.kind {
	case GreedyPhrase:
		text := reader.Remaining()
		reader.SetCursor(reader.TotalLength())
		return text, nil
	case SingleWord:
		return reader.ReadUnquotedString(), nil
	default:
		return reader.ReadString()
	}
}

func (t *StringArgumentType[S]) ListSuggestions(ctx context.Context, cc *CommandContext[S], builder *SuggestionsBuilder) (*Suggestions, error) {
	return noSuggestions[S](ctx, cc, builder)
}

func (t *StringArgumentType[S]) Examples() []string {
	switch t.kind {
	case GreedyPhrase:
		return []string{"word", "words with spaces", `"and symbols"`}
	case QuotablePhrase:
		return []string{"word", `"quoted phrase"`}
	default:
		return []string{"word"}
	}
}

// EscapeIfRequired quotes and escapes s if it contains characters that
// would not round-trip through ReadUnquotedString.
func EscapeIfRequired(s string) string {
	for _, c := range []byte(s) {
		if !isAllowedInUnquotedString(c) {
			return escape(s)
		}
	}
	return s
}

func escape(s string) string {
	var b strings.Builder
	b.WriteByte(SyntaxQuote)
	for _, c := range s {
		if c == rune(SyntaxEscape) || c == rune(SyntaxQuote) {
			b.WriteByte(SyntaxEscape)
		}
		b.WriteRune(c)
	}
	b.WriteByte(SyntaxQuote)
	return b.String()
}
