package scriptor

import "context"

type BoolArgumentType[S any] struct{}

func Bool[S any]() *BoolArgumentType[S] { return &BoolArgumentType[S]{} }

func (t *BoolArgumentType[S]) Parse(reader *StringReader) (bool, error) {
	return reader.ReadBoolean()
}

func (t *BoolArgumentType[S]) ListSuggestions(ctx context.Context, cc *CommandContext[S], builder *SuggestionsBuilder) (*Suggestions, error) {
	remaining := builder.RemainingLowerCase()
	if startsWith("true", remaining) {
		builder.Suggest("true")
	}
	if startsWith("false", remaining) {
		builder.Suggest("false")
	}
	return builder.Build(), nil
}

func (t *BoolArgumentType[S]) Examples() []string { return []string{"true", "false"} }

func startsWith(s, prefix string) bool {
	return len(s) >= len(prefix) && s[:len(prefix)] == prefix
}
