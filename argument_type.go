package scriptor

import "context"

// ArgumentType parses a single argument's raw text into a value of type T,
// and optionally contributes suggestions at the current cursor.
type ArgumentType[S any, T any] interface {
	Parse(reader *StringReader) (T, error)
	ListSuggestions(ctx context.Context, cc *CommandContext[S], builder *SuggestionsBuilder) (*Suggestions, error)
	Examples() []string
}

// sourceAwareArgumentType is an optional capability: types that need the
// command source to parse (rather than just to suggest) implement this
// instead of relying on Parse alone. Checked via a type assertion at the
// one call site that needs it, since Go has no default interface methods.
type sourceAwareArgumentType[S any, T any] interface {
	ParseWithSource(reader *StringReader, source S) (T, error)
}

// SuggestionProvider overrides the suggestions an argument node offers,
// in place of its ArgumentType's own ListSuggestions.
type SuggestionProvider[S any] func(ctx context.Context, cc *CommandContext[S], builder *SuggestionsBuilder) (*Suggestions, error)

// noSuggestions is shared by argument types that never contribute
// completions of their own (the numeric and string types).
func noSuggestions[S any](_ context.Context, _ *CommandContext[S], builder *SuggestionsBuilder) (*Suggestions, error) {
	return builder.Build(), nil
}
