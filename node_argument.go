package scriptor

import "context"

// argumentNode matches one parsed value of type T, produced by an
// ArgumentType[S,T]. T is erased to `any` once stored in a ParsedArgument,
// which is how sibling argument nodes of differing T can coexist as
// children of the same parent despite Go generics having no existential
// types.
type argumentNode[S any, T any] struct {
	baseNode[S]
	name        string
	argType     ArgumentType[S, T]
	suggestions SuggestionProvider[S]
}

func NewArgumentNode[S any, T any](name string, argType ArgumentType[S, T]) *argumentNode[S, T] {
	return &argumentNode[S, T]{baseNode: newBaseNode[S](), name: name, argType: argType}
}

func (n *argumentNode[S, T]) Kind() NodeKind    { return ArgumentKind }
func (n *argumentNode[S, T]) Name() string      { return n.name }
func (n *argumentNode[S, T]) UsageText() string { return "<" + n.name + ">" }
func (n *argumentNode[S, T]) sortedKey() string { return n.name }
func (n *argumentNode[S, T]) examples() []string { return n.argType.Examples() }
func (n *argumentNode[S, T]) base() *baseNode[S] { return &n.baseNode }

func (n *argumentNode[S, T]) isValidInput(input string) bool {
	reader := NewStringReader(input)
	_, err := n.argType.Parse(reader)
	if err != nil {
		return false
	}
	return !reader.CanReadOne() || reader.Peek() == ' '
}

func (n *argumentNode[S, T]) parse(reader *StringReader, cc *CommandContextBuilder[S]) error {
	start := reader.Cursor()
	value, err := n.parseValue(reader, cc.Source())
	if err != nil {
		return err
	}
	end := reader.Cursor()
	rng := NewStringRange(start, end)
	cc.WithArgument(n.name, ParsedArgument{Range: rng, Result: value})
	cc.WithNode(n, rng)
	return nil
}

func (n *argumentNode[S, T]) parseValue(reader *StringReader, source S) (T, error) {
	if sourceAware, ok := n.argType.(sourceAwareArgumentType[S, T]); ok {
		return sourceAware.ParseWithSource(reader, source)
	}
	return n.argType.Parse(reader)
}

func (n *argumentNode[S, T]) listSuggestions(ctx context.Context, cc *CommandContext[S], builder *SuggestionsBuilder) (*Suggestions, error) {
	if n.suggestions != nil {
		return n.suggestions(ctx, cc, builder)
	}
	return n.argType.ListSuggestions(ctx, cc, builder)
}
