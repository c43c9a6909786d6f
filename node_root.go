package scriptor

import "context"

// rootNode is the invisible top of a command tree; it never matches input
// itself, only dispatches to its children.
type rootNode[S any] struct {
	baseNode[S]
}

func NewRootNode[S any]() Node[S] {
	n := &rootNode[S]{baseNode: newBaseNode[S]()}
	return n
}

func (n *rootNode[S]) Kind() NodeKind { return RootKind }
func (n *rootNode[S]) Name() string   { return "" }
func (n *rootNode[S]) UsageText() string { return "" }
func (n *rootNode[S]) sortedKey() string { return "" }
func (n *rootNode[S]) isValidInput(string) bool { return false }
func (n *rootNode[S]) examples() []string        { return nil }

func (n *rootNode[S]) parse(reader *StringReader, cc *CommandContextBuilder[S]) error {
	return errDispatcherParseException("cannot parse the root node directly").withContext(reader)
}

func (n *rootNode[S]) listSuggestions(ctx context.Context, cc *CommandContext[S], builder *SuggestionsBuilder) (*Suggestions, error) {
	return builder.Build(), nil
}

func (n *rootNode[S]) base() *baseNode[S] { return &n.baseNode }
