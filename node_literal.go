package scriptor

import "context"

// literalNode matches one fixed, case-sensitive token.
type literalNode[S any] struct {
	baseNode[S]
	literal string
}

func NewLiteralNode[S any](literal string) *literalNode[S] {
	return &literalNode[S]{baseNode: newBaseNode[S](), literal: literal}
}

func (n *literalNode[S]) Kind() NodeKind    { return LiteralKind }
func (n *literalNode[S]) Name() string      { return n.literal }
func (n *literalNode[S]) UsageText() string { return n.literal }
func (n *literalNode[S]) sortedKey() string { return n.literal }
func (n *literalNode[S]) examples() []string { return []string{n.literal} }
func (n *literalNode[S]) base() *baseNode[S] { return &n.baseNode }

func (n *literalNode[S]) isValidInput(input string) bool {
	return tryLiteral(NewStringReader(input), n.literal)
}

func (n *literalNode[S]) parse(reader *StringReader, cc *CommandContextBuilder[S]) error {
	start := reader.Cursor()
	end := n.parseLiteral(reader)
	if end == -1 {
		reader.SetCursor(start)
		return errLiteralIncorrect(n.literal).withContext(reader)
	}
	cc.WithNode(n, NewStringRange(start, end))
	return nil
}

// parseLiteral returns the cursor position after consuming the literal, or
// -1 if the literal does not match at the current position. On a mismatch
// the caller is responsible for restoring the cursor.
func (n *literalNode[S]) parseLiteral(reader *StringReader) int {
	start := reader.Cursor()
	if !tryLiteral(reader, n.literal) {
		return -1
	}
	reader.SetCursor(start + len(n.literal))
	return reader.Cursor()
}

func (n *literalNode[S]) listSuggestions(ctx context.Context, cc *CommandContext[S], builder *SuggestionsBuilder) (*Suggestions, error) {
	remaining := builder.RemainingLowerCase()
	if startsWith(toLower(n.literal), remaining) {
		builder.Suggest(n.literal)
	}
	return builder.Build(), nil
}

func toLower(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}
