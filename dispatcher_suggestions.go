package scriptor

import "context"

// GetCompletionSuggestions parses as much of a previous ParseResults as
// possible and fans out suggestion requests, concurrently, across every
// node capable of contributing a completion at the cursor.
func (d *Dispatcher[S]) GetCompletionSuggestions(ctx context.Context, parse *ParseResults[S]) *Suggestions {
	return d.GetCompletionSuggestionsAt(ctx, parse, parse.Reader.TotalLength())
}

func (d *Dispatcher[S]) GetCompletionSuggestionsAt(ctx context.Context, parse *ParseResults[S], cursor int) *Suggestions {
	contextBuilder := parse.Context
	parent, startPos := findSuggestionContext(contextBuilder, cursor)
	start := min(startPos, cursor)

	fullInput := parse.Reader.String()
	truncatedInput := fullInput[:cursor]
	built := contextBuilder.Build(truncatedInput)

	candidates := parent.Children()
	return fanOutSuggestions(ctx, candidates, built, truncatedInput, start, fullInput)
}

// findSuggestionContext mirrors CommandContextBuilder.findSuggestionContext:
// it walks the redirect chain only once the cursor has moved past this
// builder's own matched range, and otherwise finds which matched node's
// range covers the cursor, returning the node before it as the suggestion
// parent. Returns the parent to list children of, and the start position
// suggestions should be built from.
func findSuggestionContext[S any](cb *CommandContextBuilder[S], cursor int) (Node[S], int) {
	rng := cb.Range()
	if cursor > rng.End {
		if cb.child != nil {
			return findSuggestionContext(cb.child, cursor)
		}
		nodes := cb.Nodes()
		if len(nodes) > 0 {
			last := nodes[len(nodes)-1]
			return last.Node, last.Range.End + 1
		}
		return cb.RootNode(), rng.Start
	}

	prev := cb.RootNode()
	for _, n := range cb.Nodes() {
		if n.Range.Start <= cursor && cursor <= n.Range.End {
			return prev, n.Range.Start
		}
		prev = n.Node
	}
	return prev, rng.Start
}
