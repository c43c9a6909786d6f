package scriptor

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSource struct {
	name  string
	admin bool
}

// S1 — simple literal.
func TestExecuteSimpleLiteral(t *testing.T) {
	d := NewDispatcher[testSource]()
	d.Register(Literal[testSource]("foo").Executes(func(cc *CommandContext[testSource]) (int, error) {
		return 42, nil
	}))

	result, err := d.Execute("foo", testSource{})
	require.NoError(t, err)
	assert.Equal(t, 42, result)

	_, err = d.Execute("fo", testSource{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = d.Execute("foo bar", testSource{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownArgument)
}

// S2 — nested literal with bounded int.
func TestExecuteNestedBoundedInt(t *testing.T) {
	d := NewDispatcher[testSource]()
	d.Register(Literal[testSource]("kick").
		Then(Argument[testSource, int]("id", IntegerInRange[testSource](0, 100)).
			Executes(func(cc *CommandContext[testSource]) (int, error) {
				return GetArgument[int](cc, "id"), nil
			})))

	result, err := d.Execute("kick 5", testSource{})
	require.NoError(t, err)
	assert.Equal(t, 5, result)

	_, err = d.Execute("kick 200", testSource{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntegerTooHigh)

	_, err = d.Execute("kick abc", testSource{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReaderExpectedInt)
}

// S3 — greedy string, raw (unescaped) slice.
func TestExecuteGreedyString(t *testing.T) {
	d := NewDispatcher[testSource]()
	d.Register(Literal[testSource]("say").
		Then(Argument[testSource, string]("msg", Greedy[testSource]()).
			Executes(func(cc *CommandContext[testSource]) (int, error) {
				return len(GetArgument[string](cc, "msg")), nil
			})))

	result, err := d.Execute("say hello world", testSource{})
	require.NoError(t, err)
	assert.Equal(t, len("hello world"), result)

	result, err = d.Execute(`say "a\"b"`, testSource{})
	require.NoError(t, err)
	assert.Equal(t, len(`"a\"b"`), result)
}

// S4 — quoted phrase with escape handling.
func TestQuotablePhraseEscapes(t *testing.T) {
	phrase := Phrase[testSource]()

	r := NewStringReader(`"a\\b"`)
	value, err := phrase.Parse(r)
	require.NoError(t, err)
	assert.Equal(t, `a\b`, value)

	r2 := NewStringReader(`"a\b"`)
	_, err = phrase.Parse(r2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReaderInvalidEscape)
}

// S5 — redirection to another subtree.
func TestRedirect(t *testing.T) {
	d := NewDispatcher[testSource]()
	d.Register(Literal[testSource]("foo").Executes(func(cc *CommandContext[testSource]) (int, error) {
		return 42, nil
	}))
	d.Register(Literal[testSource]("alias").Redirect(d.Root()))

	result, err := d.Execute("alias foo", testSource{})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

// S6 — fork with modifier, multiple successful executions.
func TestForkRunsEachSource(t *testing.T) {
	d := NewDispatcher[testSource]()
	d.Register(Literal[testSource]("echo").Executes(func(cc *CommandContext[testSource]) (int, error) {
		return 1, nil
	}))
	d.Register(Literal[testSource]("each").Fork(d.Root(), func(cc *CommandContext[testSource]) ([]testSource, error) {
		return []testSource{{name: "s1"}, {name: "s2"}}, nil
	}))

	var notified []testSource
	d.SetConsumer(func(cc *CommandContext[testSource], success bool, result int) {
		if success {
			notified = append(notified, cc.Source())
		}
	})

	result, err := d.Execute("each echo", testSource{})
	require.NoError(t, err)
	assert.Equal(t, 2, result)
	assert.Len(t, notified, 2)
}

// S7 — suggestion merge across ambiguous prefixes.
func TestSuggestionMerge(t *testing.T) {
	d := NewDispatcher[testSource]()
	d.Register(Literal[testSource]("foo").Executes(noop))
	d.Register(Literal[testSource]("foobar").Executes(noop))
	d.Register(Literal[testSource]("bar").Executes(noop))

	parse := d.Parse("f", testSource{})
	suggestions := d.GetCompletionSuggestions(context.Background(), parse)

	var texts []string
	for _, s := range suggestions.List {
		texts = append(texts, s.Text)
	}
	if diff := cmp.Diff([]string{"foo", "foobar"}, texts); diff != "" {
		t.Errorf("unexpected suggestions (-want +got):\n%s", diff)
	}
	assert.Equal(t, StringRange{Start: 0, End: 1}, suggestions.Range)
}

// S2 variant — suggestions after a fully-typed literal plus trailing
// separator continue from that literal's own children, skipping the space.
func TestSuggestionsAfterLiteralSkipSeparator(t *testing.T) {
	d := NewDispatcher[testSource]()
	d.Register(Literal[testSource]("kick").
		Then(Argument[testSource, int]("id", Integer[testSource]()).
			Suggests(func(ctx context.Context, cc *CommandContext[testSource], b *SuggestionsBuilder) (*Suggestions, error) {
				b.Suggest("42")
				return b.Build(), nil
			}).
			Executes(noop)))

	parse := d.Parse("kick ", testSource{})
	suggestions := d.GetCompletionSuggestions(context.Background(), parse)

	require.Len(t, suggestions.List, 1)
	assert.Equal(t, "42", suggestions.List[0].Text)
	assert.Equal(t, 5, suggestions.Range.Start)
}

// Cursor positioned inside an already-typed earlier token (not at the end
// of input) must suggest against the node preceding the one the cursor
// falls within, not the last matched node overall.
func TestSuggestionsMidInputUsesPrecedingNode(t *testing.T) {
	d := NewDispatcher[testSource]()
	d.Register(Literal[testSource]("foo").
		Then(Literal[testSource]("bar").Executes(noop)).
		Then(Literal[testSource]("baz").Executes(noop)))

	parse := d.Parse("foo bar", testSource{})
	// Cursor lands inside "bar" (index 5, between 'b' and 'a'), not at
	// end of input, so suggestions must come from "foo"'s children
	// (matching both "bar" and "baz"), not "bar"'s own (nonexistent)
	// children.
	suggestions := d.GetCompletionSuggestionsAt(context.Background(), parse, 5)

	var texts []string
	for _, s := range suggestions.List {
		texts = append(texts, s.Text)
	}
	if diff := cmp.Diff([]string{"bar", "baz"}, texts); diff != "" {
		t.Errorf("unexpected suggestions (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, suggestions.Range.Start)
}

func TestRequirementHidesNode(t *testing.T) {
	d := NewDispatcher[testSource]()
	d.Register(Literal[testSource]("admin").
		Requires(func(s testSource) bool { return s.admin }).
		Executes(noop))

	_, err := d.Execute("admin", testSource{admin: false})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCommand)

	result, err := d.Execute("admin", testSource{admin: true})
	require.NoError(t, err)
	assert.Equal(t, 0, result)
}

func TestAddChildMergesSameName(t *testing.T) {
	d := NewDispatcher[testSource]()
	d.Register(Literal[testSource]("group").Then(Literal[testSource]("a").Executes(noop)))
	group := d.Register(Literal[testSource]("group").Then(Literal[testSource]("b").Executes(noop)))

	assert.Len(t, group.Children(), 2)
}

func TestFindNodeRoundTripsWithGetPath(t *testing.T) {
	d := NewDispatcher[testSource]()
	child := Argument[testSource, int]("id", Integer[testSource]()).Executes(noop)
	kickNode := d.Register(Literal[testSource]("kick").Then(child))
	idNode := kickNode.Child("id")
	require.NotNil(t, idNode)

	path := d.GetPath(idNode)
	found := d.FindNode(path)
	assert.Equal(t, idNode, found)
}

func noop(cc *CommandContext[testSource]) (int, error) { return 0, nil }
