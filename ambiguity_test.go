package scriptor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindAmbiguitiesReportsOverlappingLiteralAndArgument(t *testing.T) {
	d := NewDispatcher[testSource]()
	group := d.Register(Literal[testSource]("group"))
	group.AddChild(Literal[testSource]("123").Executes(noop).Build())
	group.AddChild(Argument[testSource, int]("n", Integer[testSource]()).Executes(noop).Build())

	type pair struct {
		a, b string
	}
	var found []pair
	d.FindAmbiguities(func(parent, child, sibling Node[testSource], matches []string) {
		found = append(found, pair{child.Name(), sibling.Name()})
	})

	assert.Contains(t, found, pair{"123", "n"})
	assert.Contains(t, found, pair{"n", "123"})
}

func TestFindAmbiguitiesIgnoresDisjointSiblings(t *testing.T) {
	d := NewDispatcher[testSource]()
	group := d.Register(Literal[testSource]("group"))
	group.AddChild(Literal[testSource]("foo").Executes(noop).Build())
	group.AddChild(Literal[testSource]("bar").Executes(noop).Build())

	var calls int
	d.FindAmbiguities(func(parent, child, sibling Node[testSource], matches []string) {
		calls++
	})

	assert.Zero(t, calls)
}
