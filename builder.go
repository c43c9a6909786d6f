package scriptor

// Buildable produces the finished, immutable Node a builder describes.
type Buildable[S any] interface {
	Build() Node[S]
}

// crafterBase holds the state shared by every builder: its children so
// far, the command to run, an optional requirement predicate, and redirect
// target/modifier/fork settings. A crafter may have children or a redirect,
// never both, mirroring the command tree's own rule that a redirect node
// is a leaf.
type crafterBase[S any] struct {
	arguments   baseNode[S]
	command     Command[S]
	requirement func(S) bool
	target      Node[S]
	modifier    RedirectModifier[S]
	forks       bool
}

func newCrafterBase[S any]() crafterBase[S] {
	return crafterBase[S]{arguments: newBaseNode[S]()}
}

// then adds a child built from another builder. Panics if a redirect has
// already been set, since a node cannot both redirect and have children.
func (c *crafterBase[S]) then(child Buildable[S]) {
	if c.target != nil {
		panic("cannot add children to a redirected node")
	}
	c.arguments.AddChild(child.Build())
}

func (c *crafterBase[S]) thenNode(child Node[S]) {
	if c.target != nil {
		panic("cannot add children to a redirected node")
	}
	c.arguments.AddChild(child)
}

// children returns the children in insertion order, so the built node's
// parse-time traversal order matches the order Then was called in.
func (c *crafterBase[S]) children() []Node[S] {
	out := make([]Node[S], 0, len(c.arguments.order))
	for _, name := range c.arguments.order {
		out = append(out, c.arguments.children[name])
	}
	return out
}

func (c *crafterBase[S]) setCommand(cmd Command[S]) { c.command = cmd }

func (c *crafterBase[S]) setRequirement(fn func(S) bool) { c.requirement = fn }

// redirect makes this node, once built, forward execution to target without
// consuming any additional input of its own.
func (c *crafterBase[S]) redirect(target Node[S]) {
	c.forward(target, nil, false)
}

func (c *crafterBase[S]) redirectSingle(target Node[S], modifier SingleRedirectModifier[S]) {
	var wrapped RedirectModifier[S]
	if modifier != nil {
		wrapped = func(cc *CommandContext[S]) ([]S, error) {
			source, err := modifier(cc)
			if err != nil {
				return nil, err
			}
			return []S{source}, nil
		}
	}
	c.forward(target, wrapped, false)
}

func (c *crafterBase[S]) fork(target Node[S], modifier RedirectModifier[S]) {
	c.forward(target, modifier, true)
}

// forward panics if this builder already has children, since a redirect
// target fully replaces continued traversal into this node's own subtree.
func (c *crafterBase[S]) forward(target Node[S], modifier RedirectModifier[S], fork bool) {
	if len(c.arguments.Children()) > 0 {
		panic("cannot forward a node with children")
	}
	c.target = target
	c.modifier = modifier
	c.forks = fork
}

func (c *crafterBase[S]) applyTo(n Node[S]) {
	for _, child := range c.children() {
		n.AddChild(child)
	}
	n.SetCommand(c.command)
	n.SetRequirement(c.requirement)
	if c.target != nil {
		n.setRedirect(c.target, c.modifier, c.forks)
	}
}

// LiteralArgumentBuilder builds a literalNode.
type LiteralArgumentBuilder[S any] struct {
	crafterBase[S]
	literal string
}

func Literal[S any](literal string) *LiteralArgumentBuilder[S] {
	return &LiteralArgumentBuilder[S]{crafterBase: newCrafterBase[S](), literal: literal}
}

func (b *LiteralArgumentBuilder[S]) Then(child Buildable[S]) *LiteralArgumentBuilder[S] {
	b.then(child)
	return b
}

func (b *LiteralArgumentBuilder[S]) Executes(cmd Command[S]) *LiteralArgumentBuilder[S] {
	b.setCommand(cmd)
	return b
}

func (b *LiteralArgumentBuilder[S]) Requires(fn func(S) bool) *LiteralArgumentBuilder[S] {
	b.setRequirement(fn)
	return b
}

func (b *LiteralArgumentBuilder[S]) Redirect(target Node[S]) *LiteralArgumentBuilder[S] {
	b.redirect(target)
	return b
}

func (b *LiteralArgumentBuilder[S]) RedirectWithModifier(target Node[S], modifier SingleRedirectModifier[S]) *LiteralArgumentBuilder[S] {
	b.redirectSingle(target, modifier)
	return b
}

func (b *LiteralArgumentBuilder[S]) Fork(target Node[S], modifier RedirectModifier[S]) *LiteralArgumentBuilder[S] {
	b.fork(target, modifier)
	return b
}

func (b *LiteralArgumentBuilder[S]) Build() Node[S] {
	n := NewLiteralNode[S](b.literal)
	b.applyTo(n)
	return n
}

// RequiredArgumentBuilder builds an argumentNode[S,T].
type RequiredArgumentBuilder[S any, T any] struct {
	crafterBase[S]
	name        string
	argType     ArgumentType[S, T]
	suggestions SuggestionProvider[S]
}

func Argument[S any, T any](name string, argType ArgumentType[S, T]) *RequiredArgumentBuilder[S, T] {
	return &RequiredArgumentBuilder[S, T]{crafterBase: newCrafterBase[S](), name: name, argType: argType}
}

func (b *RequiredArgumentBuilder[S, T]) Then(child Buildable[S]) *RequiredArgumentBuilder[S, T] {
	b.then(child)
	return b
}

func (b *RequiredArgumentBuilder[S, T]) Executes(cmd Command[S]) *RequiredArgumentBuilder[S, T] {
	b.setCommand(cmd)
	return b
}

func (b *RequiredArgumentBuilder[S, T]) Requires(fn func(S) bool) *RequiredArgumentBuilder[S, T] {
	b.setRequirement(fn)
	return b
}

func (b *RequiredArgumentBuilder[S, T]) Redirect(target Node[S]) *RequiredArgumentBuilder[S, T] {
	b.redirect(target)
	return b
}

func (b *RequiredArgumentBuilder[S, T]) Fork(target Node[S], modifier RedirectModifier[S]) *RequiredArgumentBuilder[S, T] {
	b.fork(target, modifier)
	return b
}

func (b *RequiredArgumentBuilder[S, T]) Suggests(provider SuggestionProvider[S]) *RequiredArgumentBuilder[S, T] {
	b.suggestions = provider
	return b
}

func (b *RequiredArgumentBuilder[S, T]) Build() Node[S] {
	n := NewArgumentNode[S, T](b.name, b.argType)
	n.suggestions = b.suggestions
	b.applyTo(n)
	return n
}
