package scriptor

// ParsedArgument is one argument's parsed value together with the range of
// input text it was parsed from.
type ParsedArgument struct {
	Range  StringRange
	Result any
}

// ParsedNode records which node matched a span of the input, for path and
// redirect bookkeeping.
type ParsedNode[S any] struct {
	Node  Node[S]
	Range StringRange
}

// CommandContext is the immutable snapshot handed to a Command, built up
// node by node as a parse descends the tree. Redirects are represented as
// a singly-linked chain of child contexts rather than by flattening eagerly,
// so a redirect's source substitution only has to touch the redirected link.
type CommandContext[S any] struct {
	source    S
	input     string
	arguments map[string]ParsedArgument
	command   Command[S]
	rootNode  Node[S]
	nodes     []ParsedNode[S]
	rng       StringRange
	child     *CommandContext[S]
	modifier  RedirectModifier[S]
	forks     bool
}

func (c *CommandContext[S]) Source() S                            { return c.source }
func (c *CommandContext[S]) Input() string                        { return c.input }
func (c *CommandContext[S]) Command() Command[S]                  { return c.command }
func (c *CommandContext[S]) RootNode() Node[S]                    { return c.rootNode }
func (c *CommandContext[S]) Nodes() []ParsedNode[S]                { return c.nodes }
func (c *CommandContext[S]) Range() StringRange                   { return c.rng }
func (c *CommandContext[S]) Child() *CommandContext[S]             { return c.child }
func (c *CommandContext[S]) RedirectModifier() RedirectModifier[S] { return c.modifier }
func (c *CommandContext[S]) IsForked() bool                        { return c.forks }

// copyFor returns a context identical to c but attributed to source,
// sharing the same child/command/nodes — used when a fork's redirect
// modifier produces more than one source to re-run the redirected subtree
// against.
func (c *CommandContext[S]) copyFor(source S) *CommandContext[S] {
	cp := *c
	cp.source = source
	return &cp
}

func (c *CommandContext[S]) HasNodes() bool { return len(c.nodes) > 0 }

// LastChild walks the redirect chain to its end.
func (c *CommandContext[S]) LastChild() *CommandContext[S] {
	result := c
	for result.child != nil {
		result = result.child
	}
	return result
}

func (c *CommandContext[S]) HasArgument(name string) bool {
	_, ok := c.arguments[name]
	return ok
}

// GetArgument retrieves a previously parsed argument by name, type-asserted
// to T. It panics if the argument is missing or of the wrong type: a command
// must only ask for arguments its own node declared.
func GetArgument[T any, S any](cc *CommandContext[S], name string) T {
	arg, ok := cc.arguments[name]
	if !ok {
		panic("no such argument: " + name)
	}
	value, ok := arg.Result.(T)
	if !ok {
		panic("argument '" + name + "' is not of the requested type")
	}
	return value
}

// CommandContextBuilder accumulates state while descending the tree; it is
// copied per candidate branch so that trying one sibling never corrupts
// another's in-progress context.
type CommandContextBuilder[S any] struct {
	source    S
	input     string
	arguments map[string]ParsedArgument
	command   Command[S]
	rootNode  Node[S]
	nodes     []ParsedNode[S]
	rng       StringRange
	child     *CommandContextBuilder[S]
	modifier  RedirectModifier[S]
	forks     bool
}

func NewCommandContextBuilder[S any](rootNode Node[S], source S, start int) *CommandContextBuilder[S] {
	return &CommandContextBuilder[S]{
		source:    source,
		rootNode:  rootNode,
		arguments: make(map[string]ParsedArgument),
		rng:       NewStringRangeAt(start),
	}
}

func (b *CommandContextBuilder[S]) Source() S         { return b.source }
func (b *CommandContextBuilder[S]) RootNode() Node[S] { return b.rootNode }
func (b *CommandContextBuilder[S]) Range() StringRange { return b.rng }
func (b *CommandContextBuilder[S]) Nodes() []ParsedNode[S] { return b.nodes }

func (b *CommandContextBuilder[S]) WithArgument(name string, arg ParsedArgument) *CommandContextBuilder[S] {
	b.arguments[name] = arg
	return b
}

func (b *CommandContextBuilder[S]) WithCommand(cmd Command[S]) *CommandContextBuilder[S] {
	b.command = cmd
	return b
}

func (b *CommandContextBuilder[S]) WithNode(node Node[S], rng StringRange) *CommandContextBuilder[S] {
	b.nodes = append(b.nodes, ParsedNode[S]{Node: node, Range: rng})
	b.rng = EncompassingRange(b.rng, rng)
	return b
}

func (b *CommandContextBuilder[S]) WithChild(child *CommandContextBuilder[S]) *CommandContextBuilder[S] {
	b.child = child
	return b
}

func (b *CommandContextBuilder[S]) WithSource(source S) *CommandContextBuilder[S] {
	b.source = source
	return b
}

func (b *CommandContextBuilder[S]) WithRedirectModifier(modifier RedirectModifier[S]) *CommandContextBuilder[S] {
	b.modifier = modifier
	return b
}

func (b *CommandContextBuilder[S]) WithForks(forks bool) *CommandContextBuilder[S] {
	b.forks = forks
	return b
}

// copy produces an independent builder sharing no mutable state, used when
// more than one sibling needs to try continuing from the same point.
func (b *CommandContextBuilder[S]) copy() *CommandContextBuilder[S] {
	cp := &CommandContextBuilder[S]{
		source:    b.source,
		input:     b.input,
		arguments: make(map[string]ParsedArgument, len(b.arguments)),
		command:   b.command,
		rootNode:  b.rootNode,
		nodes:     append([]ParsedNode[S]{}, b.nodes...),
		rng:       b.rng,
		child:     b.child,
		modifier:  b.modifier,
		forks:     b.forks,
	}
	for k, v := range b.arguments {
		cp.arguments[k] = v
	}
	return cp
}

// Build materializes the accumulated state, including the whole redirect
// chain, into the immutable CommandContext handed to commands.
func (b *CommandContextBuilder[S]) Build(input string) *CommandContext[S] {
	var child *CommandContext[S]
	if b.child != nil {
		child = b.child.Build(input)
	}
	return &CommandContext[S]{
		source:    b.source,
		input:     input,
		arguments: b.arguments,
		command:   b.command,
		rootNode:  b.rootNode,
		nodes:     b.nodes,
		rng:       b.rng,
		child:     child,
		modifier:  b.modifier,
		forks:     b.forks,
	}
}
