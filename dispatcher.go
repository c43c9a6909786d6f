package scriptor

const argumentSeparator = ' '

// Dispatcher owns a command tree and drives every operation on it:
// registration, parsing, execution, suggestion, usage and ambiguity
// reporting.
type Dispatcher[S any] struct {
	root           Node[S]
	consumer       ResultConsumer[S]
	terminalWidth  int
}

func NewDispatcher[S any]() *Dispatcher[S] {
	return &Dispatcher[S]{root: NewRootNode[S](), terminalWidth: 80}
}

func (d *Dispatcher[S]) Root() Node[S] { return d.root }

// Register attaches a top-level literal command to the root and returns the
// node the tree now holds under that name (an earlier registration of the
// same literal, with the new subtree merged into it, if there was one).
func (d *Dispatcher[S]) Register(command *LiteralArgumentBuilder[S]) Node[S] {
	built := command.Build()
	d.root.AddChild(built)
	return d.root.Child(built.Name())
}

// SetConsumer installs the callback notified after every command runs,
// including ones reached only through a fork.
func (d *Dispatcher[S]) SetConsumer(consumer ResultConsumer[S]) {
	d.consumer = consumer
}

// SetTerminalWidth stores the terminal column width (80 by default).
// GetAllUsage and GetSmartUsage do not wrap their output to it.
func (d *Dispatcher[S]) SetTerminalWidth(width int) {
	if width > 0 {
		d.terminalWidth = width
	}
}

// Parse descends the tree as far as the input allows, returning the best
// match found even when the input wasn't fully consumed.
func (d *Dispatcher[S]) Parse(input string, source S) *ParseResults[S] {
	return d.ParseReader(NewStringReader(input), source)
}

func (d *Dispatcher[S]) ParseReader(reader *StringReader, source S) *ParseResults[S] {
	contextSoFar := NewCommandContextBuilder[S](d.root, source, reader.Cursor())
	return d.parseNodes(d.root, reader, contextSoFar)
}

func (d *Dispatcher[S]) parseNodes(node Node[S], originalReader *StringReader, contextSoFar *CommandContextBuilder[S]) *ParseResults[S] {
	source := contextSoFar.Source()
	var errs map[Node[S]]error
	var potentials []*ParseResults[S]
	cursor := originalReader.Cursor()

	for _, child := range RelevantNodes(node, originalReader) {
		if !child.CanUse(source) {
			continue
		}
		ctx := contextSoFar.copy()
		reader := NewStringReaderFrom(originalReader)

		err := d.parseOneChild(child, reader, ctx)
		if err != nil {
			if errs == nil {
				errs = make(map[Node[S]]error)
			}
			errs[child] = err
			reader.SetCursor(cursor)
			continue
		}

		ctx.WithCommand(child.Command())
		needed := 1
		if child.Redirect() == nil {
			needed = 2
		}
		if reader.CanRead(needed) {
			reader.Skip()
			if child.Redirect() != nil {
				ctx.WithRedirectModifier(child.RedirectModifier()).WithForks(child.IsFork())
				childCtx := NewCommandContextBuilder[S](child.Redirect(), source, reader.Cursor())
				parse := d.parseNodes(child.Redirect(), reader, childCtx)
				ctx.WithChild(parse.Context)
				return NewParseResults(ctx, parse.Reader, parse.Errors)
			}
			parse := d.parseNodes(child, reader, ctx)
			potentials = append(potentials, parse)
		} else {
			potentials = append(potentials, NewParseResults(ctx, reader, nil))
		}
	}

	if potentials != nil {
		if len(potentials) > 1 {
			sortPotentials(potentials)
		}
		return potentials[0]
	}

	return NewParseResults(contextSoFar, originalReader, errs)
}

func sortPotentials[S any](potentials []*ParseResults[S]) {
	less := func(i, j int) bool {
		a, b := potentials[i], potentials[j]
		aCanRead, bCanRead := a.Reader.CanReadOne(), b.Reader.CanReadOne()
		if !aCanRead && bCanRead {
			return true
		}
		if aCanRead && !bCanRead {
			return false
		}
		aEmpty, bEmpty := len(a.Errors) == 0, len(b.Errors) == 0
		if aEmpty && !bEmpty {
			return true
		}
		if !aEmpty && bEmpty {
			return false
		}
		return false
	}
	insertionSortStable(potentials, less)
}

// insertionSortStable avoids pulling in sort.SliceStable's reflection-based
// comparator for this tiny, already-mostly-sorted list.
func insertionSortStable[T any](s []T, less func(i, j int) bool) {
	for i := 1; i < len(s); i++ {
		j := i
		for j > 0 && less(j, j-1) {
			s[j], s[j-1] = s[j-1], s[j]
			j--
		}
	}
}

func (d *Dispatcher[S]) parseOneChild(child Node[S], reader *StringReader, ctx *CommandContextBuilder[S]) error {
	if err := child.parse(reader, ctx); err != nil {
		return err
	}
	if reader.CanReadOne() && reader.Peek() != argumentSeparator {
		return errDispatcherExpectedArgumentSeparator().withContext(reader)
	}
	return nil
}

// Execute parses and runs input in one step.
func (d *Dispatcher[S]) Execute(input string, source S) (int, error) {
	return d.ExecuteParsed(d.Parse(input, source))
}

// ExecuteParsed runs a previously parsed command line, applying any
// redirects and forks along the way.
func (d *Dispatcher[S]) ExecuteParsed(parse *ParseResults[S]) (int, error) {
	if parse.Reader.CanReadOne() {
		if len(parse.Errors) == 1 {
			for _, err := range parse.Errors {
				return 0, err
			}
		}
		if parse.Context.Range().IsEmpty() {
			return 0, errDispatcherUnknownCommand().withContext(parse.Reader)
		}
		return 0, errDispatcherUnknownArgument().withContext(parse.Reader)
	}

	result := 0
	successfulForks := 0
	forked := false
	foundCommand := false
	command := parse.Reader.String()
	original := parse.Context.Build(command)
	contexts := []*CommandContext[S]{original}
	var next []*CommandContext[S]

	for contexts != nil {
		for _, ctx := range contexts {
			child := ctx.Child()
			if child != nil {
				forked = forked || ctx.IsForked()
				if child.HasNodes() {
					foundCommand = true
					modifier := ctx.RedirectModifier()
					if modifier == nil {
						next = append(next, child.copyFor(ctx.Source()))
					} else {
						sources, err := modifier(ctx)
						if err != nil {
							d.notify(ctx, false, 0)
							if !forked {
								return 0, err
							}
						} else {
							for _, source := range sources {
								next = append(next, child.copyFor(source))
							}
						}
					}
				}
			} else if ctx.Command() != nil {
				foundCommand = true
				value, err := ctx.Command()(ctx)
				if err != nil {
					d.notify(ctx, false, 0)
					if !forked {
						return 0, err
					}
				} else {
					result += value
					d.notify(ctx, true, value)
					successfulForks++
				}
			}
		}

		if len(next) > 0 {
			contexts = next
			next = nil
		} else {
			contexts = nil
		}
	}

	if !foundCommand {
		d.notify(original, false, 0)
		return 0, errDispatcherUnknownCommand().withContext(parse.Reader)
	}

	if forked {
		return successfulForks, nil
	}
	return result, nil
}

func (d *Dispatcher[S]) notify(ctx *CommandContext[S], success bool, result int) {
	if d.consumer != nil {
		d.consumer(ctx, success, result)
	}
}
