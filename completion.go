package scriptor

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// CompletionDirective mirrors the bitmask a completion script inspects to
// decide whether to fall back to file completion or suppress the trailing
// space after a candidate.
type CompletionDirective int

const (
	CompletionDirectiveDefault   CompletionDirective = 0
	CompletionDirectiveError     CompletionDirective = 1
	CompletionDirectiveNoSpace   CompletionDirective = 2
	CompletionDirectiveNoFileComp CompletionDirective = 4
)

// RenderCompletions runs the dispatcher's suggestion engine against line
// and writes the candidate-per-line-plus-directive protocol the bash/zsh
// completion scripts below expect from a hidden "__complete" subcommand.
func (d *Dispatcher[S]) RenderCompletions(ctx context.Context, w io.Writer, line string, source S) error {
	parse := d.Parse(line, source)
	suggestions := d.GetCompletionSuggestions(ctx, parse)

	directive := CompletionDirectiveNoFileComp
	if suggestions.IsEmpty() {
		directive = CompletionDirectiveDefault
	}

	var b strings.Builder
	for _, s := range suggestions.List {
		b.WriteString(s.Text)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, ":%d\n", int(directive))
	_, err := w.Write([]byte(b.String()))
	return err
}

// GenBashCompletion writes a bash completion script that shells out to
// prog's hidden "__complete" subcommand for every candidate.
func GenBashCompletion(w io.Writer, prog string) error {
	_, err := fmt.Fprintf(w, bashCompletionTemplate, prog, prog, prog, prog, prog)
	return err
}

// GenZshCompletion writes the zsh equivalent of GenBashCompletion.
func GenZshCompletion(w io.Writer, prog string) error {
	_, err := fmt.Fprintf(w, zshCompletionTemplate, prog, prog, prog, prog, prog)
	return err
}
