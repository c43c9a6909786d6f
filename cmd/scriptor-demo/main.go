// Command scriptor-demo is a small REPL that exercises the command-tree
// dispatcher end to end: literals, bounded and greedy arguments, a redirect,
// a fork, tab completion, and a usage/tree dump.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/amterp/color"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	scriptor "github.com/Night-Fall-Studio/Scriptor"
)

// Source is the opaque principal every command sees. Admin gates the
// "admin" subtree's requirement predicate.
type Source struct {
	Name  string
	Admin bool
}

func main() {
	cfg, err := loadConfig("demo.toml")
	if err != nil {
		scriptor.Fail(err)
	}

	dispatcher := scriptor.NewDispatcher[Source]()
	buildTree(dispatcher)

	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		dispatcher.SetTerminalWidth(width)
	}

	titleCaser := cases.Title(language.English)
	banner := color.New(color.FgGreen, color.Bold).Sprint(titleCaser.String("scriptor demo"))
	fmt.Println(banner)

	source := Source{Name: "console", Admin: cfg.Admin}

	if len(os.Args) > 1 && os.Args[1] == "__complete" {
		line := strings.Join(os.Args[2:], " ")
		if err := dispatcher.RenderCompletions(context.Background(), os.Stdout, line, source); err != nil {
			scriptor.Fail(err)
		}
		return
	}
	if len(os.Args) > 1 && os.Args[1] == "__completion-script" && len(os.Args) > 2 {
		switch os.Args[2] {
		case "bash":
			_ = scriptor.GenBashCompletion(os.Stdout, "scriptor-demo")
		case "zsh":
			_ = scriptor.GenZshCompletion(os.Stdout, "scriptor-demo")
		default:
			scriptor.Fail(fmt.Errorf("unknown shell: %s", os.Args[2]))
		}
		return
	}

	runREPL(dispatcher, source, cfg.Prompt)
}

func runREPL(dispatcher *scriptor.Dispatcher[Source], source Source, prompt string) {
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print(prompt)
		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}
		result, err := dispatcher.Execute(line, source)
		if err != nil {
			printError(err)
			continue
		}
		fmt.Println(color.New(color.FgBlue).Sprintf("=> %d", result))
	}
}

func printError(err error) {
	if se, ok := err.(*scriptor.SyntaxError); ok && se.HasContext() {
		fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint(se.Error()))
		return
	}
	fmt.Fprintln(os.Stderr, color.New(color.FgRed).Sprint(err.Error()))
}
