package scriptor

import (
	"fmt"
	"strings"

	"github.com/amterp/color"
	"gopkg.in/yaml.v3"
)

// DumpFormat selects how Dispatcher.DumpTree renders a tree.
type DumpFormat int

const (
	DumpText DumpFormat = iota
	DumpYAML
)

// dumpNode is the YAML-serializable shape of one tree node, independent of
// the live Node[S] interface so the dump survives even if S has no
// meaningful string form.
type dumpNode struct {
	Name       string      `yaml:"name"`
	Kind       string      `yaml:"kind"`
	Executable bool        `yaml:"executable,omitempty"`
	Redirect   string      `yaml:"redirect,omitempty"`
	Children   []*dumpNode `yaml:"children,omitempty"`
}

func kindName[S any](n Node[S]) string {
	switch n.Kind() {
	case RootKind:
		return "root"
	case LiteralKind:
		return "literal"
	default:
		return "argument"
	}
}

func buildDumpNode[S any](d *Dispatcher[S], n Node[S]) *dumpNode {
	dn := &dumpNode{Name: n.Name(), Kind: kindName[S](n), Executable: n.Command() != nil}
	if n.Redirect() != nil {
		if n.Redirect() == d.root {
			dn.Redirect = "..."
		} else {
			dn.Redirect = strings.Join(d.GetPath(n.Redirect()), " ")
		}
	}
	for _, child := range n.Children() {
		dn.Children = append(dn.Children, buildDumpNode(d, child))
	}
	return dn
}

// DumpTree renders the subtree rooted at node (the dispatcher's root if
// nil) in the requested format.
func (d *Dispatcher[S]) DumpTree(node Node[S], format DumpFormat) (string, error) {
	if node == nil {
		node = d.root
	}
	switch format {
	case DumpYAML:
		tree := buildDumpNode(d, node)
		out, err := yaml.Marshal(tree)
		if err != nil {
			return "", fmt.Errorf("marshal command tree: %w", err)
		}
		return string(out), nil
	default:
		var b strings.Builder
		dumpText(d, node, &b, "")
		return b.String(), nil
	}
}

func dumpText[S any](d *Dispatcher[S], n Node[S], b *strings.Builder, indent string) {
	label := coloredUsage[S](n)
	if n.Command() != nil {
		label += " " + color.New(color.FgYellow).Sprint("*")
	}
	if n.Redirect() != nil {
		target := "..."
		if n.Redirect() != d.root {
			target = strings.Join(d.GetPath(n.Redirect()), " ")
		}
		label += " " + color.New(color.FgMagenta).Sprint("-> "+target)
	}
	b.WriteString(indent)
	b.WriteString(label)
	b.WriteByte('\n')
	for _, child := range n.Children() {
		dumpText(d, child, b, indent+"  ")
	}
}
