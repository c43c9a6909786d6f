package scriptor

import (
	"strings"

	"github.com/amterp/color"
)

const (
	usageOptionalOpen  = "["
	usageOptionalClose = "]"
	usageRequiredOpen  = "("
	usageRequiredClose = ")"
	usageOr            = "|"
)

var (
	literalColor  = color.New(color.FgGreen).SprintFunc()
	argumentColor = color.New(color.FgCyan, color.Italic).SprintFunc()
)

func coloredUsage[S any](n Node[S]) string {
	if n.Kind() == ArgumentKind {
		return argumentColor(n.UsageText())
	}
	return literalColor(n.UsageText())
}

// GetAllUsage lists one usage line per reachable command path under node,
// honoring restricted to skip branches the source can't use.
func (d *Dispatcher[S]) GetAllUsage(node Node[S], source S, restricted bool) []string {
	var result []string
	d.collectAllUsage(node, source, &result, "", restricted)
	return result
}

func (d *Dispatcher[S]) collectAllUsage(node Node[S], source S, result *[]string, prefix string, restricted bool) {
	if restricted && !node.CanUse(source) {
		return
	}
	if node.Command() != nil {
		*result = append(*result, prefix)
	}
	if node.Redirect() != nil {
		redirect := "-> " + node.Redirect().UsageText()
		if node.Redirect() == d.root {
			redirect = "..."
		}
		if prefix == "" {
			*result = append(*result, node.UsageText()+" "+redirect)
		} else {
			*result = append(*result, prefix+" "+redirect)
		}
		return
	}
	for _, child := range node.Children() {
		next := child.UsageText()
		if prefix != "" {
			next = prefix + " " + next
		}
		d.collectAllUsage(child, source, result, next, restricted)
	}
}

// GetSmartUsage renders, per direct child of node, the single-line usage
// syntax Brigadier popularized: <required>, [optional], (a|b) alternatives,
// and "-> target" for redirects.
func (d *Dispatcher[S]) GetSmartUsage(node Node[S], source S) map[Node[S]]string {
	result := make(map[Node[S]]string)
	optional := node.Command() != nil
	for _, child := range node.Children() {
		if usage := d.smartUsage(child, source, optional, false); usage != "" {
			result[child] = usage
		}
	}
	return result
}

func (d *Dispatcher[S]) smartUsage(node Node[S], source S, optional, deep bool) string {
	if !node.CanUse(source) {
		return ""
	}

	self := node.UsageText()
	if optional {
		self = usageOptionalOpen + self + usageOptionalClose
	}
	childOptional := node.Command() != nil
	open, close := usageRequiredOpen, usageRequiredClose
	if childOptional {
		open, close = usageOptionalOpen, usageOptionalClose
	}

	if !deep {
		if node.Redirect() != nil {
			redirect := "-> " + node.Redirect().UsageText()
			if node.Redirect() == d.root {
				redirect = "..."
			}
			return self + " " + redirect
		}

		var children []Node[S]
		for _, c := range node.Children() {
			if c.CanUse(source) {
				children = append(children, c)
			}
		}

		if len(children) == 1 {
			if usage := d.smartUsage(children[0], source, childOptional, childOptional); usage != "" {
				return self + " " + usage
			}
		} else if len(children) > 1 {
			seen := make(map[string]bool)
			var childUsages []string
			for _, c := range children {
				if usage := d.smartUsage(c, source, childOptional, true); usage != "" && !seen[usage] {
					seen[usage] = true
					childUsages = append(childUsages, usage)
				}
			}
			if len(childUsages) == 1 {
				usage := childUsages[0]
				if childOptional {
					usage = usageOptionalOpen + usage + usageOptionalClose
				}
				return self + " " + usage
			} else if len(childUsages) > 1 {
				var b strings.Builder
				b.WriteString(open)
				for i, c := range children {
					if i > 0 {
						b.WriteString(usageOr)
					}
					b.WriteString(c.UsageText())
				}
				b.WriteString(close)
				return self + " " + b.String()
			}
		}
	}

	return self
}

// wrapToWidth breaks a usage line into multiple lines, each no wider than
// the dispatcher's configured terminal width, splitting on spaces only.
func wrapToWidth(line string, width int) []string {
	if width <= 0 || len(line) <= width {
		return []string{line}
	}
	words := strings.Fields(line)
	var lines []string
	var current strings.Builder
	for _, w := range words {
		if current.Len() > 0 && current.Len()+1+len(w) > width {
			lines = append(lines, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte(' ')
		}
		current.WriteString(w)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}
	return lines
}
