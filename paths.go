package scriptor

import "strings"

// FindNode walks the tree from the root along a sequence of node names,
// returning nil if any segment doesn't exist.
func (d *Dispatcher[S]) FindNode(path []string) Node[S] {
	node := d.root
	for _, name := range path {
		node = node.Child(name)
		if node == nil {
			return nil
		}
	}
	return node
}

// GetPath returns the sequence of names leading from the root to
// target, or nil if target isn't reachable.
func (d *Dispatcher[S]) GetPath(target Node[S]) []string {
	var path []string
	var find func(parent Node[S], trail []string) bool
	find = func(parent Node[S], trail []string) bool {
		for _, child := range parent.Children() {
			next := append(append([]string{}, trail...), child.Name())
			if child == target {
				path = next
				return true
			}
			if find(child, next) {
				return true
			}
		}
		return false
	}
	if target == d.root {
		return []string{}
	}
	find(d.root, nil)
	return path
}

// GetAllPaths lists the space-separated path to every node in the tree that can
// terminate a command (has a Command set).
func (d *Dispatcher[S]) GetAllPaths() []string {
	var out []string
	d.addPaths(d.root, nil, &out)
	return out
}

func (d *Dispatcher[S]) addPaths(node Node[S], trail []string, out *[]string) {
	if node.Command() != nil {
		*out = append(*out, strings.Join(trail, " "))
	}
	for _, child := range node.Children() {
		d.addPaths(child, append(append([]string{}, trail...), child.Name()), out)
	}
}
