package scriptor

// FindAmbiguities walks the whole tree reporting, through consumer, every
// pair of sibling nodes where one's example inputs are also valid input
// for the other — i.e. nodes whose match sets overlap, which makes the
// dispatcher's choice between them order-dependent rather than input-driven.
func (d *Dispatcher[S]) FindAmbiguities(consumer AmbiguityConsumer[S]) {
	findAmbiguitiesIn(d.root, consumer)
}

func findAmbiguitiesIn[S any](node Node[S], consumer AmbiguityConsumer[S]) {
	children := node.Children()
	for _, child := range children {
		for _, sibling := range children {
			if child == sibling {
				continue
			}
			var matches []string
			for _, example := range child.examples() {
				if sibling.isValidInput(example) {
					matches = append(matches, example)
				}
			}
			if len(matches) > 0 {
				consumer(node, child, sibling, matches)
			}
		}
		findAmbiguitiesIn(child, consumer)
	}
}
