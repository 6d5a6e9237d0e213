package layout

// growSizing distributes leftover space top-down. The node's own size is
// final when this runs (fit pass, root forcing, or the parent's grow
// pass); children claim the remainder.
func (t *Tree) growSizing(id NodeID) {
	n := &t.nodes[id]
	if len(n.children) == 0 {
		return
	}
	main := n.style.Direction.Main()
	cross := main.Flip()

	inner := n.size[main] - 2*n.style.Padding - (len(n.children)-1)*n.style.Gap
	t.distribute(id, main, inner)

	// Cross-axis growth is uncontested: children overlay the cross axis
	// rather than competing for it.
	stretch := n.size[cross] - 2*n.style.Padding
	for _, c := range n.children {
		child := &t.nodes[c]
		if child.style.Sizing.Along(cross).IsGrow() {
			child.size[cross] = child.style.Clamp(cross, stretch)
		}
	}

	for _, c := range n.children {
		t.growSizing(c)
	}
}

// distribute hands out main-axis space to Grow children by water-filling:
// the currently-smallest growable siblings are raised together, either up
// to the next-larger sibling tier or until the budget runs out, whichever
// comes first. A child that reaches its max leaves the pool permanently.
//
// If the min-sum already overflows the budget nothing is shrunk, and if
// every growable child is max-clamped any leftover stays unconsumed.
func (t *Tree) distribute(id NodeID, main Axis, budget int) {
	children := t.nodes[id].children

	used := 0
	for _, c := range children {
		used += t.nodes[c].size[main]
	}
	remaining := budget - used
	if remaining <= 0 {
		return
	}

	growable := make([]NodeID, 0, len(children))
	for _, c := range children {
		if t.nodes[c].style.Sizing.Along(main).IsGrow() {
			growable = append(growable, c)
		}
	}

	// Each iteration consumes budget, merges a tier, or removes a
	// max-clamped child, so the loop is bounded; the counter is a
	// backstop against a degenerate case slipping through.
	for guard := 0; remaining > 0 && len(growable) > 0 && guard < 2*len(children)+2; guard++ {
		floor := t.nodes[growable[0]].size[main]
		for _, c := range growable[1:] {
			floor = min(floor, t.nodes[c].size[main])
		}

		tied := growable[:0:0]
		next := -1
		for _, c := range growable {
			size := t.nodes[c].size[main]
			if size == floor {
				tied = append(tied, c)
			} else if next < 0 || size < next {
				next = size
			}
		}

		step := remaining / len(tied)
		if next >= 0 {
			step = min(step, next-floor)
		}

		if step > 0 {
			growable = t.raise(growable, tied, main, floor+step)
		} else {
			// The budget no longer divides across the tied set; hand out
			// one unit each until it runs out so no space is stranded.
			growable = t.raise(growable, tied[:min(remaining, len(tied))], main, floor+1)
		}

		used = 0
		for _, c := range children {
			used += t.nodes[c].size[main]
		}
		remaining = budget - used
	}
}

// raise sets every member of tied to target on the main axis, clamping at
// each child's max. Max-clamped children are filtered out of the returned
// growable set; they can never grow again this pass.
func (t *Tree) raise(growable, tied []NodeID, main Axis, target int) []NodeID {
	maxed := make(map[NodeID]bool)
	for _, c := range tied {
		child := &t.nodes[c]
		size := target
		if maxV := child.style.Max(main); maxV > 0 && size >= maxV {
			size = maxV
			maxed[c] = true
		}
		child.size[main] = max(size, child.style.Min(main))
	}
	if len(maxed) == 0 {
		return growable
	}
	kept := growable[:0]
	for _, c := range growable {
		if !maxed[c] {
			kept = append(kept, c)
		}
	}
	return kept
}
