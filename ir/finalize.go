package ir

// FinalizeBlockedCounts computes and installs each node's BlockedBy from the
// graph's already-built Operands/Post/InputIDs/OutputIDs. It must be called
// exactly once, after every node and edge has been added (Build does this
// itself); calling it twice would double-count uses.
//
// use[i] = (# times i appears as an operand) + (# times i appears in
// OutputIDs); pred[i] = (# Post edges pointing at i). Then
// BlockedBy[i] = max(use[i], 1) - 1 + pred[i], collapsing to nil ("done")
// when that's zero and i is both a declared input and a declared output
// (a pass-through value).
func FinalizeBlockedCounts(g *Graph) {
	use := make([]uint32, len(g.Nodes))
	pred := make([]uint32, len(g.Nodes))

	for _, n := range g.Nodes {
		for _, operand := range n.Operands {
			use[operand]++
		}
		for _, p := range n.Post {
			pred[p]++
		}
	}
	for _, id := range g.OutputIDs {
		use[id]++
	}

	isInput := make([]bool, len(g.Nodes))
	for _, id := range g.InputIDs {
		isInput[id] = true
	}
	isOutput := make([]bool, len(g.Nodes))
	for _, id := range g.OutputIDs {
		isOutput[id] = true
	}

	for i := range g.Nodes {
		u := use[i]
		if u < 1 {
			u = 1
		}
		count := u - 1 + pred[i]
		if count == 0 && isInput[i] && isOutput[i] {
			g.Nodes[i].BlockedBy = nil
			continue
		}
		g.Nodes[i].BlockedBy = BlockedByPtr(count)
	}
}
