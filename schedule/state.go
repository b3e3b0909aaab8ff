package schedule

import "github.com/solidifylabs/balls/ir"

// A State is the backwards machine's mutable search state: the stack as it
// currently stands (index 0 is the bottom, the last index is the top) and
// each node's remaining obligations, indexed exactly like the owning
// *ir.Graph's Nodes.
type State struct {
	Stack     []ir.NodeID
	BlockedBy []*uint32
}

// Clone returns an independent copy suitable for a new search-tree branch.
// BlockedBy entries are never mutated in place (decrementing replaces the
// pointer with a fresh one), so the pointers themselves are safe to share
// across clones; only the backing slices need copying.
func (s *State) Clone() *State {
	return &State{
		Stack:     append([]ir.NodeID(nil), s.Stack...),
		BlockedBy: append([]*uint32(nil), s.BlockedBy...),
	}
}

// Done reports whether every node has collapsed to "no obligations".
func (s *State) Done() bool {
	for _, b := range s.BlockedBy {
		if b != nil {
			return false
		}
	}
	return true
}

// TotalBlocked sums the current BlockedBy counts, treating done (nil)
// nodes as contributing zero. It's the input to heuristic.Estimator.
func (s *State) TotalBlocked() uint64 {
	var total uint64
	for _, b := range s.BlockedBy {
		if b != nil {
			total += uint64(*b)
		}
	}
	return total
}

func decrement(b *uint32) *uint32 {
	if b == nil {
		return nil
	}
	v := *b - 1
	return &v
}

// onStack reports whether id currently appears anywhere in the stack.
func onStack(stack []ir.NodeID, id ir.NodeID) bool {
	for _, s := range stack {
		if s == id {
			return true
		}
	}
	return false
}

func indexOf(stack []ir.NodeID, id ir.NodeID) (int, bool) {
	for i, s := range stack {
		if s == id {
			return i, true
		}
	}
	return 0, false
}
