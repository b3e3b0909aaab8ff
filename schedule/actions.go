package schedule

import "github.com/solidifylabs/balls/ir"

// An Action is one candidate move the search may take from a given State.
type Action interface {
	isAction()
}

// UnpopAction undoes a POP of ID.
type UnpopAction struct{ ID ir.NodeID }

func (UnpopAction) isAction() {}

// UndoCompAction undoes the Comp that produced ID, currently at StackIdx.
type UndoCompAction struct {
	ID           ir.NodeID
	StackIdx     int
	UsingVariant bool
}

func (UndoCompAction) isAction() {}

// UndoEffectAction undoes the effect-only execution of ID.
type UndoEffectAction struct{ ID ir.NodeID }

func (UndoEffectAction) isAction() {}

// DedupAction undoes a DUP that left copies of the same node at both
// indices.
type DedupAction struct{ AsTopIdx, OtherIdx int }

func (DedupAction) isAction() {}

// dupWindow is how far below the top DUP/SWAP can reach (SWAP16/DUP16).
const dupWindow = 17

// Actions enumerates every legal next action from s, in the deterministic
// order required for reproducible search output: Dedups first (by
// ascending stack index), then Unpops (by ascending node id), then
// UndoComp/UndoEffect (by ascending node id, primary spelling before
// variant).
func (m *Machine) Actions(s *State) []Action {
	var actions []Action

	lo := len(s.Stack) - dupWindow
	if lo < 0 {
		lo = 0
	}
	hi := len(s.Stack)

	for i := lo; i < hi; i++ {
		for j := lo; j < hi; j++ {
			if i != j && s.Stack[i] == s.Stack[j] {
				actions = append(actions, DedupAction{AsTopIdx: i, OtherIdx: j})
				break
			}
		}
	}

	unpoppable := make(map[ir.NodeID]bool)
	for id := range m.Graph.Nodes {
		id := ir.NodeID(id)
		b := s.BlockedBy[id]
		if b != nil && *b == 0 && m.Graph.Nodes[id].ProducesValue && !onStack(s.Stack, id) && m.isTargetInput[id] {
			unpoppable[id] = true
			actions = append(actions, UnpopAction{ID: id})
		}
	}

	for id := range m.Graph.Nodes {
		id := ir.NodeID(id)
		b := s.BlockedBy[id]
		if b == nil || *b != 0 || unpoppable[id] {
			continue
		}
		node := m.Graph.Nodes[id]
		if !node.ProducesValue {
			actions = append(actions, UndoEffectAction{ID: id})
			continue
		}
		idx, ok := indexOf(s.Stack, id)
		if !ok {
			m.bug("not-yet-done value node %d with zero blocks is not on the stack", id)
		}
		if idx < lo {
			continue
		}
		actions = append(actions, UndoCompAction{ID: id, StackIdx: idx})
		if m.Graph.Variants[id] != nil {
			actions = append(actions, UndoCompAction{ID: id, StackIdx: idx, UsingVariant: true})
		}
	}

	return actions
}

// Apply performs action against s in place, returning the (possibly
// extended) steps slice and whether s is now Done (after final alignment,
// if so).
func (m *Machine) Apply(s *State, action Action, steps []Step) ([]Step, bool, error) {
	switch a := action.(type) {
	case UnpopAction:
		steps = m.Unpop(s, a.ID, steps)
	case UndoCompAction:
		steps = m.UndoComp(s, a.ID, a.StackIdx, a.UsingVariant, steps)
	case UndoEffectAction:
		steps = m.UndoEffect(s, a.ID, steps)
	case DedupAction:
		steps = m.Dedup(s, a.AsTopIdx, a.OtherIdx, steps)
	default:
		m.bug("unhandled action type %T", action)
	}

	if !s.Done() {
		return steps, false, nil
	}
	steps, err := m.FinalAlign(s, steps)
	if err != nil {
		return nil, false, err
	}
	return steps, true, nil
}
