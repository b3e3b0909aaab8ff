package schedule

import (
	"fmt"

	"github.com/solidifylabs/balls/ir"
	"github.com/solidifylabs/balls/swap"
)

const maxValidSwapDepth = 16

// ErrInfeasible is returned (wrapped with more context) when no schedule
// exists within the given stack-depth bound.
var ErrInfeasible = fmt.Errorf("schedule: impossible to schedule within specified bounds — likely stack-too-deep")

// A Machine holds everything about a Graph that's read-only across an
// entire search: the graph itself and which node ids belong to the target
// input stack. It has no mutable state of its own — every action takes and
// returns a *State.
type Machine struct {
	Graph *ir.Graph

	// targetInputStack is Graph.InputIDs in the same bottom-to-top
	// orientation as State.Stack (i.e. reversed relative to the
	// top-of-stack-first convention used by Graph.InputIDs itself).
	targetInputStack []ir.NodeID
	isTargetInput    map[ir.NodeID]bool
}

// NewMachine builds a Machine for g.
func NewMachine(g *ir.Graph) *Machine {
	target := make([]ir.NodeID, len(g.InputIDs))
	for i, id := range g.InputIDs {
		target[len(target)-1-i] = id
	}
	isTarget := make(map[ir.NodeID]bool, len(g.InputIDs))
	for _, id := range g.InputIDs {
		isTarget[id] = true
	}
	return &Machine{Graph: g, targetInputStack: target, isTargetInput: isTarget}
}

// InitialState returns the state the backwards walk starts from: the
// desired output stack (reversed into bottom-to-top order) with each
// node's BlockedBy as finalized by ir.FinalizeBlockedCounts.
func (m *Machine) InitialState() *State {
	stack := make([]ir.NodeID, len(m.Graph.OutputIDs))
	for i, id := range m.Graph.OutputIDs {
		stack[len(stack)-1-i] = id
	}
	blocked := make([]*uint32, len(m.Graph.Nodes))
	for i, n := range m.Graph.Nodes {
		blocked[i] = n.BlockedBy
	}
	return &State{Stack: stack, BlockedBy: blocked}
}

func (m *Machine) bug(format string, a ...any) {
	panic(fmt.Sprintf("BUG: "+format, a...))
}

// Unpop undoes a POP of id: id must be blocked_by=0 and a member of the
// target input stack (undoing anything else is never proposed by the
// action generator and is an invariant violation if attempted directly).
// Appends a Pop step in forward order.
func (m *Machine) Unpop(s *State, id ir.NodeID, steps []Step) []Step {
	if b := s.BlockedBy[id]; b == nil || *b != 0 {
		m.bug("Unpop on non-zero-blocked node %d", id)
	}
	if !m.isTargetInput[id] {
		m.bug("Unpop on node %d not in target input stack", id)
	}
	s.Stack = append(s.Stack, id)
	s.BlockedBy[id] = nil
	return append(steps, Pop{})
}

// UndoComp undoes the Comp that produced id, which must currently sit at
// stack index stackIdx. Appends a Swap (if needed) then a Comp step.
func (m *Machine) UndoComp(s *State, id ir.NodeID, stackIdx int, usingVariant bool, steps []Step) []Step {
	if b := s.BlockedBy[id]; b == nil || *b != 0 {
		m.bug("UndoComp on non-zero-blocked node %d", id)
	}
	lastIdx := len(s.Stack) - 1
	if stackIdx > lastIdx {
		m.bug("UndoComp stack index %d out of bounds (len %d)", stackIdx, len(s.Stack))
	}
	depth := lastIdx - stackIdx
	if depth > maxValidSwapDepth {
		m.bug("UndoComp swap depth %d exceeds %d", depth, maxValidSwapDepth)
	}

	s.Stack[stackIdx], s.Stack[lastIdx] = s.Stack[lastIdx], s.Stack[stackIdx]
	actual := s.Stack[lastIdx]
	s.Stack = s.Stack[:lastIdx]
	if actual != id {
		m.bug("UndoComp id mismatch at depth %d: passed %d, actual %d", depth, id, actual)
	}

	if depth > 0 {
		steps = append(steps, Swap{Depth: uint8(depth)})
	}

	s.BlockedBy[id] = nil
	steps = m.undoNode(s, id, usingVariant, steps)
	return append(steps, Comp{ID: id, UsingVariant: usingVariant})
}

// UndoEffect undoes the effect-only execution of id (a node that produces
// no value). Appends only a Comp step; there is nothing to remove from the
// stack.
func (m *Machine) UndoEffect(s *State, id ir.NodeID, steps []Step) []Step {
	if m.Graph.Nodes[id].ProducesValue {
		m.bug("UndoEffect on value-producing node %d", id)
	}
	if b := s.BlockedBy[id]; b == nil || *b != 0 {
		m.bug("UndoEffect on non-zero-blocked node %d", id)
	}
	s.BlockedBy[id] = nil
	steps = m.undoNode(s, id, false, steps)
	return append(steps, Comp{ID: id, UsingVariant: false})
}

// Dedup undoes a DUP that produced the copy at asTopIdx from the original
// at otherIdx. Appends a Swap (if needed) then a Dup step.
func (m *Machine) Dedup(s *State, asTopIdx, otherIdx int, steps []Step) []Step {
	if asTopIdx == otherIdx {
		m.bug("Dedup with identical indices %d", asTopIdx)
	}
	id := s.Stack[asTopIdx]
	if s.Stack[otherIdx] != id {
		m.bug("Dedup id mismatch at [%d]=%d vs [%d]=%d", asTopIdx, id, otherIdx, s.Stack[otherIdx])
	}
	if b := s.BlockedBy[id]; b == nil || *b == 0 {
		m.bug("Dedup on node %d with no remaining blocks", id)
	}

	topIdx := len(s.Stack) - 1
	swapDepth := topIdx - asTopIdx
	if swapDepth > maxValidSwapDepth {
		m.bug("Dedup swap depth %d exceeds %d", swapDepth, maxValidSwapDepth)
	}
	if swapDepth > 0 {
		steps = append(steps, Swap{Depth: uint8(swapDepth)})
		s.Stack[asTopIdx], s.Stack[topIdx] = s.Stack[topIdx], s.Stack[asTopIdx]
	}

	dedupDepth := topIdx - otherIdx
	if dedupDepth > maxValidSwapDepth {
		m.bug("Dedup depth %d exceeds %d", dedupDepth, maxValidSwapDepth)
	}

	s.BlockedBy[id] = decrement(s.BlockedBy[id])
	steps = append(steps, Dup{Depth: uint8(dedupDepth)})
	s.Stack = s.Stack[:topIdx]

	if b := s.BlockedBy[id]; b != nil && *b == 0 && m.isTargetInput[id] {
		s.BlockedBy[id] = nil
	}
	return steps
}

// undoNode pushes id's operands (in reverse operand order, so that
// Operands[0] ends up on top — matching forward order, where the first
// argument in source order is pushed last) and decrements every operand's
// and every Post predecessor's BlockedBy.
func (m *Machine) undoNode(s *State, id ir.NodeID, usingVariant bool, steps []Step) []Step {
	node := m.Graph.Nodes[id]

	operandOrder := node.Operands
	if usingVariant {
		v := m.Graph.Variants[id]
		if v == nil {
			m.bug("UndoComp(usingVariant=true) on node %d with no variant", id)
		}
		permuted := make([]ir.NodeID, len(v.Permutation))
		for i, srcIdx := range v.Permutation {
			permuted[i] = node.Operands[srcIdx]
		}
		operandOrder = permuted
	}

	for i := len(operandOrder) - 1; i >= 0; i-- {
		dep := operandOrder[i]
		s.Stack = append(s.Stack, dep)
		s.BlockedBy[dep] = decrement(s.BlockedBy[dep])
		if b := s.BlockedBy[dep]; b != nil && *b == 0 && m.isTargetInput[dep] {
			s.BlockedBy[dep] = nil
		}
	}

	for _, pred := range node.Post {
		s.BlockedBy[pred] = decrement(s.BlockedBy[pred])
	}

	return steps
}

// FinalAlign runs the swap planner on the residual stack to match the
// target input stack, appending the resulting Swap steps. It must only be
// called once s.Done(). Returns ErrInfeasible if any required swap depth
// exceeds 16.
func (m *Machine) FinalAlign(s *State, steps []Step) ([]Step, error) {
	if len(s.Stack) != len(m.targetInputStack) {
		m.bug("FinalAlign stack length %d != target length %d", len(s.Stack), len(m.targetInputStack))
	}
	if len(s.Stack) == 0 {
		return steps, nil
	}

	depths, err := swap.Plan(s.Stack, m.targetInputStack)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInfeasible, err)
	}
	for _, d := range depths {
		if d > maxValidSwapDepth {
			return nil, fmt.Errorf("%w: final alignment needs Swap(%d)", ErrInfeasible, d)
		}
		steps = append(steps, Swap{Depth: uint8(d)})
	}
	return steps, nil
}
