package schedule

import (
	"fmt"

	"github.com/solidifylabs/balls/ir"
)

// Simulate replays steps symbolically against a stack seeded with g's
// inputs and returns the resulting stack, both in bottom-to-top order. It
// performs no arithmetic — Comp nodes are opaque (a NodeID consumed, a
// NodeID produced) — which is enough to check forward equivalence (the
// right values in the right order, effects in the right order) without a
// real interpreter. It's the fast, pure-Go check used by tests; balls.Emit
// is what actually lowers steps into runnable bytecode.
func Simulate(g *ir.Graph, steps []Step) ([]ir.NodeID, error) {
	stack := make([]ir.NodeID, len(g.InputIDs))
	for i, id := range g.InputIDs {
		stack[len(stack)-1-i] = id
	}

	executed := make(map[ir.NodeID]bool, len(g.Nodes))

	for i, step := range steps {
		switch s := step.(type) {
		case Swap:
			top := len(stack) - 1
			idx := top - int(s.Depth)
			if idx < 0 {
				return nil, fmt.Errorf("step %d: Swap(%d) out of bounds (len %d)", i, s.Depth, len(stack))
			}
			stack[top], stack[idx] = stack[idx], stack[top]

		case Dup:
			// Dup(n) copies the n-th element from the top (Dup(1) copies the
			// top itself), exactly like the target machine's DUPn.
			idx := len(stack) - int(s.Depth)
			if idx < 0 {
				return nil, fmt.Errorf("step %d: Dup(%d) out of bounds (len %d)", i, s.Depth, len(stack))
			}
			stack = append(stack, stack[idx])

		case Pop:
			if len(stack) == 0 {
				return nil, fmt.Errorf("step %d: Pop on empty stack", i)
			}
			stack = stack[:len(stack)-1]

		case Comp:
			if int(s.ID) < 0 || int(s.ID) >= len(g.Nodes) {
				return nil, fmt.Errorf("step %d: Comp references unknown node %d", i, s.ID)
			}
			node := g.Nodes[s.ID]
			operandOrder := node.Operands
			if s.UsingVariant {
				v := g.Variants[s.ID]
				if v == nil {
					return nil, fmt.Errorf("step %d: Comp(%d) usingVariant but node has no variant", i, s.ID)
				}
				permuted := make([]ir.NodeID, len(v.Permutation))
				for k, srcIdx := range v.Permutation {
					permuted[k] = node.Operands[srcIdx]
				}
				operandOrder = permuted
			}

			n := len(operandOrder)
			if len(stack) < n {
				return nil, fmt.Errorf("step %d: Comp(%d) needs %d operands, stack has %d", i, s.ID, n, len(stack))
			}
			// operandOrder[0] is pushed last by undoNode, so it sits on top;
			// operandOrder[k] sits at depth k from the top.
			for k, want := range operandOrder {
				got := stack[len(stack)-1-k]
				if got != want {
					return nil, fmt.Errorf("step %d: Comp(%d) operand %d mismatch: stack has %d, want %d", i, s.ID, k, got, want)
				}
			}
			for _, post := range node.Post {
				if !executed[post] {
					return nil, fmt.Errorf("step %d: Comp(%d) executed before post-predecessor %d", i, s.ID, post)
				}
			}

			stack = stack[:len(stack)-n]
			if node.ProducesValue {
				stack = append(stack, s.ID)
			}
			executed[s.ID] = true

		default:
			return nil, fmt.Errorf("step %d: unknown step type %T", i, step)
		}
	}

	return stack, nil
}
