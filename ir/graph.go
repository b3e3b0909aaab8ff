// Package ir implements the computation-graph model (C1) and the builder
// (C2) that lowers an already-validated function body into it. The graph is
// a flat, append-only slice of Node records; NodeID is simply an index, so
// the graph is a DAG by construction (an operand's id is always allocated
// before the node that references it).
package ir

import "github.com/solidifylabs/balls/op"

// A NodeID indexes Graph.Nodes.
type NodeID int

// A Node is one vertex of the computation graph.
type Node struct {
	// ProducesValue is true if this node leaves a value on the stack when
	// executed (an operation with stack_out, a top-level input, a literal,
	// a macro-arg reference, or a constant reference).
	ProducesValue bool

	// Operands are value dependencies: they must sit directly below this
	// node on the stack at the moment it executes, with Operands[0] on top
	// (the first source-order argument is the first one the operation
	// consumes) down to the last operand at the bottom of the group.
	Operands []NodeID

	// Post are ordering-only predecessors: nodes that must execute before
	// this one, but whose values this node does not consume.
	Post []NodeID

	// BlockedBy counts remaining forward obligations for the backwards
	// walk. nil means the node is fully accounted for ("done"). It is set
	// once, by FinalizeBlockedCounts, and mutated thereafter only by the
	// backwards machine (package schedule) operating on a cloned copy.
	BlockedBy *uint32

	// OpIdent is the op.Library/ir.HuffMacro identifier this node was
	// lowered from, set only for nodes backing a CallExpr. It's how
	// package balls's Emit resolves a Comp step back to a concrete opcode
	// without needing its own copy of the SymbolTable.
	OpIdent string
}

// A Graph is the computation DAG produced by Build, ready for scheduling.
type Graph struct {
	Nodes     []Node
	InputIDs  []NodeID
	OutputIDs []NodeID

	// Variants mirrors Nodes by index: Variants[i] is non-nil iff the
	// operation backing Nodes[i] declared one in the op.Library.
	Variants []*op.Variant
}

// BlockedByPtr returns a fresh *uint32 holding n, for convenience when
// constructing or comparing BlockedBy fields.
func BlockedByPtr(n uint32) *uint32 {
	return &n
}

// Done reports whether every node in g has collapsed to "no obligations".
// It's mostly useful in tests; the backwards machine tracks this over its
// own mutable copy of the BlockedBy slice (see schedule.State.Done).
func (g *Graph) Done() bool {
	for _, n := range g.Nodes {
		if n.BlockedBy != nil {
			return false
		}
	}
	return true
}
