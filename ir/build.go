package ir

import (
	"fmt"

	"github.com/solidifylabs/balls/resource"
)

// builder holds the mutable bookkeeping needed while walking one Function
// body. It is discarded once Build returns.
type builder struct {
	fn   Function
	syms SymbolTable

	graph   Graph
	sources map[NodeID]Source

	// locals maps an assigned name to the node that produced it. Unlike
	// macro-arg and const references, locals are never re-lowered into a
	// fresh node: re-using the id is precisely what lets the scheduler
	// later decide whether to Dup or recompute.
	locals map[string]NodeID

	lastWrite    map[resource.Channel]NodeID
	hasLastWrite map[resource.Channel]bool
	lastReads    map[resource.Channel][]NodeID
}

// Build lowers fn into a computation Graph, given a SymbolTable that has
// already been validated by an external frontend. Any unresolved reference
// indicates a bug in that frontend (or in the caller's use of this
// package), never a fault in the fn body itself, so Build panics rather
// than returning an error — consistent with this module's "BUG: "
// invariant-violation convention (see specops/compile.go for precedent).
func Build(fn Function, syms SymbolTable) (*Graph, *BuildResult) {
	b := &builder{
		fn:           fn,
		syms:         syms,
		sources:      make(map[NodeID]Source),
		locals:       make(map[string]NodeID),
		lastWrite:    make(map[resource.Channel]NodeID),
		hasLastWrite: make(map[resource.Channel]bool),
		lastReads:    make(map[resource.Channel][]NodeID),
	}

	for _, name := range fn.Inputs {
		id := b.newNode(Node{ProducesValue: true})
		b.sources[id] = InputSource{Name: name}
		b.locals[name] = id
	}

	result := &BuildResult{}
	for _, stmt := range fn.Body {
		id, producesValue := b.lowerExpr(stmt.Expr)
		if (stmt.Assign != "") != producesValue {
			panic(fmt.Sprintf("BUG: statement assign=%q but producesValue=%v", stmt.Assign, producesValue))
		}
		if stmt.Assign != "" {
			b.locals[stmt.Assign] = id
			result.Assignments = append(result.Assignments, Assignment{Name: stmt.Assign, ID: id})
		}
	}

	for _, name := range fn.Outputs {
		id, ok := b.locals[name]
		if !ok {
			panic(fmt.Sprintf("BUG: undefined output identifier %q", name))
		}
		b.graph.OutputIDs = append(b.graph.OutputIDs, id)
	}
	for _, name := range fn.Inputs {
		b.graph.InputIDs = append(b.graph.InputIDs, b.locals[name])
	}

	result.Sources = b.sources
	FinalizeBlockedCounts(&b.graph)
	return &b.graph, result
}

func (b *builder) newNode(n Node) NodeID {
	id := NodeID(len(b.graph.Nodes))
	b.graph.Nodes = append(b.graph.Nodes, n)
	b.graph.Variants = append(b.graph.Variants, nil)
	return id
}

// lowerExpr recursively lowers e into the graph, returning the id of the
// node that represents its value and whether that node produces a value at
// all (false only for a bare effectful call with no assignment).
func (b *builder) lowerExpr(e Expr) (NodeID, bool) {
	switch e := e.(type) {
	case NumExpr:
		id := b.newNode(Node{ProducesValue: true})
		b.sources[id] = NumSource{N: e.N}
		return id, true

	case VarExpr:
		return b.lowerVar(e.Name)

	case CallExpr:
		return b.lowerCall(e)

	default:
		panic(fmt.Sprintf("BUG: unhandled %T in lowerExpr", e))
	}
}

func (b *builder) lowerVar(name string) (NodeID, bool) {
	if id, ok := b.locals[name]; ok {
		return id, b.graph.Nodes[id].ProducesValue
	}
	for _, arg := range b.fn.MacroArgs {
		if arg == name {
			id := b.newNode(Node{ProducesValue: true})
			b.sources[id] = MacroArgSource{Name: name}
			return id, true
		}
	}
	if c, ok := b.syms.Consts[name]; ok {
		id := b.newNode(Node{ProducesValue: true})
		b.sources[id] = ConstSource{Name: c.Name}
		return id, true
	}
	panic(fmt.Sprintf("BUG: unresolved identifier %q", name))
}

func (b *builder) lowerCall(e CallExpr) (NodeID, bool) {
	descr, ok := b.syms.lookupOp(e.Ident)
	if !ok {
		panic(fmt.Sprintf("BUG: invalid op %q referenced", e.Ident))
	}
	if got, want := len(e.StackArgs), int(descr.StackIn); got != want {
		panic(fmt.Sprintf("BUG: op %q got %d stack args; want %d", e.Ident, got, want))
	}

	operands := make([]NodeID, len(e.StackArgs))
	for i, arg := range e.StackArgs {
		id, producesValue := b.lowerExpr(arg)
		if !producesValue {
			panic(fmt.Sprintf("BUG: argument #%d to %q does not produce a value", i, e.Ident))
		}
		operands[i] = id
	}

	id := b.newNode(Node{ProducesValue: descr.StackOut, Operands: operands, OpIdent: e.Ident})
	b.sources[id] = OpSource{Ident: e.Ident}
	b.graph.Variants[id] = descr.Variant

	for _, c := range descr.Reads {
		b.recordRead(c, id)
	}
	for _, c := range descr.Writes {
		b.recordWrite(c, id)
	}

	return id, descr.StackOut
}

// recordRead appends id to the set of channel c's unconsumed readers and, if
// c has a prior writer, adds that writer as an ordering predecessor of id
// (the write must be visible before this read executes).
func (b *builder) recordRead(c resource.Channel, id NodeID) {
	b.lastReads[c] = append(b.lastReads[c], id)
	if b.hasLastWrite[c] {
		b.addPost(id, b.lastWrite[c])
	}
}

// recordWrite adds every channel c reader since the previous writer, plus
// the previous writer itself, as ordering predecessors of id, then installs
// id as the new last writer and clears the read set.
func (b *builder) recordWrite(c resource.Channel, id NodeID) {
	for _, reader := range b.lastReads[c] {
		b.addPost(id, reader)
	}
	if b.hasLastWrite[c] {
		b.addPost(id, b.lastWrite[c])
	}
	b.lastWrite[c] = id
	b.hasLastWrite[c] = true
	delete(b.lastReads, c)
}

func (b *builder) addPost(id, pred NodeID) {
	b.graph.Nodes[id].Post = append(b.graph.Nodes[id].Post, pred)
}
