package ir

import (
	"github.com/holiman/uint256"

	"github.com/solidifylabs/balls/op"
)

// A Dependency is a top-level declared resource the function body may read
// from or write to without it ever appearing as a stack value (e.g. a
// storage slot name used purely for documentation). BALLS's resource model
// (package resource) identifies the channel itself; Dependency records that
// a particular identifier in scope refers to one.
type Dependency struct {
	Name string
}

// A Const is a top-level named 256-bit literal (a Huff constant).
type Const struct {
	Name  string
	Value *uint256.Int
}

// A HuffMacro marks an identifier as a reference to a foreign (non-BALLS)
// Huff macro; the builder treats an invocation of one exactly like an op
// invocation, since arity and effects are already known from validation.
type HuffMacro struct {
	Name     string
	StackIn  uint16
	StackOut bool
}

// A SymbolTable resolves every free identifier a Function body can
// reference. It is built and validated entirely outside this package; the
// builder only ever reads from it.
type SymbolTable struct {
	Ops    op.Library
	Consts map[string]Const
	Deps   map[string]Dependency
	Macros map[string]HuffMacro
}

// lookupOp resolves ident against Ops and Macros, treating a HuffMacro as an
// op.Descriptor with no resource effects (those, if any, were already
// folded into the macro's declared arity during validation).
func (s SymbolTable) lookupOp(ident string) (*op.Descriptor, bool) {
	if d, ok := s.Ops.Lookup(ident); ok {
		return d, true
	}
	if m, ok := s.Macros[ident]; ok {
		return &op.Descriptor{Ident: m.Name, StackIn: m.StackIn, StackOut: m.StackOut}, true
	}
	return nil, false
}
