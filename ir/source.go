package ir

import "github.com/holiman/uint256"

// A Source records how a node would be printed back as source by a
// downstream formatter (out of scope for this package, which only supplies
// the raw material).
type Source interface {
	isSource()
}

// InputSource marks a node as a top-level function input.
type InputSource struct {
	Name string
}

func (InputSource) isSource() {}

// OpSource marks a node as the result of invoking an operation or macro.
type OpSource struct {
	Ident string
}

func (OpSource) isSource() {}

// NumSource marks a node as an integer literal appearing directly in the
// function body.
type NumSource struct {
	N *uint256.Int
}

func (NumSource) isSource() {}

// MacroArgSource marks a node as a reference to one of the enclosing
// function's macro arguments.
type MacroArgSource struct {
	Name string
}

func (MacroArgSource) isSource() {}

// ConstSource marks a node as a reference to a top-level Huff constant.
type ConstSource struct {
	Name string
}

func (ConstSource) isSource() {}

// An Assignment records that a body statement bound its result to a local
// name, for reproducing stack comments.
type Assignment struct {
	Name string
	ID   NodeID
}

// A BuildResult carries the side tables produced alongside a Graph by
// Build.
type BuildResult struct {
	Sources     map[NodeID]Source
	Assignments []Assignment
}
