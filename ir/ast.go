package ir

import "github.com/holiman/uint256"

// An Expr is one node of a function body's expression tree, as produced by
// an (out of scope) parser and already semantically validated: every Var it
// references resolves, and every Call's arity matches its operation's
// declared stack_in.
type Expr interface {
	isExpr()
}

// A NumExpr is an integer literal.
type NumExpr struct {
	N *uint256.Int
}

func (NumExpr) isExpr() {}

// A VarExpr references a previously assigned local, a macro argument, or a
// top-level constant, in that resolution order.
type VarExpr struct {
	Name string
}

func (VarExpr) isExpr() {}

// A CallExpr invokes an operation (or macro) by identifier, passing
// StackArgs as its value operands. MacroArgs, if non-empty, are compile-time
// arguments to a macro invocation rather than stack values; this
// specification's builder does not expand macros, treating a macro
// invocation identically to an op invocation for graph-building purposes
// (macro expansion is a symbol-table concern, out of scope here).
type CallExpr struct {
	Ident     string
	MacroArgs []string
	StackArgs []Expr
}

func (CallExpr) isExpr() {}

// A Statement is one line of a function body: `Expr` alone for a
// side-effecting call, or `Assign = Expr` to bind the result to a local.
type Statement struct {
	Assign string // empty if the statement has no output binding
	Expr   Expr
}

// A Function is one already-validated procedure body to be lowered into a
// Graph.
type Function struct {
	Name      string
	MacroArgs []string
	Inputs    []string
	Outputs   []string
	Body      []Statement
}
