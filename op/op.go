// Package op describes operations available to BALLS function bodies: their
// stack arity, the resource channels they read and write, and an optional
// commutative/chiral variant that the scheduler may substitute to avoid a
// SWAP.
package op

import "github.com/solidifylabs/balls/resource"

// A Variant records that a Descriptor is semantically equivalent to the
// Descriptor named AltIdent, applied to its operands reordered according to
// Permutation. Permutation[i] is the index, in the original operand list,
// of the operand that should occupy position i when emitting AltIdent.
type Variant struct {
	AltIdent    string
	Permutation []int
}

// A Descriptor describes one callable operation: its stack-input arity,
// whether it produces a value, and the resource channels it reads/writes.
type Descriptor struct {
	Ident    string
	StackIn  uint16
	StackOut bool
	Reads    []resource.Channel
	Writes   []resource.Channel
	Variant  *Variant
}

// Library resolves operation identifiers to their Descriptor. A
// SymbolTable (package ir) wraps a Library for operations while also
// carrying dependencies, constants, and Huff macros.
type Library interface {
	Lookup(ident string) (*Descriptor, bool)
}

// A MapLibrary is a Library backed by a plain map, the form returned by
// StandardLibrary.
type MapLibrary map[string]*Descriptor

// Lookup implements Library.
func (l MapLibrary) Lookup(ident string) (*Descriptor, bool) {
	d, ok := l[ident]
	return d, ok
}

func commutative(ident string, in uint16) *Descriptor {
	return &Descriptor{
		Ident:    ident,
		StackIn:  in,
		StackOut: true,
		Variant:  &Variant{AltIdent: ident, Permutation: []int{1, 0}},
	}
}

func chiral(ident, altIdent string, in uint16) *Descriptor {
	return &Descriptor{
		Ident:    ident,
		StackIn:  in,
		StackOut: true,
		Variant:  &Variant{AltIdent: altIdent, Permutation: []int{1, 0}},
	}
}

func pure(ident string, in uint16, out bool) *Descriptor {
	return &Descriptor{Ident: ident, StackIn: in, StackOut: out}
}

func effectful(ident string, in uint16, out bool, reads, writes []resource.Channel) *Descriptor {
	return &Descriptor{Ident: ident, StackIn: in, StackOut: out, Reads: reads, Writes: writes}
}

// StandardLibrary returns the built-in operation set used throughout this
// repository's tests and by callers that don't define their own ops. Stack
// arities are grounded on specops/opcodes.gen.go's stackDeltas table for the
// underlying EVM opcodes.
//
// addmod and mulmod only expose a variant across their first two arguments:
// the modulus (third argument) does not commute. See SPEC_FULL.md §10 for
// the rationale; this mirrors the upstream scheduler's behaviour exactly.
func StandardLibrary() MapLibrary {
	lib := MapLibrary{
		"add": commutative("add", 2),
		"mul": commutative("mul", 2),
		"eq":  commutative("eq", 2),
		"and": commutative("and", 2),
		"or":  commutative("or", 2),
		"xor": commutative("xor", 2),

		"sub":        pure("sub", 2, true),
		"div":        pure("div", 2, true),
		"sdiv":       pure("sdiv", 2, true),
		"mod":        pure("mod", 2, true),
		"smod":       pure("smod", 2, true),
		"exp":        pure("exp", 2, true),
		"signextend": pure("signextend", 2, true),
		"iszero":     pure("iszero", 1, true),
		"not":        pure("not", 1, true),
		"byte":       pure("byte", 2, true),
		"shl":        pure("shl", 2, true),
		"shr":        pure("shr", 2, true),
		"sar":        pure("sar", 2, true),

		"lt":  chiral("lt", "gt", 2),
		"gt":  chiral("gt", "lt", 2),
		"slt": chiral("slt", "sgt", 2),
		"sgt": chiral("sgt", "slt", 2),

		"addmod": {Ident: "addmod", StackIn: 3, StackOut: true, Variant: &Variant{AltIdent: "addmod", Permutation: []int{1, 0, 2}}},
		"mulmod": {Ident: "mulmod", StackIn: 3, StackOut: true, Variant: &Variant{AltIdent: "mulmod", Permutation: []int{1, 0, 2}}},

		"sload":  effectful("sload", 1, true, []resource.Channel{resource.Storage}, nil),
		"sstore": effectful("sstore", 2, false, nil, []resource.Channel{resource.Storage}),

		"tload":  effectful("tload", 1, true, []resource.Channel{resource.Transient}, nil),
		"tstore": effectful("tstore", 2, false, nil, []resource.Channel{resource.Transient}),

		"mload":   effectful("mload", 1, true, []resource.Channel{resource.Memory}, nil),
		"mstore":  effectful("mstore", 2, false, nil, []resource.Channel{resource.Memory, resource.MemSize}),
		"mstore8": effectful("mstore8", 2, false, nil, []resource.Channel{resource.Memory, resource.MemSize}),

		"log0": effectful("log0", 2, false, nil, []resource.Channel{resource.ReceiptLogs}),
		"log1": effectful("log1", 3, false, nil, []resource.Channel{resource.ReceiptLogs}),
		"log2": effectful("log2", 4, false, nil, []resource.Channel{resource.ReceiptLogs}),
		"log3": effectful("log3", 5, false, nil, []resource.Channel{resource.ReceiptLogs}),
		"log4": effectful("log4", 6, false, nil, []resource.Channel{resource.ReceiptLogs}),

		"balance":     effectful("balance", 1, true, []resource.Channel{resource.Balances}, nil),
		"selfbalance": effectful("selfbalance", 0, true, []resource.Channel{resource.Balances}, nil),
		"call":        effectful("call", 7, true, nil, []resource.Channel{resource.Balances}),
		"callcode":    effectful("callcode", 7, true, nil, []resource.Channel{resource.Balances}),

		"extcodesize": effectful("extcodesize", 1, true, []resource.Channel{resource.Code}, nil),
		"extcodecopy": effectful("extcodecopy", 4, false, []resource.Channel{resource.Code}, nil),
		"extcodehash": effectful("extcodehash", 1, true, []resource.Channel{resource.Code}, nil),

		"returndatasize": effectful("returndatasize", 0, true, []resource.Channel{resource.ReturnData}, nil),
		"returndatacopy": effectful("returndatacopy", 3, false, []resource.Channel{resource.ReturnData}, nil),

		"jump":   effectful("jump", 1, false, nil, []resource.Channel{resource.ControlFlow}),
		"jumpi":  effectful("jumpi", 2, false, nil, []resource.Channel{resource.ControlFlow}),
		"stop":   effectful("stop", 0, false, nil, []resource.Channel{resource.ControlFlow}),
		"return": effectful("return", 2, false, nil, []resource.Channel{resource.ControlFlow}),
		"revert": effectful("revert", 2, false, nil, []resource.Channel{resource.ControlFlow}),
	}
	return lib
}
