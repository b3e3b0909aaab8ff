package balls

import (
	"fmt"

	"github.com/solidifylabs/balls/specops"
	"github.com/solidifylabs/balls/specops/stack"
)

// A CallTarget names one scheduled Result as a dispatch target for
// AssembleProgram, keyed by the 4-byte Solidity-style function selector
// (see specops.PUSHSelector) that CALLDATA must carry to invoke it.
type CallTarget struct {
	Result   *Result
	Selector string // e.g. "transfer(address,uint256)"
}

// AssembleProgram combines several independently scheduled Results into one
// Huff-style contract: a selector dispatcher (CALLDATALOAD the first four
// bytes, compare against each target's Selector, JUMPI into the matching
// body) precedes each target's Emit()ted code. CALLDATA falling to match any
// target REVERTs with no data.
//
// Each target's body loads its Function.Inputs as one 32-byte word per
// input, starting at calldata offset 4, in declaration order, with the
// first-declared input ending up on top of the stack (matching how
// schedule.Simulate seeds a Machine's initial state). Its scheduled code
// therefore runs exactly as it would under schedule.Search. Afterwards,
// AssembleProgram stores Function.Outputs into memory one 32-byte word
// apiece, in declaration order starting at offset 0, and RETURNs them; this
// also guarantees the body never falls through into the next target.
func AssembleProgram(targets []CallTarget) (specops.Code, error) {
	if len(targets) == 0 {
		return nil, fmt.Errorf("AssembleProgram: no targets")
	}

	labels := make([]string, len(targets))
	for i, t := range targets {
		labels[i] = fmt.Sprintf("balls:dispatch:%d:%s", i, t.Result.Function.Name)
	}

	program := specops.Code{
		// selector = calldataload(0) >> 224
		specops.Fn(specops.SHR, specops.PUSH(224), specops.Fn(specops.CALLDATALOAD, specops.PUSH(0))),
	}
	for i, t := range targets {
		program = append(program,
			// if dup(selector) == Selector: jump to labels[i]
			specops.Fn(specops.JUMPI, specops.PUSH(labels[i]), specops.Fn(specops.EQ, specops.PUSHSelector(t.Selector), specops.DUP1)),
		)
	}
	program = append(program, specops.Fn(specops.REVERT, specops.PUSH(0), specops.PUSH(0)))

	for i, t := range targets {
		body, err := Emit(t.Result.Steps, t.Result.Graph)
		if err != nil {
			return nil, fmt.Errorf("AssembleProgram: Emit(%q): %w", t.Result.Function.Name, err)
		}

		n := len(t.Result.Function.Inputs)
		loadArgs := make(specops.Code, 0, n)
		for j := n - 1; j >= 0; j-- {
			loadArgs = append(loadArgs, specops.Fn(specops.CALLDATALOAD, specops.PUSH(4+32*j)))
		}

		numOut := len(t.Result.Function.Outputs)
		epilogue := make(specops.Code, 0, 2*numOut+1)
		for k := 0; k < numOut; k++ {
			epilogue = append(epilogue, specops.PUSH(32*k), specops.MSTORE)
		}
		epilogue = append(epilogue, specops.Fn(specops.RETURN, specops.PUSH(0), specops.PUSH(32*numOut)))

		program = append(program,
			specops.JUMPDEST(labels[i]),
			stack.SetDepth(1), // one leftover selector word, duplicated by every failed comparison
			specops.POP,
			loadArgs,
			body,
			epilogue,
		)
	}
	return program, nil
}
