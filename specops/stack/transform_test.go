// Package stack_test avoids a circular dependency between the specops and stack
// packages.
package stack_test

import (
	"fmt"
	"log"
	"math/big"
	"math/rand"
	"testing"

	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/solidifylabs/balls/specops"
	"github.com/solidifylabs/balls/specops/stack"
)

func ExampleTransformation() {
	egs := []struct {
		desc  string
		xform *stack.Transformation
	}{
		{
			desc:  "Permute",
			xform: stack.Permute(2, 0, 3, 1),
		},
		{
			desc:  "Noop Permute",
			xform: stack.Permute(0, 1, 2, 3, 4, 5),
		},
	}

	for _, eg := range egs {
		bytecode, err := eg.xform.Bytecode()
		if err != nil {
			log.Fatalf("%s error %v", eg.desc, err)
		}

		ops := make([]vm.OpCode, len(bytecode))
		for i, b := range bytecode {
			ops[i] = vm.OpCode(b)
		}

		fmt.Println(eg.desc, ops)
	}

	// Output:
	// Permute [SWAP1 SWAP3 SWAP2]
	// Noop Permute []
}

func TestTransformations(t *testing.T) {
	type test struct {
		name         string
		depth        int
		indices      []uint8
		wantNumSteps *int // don't know when fuzzing so only test if non-nil
	}

	intPtr := func(x int) *int { return &x }

	tests := []test{
		{
			name:         "noop",
			depth:        4,
			indices:      []uint8{0, 1, 2, 3},
			wantNumSteps: intPtr(0),
		},
		{
			name:         "single SWAP",
			depth:        8,
			indices:      []uint8{7, 1, 2, 3, 4, 5, 6, 0},
			wantNumSteps: intPtr(1),
		},
		{
			name:         "single SWAP",
			depth:        7,
			indices:      []uint8{4, 1, 2, 3, 0, 5, 6},
			wantNumSteps: intPtr(1),
		},
		{
			name:    "full reversal",
			depth:   4,
			indices: []uint8{3, 2, 1, 0},
		},
		{
			name:    "arbitrary",
			depth:   7,
			indices: []uint8{5, 0, 6, 3, 4, 2, 1},
		},
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		in := []uint8{0, 1, 2, 3, 4, 5, 6, 7}
		rng.Shuffle(len(in), func(i, j int) {
			in[i], in[j] = in[j], in[i]
		})
		tests = append(tests, test{name: "fuzz", depth: len(in), indices: in})
	}

	for _, tt := range tests {
		tt := tt // for use with t.Parallel()
		t.Run(fmt.Sprintf("%s n=%d %v", tt.name, tt.depth, tt.indices), func(t *testing.T) {
			t.Parallel()

			var code specops.Code
			for i := tt.depth; i > 0; i-- {
				code = append(code, specops.PUSH(i-1)) // {0 … depth-1} top to bottom
			}

			xform := stack.Permute(tt.indices...)
			steps, err := xform.Bytecode()
			if err != nil {
				t.Fatalf("Permute(%v).Bytecode() error %v", tt.indices, err)
			}
			for _, s := range steps {
				t.Log(vm.OpCode(s))
			}
			if got := len(steps); tt.wantNumSteps != nil && got != *tt.wantNumSteps {
				t.Errorf("Permute(%v) got %d swaps; want %d", tt.indices, got, *tt.wantNumSteps)
			}
			code = append(code, xform)
			code = append(code, dumpStack(tt.depth)...)

			got, err := code.Run(nil)
			if err != nil {
				t.Fatalf("%T.Run(nil) error %v", code, err)
			}

			want := make([]uint64, len(tt.indices))
			for i, w := range tt.indices {
				want[i] = uint64(w)
			}
			if diff := cmp.Diff(want, decodeWords(got), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Stack [top to bottom] after Permute(%v) diff (-want +got):\n%s", tt.indices, diff)
			}
		})
	}
}

// TestTransformReordersMultipleOutputs grounds stack.Transform in the shape of
// problem package balls actually hands it: a scheduled function's outputs
// already sit on the stack in ir.Graph.OutputIDs order (index 0 on top), and
// AssembleProgram's epilogue needs them reordered to ABI word order (the
// first-declared output at memory offset 0) before MSTORE-ing each one. This
// is exactly a depth-N Transformation from "however the scheduler left them"
// to "declaration order".
func TestTransformReordersMultipleOutputs(t *testing.T) {
	// Pretend the scheduler produced outputs in the reverse of declaration
	// order: <out2, out1, out0> top to bottom, values 2, 1, 0 respectively.
	const depth = 3
	code := specops.Code{
		specops.PUSH(0), specops.PUSH(1), specops.PUSH(2), // <2 1 0>
		stack.Transform(depth)(2, 1, 0), // reorder to declaration order <0 1 2>
	}
	code = append(code, dumpStack(depth)...)

	out, err := code.Run(nil)
	if err != nil {
		t.Fatalf("%T.Run(nil) error %v", code, err)
	}
	if diff := cmp.Diff([]uint64{0, 1, 2}, decodeWords(out)); diff != "" {
		t.Errorf("Stack [top to bottom] after reordering outputs to declaration order, diff (-want +got):\n%s", diff)
	}
}

// dumpStack returns Bytecoders that, when appended after `n` stack items have
// been pushed, MSTOREs each from top to bottom into successive 32-byte memory
// words and RETURNs the result, destroying the stack in the process.
func dumpStack(n int) specops.Code {
	code := make(specops.Code, 0, n+1)
	for i := 0; i < n; i++ {
		// The value to store is already on top; pushing the offset leaves the
		// stack as [offset, value, …], exactly what MSTORE expects.
		code = append(code, specops.PUSH(i*32), specops.MSTORE)
	}
	code = append(code, specops.Fn(specops.RETURN, specops.PUSH(0), specops.PUSH(n*32)))
	return code
}

// decodeWords interprets `out` as a sequence of big-endian 32-byte words and
// returns each as a uint64, assuming it fits.
func decodeWords(out []byte) []uint64 {
	words := make([]uint64, 0, len(out)/32)
	for len(out) > 0 {
		words = append(words, new(big.Int).SetBytes(out[:32]).Uint64())
		out = out[32:]
	}
	return words
}
