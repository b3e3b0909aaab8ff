// Package balls ties the scheduler core (packages ir, op, schedule) to the
// specops emission backend, turning a Function into runnable EVM bytecode,
// and provides ScheduleAll for scheduling many functions concurrently.
package balls

import (
	"fmt"

	"github.com/solidifylabs/balls/ir"
	"github.com/solidifylabs/balls/schedule"
	"github.com/solidifylabs/balls/specops"
	"github.com/solidifylabs/balls/specops/types"
)

// swapOpcodes and dupOpcodes index directly by Depth (index 0 unused); both
// Step kinds number their opcode 1-16, matching SWAP1..SWAP16/DUP1..DUP16.
var swapOpcodes = [...]types.OpCode{
	0,
	specops.SWAP1, specops.SWAP2, specops.SWAP3, specops.SWAP4,
	specops.SWAP5, specops.SWAP6, specops.SWAP7, specops.SWAP8,
	specops.SWAP9, specops.SWAP10, specops.SWAP11, specops.SWAP12,
	specops.SWAP13, specops.SWAP14, specops.SWAP15, specops.SWAP16,
}

var dupOpcodes = [...]types.OpCode{
	0,
	specops.DUP1, specops.DUP2, specops.DUP3, specops.DUP4,
	specops.DUP5, specops.DUP6, specops.DUP7, specops.DUP8,
	specops.DUP9, specops.DUP10, specops.DUP11, specops.DUP12,
	specops.DUP13, specops.DUP14, specops.DUP15, specops.DUP16,
}

// Emit lowers a scheduled Step sequence into specops.Code, resolving each
// Comp step against g's own recorded Node.OpIdent (and, if UsingVariant, its
// Variant.AltIdent) to find the concrete specops opcode.
func Emit(steps []schedule.Step, g *ir.Graph) (specops.Code, error) {
	code := make(specops.Code, 0, len(steps))
	for i, step := range steps {
		bc, err := emitOne(g, step)
		if err != nil {
			return nil, fmt.Errorf("step %d (%#v): %w", i, step, err)
		}
		code = append(code, bc)
	}
	return code, nil
}

func emitOne(g *ir.Graph, step schedule.Step) (types.Bytecoder, error) {
	switch s := step.(type) {
	case schedule.Swap:
		if int(s.Depth) >= len(swapOpcodes) || s.Depth == 0 {
			return nil, fmt.Errorf("swap depth %d out of range [1,%d]", s.Depth, len(swapOpcodes)-1)
		}
		return swapOpcodes[s.Depth], nil

	case schedule.Dup:
		if int(s.Depth) >= len(dupOpcodes) || s.Depth == 0 {
			return nil, fmt.Errorf("dup depth %d out of range [1,%d]", s.Depth, len(dupOpcodes)-1)
		}
		return dupOpcodes[s.Depth], nil

	case schedule.Pop:
		return specops.POP, nil

	case schedule.Comp:
		ident := g.Nodes[s.ID].OpIdent
		if ident == "" {
			return nil, fmt.Errorf("no recorded op identifier for node %d", s.ID)
		}
		if s.UsingVariant {
			v := g.Variants[s.ID]
			if v == nil {
				return nil, fmt.Errorf("Comp(%d) usingVariant but node has no variant", s.ID)
			}
			ident = v.AltIdent
		}
		oc, ok := specops.OpcodeByIdent[ident]
		if !ok {
			return nil, fmt.Errorf("no specops opcode registered for op %q", ident)
		}
		return oc, nil

	default:
		return nil, fmt.Errorf("unsupported step type %T", step)
	}
}

