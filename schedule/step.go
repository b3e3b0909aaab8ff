// Package schedule implements the backwards state machine (C3), the action
// generator (C4), the A* search driver (C6), and a lightweight tracker
// (C8) that together turn an *ir.Graph into a forward instruction sequence.
package schedule

import "github.com/solidifylabs/balls/ir"

// A Step is one instruction of the eventual forward program. Only Swap
// carries a cost; Cost is the quantity A* minimizes.
type Step interface {
	Cost() int
	isStep()
}

// Swap corresponds to the target machine's SWAP<Depth>.
type Swap struct{ Depth uint8 }

func (Swap) Cost() int { return 1 }
func (Swap) isStep()   {}

// Dup corresponds to the target machine's DUP<Depth>.
type Dup struct{ Depth uint8 }

func (Dup) Cost() int { return 0 }
func (Dup) isStep()   {}

// Pop corresponds to the target machine's POP.
type Pop struct{}

func (Pop) Cost() int { return 0 }
func (Pop) isStep()   {}

// Comp emits the operation backing node ID into the forward program. If
// UsingVariant, the op's Variant.AltIdent/permutation was used instead of
// its primary spelling.
type Comp struct {
	ID           ir.NodeID
	UsingVariant bool
}

func (Comp) Cost() int { return 0 }
func (Comp) isStep()   {}

// TotalCost sums Cost() over every step, i.e. the total SWAP count.
func TotalCost(steps []Step) int {
	total := 0
	for _, s := range steps {
		total += s.Cost()
	}
	return total
}
