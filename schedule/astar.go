package schedule

import (
	"container/heap"
	"context"
	"encoding/binary"
	"fmt"
	"hash/maphash"

	"github.com/solidifylabs/balls/heuristic"
)

// MaxStackDepth is the default ceiling on Stack length during search; states
// that would exceed it are pruned rather than expanded.
const MaxStackDepth = 1024

// ctxCheckInterval bounds how often Search polls ctx.Done(), so cancellation
// latency stays small without making every expansion pay for a channel
// select.
const ctxCheckInterval = 1024

// Search runs a best-first (A*) search over m's state space, starting from
// m.InitialState(), and returns the forward instruction sequence. If tracker
// is non-nil its counters are updated along the way; tracker may be nil.
//
// The search's priority key is (score ascending, atEnd first, cost
// ascending), matching a Dijkstra/A* min-priority queue: score is the
// committed cost plus est.EstimateRemainingCost(state.TotalBlocked()), atEnd
// marks a fully scheduled state, cost is the number of Swap steps already
// committed on the path to that state.
//
// Machine actions append their steps in backwards (undo) order, so the steps
// of each transition are reversed when the path is unwound.
//
// ctx is checked periodically while the open set is expanded; a long search
// over a large function can be aborted this way without waiting for it to
// exhaust its search space.
func Search(ctx context.Context, m *Machine, maxStackDepth int, est heuristic.Estimator, tracker *Tracker) ([]Step, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := m.InitialState()
	if start.Done() {
		// Nothing to undo: the desired output stack already matches the
		// target input stack up to ordering.
		steps, err := m.FinalAlign(start, nil)
		if err != nil {
			return nil, err
		}
		for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
			steps[i], steps[j] = steps[j], steps[i]
		}
		return steps, nil
	}
	startHash := hashState(start)

	type explored struct {
		hasPredecessor bool
		predecessor    uint64
		steps          []Step
		cost           int
	}
	seen := map[uint64]explored{
		startHash: {cost: 0},
	}

	open := &openQueue{}
	heap.Init(open)
	heap.Push(open, &openItem{
		state: start,
		hash:  startHash,
		cost:  0,
		score: est.EstimateRemainingCost(start.TotalBlocked()),
	})

	var seq int
	nextSeq := func() int { seq++; return seq }

	for iter := 0; open.Len() > 0; iter++ {
		if iter%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("search cancelled after exploring %d states: %w", tracker.statesExploredOrZero(), err)
			}
		}

		item := heap.Pop(open).(*openItem)

		if e, ok := seen[item.hash]; ok && e.cost < item.cost {
			// A cheaper path to this state was found after item was queued.
			continue
		}
		if item.atEnd {
			var steps []Step
			h := item.hash
			for {
				e, ok := seen[h]
				if !ok || !e.hasPredecessor {
					break
				}
				for k := len(e.steps) - 1; k >= 0; k-- {
					steps = append(steps, e.steps[k])
				}
				h = e.predecessor
			}
			if tracker != nil {
				tracker.finalQueueSize = open.Len()
			}
			return steps, nil
		}

		if tracker != nil {
			tracker.StatesExplored++
		}

		for _, action := range m.Actions(item.state) {
			child := item.state.Clone()
			childSteps, atEnd, err := m.Apply(child, action, nil)
			if err != nil {
				// This branch's final alignment is infeasible; others may
				// still succeed.
				continue
			}
			if len(child.Stack) > maxStackDepth {
				continue
			}

			newCost := item.cost + TotalCost(childSteps)
			h := hashState(child)

			if e, ok := seen[h]; ok {
				if newCost >= e.cost {
					if tracker != nil {
						tracker.Collisions++
					}
					continue
				}
			}
			seen[h] = explored{hasPredecessor: true, predecessor: item.hash, steps: childSteps, cost: newCost}

			score := newCost + est.EstimateRemainingCost(child.TotalBlocked())
			heap.Push(open, &openItem{
				state: child,
				hash:  h,
				cost:  newCost,
				score: score,
				atEnd: atEnd,
				seq:   nextSeq(),
			})
		}
	}

	return nil, fmt.Errorf("%w: search space exhausted", ErrInfeasible)
}

// hashSeed is fixed once per process. Determinism is only required within a
// single Search call, never across runs or processes.
var hashSeed = maphash.MakeSeed()

func hashState(s *State) uint64 {
	var h maphash.Hash
	h.SetSeed(hashSeed)

	var buf [8]byte
	for _, id := range s.Stack {
		binary.LittleEndian.PutUint64(buf[:], uint64(id))
		h.Write(buf[:])
	}
	h.WriteByte(0xff)
	for _, b := range s.BlockedBy {
		if b == nil {
			h.WriteByte(0)
			continue
		}
		h.WriteByte(1)
		binary.LittleEndian.PutUint64(buf[:], uint64(*b))
		h.Write(buf[:])
	}
	return h.Sum64()
}

// openItem is one entry in the A* open set.
type openItem struct {
	state *State
	hash  uint64
	cost  int
	score int
	atEnd bool
	seq   int
}

// openQueue is a container/heap min-priority queue ordered by score
// ascending, then atEnd items first, then cost and seq ascending; seq breaks
// ties deterministically.
type openQueue []*openItem

func (q openQueue) Len() int { return len(q) }

func (q openQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.score != b.score {
		return a.score < b.score
	}
	if a.atEnd != b.atEnd {
		return a.atEnd
	}
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	return a.seq < b.seq
}

func (q openQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *openQueue) Push(x any) { *q = append(*q, x.(*openItem)) }

func (q *openQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
