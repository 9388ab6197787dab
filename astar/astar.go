package astar

import (
	"fmt"

	"github.com/voxpath/voxpath/grid"
	"github.com/voxpath/voxpath/minheap"
	"github.com/voxpath/voxpath/seq"
)

// AStar is a reusable search session bound to one Graph. It owns the
// open-set heap and the reconstructed path buffer; the Graph is borrowed,
// not owned.
type AStar struct {
	graph   *grid.Graph
	open    *minheap.Heap[*grid.Node]
	path    *seq.Seq[*grid.Node]
	status  Status
	options Options
}

// New binds a search session to g. Returns ErrNilGraph for a nil graph.
func New(g *grid.Graph, opts ...Option) (*AStar, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &AStar{
		graph:   g,
		open:    minheap.New[*grid.Node]((*grid.Node).F),
		path:    seq.New[*grid.Node](),
		status:  Idle,
		options: cfg,
	}, nil
}

// Status reports the session state.
func (a *AStar) Status() Status { return a.status }

// Path returns the most recently found path, ordered start→goal inclusive.
// Empty if no search has succeeded since the last Reset.
func (a *AStar) Path() []*grid.Node {
	out := make([]*grid.Node, 0, a.path.Len())
	for i := 0; i < a.path.Len(); i++ {
		n, _ := a.path.Get(i)
		out = append(out, n)
	}

	return out
}

// Reset returns the session to Idle: clears every node's scratch state,
// drains the open-set and empties the path buffer. Search calls it
// implicitly, so repeated queries never see state from a prior run.
// Idempotent.
func (a *AStar) Reset() {
	a.graph.Reset()
	for !a.open.IsEmpty() {
		_, _ = a.open.PopMin()
	}
	a.path.Clear()
	a.status = Idle
}

// Estimate is the search heuristic: an estimate of the remaining cost
// between two cells under the given adjacency style. On unit-weight
// Manhattan grids it equals the true remaining cost.
//
// Manhattan: |Δx|+|Δy|+|Δz| (L1 distance).
// Diagonal:  (dx+dy+dz) − 2·min(dx,dy,dz), the L1 distance minus the savings
// of cutting across the block diagonal wherever all three axes still differ.
func Estimate(a, b grid.Coord, style grid.Style) int64 {
	dx := abs(a.X - b.X)
	dy := abs(a.Y - b.Y)
	dz := abs(a.Z - b.Z)

	if style == grid.Diagonal {
		m := dx
		if dy < m {
			m = dy
		}
		if dz < m {
			m = dz
		}

		return int64(dx + dy + dz - 2*m)
	}

	return int64(dx + dy + dz)
}

// Search finds the cheapest path from start to goal and stores it in the
// path buffer. An exhausted open-set with the goal unreached is a valid
// outcome: Search returns nil and Path stays empty.
//
// Returns grid.ErrCoordOutOfBounds for coordinates outside the grid and
// ErrBudgetExhausted when WithMaxExpansions cut the search short.
func (a *AStar) Search(start, goal grid.Coord) error {
	startNode, err := a.graph.At(start)
	if err != nil {
		return fmt.Errorf("astar: bad start: %w", err)
	}
	goalNode, err := a.graph.At(goal)
	if err != nil {
		return fmt.Errorf("astar: bad goal: %w", err)
	}

	a.Reset()
	a.status = Searching

	startNode.SetG(0)
	startNode.SetF(Estimate(start, goal, a.graph.Style()))
	if err = a.open.Push(startNode); err != nil {
		return err
	}

	expansions := 0
	for !a.open.IsEmpty() {
		current, popErr := a.open.PopMin()
		if popErr != nil {
			return popErr
		}

		// Goal test by node identity: coordinates are unique per node.
		if current == goalNode {
			a.backtrack(startNode, current)
			a.status = Done

			return nil
		}

		if a.options.MaxExpansions > 0 && expansions >= a.options.MaxExpansions {
			a.status = Done

			return fmt.Errorf("%w: stopped after %d expansions", ErrBudgetExhausted, expansions)
		}
		expansions++

		if err = a.expand(current, goal); err != nil {
			return err
		}
	}

	// Open-set exhausted without reaching the goal: no path exists.
	a.status = Done

	return nil
}

// expand relaxes every usable outgoing edge of current.
func (a *AStar) expand(current *grid.Node, goal grid.Coord) error {
	style := a.graph.Style()
	for _, e := range current.Edges() {
		// Weight 0 marks a transition into an impassable cell.
		if e.Weight() == 0 {
			continue
		}

		neighbour, err := a.graph.At(e.To())
		if err != nil {
			// Edges referencing out-of-graph coords would break the graph
			// invariant; surface it rather than skipping silently.
			return fmt.Errorf("astar: corrupt edge %s→%s: %w", current.Coord(), e.To(), err)
		}

		tentative := current.G() + e.Weight()
		if tentative >= neighbour.G() {
			continue
		}

		// Strictly better route to neighbour: record it.
		neighbour.SetCameFrom(current.Coord())
		neighbour.SetG(tentative)
		neighbour.SetF(tentative + Estimate(neighbour.Coord(), goal, style))

		if !a.open.Contains(neighbour) {
			if err = a.open.Push(neighbour); err != nil {
				return err
			}
		}
	}

	return nil
}

// backtrack rebuilds the path by walking came-from links goal→start,
// prepending each node so the buffer reads start→goal.
func (a *AStar) backtrack(start, current *grid.Node) {
	a.path.PushFront(current)
	for current != start {
		from, ok := current.CameFrom()
		if !ok {
			// Unreachable once the goal was popped with a finite g.
			return
		}
		current, _ = a.graph.At(from)
		a.path.PushFront(current)
	}
}

// abs returns |v| for ints.
func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
