package chess

import (
	"fmt"
	"sync"
)

// Edge is a line position on the (2W+1)x(2H+1) grid. Dots sit on even/even
// cells and box centres on odd/odd cells, so an edge has exactly one odd
// coordinate.
type Edge struct {
	X int
	Y int
}

func NewEdge(x, y int) Edge {
	return Edge{X: x, Y: y}
}

// Horizontal edges are the top and bottom sides of a box.
func (e Edge) Horizontal() bool {
	return e.X%2 == 1 && e.Y%2 == 0
}

// Vertical edges are the left and right sides of a box.
func (e Edge) Vertical() bool {
	return e.X%2 == 0 && e.Y%2 == 1
}

func (e Edge) Valid(size BoardSize) bool {
	if e.X < 0 || e.Y < 0 || e.X >= size.GridWidth() || e.Y >= size.GridHeight() {
		return false
	}
	return e.Horizontal() || e.Vertical()
}

func (e Edge) String() string {
	return fmt.Sprintf("(%d, %d)", e.X, e.Y)
}

// NearBoxes returns the boxes on either side of e that lie on the board.
func (e Edge) NearBoxes(size BoardSize) (nearBoxes []Box) {
	var candidates [2]Box
	if e.Horizontal() {
		candidates = [2]Box{{X: e.X, Y: e.Y - 1}, {X: e.X, Y: e.Y + 1}}
	} else {
		candidates = [2]Box{{X: e.X - 1, Y: e.Y}, {X: e.X + 1, Y: e.Y}}
	}

	for _, b := range candidates {
		if b.Valid(size) {
			nearBoxes = append(nearBoxes, b)
		}
	}
	return
}

var (
	edgesMu  sync.Mutex
	edgesMap = make(map[BoardSize][]Edge)
)

// Edges lists every structurally valid edge of the board, x outer and y inner.
// The returned slice is shared and must not be modified.
func Edges(size BoardSize) (edges []Edge) {
	edgesMu.Lock()
	defer edgesMu.Unlock()

	if res, c := edgesMap[size]; c {
		return res
	}

	edges = make([]Edge, 0, size.EdgesCount())
	for i := 0; i < size.GridWidth(); i++ {
		for j := 0; j < size.GridHeight(); j++ {
			if e := NewEdge(i, j); e.Horizontal() || e.Vertical() {
				edges = append(edges, e)
			}
		}
	}

	edgesMap[size] = edges
	return
}
