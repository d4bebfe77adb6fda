package lattice

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph/simple"
)

// Coord addresses a basestation on the integer grid.
type Coord struct {
	X, Y int
}

// Less orders coordinates x-major, then y. Enumeration order everywhere
// in this package follows it.
func (c Coord) Less(o Coord) bool {
	if c.X != o.X {
		return c.X < o.X
	}

	return c.Y < o.Y
}

// String renders "(x,y)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Lattice is an undirected interference graph over coordinate-addressed
// cells. The zero value is not usable; construct with New or Honeycomb.
type Lattice struct {
	g   *simple.UndirectedGraph
	ids map[Coord]int64
	rev map[int64]Coord
}

// New returns an empty lattice.
func New() *Lattice {
	return &Lattice{
		g:   simple.NewUndirectedGraph(),
		ids: make(map[Coord]int64),
		rev: make(map[int64]Coord),
	}
}

// AddNode inserts the cell at c; adding an existing cell is a no-op.
func (l *Lattice) AddNode(c Coord) {
	if _, ok := l.ids[c]; ok {
		return
	}
	n := l.g.NewNode()
	l.g.AddNode(n)
	l.ids[c] = n.ID()
	l.rev[n.ID()] = c
}

// AddEdge marks u and v as interfering neighbors. Both endpoints must
// already be nodes; duplicate edges are no-ops.
func (l *Lattice) AddEdge(u, v Coord) error {
	if u == v {
		return fmt.Errorf("AddEdge(%v, %v): %w", u, v, ErrSelfEdge)
	}
	ui, ok := l.ids[u]
	if !ok {
		return fmt.Errorf("AddEdge: %v: %w", u, ErrMissingNode)
	}
	vi, ok := l.ids[v]
	if !ok {
		return fmt.Errorf("AddEdge: %v: %w", v, ErrMissingNode)
	}
	l.g.SetEdge(l.g.NewEdge(l.g.Node(ui), l.g.Node(vi)))

	return nil
}

// Has reports whether c is a cell of the lattice.
func (l *Lattice) Has(c Coord) bool {
	_, ok := l.ids[c]
	return ok
}

// HasEdge reports whether u and v are marked as neighbors.
func (l *Lattice) HasEdge(u, v Coord) bool {
	ui, ok := l.ids[u]
	if !ok {
		return false
	}
	vi, ok := l.ids[v]
	if !ok {
		return false
	}

	return l.g.HasEdgeBetween(ui, vi)
}

// NumNodes returns the cell count.
func (l *Lattice) NumNodes() int {
	return len(l.ids)
}

// NumEdges returns the interference-pair count.
func (l *Lattice) NumEdges() int {
	return l.g.Edges().Len()
}

// Degree returns the neighbor count of c (zero for absent cells).
func (l *Lattice) Degree(c Coord) int {
	id, ok := l.ids[c]
	if !ok {
		return 0
	}

	return l.g.From(id).Len()
}

// Nodes returns every cell in sorted coordinate order.
func (l *Lattice) Nodes() []Coord {
	out := make([]Coord, 0, len(l.ids))
	for c := range l.ids {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Neighbors returns the cells adjacent to c in sorted coordinate order.
func (l *Lattice) Neighbors(c Coord) []Coord {
	id, ok := l.ids[c]
	if !ok {
		return nil
	}
	it := l.g.From(id)
	out := make([]Coord, 0, it.Len())
	for it.Next() {
		out = append(out, l.rev[it.Node().ID()])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Less(out[j]) })

	return out
}

// Honeycomb builds the hexagonal cell layout of side length scale: a
// (2·scale+1)² triangular grid with vertical, horizontal, and diagonal
// neighbor edges, minus the two corner triangles that fall outside the
// hexagon. scale=1 yields the 7-cell flower with a degree-6 center.
//
// Returns ErrBadScale when scale < 1.
// Complexity: O(scale²) nodes and edges.
func Honeycomb(scale int) (*Lattice, error) {
	if scale < 1 {
		return nil, fmt.Errorf("Honeycomb(%d): %w", scale, ErrBadScale)
	}

	side := 2 * scale
	l := New()
	for x := 0; x <= side; x++ {
		for y := 0; y <= side; y++ {
			l.AddNode(Coord{x, y})
		}
	}

	// Triangular grid adjacency: vertical, horizontal, and one diagonal.
	for x := 0; x <= side; x++ {
		for y := 0; y < side; y++ {
			if err := l.AddEdge(Coord{x, y}, Coord{x, y + 1}); err != nil {
				return nil, err
			}
		}
	}
	for x := 0; x < side; x++ {
		for y := 0; y <= side; y++ {
			if err := l.AddEdge(Coord{x, y}, Coord{x + 1, y}); err != nil {
				return nil, err
			}
		}
	}
	for x := 0; x < side; x++ {
		for y := 0; y < side; y++ {
			if err := l.AddEdge(Coord{x, y}, Coord{x + 1, y + 1}); err != nil {
				return nil, err
			}
		}
	}

	// Trim the two corner triangles outside the hexagon.
	for j := 0; j < scale; j++ {
		for i := scale + 1 + j; i <= side; i++ {
			l.remove(Coord{i, j})
			l.remove(Coord{j, i})
		}
	}

	return l, nil
}

// remove drops the cell at c together with its incident edges.
func (l *Lattice) remove(c Coord) {
	id, ok := l.ids[c]
	if !ok {
		return
	}
	l.g.RemoveNode(id)
	delete(l.ids, c)
	delete(l.rev, id)
}
