package boolean

import "sort"

// Edge is one curve segment of a Contour together with its back-reference
// to the owning contour and the (parameter-sorted) crossings recorded
// against it by Graph.insertIntersections, grounded on FBContourEdge.h.
type Edge struct {
	curve     Curve
	contour   *Contour
	index     int
	crossings []*Crossing
}

func newEdge(curve Curve) *Edge {
	return &Edge{curve: curve}
}

// Curve returns the edge's underlying curve.
func (e *Edge) Curve() Curve { return e.curve }

// Next returns the following edge in the owning contour, wrapping past the
// last edge back to the first.
func (e *Edge) Next() *Edge {
	edges := e.contour.edges
	return edges[(e.index+1)%len(edges)]
}

// Previous returns the preceding edge in the owning contour, wrapping past
// the first edge to the last.
func (e *Edge) Previous() *Edge {
	edges := e.contour.edges
	n := len(edges)
	return edges[(e.index-1+n)%n]
}

// AddCrossing inserts c into the edge's crossing list in parameter order
// and links it back to this edge.
func (e *Edge) AddCrossing(c *Crossing) {
	c.edge = e
	i := sort.Search(len(e.crossings), func(i int) bool {
		return e.crossings[i].parameter > c.parameter
	})
	e.crossings = append(e.crossings, nil)
	copy(e.crossings[i+1:], e.crossings[i:])
	e.crossings[i] = c
	e.reindexCrossings()
}

// RemoveCrossing removes c from the edge's crossing list.
func (e *Edge) RemoveCrossing(c *Crossing) {
	for i, cr := range e.crossings {
		if cr == c {
			e.crossings = append(e.crossings[:i], e.crossings[i+1:]...)
			break
		}
	}
	e.reindexCrossings()
}

func (e *Edge) reindexCrossings() {
	for i, c := range e.crossings {
		c.index = i
	}
}

// RemoveAllCrossings clears every crossing recorded against this edge.
func (e *Edge) RemoveAllCrossings() { e.crossings = nil }

// HasCrossings reports whether any crossings are recorded against this edge.
func (e *Edge) HasCrossings() bool { return len(e.crossings) > 0 }

// FirstCrossing returns the crossing with the smallest parameter, or nil.
func (e *Edge) FirstCrossing() *Crossing {
	if len(e.crossings) == 0 {
		return nil
	}
	return e.crossings[0]
}

// LastCrossing returns the crossing with the largest parameter, or nil.
func (e *Edge) LastCrossing() *Crossing {
	if len(e.crossings) == 0 {
		return nil
	}
	return e.crossings[len(e.crossings)-1]
}

// Round snaps the edge's curve to the rounding grid.
func (e *Edge) Round() { e.curve = e.curve.Round() }
