package boolean

import (
	"testing"

	"github.com/tdewolff/test"
)

func newTestSquareContour() *Contour {
	ct := newContour()
	ct.AddEdge(NewLineCurve(Point{0, 0}, Point{10, 0}))
	ct.AddEdge(NewLineCurve(Point{10, 0}, Point{10, 10}))
	ct.AddEdge(NewLineCurve(Point{10, 10}, Point{0, 10}))
	ct.AddEdge(NewLineCurve(Point{0, 10}, Point{0, 0}))
	return ct
}

func TestEdgeNextPreviousWrap(t *testing.T) {
	ct := newTestSquareContour()
	e0 := ct.edges[0]
	test.T(t, e0.Next(), ct.edges[1])
	test.T(t, e0.Previous(), ct.edges[3])
	test.T(t, ct.edges[3].Next(), e0)
}

func TestEdgeAddCrossingSortsByParameter(t *testing.T) {
	e := newEdge(NewLineCurve(Point{0, 0}, Point{10, 0}))
	c1 := newCrossing(0.8, Point{8, 0})
	c2 := newCrossing(0.2, Point{2, 0})
	c3 := newCrossing(0.5, Point{5, 0})
	e.AddCrossing(c1)
	e.AddCrossing(c2)
	e.AddCrossing(c3)

	test.T(t, len(e.crossings), 3)
	test.Float(t, e.crossings[0].parameter, 0.2)
	test.Float(t, e.crossings[1].parameter, 0.5)
	test.Float(t, e.crossings[2].parameter, 0.8)
	// reindexCrossings keeps each crossing's index matching its position.
	for i, c := range e.crossings {
		test.T(t, c.index, i)
	}
}

func TestEdgeRemoveCrossing(t *testing.T) {
	e := newEdge(NewLineCurve(Point{0, 0}, Point{10, 0}))
	c1 := newCrossing(0.2, Point{2, 0})
	c2 := newCrossing(0.8, Point{8, 0})
	e.AddCrossing(c1)
	e.AddCrossing(c2)

	e.RemoveCrossing(c1)
	test.T(t, len(e.crossings), 1)
	test.T(t, e.crossings[0], c2)
	test.T(t, e.crossings[0].index, 0)
}

func TestEdgeRemoveAllCrossings(t *testing.T) {
	e := newEdge(NewLineCurve(Point{0, 0}, Point{10, 0}))
	e.AddCrossing(newCrossing(0.5, Point{5, 0}))
	test.That(t, e.HasCrossings(), "edge has a crossing after AddCrossing")
	e.RemoveAllCrossings()
	test.That(t, !e.HasCrossings(), "edge has no crossings after RemoveAllCrossings")
}

func TestEdgeFirstLastCrossing(t *testing.T) {
	e := newEdge(NewLineCurve(Point{0, 0}, Point{10, 0}))
	test.T(t, e.FirstCrossing(), (*Crossing)(nil))
	test.T(t, e.LastCrossing(), (*Crossing)(nil))

	c1 := newCrossing(0.2, Point{2, 0})
	c2 := newCrossing(0.8, Point{8, 0})
	e.AddCrossing(c2)
	e.AddCrossing(c1)
	test.T(t, e.FirstCrossing(), c1)
	test.T(t, e.LastCrossing(), c2)
}

func TestEdgeRound(t *testing.T) {
	e := newEdge(NewLineCurve(Point{0.00049, 0}, Point{10, 0}))
	e.Round()
	test.Float(t, e.curve.P0.X, 0.0)
}
