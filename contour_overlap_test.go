package boolean

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestContourOverlapAddOverlapAccumulates(t *testing.T) {
	ca := newTestSquareContour()
	cb := newTestSquareContour()
	co := newContourOverlap(ca, cb)
	test.T(t, len(co.runs), 0)

	r := &IntersectRange{CurveA: ca.edges[0].curve, CurveB: cb.edges[0].curve, RangeA: ParamRange{0, 1}, RangeB: ParamRange{0, 1}}
	co.AddOverlap(r, ca.edges[0], cb.edges[0])
	test.T(t, len(co.runs), 1)
	test.T(t, co.runs[0].edgeA, ca.edges[0])
	test.T(t, co.runs[0].edgeB, cb.edges[0])
}

func TestContourOverlapIsCompleteRequiresEveryEdge(t *testing.T) {
	ca := newTestSquareContour()
	cb := newTestSquareContour()
	co := newContourOverlap(ca, cb)

	full := ParamRange{0, 1}
	co.AddOverlap(&IntersectRange{CurveA: ca.edges[0].curve, CurveB: cb.edges[0].curve, RangeA: full, RangeB: full}, ca.edges[0], cb.edges[0])
	test.That(t, !co.IsComplete(), "only one of four edges covered is not complete")

	for i := 1; i < len(ca.edges); i++ {
		co.AddOverlap(&IntersectRange{CurveA: ca.edges[i].curve, CurveB: cb.edges[i].curve, RangeA: full, RangeB: full}, ca.edges[i], cb.edges[i])
	}
	test.That(t, co.IsComplete(), "every edge of both contours covered by a run is complete")
}

func TestContourOverlapEmptyIsNotComplete(t *testing.T) {
	ca := newTestSquareContour()
	cb := newTestSquareContour()
	co := newContourOverlap(ca, cb)
	test.That(t, !co.IsComplete(), "an overlap with no runs at all is not complete")
}

func TestEdgeOverlapStraightFullShareIsNotCrossing(t *testing.T) {
	// two colinear straight edges sharing their whole span touch but do
	// not cross: neither curve changes tangent direction across the run's
	// termini, so this is a tangential touch.
	ea := newEdge(NewLineCurve(Point{0, 0}, Point{10, 0}))
	eb := newEdge(NewLineCurve(Point{10, 0}, Point{0, 0}))
	r := &IntersectRange{CurveA: ea.curve, CurveB: eb.curve, RangeA: ParamRange{0, 1}, RangeB: ParamRange{0, 1}, Reversed: true}
	eo := EdgeOverlap{edgeA: ea, edgeB: eb, rng: r}
	test.That(t, !eo.IsCrossing(), "colinear straight edges sharing their full span do not cross")
}

func TestContourOverlapCompleteOverlapSynthesizesNoCrossings(t *testing.T) {
	ca := newTestSquareContour()
	cb := newTestSquareContour()
	co := newContourOverlap(ca, cb)
	full := ParamRange{0, 1}
	for i := range ca.edges {
		co.AddOverlap(&IntersectRange{CurveA: ca.edges[i].curve, CurveB: cb.edges[i].curve, RangeA: full, RangeB: full}, ca.edges[i], cb.edges[i])
	}
	co.AddCrossingsForRuns()
	for _, e := range ca.edges {
		test.That(t, !e.HasCrossings(), "a fully-complete overlap has no divergence point to synthesize crossings at")
	}
}
