package boolean

// EdgeOverlap records one edge pair's coincident IntersectRange, the unit
// of work a ContourOverlap accumulates as IntersectCurves reports overlap
// ranges across every edge pair of two contours.
type EdgeOverlap struct {
	edgeA, edgeB *Edge
	rng          *IntersectRange
}

// ContourOverlap collects every coincident edge-pair range between one
// contour of graph A and one contour of graph B, so that boundary
// crossings can be synthesized once per run rather than naively per
// intersection candidate. Grounded on FBContourOverlap.h /
// FBEdgeOverlapRun.h; this implementation treats each edge pair as its own
// run rather than folding adjacent coincident edges into a single run
// (see DESIGN.md for the scoping rationale).
type ContourOverlap struct {
	contourA, contourB *Contour
	runs               []EdgeOverlap
}

func newContourOverlap(a, b *Contour) *ContourOverlap {
	return &ContourOverlap{contourA: a, contourB: b}
}

// AddOverlap records the coincident range r found between edges ea and eb.
func (co *ContourOverlap) AddOverlap(r *IntersectRange, ea, eb *Edge) {
	co.runs = append(co.runs, EdgeOverlap{edgeA: ea, edgeB: eb, rng: r})
}

// IsComplete reports whether every edge of both contours participates in a
// run that covers the edge's entire span, i.e. the two contours are
// entirely coincident with no terminus anywhere at which a run stops
// short of an edge's own start or end. A run that only partially covers
// its edge still has a genuine divergence point inside that edge, so
// AtStartOfCurveA/AtStopOfCurveA/AtStartOfCurveB/AtStopOfCurveB must all
// hold before the edge counts as fully consumed.
func (co *ContourOverlap) IsComplete() bool {
	if len(co.runs) == 0 {
		return false
	}
	seenA := map[*Edge]bool{}
	seenB := map[*Edge]bool{}
	for _, run := range co.runs {
		r := run.rng
		if !r.AtStartOfCurveA() || !r.AtStopOfCurveA() || !r.AtStartOfCurveB() || !r.AtStopOfCurveB() {
			return false
		}
		seenA[run.edgeA] = true
		seenB[run.edgeB] = true
	}
	return len(seenA) == len(co.contourA.edges) && len(seenB) == len(co.contourB.edges)
}

// AddCrossingsForRuns synthesizes a linked pair of crossings at the start
// and end of every recorded run that is a true crossing rather than a
// tangential touch (see IsCrossing), so the stitch walk can enter and leave
// a coincident overlap exactly like any ordinary crossing. A ContourOverlap
// whose runs already cover every edge of both contours (IsComplete) is two
// fully coincident contours with no terminus at which the regions diverge,
// so it synthesizes no crossings at all. Grounded on FBContourOverlap.h's
// isComplete gating addCrossings per FBEdgeOverlapRun.isCrossing.
func (co *ContourOverlap) AddCrossingsForRuns() {
	if co.IsComplete() {
		return
	}
	for _, run := range co.runs {
		if !run.IsCrossing() {
			continue
		}
		r := run.rng

		// CurveALeft/CurveARight split CurveA at RangeA.Min/Max; their
		// shared boundary points are exactly the overlap's termini on A.
		// CurveBLeft/CurveBRight give the same on B, always indexed by
		// RangeB.Min/Max regardless of Reversed.
		atMinA, atMaxA := r.CurveALeft().P3, r.CurveARight().P0
		atMinB, atMaxB := r.CurveBLeft().P3, r.CurveBRight().P0

		startA, endA := r.RangeA.Min, r.RangeA.Max
		startPointA, endPointA := atMinA, atMaxA

		startB, endB := r.RangeB.Min, r.RangeB.Max
		startPointB, endPointB := atMinB, atMaxB
		if r.Reversed {
			startB, endB = endB, startB
			startPointB, endPointB = endPointB, startPointB
		}

		// the overlap's midpoint must fall on both curves, or the
		// recorded range isn't the coincident run it claims to be.
		mid := r.MiddleIntersection()
		if !pointsClose(mid.Location, run.edgeB.curve.PointAt(mid.ParamB)) {
			panic("boolean: overlap run midpoint does not lie on both edges")
		}

		ca1 := newCrossing(startA, startPointA)
		cb1 := newCrossing(startB, startPointB)
		linkCrossings(ca1, cb1)
		run.edgeA.AddCrossing(ca1)
		run.edgeB.AddCrossing(cb1)

		ca2 := newCrossing(endA, endPointA)
		cb2 := newCrossing(endB, endPointB)
		linkCrossings(ca2, cb2)
		run.edgeA.AddCrossing(ca2)
		run.edgeB.AddCrossing(cb2)
	}
}

// IsCrossing reports whether the regions genuinely cross at this run's two
// termini, as opposed to merely touching tangentially along the overlap
// before retreating back the way they came: the tangent pairs just outside
// the overlap must disagree in orientation (tangentsCross) at both the
// start and the end of the run.
func (eo EdgeOverlap) IsCrossing() bool {
	r := eo.rng
	startA, endA := r.RangeA.Min, r.RangeA.Max
	startB, endB := r.RangeB.Min, r.RangeB.Max
	if r.Reversed {
		startB, endB = endB, startB
	}
	crossesAt := func(ta, tb float64) bool {
		t1 := [2]Point{tangentNear(eo.edgeA.curve, ta, -1), tangentNear(eo.edgeA.curve, ta, 1)}
		t2 := [2]Point{tangentNear(eo.edgeB.curve, tb, -1), tangentNear(eo.edgeB.curve, tb, 1)}
		return tangentsCross(t1, t2)
	}
	return crossesAt(startA, startB) && crossesAt(endA, endB)
}
