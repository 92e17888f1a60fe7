package boolean

import "math"

// Contour is one closed subpath of a Graph: an ordered, cyclic sequence of
// edges. Grounded on FBBezierContour.h.
type Contour struct {
	owner       *Graph
	edges       []*Edge
	boundsCache *Rect
}

func newContour() *Contour {
	return &Contour{}
}

// AddEdge appends a new edge carrying curve to the contour.
func (ct *Contour) AddEdge(curve Curve) *Edge {
	e := newEdge(curve)
	e.contour = ct
	e.index = len(ct.edges)
	ct.edges = append(ct.edges, e)
	ct.boundsCache = nil
	return e
}

// Bounds returns the union of every edge's bounding box, cached until the
// contour is mutated.
func (ct *Contour) Bounds() Rect {
	if ct.boundsCache != nil {
		return *ct.boundsCache
	}
	r := EmptyRect()
	for _, e := range ct.edges {
		r = r.Union(e.curve.Bounds())
	}
	ct.boundsCache = &r
	return r
}

// HasCrossings reports whether any edge in the contour carries a crossing.
func (ct *Contour) HasCrossings() bool {
	for _, e := range ct.edges {
		if e.HasCrossings() {
			return true
		}
	}
	return false
}

// RepresentativePoint returns a point guaranteed to lie on the contour's
// boundary but, in practice, essentially never exactly at a crossing
// parameter. Used to classify whole non-crossing contours by containment.
func (ct *Contour) RepresentativePoint() Point {
	return ct.edges[0].curve.PointAt(0.5)
}

// Direction returns twice the signed area enclosed by the contour's
// endpoints (the shoelace sum): positive for counter-clockwise, negative
// for clockwise.
func (ct *Contour) Direction() float64 {
	area := 0.0
	for _, e := range ct.edges {
		p0, p3 := e.curve.P0, e.curve.P3
		area += p0.X*p3.Y - p3.X*p0.Y
	}
	return area
}

// IsClockwise reports whether the contour winds clockwise.
func (ct *Contour) IsClockwise() bool { return ct.Direction() < 0 }

// Reversed returns a new contour tracing the same boundary in the opposite
// direction, with each edge's curve reversed and the edge order flipped.
func (ct *Contour) Reversed() *Contour {
	rc := newContour()
	rc.owner = ct.owner
	for i := len(ct.edges) - 1; i >= 0; i-- {
		rc.AddEdge(ct.edges[i].curve.Reversed())
	}
	return rc
}

// MadeClockwiseIfNecessary returns ct unchanged if it already winds
// clockwise, otherwise its Reversed form.
func (ct *Contour) MadeClockwiseIfNecessary() *Contour {
	if ct.IsClockwise() {
		return ct
	}
	return ct.Reversed()
}

// ContainsPoint reports whether p lies within the region this contour
// alone bounds, via ray casting (even-odd crossing count) against the
// contour's edges. Degenerate rays (passing through a vertex, or running
// along an edge) are detected and retried at a perturbed angle, per
// FBBezierContour's containsPoint: retry-with-perturbation strategy.
func (ct *Contour) ContainsPoint(p Point) bool {
	if !ct.Bounds().Contains(p) {
		return false
	}
	for attempt := 0; attempt < 8; attempt++ {
		angle := float64(attempt) * 0.13734 // irrational-ish increment avoids hitting the same degeneracy twice
		if ok, count := ct.rayCrossingCount(p, angle); ok {
			return count%2 == 1
		}
	}
	return false
}

func (ct *Contour) rayCrossingCount(p Point, angle float64) (ok bool, count int) {
	b := ct.Bounds()
	diag := b.Max.Distance(b.Min) + p.Distance(b.Min) + p.Distance(b.Max) + 1
	dir := Point{math.Cos(angle), math.Sin(angle)}
	ray := NewLineCurve(p, p.Add(dir.Mul(diag*4)))
	for _, e := range ct.edges {
		points, ranges := IntersectCurves(ray, e.curve)
		if len(ranges) > 0 {
			return false, 0 // ray runs along an edge: ambiguous, retry
		}
		for _, it := range points {
			if it.ParamA <= Epsilon {
				return false, 0 // the query point itself sits on this edge: ambiguous, retry
			}
			if it.ParamB <= Epsilon || it.ParamB >= 1-Epsilon {
				return false, 0 // ray passes through a vertex: ambiguous, retry
			}
			count++
		}
	}
	return true, count
}

// MarkCrossingsAsEntryOrExit walks the contour's edges in order and, for
// every crossing against other, tests containment at a point strictly
// between that crossing and whichever comes next on its own edge (the
// next crossing, or else the edge's end) to decide whether the traversal
// is heading into or out of other's region. Each crossing is classified
// independently from a point guaranteed to lie on the just-departed
// segment, rather than from a single seed toggled forward, so an early
// crossing on the contour's first edge cannot throw off every
// classification after it. Grounded on FBBezierGraph's
// markCrossingsAsEntryOrExitWithBezierGraph:markInside:.
func (ct *Contour) MarkCrossingsAsEntryOrExit(other *Graph, markInside bool) {
	for _, e := range ct.edges {
		for _, cr := range e.crossings {
			probe := cr.RightCurve().PointAt(0.5)
			inside := other.ContainsPoint(probe)
			cr.entry = inside == markInside
		}
	}
}

// Round snaps every edge's curve to the rounding grid.
func (ct *Contour) Round() {
	for _, e := range ct.edges {
		e.Round()
	}
	ct.boundsCache = nil
}
