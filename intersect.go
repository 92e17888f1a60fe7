package boolean

import "math"

// maxSolverDepth bounds the fat-line clipping recursion so that every curve
// pair terminates in bounded work.
const maxSolverDepth = 39

// convergedPlaces is the number of decimal places both parameter ranges
// must agree to before a clip iteration is considered to have located a
// single intersection point.
const convergedPlaces = 9

// Intersection is one intersection point between two curves, found by
// IntersectCurves. ParamA and ParamB only make sense paired with whichever
// curve was passed as a/b to the call that produced it; Edge/Crossing
// re-derive the parameter relevant to each side.
type Intersection struct {
	Location       Point
	ParamA, ParamB float64
	Tangent        bool
}

// snapParam snaps a parameter within Epsilon of 0 or 1 to exactly 0 or 1,
// so that intersections located at curve endpoints compare equal.
func snapParam(t float64) float64 {
	if valuesClose(t, 0) {
		return 0
	}
	if valuesClose(t, 1) {
		return 1
	}
	return t
}

func newIntersection(location Point, ta, tb float64, tangent bool) Intersection {
	return Intersection{Location: location, ParamA: snapParam(ta), ParamB: snapParam(tb), Tangent: tangent}
}

// IntersectRange represents a maximal coincident overlap between a
// sub-range of curve A and a sub-range of curve B, recovered when the fat
// line clip stops shrinking because the curves run along each other. Left
// and right subcurve splits and the midpoint intersection are computed
// lazily and cached, mirroring FBBezierIntersectRange's lazy
// curve1LeftBezier/curve1RightBezier/middleIntersection accessors.
type IntersectRange struct {
	CurveA, CurveB Curve
	RangeA, RangeB ParamRange
	Reversed       bool

	leftA, rightA *Curve
	leftB, rightB *Curve
	middle        *Intersection
}

func newIntersectRange(a Curve, rangeA ParamRange, b Curve, rangeB ParamRange, reversed bool) *IntersectRange {
	return &IntersectRange{CurveA: a, RangeA: rangeA, CurveB: b, RangeB: rangeB, Reversed: reversed}
}

// CurveALeft returns the portion of CurveA before RangeA.Min.
func (r *IntersectRange) CurveALeft() Curve {
	if r.leftA == nil {
		l := r.CurveA.SubcurveAt(ParamRange{0, r.RangeA.Min})
		r.leftA = &l
	}
	return *r.leftA
}

// CurveARight returns the portion of CurveA after RangeA.Max, re-expressed
// in that portion's own [0,1] domain.
func (r *IntersectRange) CurveARight() Curve {
	if r.rightA == nil {
		rc := r.CurveA.SubcurveAt(ParamRange{r.RangeA.Max, 1})
		r.rightA = &rc
	}
	return *r.rightA
}

// CurveBLeft returns the portion of CurveB before RangeB.Min.
func (r *IntersectRange) CurveBLeft() Curve {
	if r.leftB == nil {
		l := r.CurveB.SubcurveAt(ParamRange{0, r.RangeB.Min})
		r.leftB = &l
	}
	return *r.leftB
}

// CurveBRight returns the portion of CurveB after RangeB.Max.
func (r *IntersectRange) CurveBRight() Curve {
	if r.rightB == nil {
		rc := r.CurveB.SubcurveAt(ParamRange{r.RangeB.Max, 1})
		r.rightB = &rc
	}
	return *r.rightB
}

// MiddleIntersection returns the (synthetic) intersection at the midpoint
// of the overlap range, used when a run needs a representative point.
func (r *IntersectRange) MiddleIntersection() Intersection {
	if r.middle == nil {
		ta, tb := r.RangeA.Average(), r.RangeB.Average()
		mi := newIntersection(r.CurveA.PointAt(ta), ta, tb, true)
		r.middle = &mi
	}
	return *r.middle
}

// AtStartOfCurveA reports whether the overlap begins at CurveA's start.
func (r *IntersectRange) AtStartOfCurveA() bool { return valuesClose(r.RangeA.Min, 0) }

// AtStopOfCurveA reports whether the overlap ends at CurveA's end.
func (r *IntersectRange) AtStopOfCurveA() bool { return valuesClose(r.RangeA.Max, 1) }

// AtStartOfCurveB reports whether the overlap begins at CurveB's start.
func (r *IntersectRange) AtStartOfCurveB() bool { return valuesClose(r.RangeB.Min, 0) }

// AtStopOfCurveB reports whether the overlap ends at CurveB's end.
func (r *IntersectRange) AtStopOfCurveB() bool { return valuesClose(r.RangeB.Max, 1) }

// IntersectCurves finds every intersection and coincident-overlap range
// between curves a and b using iterative fat-line Bezier clipping. Discrete
// intersection points and overlap ranges are mutually exclusive outcomes
// for any one clipping branch, but a curve pair can produce any mix of both
// across different branches.
func IntersectCurves(a, b Curve) ([]Intersection, []*IntersectRange) {
	if a.IsPoint() && b.IsPoint() {
		if pointsClose(a.P0, b.P0) {
			return []Intersection{newIntersection(a.P0, 0, 0, true)}, nil
		}
		return nil, nil
	}
	if a.IsPoint() {
		if t, ok := findParamForPoint(b, a.P0); ok {
			return []Intersection{newIntersection(a.P0, 0, t, true)}, nil
		}
		return nil, nil
	}
	if b.IsPoint() {
		if t, ok := findParamForPoint(a, b.P0); ok {
			return []Intersection{newIntersection(b.P0, t, 0, true)}, nil
		}
		return nil, nil
	}
	if !a.Bounds().Overlaps(b.Bounds()) {
		return nil, nil
	}
	if a.straight && b.straight {
		return lineLineIntersect(a, b)
	}

	points, ranges := clipRecursive(a, ParamRange{0, 1}, b, ParamRange{0, 1}, 0)
	return dedupeIntersections(points), ranges
}

// findParamForPoint locates the parameter at which curve passes through
// point, by coarse sampling followed by a few bisection refinements on the
// squared-distance derivative's sign change. Returns ok=false if point does
// not lie on curve within PointEpsilon.
func findParamForPoint(curve Curve, point Point) (float64, bool) {
	const samples = 64
	bestT, bestD := 0.0, math.Inf(1)
	for i := 0; i <= samples; i++ {
		t := float64(i) / samples
		d := curve.PointAt(t).Distance(point)
		if d < bestD {
			bestD = d
			bestT = t
		}
	}
	lo := math.Max(0, bestT-1.0/samples)
	hi := math.Min(1, bestT+1.0/samples)
	for i := 0; i < 40; i++ {
		mid := (lo + hi) / 2
		dLo := curve.PointAt(math.Max(0, mid-1e-6)).Distance(point)
		dHi := curve.PointAt(math.Min(1, mid+1e-6)).Distance(point)
		if dLo < dHi {
			hi = mid
		} else {
			lo = mid
		}
	}
	t := (lo + hi) / 2
	if curve.PointAt(t).Distance(point) < PointEpsilon {
		return t, true
	}
	return 0, false
}

// lineLineIntersect analytically solves the line/line special case,
// including the coincident (collinear overlap) case.
func lineLineIntersect(a, b Curve) ([]Intersection, []*IntersectRange) {
	a0, a1 := a.P0, a.P3
	b0, b1 := b.P0, b.P3
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	div := da.PerpDot(db)
	if !valuesClose(div, 0) {
		ta := db.PerpDot(a0.Sub(b0)) / div
		tb := da.PerpDot(a0.Sub(b0)) / div
		if inUnit(ta) && inUnit(tb) {
			return []Intersection{newIntersection(a0.Interpolate(a1, ta), ta, tb, false)}, nil
		}
		return nil, nil
	}
	// parallel; coincident only if B's endpoints lie on A's line
	if !valuesClose(distancePointToLine(b0, a0, a1), 0) {
		return nil, nil
	}
	// project onto A's direction to find the overlapping parameter range
	lenA := da.Length()
	if lenA < Epsilon {
		return nil, nil
	}
	dir := da.Normalize()
	proj := func(p Point) float64 { return p.Sub(a0).Dot(dir) / lenA }
	ta0, ta1 := proj(b0), proj(b1)
	reversed := ta0 > ta1
	if reversed {
		ta0, ta1 = ta1, ta0
	}
	lo := math.Max(0, ta0)
	hi := math.Min(1, ta1)
	if hi-lo < Epsilon {
		return nil, nil
	}
	// corresponding range on B
	tb0 := (lo - ta0) / (ta1 - ta0)
	tb1 := (hi - ta0) / (ta1 - ta0)
	if reversed {
		tb0, tb1 = 1-tb0, 1-tb1
	}
	rangeB := ParamRange{math.Min(tb0, tb1), math.Max(tb0, tb1)}
	return nil, []*IntersectRange{newIntersectRange(a, ParamRange{lo, hi}, b, rangeB, reversed)}
}

func inUnit(t float64) bool {
	return t >= -Epsilon && t <= 1+Epsilon
}

// hullPoint is a (parameter, signed-distance) sample of a curve's distance
// Bezier against another curve's fat line.
type hullPoint struct{ t, d float64 }

// convexHull returns the convex hull of pts, which must already be sorted
// ascending by t (true of the four control-point samples of a cubic).
func convexHull(pts []hullPoint) []hullPoint {
	cross := func(o, a, b hullPoint) float64 {
		return (a.t-o.t)*(b.d-o.d) - (a.d-o.d)*(b.t-o.t)
	}
	lower := make([]hullPoint, 0, len(pts))
	for _, p := range pts {
		for len(lower) >= 2 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	upper := make([]hullPoint, 0, len(pts))
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}

// fatLineOf returns the baseline (through the curve's endpoints) and the
// min/max perpendicular distance of the curve's own control points from
// that baseline, the fat line's width.
func fatLineOf(c Curve) (base0, base1 Point, dmin, dmax float64) {
	base0, base1 = c.P0, c.P3
	if pointsClose(base0, base1) {
		// degenerate baseline (closed loop control curve): fall back to
		// the tangent direction at the start so the line is well-defined.
		base1 = base0.Add(c.TangentAt(0))
		if pointsClose(base0, base1) {
			base1 = base0.Add(Point{1, 0})
		}
	}
	d1 := distancePointToLine(c.C1, base0, base1)
	d2 := distancePointToLine(c.C2, base0, base1)
	dmin = math.Min(0, math.Min(d1, d2))
	dmax = math.Max(0, math.Max(d1, d2))
	return base0, base1, dmin, dmax
}

// fatLineClip clips curve's own [0,1] parameter domain to the sub-range
// whose distance-Bezier (control values = curve's own control points'
// distance from base0-base1) stays within [dmin,dmax]. Returns ok=false if
// the whole curve lies outside the band.
func fatLineClip(curve Curve, base0, base1 Point, dmin, dmax float64) (ParamRange, bool) {
	pts := []hullPoint{
		{0, distancePointToLine(curve.P0, base0, base1)},
		{1.0 / 3.0, distancePointToLine(curve.C1, base0, base1)},
		{2.0 / 3.0, distancePointToLine(curve.C2, base0, base1)},
		{1, distancePointToLine(curve.P3, base0, base1)},
	}
	hull := convexHull(pts)

	tl, tu := math.Inf(1), math.Inf(-1)
	update := func(t float64) {
		if t < tl {
			tl = t
		}
		if t > tu {
			tu = t
		}
	}
	n := len(hull)
	for i := 0; i < n; i++ {
		p0 := hull[i]
		p1 := hull[(i+1)%n]
		if p0.d >= dmin-Epsilon && p0.d <= dmax+Epsilon {
			update(p0.t)
		}
		if valuesClose(p1.d, p0.d) {
			continue
		}
		for _, level := range [2]float64{dmin, dmax} {
			if (p0.d-level)*(p1.d-level) < 0 {
				frac := (level - p0.d) / (p1.d - p0.d)
				update(p0.t + frac*(p1.t-p0.t))
			}
		}
	}
	if tl > tu {
		return ParamRange{}, false
	}
	return ParamRange{math.Max(0, tl), math.Min(1, tu)}, true
}

// curvesCoincide reports whether two curves describe (within PointEpsilon)
// the same geometric segment, forward or reversed. Used to distinguish a
// true overlap range from a clip that merely stalled.
func curvesCoincide(a, b Curve) bool {
	if pointsClose(a.P0, b.P0) && pointsClose(a.C1, b.C1) && pointsClose(a.C2, b.C2) && pointsClose(a.P3, b.P3) {
		return true
	}
	br := b.Reversed()
	return pointsClose(a.P0, br.P0) && pointsClose(a.C1, br.C1) && pointsClose(a.C2, br.C2) && pointsClose(a.P3, br.P3)
}

// isTangentIntersection reports whether curves a and b merely touch rather
// than cross at parameters ta, tb: their tangents are parallel.
func isTangentIntersection(a Curve, ta float64, b Curve, tb float64) bool {
	ta_ := a.TangentAt(ta).Normalize()
	tb_ := b.TangentAt(tb).Normalize()
	return math.Abs(ta_.PerpDot(tb_)) < 1e-6
}

// clipRecursive is the iterative fat-line clip loop, implemented
// recursively to express the bisection branches cleanly. depth is bounded
// by maxSolverDepth.
func clipRecursive(a Curve, rA ParamRange, b Curve, rB ParamRange, depth int) ([]Intersection, []*IntersectRange) {
	if depth > maxSolverDepth {
		// non-convergent branch: conservatively treat as no intersection.
		return nil, nil
	}

	ca := a.SubcurveAt(rA)
	cb := b.SubcurveAt(rB)
	if !ca.Bounds().Overlaps(cb.Bounds()) {
		return nil, nil
	}

	base0, base1, dmin, dmax := fatLineOf(cb)
	clipA, ok := fatLineClip(ca, base0, base1, dmin, dmax)
	if !ok {
		return nil, nil
	}
	newRA := ParamRange{rA.ScaleNormalizedValue(clipA.Min), rA.ScaleNormalizedValue(clipA.Max)}

	ca2 := a.SubcurveAt(newRA)
	base0b, base1b, dminb, dmaxb := fatLineOf(ca2)
	clipB, ok := fatLineClip(cb, base0b, base1b, dminb, dmaxb)
	if !ok {
		return nil, nil
	}
	newRB := ParamRange{rB.ScaleNormalizedValue(clipB.Min), rB.ScaleNormalizedValue(clipB.Max)}

	if newRA.HasConverged(convergedPlaces) && newRB.HasConverged(convergedPlaces) {
		ta, tb := newRA.Average(), newRB.Average()
		tangent := isTangentIntersection(a, ta, b, tb)
		return []Intersection{newIntersection(a.PointAt(ta), ta, tb, tangent)}, nil
	}

	shrinkA := 1.0
	if rA.Size() > Epsilon {
		shrinkA = newRA.Size() / rA.Size()
	}
	shrinkB := 1.0
	if rB.Size() > Epsilon {
		shrinkB = newRB.Size() / rB.Size()
	}

	if shrinkA > 0.8 && shrinkB > 0.8 {
		if curvesCoincide(a.SubcurveAt(newRA), b.SubcurveAt(newRB)) {
			mid := a.TangentAt(newRA.Average())
			reversed := mid.Dot(b.TangentAt(newRB.Average())) < 0
			return nil, []*IntersectRange{newIntersectRange(a, newRA, b, newRB, reversed)}
		}
		var pts []Intersection
		var ranges []*IntersectRange
		if newRA.Size() >= newRB.Size() {
			mid := newRA.Average()
			p1, r1 := clipRecursive(a, ParamRange{newRA.Min, mid}, b, newRB, depth+1)
			p2, r2 := clipRecursive(a, ParamRange{mid, newRA.Max}, b, newRB, depth+1)
			pts = append(append(pts, p1...), p2...)
			ranges = append(append(ranges, r1...), r2...)
		} else {
			mid := newRB.Average()
			p1, r1 := clipRecursive(a, newRA, b, ParamRange{newRB.Min, mid}, depth+1)
			p2, r2 := clipRecursive(a, newRA, b, ParamRange{mid, newRB.Max}, depth+1)
			pts = append(append(pts, p1...), p2...)
			ranges = append(append(ranges, r1...), r2...)
		}
		return pts, ranges
	}

	return clipRecursive(a, newRA, b, newRB, depth+1)
}

// dedupeIntersections collapses intersections that are the same location
// up to PointEpsilon, which can arise when bisection branches converge on
// a shared endpoint.
func dedupeIntersections(in []Intersection) []Intersection {
	out := make([]Intersection, 0, len(in))
	for _, z := range in {
		dup := false
		for _, o := range out {
			if pointsClose(z.Location, o.Location) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, z)
		}
	}
	return out
}
