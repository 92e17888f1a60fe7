package boolean

import "math"

// Curve is a single cubic Bezier segment: B(t) = (1-t)^3 P0 + 3(1-t)^2 t C1
// + 3(1-t) t^2 C2 + t^3 P3. The straight flag is set when the curve was
// built from a line segment (NewLineCurve), letting the solver and length
// routines take analytic shortcuts instead of the general cubic machinery.
type Curve struct {
	P0, C1, C2, P3 Point
	straight       bool
}

// NewCurve builds a general cubic Bezier from its four control points.
func NewCurve(p0, c1, c2, p3 Point) Curve {
	return Curve{P0: p0, C1: c1, C2: c2, P3: p3}
}

// NewLineCurve builds a cubic Bezier that is geometrically a straight line
// from start to end, with control points placed on the segment so that
// pointAt/bounds/etc. behave correctly without special-casing callers. The
// straight flag lets the intersection solver and length calculation use a
// cheaper analytic path.
func NewLineCurve(start, end Point) Curve {
	return Curve{
		P0:       start,
		C1:       start.Interpolate(end, 1.0/3.0),
		C2:       start.Interpolate(end, 2.0/3.0),
		P3:       end,
		straight: true,
	}
}

// IsStraightLine reports whether this curve was constructed from a line
// segment.
func (c Curve) IsStraightLine() bool { return c.straight }

// IsPoint reports whether all four control points coincide within
// PointEpsilon, i.e. the curve is degenerate.
func (c Curve) IsPoint() bool {
	return pointsClose(c.P0, c.C1) && pointsClose(c.P0, c.C2) && pointsClose(c.P0, c.P3)
}

// cubicBezierPos evaluates the cubic Bezier defined by p0,p1,p2,p3 at
// parameter t using the expanded Bernstein basis.
func cubicBezierPos(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := mt * mt * mt
	b := 3 * mt * mt * t
	c := 3 * mt * t * t
	d := t * t * t
	return Point{
		a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// cubicBezierDeriv evaluates B'(t), the tangent vector (not normalized).
func cubicBezierDeriv(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := 3 * mt * mt
	b := 6 * mt * t
	c := 3 * t * t
	return Point{
		a*(p1.X-p0.X) + b*(p2.X-p1.X) + c*(p3.X-p2.X),
		a*(p1.Y-p0.Y) + b*(p2.Y-p1.Y) + c*(p3.Y-p2.Y),
	}
}

// cubicBezierDeriv2 evaluates B''(t), the curvature vector.
func cubicBezierDeriv2(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a := 6 * mt
	b := 6 * t
	return Point{
		a*(p2.X-2*p1.X+p0.X) + b*(p3.X-2*p2.X+p1.X),
		a*(p2.Y-2*p1.Y+p0.Y) + b*(p3.Y-2*p2.Y+p1.Y),
	}
}

// PointAt evaluates the curve at parameter t using the expanded Bernstein
// form; PointAtSplit does the same via de Casteljau and also returns the
// split curves.
func (c Curve) PointAt(t float64) Point {
	return cubicBezierPos(c.P0, c.C1, c.C2, c.P3, t)
}

// TangentAt returns the (unnormalized) tangent vector at parameter t.
func (c Curve) TangentAt(t float64) Point {
	return cubicBezierDeriv(c.P0, c.C1, c.C2, c.P3, t)
}

// PointAtSplit evaluates the curve at t via de Casteljau subdivision and
// also returns the left and right curves produced by that same
// subdivision, saving the caller from re-running de Casteljau.
func (c Curve) PointAtSplit(t float64) (point Point, left, right Curve) {
	// de Casteljau: repeatedly lerp the control polygon toward t.
	p01 := c.P0.Interpolate(c.C1, t)
	p12 := c.C1.Interpolate(c.C2, t)
	p23 := c.C2.Interpolate(c.P3, t)
	p012 := p01.Interpolate(p12, t)
	p123 := p12.Interpolate(p23, t)
	p0123 := p012.Interpolate(p123, t)

	left = Curve{P0: c.P0, C1: p01, C2: p012, P3: p0123, straight: c.straight}
	right = Curve{P0: p0123, C1: p123, C2: p23, P3: c.P3, straight: c.straight}
	return p0123, left, right
}

// SplitAt splits the curve at parameter t, returning the curve before and
// after t.
func (c Curve) SplitAt(t float64) (left, right Curve) {
	_, left, right = c.PointAtSplit(t)
	return left, right
}

// SubcurveAt returns the portion of the curve over [r.Min, r.Max].
func (c Curve) SubcurveAt(r ParamRange) Curve {
	if r.Min <= 0 {
		_, left, _ := c.PointAtSplit(r.Max)
		return left
	}
	_, _, right := c.PointAtSplit(r.Min)
	if r.Max >= 1 {
		return right
	}
	// re-map r.Max from c's domain into right's domain, since right only
	// covers [r.Min, 1] of the original curve.
	remappedMax := (r.Max - r.Min) / (1 - r.Min)
	left, _ := right.SplitAt(remappedMax)
	return left
}

// SplitTriple splits the curve into the portion before r.Min, the portion
// within [r.Min, r.Max], and the portion after r.Max.
func (c Curve) SplitTriple(r ParamRange) (before, middle, after Curve) {
	_, before, rest := c.PointAtSplit(r.Min)
	remappedMax := (r.Max - r.Min) / (1 - r.Min)
	middle, after = rest.SplitAt(remappedMax)
	return before, middle, after
}

// Bounds returns the tight axis-aligned bounding box of the curve,
// accounting for the cubic's extrema (not just its control polygon).
func (c Curve) Bounds() Rect {
	r := EmptyRect().ExpandByPoint(c.P0).ExpandByPoint(c.P3)
	for _, root := range cubicExtrema(c.P0.X, c.C1.X, c.C2.X, c.P3.X) {
		r = r.ExpandByPoint(c.PointAt(root))
	}
	for _, root := range cubicExtrema(c.P0.Y, c.C1.Y, c.C2.Y, c.P3.Y) {
		r = r.ExpandByPoint(c.PointAt(root))
	}
	return r
}

// cubicExtrema returns the t in (0,1) at which the single-axis cubic
// Bezier with control values p0..p3 has a stationary derivative.
func cubicExtrema(p0, p1, p2, p3 float64) []float64 {
	// derivative of a cubic Bezier is a quadratic in t:
	// B'(t) = a t^2 + b t + c
	a := 3 * (-p0 + 3*p1 - 3*p2 + p3)
	b := 6 * (p0 - 2*p1 + p2)
	c := 3 * (p1 - p0)

	var roots []float64
	r0, r1 := solveQuadraticFormula(a, b, c)
	if !math.IsNaN(r0) && r0 > 0 && r0 < 1 {
		roots = append(roots, r0)
	}
	if !math.IsNaN(r1) && r1 > 0 && r1 < 1 {
		roots = append(roots, r1)
	}
	return roots
}

// lengthIntegrand returns |B'(t)| at t, the arc-length speed function.
func (c Curve) lengthIntegrand(t float64) float64 {
	return cubicBezierDeriv(c.P0, c.C1, c.C2, c.P3, t).Length()
}

// Length returns the total arc length of the curve via Gauss-Legendre
// quadrature of |B'(t)| over [0,1].
func (c Curve) Length() float64 {
	return c.LengthAt(1.0)
}

// LengthAt returns the arc length of the curve from 0 to t.
func (c Curve) LengthAt(t float64) float64 {
	if c.straight {
		return c.P0.Distance(c.PointAt(t))
	}
	return gaussLegendre7(c.lengthIntegrand, 0, t)
}

// Reversed returns the curve traversed in the opposite direction.
func (c Curve) Reversed() Curve {
	return Curve{P0: c.P3, C1: c.C2, C2: c.C1, P3: c.P0, straight: c.straight}
}

// Round snaps the curve's four control points to the rounding grid, for
// deterministic output when stitching paths built independently.
func (c Curve) Round() Curve {
	return Curve{
		P0:       c.P0.Round(),
		C1:       c.C1.Round(),
		C2:       c.C2.Round(),
		P3:       c.P3.Round(),
		straight: c.straight,
	}
}

// ToPath returns a single-segment Path describing this curve starting with
// a Move to P0.
func (c Curve) ToPath() Path {
	p := Path{{Kind: MoveTo, To: c.P0}}
	if c.straight {
		return append(p, PathElement{Kind: LineTo, To: c.P3})
	}
	return append(p, PathElement{Kind: CubeTo, C1: c.C1, C2: c.C2, To: c.P3})
}
