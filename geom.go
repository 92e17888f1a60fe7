package boolean

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance below which two scalar values are considered equal.
var Epsilon = 1e-10

// PointEpsilon is the tolerance below which two points are considered the
// same location. It is looser than Epsilon because point closeness is used
// to deduplicate intersections recovered from an iterative solver rather
// than to compare exact analytic values.
var PointEpsilon = 1e-7

// roundingGrid is the snap grid used by Curve.Round and Contour.Round to
// make stitched output deterministic across independently rounded inputs.
const roundingGrid = 1e-3

// valuesClose reports whether a and b differ by less than the default
// tolerance Epsilon.
func valuesClose(a, b float64) bool {
	return valuesCloseWithin(a, b, Epsilon)
}

// valuesCloseWithin reports whether a and b differ by less than threshold.
func valuesCloseWithin(a, b, threshold float64) bool {
	return math.Abs(a-b) < threshold
}

// Point is a location or vector in the plane.
type Point struct {
	X, Y float64
}

// pointsClose reports whether p and q are within PointEpsilon of each other,
// componentwise.
func pointsClose(p, q Point) bool {
	return pointsCloseWithin(p, q, PointEpsilon)
}

func pointsCloseWithin(p, q Point, threshold float64) bool {
	return valuesCloseWithin(p.X, q.X, threshold) && valuesCloseWithin(p.Y, q.Y, threshold)
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by f.
func (p Point) Mul(f float64) Point { return Point{p.X * f, p.Y * f} }

// Div returns p divided by f.
func (p Point) Div(f float64) Point { return Point{p.X / f, p.Y / f} }

// Neg returns -p.
func (p Point) Neg() Point { return Point{-p.X, -p.Y} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// PerpDot returns the perpendicular (2D cross) product of p and q: zero when
// aligned, +|p||q| when q is a quarter turn counter-clockwise from p and
// -|p||q| when it is a quarter turn clockwise.
func (p Point) PerpDot(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the Euclidean length of p treated as a vector from the origin.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Distance returns the distance between p and q.
func (p Point) Distance(q Point) float64 { return p.Sub(q).Length() }

// Normalize returns p scaled to unit length, or the zero point if p is zero.
func (p Point) Normalize() Point {
	d := p.Length()
	if d < Epsilon {
		return Point{}
	}
	return Point{p.X / d, p.Y / d}
}

// Interpolate returns the point on the line PQ at parameter t (t=0 is p, t=1 is q).
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

// Midpoint returns the point halfway between p and q.
func (p Point) Midpoint(q Point) Point {
	return p.Interpolate(q, 0.5)
}

// Rotate90CW rotates the vector OP 90 degrees clockwise.
func (p Point) Rotate90CW() Point { return Point{p.Y, -p.X} }

// Rotate90CCW rotates the vector OP 90 degrees counter-clockwise.
func (p Point) Rotate90CCW() Point { return Point{-p.Y, p.X} }

// Equals reports whether p and q are the same location within PointEpsilon.
func (p Point) Equals(q Point) bool { return pointsClose(p, q) }

// IsZero reports whether p is exactly the origin.
func (p Point) IsZero() bool { return p.X == 0 && p.Y == 0 }

// Round snaps p to the rounding grid, for deterministic stitching output.
func (p Point) Round() Point {
	return Point{
		math.Round(p.X/roundingGrid) * roundingGrid,
		math.Round(p.Y/roundingGrid) * roundingGrid,
	}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// polarAngle returns the angle of p from the origin, normalized to [0, 2*Pi).
func polarAngle(p Point) float64 {
	return angleNorm(math.Atan2(p.Y, p.X))
}

// angleNorm normalizes theta into [0, 2*Pi).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2*math.Pi)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}

// lineNormal returns a unit vector perpendicular to the line from start to end.
func lineNormal(start, end Point) Point {
	return end.Sub(start).Normalize().Rotate90CW()
}

// distancePointToLine returns the signed distance of point from the
// (infinite) line through lineStart and lineEnd. Positive is to the right
// of the line's direction.
func distancePointToLine(point, lineStart, lineEnd Point) float64 {
	normal := lineNormal(lineStart, lineEnd)
	return point.Sub(lineStart).Dot(normal)
}

// Rect is an axis-aligned bounding box.
type Rect struct {
	Min, Max Point
}

// EmptyRect returns a rectangle that contains no points; use ExpandByPoint
// or Union to grow it.
func EmptyRect() Rect {
	return Rect{
		Min: Point{math.Inf(1), math.Inf(1)},
		Max: Point{math.Inf(-1), math.Inf(-1)},
	}
}

// IsEmpty reports whether r contains no points.
func (r Rect) IsEmpty() bool {
	return r.Max.X < r.Min.X || r.Max.Y < r.Min.Y
}

// ExpandByPoint returns r grown to include p.
func (r Rect) ExpandByPoint(p Point) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, p.X), math.Min(r.Min.Y, p.Y)},
		Max: Point{math.Max(r.Max.X, p.X), math.Max(r.Max.Y, p.Y)},
	}
}

// Union returns the smallest rectangle containing both r and q.
func (r Rect) Union(q Rect) Rect {
	if r.IsEmpty() {
		return q
	}
	if q.IsEmpty() {
		return r
	}
	return Rect{
		Min: Point{math.Min(r.Min.X, q.Min.X), math.Min(r.Min.Y, q.Min.Y)},
		Max: Point{math.Max(r.Max.X, q.Max.X), math.Max(r.Max.Y, q.Max.Y)},
	}
}

// Overlaps reports whether r and q overlap, within Epsilon of touching.
func (r Rect) Overlaps(q Rect) bool {
	if r.IsEmpty() || q.IsEmpty() {
		return false
	}
	return r.Min.X <= q.Max.X+Epsilon && q.Min.X <= r.Max.X+Epsilon &&
		r.Min.Y <= q.Max.Y+Epsilon && q.Min.Y <= r.Max.Y+Epsilon
}

// Contains reports whether r contains p within Epsilon.
func (r Rect) Contains(p Point) bool {
	return r.Min.X-Epsilon <= p.X && p.X <= r.Max.X+Epsilon &&
		r.Min.Y-Epsilon <= p.Y && p.Y <= r.Max.Y+Epsilon
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v - %v]", r.Min, r.Max)
}

// ParamRange is a sub-range [Min,Max] of a curve's parameter domain [0,1].
type ParamRange struct {
	Min, Max float64
}

// Size returns Max-Min.
func (r ParamRange) Size() float64 { return r.Max - r.Min }

// Average returns the midpoint of the range.
func (r ParamRange) Average() float64 { return (r.Min + r.Max) / 2 }

// ScaleNormalizedValue maps value, expressed in [0,1] of the *range*, back
// onto the full [0,1] parameter domain that the range is a subset of.
func (r ParamRange) ScaleNormalizedValue(value float64) float64 {
	return value*(r.Max-r.Min) + r.Min
}

// HasConverged reports whether Min and Max agree to the given number of
// decimal places, i.e. the range has shrunk enough that further clipping
// iterations would not usefully refine it.
func (r ParamRange) HasConverged(places int) bool {
	scale := math.Pow(10, float64(places))
	return math.Round(r.Min*scale) == math.Round(r.Max*scale)
}

func (r ParamRange) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// AngleRange is a directed arc on [0, 2*Pi) that may wrap through zero when
// Min > Max.
type AngleRange struct {
	Min, Max float64
}

// Contains reports whether angle (any real value, not necessarily
// normalized) falls within the directed arc.
func (r AngleRange) Contains(angle float64) bool {
	angle = angleNorm(angle)
	if r.Min <= r.Max {
		return r.Min-Epsilon <= angle && angle <= r.Max+Epsilon
	}
	// wraps through 0
	return angle >= r.Min-Epsilon || angle <= r.Max+Epsilon
}

// tangentNear samples curve's tangent direction a small step before (dir
// negative) or after (dir positive) parameter t, clamped to [0,1]. This is
// the shared primitive behind every "just outside the touch" tangent pair
// that tangentsCross compares, whether the touch is a discrete solver
// intersection (graph.go's tangentBefore/tangentAfter) or the terminus of a
// coincident ContourOverlap run (contour_overlap.go's EdgeOverlap.IsCrossing).
func tangentNear(c Curve, t, dir float64) Point {
	const step = 1e-4
	tt := t + dir*step
	if tt < 0 {
		tt = 0
	} else if tt > 1 {
		tt = 1
	}
	return c.TangentAt(tt)
}

// tangentsCross reports whether the two tangent-vector pairs describe the
// boundary of a true crossing (the regions actually cross) rather than a
// tangential touch. edge1Tangents/edge2Tangents are the tangent direction
// just before and just after the shared point, for contour 1 and contour 2
// respectively.
func tangentsCross(edge1Tangents, edge2Tangents [2]Point) bool {
	// A true crossing means edge2's incoming/outgoing tangents lie on
	// opposite sides of edge1's incoming/outgoing tangents: the sign of
	// the perp-dot product flips between the "before" and "after" pairing.
	inSign := edge1Tangents[0].PerpDot(edge2Tangents[0])
	outSign := edge1Tangents[1].PerpDot(edge2Tangents[1])
	if math.Abs(inSign) < Epsilon || math.Abs(outSign) < Epsilon {
		// one side is degenerate (parallel tangents); report no
		// crossing so a tangent touch is not mistaken for one.
		return false
	}
	return (inSign > 0) != (outSign > 0)
}
