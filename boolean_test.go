package boolean

import (
	"testing"

	"github.com/tdewolff/test"
)

func inside(p Path, pt Point) bool {
	return newGraph(p).ContainsPoint(pt)
}

// TestUnionOverlappingSquares checks that two overlapping rectangles'
// union is the L-shaped octagon covering both, with the notch cut from
// neither square's interior left empty.
func TestUnionOverlappingSquares(t *testing.T) {
	a := square(Point{0, 0}, Point{10, 10})
	b := square(Point{5, 5}, Point{15, 15})
	u := a.Union(b)

	test.That(t, inside(u, Point{2, 2}), "union covers a's own corner")
	test.That(t, inside(u, Point{12, 12}), "union covers b's own corner")
	test.That(t, inside(u, Point{7, 7}), "union covers the shared overlap")
	test.That(t, !inside(u, Point{12, 2}), "union does not cover the notch outside both squares")
	test.That(t, !inside(u, Point{2, 12}), "union does not cover the other notch outside both squares")
}

// TestIntersectOverlappingSquares checks that the intersection of the same
// two rectangles is exactly their shared square.
func TestIntersectOverlappingSquares(t *testing.T) {
	a := square(Point{0, 0}, Point{10, 10})
	b := square(Point{5, 5}, Point{15, 15})
	i := a.Intersect(b)

	test.That(t, inside(i, Point{7, 7}), "intersection covers the shared square")
	test.That(t, !inside(i, Point{2, 2}), "intersection excludes a's own corner")
	test.That(t, !inside(i, Point{12, 12}), "intersection excludes b's own corner")
}

// TestDifferenceOverlappingSquares checks that a minus b is a with the
// shared square notched out, a hexagon.
func TestDifferenceOverlappingSquares(t *testing.T) {
	a := square(Point{0, 0}, Point{10, 10})
	b := square(Point{5, 5}, Point{15, 15})
	d := a.Difference(b)

	test.That(t, inside(d, Point{2, 2}), "difference keeps a's own corner")
	test.That(t, !inside(d, Point{7, 7}), "difference removes the shared overlap")
	test.That(t, !inside(d, Point{12, 12}), "difference never covers anything outside a")
}

// TestUnionCircleInsideRectangle checks that a circle wholly inside a
// rectangle contributes nothing extra to their union.
func TestUnionCircleInsideRectangle(t *testing.T) {
	rect := square(Point{0, 0}, Point{20, 20})
	circ := circle(Point{10, 10}, 3)
	u := rect.Union(circ)

	test.That(t, inside(u, Point{10, 10}), "union still covers the circle's center")
	test.That(t, inside(u, Point{1, 1}), "union still covers the rest of the rectangle")
	test.That(t, !inside(u, Point{25, 25}), "union does not extend past the rectangle")
}

// TestDifferenceCircleInsideRectangle checks that subtracting a fully
// interior circle leaves the rectangle with a circular hole.
func TestDifferenceCircleInsideRectangle(t *testing.T) {
	rect := square(Point{0, 0}, Point{20, 20})
	circ := circle(Point{10, 10}, 3)
	d := rect.Difference(circ)

	test.That(t, !inside(d, Point{10, 10}), "the circle's center falls in the carved-out hole")
	test.That(t, inside(d, Point{1, 1}), "the rest of the rectangle remains filled")
	test.That(t, !inside(d, Point{25, 25}), "difference does not extend past the rectangle")
}

// TestUnionTangentCircles checks that two externally tangent circles'
// union preserves both circles, discarding only the single tangent touch
// point as a crossing.
func TestUnionTangentCircles(t *testing.T) {
	c1 := circle(Point{0, 0}, 5)
	c2 := circle(Point{10, 0}, 5)
	u := c1.Union(c2)

	test.That(t, inside(u, Point{0, 0}), "union still covers the first circle's center")
	test.That(t, inside(u, Point{10, 0}), "union still covers the second circle's center")
	test.That(t, !inside(u, Point{5, 10}), "union does not cover space outside either circle")
}

func TestUnionEmptyNeutral(t *testing.T) {
	a := square(Point{0, 0}, Point{10, 10})
	var empty Path
	test.That(t, inside(a.Union(empty), Point{5, 5}), "union with an empty path is a no-op")
	test.T(t, len(empty.Union(a)), len(a))
}

func TestUnionCommutative(t *testing.T) {
	a := square(Point{0, 0}, Point{10, 10})
	b := square(Point{5, 5}, Point{15, 15})
	p1 := Point{2, 2}
	p2 := Point{12, 12}
	p3 := Point{7, 7}
	ab := a.Union(b)
	ba := b.Union(a)
	test.T(t, inside(ab, p1), inside(ba, p1))
	test.T(t, inside(ab, p2), inside(ba, p2))
	test.T(t, inside(ab, p3), inside(ba, p3))
}

func TestIntersectSelfIsIdentity(t *testing.T) {
	a := square(Point{0, 0}, Point{10, 10})
	i := a.Intersect(a)
	test.That(t, inside(i, Point{5, 5}), "a square intersected with itself still covers its own interior")
	test.That(t, !inside(i, Point{15, 15}), "a square intersected with itself covers nothing extra")
}

func TestDifferenceSelfIsEmpty(t *testing.T) {
	a := square(Point{0, 0}, Point{10, 10})
	d := a.Difference(a)
	for _, pt := range []Point{{5, 5}, {1, 1}, {9, 9}} {
		test.That(t, !inside(d, pt), "a square minus itself covers no interior point")
	}
}

func TestXorSelfIsEmpty(t *testing.T) {
	a := square(Point{0, 0}, Point{10, 10})
	x := a.Xor(a)
	for _, pt := range []Point{{5, 5}, {1, 1}, {9, 9}} {
		test.That(t, !inside(x, pt), "a square xor'd with itself covers no interior point")
	}
}

func TestUnionEqualsXorPlusIntersect(t *testing.T) {
	a := square(Point{0, 0}, Point{10, 10})
	b := square(Point{5, 5}, Point{15, 15})

	u := a.Union(b)
	x := a.Xor(b)
	i := a.Intersect(b)

	// union == xor plus intersection, pointwise.
	for _, pt := range []Point{{2, 2}, {12, 12}, {7, 7}, {12, 2}} {
		want := inside(x, pt) || inside(i, pt)
		test.T(t, inside(u, pt), want)
	}
}

func TestXorIsSymmetric(t *testing.T) {
	a := square(Point{0, 0}, Point{10, 10})
	b := square(Point{5, 5}, Point{15, 15})
	for _, pt := range []Point{{2, 2}, {12, 12}, {7, 7}} {
		test.T(t, inside(a.Xor(b), pt), inside(b.Xor(a), pt))
	}
}

func TestUnionAllThreeSquares(t *testing.T) {
	a := square(Point{0, 0}, Point{10, 10})
	b := square(Point{8, 0}, Point{18, 10})
	c := square(Point{16, 0}, Point{26, 10})
	u := UnionAll(a, b, c)
	test.That(t, inside(u, Point{1, 5}), "union-all covers the first square")
	test.That(t, inside(u, Point{9, 5}), "union-all covers the overlap between first and second")
	test.That(t, inside(u, Point{25, 5}), "union-all covers the third square")
	test.That(t, !inside(u, Point{13, 15}), "union-all does not cover space above any of the three squares")
}

func TestIntersectAllEmptyIsEmpty(t *testing.T) {
	test.T(t, len(IntersectAll()), 0)
}

// TestUnionSharedEdge covers two rectangles that share a full edge exactly
// (x=10 for both), exercising the coincident-overlap-range path through
// ContourOverlap rather than single-point crossings.
func TestUnionSharedEdge(t *testing.T) {
	a := square(Point{0, 0}, Point{10, 10})
	b := square(Point{10, 0}, Point{20, 10})
	u := a.Union(b)

	test.That(t, inside(u, Point{5, 5}), "union covers the first rectangle")
	test.That(t, inside(u, Point{15, 5}), "union covers the second rectangle")
	test.That(t, inside(u, Point{10, 5}), "union covers the shared edge")
	test.That(t, !inside(u, Point{-1, 5}), "union does not extend left of the first rectangle")
	test.That(t, !inside(u, Point{21, 5}), "union does not extend right of the second rectangle")
}

// TestDifferenceSharedEdge subtracts a rectangle that only touches a along
// a shared edge, with no area overlap: the result should be a unchanged.
func TestDifferenceSharedEdge(t *testing.T) {
	a := square(Point{0, 0}, Point{10, 10})
	b := square(Point{10, 0}, Point{20, 10})
	d := a.Difference(b)

	test.That(t, inside(d, Point{5, 5}), "difference keeps all of a, since b only touches along an edge")
	test.That(t, !inside(d, Point{15, 5}), "difference does not pick up any of b")
}
