package boolean

// Graph is a planar graph built from a Path: one Contour per subpath, with
// crossings recorded against a second Graph during a boolean operation.
// Grounded on FBBezierGraph.h.
type Graph struct {
	contours []*Contour
}

// newGraph builds a Graph from path, with one Contour per subpath. A
// subpath not explicitly closed with Close is implicitly closed with a
// line back to its start.
func newGraph(path Path) *Graph {
	g := &Graph{}
	var current *Contour
	var start, last Point
	haveOpen := false

	finish := func() {
		if current == nil {
			return
		}
		if !pointsClose(last, start) {
			current.AddEdge(NewLineCurve(last, start))
		}
		if len(current.edges) > 0 {
			g.contours = append(g.contours, current)
		}
		current = nil
		haveOpen = false
	}

	for _, el := range path {
		switch el.Kind {
		case MoveTo:
			finish()
			current = newContour()
			current.owner = g
			start, last = el.To, el.To
			haveOpen = true
		case LineTo:
			if current == nil {
				current = newContour()
				current.owner = g
				start, last = el.To, el.To
				haveOpen = true
				continue
			}
			current.AddEdge(NewLineCurve(last, el.To))
			last = el.To
		case CubeTo:
			if current == nil {
				current = newContour()
				current.owner = g
				start, last = el.To, el.To
				haveOpen = true
				continue
			}
			current.AddEdge(NewCurve(last, el.C1, el.C2, el.To))
			last = el.To
		case Close:
			if current != nil && !pointsClose(last, start) {
				current.AddEdge(NewLineCurve(last, start))
			}
			last = start
		}
	}
	if haveOpen {
		finish()
	}
	return g
}

// ToPath renders every contour back into a single Path.
func (g *Graph) ToPath() Path {
	var p Path
	for _, ct := range g.contours {
		p = append(p, contourToPath(ct)...)
	}
	return p
}

// ContainsPoint reports whether p lies inside the region g's contours
// bound, under the even-odd rule: p is inside iff an odd number of the
// graph's contours individually contain it.
func (g *Graph) ContainsPoint(p Point) bool {
	count := 0
	for _, ct := range g.contours {
		if ct.ContainsPoint(p) {
			count++
		}
	}
	return count%2 == 1
}

// contourToPath renders one contour as a closed subpath starting with a
// Move to its first edge's start point.
func contourToPath(ct *Contour) Path {
	if len(ct.edges) == 0 {
		return nil
	}
	p := Path{{Kind: MoveTo, To: ct.edges[0].curve.P0}}
	for _, e := range ct.edges {
		p = append(p, curveElement(e.curve))
	}
	p = append(p, PathElement{Kind: Close})
	return p
}

func curveElement(c Curve) PathElement {
	if c.straight {
		return PathElement{Kind: LineTo, To: c.P3}
	}
	return PathElement{Kind: CubeTo, C1: c.C1, C2: c.C2, To: c.P3}
}

func curvesToPath(curves []Curve) Path {
	if len(curves) == 0 {
		return nil
	}
	p := Path{{Kind: MoveTo, To: curves[0].P0}}
	for _, c := range curves {
		p = append(p, curveElement(c))
	}
	p = append(p, PathElement{Kind: Close})
	return p
}

// insertIntersections finds every intersection and coincident-overlap
// range between g's edges and other's edges, recording linked Crossing
// pairs on both sides, then discards touches that turn out to be
// tangential rather than true crossings.
func (g *Graph) insertIntersections(other *Graph) {
	type contourPair struct{ a, b *Contour }
	overlaps := map[contourPair]*ContourOverlap{}

	for _, ca := range g.contours {
		for _, cb := range other.contours {
			if !ca.Bounds().Overlaps(cb.Bounds()) {
				continue
			}
			for _, ea := range ca.edges {
				for _, eb := range cb.edges {
					if !ea.curve.Bounds().Overlaps(eb.curve.Bounds()) {
						continue
					}
					points, ranges := IntersectCurves(ea.curve, eb.curve)
					for _, it := range points {
						ca1 := newCrossing(it.ParamA, it.Location)
						cb1 := newCrossing(it.ParamB, it.Location)
						ca1.tangent = it.Tangent
						cb1.tangent = it.Tangent
						linkCrossings(ca1, cb1)
						ea.AddCrossing(ca1)
						eb.AddCrossing(cb1)
					}
					for _, r := range ranges {
						key := contourPair{ca, cb}
						ov := overlaps[key]
						if ov == nil {
							ov = newContourOverlap(ca, cb)
							overlaps[key] = ov
						}
						ov.AddOverlap(r, ea, eb)
					}
				}
			}
		}
	}
	for _, ov := range overlaps {
		ov.AddCrossingsForRuns()
	}

	g.removeTangentCrossings()
	g.removeDuplicateCrossings()
}

// removeTangentCrossings discards crossings flagged tangent by the solver
// that turn out, on inspection of the tangents either side of the touch,
// not to be true crossings.
func (g *Graph) removeTangentCrossings() {
	for _, ct := range g.contours {
		for _, e := range ct.edges {
			for _, cr := range append([]*Crossing(nil), e.crossings...) {
				if !cr.tangent {
					continue
				}
				if !crossingIsReal(cr) {
					cr.RemoveFromEdge()
					cr.counterpart.RemoveFromEdge()
				}
			}
		}
	}
}

func crossingIsReal(cr *Crossing) bool {
	other := cr.counterpart
	t1 := [2]Point{tangentBefore(cr), tangentAfter(cr)}
	t2 := [2]Point{tangentBefore(other), tangentAfter(other)}
	return tangentsCross(t1, t2)
}

func tangentBefore(cr *Crossing) Point { return tangentNear(cr.edge.curve, cr.parameter, -1) }

func tangentAfter(cr *Crossing) Point { return tangentNear(cr.edge.curve, cr.parameter, 1) }

// removeDuplicateCrossings discards, on each of g's edges, a crossing whose
// parameter is within Epsilon of a crossing already kept on that edge
// (whichever edge of the other graph the two pair with), together with its
// counterpart. This happens where the other graph's vertex lies on the edge
// and both edges meeting at that vertex report the same point.
func (g *Graph) removeDuplicateCrossings() {
	for _, ct := range g.contours {
		for _, e := range ct.edges {
			kept := e.crossings[:0]
			for _, cr := range e.crossings {
				dup := false
				for _, k := range kept {
					if valuesClose(cr.parameter, k.parameter) {
						dup = true
						break
					}
				}
				if dup {
					cr.counterpart.RemoveFromEdge()
					continue
				}
				kept = append(kept, cr)
			}
			e.crossings = kept
			e.reindexCrossings()
		}
	}
}

// markCrossings classifies every crossing on g's contours as entry/exit
// relative to other, per markInside (true selects portions inside other,
// false selects portions outside other).
func (g *Graph) markCrossings(other *Graph, markInside bool) {
	for _, ct := range g.contours {
		ct.MarkCrossingsAsEntryOrExit(other, markInside)
	}
}

// walkForward returns the next crossing reached by following start's edge
// (and however many further edges necessary) forward from start, plus the
// curve segments traced along the way.
func walkForward(start *Crossing) (*Crossing, []Curve) {
	segs := []Curve{start.RightCurve()}
	if nxt := start.Next(); nxt != nil {
		return nxt, segs
	}
	e := start.edge.Next()
	for {
		if fc := e.FirstCrossing(); fc != nil {
			segs = append(segs, e.curve.SubcurveAt(ParamRange{0, fc.parameter}))
			return fc, segs
		}
		segs = append(segs, e.curve)
		e = e.Next()
	}
}

// walkBackward is the mirror of walkForward, used when stitching a
// Difference's "other" side, which must be traced in reverse.
func walkBackward(start *Crossing) (*Crossing, []Curve) {
	segs := []Curve{start.LeftCurve().Reversed()}
	if prv := start.Previous(); prv != nil {
		return prv, segs
	}
	e := start.edge.Previous()
	for {
		if lc := e.LastCrossing(); lc != nil {
			segs = append(segs, e.curve.SubcurveAt(ParamRange{lc.parameter, 1}).Reversed())
			return lc, segs
		}
		segs = append(segs, e.curve.Reversed())
		e = e.Previous()
	}
}

// stitchFrom walks the result boundary starting at start, alternating
// between selfGraph and otherGraph at each crossing, until the walk closes
// back on itself. selfGraph's side always walks forward; otherGraph's side
// walks forward unless reverseOther, which Difference uses so that the
// portion of "other" it keeps bounds a hole rather than retracing its
// original orientation.
func stitchFrom(start *Crossing, reverseOther bool, ownerOf func(*Crossing) bool) []Curve {
	var curves []Curve
	current := start
	// guard against a malformed crossing graph looping forever; a well
	// formed stitch always closes within a number of steps bounded by the
	// total crossing count, so this is only a defensive backstop.
	for steps := 0; ; steps++ {
		if steps > 1<<20 {
			panic("boolean: stitch walk did not close")
		}
		current.processed = true
		current.counterpart.processed = true

		fwd := true
		if !ownerOf(current) {
			fwd = !reverseOther
		}

		var next *Crossing
		var segs []Curve
		if fwd {
			next, segs = walkForward(current)
		} else {
			next, segs = walkBackward(current)
		}
		curves = append(curves, segs...)

		if next == start {
			break
		}
		cp := next.counterpart
		if cp == start {
			break
		}
		current = cp
	}
	return curves
}

// combine runs the shared crossing-insertion/classification/stitching
// machinery for Union and Intersect; Difference and Xor are expressed on
// top of it in boolean.go.
func combine(a, b Path, markInsideSelf, markInsideOther, reverseOther bool) Path {
	ga := newGraph(a)
	gb := newGraph(b)
	ga.insertIntersections(gb)
	ga.markCrossings(gb, markInsideSelf)
	gb.markCrossings(ga, markInsideOther)

	ownerOf := func(cr *Crossing) bool { return cr.edge.contour.owner == ga }

	var out Path
	for _, ct := range ga.contours {
		for _, e := range ct.edges {
			for _, cr := range e.crossings {
				if cr.processed || !cr.entry {
					continue
				}
				curves := stitchFrom(cr, reverseOther, ownerOf)
				out = append(out, curvesToPath(curves)...)
			}
		}
	}

	for _, ct := range ga.contours {
		if ct.HasCrossings() {
			continue
		}
		insideOther := gb.ContainsPoint(ct.RepresentativePoint())
		if insideOther == markInsideSelf {
			out = append(out, contourToPath(ct)...)
		}
	}
	for _, ct := range gb.contours {
		if ct.HasCrossings() {
			continue
		}
		insideSelf := ga.ContainsPoint(ct.RepresentativePoint())
		if insideSelf == markInsideOther {
			if reverseOther {
				out = append(out, contourToPath(ct.Reversed())...)
			} else {
				out = append(out, contourToPath(ct)...)
			}
		}
	}
	return out
}
