package boolean

// Crossing is one endpoint of an Intersection as seen from a single Edge:
// a parameter on that edge's curve, paired with the Crossing on the other
// graph's edge through its Counterpart link (grounded on FBEdgeCrossing.h's
// edge/counterpart pair). entry/processed are scratch state used while
// classifying and stitching a boolean operation's result.
type Crossing struct {
	edge        *Edge
	counterpart *Crossing
	parameter   float64
	location    Point
	tangent     bool
	entry       bool
	processed   bool
	index       int
}

func newCrossing(param float64, location Point) *Crossing {
	return &Crossing{parameter: param, location: location}
}

// linkCrossings makes a and b mutual counterparts, as produced by a single
// Intersection between the two edges they sit on.
func linkCrossings(a, b *Crossing) {
	a.counterpart = b
	b.counterpart = a
}

// Edge returns the edge this crossing sits on.
func (c *Crossing) Edge() *Edge { return c.edge }

// Counterpart returns the matching crossing on the other graph's edge.
func (c *Crossing) Counterpart() *Crossing { return c.counterpart }

// Location returns the crossing's point in the plane.
func (c *Crossing) Location() Point { return c.location }

// Parameter returns the crossing's position on its own edge's curve, in [0,1].
func (c *Crossing) Parameter() float64 { return c.parameter }

// IsAtStart reports whether the crossing sits at its edge's start point.
func (c *Crossing) IsAtStart() bool { return valuesClose(c.parameter, 0) }

// IsAtEnd reports whether the crossing sits at its edge's end point.
func (c *Crossing) IsAtEnd() bool { return valuesClose(c.parameter, 1) }

// RemoveFromEdge detaches the crossing from its owning edge's crossing list.
func (c *Crossing) RemoveFromEdge() {
	if c.edge != nil {
		c.edge.RemoveCrossing(c)
	}
}

// Next returns the next crossing after c on the same edge, or nil if c is
// the last crossing on that edge. Unlike Edge.Next, this does not wrap to
// the following edge; callers that need to keep walking past the end of
// the edge do that themselves (see walkForward in graph.go).
func (c *Crossing) Next() *Crossing {
	cs := c.edge.crossings
	if c.index+1 < len(cs) {
		return cs[c.index+1]
	}
	return nil
}

// Previous returns the crossing before c on the same edge, or nil.
func (c *Crossing) Previous() *Crossing {
	if c.index-1 >= 0 {
		return c.edge.crossings[c.index-1]
	}
	return nil
}

// LeftCurve returns the portion of the edge's curve from the previous
// crossing (or the edge's start) up to this crossing.
func (c *Crossing) LeftCurve() Curve {
	start := 0.0
	if prev := c.Previous(); prev != nil {
		start = prev.parameter
	}
	return c.edge.curve.SubcurveAt(ParamRange{start, c.parameter})
}

// RightCurve returns the portion of the edge's curve from this crossing up
// to the next crossing (or the edge's end).
func (c *Crossing) RightCurve() Curve {
	end := 1.0
	if next := c.Next(); next != nil {
		end = next.parameter
	}
	return c.edge.curve.SubcurveAt(ParamRange{c.parameter, end})
}
