package boolean

import "fmt"

// ElementKind identifies which kind of path command a PathElement carries.
type ElementKind int

const (
	// MoveTo begins a new subpath at To.
	MoveTo ElementKind = iota
	// LineTo draws a straight segment to To.
	LineTo
	// CubeTo draws a cubic Bezier with control points C1, C2 to To.
	CubeTo
	// Close draws a straight segment back to the last MoveTo's point and
	// marks the subpath as closed.
	Close
)

func (k ElementKind) String() string {
	switch k {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case CubeTo:
		return "C"
	case Close:
		return "Z"
	default:
		return "?"
	}
}

// PathElement is one command in a Path: a move, line, cubic or close. C1
// and C2 are only meaningful for CubeTo; To is unused for Close.
type PathElement struct {
	Kind   ElementKind
	C1, C2 Point
	To     Point
}

// Path is an ordered sequence of move/line/cubic/close commands describing
// one or more (possibly disjoint) subpaths. Subpaths are interpreted as
// closed regions under even-odd filling; a subpath that is not explicitly
// closed is implicitly closed before use.
type Path []PathElement

// NewPath returns an empty path.
func NewPath() Path { return nil }

// MoveTo appends a Move command.
func (p Path) MoveTo(x, y float64) Path {
	return append(p, PathElement{Kind: MoveTo, To: Point{x, y}})
}

// LineTo appends a Line command.
func (p Path) LineTo(x, y float64) Path {
	return append(p, PathElement{Kind: LineTo, To: Point{x, y}})
}

// CubeTo appends a Cubic command.
func (p Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) Path {
	return append(p, PathElement{Kind: CubeTo, C1: Point{c1x, c1y}, C2: Point{c2x, c2y}, To: Point{x, y}})
}

// ClosePath appends a Close command.
func (p Path) ClosePath() Path {
	return append(p, PathElement{Kind: Close})
}

// Empty reports whether the path has no subpaths with actual drawing
// commands.
func (p Path) Empty() bool {
	for _, e := range p {
		if e.Kind != MoveTo {
			return false
		}
	}
	return true
}

// Reversed returns a new Path where every subpath is traversed in the
// opposite direction, grounded on the original library's whole-path
// reversedPath (NSBezierPath+Utilities.h / UIBezierPath+Utilities.h)
// rather than only exposing a per-curve reverse.
func (p Path) Reversed() Path {
	g := newGraph(p)
	for i, ct := range g.contours {
		g.contours[i] = ct.Reversed()
	}
	return g.ToPath()
}

// Length returns the sum of the arc lengths of every curve in the path,
// the whole-path counterpart of Curve.Length (see
// NSBezierPath+Utilities.h's `length` property).
func (p Path) Length() float64 {
	g := newGraph(p)
	total := 0.0
	for _, ct := range g.contours {
		for _, e := range ct.edges {
			total += e.curve.Length()
		}
	}
	return total
}

func (e PathElement) String() string {
	switch e.Kind {
	case MoveTo, LineTo:
		return fmt.Sprintf("%v %v", e.Kind, e.To)
	case CubeTo:
		return fmt.Sprintf("%v %v %v %v", e.Kind, e.C1, e.C2, e.To)
	default:
		return e.Kind.String()
	}
}
