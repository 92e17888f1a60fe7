// Package boolean computes set operations, union, intersection, difference
// and exclusive-or, over planar regions whose boundaries are paths of line
// and cubic Bezier segments.
package boolean

// Union returns the region covered by a or b (or both).
func Union(a, b Path) Path {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	return combine(a, b, false, false, false)
}

// Intersect returns the region covered by both a and b.
func Intersect(a, b Path) Path {
	if a.Empty() || b.Empty() {
		return nil
	}
	return combine(a, b, true, true, false)
}

// Difference returns the region covered by a but not by b.
func Difference(a, b Path) Path {
	if a.Empty() {
		return nil
	}
	if b.Empty() {
		return a
	}
	return combine(a, b, false, true, true)
}

// Xor returns the region covered by exactly one of a or b. It is expressed
// as the concatenation of Difference(a,b) and Difference(b,a): those two
// results are disjoint by construction, so no further combination pass is
// needed (see DESIGN.md).
func Xor(a, b Path) Path {
	onlyA := Difference(a, b)
	onlyB := Difference(b, a)
	return append(append(Path{}, onlyA...), onlyB...)
}

// UnionAll folds Union over paths left to right. It returns an empty Path
// for zero arguments.
func UnionAll(paths ...Path) Path {
	if len(paths) == 0 {
		return nil
	}
	acc := paths[0]
	for _, p := range paths[1:] {
		acc = Union(acc, p)
	}
	return acc
}

// IntersectAll folds Intersect over paths left to right. It returns an
// empty Path for zero arguments.
func IntersectAll(paths ...Path) Path {
	if len(paths) == 0 {
		return nil
	}
	acc := paths[0]
	for _, p := range paths[1:] {
		acc = Intersect(acc, p)
	}
	return acc
}

// Union returns the region covered by p or q (or both).
func (p Path) Union(q Path) Path { return Union(p, q) }

// Intersect returns the region covered by both p and q.
func (p Path) Intersect(q Path) Path { return Intersect(p, q) }

// Difference returns the region covered by p but not q.
func (p Path) Difference(q Path) Path { return Difference(p, q) }

// Xor returns the region covered by exactly one of p or q.
func (p Path) Xor(q Path) Path { return Xor(p, q) }
