package boolean

import "math"

// solveQuadraticFormula solves a*x^2 + b*x + c = 0, returning up to two
// real roots (NaN when a root doesn't exist). Uses the numerically-stable
// Citardauq formulation, avoiding catastrophic cancellation when b and
// sqrt(discriminant) are nearly equal.
func solveQuadraticFormula(a, b, c float64) (float64, float64) {
	if a == 0 {
		if b == 0 {
			return math.NaN(), math.NaN()
		}
		return -c / b, math.NaN()
	}

	if c == 0 {
		return 0, -b / a
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return math.NaN(), math.NaN()
	} else if discriminant == 0 {
		return -b / (2 * a), math.NaN()
	}

	q := math.Sqrt(discriminant)
	if b < 0 {
		q = -q
	}
	x1 := -(b + q) / (2 * a)
	x2 := c / (a * x1)
	if x2 < x1 {
		x1, x2 = x2, x1
	}
	return x1, x2
}

// gaussLegendre7 integrates f over [a,b] using a 7-point Gauss-Legendre
// rule. It backs Curve.LengthAt (and so Curve.Length and Path.Length); the
// boolean operations and the intersection solver do not call it.
func gaussLegendre7(f func(float64) float64, a, b float64) float64 {
	c := (b - a) / 2
	d := (a + b) / 2
	w := [4]float64{0.4179591836734694, 0.3818300505051189, 0.2797053914892766, 0.1294849661688697}
	x := [4]float64{0, 0.4058451513773972, 0.7415311855993945, 0.9491079123427585}
	sum := w[0] * f(d)
	for i := 1; i < 4; i++ {
		sum += w[i] * (f(-x[i]*c+d) + f(x[i]*c+d))
	}
	return c * sum
}
