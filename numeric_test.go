package boolean

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestSolveQuadraticFormulaTwoRoots(t *testing.T) {
	// x^2 - 3x + 2 = 0 -> roots 1, 2
	x0, x1 := solveQuadraticFormula(1, -3, 2)
	test.Float(t, x0, 1)
	test.Float(t, x1, 2)
}

func TestSolveQuadraticFormulaNoRealRoots(t *testing.T) {
	x0, x1 := solveQuadraticFormula(1, 0, 1)
	test.That(t, math.IsNaN(x0) && math.IsNaN(x1), "a positive discriminant-free quadratic has no real roots")
}

func TestSolveQuadraticFormulaLinearFallback(t *testing.T) {
	// a == 0 degrades to the linear equation bx + c = 0
	x0, x1 := solveQuadraticFormula(0, 2, -4)
	test.Float(t, x0, 2)
	test.That(t, math.IsNaN(x1), "a degenerate quadratic only has one root")
}

func TestGaussLegendre7ConstantIntegrand(t *testing.T) {
	got := gaussLegendre7(func(float64) float64 { return 1 }, 0, 10)
	test.Float(t, got, 10)
}

func TestGaussLegendre7LinearIntegrand(t *testing.T) {
	got := gaussLegendre7(func(x float64) float64 { return x }, 0, 2)
	test.Float(t, got, 2)
}
