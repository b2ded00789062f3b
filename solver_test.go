package swcanvas

import (
	"sort"
	"testing"
)

func TestSolveQuadraticTwoRoots(t *testing.T) {
	// x^2 - 3x + 2 = 0 -> roots 1, 2
	roots := SolveQuadratic(1, -3, 2)
	sort.Float64s(roots)
	if len(roots) != 2 || !approxEq(roots[0], 1, 1e-9) || !approxEq(roots[1], 2, 1e-9) {
		t.Errorf("SolveQuadratic(1,-3,2) = %v, want [1 2]", roots)
	}
}

func TestSolveQuadraticNoRealRoots(t *testing.T) {
	// x^2 + 1 = 0 has no real roots
	roots := SolveQuadratic(1, 0, 1)
	if roots != nil {
		t.Errorf("SolveQuadratic(1,0,1) = %v, want nil", roots)
	}
}

func TestSolveQuadraticLinearFallback(t *testing.T) {
	// a=0: 2x - 4 = 0 -> x = 2
	roots := SolveQuadratic(0, 2, -4)
	if len(roots) != 1 || !approxEq(roots[0], 2, 1e-9) {
		t.Errorf("SolveQuadratic(0,2,-4) = %v, want [2]", roots)
	}
}

func TestSolveQuadraticInUnitIntervalFilters(t *testing.T) {
	// roots at -1 and 0.5; only 0.5 is in (0,1)
	roots := SolveQuadraticInUnitInterval(1, 0.5, -0.5)
	if len(roots) != 1 || !approxEq(roots[0], 0.5, 1e-9) {
		t.Errorf("SolveQuadraticInUnitInterval(1,0.5,-0.5) = %v, want [0.5]", roots)
	}
}
