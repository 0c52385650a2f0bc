package equations

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBurgersCapabilities(t *testing.T) {
	eq := NewBurgers1D()
	assert.Equal(t, 1, eq.NumDims())
	assert.Equal(t, 1, eq.NumVars())

	{ // Analytic flux f(u) = ½ u²
		assert.Equal(t, 2.0, eq.Flux(ScalarState(2), 1).Scalar())
		assert.Equal(t, 0.5, eq.Flux(ScalarState(-1), 1).Scalar())
		assert.Equal(t, 0.0, eq.Flux(ScalarState(0), 1).Scalar())
	}
	{ // Naive speed bound is exact for Burgers: max(|uL|,|uR|)
		us := []float64{-3, -1, -0.5, 0, 0.5, 1, 2, 3}
		for _, uL := range us {
			for _, uR := range us {
				s := eq.MaxAbsSpeedNaive(ScalarState(uL), ScalarState(uR), 1)
				assert.Equal(t, math.Max(math.Abs(uL), math.Abs(uR)), s)
				assert.GreaterOrEqual(t, s, 0.0)
				lamMin, lamMax := eq.MinMaxSpeedNaive(ScalarState(uL), ScalarState(uR), 1)
				assert.Equal(t, math.Min(uL, uR), lamMin)
				assert.Equal(t, math.Max(uL, uR), lamMax)
				assert.LessOrEqual(t, lamMin, lamMax)
			}
		}
	}
	{ // Per axis spectral radius
		speeds := eq.MaxAbsSpeeds(ScalarState(-2.5))
		assert.Len(t, speeds, 1)
		assert.Equal(t, 2.5, speeds[0])
	}
	{ // Conversions are the identity for the scalar law
		for _, u := range []float64{-3, 0, 0.7, 2} {
			assert.Equal(t, u, eq.Cons2Prim(ScalarState(u)).Scalar())
			assert.Equal(t, u, eq.Cons2Entropy(ScalarState(u)).Scalar())
		}
	}
	{ // Entropy and total energy coincide at ½ u²
		assert.Equal(t, 0.0, eq.Entropy(ScalarState(0)))
		assert.Equal(t, 4.5, eq.Entropy(ScalarState(-3)))
		for _, u := range []float64{-3, -1, 0, 0.25, 2} {
			assert.Equal(t, 0.5*u*u, eq.Entropy(ScalarState(u)))
			assert.Equal(t, eq.Entropy(ScalarState(u)), eq.EnergyTotal(ScalarState(u)))
		}
	}
	{ // Label metadata
		assert.Equal(t, []string{"scalar"}, eq.VarNamesCons())
		assert.Equal(t, []string{"scalar"}, eq.VarNamesPrim())
		assert.Equal(t, []string{"scalar"}, eq.VarNamesEntropy())
	}
}

func TestBurgersInitialConditions(t *testing.T) {
	eq := NewBurgers1D()
	{ // Free stream is exactly 2 everywhere, at all times
		for _, x := range []float64{-10, 0, 0.3, 5} {
			for _, tt := range []float64{0, 0.1, 7} {
				assert.Equal(t, 2.0, eq.InitialConditionConstant([]float64{x}, tt).Scalar())
			}
		}
	}
	{ // Traveling wave spot check: x=0.3, t=0.1 -> 2 + sin(2π·0.2)
		u := eq.InitialConditionConvergenceTest([]float64{0.3}, 0.1).Scalar()
		assert.InDelta(t, 2+math.Sin(2*math.Pi*0.2), u, 1.e-15)
		assert.InDelta(t, 2.5878, u, 1.e-4)
	}
}

// The source term must be the exact residual of the traveling wave
// substituted into the unforced equation. Evaluate
// ∂ₜu + ∂ₓ(½u²) − s(u,x,t) with analytic derivatives over an (x,t) grid.
func TestBurgersManufacturedSolution(t *testing.T) {
	var (
		eq    = NewBurgers1D()
		omega = 2 * math.Pi
	)
	for _, x := range []float64{0, 0.1, 0.3, 0.5, 0.77, 1} {
		for _, tt := range []float64{0, 0.1, 0.25, 1.3} {
			var (
				phase = omega * (x - tt)
				u     = 2 + math.Sin(phase)
				dudt  = -omega * math.Cos(phase)
				dfdx  = u * omega * math.Cos(phase) // ∂ₓ(½u²) = u ∂ₓu
				q     = eq.InitialConditionConvergenceTest([]float64{x}, tt)
				src   = eq.SourceTermsConvergenceTest(q, []float64{x}, tt).Scalar()
			)
			assert.InDelta(t, u, q.Scalar(), 1.e-14)
			assert.InDelta(t, 0, dudt+dfdx-src, 1.e-10)
		}
	}
}

func TestBurgersPreconditions(t *testing.T) {
	eq := NewBurgers1D()
	assert.Panics(t, func() { eq.Flux(ScalarState(1), 2) })
	assert.Panics(t, func() { eq.Flux(ScalarState(1), 0) })
	assert.Panics(t, func() { eq.Flux(State{1, 2}, 1) })
	assert.Panics(t, func() { eq.Cons2Prim(State{1, 2}) })
}

func TestAdmissibility(t *testing.T) {
	assert.True(t, IsAdmissible(ScalarState(2)))
	assert.False(t, IsAdmissible(ScalarState(math.NaN())))
	assert.False(t, IsAdmissible(ScalarState(math.Inf(1))))

	// Capability outputs stay finite on admissible input
	eq := NewBurgers1D()
	for _, u := range []float64{-1.e6, -3, 0, 2, 1.e6} {
		assert.True(t, IsAdmissible(eq.Flux(ScalarState(u), 1)))
		assert.True(t, IsAdmissible(eq.Cons2Entropy(ScalarState(u))))
		assert.False(t, math.IsNaN(eq.Entropy(ScalarState(u))))
	}
}
