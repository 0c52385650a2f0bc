package equations

import (
	"fmt"
	"math"
)

/*
A hyperbolic conservation law in divergence form

	∂/∂t [ u ] + ∂/∂x [ f(u) ] = s(u,x,t)

is described here by its flux f, its characteristic wave speeds, and the
transformations between its conservative, primitive and entropy variables.
The numerical fluxes in package fluxes are written purely against this
contract, so a new physical law plugs into every flux that its capability
set supports without the flux library knowing the law's internals.
*/

// State holds the variables of one point. The length equals the equation's
// variable count. Capability functions never mutate a State they are given
// and return freshly allocated results.
type State []float64

// ScalarState wraps a single value for the N=1 laws.
func ScalarState(u float64) State {
	return State{u}
}

// Scalar returns the single component of a scalar-law state.
func (q State) Scalar() float64 {
	if len(q) != 1 {
		panic(fmt.Errorf("state has %d variables, expected a scalar law", len(q)))
	}
	return q[0]
}

// EquationOfDims identifies the shape of a law: spatial dimension count and
// conserved variable count. It is fixed at construction and embedded in
// every concrete equation.
type EquationOfDims struct {
	NDims, NVars int
}

func (ed EquationOfDims) NumDims() int { return ed.NDims }

func (ed EquationOfDims) NumVars() int { return ed.NVars }

// CheckOrientation validates a spatial axis index against the equation
// dimension. Orientations are 1-based, matching the axis numbering used
// throughout: 1 = x, 2 = y.
func (ed EquationOfDims) CheckOrientation(orientation int) {
	if orientation < 1 || orientation > ed.NDims {
		panic(fmt.Errorf("orientation %d out of range for a %dD equation", orientation, ed.NDims))
	}
}

// CheckState validates the variable count of a state.
func (ed EquationOfDims) CheckState(q State) {
	if len(q) != ed.NVars {
		panic(fmt.Errorf("state has %d variables, equation has %d", len(q), ed.NVars))
	}
}

// Equation is the capability set every law must provide. All methods are
// pure and must return finite values for physically admissible states.
type Equation interface {
	NumDims() int
	NumVars() int

	// Flux evaluates the analytic flux f(u) along the given axis.
	Flux(q State, orientation int) State

	// MaxAbsSpeedNaive bounds the largest characteristic speed magnitude
	// over the interval spanned by qL and qR. It may be loose but must
	// never under-estimate.
	MaxAbsSpeedNaive(qL, qR State, orientation int) float64

	// MinMaxSpeedNaive bounds the slowest and fastest wave speeds,
	// lambdaMin <= every wave speed <= lambdaMax.
	MinMaxSpeedNaive(qL, qR State, orientation int) (lambdaMin, lambdaMax float64)

	// MaxAbsSpeeds returns a per-axis spectral radius bound, used for
	// time step control.
	MaxAbsSpeeds(q State) []float64

	// Cons2Prim converts conservative to primitive variables. For laws
	// where the two coincide it is the identity.
	Cons2Prim(q State) State

	// Cons2Entropy converts conservative to entropy variables, the
	// gradient of the entropy functional with respect to q.
	Cons2Entropy(q State) State

	// Entropy evaluates the convex entropy functional.
	Entropy(q State) float64

	// EnergyTotal evaluates the physical total energy.
	EnergyTotal(q State) float64

	VarNamesCons() []string
	VarNamesPrim() []string
	VarNamesEntropy() []string
}

/*
Optional capabilities. The numerical flux library asserts these once, at
registration time, so an equation lacking one surfaces as a configuration
error rather than a wrong answer mid-run. Each must be derived per
equation from its flux and entropy pair, there is no generic fallback.
*/

// EntropyConservativeFluxer is implemented by equations with a hand-derived
// two-point flux that conserves the entropy functional exactly on smooth
// solutions.
type EntropyConservativeFluxer interface {
	FluxEC(qL, qR State, orientation int) State
}

// ExactRiemannFluxer is implemented by equations whose local Riemann
// problem has a closed-form solution (convex or concave scalar fluxes).
type ExactRiemannFluxer interface {
	FluxGodunov(qL, qR State, orientation int) State
}

// FluxSplitter is implemented by equations with an Engquist-Osher style
// flux splitting f = f⁺ + f⁻.
type FluxSplitter interface {
	FluxEngquistOsher(qL, qR State, orientation int) State
}

// InitialCondition evaluates an analytic solution family at a point and
// time. The point has one coordinate per spatial dimension.
type InitialCondition func(x []float64, t float64) State

// SourceTerms evaluates the forcing added to the right hand side at one
// point. Zero except for manufactured solution pairs.
type SourceTerms func(q State, x []float64, t float64) State

// IsAdmissible reports whether every component of a state is finite. The
// capability contract forbids producing NaN or Inf from admissible input,
// so a failure here marks a defect in an equation or flux, never a
// condition to recover from.
func IsAdmissible(q State) bool {
	for _, v := range q {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
