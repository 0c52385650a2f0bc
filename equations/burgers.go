package equations

import (
	"math"
)

/*
The 1D inviscid Burgers' equation in conservative (flux) form:

	∂u/∂t + ∂/∂x [ ½ u² ] = 0

Key Properties:
    Nonlinear scalar law: the characteristic speed f'(u) = u depends on the
    solution itself.
    Shock formation: an initial condition with a steep negative gradient
    steepens into a shock in finite time.
    Convex flux: f''(u) = 1 > 0, so the local Riemann problem is solved
    exactly by Godunov's construction below.

At an interface we introduce left (L) and right (R) states u_L, u_R.
The flux f(u) = ½ u² satisfies the Rankine-Hugoniot condition with shock
speed s:
	s = (u_L + u_R) / 2

	Shock Case: (u_L > u_R), the shock propagates at speed s:
		u* = u_L,  if s > 0
		u* = u_R,  if s < 0

	Rarefaction Case: (u_L < u_R), the entropy condition gives:
		u* = u_L,  if u_L > 0
		u* = 0,    if u_L < 0 < u_R
		u* = u_R,  if u_R < 0

Godunov Flux (Exact Riemann Solver)
	F*(u) = ½ (u*)² = ½ max( max(u_L,0)², min(u_R,0)² )

Engquist-Osher Flux (Flux Splitting)
	F* = ½ ( max(u_L,0)² + min(u_R,0)² )
smoother than Godunov (no outer max) and still entropy satisfying for the
convex flux.

Entropy Conserving Flux
For the square entropy S(u) = ½ u² the two point flux
	F*_ec = ( u_L² + u_L u_R + u_R² ) / 6
conserves S exactly on smooth solutions, derived from the entropy/flux
pair, not reusable for other laws.
*/

// Burgers1D is the scalar inviscid Burgers equation, the reference law
// exercising the full capability contract.
type Burgers1D struct {
	EquationOfDims
}

func NewBurgers1D() Burgers1D {
	return Burgers1D{EquationOfDims{NDims: 1, NVars: 1}}
}

func (eq Burgers1D) Flux(q State, orientation int) State {
	eq.CheckOrientation(orientation)
	u := q.Scalar()
	return ScalarState(0.5 * u * u)
}

// MaxAbsSpeedNaive is exact for Burgers: f'(u) = u is monotone, so the
// extreme characteristic speed over [uL,uR] sits at an endpoint.
func (eq Burgers1D) MaxAbsSpeedNaive(qL, qR State, orientation int) float64 {
	eq.CheckOrientation(orientation)
	return math.Max(math.Abs(qL.Scalar()), math.Abs(qR.Scalar()))
}

func (eq Burgers1D) MinMaxSpeedNaive(qL, qR State, orientation int) (lambdaMin, lambdaMax float64) {
	eq.CheckOrientation(orientation)
	uL, uR := qL.Scalar(), qR.Scalar()
	lambdaMin = math.Min(uL, uR)
	lambdaMax = math.Max(uL, uR)
	return
}

func (eq Burgers1D) MaxAbsSpeeds(q State) []float64 {
	return []float64{math.Abs(q.Scalar())}
}

// Cons2Prim is the identity for a scalar law.
func (eq Burgers1D) Cons2Prim(q State) State {
	eq.CheckState(q)
	return ScalarState(q.Scalar())
}

// Cons2Entropy is the identity: dS/du = u for S(u) = ½ u².
func (eq Burgers1D) Cons2Entropy(q State) State {
	eq.CheckState(q)
	return ScalarState(q.Scalar())
}

func (eq Burgers1D) Entropy(q State) float64 {
	u := q.Scalar()
	return 0.5 * u * u
}

func (eq Burgers1D) EnergyTotal(q State) float64 {
	return eq.Entropy(q)
}

func (eq Burgers1D) VarNamesCons() []string    { return []string{"scalar"} }
func (eq Burgers1D) VarNamesPrim() []string    { return []string{"scalar"} }
func (eq Burgers1D) VarNamesEntropy() []string { return []string{"scalar"} }

func (eq Burgers1D) FluxEC(qL, qR State, orientation int) State {
	eq.CheckOrientation(orientation)
	uL, uR := qL.Scalar(), qR.Scalar()
	return ScalarState((uL*uL + uL*uR + uR*uR) / 6)
}

func (eq Burgers1D) FluxGodunov(qL, qR State, orientation int) State {
	eq.CheckOrientation(orientation)
	uL, uR := qL.Scalar(), qR.Scalar()
	uLp := math.Max(uL, 0)
	uRm := math.Min(uR, 0)
	return ScalarState(0.5 * math.Max(uLp*uLp, uRm*uRm))
}

func (eq Burgers1D) FluxEngquistOsher(qL, qR State, orientation int) State {
	eq.CheckOrientation(orientation)
	uL, uR := qL.Scalar(), qR.Scalar()
	uLp := math.Max(uL, 0)
	uRm := math.Min(uR, 0)
	return ScalarState(0.5 * (uLp*uLp + uRm*uRm))
}

// InitialConditionConstant is the free stream state u = 2; a constant
// field must stay exactly invariant under flux differencing.
func (eq Burgers1D) InitialConditionConstant(x []float64, t float64) State {
	return ScalarState(2.0)
}

const convOmega = 2 * math.Pi

// InitialConditionConvergenceTest is the smooth traveling wave
// u(x,t) = 2 + sin(ω(x−t)), ω = 2π, paired with
// SourceTermsConvergenceTest for order of accuracy studies.
func (eq Burgers1D) InitialConditionConvergenceTest(x []float64, t float64) State {
	return ScalarState(2.0 + math.Sin(convOmega*(x[0]-t)))
}

// SourceTermsConvergenceTest is the exact residual ∂ₜu + ∂ₓ(½u²) of the
// convergence test wave substituted into the unforced equation:
//
//	ω cos(ω(x−t)) (1 + sin(ω(x−t)))
//
// The algebra must match the initial condition exactly or convergence
// studies report a wrong but plausible order.
func (eq Burgers1D) SourceTermsConvergenceTest(q State, x []float64, t float64) State {
	phase := convOmega * (x[0] - t)
	return ScalarState(convOmega * math.Cos(phase) * (1 + math.Sin(phase)))
}
