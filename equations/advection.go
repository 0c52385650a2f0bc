package equations

import (
	"math"
)

/*
Linear scalar advection
	∂u/∂t + a·∇u = 0
with constant velocity a. The flux along axis d is a_d u, so every wave
travels at exactly a_d and all the naive speed bounds are tight. The 2D
variant exercises the orientation dispatch that scalar 1D laws never need.
*/

// LinearAdvection1D transports a scalar at constant speed A.
type LinearAdvection1D struct {
	EquationOfDims
	A float64
}

func NewLinearAdvection1D(a float64) LinearAdvection1D {
	return LinearAdvection1D{EquationOfDims{NDims: 1, NVars: 1}, a}
}

func (eq LinearAdvection1D) Flux(q State, orientation int) State {
	eq.CheckOrientation(orientation)
	return ScalarState(eq.A * q.Scalar())
}

func (eq LinearAdvection1D) MaxAbsSpeedNaive(qL, qR State, orientation int) float64 {
	eq.CheckOrientation(orientation)
	return math.Abs(eq.A)
}

func (eq LinearAdvection1D) MinMaxSpeedNaive(qL, qR State, orientation int) (lambdaMin, lambdaMax float64) {
	eq.CheckOrientation(orientation)
	return eq.A, eq.A
}

func (eq LinearAdvection1D) MaxAbsSpeeds(q State) []float64 {
	return []float64{math.Abs(eq.A)}
}

func (eq LinearAdvection1D) Cons2Prim(q State) State {
	eq.CheckState(q)
	return ScalarState(q.Scalar())
}

func (eq LinearAdvection1D) Cons2Entropy(q State) State {
	eq.CheckState(q)
	return ScalarState(q.Scalar())
}

func (eq LinearAdvection1D) Entropy(q State) float64 {
	u := q.Scalar()
	return 0.5 * u * u
}

func (eq LinearAdvection1D) EnergyTotal(q State) float64 {
	return eq.Entropy(q)
}

func (eq LinearAdvection1D) VarNamesCons() []string    { return []string{"scalar"} }
func (eq LinearAdvection1D) VarNamesPrim() []string    { return []string{"scalar"} }
func (eq LinearAdvection1D) VarNamesEntropy() []string { return []string{"scalar"} }

// FluxEC for a linear flux is the central average: a (u_L + u_R)/2
// conserves the square entropy exactly.
func (eq LinearAdvection1D) FluxEC(qL, qR State, orientation int) State {
	eq.CheckOrientation(orientation)
	return ScalarState(0.5 * eq.A * (qL.Scalar() + qR.Scalar()))
}

// FluxGodunov for linear advection is pure upwinding.
func (eq LinearAdvection1D) FluxGodunov(qL, qR State, orientation int) State {
	eq.CheckOrientation(orientation)
	if eq.A >= 0 {
		return ScalarState(eq.A * qL.Scalar())
	}
	return ScalarState(eq.A * qR.Scalar())
}

// FluxEngquistOsher coincides with Godunov for a linear flux:
// f⁺ = max(a,0) u, f⁻ = min(a,0) u.
func (eq LinearAdvection1D) FluxEngquistOsher(qL, qR State, orientation int) State {
	eq.CheckOrientation(orientation)
	return ScalarState(math.Max(eq.A, 0)*qL.Scalar() + math.Min(eq.A, 0)*qR.Scalar())
}

func (eq LinearAdvection1D) InitialConditionConstant(x []float64, t float64) State {
	return ScalarState(2.0)
}

// InitialConditionConvergenceTest is the exact traveling wave
// u(x,t) = 2 + sin(ω(x − a t)); linear transport needs no source term.
func (eq LinearAdvection1D) InitialConditionConvergenceTest(x []float64, t float64) State {
	return ScalarState(2.0 + math.Sin(convOmega*(x[0]-eq.A*t)))
}

func (eq LinearAdvection1D) SourceTermsConvergenceTest(q State, x []float64, t float64) State {
	return ScalarState(0)
}

// LinearAdvection2D transports a scalar at constant velocity (A[0], A[1]).
type LinearAdvection2D struct {
	EquationOfDims
	A [2]float64
}

func NewLinearAdvection2D(ax, ay float64) LinearAdvection2D {
	return LinearAdvection2D{EquationOfDims{NDims: 2, NVars: 1}, [2]float64{ax, ay}}
}

func (eq LinearAdvection2D) Flux(q State, orientation int) State {
	eq.CheckOrientation(orientation)
	return ScalarState(eq.A[orientation-1] * q.Scalar())
}

func (eq LinearAdvection2D) MaxAbsSpeedNaive(qL, qR State, orientation int) float64 {
	eq.CheckOrientation(orientation)
	return math.Abs(eq.A[orientation-1])
}

func (eq LinearAdvection2D) MinMaxSpeedNaive(qL, qR State, orientation int) (lambdaMin, lambdaMax float64) {
	eq.CheckOrientation(orientation)
	a := eq.A[orientation-1]
	return a, a
}

func (eq LinearAdvection2D) MaxAbsSpeeds(q State) []float64 {
	return []float64{math.Abs(eq.A[0]), math.Abs(eq.A[1])}
}

func (eq LinearAdvection2D) Cons2Prim(q State) State {
	eq.CheckState(q)
	return ScalarState(q.Scalar())
}

func (eq LinearAdvection2D) Cons2Entropy(q State) State {
	eq.CheckState(q)
	return ScalarState(q.Scalar())
}

func (eq LinearAdvection2D) Entropy(q State) float64 {
	u := q.Scalar()
	return 0.5 * u * u
}

func (eq LinearAdvection2D) EnergyTotal(q State) float64 {
	return eq.Entropy(q)
}

func (eq LinearAdvection2D) VarNamesCons() []string    { return []string{"scalar"} }
func (eq LinearAdvection2D) VarNamesPrim() []string    { return []string{"scalar"} }
func (eq LinearAdvection2D) VarNamesEntropy() []string { return []string{"scalar"} }

func (eq LinearAdvection2D) FluxEC(qL, qR State, orientation int) State {
	eq.CheckOrientation(orientation)
	return ScalarState(0.5 * eq.A[orientation-1] * (qL.Scalar() + qR.Scalar()))
}

func (eq LinearAdvection2D) FluxGodunov(qL, qR State, orientation int) State {
	eq.CheckOrientation(orientation)
	a := eq.A[orientation-1]
	if a >= 0 {
		return ScalarState(a * qL.Scalar())
	}
	return ScalarState(a * qR.Scalar())
}

func (eq LinearAdvection2D) InitialConditionConstant(x []float64, t float64) State {
	return ScalarState(2.0)
}

// InitialConditionConvergenceTest is the plane wave
// u(x,y,t) = 2 + sin(ω(x + y − (a_x + a_y) t)).
func (eq LinearAdvection2D) InitialConditionConvergenceTest(x []float64, t float64) State {
	phase := convOmega * (x[0] + x[1] - (eq.A[0]+eq.A[1])*t)
	return ScalarState(2.0 + math.Sin(phase))
}

func (eq LinearAdvection2D) SourceTermsConvergenceTest(q State, x []float64, t float64) State {
	return ScalarState(0)
}
