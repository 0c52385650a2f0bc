package Burgers1D

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"gonum.org/v1/gonum/floats"

	"github.com/notargets/goclaw/InputParameters"
	"github.com/notargets/goclaw/equations"
	"github.com/notargets/goclaw/fluxes"
)

/*
Minimal periodic finite volume driver for the scalar 1D laws. It is the
in-repo consumer of the equation/flux contract: cell averages on a uniform
grid, one numerical flux per interface, SSP RK3 in time with a CFL
controlled step. Used for free stream preservation checks and
manufactured solution convergence studies.
*/

type CaseType uint

const (
	CASE_Freestream CaseType = iota
	CASE_ConvergenceTest
)

var caseNames = []string{"Freestream", "ConvergenceTest"}

func (ct CaseType) Print() string { return caseNames[ct] }

func NewCaseType(label string) (ct CaseType, err error) {
	switch label {
	case "", "Freestream":
		ct = CASE_Freestream
	case "ConvergenceTest":
		ct = CASE_ConvergenceTest
	default:
		err = fmt.Errorf("unable to use case named %s", label)
	}
	return
}

type Solver struct {
	// Input parameters
	CFL, FinalTime float64
	K              int // Number of cells
	XMin, XMax     float64
	Case           CaseType

	Eq       equations.Equation
	Flux     fluxes.NumericalFlux
	FluxName fluxes.FluxType

	DX float64
	X  []float64 // Cell centers
	U  []float64 // Cell averages of the scalar field

	ic     equations.InitialCondition
	source equations.SourceTerms

	logger *slog.Logger
}

// scalarCase picks the initial condition and source pair for the
// supported scalar equations.
func scalarCase(eq equations.Equation, ct CaseType) (ic equations.InitialCondition, src equations.SourceTerms, err error) {
	type caseFuncs interface {
		InitialConditionConstant(x []float64, t float64) equations.State
		InitialConditionConvergenceTest(x []float64, t float64) equations.State
		SourceTermsConvergenceTest(q equations.State, x []float64, t float64) equations.State
	}
	cf, ok := eq.(caseFuncs)
	if !ok {
		err = fmt.Errorf("%T does not define the driver's initial condition set", eq)
		return
	}
	switch ct {
	case CASE_Freestream:
		ic = cf.InitialConditionConstant
	case CASE_ConvergenceTest:
		ic = cf.InitialConditionConvergenceTest
		src = cf.SourceTermsConvergenceTest
	default:
		err = fmt.Errorf("unknown case type %d", ct)
	}
	return
}

func NewSolver(ip *InputParameters.InputParameters1D) (c *Solver, err error) {
	var eq equations.Equation
	switch ip.Equation {
	case "", "Burgers":
		eq = equations.NewBurgers1D()
	case "Advection":
		eq = equations.NewLinearAdvection1D(1.0)
	default:
		err = fmt.Errorf("unknown equation %q", ip.Equation)
		return
	}
	ct, err := NewCaseType(ip.InitType)
	if err != nil {
		return
	}
	ftLabel := ip.FluxType
	if ftLabel == "" {
		ftLabel = "lax"
	}
	return newSolver(eq, fluxes.NewFluxType(ftLabel), ct, ip.CFL, ip.FinalTime, ip.XMin, ip.XMax, ip.K)
}

func newSolver(eq equations.Equation, ft fluxes.FluxType, ct CaseType,
	CFL, FinalTime, XMin, XMax float64, K int) (c *Solver, err error) {
	if eq.NumDims() != 1 || eq.NumVars() != 1 {
		err = fmt.Errorf("driver handles scalar 1D laws, got %dD with %d variables",
			eq.NumDims(), eq.NumVars())
		return
	}
	c = &Solver{
		CFL:       CFL,
		FinalTime: FinalTime,
		K:         K,
		XMin:      XMin,
		XMax:      XMax,
		Case:      ct,
		Eq:        eq,
		FluxName:  ft,
		logger: slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		})),
	}
	if c.Flux, err = fluxes.NewNumericalFlux(ft, eq); err != nil {
		return
	}
	if c.ic, c.source, err = scalarCase(eq, ct); err != nil {
		return
	}
	c.DX = (XMax - XMin) / float64(K)
	c.X = make([]float64, K)
	for i := range c.X {
		c.X[i] = XMin + (float64(i)+0.5)*c.DX
	}
	c.U = make([]float64, K)
	c.setInitialCondition()
	return
}

// NewConvergenceSolver builds a solver running the manufactured solution
// case on K cells of the unit periodic domain.
func NewConvergenceSolver(eq equations.Equation, ft fluxes.FluxType, CFL, FinalTime float64, K int) (*Solver, error) {
	return newSolver(eq, ft, CASE_ConvergenceTest, CFL, FinalTime, 0, 1, K)
}

// NewFreestreamSolver builds a solver running the constant state case.
func NewFreestreamSolver(eq equations.Equation, ft fluxes.FluxType, CFL, FinalTime float64, K int) (*Solver, error) {
	return newSolver(eq, ft, CASE_Freestream, CFL, FinalTime, 0, 1, K)
}

func (c *Solver) setInitialCondition() {
	for i, x := range c.X {
		c.U[i] = c.ic([]float64{x}, 0).Scalar()
	}
}

// CalculateDT applies the CFL condition over the per cell spectral radius
// bound, clipped so the last step lands exactly on FinalTime.
func (c *Solver) CalculateDT(Time float64) (dt float64) {
	var maxSpeed float64
	for _, u := range c.U {
		speeds := c.Eq.MaxAbsSpeeds(equations.ScalarState(u))
		if speeds[0] > maxSpeed {
			maxSpeed = speeds[0]
		}
	}
	if maxSpeed == 0 {
		dt = c.FinalTime - Time
		return
	}
	dt = c.CFL * c.DX / maxSpeed
	if dt+Time > c.FinalTime {
		dt = c.FinalTime - Time
	}
	return
}

// RHS assembles -(F_{i+1/2} - F_{i-1/2})/dx + s for every cell on the
// periodic grid. Interface i sits between cells i-1 and i.
func (c *Solver) RHS(U []float64, Time float64) (rhs []float64) {
	var (
		K = c.K
		F = make([]float64, K+1)
	)
	for i := 0; i <= K; i++ {
		iL := (i - 1 + K) % K
		iR := i % K
		fNum := c.Flux(equations.ScalarState(U[iL]), equations.ScalarState(U[iR]), 1)
		F[i] = fNum.Scalar()
	}
	rhs = make([]float64, K)
	oodx := 1. / c.DX
	for i := 0; i < K; i++ {
		rhs[i] = -(F[i+1] - F[i]) * oodx
		if c.source != nil {
			rhs[i] += c.source(equations.ScalarState(U[i]), []float64{c.X[i]}, Time).Scalar()
		}
	}
	return
}

func (c *Solver) Run() {
	var (
		logFrequency = 50
		Time         float64
		tstep        int
	)
	c.logger.Info("running 1D scalar model",
		"equation", fmt.Sprintf("%T", c.Eq),
		"flux", c.FluxName.Print(),
		"case", c.Case.Print(),
		"K", c.K, "CFL", c.CFL, "finalTime", c.FinalTime)
	for Time < c.FinalTime {
		/*
			Third Order SSP Runge-Kutta time advancement
		*/
		dt := c.CalculateDT(Time)

		// SSP RK Stage 1
		rhs := c.RHS(c.U, Time)
		u1 := make([]float64, c.K)
		copy(u1, c.U)
		floats.AddScaled(u1, dt, rhs)

		// SSP RK Stage 2
		rhs = c.RHS(u1, Time+dt)
		u2 := make([]float64, c.K)
		for i := range u2 {
			u2[i] = (3*c.U[i] + u1[i] + dt*rhs[i]) * (1. / 4.)
		}

		// SSP RK Stage 3
		rhs = c.RHS(u2, Time+0.5*dt)
		for i := range c.U {
			c.U[i] = (c.U[i] + 2*u2[i] + 2*dt*rhs[i]) * (1. / 3.)
		}

		Time += dt
		tstep++
		isDone := math.Abs(Time-c.FinalTime) < 1.e-12
		if tstep%logFrequency == 0 || isDone {
			l2, linf := c.ErrorNorms(Time)
			c.logger.Info("step", "tstep", tstep, "time", Time, "dt", dt,
				"L2", l2, "Linf", linf)
		}
		if isDone {
			break
		}
	}
}

// ErrorNorms compares the field to the exact case solution at time t.
// L2 is the grid weighted norm sqrt(dx Σ e²), Linf the max cell error.
func (c *Solver) ErrorNorms(t float64) (l2, linf float64) {
	diff := make([]float64, c.K)
	for i, x := range c.X {
		diff[i] = c.U[i] - c.ic([]float64{x}, t).Scalar()
	}
	l2 = floats.Norm(diff, 2) * math.Sqrt(c.DX)
	linf = floats.Norm(diff, math.Inf(1))
	return
}
