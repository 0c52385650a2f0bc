package InputParameters

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yamlInput := `
Title: "Convergence Study"
CFL: 0.5
FluxType: Godunov
InitType: ConvergenceTest
Equation: Burgers
FinalTime: 1
K: 200
XMin: 0
XMax: 1
`
	ip := &InputParameters1D{}
	require.NoError(t, ip.Parse([]byte(yamlInput)))
	assert.Equal(t, "Convergence Study", ip.Title)
	assert.Equal(t, 0.5, ip.CFL)
	assert.Equal(t, "Godunov", ip.FluxType)
	assert.Equal(t, "ConvergenceTest", ip.InitType)
	assert.Equal(t, "Burgers", ip.Equation)
	assert.Equal(t, 1.0, ip.FinalTime)
	assert.Equal(t, 200, ip.K)
	assert.Equal(t, 0.0, ip.XMin)
	assert.Equal(t, 1.0, ip.XMax)
}

func TestValidate(t *testing.T) {
	good := InputParameters1D{CFL: 0.5, K: 10, XMin: 0, XMax: 1}
	assert.NoError(t, good.Validate())

	bad := good
	bad.CFL = 0
	assert.Error(t, bad.Validate())

	bad = good
	bad.K = -1
	assert.Error(t, bad.Validate())

	bad = good
	bad.XMax = -1
	assert.Error(t, bad.Validate())

	bad = good
	bad.InitType = "SodShockTube"
	assert.Error(t, bad.Validate())

	bad = good
	bad.Equation = "Euler"
	assert.Error(t, bad.Validate())

	// Parse surfaces validation failures too
	ip := &InputParameters1D{}
	assert.Error(t, ip.Parse([]byte("CFL: -1\nK: 10\nXMax: 1\n")))
}
