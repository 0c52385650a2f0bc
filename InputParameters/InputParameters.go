package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type InputParameters1D struct {
	Title     string  `yaml:"Title"`
	CFL       float64 `yaml:"CFL"`
	FluxType  string  `yaml:"FluxType"`
	InitType  string  `yaml:"InitType"`
	Equation  string  `yaml:"Equation"`
	FinalTime float64 `yaml:"FinalTime"`
	K         int     `yaml:"K"` // Number of cells
	XMin      float64 `yaml:"XMin"`
	XMax      float64 `yaml:"XMax"`
}

func (ip *InputParameters1D) Parse(data []byte) error {
	if err := yaml.Unmarshal(data, ip); err != nil {
		return err
	}
	return ip.Validate()
}

func (ip *InputParameters1D) Validate() error {
	if ip.CFL <= 0 {
		return fmt.Errorf("CFL must be positive, got %v", ip.CFL)
	}
	if ip.K <= 0 {
		return fmt.Errorf("K (cell count) must be positive, got %d", ip.K)
	}
	if ip.XMax <= ip.XMin {
		return fmt.Errorf("XMax (%v) must exceed XMin (%v)", ip.XMax, ip.XMin)
	}
	switch ip.InitType {
	case "", "Freestream", "ConvergenceTest":
	default:
		return fmt.Errorf("unknown InitType %q", ip.InitType)
	}
	switch ip.Equation {
	case "", "Burgers", "Advection":
	default:
		return fmt.Errorf("unknown Equation %q", ip.Equation)
	}
	return nil
}

func (ip *InputParameters1D) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.FinalTime)
	fmt.Printf("[%s]\t\t\t= Flux Type\n", ip.FluxType)
	fmt.Printf("[%s]\t= InitType\n", ip.InitType)
	fmt.Printf("[%s]\t\t\t= Equation\n", ip.Equation)
	fmt.Printf("[%d]\t\t\t\t= Number of Cells\n", ip.K)
	fmt.Printf("[%v,%v]\t\t\t= Domain\n", ip.XMin, ip.XMax)
}
