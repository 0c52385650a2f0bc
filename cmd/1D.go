/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/notargets/goclaw/InputParameters"
	"github.com/notargets/goclaw/model_problems/Burgers1D"
)

// OneDCmd represents the 1D command
var OneDCmd = &cobra.Command{
	Use:   "1D",
	Short: "One dimensional scalar conservation law model runs",
	Long: `
Runs the scalar 1D finite volume model problem with a selectable equation,
numerical flux and test case,

goclaw 1D `,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("1D called")
		ip := processInput(cmd)
		ip.Print()
		c, err := Burgers1D.NewSolver(ip)
		if err != nil {
			fmt.Printf("error: %s\n", err.Error())
			os.Exit(1)
		}
		c.Run()
		l2, linf := c.ErrorNorms(ip.FinalTime)
		fmt.Printf("Final error norms: L2 = %12.6e, Linf = %12.6e\n", l2, linf)
	},
}

func processInput(cmd *cobra.Command) (ip *InputParameters.InputParameters1D) {
	ip = &InputParameters.InputParameters1D{}
	icFile, _ := cmd.Flags().GetString("inputConditionsFile")
	if len(icFile) != 0 {
		data, err := os.ReadFile(icFile)
		if err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			exampleFile := `
########################################
Title: "Convergence Study"
CFL: 0.5
FluxType: Godunov
InitType: ConvergenceTest # Can be "Freestream"
Equation: Burgers # Can be "Advection"
FinalTime: 1
K: 200
XMin: 0
XMax: 1
########################################
`
			fmt.Printf("error: %s\n", err.Error())
			fmt.Printf("Example File:%s\n", exampleFile)
			os.Exit(1)
		}
		return
	}
	ip.Title = "1D Model Run"
	ip.CFL, _ = cmd.Flags().GetFloat64("CFL")
	ip.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
	ip.K, _ = cmd.Flags().GetInt("k")
	ip.FluxType, _ = cmd.Flags().GetString("flux")
	ip.InitType, _ = cmd.Flags().GetString("case")
	ip.Equation, _ = cmd.Flags().GetString("equation")
	ip.XMin, ip.XMax = 0, 1
	if err := ip.Validate(); err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	return
}

func init() {
	rootCmd.AddCommand(OneDCmd)
	OneDCmd.Flags().IntP("k", "k", 100, "Number of cells in model")
	OneDCmd.Flags().Float64("CFL", 0.5, "CFL - increase for speedup, decrease for stability")
	OneDCmd.Flags().Float64("finalTime", 1.0, "FinalTime - the target end time for the sim")
	OneDCmd.Flags().StringP("flux", "f", "lax", "numerical flux: lax, ec, godunov, engquistosher")
	OneDCmd.Flags().StringP("case", "c", "ConvergenceTest", "Case to run: Freestream or ConvergenceTest")
	OneDCmd.Flags().StringP("equation", "e", "Burgers", "Equation to solve: Burgers or Advection")
	OneDCmd.Flags().StringP("inputConditionsFile", "I", "", "YAML input parameters file, overrides other flags")
}
