package main

import (
	"bufio"
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"

	"gonum.org/v1/gonum/floats"
)

var (
	csvFile string
)

func main() {
	csvFilePtr := flag.String("csvFile", csvFile, "file containing entries of a convergence study")
	flag.Parse()
	csvFile = *csvFilePtr
	if len(csvFile) == 0 {
		flag.Usage()
		os.Exit(1)
	}
	fmt.Printf("Input file: %v\n", csvFile)
	studies := readCSV(csvFile)
	for _, cs := range studies {
		fmt.Printf("Title = %s, Flux = %s, CFL = %5.2f\n", cs.title, cs.flux, cs.CFL)
		for i := range cs.numPTS {
			fmt.Printf("%d, %v, %v\n", cs.numPTS[i], cs.l2[i], cs.linf[i])
		}
		fmt.Printf("Observed order: L2 = %5.3f, Linf = %5.3f\n",
			cs.Order(cs.l2), cs.Order(cs.linf))
	}
}

type ConvergenceStudy struct {
	title    string
	flux     string
	CFL      float64
	numPTS   []int
	l2, linf []float64
}

func NewConvergenceStudy(title, flux string, CFL float64) *ConvergenceStudy {
	return &ConvergenceStudy{
		title: title,
		flux:  flux,
		CFL:   CFL,
	}
}

func (cs *ConvergenceStudy) Add(numPTS int, l2, linf float64) {
	cs.numPTS = append(cs.numPTS, numPTS)
	cs.l2 = append(cs.l2, l2)
	cs.linf = append(cs.linf, linf)
}

// Order fits log(err) against log(h) by least squares and returns the
// slope, the observed convergence order of the series.
func (cs *ConvergenceStudy) Order(errs []float64) (order float64) {
	n := len(errs)
	if n < 2 {
		return math.NaN()
	}
	logH := make([]float64, n)
	logE := make([]float64, n)
	for i := range errs {
		logH[i] = -math.Log(float64(cs.numPTS[i]))
		logE[i] = math.Log(errs[i])
	}
	hMean := floats.Sum(logH) / float64(n)
	eMean := floats.Sum(logE) / float64(n)
	floats.AddConst(-hMean, logH)
	floats.AddConst(-eMean, logE)
	order = floats.Dot(logH, logE) / floats.Dot(logH, logH)
	return
}

func readCSV(csvFile string) (studies map[string]*ConvergenceStudy) {
	var (
		records  [][]string
		err      error
		f        *os.File
		ok       bool
		cs       *ConvergenceStudy
		cfl      float64
		l2, linf float64
	)
	studies = make(map[string]*ConvergenceStudy)
	if f, err = os.Open(csvFile); err != nil {
		panic(err)
	}
	r := csv.NewReader(bufio.NewReader(f))
	if records, err = r.ReadAll(); err != nil {
		panic(err)
	}
	for i, rec := range records {
		if i == 0 {
			continue
		}
		title, nptstxt, fluxtxt, cfltxt := rec[0], rec[1], rec[2], rec[3]
		npts, _ := strconv.Atoi(nptstxt)
		_, _ = fmt.Sscanf(cfltxt, "%f", &cfl)
		combTitle := title + fluxtxt
		if cs, ok = studies[combTitle]; !ok {
			cs = NewConvergenceStudy(title, fluxtxt, cfl)
			studies[combTitle] = cs
		}
		_, _ = fmt.Sscanf(rec[4], "%f", &l2)
		_, _ = fmt.Sscanf(rec[5], "%f", &linf)
		cs.Add(npts, l2, linf)
	}
	return
}
