package InputParameters

import (
	"fmt"
	"strings"

	"github.com/ghodss/yaml"

	"github.com/notargets/gosph/harmonics"
)

type FitMethod uint8

const (
	LeastSquares FitMethod = iota
	Projection
)

var (
	FitMethodNames = map[string]FitMethod{
		"leastsquares": LeastSquares,
		"projection":   Projection,
	}
	FitMethodPrintNames = []string{"LeastSquares", "Projection"}
)

func (fm FitMethod) String() string {
	if int(fm) < len(FitMethodPrintNames) {
		return FitMethodPrintNames[fm]
	}
	return fmt.Sprintf("FitMethod(%d)", int(fm))
}

// Parameters obtained from the YAML input file of a harmonic fit
type FitParameters struct {
	Title        string    `yaml:"Title"`
	Degree       int       `yaml:"Degree"`
	Kind         string    `yaml:"Kind"`
	Method       string    `yaml:"Method"`
	Coefficients []float64 `yaml:"Coefficients"` // Target expansion, canonical (l, m) order
	Positions    []float64 `yaml:"Positions"`    // Axis values of the sample lattice, least squares only
}

func (ip *FitParameters) Parse(data []byte) (err error) {
	if err = yaml.Unmarshal(data, ip); err != nil {
		return
	}
	return ip.Validate()
}

func (ip *FitParameters) HarmonicKind() (harmonics.Kind, error) {
	if len(ip.Kind) == 0 {
		return harmonics.Spherical, nil
	}
	return harmonics.ParseKind(ip.Kind)
}

func (ip *FitParameters) FitMethod() (fm FitMethod, err error) {
	if len(ip.Method) == 0 {
		return LeastSquares, nil
	}
	var ok bool
	if fm, ok = FitMethodNames[strings.ToLower(ip.Method)]; !ok {
		err = fmt.Errorf("unknown fit method %q, want LeastSquares or Projection", ip.Method)
	}
	return
}

func (ip *FitParameters) Validate() (err error) {
	var (
		kind harmonics.Kind
		fm   FitMethod
	)
	if ip.Degree < 0 {
		return fmt.Errorf("degree %d is negative", ip.Degree)
	}
	if kind, err = ip.HarmonicKind(); err != nil {
		return
	}
	if fm, err = ip.FitMethod(); err != nil {
		return
	}
	if n := (ip.Degree + 1) * (ip.Degree + 1); len(ip.Coefficients) != n {
		return fmt.Errorf("degree %d needs %d coefficients, have %d", ip.Degree, n, len(ip.Coefficients))
	}
	switch fm {
	case LeastSquares:
		if len(ip.Positions) == 0 {
			return fmt.Errorf("least squares fit needs sample Positions")
		}
	case Projection:
		if kind != harmonics.Spherical {
			return fmt.Errorf("projection fit needs Kind Spherical, have %s", kind)
		}
	}
	return
}

func (ip *FitParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("[%d]\t\t\t\t= Degree\n", ip.Degree)
	fmt.Printf("[%s]\t\t= Kind\n", ip.Kind)
	fmt.Printf("[%s]\t\t= Method\n", ip.Method)
	fmt.Printf("%v\t= Coefficients\n", ip.Coefficients)
	if len(ip.Positions) != 0 {
		fmt.Printf("%v\t= Positions\n", ip.Positions)
	}
}
