package harmonics

import (
	"fmt"
	"math"
	"strings"

	"github.com/notargets/gosph/coords"
	"github.com/notargets/gosph/utils"
)

type Kind uint8

const (
	Spherical Kind = iota
	RegularSolid
	IrregularSolid
)

var (
	KindNames = map[string]Kind{
		"spherical":      Spherical,
		"regularsolid":   RegularSolid,
		"irregularsolid": IrregularSolid,
	}
	KindPrintNames = []string{"Spherical", "RegularSolid", "IrregularSolid"}
)

func (k Kind) String() string {
	if int(k) < len(KindPrintNames) {
		return KindPrintNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind accepts the print names in any case, with or without separators
func ParseKind(label string) (k Kind, err error) {
	key := strings.ToLower(strings.NewReplacer("_", "", "-", "", " ", "").Replace(label))
	var ok bool
	if k, ok = KindNames[key]; !ok {
		err = fmt.Errorf("unknown harmonic kind %q, want one of %v", label, KindPrintNames)
	}
	return
}

// solidScale is the radial factor that turns Y_l^m into a solid harmonic
func (k Kind) solidScale(l int, r float64) float64 {
	norm := math.Sqrt(4 * math.Pi / float64(2*l+1))
	switch k {
	case RegularSolid:
		return norm * utils.POW(r, l)
	case IrregularSolid:
		return norm * utils.POW(r, -(l+1))
	default:
		return 1
	}
}

// EvalComplex evaluates the complex harmonic of this kind at p
func (k Kind) EvalComplex(l, m int, p coords.Coordinates) (y complex128, err error) {
	if y, err = Complex(l, m, p); err != nil {
		return
	}
	if k == Spherical {
		return
	}
	sc := k.solidScale(l, p.R())
	y = complex(real(y)*sc, imag(y)*sc)
	err = checkFinite(l, m, real(y), imag(y))
	return
}

// EvalReal evaluates the real harmonic of this kind at p
func (k Kind) EvalReal(l, m int, p coords.Coordinates) (y float64, err error) {
	if y, err = RealClosedForm(l, m, p); err != nil {
		return
	}
	if k == Spherical {
		return
	}
	y *= k.solidScale(l, p.R())
	err = checkFinite(l, m, y)
	return
}
