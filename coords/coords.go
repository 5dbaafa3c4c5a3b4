package coords

import "math"

// Coordinates of a point in 3D space. Polar is measured from the +z axis,
// Azimuth from the +x axis in the xy plane.
type Coordinates interface {
	R() float64
	Polar() float64
	Azimuth() float64
	X() float64
	Y() float64
	Z() float64
}

type Spherical struct {
	Radius, PolarAngle, AzimuthAngle float64
}

func NewSpherical(r, polar, azimuth float64) Spherical {
	return Spherical{Radius: r, PolarAngle: polar, AzimuthAngle: azimuth}
}

// OnUnitSphere is the common case for spherical harmonics tables
func OnUnitSphere(polar, azimuth float64) Spherical {
	return NewSpherical(1, polar, azimuth)
}

func (s Spherical) R() float64       { return s.Radius }
func (s Spherical) Polar() float64   { return s.PolarAngle }
func (s Spherical) Azimuth() float64 { return s.AzimuthAngle }
func (s Spherical) X() float64 {
	return s.Radius * math.Sin(s.PolarAngle) * math.Cos(s.AzimuthAngle)
}
func (s Spherical) Y() float64 {
	return s.Radius * math.Sin(s.PolarAngle) * math.Sin(s.AzimuthAngle)
}
func (s Spherical) Z() float64 { return s.Radius * math.Cos(s.PolarAngle) }

type Cartesian struct {
	Xc, Yc, Zc float64
}

func NewCartesian(x, y, z float64) Cartesian {
	return Cartesian{Xc: x, Yc: y, Zc: z}
}

func (c Cartesian) X() float64 { return c.Xc }
func (c Cartesian) Y() float64 { return c.Yc }
func (c Cartesian) Z() float64 { return c.Zc }
func (c Cartesian) R() float64 { return math.Sqrt(c.Xc*c.Xc + c.Yc*c.Yc + c.Zc*c.Zc) }

// Polar is zero at the origin
func (c Cartesian) Polar() float64 {
	r := c.R()
	if r == 0 {
		return 0
	}
	// Clamp against roundoff pushing |z/r| past 1
	return math.Acos(math.Max(-1, math.Min(1, c.Zc/r)))
}

// Azimuth uses the full quadrant, in (-Pi, Pi]
func (c Cartesian) Azimuth() float64 {
	return math.Atan2(c.Yc, c.Xc)
}

// ToSpherical evaluates all spherical components once, useful when a point is
// reused across many harmonics
func ToSpherical(p Coordinates) Spherical {
	if s, ok := p.(Spherical); ok {
		return s
	}
	return NewSpherical(p.R(), p.Polar(), p.Azimuth())
}

// CartesianGrid returns the points of the tensor product axis x axis x axis
func CartesianGrid(axis []float64) (pts []Coordinates) {
	pts = make([]Coordinates, 0, len(axis)*len(axis)*len(axis))
	for _, x := range axis {
		for _, y := range axis {
			for _, z := range axis {
				pts = append(pts, NewCartesian(x, y, z))
			}
		}
	}
	return
}
