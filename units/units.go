/*package units provides nominal wrapper types for SI quantities. Each type is
a float64 underneath, so converting to and from the raw numbers used by the
lookup tables is free, but the compiler refuses to mix quantities of
different dimensions. Operations between dimensions are only offered where
they are physically meaningful (Meters.Per(Seconds) gives MetersPerSecond,
but there is no way to add Meters to Seconds).
*/
package units

import (
	"math"
)

// Quantity is satisfied by every unit type in this package.
type Quantity interface {
	~float64
	Symbol() string
}

type (
	Seconds                 float64
	Meters                  float64
	Kilograms               float64
	Kelvin                  float64
	Newtons                 float64
	Pascals                 float64
	NewtonMeters            float64
	Joules                  float64
	Watts                   float64
	MetersPerSecond         float64
	MetersPerSecondSquared  float64
	Radians                 float64
	RadiansPerSecond        float64
	RadiansPerSecondSquared float64
	RPM                     float64
)

func (Seconds) Symbol() string                 { return "s" }
func (Meters) Symbol() string                  { return "m" }
func (Kilograms) Symbol() string               { return "kg" }
func (Kelvin) Symbol() string                  { return "K" }
func (Newtons) Symbol() string                 { return "N" }
func (Pascals) Symbol() string                 { return "Pa" }
func (NewtonMeters) Symbol() string            { return "N*m" }
func (Joules) Symbol() string                  { return "J" }
func (Watts) Symbol() string                   { return "W" }
func (MetersPerSecond) Symbol() string         { return "m/s" }
func (MetersPerSecondSquared) Symbol() string  { return "m/s^2" }
func (Radians) Symbol() string                 { return "rad" }
func (RadiansPerSecond) Symbol() string        { return "rad/s" }
func (RadiansPerSecondSquared) Symbol() string { return "rad/s^2" }
func (RPM) Symbol() string                     { return "rpm" }

var symbols = map[string]bool{}

func init() {
	for _, sym := range []string{
		Seconds(0).Symbol(), Meters(0).Symbol(), Kilograms(0).Symbol(),
		Kelvin(0).Symbol(), Newtons(0).Symbol(), Pascals(0).Symbol(),
		NewtonMeters(0).Symbol(), Joules(0).Symbol(), Watts(0).Symbol(),
		MetersPerSecond(0).Symbol(), MetersPerSecondSquared(0).Symbol(),
		Radians(0).Symbol(), RadiansPerSecond(0).Symbol(),
		RadiansPerSecondSquared(0).Symbol(), RPM(0).Symbol(),
	} {
		symbols[sym] = true
	}
}

// Known reports whether sym is the symbol of one of the unit types in this
// package. The empty string, used for dimensionless quantities, is known.
func Known(sym string) bool {
	return sym == "" || symbols[sym]
}

// Add returns a + b.
func Add[Q Quantity](a, b Q) Q { return a + b }

// Sub returns a - b.
func Sub[Q Quantity](a, b Q) Q { return a - b }

// Scale returns q multiplied by a dimensionless factor.
func Scale[Q Quantity](q Q, f float64) Q { return Q(float64(q) * f) }

// Ratio returns the dimensionless ratio a / b.
func Ratio[Q Quantity](a, b Q) float64 { return float64(a) / float64(b) }

// Abs returns the magnitude of q.
func Abs[Q Quantity](q Q) Q { return Q(math.Abs(float64(q))) }

// Clamp limits q to the range [lo, hi].
func Clamp[Q Quantity](q, lo, hi Q) Q {
	if q < lo {
		return lo
	} else if q > hi {
		return hi
	}
	return q
}

// Raw strips the unit from each quantity. This is the usual way of handing
// typed values to a lookup table axis.
func Raw[Q Quantity](qs []Q) []float64 {
	out := make([]float64, len(qs))
	for i := range qs {
		out[i] = float64(qs[i])
	}
	return out
}
