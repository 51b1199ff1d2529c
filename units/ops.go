package units

import (
	"math"
)

// Linear motion.

func (d Meters) Per(t Seconds) MetersPerSecond   { return MetersPerSecond(float64(d) / float64(t)) }
func (v MetersPerSecond) Times(t Seconds) Meters { return Meters(float64(v) * float64(t)) }
func (t Seconds) Times(v MetersPerSecond) Meters { return v.Times(t) }
func (v MetersPerSecond) Per(t Seconds) MetersPerSecondSquared {
	return MetersPerSecondSquared(float64(v) / float64(t))
}
func (a MetersPerSecondSquared) Times(t Seconds) MetersPerSecond {
	return MetersPerSecond(float64(a) * float64(t))
}

// Force, work and power.

func (m Kilograms) Times(a MetersPerSecondSquared) Newtons { return Newtons(float64(m) * float64(a)) }
func (f Newtons) Per(m Kilograms) MetersPerSecondSquared {
	return MetersPerSecondSquared(float64(f) / float64(m))
}
func (f Newtons) Times(d Meters) Joules          { return Joules(float64(f) * float64(d)) }
func (f Newtons) Torque(arm Meters) NewtonMeters { return NewtonMeters(float64(f) * float64(arm)) }
func (tq NewtonMeters) Force(arm Meters) Newtons { return Newtons(float64(tq) / float64(arm)) }
func (f Newtons) Power(v MetersPerSecond) Watts  { return Watts(float64(f) * float64(v)) }
func (tq NewtonMeters) Power(w RadiansPerSecond) Watts {
	return Watts(float64(tq) * float64(w))
}
func (e Joules) Per(t Seconds) Watts   { return Watts(float64(e) / float64(t)) }
func (p Watts) Times(t Seconds) Joules { return Joules(float64(p) * float64(t)) }

// NewtonMeters and Joules share a dimension but not a meaning; converting
// between them is explicit.

func (tq NewtonMeters) Joules() Joules      { return Joules(tq) }
func (e Joules) NewtonMeters() NewtonMeters { return NewtonMeters(e) }

// Angular motion.

func (a Radians) Per(t Seconds) RadiansPerSecond { return RadiansPerSecond(float64(a) / float64(t)) }
func (w RadiansPerSecond) Times(t Seconds) Radians {
	return Radians(float64(w) * float64(t))
}
func (w RadiansPerSecond) Per(t Seconds) RadiansPerSecondSquared {
	return RadiansPerSecondSquared(float64(w) / float64(t))
}
func (a RadiansPerSecondSquared) Times(t Seconds) RadiansPerSecond {
	return RadiansPerSecond(float64(a) * float64(t))
}

// Surface speed of a point at radius r on a body spinning at w.
func (w RadiansPerSecond) Surface(r Meters) MetersPerSecond {
	return MetersPerSecond(float64(w) * float64(r))
}

// Conversions.

func (k Kelvin) Celsius() float64     { return float64(k) - 273.15 }
func (k Kelvin) Fahrenheit() float64  { return (float64(k)-273.15)*9/5 + 32 }
func FromCelsius(c float64) Kelvin    { return Kelvin(c + 273.15) }
func FromFahrenheit(f float64) Kelvin { return Kelvin((f-32)*5/9 + 273.15) }

func (p Pascals) Bar() float64    { return float64(p) / BarToPa }
func (p Pascals) KPa() float64    { return float64(p) / 1000 }
func (p Pascals) PSI() float64    { return float64(p) / PSIToPa }
func FromBar(bar float64) Pascals { return Pascals(bar * BarToPa) }
func FromKPa(kpa float64) Pascals { return Pascals(kpa * 1000) }
func FromPSI(psi float64) Pascals { return Pascals(psi * PSIToPa) }

func (v MetersPerSecond) KMH() float64    { return float64(v) * MSToKMH }
func (v MetersPerSecond) MPH() float64    { return float64(v) / MPHToMS }
func FromKMH(kmh float64) MetersPerSecond { return MetersPerSecond(kmh * KMHToMS) }
func FromMPH(mph float64) MetersPerSecond { return MetersPerSecond(mph * MPHToMS) }

func (a MetersPerSecondSquared) G() float64  { return float64(a) / float64(GForce) }
func FromG(g float64) MetersPerSecondSquared { return MetersPerSecondSquared(g * float64(GForce)) }

func (a Radians) Degrees() float64    { return float64(a) * RadToDeg }
func FromDegrees(deg float64) Radians { return Radians(deg * DegToRad) }
func (a Radians) Sin() float64        { return math.Sin(float64(a)) }
func (a Radians) Cos() float64        { return math.Cos(float64(a)) }
func (a Radians) Tan() float64        { return math.Tan(float64(a)) }

// Normalize wraps a into [0, 2pi).
func (a Radians) Normalize() Radians {
	r := math.Mod(float64(a), TwoPi)
	if r < 0 {
		r += TwoPi
	}
	return Radians(r)
}

func (n RPM) RadiansPerSecond() RadiansPerSecond { return RadiansPerSecond(float64(n) * math.Pi / 30) }
func (w RadiansPerSecond) RPM() RPM              { return RPM(float64(w) * 30 / math.Pi) }
