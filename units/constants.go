package units

import (
	"math"
)

// Standard gravity, ISO 80000-3.
const GForce = MetersPerSecondSquared(9.80665)

// Standard sea level pressure, ISO 2533.
const AtmosphericPressure = Pascals(101325)

// ISA sea level temperature (15 C).
const TemperatureStd = Kelvin(288.15)

const AbsoluteZero = Kelvin(0)

// Properties of air and water at ISA sea level conditions, in SI units.
const (
	AirDensityStd            = 1.225
	GasConstantAir           = 287.058
	GammaAir                 = 1.4
	AirViscosityStd          = 1.81e-5
	AirKinematicViscosityStd = 1.48e-5
	SpeedOfSoundStd          = 340.3
	WaterDensity             = 1000.0
	UniversalGasConstant     = 8.314462618
	BoltzmannConstant        = 1.380649e-23
)

const (
	TwoPi    = 2 * math.Pi
	HalfPi   = math.Pi / 2
	DegToRad = math.Pi / 180
	RadToDeg = 180 / math.Pi

	FullRotation    = Radians(TwoPi)
	HalfRotation    = Radians(math.Pi)
	QuarterRotation = Radians(HalfPi)
)

// Conversion factors.
const (
	KMHToMS = 1 / 3.6
	MSToKMH = 3.6
	MPHToMS = 0.44704
	MSToMPH = 1 / 0.44704
	BarToPa = 100000.0
	PaToBar = 1 / 100000.0
	PSIToPa = 6894.757
	PaToPSI = 1 / 6894.757
)
