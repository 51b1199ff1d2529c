/*package telemetry records named scalar channels during a simulation run.

Providers are used in the inner simulation loop, so channels are registered
once up front and every Log call is an index into preallocated storage.
NoOp satisfies Provider with empty methods for runs where nothing should be
recorded; MemoryRecorder keeps the most recent samples of each channel in a
ring buffer.
*/
package telemetry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// ChannelID is a handle to a registered channel.
type ChannelID uint32

// InvalidChannel is returned by providers which cannot register another
// channel. Logging to it is a no-op.
const InvalidChannel = ChannelID(math.MaxUint32)

// Provider is implemented by anything which can record telemetry.
type Provider interface {
	// RegisterChannel registers a channel with a human-readable name (e.g.
	// "vehicle.speed") and a unit symbol (e.g. "m/s"). It must not be called
	// from the hot loop; store the returned ID instead.
	RegisterChannel(name, unit string) ChannelID
	// Log records a scalar value on a channel.
	Log(id ChannelID, value float64)
	// LogVector records the components of v on three channels.
	LogVector(ids VectorChannelIDs, v r3.Vec)
}

var (
	_ Provider = NoOp{}
	_ Provider = &MemoryRecorder{}
)

// LogBool records a boolean on a channel as 0 or 1.
func LogBool(p Provider, id ChannelID, value bool) {
	if value {
		p.Log(id, 1)
	} else {
		p.Log(id, 0)
	}
}

// NoOp is a Provider which discards everything.
type NoOp struct{}

func (NoOp) RegisterChannel(name, unit string) ChannelID { return 0 }
func (NoOp) Log(id ChannelID, value float64)             {}
func (NoOp) LogVector(ids VectorChannelIDs, v r3.Vec)    {}

// VectorChannelIDs holds the channels for the components of a vector.
type VectorChannelIDs struct {
	X, Y, Z ChannelID
}

// RegisterVector registers the channels base.x, base.y and base.z.
func RegisterVector(p Provider, base, unit string) VectorChannelIDs {
	return VectorChannelIDs{
		X: p.RegisterChannel(base+".x", unit),
		Y: p.RegisterChannel(base+".y", unit),
		Z: p.RegisterChannel(base+".z", unit),
	}
}
