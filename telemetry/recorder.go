package telemetry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// RingBufferConfig sizes a MemoryRecorder.
type RingBufferConfig struct {
	// SamplesPerChannel is the number of samples kept for each channel.
	// Older samples are overwritten.
	SamplesPerChannel int
	// MaxChannels is the maximum number of channels which can be registered.
	MaxChannels int
}

// DefaultRingBufferConfig returns room for 10,000 samples on each of 256
// channels.
func DefaultRingBufferConfig() RingBufferConfig {
	return RingBufferConfig{SamplesPerChannel: 10000, MaxChannels: 256}
}

// ForDuration returns a config which keeps the last seconds of data recorded
// at hz samples per second.
func ForDuration(seconds, hz float64, maxChannels int) RingBufferConfig {
	return RingBufferConfig{
		SamplesPerChannel: int(math.Ceil(seconds * hz)),
		MaxChannels:       maxChannels,
	}
}

// ChannelMetadata describes a registered channel.
type ChannelMetadata struct {
	Name, Unit string
}

// MemoryRecorder is a Provider which keeps recent samples of every channel
// in memory. Storage for a channel is allocated when it is registered, so
// Log never allocates.
//
// MemoryRecorder is not safe for concurrent use.
type MemoryRecorder struct {
	config   RingBufferConfig
	metadata []ChannelMetadata
	// data holds the samples of channel i in
	// data[i*SamplesPerChannel: (i+1)*SamplesPerChannel].
	data   []float64
	writes []int
	counts []int
}

// NewMemoryRecorder creates a recorder with the given sizes.
func NewMemoryRecorder(config RingBufferConfig) *MemoryRecorder {
	return &MemoryRecorder{
		config:   config,
		metadata: make([]ChannelMetadata, 0, config.MaxChannels),
		writes:   make([]int, 0, config.MaxChannels),
		counts:   make([]int, 0, config.MaxChannels),
	}
}

// RegisterChannel registers a channel and returns its ID. If MaxChannels
// channels already exist, or the recorder has no room for samples,
// InvalidChannel is returned.
func (rec *MemoryRecorder) RegisterChannel(name, unit string) ChannelID {
	if len(rec.metadata) >= rec.config.MaxChannels ||
		rec.config.SamplesPerChannel <= 0 {
		return InvalidChannel
	}

	id := ChannelID(len(rec.metadata))
	rec.metadata = append(rec.metadata, ChannelMetadata{Name: name, Unit: unit})
	rec.writes = append(rec.writes, 0)
	rec.counts = append(rec.counts, 0)
	rec.data = append(rec.data, make([]float64, rec.config.SamplesPerChannel)...)
	return id
}

// Log records value on the channel id. Unknown channels are ignored.
func (rec *MemoryRecorder) Log(id ChannelID, value float64) {
	i := int(id)
	if id == InvalidChannel || i >= len(rec.metadata) {
		return
	}

	n := rec.config.SamplesPerChannel
	w := rec.writes[i]
	rec.data[i*n+w] = value
	rec.writes[i] = (w + 1) % n
	if rec.counts[i] < n {
		rec.counts[i]++
	}
}

// LogVector records the components of v.
func (rec *MemoryRecorder) LogVector(ids VectorChannelIDs, v r3.Vec) {
	rec.Log(ids.X, v.X)
	rec.Log(ids.Y, v.Y)
	rec.Log(ids.Z, v.Z)
}

// ChannelCount returns the number of registered channels.
func (rec *MemoryRecorder) ChannelCount() int { return len(rec.metadata) }

// Metadata returns the metadata of a channel and whether it exists.
func (rec *MemoryRecorder) Metadata(id ChannelID) (ChannelMetadata, bool) {
	if id == InvalidChannel || int(id) >= len(rec.metadata) {
		return ChannelMetadata{}, false
	}
	return rec.metadata[id], true
}

// SampleCount returns the number of samples currently held for a channel.
func (rec *MemoryRecorder) SampleCount(id ChannelID) int {
	if id == InvalidChannel || int(id) >= len(rec.counts) {
		return 0
	}
	return rec.counts[id]
}

// ChannelData returns the held samples of a channel, oldest first, and
// whether the channel exists. The returned slice is a copy.
func (rec *MemoryRecorder) ChannelData(id ChannelID) ([]float64, bool) {
	if id == InvalidChannel || int(id) >= len(rec.metadata) {
		return nil, false
	}

	i, n := int(id), rec.config.SamplesPerChannel
	buf := rec.data[i*n : (i+1)*n]
	count, w := rec.counts[i], rec.writes[i]

	out := make([]float64, 0, count)
	if count < n {
		return append(out, buf[:count]...), true
	}
	out = append(out, buf[w:]...)
	return append(out, buf[:w]...), true
}

// Clear drops all samples but keeps the registered channels.
func (rec *MemoryRecorder) Clear() {
	for i := range rec.writes {
		rec.writes[i], rec.counts[i] = 0, 0
	}
	for i := range rec.data {
		rec.data[i] = 0
	}
}
