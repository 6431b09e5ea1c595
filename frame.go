package stagelight

// Signal identifies one audio feature in a Frame. The set is fixed; Frame
// lookups index a flat array, so reading a signal is a couple of loads.
type Signal uint8

const (
	SignalFreqAll      Signal = iota // full-spectrum energy
	SignalFreqHigh                   // high-band energy (drums, hats)
	SignalFreqLow                    // low-band energy (bass, kick)
	SignalSustainedLow               // slow-attack low-band envelope

	signalCount
)

// Frame carries one tick's audio feature values. Produced by an external
// analyzer; the engine only reads it. All values are in [0, 1].
type Frame struct {
	// Time is the frame timestamp in seconds. Monotonic within a show run;
	// time-based effects difference consecutive values for dt.
	Time float64

	values [signalCount]float64
}

// NewFrame builds a Frame from per-signal values. Values are clamped to
// [0, 1]; signals absent from the map read as 0.
func NewFrame(time float64, values map[Signal]float64) Frame {
	f := Frame{Time: time}
	for sig, v := range values {
		if int(sig) < int(signalCount) {
			f.values[sig] = clamp01(v)
		}
	}
	return f
}

// Signal returns the value of sig in [0, 1]. Unknown signals read as 0.
func (f Frame) Signal(sig Signal) float64 {
	if int(sig) >= int(signalCount) {
		return 0
	}
	return f.values[sig]
}

// Scaled returns a copy of the frame with every signal multiplied by factor
// (clamped back to [0, 1]).
func (f Frame) Scaled(factor float64) Frame {
	out := Frame{Time: f.Time}
	for i, v := range f.values {
		out.values[i] = clamp01(v * factor)
	}
	return out
}
