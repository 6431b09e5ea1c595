package stagelight

import "testing"

func TestNewFrameClampsValues(t *testing.T) {
	f := NewFrame(1.5, map[Signal]float64{
		SignalFreqAll:  0.5,
		SignalFreqHigh: 2.0,
		SignalFreqLow:  -0.5,
	})
	if got := f.Signal(SignalFreqAll); got != 0.5 {
		t.Errorf("FreqAll = %v, want 0.5", got)
	}
	if got := f.Signal(SignalFreqHigh); got != 1 {
		t.Errorf("FreqHigh = %v, want clamped to 1", got)
	}
	if got := f.Signal(SignalFreqLow); got != 0 {
		t.Errorf("FreqLow = %v, want clamped to 0", got)
	}
	if f.Time != 1.5 {
		t.Errorf("Time = %v, want 1.5", f.Time)
	}
}

func TestFrameMissingSignalReadsZero(t *testing.T) {
	f := NewFrame(0, nil)
	if got := f.Signal(SignalSustainedLow); got != 0 {
		t.Errorf("missing signal = %v, want 0", got)
	}
	if got := f.Signal(Signal(200)); got != 0 {
		t.Errorf("out-of-range signal = %v, want 0", got)
	}
}

func TestFrameScaled(t *testing.T) {
	f := NewFrame(2, map[Signal]float64{SignalFreqAll: 0.4, SignalFreqLow: 0.8})
	half := f.Scaled(0.5)
	if got := half.Signal(SignalFreqAll); got != 0.2 {
		t.Errorf("scaled FreqAll = %v, want 0.2", got)
	}
	doubled := f.Scaled(2)
	if got := doubled.Signal(SignalFreqLow); got != 1 {
		t.Errorf("scaled FreqLow = %v, want clamped to 1", got)
	}
	if doubled.Time != 2 {
		t.Errorf("Time = %v, want preserved", doubled.Time)
	}
}
