// waveform.go - waveform period generation for band oscillators

package main

import "math"

const twoPi = 2 * math.Pi

// Waveform selects the shape of one period of an oscillator.
type Waveform int

const (
	WaveformSine Waveform = iota
	WaveformSquare
)

func (w Waveform) String() string {
	switch w {
	case WaveformSine:
		return "sine"
	case WaveformSquare:
		return "square"
	default:
		return "unknown"
	}
}

// ParseWaveform maps a CLI-facing name to a Waveform. Used by main.go to
// decode the --waveform flag.
func ParseWaveform(name string) (Waveform, error) {
	switch name {
	case "sine":
		return WaveformSine, nil
	case "square":
		return WaveformSquare, nil
	default:
		return 0, errUnknownWaveform(name)
	}
}

// periodLength returns floor(sampleRate / frequency). frequency must be > 0.
func periodLength(frequency float32, sampleRate int) int {
	if frequency <= 0 {
		panic("waveform: invalid frequency, must be > 0")
	}
	return int(float32(sampleRate) / frequency)
}

// generatePeriod returns one cycle of w at frequency, sampled at sampleRate.
// The returned slice has exactly periodLength(frequency, sampleRate) elements.
func (w Waveform) generatePeriod(frequency float32, sampleRate int) []float32 {
	n := periodLength(frequency, sampleRate)
	period := make([]float32, n)
	switch w {
	case WaveformSine:
		populateSinePeriod(period)
	case WaveformSquare:
		populateSquarePeriod(period)
	default:
		panic("waveform: unknown waveform")
	}
	return period
}

func populateSinePeriod(period []float32) {
	xScale := twoPi / float64(len(period))
	for i := range period {
		period[i] = float32(math.Sin(float64(i) * xScale))
	}
}

func populateSquarePeriod(period []float32) {
	highLen := (len(period) + 1) / 2
	for i := range period {
		if i < highLen {
			period[i] = 1.0
		} else {
			period[i] = -1.0
		}
	}
}
