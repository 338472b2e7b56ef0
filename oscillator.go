// oscillator.go - stateful sample generator with phase-preserving period cache

package main

// Oscillator owns a precomputed period cache and the phase at which the
// next call to GetSamples/GetSamplesWithInterpolatedAmp will begin reading.
type Oscillator struct {
	periodCache []float32
	phase       int
}

// NewOscillator precomputes the period cache for waveform at frequency and
// sampleRate and sets phase to 0.
func NewOscillator(waveform Waveform, frequency float32, sampleRate int) *Oscillator {
	return &Oscillator{
		periodCache: waveform.generatePeriod(frequency, sampleRate),
		phase:       0,
	}
}

// GetSamples emits n samples at constant amplitude beginning at the current
// phase, then advances phase by n (mod period length).
func (o *Oscillator) GetSamples(n int, amplitude float32) []float32 {
	samples := roll(o.periodCache, o.phase, n)
	for i := range samples {
		samples[i] *= amplitude
	}
	o.advancePhase(n)
	return samples
}

// GetSamplesWithInterpolatedAmp emits n samples whose kth element is
// periodCache[(phase+k) mod L] * a(k), where a(k) linearly interpolates
// from startAmp at k=0 to endAmp at k=n-1 inclusive. Advances phase by n.
func (o *Oscillator) GetSamplesWithInterpolatedAmp(n int, startAmp, endAmp float32) []float32 {
	samples := roll(o.periodCache, o.phase, n)
	multiplyOverLinspace(samples, startAmp, endAmp)
	o.advancePhase(n)
	return samples
}

func (o *Oscillator) advancePhase(n int) {
	o.phase = (o.phase + n) % len(o.periodCache)
}

// multiplyOverLinspace scales data[i] in place by the ith point of a linear
// interpolation from start to end across len(data) points (inclusive at
// both ends when len(data) > 1).
func multiplyOverLinspace(data []float32, start, end float32) {
	n := len(data)
	if n == 0 {
		return
	}
	if n == 1 {
		data[0] *= start
		return
	}
	step := (end - start) / float32(n-1)
	for i := range data {
		data[i] *= start + step*float32(i)
	}
}
