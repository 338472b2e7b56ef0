// section_interpreter.go - binds one oscillator to a vertical band of a layer

package main

// LayerMetadata describes which vertical extent of an image layer a
// SectionInterpreter is responsible for. Immutable after construction.
type LayerMetadata struct {
	LayerID        uint16
	YStart         int
	YEnd           int
	TotalImgHeight int
}

// SectionInterpreter derives an amplitude from the pixels in [YStart,YEnd)
// of a layer matrix and asks its oscillator for interpolated-amplitude
// samples. lastAmplitude carries the previous chunk's amplitude so
// successive calls interpolate smoothly instead of clicking.
type SectionInterpreter struct {
	oscillator    *Oscillator
	yStart, yEnd  int
	lastAmplitude float32
}

// NewSectionInterpreter builds a section interpreter covering [yStart,yEnd)
// driven by osc. lastAmplitude starts at 0. A degenerate band (yStart ==
// yEnd) is permitted — it arises when the band count exceeds the layer's
// pixel height and always reports amplitude 0.
func NewSectionInterpreter(osc *Oscillator, yStart, yEnd int) *SectionInterpreter {
	if yStart < 0 || yStart > yEnd {
		panic("section interpreter: invalid band bounds")
	}
	return &SectionInterpreter{
		oscillator: osc,
		yStart:     yStart,
		yEnd:       yEnd,
	}
}

// Interpret restricts matrix to columns [all], rows [yStart,yEnd), derives
// the chunk-ending amplitude from the mean brightness of that view, and
// returns numSamples samples ramped from lastAmplitude to that amplitude.
func (s *SectionInterpreter) Interpret(numSamples int, matrix LumaMatrix) []float32 {
	if s.yEnd > matrix.Height() {
		panic("section interpreter: band bounds outside image")
	}
	endAmplitude := amplitudeFromBand(matrix, s.yStart, s.yEnd)
	samples := s.oscillator.GetSamplesWithInterpolatedAmp(numSamples, s.lastAmplitude, endAmplitude)
	s.lastAmplitude = endAmplitude
	return samples
}

// amplitudeFromBand returns the mean of all u8 pixels in matrix's columns,
// restricted to rows [yStart,yEnd), scaled into [0,1].
func amplitudeFromBand(matrix LumaMatrix, yStart, yEnd int) float32 {
	width := matrix.Width()
	if width == 0 || yEnd <= yStart {
		return 0
	}
	var sum int
	for x := 0; x < width; x++ {
		for y := yStart; y < yEnd; y++ {
			sum += int(matrix.At(x, y))
		}
	}
	count := width * (yEnd - yStart)
	return float32(sum) / float32(count) / 255.0
}
