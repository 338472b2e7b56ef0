// errors.go - configuration-failure error constructors

package main

import "fmt"

func errUnknownWaveform(name string) error {
	return fmt.Errorf("unknown waveform %q: must be \"sine\" or \"square\"", name)
}

func errBadOutputPath(path string) error {
	return fmt.Errorf("output path %q must end in .wav", path)
}

func errBadBandCount(k int) error {
	return fmt.Errorf("band count must be >= 1, got %d", k)
}

func errBadFundamental(f float32) error {
	return fmt.Errorf("fundamental frequency must be > 0, got %v", f)
}

func errBadChunkWidth(w int) error {
	return fmt.Errorf("chunk width must be >= 1, got %d", w)
}

func errBadSamplesPerPixel(n int) error {
	return fmt.Errorf("samples per pixel must be >= 1, got %d", n)
}
