// main.go - command-line entry point

package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

const defaultImagePath = "resources/ascending_line.png"

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: false})

	var (
		output          = pflag.StringP("output", "o", "", "write audio to this .wav file instead of the live output device")
		bands           = pflag.IntP("bands", "k", 60, "number of vertical bands (harmonic partials) per layer")
		fundamental     = pflag.Float32P("fundamental", "f", 23.5, "fundamental frequency in Hz of the harmonic series")
		chunkWidth      = pflag.IntP("chunk-width", "w", 100, "dispatcher slice width in pixels")
		samplesPerPixel = pflag.Int("samples-per-pixel", 4410, "audio samples synthesized per pixel column")
		waveformName    = pflag.String("waveform", "square", "oscillator waveform: sine or square")
	)
	pflag.Usage = func() {
		os.Stderr.WriteString("Usage: spectropixel [flags] [image-path]\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	imagePath := defaultImagePath
	if pflag.NArg() > 0 {
		imagePath = pflag.Arg(0)
	}

	waveform, err := ParseWaveform(*waveformName)
	if err != nil {
		logger.Fatal(err)
	}

	cfg := Config{
		ImagePath:       imagePath,
		OutputPath:      *output,
		Bands:           *bands,
		Fundamental:     *fundamental,
		ChunkWidth:      *chunkWidth,
		SamplesPerPixel: *samplesPerPixel,
		Waveform:        waveform,
	}

	conductor := NewConductor(cfg, logger)
	if err := conductor.Run(); err != nil {
		logger.Fatal(err)
	}
}
