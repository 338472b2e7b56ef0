// conductor.go - wires dispatcher, interpreters, mixer and sink together

package main

import "github.com/charmbracelet/log"

// Conductor wires one dispatcher, one interpreter per channel exporter, one
// mixer, and one sink, per spec.md §4.10. Band frequencies are drawn from a
// harmonic series built on Config.Fundamental, reversed so the topmost
// band of each layer gets the highest partial.
type Conductor struct {
	cfg    Config
	logger *log.Logger
}

// NewConductor builds a conductor from cfg. logger may be nil, in which
// case a default logger writing to stderr is used.
func NewConductor(cfg Config, logger *log.Logger) *Conductor {
	if logger == nil {
		logger = log.Default()
	}
	return &Conductor{cfg: cfg, logger: logger}
}

// Run wires the pipeline and blocks for the lifetime of the run: until the
// source image is exhausted and the sink has drained (file mode), or
// forever (live device mode, per spec.md §6).
func (c *Conductor) Run() error {
	if err := c.cfg.Validate(); err != nil {
		return err
	}

	dispatcher, err := NewDispatcher(c.cfg.ImagePath, c.cfg.ChunkWidth)
	if err != nil {
		return err
	}

	exporters := dispatcher.Exporters()
	receivers := make([]<-chan []float32, 0, len(exporters))

	for _, exporter := range exporters {
		layerHandlers := make(map[uint16][]*SectionInterpreter, len(exporter.LayersMetadata))
		for _, layer := range exporter.LayersMetadata {
			layerHandlers[layer.LayerID] = deriveSectionInterpreters(layer, c.cfg)
		}

		samples := make(chan []float32, 4)
		interpreter := NewImageInterpreter(exporter.Packets, samples, c.cfg.SamplesPerPixel, layerHandlers)
		go interpreter.Interpret()

		receivers = append(receivers, samples)
	}

	mixer := NewMixer(receivers, c.cfg.ExpectedMaxAmp())
	mixed := mixer.Mix()

	sink := c.buildSink()
	c.logger.Info("sonifying", "image", c.cfg.ImagePath, "bands", c.cfg.Bands,
		"fundamental", c.cfg.Fundamental, "waveform", c.cfg.Waveform.String())

	err = sink.Stream(mixed)

	if live, ok := sink.(*LiveSink); ok {
		c.logger.Info("live sink stopped", "underruns", live.Underruns())
	}

	return err
}

func (c *Conductor) buildSink() AudioSink {
	if c.cfg.OutputPath != "" {
		c.logger.Info("writing wav file", "path", c.cfg.OutputPath)
		return NewFileSink(c.cfg.OutputPath)
	}
	c.logger.Info("streaming to live output device")
	return NewLiveSink()
}

// harmonicSeries returns [1*f0, 2*f0, ..., k*f0]. harmonicSeries(f0, 0) is
// empty.
func harmonicSeries(f0 float32, k int) []float32 {
	series := make([]float32, k)
	for i := range series {
		series[i] = float32(i+1) * f0
	}
	return series
}

// deriveSectionInterpreters divides layer's vertical extent into Config.Bands
// equal bands of h = height/Bands rows, clamped to the layer, and assigns
// each a harmonic partial, reversed so the topmost band (smallest y) gets
// the highest partial. When Bands does not divide the height, the rows past
// Bands*h are not covered by any band.
func deriveSectionInterpreters(layer LayerMetadata, cfg Config) []*SectionInterpreter {
	k := cfg.Bands
	series := harmonicSeries(cfg.Fundamental, k)
	h := (layer.YEnd - layer.YStart) / k

	sections := make([]*SectionInterpreter, k)
	for i := 0; i < k; i++ {
		yStart := clampInt(layer.YStart+i*h, layer.YStart, layer.YEnd)
		yEnd := clampInt(layer.YStart+(i+1)*h, layer.YStart, layer.YEnd)
		freq := series[k-1-i]
		osc := NewOscillator(cfg.Waveform, freq, sinkSampleRate)
		sections[i] = NewSectionInterpreter(osc, yStart, yEnd)
	}
	return sections
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
