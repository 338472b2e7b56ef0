// image_interpreter.go - fans image packets out over band interpreters, mixes them into chunks

package main

// ImageInterpreter consumes image packets from one channel exporter, fans
// each packet out over that layer's band interpreters, sums the band
// outputs into one mixed buffer per chunk, and forwards the buffer
// downstream.
type ImageInterpreter struct {
	packets         <-chan ImagePacket
	samples         chan<- []float32
	samplesPerPixel int
	layerHandlers   map[uint16][]*SectionInterpreter
}

// NewImageInterpreter builds an interpreter reading packets from packets,
// writing mixed chunks to samples, producing samplesPerPixel samples per
// pixel of slice width, and driving the given bands per layer.
func NewImageInterpreter(
	packets <-chan ImagePacket,
	samples chan<- []float32,
	samplesPerPixel int,
	layerHandlers map[uint16][]*SectionInterpreter,
) *ImageInterpreter {
	if samplesPerPixel < 1 {
		panic("image interpreter: samplesPerPixel must be >= 1")
	}
	return &ImageInterpreter{
		packets:         packets,
		samples:         samples,
		samplesPerPixel: samplesPerPixel,
		layerHandlers:   layerHandlers,
	}
}

// Interpret blocks receiving packets until the packet channel closes. For
// each packet it mixes every band's output into one buffer and sends it on
// samples, then closes samples when it returns. It does not detect a
// downstream receiver that has stopped reading: the send then blocks and
// Interpret does not return.
func (ii *ImageInterpreter) Interpret() {
	defer close(ii.samples)

	for packet := range ii.packets {
		sliceWidth := firstMatrixWidth(packet)
		n := ii.samplesPerPixel * sliceWidth
		mixed := make([]float32, n)

		for layerID, matrix := range packet {
			for _, section := range ii.layerHandlers[layerID] {
				band := section.Interpret(n, matrix)
				for i, v := range band {
					mixed[i] += v
				}
			}
		}

		ii.samples <- mixed
	}
}

func firstMatrixWidth(packet ImagePacket) int {
	for _, matrix := range packet {
		return matrix.Width()
	}
	return 0
}
