// sink_file.go - file writer adapter: drains mixed chunks to a mono float32 WAV file

package main

import (
	"fmt"
	"math"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// wavFormatIEEEFloat is the RIFF/WAVE format tag for 32-bit IEEE float PCM.
const wavFormatIEEEFloat = 3

// FileSink drains receiver to exhaustion, writing every sample as a 32-bit
// float into a mono, 44100Hz RIFF/WAVE file, then closes the file.
type FileSink struct {
	path string
}

// NewFileSink builds a file writer adapter targeting path. path must end in
// ".wav"; callers should validate that before calling Stream.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// Stream opens the output file, writes every sample it receives as f32,
// and closes the file once receiver closes. go-audio/wav's Encoder.Write
// takes an audio.IntBuffer; for IEEE-float output it reinterprets each
// Data element's bit pattern as a float32, so samples are packed via
// math.Float32bits rather than truncated to integers.
func (s *FileSink) Stream(receiver <-chan []float32) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("file sink: creating %q: %w", s.path, err)
	}
	defer f.Close()

	encoder := wav.NewEncoder(f, sinkSampleRate, 32, 1, wavFormatIEEEFloat)
	defer encoder.Close()

	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 1, SampleRate: sinkSampleRate},
		SourceBitDepth: 32,
	}

	for chunk := range receiver {
		buf.Data = buf.Data[:0]
		for _, sample := range chunk {
			buf.Data = append(buf.Data, int(math.Float32bits(sample)))
		}
		if err := encoder.Write(buf); err != nil {
			return fmt.Errorf("file sink: writing samples: %w", err)
		}
	}

	return nil
}
