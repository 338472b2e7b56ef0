// sink.go - uniform streaming contract for a live device or a file writer

package main

const sinkSampleRate = 44100

// AudioSink pulls mixed chunks from receiver and pushes them to a host
// sink (live audio device or file), reshaping them to the sink's own
// buffer size as needed.
type AudioSink interface {
	Stream(receiver <-chan []float32) error
}
