// sink_live.go - live device adapter: pulls mixed chunks into the system's default output

package main

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
)

// liveBufferFrames documents the reference frames-per-buffer contract
// (spec.md §4.9/§6) and the real-time budget it implies (~23ms at
// 44100Hz). oto v3 manages its own internal pull buffer sizes, so no code
// reads this constant.
const liveBufferFrames = 1024

const heartbeatInterval = 500 * time.Millisecond

// LiveSink streams mixed chunks to the default system audio output device
// via oto. The sample ring is owned entirely by the player's Read callback;
// there is no shared mutable state and no lock in the hot path. underrunCount
// is the one exception: it is only ever incremented from that callback and
// only ever read after Stream returns, so no synchronization is needed.
type LiveSink struct {
	underrunCount int
}

// NewLiveSink constructs a live device adapter.
func NewLiveSink() *LiveSink {
	return &LiveSink{}
}

// Underruns returns the number of times the sample ring ran dry mid-stream
// and Read received the next chunk to refill it. Every refill after the
// first chunk counts, whether or not that receive had to wait for
// upstream. It does not count the final drain at end-of-stream.
func (s *LiveSink) Underruns() int {
	return s.underrunCount
}

// Stream configures a mono 44100Hz float32 output and pulls mixed chunks
// from receiver for as long as the process runs. Per spec.md §6, device
// mode never self-terminates: once receiver closes, the reader emits
// silence and the controlling goroutine sleeps in a heartbeat loop so the
// process stays alive until killed.
func (s *LiveSink) Stream(receiver <-chan []float32) error {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sinkSampleRate,
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
	})
	if err != nil {
		return err
	}
	<-ready

	reader := newLiveReader(receiver, s)
	player := ctx.NewPlayer(reader)
	player.Play()
	defer player.Close()

	for {
		time.Sleep(heartbeatInterval)
	}
}

// liveReader implements io.Reader for oto's Player, pulling mixed chunks
// into a sample ring and reshaping them to whatever byte count oto
// requests per call.
type liveReader struct {
	ring     *SampleBuffer[float32]
	receiver <-chan []float32
	sink     *LiveSink
	ended    bool
	started  bool
}

func newLiveReader(receiver <-chan []float32, sink *LiveSink) *liveReader {
	return &liveReader{
		ring:     NewSampleBuffer[float32](nil),
		receiver: receiver,
		sink:     sink,
	}
}

// Read fills p with len(p)/4 float32LE samples, following spec.md §4.9's
// pull algorithm: drain the ring; when it runs dry, block receiving the
// next mixed chunk and overwrite the ring with it. After the upstream
// channel closes, remaining requests are filled with silence.
func (r *liveReader) Read(p []byte) (int, error) {
	numSamples := len(p) / 4
	samples := make([]float32, numSamples)

	bufIdx := 0
	for bufIdx < numSamples {
		if r.ended {
			break
		}
		remaining := r.ring.ElementsRemaining()
		if remaining == 0 {
			next, ok := <-r.receiver
			if !ok {
				r.ended = true
				break
			}
			if r.started {
				r.sink.underrunCount++
			}
			r.started = true
			r.ring.Overwrite(next)
			continue
		}
		take := numSamples - bufIdx
		if take > remaining {
			take = remaining
		}
		r.ring.ConsumeInto(samples[bufIdx : bufIdx+take])
		bufIdx += take
	}

	putFloat32LE(p, samples)
	return len(p), nil
}

func putFloat32LE(dst []byte, samples []float32) {
	for i, v := range samples {
		binary.LittleEndian.PutUint32(dst[i*4:], math.Float32bits(v))
	}
}
