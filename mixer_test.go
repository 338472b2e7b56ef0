package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddChunkToMaybeEmpty_AdoptsLengthWhenEmpty(t *testing.T) {
	dest := addChunkToMaybeEmpty(nil, []float32{1, 2, 3})
	assert.Equal(t, []float32{1, 2, 3}, dest)
}

func TestAddChunkToMaybeEmpty_SumsElementwise(t *testing.T) {
	dest := addChunkToMaybeEmpty([]float32{1, 2, 3}, []float32{10, 20, 30})
	assert.Equal(t, []float32{11, 22, 33}, dest)
}

func TestAddChunkToMaybeEmpty_PanicsOnLengthMismatch(t *testing.T) {
	assert.Panics(t, func() {
		addChunkToMaybeEmpty([]float32{1, 2}, []float32{1, 2, 3})
	})
}

func TestCompress_DividesBySameDivisor(t *testing.T) {
	samples := []float32{1, 2, 4}
	compress(samples, 2)
	assert.Equal(t, []float32{0.5, 1, 2}, samples)
}

func TestCompress_LeavesOutOfRangeValuesUnclamped(t *testing.T) {
	samples := []float32{10}
	compress(samples, 1)
	assert.Equal(t, float32(10), samples[0])
}

func TestMixer_Mix_SumsAndCompressesAlignedChunks(t *testing.T) {
	a := make(chan []float32, 1)
	b := make(chan []float32, 1)
	a <- []float32{1, 1}
	b <- []float32{1, 1}
	close(a)
	close(b)

	mixer := NewMixer([]<-chan []float32{a, b}, 2)
	out := mixer.Mix()

	select {
	case chunk, ok := <-out:
		require.True(t, ok)
		assert.Equal(t, []float32{1, 1}, chunk)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for mixed chunk")
	}

	_, ok := <-out
	assert.False(t, ok, "mixer output should close once any receiver closes")
}

func TestMixer_Mix_ClosesWhenAnyReceiverCloses(t *testing.T) {
	a := make(chan []float32)
	close(a)
	mixer := NewMixer([]<-chan []float32{a}, 1)
	out := mixer.Mix()

	select {
	case _, ok := <-out:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for mixer to close output")
	}
}
