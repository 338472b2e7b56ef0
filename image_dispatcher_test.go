package main

import (
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solidRows builds a width x height RGBA image where every pixel in row y
// has color rows[y], for use in orientation and luminance tests.
func solidRows(width int, rows []color.RGBA) *image.RGBA {
	height := len(rows)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y, c := range rows {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestGrayscaleExtractor_OrientationAndLuminanceWeights(t *testing.T) {
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}
	img := solidRows(3, []color.RGBA{red, green, blue})

	matrix := grayscaleExtractor(img, 0, 3, 3)
	require.Equal(t, 3, matrix.Width())
	require.Equal(t, 3, matrix.Height())

	// matrix.At(x,y) must address column x, row y: row 0 is red (dim),
	// row 1 green (bright), row 2 blue (dimmest), for every column.
	for x := 0; x < 3; x++ {
		assert.InDelta(t, 76, int(matrix.At(x, 0)), 2)
		assert.InDelta(t, 150, int(matrix.At(x, 1)), 2)
		assert.InDelta(t, 29, int(matrix.At(x, 2)), 2)
	}
}

func TestGrayscaleExtractor_HonorsSliceOffset(t *testing.T) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black := color.RGBA{A: 255}
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	img.Set(0, 0, black)
	img.Set(1, 0, black)
	img.Set(2, 0, white)
	img.Set(3, 0, white)

	left := grayscaleExtractor(img, 0, 2, 1)
	right := grayscaleExtractor(img, 2, 2, 1)

	assert.Equal(t, uint8(0), left.At(0, 0))
	assert.Equal(t, uint8(0), left.At(1, 0))
	assert.Equal(t, uint8(255), right.At(0, 0))
	assert.Equal(t, uint8(255), right.At(1, 0))
}

func TestDispatcher_Dispatch_SlicesIntoChunkWidthPiecesPlusRemainder(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 10, 2))
	d := newDispatcherFromImage(img, 4)

	exporters := d.Exporters()
	require.Len(t, exporters, 1)

	var widths []int
	timeout := time.After(time.Second)
	for i := 0; i < 3; i++ {
		select {
		case packet, ok := <-exporters[0].Packets:
			require.True(t, ok)
			widths = append(widths, packet[0].Width())
		case <-timeout:
			t.Fatal("timed out waiting for packet")
		}
	}
	assert.Equal(t, []int{4, 4, 2}, widths)

	_, ok := <-exporters[0].Packets
	assert.False(t, ok, "dispatcher should close packets after the image is exhausted")
}

func TestDispatcher_Dispatch_WidthSmallerThanChunkEmitsOneSlice(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 3, 1))
	d := newDispatcherFromImage(img, 100)
	exporters := d.Exporters()

	select {
	case packet, ok := <-exporters[0].Packets:
		require.True(t, ok)
		assert.Equal(t, 3, packet[0].Width())
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for packet")
	}

	_, ok := <-exporters[0].Packets
	assert.False(t, ok)
}

func TestNewDispatcher_RejectsInvalidChunkWidth(t *testing.T) {
	_, err := NewDispatcher("irrelevant.png", 0)
	assert.Error(t, err)
}
