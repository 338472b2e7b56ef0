// image_dispatcher.go - slices the source raster into vertical column-chunks

package main

import (
	"fmt"
	"image"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// LumaMatrix is a zero-copy [x,y]-indexed view over a row-major 8-bit
// grayscale buffer of shape (width,height). matrix.At(x,y) equals the
// luminance of the pixel at column x, row y.
type LumaMatrix struct {
	pix    []uint8
	width  int
	height int
}

func (m LumaMatrix) Width() int  { return m.width }
func (m LumaMatrix) Height() int { return m.height }

// At returns the luminance sample at column x, row y.
func (m LumaMatrix) At(x, y int) uint8 {
	return m.pix[y*m.width+x]
}

// ImagePacket maps layer id to that layer's luminance matrix for one
// vertical column-slice of the source image.
type ImagePacket map[uint16]LumaMatrix

// LayerExtractor derives a LumaMatrix for one layer from a vertical slice
// of the source image. sliceX is the slice's left edge in the full image's
// coordinate space; sliceWidth is its width.
type LayerExtractor func(src image.Image, sliceX, sliceWidth, fullHeight int) LumaMatrix

// grayscaleExtractor is the default extractor: it converts the RGB slice to
// grayscale using the standard library's luminance weighting (the same
// Rec.601-style weights image/color uses for color.GrayModel) and hands
// back the resulting buffer directly as a LumaMatrix, with no extra copy
// beyond the conversion itself.
func grayscaleExtractor(src image.Image, sliceX, sliceWidth, fullHeight int) LumaMatrix {
	bounds := src.Bounds()
	dst := image.NewGray(image.Rect(0, 0, sliceWidth, fullHeight))
	draw.Draw(dst, dst.Bounds(), src, image.Pt(bounds.Min.X+sliceX, bounds.Min.Y), draw.Src)
	return LumaMatrix{pix: dst.Pix, width: sliceWidth, height: fullHeight}
}

// ChannelExporter exposes one output channel's packet stream along with the
// layer metadata describing what those packets contain.
type ChannelExporter struct {
	LayersMetadata []LayerMetadata
	Packets        <-chan ImagePacket
}

// Dispatcher opens a source image and iterates it in vertical column-slices
// of width ChunkWidth, extracting one or more per-layer luminance matrices
// per slice.
type Dispatcher struct {
	img        image.Image
	chunkWidth int
	extractors map[uint16]LayerExtractor
}

// NewDispatcher opens the image at path and configures dispatch in slices
// of chunkWidth columns using a single default grayscale layer (id 0).
func NewDispatcher(path string, chunkWidth int) (*Dispatcher, error) {
	if chunkWidth < 1 {
		return nil, errBadChunkWidth(chunkWidth)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dispatcher: opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("dispatcher: decoding image: %w", err)
	}

	return newDispatcherFromImage(img, chunkWidth), nil
}

func newDispatcherFromImage(img image.Image, chunkWidth int) *Dispatcher {
	return &Dispatcher{
		img:        img,
		chunkWidth: chunkWidth,
		extractors: map[uint16]LayerExtractor{0: grayscaleExtractor},
	}
}

// Exporters spawns the dispatch goroutine and returns one ChannelExporter
// per configured output channel. In this implementation exactly one
// exporter is produced, covering the full image height as a single layer;
// the shape permits more (see SPEC_FULL.md's supplemented-features note).
func (d *Dispatcher) Exporters() []ChannelExporter {
	height := d.img.Bounds().Dy()

	layersMetadata := make([]LayerMetadata, 0, len(d.extractors))
	for layerID := range d.extractors {
		layersMetadata = append(layersMetadata, LayerMetadata{
			LayerID:        layerID,
			YStart:         0,
			YEnd:           height,
			TotalImgHeight: height,
		})
	}

	packets := make(chan ImagePacket, 4)
	go d.dispatch(packets)

	return []ChannelExporter{{
		LayersMetadata: layersMetadata,
		Packets:        packets,
	}}
}

// dispatch iterates the whole image exactly once in chunkWidth-wide
// vertical slices, emitting one ImagePacket per slice, then closes packets
// so downstream interpreters observe end-of-stream.
func (d *Dispatcher) dispatch(packets chan<- ImagePacket) {
	defer close(packets)

	bounds := d.img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	x := 0
	for x+d.chunkWidth < width {
		packets <- d.extractSlice(x, d.chunkWidth, height)
		x += d.chunkWidth
	}
	packets <- d.extractSlice(x, width-x, height)
}

func (d *Dispatcher) extractSlice(sliceX, sliceWidth, fullHeight int) ImagePacket {
	packet := make(ImagePacket, len(d.extractors))
	for layerID, extract := range d.extractors {
		packet[layerID] = extract(d.img, sliceX, sliceWidth, fullHeight)
	}
	return packet
}
