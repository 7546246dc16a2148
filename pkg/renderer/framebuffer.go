package renderer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/GabrielDertoni/go-pathtracer/pkg/core"
)

// Framebuffer is an interleaved RGB8 pixel buffer. Pixels are addressed with
// explicit index arithmetic (offset = (y*width + x) * 3) and every write is
// bounds checked. During a render each slot is written exactly once, by
// exactly one worker, so the buffer needs no locking.
type Framebuffer struct {
	width  int
	height int
	pix    []uint8
}

// NewFramebuffer allocates a zeroed width×height RGB8 buffer
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("framebuffer dimensions must be positive, got %dx%d", width, height)
	}
	return &Framebuffer{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*3),
	}, nil
}

// Width returns the buffer width in pixels
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels
func (fb *Framebuffer) Height() int { return fb.height }

// SetRGB writes one pixel. Out-of-range coordinates are ignored, matching
// the stdlib image.RGBA convention.
func (fb *Framebuffer) SetRGB(x, y int, r, g, b uint8) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return
	}
	offset := (y*fb.width + x) * 3
	fb.pix[offset] = r
	fb.pix[offset+1] = g
	fb.pix[offset+2] = b
}

// RGB reads one pixel; out-of-range coordinates read as black
func (fb *Framebuffer) RGB(x, y int) (r, g, b uint8) {
	if x < 0 || x >= fb.width || y < 0 || y >= fb.height {
		return 0, 0, 0
	}
	offset := (y*fb.width + x) * 3
	return fb.pix[offset], fb.pix[offset+1], fb.pix[offset+2]
}

// Pix exposes the raw interleaved RGB bytes, row major
func (fb *Framebuffer) Pix() []uint8 {
	return fb.pix
}

// Image converts the buffer to an image.RGBA for encoding
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))
	for y := 0; y < fb.height; y++ {
		for x := 0; x < fb.width; x++ {
			r, g, b := fb.RGB(x, y)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// vec3ToRGB8 converts an averaged linear color to 8-bit channels: gamma-2
// correction (per-channel square root), clamp to [0, 0.999], then quantize
// by multiplying by 256 and truncating
func vec3ToRGB8(colorVec core.Vec3) (r, g, b uint8) {
	corrected := colorVec.GammaCorrect(2.0).Clamp(0.0, 0.999)
	return uint8(256 * corrected.X), uint8(256 * corrected.Y), uint8(256 * corrected.Z)
}
