package game

import (
	"image"
	"image/color"
)

// Color is a packed 32-bit colour: red in the low byte, then green, blue,
// and alpha in the high byte.
type Color uint32

// RGBA packs the four channels.
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// RGB packs an opaque colour.
func RGB(r, g, b uint8) Color { return RGBA(r, g, b, 0xff) }

func (c Color) R() uint8 { return uint8(c) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c >> 16) }
func (c Color) A() uint8 { return uint8(c >> 24) }

// NRGBA converts to the image/color representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

var (
	ColorBlack  = RGB(0, 0, 0)
	ColorWhite  = RGB(0xff, 0xff, 0xff)
	ColorMarker = RGB(0x60, 0x60, 0x60) // facing marker, mid grey
)

// PixelBuffer is a row-major W x H array of colours. The simulation is the
// only writer; frontends read it after each step and must not mutate it.
type PixelBuffer struct {
	W, H int
	Pix  []Color

	bytes []byte // scratch for Bytes
}

// NewPixelBuffer allocates a cleared buffer.
func NewPixelBuffer(w, h int) *PixelBuffer {
	return &PixelBuffer{W: w, H: h, Pix: make([]Color, w*h)}
}

// Clear resets every pixel to zero without reallocating.
func (b *PixelBuffer) Clear() {
	clear(b.Pix)
}

// Set writes c at a linear index. Indices outside the buffer are dropped;
// they can only come from the legacy index clamp.
func (b *PixelBuffer) Set(idx int, c Color) bool {
	if idx < 0 || idx >= len(b.Pix) {
		return false
	}
	b.Pix[idx] = c
	return true
}

// At returns the pixel at (x,y), or zero outside the buffer.
func (b *PixelBuffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return 0
	}
	return b.Pix[y*b.W+x]
}

// Bytes returns the buffer as R,G,B,A bytes, the layout expected by
// ebiten.Image.WritePixels. The returned slice is reused by the next call.
func (b *PixelBuffer) Bytes() []byte {
	if len(b.bytes) != 4*len(b.Pix) {
		b.bytes = make([]byte, 4*len(b.Pix))
	}
	for i, c := range b.Pix {
		o := i * 4
		b.bytes[o] = c.R()
		b.bytes[o+1] = c.G()
		b.bytes[o+2] = c.B()
		b.bytes[o+3] = c.A()
	}
	return b.bytes
}

// Image copies the buffer into a new NRGBA image.
func (b *PixelBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, b.W, b.H))
	for i, c := range b.Pix {
		o := i * 4
		img.Pix[o] = c.R()
		img.Pix[o+1] = c.G()
		img.Pix[o+2] = c.B()
		img.Pix[o+3] = c.A()
	}
	return img
}
