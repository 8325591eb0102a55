package game

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// ScaledImage copies the buffer into an image enlarged scale times with
// nearest-neighbour sampling, so single pixels stay crisp.
func ScaledImage(buf *PixelBuffer, scale int) *image.NRGBA {
	src := buf.Image()
	if scale <= 1 {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, buf.W*scale, buf.H*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// WritePNG encodes a scaled snapshot of buf to w.
func WritePNG(w io.Writer, buf *PixelBuffer, scale int) error {
	if err := png.Encode(w, ScaledImage(buf, scale)); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
