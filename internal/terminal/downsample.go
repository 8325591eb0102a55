package terminal

import "github.com/Garsondee/Enkidu/internal/game"

// fitStep is the smallest block size that fits a w x h frame into cols
// character columns and rows character rows of two pixels each.
func fitStep(w, h, cols, rows int) int {
	step := max(ceilDiv(w, cols), ceilDiv(h, 2*rows))
	return max(step, 1)
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}

// Downsample pools each step x step block of px into its brightest pixel.
// Max pooling keeps the one-pixel player and its marker visible at any
// terminal size where an average would wash them out. Rows come first.
func Downsample(px *game.PixelBuffer, step int) [][]game.Color {
	if step < 1 {
		step = 1
	}
	cols, rows := ceilDiv(px.W, step), ceilDiv(px.H, step)
	out := make([][]game.Color, rows)
	for by := 0; by < rows; by++ {
		row := make([]game.Color, cols)
		for bx := 0; bx < cols; bx++ {
			row[bx] = brightest(px, bx*step, by*step, step)
		}
		out[by] = row
	}
	return out
}

func brightest(px *game.PixelBuffer, x0, y0, step int) game.Color {
	best := px.At(x0, y0)
	bestLum := luminance(best)
	for y := y0; y < min(y0+step, px.H); y++ {
		for x := x0; x < min(x0+step, px.W); x++ {
			c := px.At(x, y)
			if l := luminance(c); l > bestLum {
				best, bestLum = c, l
			}
		}
	}
	return best
}

func luminance(c game.Color) int {
	return int(c.R()) + int(c.G()) + int(c.B())
}
