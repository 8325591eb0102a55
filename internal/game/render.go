package game

// Renderer rasterizes the grid and player into a PixelBuffer.
type Renderer struct {
	grid   *TileGrid
	player *Player
	buf    *PixelBuffer

	cellW, cellH int
	divider      int
	arrowLength  float64
	quirks       Quirks
}

// NewRenderer binds a renderer to its inputs. The buffer size and grid
// size must already satisfy Config.Validate.
func NewRenderer(cfg Config, grid *TileGrid, player *Player, buf *PixelBuffer) *Renderer {
	return &Renderer{
		grid:        grid,
		player:      player,
		buf:         buf,
		cellW:       cfg.ScreenWidth / grid.Size(),
		cellH:       cfg.ScreenHeight / grid.Size(),
		divider:     cfg.DividerWidth,
		arrowLength: cfg.ArrowLength,
		quirks:      cfg.Quirks,
	}
}

// CellSize returns the pixel footprint of one grid cell.
func (r *Renderer) CellSize() (w, h int) { return r.cellW, r.cellH }

func (r *Renderer) plot(x, y int, c Color) {
	r.buf.Set(PixelCoordToIndex(x, y, r.buf.W, r.buf.H, r.quirks.IndexClamp), c)
}

// isDivider reports whether local pixel (px,py) of a cell is on its border.
func (r *Renderer) isDivider(px, py int) bool {
	dw := r.divider
	if r.quirks.CellBorder {
		// Legacy test: the far edges never match and rows use the width.
		return px < dw || px > r.cellW-dw || py < dw || py > r.cellW-dw
	}
	return px < dw || px >= r.cellW-dw || py < dw || py >= r.cellH-dw
}

// DrawCell fills the footprint of cell (col,row) with c inside a black
// border of DividerWidth pixels.
func (r *Renderer) DrawCell(col, row int, c Color) {
	ox, oy := col*r.cellW, row*r.cellH
	for px := 0; px < r.cellW; px++ {
		for py := 0; py < r.cellH; py++ {
			pc := c
			if r.isDivider(px, py) {
				pc = ColorBlack
			}
			r.plot(ox+px, oy+py, pc)
		}
	}
}

// DrawGrid draws every cell in its kind's colour.
func (r *Renderer) DrawGrid() {
	n := r.grid.Size()
	for col := 0; col < n; col++ {
		for row := 0; row < n; row++ {
			k, _ := r.grid.At(col, row)
			r.DrawCell(col, row, CellColor(k))
		}
	}
}

func (r *Renderer) inBounds(v Vec2F) bool {
	return v.X >= 0 && v.X <= float64(r.buf.W) && v.Y >= 0 && v.Y <= float64(r.buf.H)
}

// DrawPlayer plots the player as a white pixel and the facing marker as a
// grey one. Each is skipped independently when off screen.
func (r *Renderer) DrawPlayer() {
	if r.inBounds(r.player.Pos) {
		p := r.player.Pos.Trunc()
		r.plot(int(p.X), int(p.Y), ColorWhite)
	}
	m := r.player.FacingMarker(r.arrowLength)
	if r.inBounds(m) {
		p := m.Trunc()
		r.plot(int(p.X), int(p.Y), ColorMarker)
	}
}

// Render draws the grid, then the player on top. The caller clears.
func (r *Renderer) Render() {
	r.DrawGrid()
	r.DrawPlayer()
}
