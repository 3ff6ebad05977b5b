package sim

import "math"

// BlockCell returns where a block placed by p would go: the grid column
// under the player's left edge and the first grid row at or below the feet.
func BlockCell(p Player, blockSize float64) Rect {
	x := math.Floor(p.X/blockSize) * blockSize
	feet := p.Bottom()
	y := math.Floor(feet/blockSize) * blockSize
	if y < feet {
		y += blockSize
	}
	return R(x, y, blockSize, blockSize)
}

// build places a block under the player if the allowance permits and the
// cell is free.
func (w *World) build() {
	s := &w.session
	if s.BlocksRemaining <= 0 {
		return
	}
	cell := BlockCell(w.player, w.params.BlockSize)
	if !w.cellFree(cell) {
		w.emit(EventBlockDenied, cell, "")
		return
	}
	w.blocks = append(w.blocks, Platform{Rect: cell, Kind: PlatformBuildable})
	s.BlocksRemaining--
	s.BlocksUsed++
	w.emit(EventBlockPlaced, cell, "")
}

func (w *World) cellFree(cell Rect) bool {
	for _, p := range w.level.Platforms {
		if Intersects(cell, p.Rect) {
			return false
		}
	}
	for _, b := range w.blocks {
		if Intersects(cell, b.Rect) {
			return false
		}
	}
	return true
}
