package game

import "github.com/faiface/pixel"

// gridLayout maps between window coordinates and board cells. pixel puts
// the origin at the window's bottom-left while row 0 sits at the top of
// the board, so rows flip across the board's top edge.
type gridLayout struct {
	rows, cols int
	tileSize   float64

	// origin is the board's top-left corner in window coordinates.
	origin pixel.Vec
}

// cellAt resolves a window position to a cell. ok is false anywhere off
// the board, including the header strip above it.
func (grid gridLayout) cellAt(pos pixel.Vec) (row, col int, ok bool) {
	dx := pos.X - grid.origin.X
	dy := grid.origin.Y - pos.Y
	if dx < 0 || dy < 0 {
		return 0, 0, false
	}

	col = int(dx / grid.tileSize)
	row = int(dy / grid.tileSize)
	if row >= grid.rows || col >= grid.cols {
		return 0, 0, false
	}
	return row, col, true
}

// cellRect returns the drawable bounds of a cell.
func (grid gridLayout) cellRect(row, col int) pixel.Rect {
	left := grid.origin.X + float64(col)*grid.tileSize
	top := grid.origin.Y - float64(row)*grid.tileSize
	return pixel.R(left, top-grid.tileSize, left+grid.tileSize, top)
}
