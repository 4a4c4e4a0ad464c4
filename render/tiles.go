package render

import (
	"iter"

	mandel "github.com/marben/aa_mandel"
)

// TileGrid returns how many tiles of tileW×tileH are needed to cover a w×h
// image. The last column and row may overhang the image.
func TileGrid(w, h, tileW, tileH int) (cols, rows int) {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}
	cols = (w + tileW - 1) / tileW
	rows = (h + tileH - 1) / tileH
	return cols, rows
}

// Tiles yields every tile of the grid, row by row.
func Tiles(cols, rows int) iter.Seq[mandel.Tile] {
	return func(yield func(mandel.Tile) bool) {
		for j := 0; j < rows; j++ {
			for i := 0; i < cols; i++ {
				if !yield(mandel.Tile{I: i, J: j}) {
					return
				}
			}
		}
	}
}
