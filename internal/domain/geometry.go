package domain

import "fmt"

// Geometry describes the box tiling of a square board. The side length N
// is BoxWidth*BoxHeight and the board is tiled by N boxes of BoxHeight
// rows by BoxWidth columns, so rectangular tilings such as 2x3 boxes in a
// 6x6 board work alongside the classic 3x3-in-9x9.
type Geometry struct {
	BoxWidth  int `json:"boxWidth"`
	BoxHeight int `json:"boxHeight"`
}

// NewGeometry validates the box dimensions and fails fast before any
// search can start on a malformed board.
func NewGeometry(boxWidth, boxHeight int) (Geometry, error) {
	if boxWidth <= 0 || boxHeight <= 0 {
		return Geometry{}, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, boxWidth, boxHeight)
	}
	return Geometry{BoxWidth: boxWidth, BoxHeight: boxHeight}, nil
}

// Size returns the side length of the board.
func (g Geometry) Size() int { return g.BoxWidth * g.BoxHeight }

// Cells returns the total number of cells.
func (g Geometry) Cells() int {
	n := g.Size()
	return n * n
}

// BoxOrigin returns the top-left corner of the box containing (r, c).
func (g Geometry) BoxOrigin(r, c int) (int, int) {
	return (r / g.BoxHeight) * g.BoxHeight, (c / g.BoxWidth) * g.BoxWidth
}

// Inside reports whether (r, c) is on the board.
func (g Geometry) Inside(r, c int) bool {
	n := g.Size()
	return r >= 0 && r < n && c >= 0 && c < n
}

func (g Geometry) String() string {
	n := g.Size()
	return fmt.Sprintf("%dx%d (boxes %dx%d)", n, n, g.BoxHeight, g.BoxWidth)
}
