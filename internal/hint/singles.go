package hint

import (
	"context"
	"fmt"

	"svw.info/sudokuterm/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles: cells
// where exactly one candidate remains.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

// Hint returns the first naked single found in scan order.
func (h *Singles) Hint(ctx context.Context, g domain.Grid, geo domain.Geometry) (domain.Hint, bool, error) {
	if err := g.CheckShape(geo); err != nil {
		return domain.Hint{}, false, err
	}
	n := geo.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if g[r][c] != 0 {
				continue
			}
			v, ok := soleCandidate(g, geo, r, c)
			if ok {
				return domain.Hint{
					Message: fmt.Sprintf("only %d fits here", v),
					Cell:    domain.CellCoord{Row: r, Col: c},
					Value:   v,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func soleCandidate(g domain.Grid, geo domain.Geometry, r, c int) (int, bool) {
	n := geo.Size()
	last := 0
	count := 0
	for v := 1; v <= n; v++ {
		if allowed(g, geo, r, c, v) {
			count++
			last = v
			if count > 1 {
				return 0, false
			}
		}
	}
	return last, count == 1
}

func allowed(g domain.Grid, geo domain.Geometry, r, c, v int) bool {
	n := geo.Size()
	for i := 0; i < n; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := geo.BoxOrigin(r, c)
	for dr := 0; dr < geo.BoxHeight; dr++ {
		for dc := 0; dc < geo.BoxWidth; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}
