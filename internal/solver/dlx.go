package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudokuterm/internal/domain"
	"svw.info/sudokuterm/internal/ports"
)

// DLX implements Algorithm X / Dancing Links over the exact-cover mapping
// of a box-tiled grid. For side length N there are 4*N*N constraint
// columns (cell, row-number, column-number, box-number) and N*N*N
// candidate rows, one per (r, c, v). It is a drop-in alternative to the
// recursive solver behind the same port.
type DLX struct{}

func NewDLX() *DLX { return &DLX{} }

// node/column structures (classic dancing links)
type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	rowIdx                int // identifies (r,c,v)
}

type dlxColumn struct {
	dlxNode
	size   int
	name   int
	active bool // whether this constraint column is currently uncovered
}

type dlxMatrix struct {
	geo       domain.Geometry
	cols      []*dlxColumn
	rowHead   []*dlxNode
	sol       []*dlxNode
	solLen    int
	nodes     int
	activeCnt int
}

func newDLXMatrix(geo domain.Geometry) *dlxMatrix {
	n := geo.Size()
	nCells := n * n
	d := &dlxMatrix{
		geo:     geo,
		cols:    make([]*dlxColumn, 4*nCells),
		rowHead: make([]*dlxNode, nCells*n),
		sol:     make([]*dlxNode, nCells),
	}
	for i := range d.cols {
		c := &dlxColumn{name: i, active: true}
		c.up = &c.dlxNode
		c.down = &c.dlxNode
		d.cols[i] = c
	}
	d.activeCnt = len(d.cols)

	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := 1; v <= n; v++ {
				row := d.rowIndex(r, c, v)
				var first, prev *dlxNode
				for _, colID := range d.rowColumns(r, c, v) {
					col := d.cols[colID]
					nd := &dlxNode{col: col, rowIdx: row}
					// vertical insert at the bottom of the column
					nd.down = &col.dlxNode
					nd.up = col.dlxNode.up
					col.dlxNode.up.down = nd
					col.dlxNode.up = nd
					col.size++
					// horizontal ring for the 4 nodes of the row
					if first == nil {
						first = nd
						nd.left = nd
						nd.right = nd
					} else {
						nd.left = prev
						nd.right = prev.right
						prev.right.left = nd
						prev.right = nd
					}
					prev = nd
				}
				d.rowHead[row] = first
			}
		}
	}
	return d
}

func (d *dlxMatrix) rowIndex(r, c, v int) int {
	n := d.geo.Size()
	return (r*n+c)*n + (v - 1)
}

func (d *dlxMatrix) rowColumns(r, c, v int) [4]int {
	n := d.geo.Size()
	nCells := n * n
	cell := r*n + c
	rowN := nCells + r*n + (v - 1)
	colN := 2*nCells + c*n + (v - 1)
	box := (r/d.geo.BoxHeight)*d.geo.BoxHeight + c/d.geo.BoxWidth
	boxN := 3*nCells + box*n + (v - 1)
	return [4]int{cell, rowN, colN, boxN}
}

func (d *dlxMatrix) decodeRow(row int) (r, c, v int) {
	n := d.geo.Size()
	cell := row / n
	v = (row % n) + 1
	r = cell / n
	c = cell % n
	return
}

// core operations

func (d *dlxMatrix) cover(col *dlxColumn) {
	if col.active {
		col.active = false
		d.activeCnt--
	}
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (d *dlxMatrix) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	if !col.active {
		col.active = true
		d.activeCnt++
	}
}

// chooseColumn picks the active column with the fewest remaining rows.
func (d *dlxMatrix) chooseColumn() *dlxColumn {
	var best *dlxColumn
	for _, c := range d.cols {
		if c.active {
			if best == nil || c.size < best.size {
				best = c
				if best.size == 0 {
					break
				}
			}
		}
	}
	return best
}

func (d *dlxMatrix) search(ctx context.Context, k, wantCount int, found *int) bool {
	select {
	case <-ctx.Done():
		return true // stop search
	default:
	}
	if d.activeCnt == 0 {
		d.solLen = k
		(*found)++
		return *found >= wantCount
	}

	c := d.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	d.cover(c)
	for r := c.down; r != &c.dlxNode; r = r.down {
		d.nodes++
		d.sol[k] = r
		for j := r.right; j != r; j = j.right {
			if j.col.active {
				d.cover(j.col)
			}
		}
		if d.search(ctx, k+1, wantCount, found) {
			for j := r.left; j != r; j = j.left {
				d.uncover(j.col)
			}
			d.uncover(c)
			return true
		}
		for j := r.left; j != r; j = j.left {
			d.uncover(j.col)
		}
	}
	d.uncover(c)
	return false
}

// applyGiven selects the row for a given and covers its columns, as if the
// search had chosen it at the top level.
func (d *dlxMatrix) applyGiven(r, c, v int) error {
	head := d.rowHead[d.rowIndex(r, c, v)]
	if head == nil {
		return fmt.Errorf("%w: no candidate row for (%d,%d)=%d", domain.ErrInvalidGrid, r, c, v)
	}
	for j := head; ; j = j.right {
		d.cover(j.col)
		if j.right == head {
			break
		}
	}
	return nil
}

func (d *dlxMatrix) applyGivens(g domain.Grid) error {
	n := d.geo.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if v := g[r][c]; v > 0 {
				if err := d.applyGiven(r, c, v); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Solve returns a solved copy of g via exact cover, or domain.ErrNoSolution.
func (s *DLX) Solve(ctx context.Context, g domain.Grid, geo domain.Geometry) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	if err := g.CheckShape(geo); err != nil {
		return nil, ports.Stats{}, err
	}
	if hasDuplicates(g, geo) {
		return nil, ports.Stats{Duration: time.Since(start)}, domain.ErrNoSolution
	}
	d := newDLXMatrix(geo)
	if err := d.applyGivens(g); err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}
	found := 0
	_ = d.search(ctx, 0, 1, &found)
	if err := ctx.Err(); err != nil {
		return nil, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, err
	}
	if found < 1 {
		return nil, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, domain.ErrNoSolution
	}
	out := g.Clone()
	for i := 0; i < d.solLen; i++ {
		r, c, v := d.decodeRow(d.sol[i].rowIdx)
		out[r][c] = v
	}
	return out, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, nil
}

// Unique reports whether g has exactly one completion, stopping as soon as
// a second one is found.
func (s *DLX) Unique(ctx context.Context, g domain.Grid, geo domain.Geometry) (bool, ports.Stats, error) {
	start := time.Now()
	if err := g.CheckShape(geo); err != nil {
		return false, ports.Stats{}, err
	}
	if hasDuplicates(g, geo) {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	d := newDLXMatrix(geo)
	if err := d.applyGivens(g); err != nil {
		return false, ports.Stats{Duration: time.Since(start)}, err
	}
	found := 0
	_ = d.search(ctx, 0, 2, &found)
	if err := ctx.Err(); err != nil {
		return false, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, err
	}
	return found == 1, ports.Stats{Nodes: d.nodes, Duration: time.Since(start)}, nil
}
