package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"svw.info/sudokuterm/internal/domain"
)

// parseGrid reads a grid as whitespace-separated integers, one board row
// per line; 0 or "." marks an empty cell. Blank lines are skipped.
func parseGrid(r io.Reader, geo domain.Geometry) (domain.Grid, error) {
	n := geo.Size()
	grid := domain.NewGrid(geo)
	sc := bufio.NewScanner(r)
	row := 0
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if row >= n {
			return nil, fmt.Errorf("%w: more than %d rows", domain.ErrInvalidGrid, n)
		}
		if len(fields) != n {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", domain.ErrInvalidGrid, row, len(fields), n)
		}
		for c, f := range fields {
			if f == "." || f == "_" {
				continue
			}
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("%w: %q at row %d", domain.ErrInvalidGrid, f, row)
			}
			grid[row][c] = v
		}
		row++
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if row != n {
		return nil, fmt.Errorf("%w: %d rows, want %d", domain.ErrInvalidGrid, row, n)
	}
	if err := grid.CheckShape(geo); err != nil {
		return nil, err
	}
	return grid, nil
}

// openGridInput opens the path argument, with "-" meaning stdin.
func openGridInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

// printGrid writes the grid as aligned integers, "." for empty cells.
func printGrid(w io.Writer, g domain.Grid) {
	width := 1
	if len(g) > 9 {
		width = 2
	}
	for _, row := range g {
		parts := make([]string, len(row))
		for c, v := range row {
			if v == 0 {
				parts[c] = fmt.Sprintf("%*s", width, ".")
			} else {
				parts[c] = fmt.Sprintf("%*d", width, v)
			}
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
	}
}
