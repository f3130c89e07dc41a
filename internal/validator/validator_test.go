package validator

import (
	"context"
	"errors"
	"testing"

	"svw.info/sudokuterm/internal/domain"
)

var geo9 = domain.Geometry{BoxWidth: 3, BoxHeight: 3}

func grid9(mods func(g domain.Grid)) domain.Grid {
	g := domain.NewGrid(geo9)
	if mods != nil {
		mods(g)
	}
	return g
}

func TestGridConflicts(t *testing.T) {
	cases := []struct {
		name      string
		grid      domain.Grid
		wantOK    bool
		wantCoord *domain.CellCoord
	}{
		{"empty grid is valid", grid9(nil), true, nil},
		{"row duplicate", grid9(func(g domain.Grid) {
			g[2][1] = 7
			g[2][5] = 7
		}), false, &domain.CellCoord{Row: 2, Col: 5}},
		{"column duplicate", grid9(func(g domain.Grid) {
			g[0][4] = 3
			g[8][4] = 3
		}), false, &domain.CellCoord{Row: 8, Col: 4}},
		{"box duplicate", grid9(func(g domain.Grid) {
			g[0][0] = 5
			g[2][2] = 5
		}), false, &domain.CellCoord{Row: 2, Col: 2}},
		{"same value in different units", grid9(func(g domain.Grid) {
			g[0][0] = 9
			g[4][4] = 9
			g[8][8] = 9
		}), true, nil},
	}
	v := New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, conf, err := v.Grid(context.Background(), tc.grid, geo9)
			if err != nil {
				t.Fatalf("Grid failed: %v", err)
			}
			if ok != tc.wantOK {
				t.Fatalf("Grid = %v, conflicts %v", ok, conf)
			}
			if tc.wantCoord != nil {
				found := false
				for _, cc := range conf {
					if cc == *tc.wantCoord {
						found = true
					}
				}
				if !found {
					t.Fatalf("conflict %v not reported, got %v", *tc.wantCoord, conf)
				}
			}
		})
	}
}

func TestGridRejectsMalformed(t *testing.T) {
	_, _, err := New().Grid(context.Background(), domain.Grid{{1, 2}}, geo9)
	if !errors.Is(err, domain.ErrInvalidGrid) {
		t.Fatalf("want ErrInvalidGrid, got %v", err)
	}
}

func TestMove(t *testing.T) {
	g := grid9(func(g domain.Grid) {
		g[0][0] = 5
		g[0][8] = 3
		g[8][0] = 7
		g[1][1] = 9
	})
	v := New()

	cases := []struct {
		name    string
		r, c, v int
		want    bool
	}{
		{"free cell, free value", 4, 4, 5, true},
		{"row conflict", 0, 4, 3, false},
		{"column conflict", 4, 0, 7, false},
		{"box conflict", 2, 2, 9, false},
		{"same digit into its own cell", 0, 0, 5, true},
		{"different digit over occupied conflicting row", 0, 0, 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := v.Move(context.Background(), g, geo9, tc.r, tc.c, tc.v)
			if err != nil {
				t.Fatalf("Move failed: %v", err)
			}
			if got != tc.want {
				t.Fatalf("Move(%d,%d,%d) = %v, want %v", tc.r, tc.c, tc.v, got, tc.want)
			}
		})
	}
}

func TestMoveErrors(t *testing.T) {
	g := grid9(nil)
	v := New()
	if _, err := v.Move(context.Background(), g, geo9, 9, 0, 1); !errors.Is(err, domain.ErrOutOfBounds) {
		t.Fatalf("want ErrOutOfBounds, got %v", err)
	}
	if _, err := v.Move(context.Background(), g, geo9, 0, 0, 10); !errors.Is(err, domain.ErrInvalidGrid) {
		t.Fatalf("want ErrInvalidGrid for value 10, got %v", err)
	}
	if _, err := v.Move(context.Background(), g, geo9, 0, 0, 0); !errors.Is(err, domain.ErrInvalidGrid) {
		t.Fatalf("want ErrInvalidGrid for value 0, got %v", err)
	}
}

func TestComplete(t *testing.T) {
	solved := domain.Grid{
		{5, 3, 4, 6, 7, 8, 9, 1, 2},
		{6, 7, 2, 1, 9, 5, 3, 4, 8},
		{1, 9, 8, 3, 4, 2, 5, 6, 7},
		{8, 5, 9, 7, 6, 1, 4, 2, 3},
		{4, 2, 6, 8, 5, 3, 7, 9, 1},
		{7, 1, 3, 9, 2, 4, 8, 5, 6},
		{9, 6, 1, 5, 3, 7, 2, 8, 4},
		{2, 8, 7, 4, 1, 9, 6, 3, 5},
		{3, 4, 5, 2, 8, 6, 1, 7, 9},
	}
	v := New()

	ok, err := v.Complete(context.Background(), solved, geo9)
	if err != nil || !ok {
		t.Fatalf("solved grid not complete: ok=%v err=%v", ok, err)
	}

	gap := solved.Clone()
	gap[4][4] = 0
	ok, err = v.Complete(context.Background(), gap, geo9)
	if err != nil || ok {
		t.Fatalf("grid with a hole reported complete: ok=%v err=%v", ok, err)
	}

	broken := solved.Clone()
	broken[0][0] = broken[0][1]
	ok, err = v.Complete(context.Background(), broken, geo9)
	if err != nil || ok {
		t.Fatalf("grid with duplicate reported complete: ok=%v err=%v", ok, err)
	}
}
