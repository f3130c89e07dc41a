package solver

import (
	"context"
	"testing"

	"svw.info/sudokuterm/internal/domain"
)

func TestUniqueBoundaryCases(t *testing.T) {
	twoGivens := domain.NewGrid(geo9)
	twoGivens[0][0] = 1
	twoGivens[0][1] = 2

	contradictory := domain.NewGrid(geo9)
	contradictory[0][0] = 1
	contradictory[0][1] = 1

	cases := []struct {
		name string
		grid domain.Grid
		want bool
	}{
		{"empty grid has many solutions", domain.NewGrid(geo9), false},
		{"nearly empty grid has many solutions", twoGivens, false},
		{"classic puzzle is unique", sample, true},
		{"solved grid is trivially unique", sampleSolution, true},
		{"contradictory grid has none", contradictory, false},
	}

	for name, s := range engines() {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				got, _, err := s.Unique(context.Background(), tc.grid.Clone(), geo9)
				if err != nil {
					t.Fatalf("Unique failed: %v", err)
				}
				if got != tc.want {
					t.Fatalf("Unique = %v, want %v", got, tc.want)
				}
			})
		}
	}
}

func TestUniqueAfterRemovingOneRow(t *testing.T) {
	// Every value in a single blanked row is forced by its column, so the
	// grid stays uniquely solvable.
	oneRowGone := sampleSolution.Clone()
	for c := 0; c < 9; c++ {
		oneRowGone[8][c] = 0
	}
	for name, s := range engines() {
		t.Run(name, func(t *testing.T) {
			got, _, err := s.Unique(context.Background(), oneRowGone, geo9)
			if err != nil {
				t.Fatalf("Unique failed: %v", err)
			}
			if !got {
				t.Fatal("grid with one fully-determined row removed should stay unique")
			}
		})
	}
}
