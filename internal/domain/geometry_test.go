package domain

import (
	"errors"
	"testing"
)

func TestNewGeometry(t *testing.T) {
	geo, err := NewGeometry(3, 2)
	if err != nil {
		t.Fatalf("NewGeometry failed: %v", err)
	}
	if geo.Size() != 6 || geo.Cells() != 36 {
		t.Fatalf("size=%d cells=%d", geo.Size(), geo.Cells())
	}
	for _, bad := range [][2]int{{0, 3}, {3, 0}, {-1, 2}} {
		if _, err := NewGeometry(bad[0], bad[1]); !errors.Is(err, ErrInvalidDimensions) {
			t.Fatalf("NewGeometry(%d,%d) = %v, want ErrInvalidDimensions", bad[0], bad[1], err)
		}
	}
}

func TestBoxOrigin(t *testing.T) {
	geo := Geometry{BoxWidth: 3, BoxHeight: 2}
	cases := []struct {
		r, c, wr, wc int
	}{
		{0, 0, 0, 0},
		{1, 2, 0, 0},
		{2, 3, 2, 3},
		{5, 5, 4, 3},
		{3, 0, 2, 0},
	}
	for _, tc := range cases {
		gr, gc := geo.BoxOrigin(tc.r, tc.c)
		if gr != tc.wr || gc != tc.wc {
			t.Fatalf("BoxOrigin(%d,%d) = (%d,%d), want (%d,%d)", tc.r, tc.c, gr, gc, tc.wr, tc.wc)
		}
	}
}

func TestGridCheckShape(t *testing.T) {
	geo := Geometry{BoxWidth: 2, BoxHeight: 2}

	if err := NewGrid(geo).CheckShape(geo); err != nil {
		t.Fatalf("empty grid rejected: %v", err)
	}

	short := Grid{{0, 0, 0, 0}}
	if err := short.CheckShape(geo); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("short grid: %v", err)
	}

	ragged := Grid{{0, 0, 0, 0}, {0, 0}, {0, 0, 0, 0}, {0, 0, 0, 0}}
	if err := ragged.CheckShape(geo); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("ragged grid: %v", err)
	}

	big := NewGrid(geo)
	big[3][3] = 5
	if err := big.CheckShape(geo); !errors.Is(err, ErrInvalidGrid) {
		t.Fatalf("out-of-range value: %v", err)
	}
}

func TestGridClone(t *testing.T) {
	geo := Geometry{BoxWidth: 2, BoxHeight: 2}
	g := NewGrid(geo)
	g[1][1] = 4
	c := g.Clone()
	c[1][1] = 2
	if g[1][1] != 4 {
		t.Fatal("Clone shares backing storage with the original")
	}
	if g.Empties() != 15 || g.Filled() != 1 {
		t.Fatalf("empties=%d filled=%d", g.Empties(), g.Filled())
	}
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range Difficulties() {
		got, err := ParseDifficulty(d.String())
		if err != nil || got != d {
			t.Fatalf("round-trip %s: got %v, err=%v", d, got, err)
		}
	}
	for _, s := range []string{"easy", "Medium", "", "IMPOSSIBLE"} {
		if _, err := ParseDifficulty(s); !errors.Is(err, ErrUnknownDifficulty) {
			t.Fatalf("ParseDifficulty(%q) = %v, want ErrUnknownDifficulty", s, err)
		}
	}
}
