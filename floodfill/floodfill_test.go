package floodfill_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/gridpath/floodfill"
	"github.com/katalvlaran/gridpath/geometry"
	"github.com/katalvlaran/gridpath/grid"
)

// charGrid builds a rune grid from string rows; test fixture helper.
func charGrid(t *testing.T, lines ...string) *grid.Grid[rune] {
	t.Helper()
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = []rune(l)
	}
	g, err := grid.New(rows)
	if err != nil {
		t.Fatalf("grid.New error: %v", err)
	}

	return g
}

//----------------------------------------------------------------------------//
// Validation and partition invariants
//----------------------------------------------------------------------------//

func TestFill_NilGrid(t *testing.T) {
	_, err := floodfill.Fill[rune](nil)
	if !errors.Is(err, floodfill.ErrNilGrid) {
		t.Fatalf("Fill(nil) error = %v; want ErrNilGrid", err)
	}
}

// TestFill_Partition verifies that regions partition the grid: every tile
// belongs to exactly one region and sizes sum to the tile count.
func TestFill_Partition(t *testing.T) {
	g := charGrid(t,
		"AAAA",
		"BBCD",
		"BBCC",
		"EEEC",
	)
	res, err := floodfill.Fill(g)
	if err != nil {
		t.Fatal(err)
	}

	if got, want := len(res.Regions), 5; got != want {
		t.Fatalf("region count = %d; want %d", got, want)
	}

	total := 0
	claimed := make(map[geometry.GridAddress]floodfill.RegionID)
	for _, region := range res.Regions {
		total += region.Size()
		for _, addr := range region.Addresses {
			if prev, dup := claimed[addr]; dup {
				t.Errorf("address %+v claimed by regions %d and %d", addr, prev, region.ID)
			}
			claimed[addr] = region.ID
		}
	}
	if got, want := total, g.Width()*g.Height(); got != want {
		t.Errorf("sum of region sizes = %d; want %d", got, want)
	}

	// RegionAt agrees with the roster on every tile.
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			addr := geometry.GridAddress{X: x, Y: y}
			id, ok := res.RegionAt(addr)
			if !ok || id == floodfill.NoRegion {
				t.Fatalf("RegionAt(%+v) = %v, %v; want an assigned region", addr, id, ok)
			}
			if claimed[addr] != id {
				t.Errorf("roster says %d for %+v, RegionAt says %d", claimed[addr], addr, id)
			}
		}
	}
}

// TestFill_ConnectivityIffSameRegion checks that tiles of equal value split
// into separate regions when not cardinally connected.
func TestFill_ConnectivityIffSameRegion(t *testing.T) {
	// Diagonal 'a's touch only at corners: four distinct regions.
	g := charGrid(t,
		"ab",
		"ba",
	)
	res, err := floodfill.Fill(g)
	if err != nil {
		t.Fatal(err)
	}
	if got := len(res.Regions); got != 4 {
		t.Fatalf("region count = %d; want 4 (diagonals are not connected)", got)
	}
}

func TestFill_CustomEquivalence(t *testing.T) {
	g := charGrid(t,
		"aA",
		"Aa",
	)
	res, err := floodfill.Fill(g, floodfill.WithEquiv(func(a, b rune) bool {
		return a|0x20 == b|0x20 // case-insensitive ASCII letters
	}))
	if err != nil {
		t.Fatal(err)
	}
	if got := len(res.Regions); got != 1 {
		t.Fatalf("region count = %d; want 1 under case-insensitive equivalence", got)
	}
}

//----------------------------------------------------------------------------//
// Fences and sides
//----------------------------------------------------------------------------//

// TestFill_IsolatedTile verifies the size-1 edge case: 4 fences, 4 sides.
func TestFill_IsolatedTile(t *testing.T) {
	g := charGrid(t,
		"aaa",
		"aba",
		"aaa",
	)
	res, err := floodfill.Fill(g)
	if err != nil {
		t.Fatal(err)
	}

	var bID floodfill.RegionID = floodfill.NoRegion
	for _, region := range res.Regions {
		if region.Value == 'b' {
			bID = region.ID
		}
	}
	if bID == floodfill.NoRegion {
		t.Fatal("no region for 'b'")
	}

	if got := res.Regions[bID].Size(); got != 1 {
		t.Errorf("size = %d; want 1", got)
	}
	if got := res.Perimeter(bID); got != 4 {
		t.Errorf("perimeter = %d; want 4", got)
	}
	if got := res.Sides(bID); got != 4 {
		t.Errorf("sides = %d; want 4", got)
	}

	fs, ok := res.FencesAt(geometry.GridAddress{X: 1, Y: 1})
	if !ok || fs.Len() != 4 {
		t.Errorf("center tile fences = %d (%v); want all 4", fs.Len(), ok)
	}
}

// TestFill_FullRectangle verifies that a single-region W×H grid always has
// exactly 4 sides and perimeter 2(W+H).
func TestFill_FullRectangle(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
	}{
		{"1x1", 1, 1},
		{"1x5", 1, 5},
		{"4x1", 4, 1},
		{"3x3", 3, 3},
		{"6x4", 6, 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := grid.NewFilled(tc.width, tc.height, 'x')
			if err != nil {
				t.Fatal(err)
			}
			res, err := floodfill.Fill(g)
			if err != nil {
				t.Fatal(err)
			}
			if got := len(res.Regions); got != 1 {
				t.Fatalf("region count = %d; want 1", got)
			}
			if got, want := res.Perimeter(0), 2*(tc.width+tc.height); got != want {
				t.Errorf("perimeter = %d; want %d", got, want)
			}
			if got := res.Sides(0); got != 4 {
				t.Errorf("sides = %d; want 4", got)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Worked end-to-end fixture
//----------------------------------------------------------------------------//

// TestFill_WorkedFixture prices the canonical AAAA/BBCD/BBCC/EEEC layout.
// Hand-derived: A(size 4, perim 10, sides 4), B(4, 8, 4), C(4, 10, 8),
// D(1, 4, 4), E(3, 8, 4) → perimeter price 140, side price 80.
func TestFill_WorkedFixture(t *testing.T) {
	g := charGrid(t,
		"AAAA",
		"BBCD",
		"BBCC",
		"EEEC",
	)
	res, err := floodfill.Fill(g)
	if err != nil {
		t.Fatal(err)
	}

	want := map[rune]struct{ size, perim, sides int }{
		'A': {4, 10, 4},
		'B': {4, 8, 4},
		'C': {4, 10, 8},
		'D': {1, 4, 4},
		'E': {3, 8, 4},
	}
	for _, region := range res.Regions {
		w, ok := want[region.Value]
		if !ok {
			t.Fatalf("unexpected region value %q", region.Value)
		}
		if region.Size() != w.size {
			t.Errorf("region %q size = %d; want %d", region.Value, region.Size(), w.size)
		}
		if got := res.Perimeter(region.ID); got != w.perim {
			t.Errorf("region %q perimeter = %d; want %d", region.Value, got, w.perim)
		}
		if got := res.Sides(region.ID); got != w.sides {
			t.Errorf("region %q sides = %d; want %d", region.Value, got, w.sides)
		}
	}

	if got := res.PerimeterPrice(); got != 140 {
		t.Errorf("PerimeterPrice = %d; want 140", got)
	}
	if got := res.SidePrice(); got != 80 {
		t.Errorf("SidePrice = %d; want 80", got)
	}
}
