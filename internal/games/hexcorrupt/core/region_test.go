package core_test

import (
	"testing"

	"github.com/vovakirdan/hexcorrupt/internal/games/hexcorrupt/core"
)

func ring(radius int) []core.Hex {
	if radius == 0 {
		return []core.Hex{core.Origin}
	}
	var out []core.Hex
	h := core.DirDownLeft.Delta().Scale(radius)
	for _, d := range core.AllDirs() {
		for i := 0; i < radius; i++ {
			out = append(out, h)
			h = h.Neighbor(d)
		}
	}
	return out
}

func sameSet(t *testing.T, got core.Region, want []core.Hex) {
	t.Helper()
	set := got.Set()
	if len(set) != len(want) {
		t.Fatalf("region has %d cells, want %d", len(set), len(want))
	}
	for _, h := range want {
		if _, ok := set[h]; !ok {
			t.Errorf("region missing %v", h)
		}
	}
}

func TestRingHelper(t *testing.T) {
	for r := 1; r <= 3; r++ {
		cells := ring(r)
		if len(cells) != 6*r {
			t.Errorf("ring(%d) has %d cells", r, len(cells))
		}
		for _, h := range cells {
			if h.Length() != r {
				t.Errorf("ring(%d) contains %v at distance %d", r, h, h.Length())
			}
		}
	}
}

func TestEmptyBoardIsOneRegion(t *testing.T) {
	b := core.NewBoard(3)
	regions := b.EmptyRegions()

	if len(regions) != 1 {
		t.Fatalf("got %d regions, want 1", len(regions))
	}
	if regions[0].Len() != b.Len() {
		t.Errorf("region has %d cells, want %d", regions[0].Len(), b.Len())
	}
	if !regions[0].TouchesBorder {
		t.Error("full board region must touch the border")
	}
	if len(b.OccupiedRegions()) != 0 {
		t.Error("empty board has no occupied regions")
	}
}

func TestEnclosedPocket(t *testing.T) {
	b := core.NewBoard(3)
	id := core.PieceID(1)
	for _, h := range ring(1) {
		b.Place(h, id)
		id++
	}

	empty := b.EmptyRegions()
	if len(empty) != 2 {
		t.Fatalf("got %d empty regions, want 2", len(empty))
	}

	var pocket, outside core.Region
	for _, r := range empty {
		if r.Contains(core.Origin) {
			pocket = r
		} else {
			outside = r
		}
	}
	sameSet(t, pocket, []core.Hex{core.Origin})
	if pocket.TouchesBorder {
		t.Error("pocket must not touch the border")
	}
	if !outside.TouchesBorder {
		t.Error("outer region must touch the border")
	}
	if outside.Len() != b.Len()-7 {
		t.Errorf("outer region has %d cells, want %d", outside.Len(), b.Len()-7)
	}

	occupied := b.OccupiedRegions()
	if len(occupied) != 1 {
		t.Fatalf("got %d occupied regions, want 1", len(occupied))
	}
	sameSet(t, occupied[0], ring(1))
}

func TestOccupiedRegionsSplit(t *testing.T) {
	b := core.NewBoard(3)
	b.Place(core.H(-2, 0), 1)
	b.Place(core.H(-1, 0), 2)
	b.Place(core.H(2, 0), 3)
	b.Place(core.H(3, 0), 4)
	b.Place(core.H(0, 3), 5)

	regions := b.OccupiedRegions()
	if len(regions) != 3 {
		t.Fatalf("got %d regions, want 3", len(regions))
	}

	want := [][]core.Hex{
		{core.H(-2, 0), core.H(-1, 0)},
		{core.H(2, 0), core.H(3, 0)},
		{core.H(0, 3)},
	}
	for _, w := range want {
		found := false
		for _, r := range regions {
			if r.Contains(w[0]) {
				sameSet(t, r, w)
				found = true
			}
		}
		if !found {
			t.Errorf("no region contains %v", w[0])
		}
	}
}
