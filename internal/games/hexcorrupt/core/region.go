package core

// Region is a maximal connected set of cells accepted by a predicate.
type Region struct {
	Cells         []Hex // Discovery order; compare as a set
	TouchesBorder bool
}

// Len returns the number of cells in the region.
func (r Region) Len() int {
	return len(r.Cells)
}

// Contains reports whether h belongs to the region.
func (r Region) Contains(h Hex) bool {
	for _, c := range r.Cells {
		if c == h {
			return true
		}
	}
	return false
}

// Set returns the region's cells as a set.
func (r Region) Set() map[Hex]struct{} {
	out := make(map[Hex]struct{}, len(r.Cells))
	for _, c := range r.Cells {
		out[c] = struct{}{}
	}
	return out
}

// Regions partitions the cells accepted by open into connected components
// using breadth-first search over the six neighbour directions.
// Unvisited cells are picked as seeds in board order.
func (b *Board) Regions(open func(Cell) bool) []Region {
	visited := make([]bool, len(b.cells))
	regions := make([]Region, 0)

	for start, c := range b.cells {
		if visited[start] || !open(c) {
			continue
		}

		visited[start] = true
		region := Region{Cells: []Hex{c.Pos}, TouchesBorder: c.Kind == CellBorder}
		queue := []int{start}

		for len(queue) > 0 {
			cur := b.cells[queue[0]]
			queue = queue[1:]

			for _, d := range directions {
				ni, ok := b.index[cur.Pos.Add(d)]
				if !ok || visited[ni] || !open(b.cells[ni]) {
					continue
				}
				visited[ni] = true
				n := b.cells[ni]
				region.Cells = append(region.Cells, n.Pos)
				if n.Kind == CellBorder {
					region.TouchesBorder = true
				}
				queue = append(queue, ni)
			}
		}

		regions = append(regions, region)
	}

	return regions
}

// EmptyRegions returns the connected components of unoccupied cells.
func (b *Board) EmptyRegions() []Region {
	return b.Regions(Cell.Empty)
}

// OccupiedRegions returns the connected components of occupied cells.
func (b *Board) OccupiedRegions() []Region {
	return b.Regions(func(c Cell) bool { return !c.Empty() })
}
