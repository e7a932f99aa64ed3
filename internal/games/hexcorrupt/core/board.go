package core

// CellKind classifies a board cell. It never changes after construction.
type CellKind uint8

const (
	CellInterior CellKind = iota
	CellBorder
)

// String returns the string representation of a cell kind.
func (k CellKind) String() string {
	switch k {
	case CellInterior:
		return "Interior"
	case CellBorder:
		return "Border"
	default:
		return "Unknown"
	}
}

// Cell is a single hex on the board.
type Cell struct {
	Pos      Hex
	Kind     CellKind
	Occupant PieceID // NoPiece when empty
}

// Empty reports whether no piece occupies the cell.
func (c Cell) Empty() bool {
	return c.Occupant == NoPiece
}

// Border reports whether the cell lies on the outer ring.
func (c Cell) Border() bool {
	return c.Kind == CellBorder
}

// Board is a hexagon of cells with a fixed radius.
// Cells are stored in q-major, then r order; index maps coordinates into cells.
// The board only stores piece ids, the Pieces arena owns piece data.
type Board struct {
	radius int
	cells  []Cell
	index  map[Hex]int
}

// NewBoard creates a board containing every hex within radius of the origin.
func NewBoard(radius int) *Board {
	if radius < 0 {
		radius = 0
	}
	n := 3*radius*(radius+1) + 1
	b := &Board{
		radius: radius,
		cells:  make([]Cell, 0, n),
		index:  make(map[Hex]int, n),
	}
	for q := -radius; q <= radius; q++ {
		for r := max(-radius, -q-radius); r <= min(radius, -q+radius); r++ {
			pos := H(q, r)
			kind := CellInterior
			if pos.Length() == radius {
				kind = CellBorder
			}
			b.index[pos] = len(b.cells)
			b.cells = append(b.cells, Cell{Pos: pos, Kind: kind})
		}
	}
	return b
}

// Radius returns the board radius.
func (b *Board) Radius() int {
	return b.radius
}

// Len returns the number of cells.
func (b *Board) Len() int {
	return len(b.cells)
}

// InBounds reports whether h is a cell of this board.
func (b *Board) InBounds(h Hex) bool {
	_, ok := b.index[h]
	return ok
}

// CellAt returns the cell at h. ok is false when h is off the board.
func (b *Board) CellAt(h Hex) (Cell, bool) {
	i, ok := b.index[h]
	if !ok {
		return Cell{}, false
	}
	return b.cells[i], true
}

// Occupant returns the piece at h, or NoPiece.
func (b *Board) Occupant(h Hex) PieceID {
	if i, ok := b.index[h]; ok {
		return b.cells[i].Occupant
	}
	return NoPiece
}

// Place puts id on the cell at h.
// Fails when the cell does not exist or is already occupied.
func (b *Board) Place(h Hex, id PieceID) bool {
	i, ok := b.index[h]
	if !ok || id == NoPiece || b.cells[i].Occupant != NoPiece {
		return false
	}
	b.cells[i].Occupant = id
	return true
}

// Move transfers the occupant of from onto to.
// Fails without mutation if from is empty or to is absent or occupied.
func (b *Board) Move(from, to Hex) bool {
	fi, ok := b.index[from]
	if !ok || b.cells[fi].Occupant == NoPiece {
		return false
	}
	ti, ok := b.index[to]
	if !ok || b.cells[ti].Occupant != NoPiece {
		return false
	}
	b.cells[ti].Occupant = b.cells[fi].Occupant
	b.cells[fi].Occupant = NoPiece
	return true
}

// Remove clears the cell at h and returns the previous occupant.
func (b *Board) Remove(h Hex) PieceID {
	i, ok := b.index[h]
	if !ok {
		return NoPiece
	}
	id := b.cells[i].Occupant
	b.cells[i].Occupant = NoPiece
	return id
}

// Cells returns a copy of every cell in board order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)
	return out
}

// Filter returns the cells accepted by keep, in board order.
func (b *Board) Filter(keep func(Cell) bool) []Cell {
	out := make([]Cell, 0)
	for _, c := range b.cells {
		if keep(c) {
			out = append(out, c)
		}
	}
	return out
}

// OccupiedCount returns the number of cells holding a piece.
func (b *Board) OccupiedCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Occupant != NoPiece {
			n++
		}
	}
	return n
}

// BorderCount returns the number of border cells.
func (b *Board) BorderCount() int {
	n := 0
	for _, c := range b.cells {
		if c.Kind == CellBorder {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	index := make(map[Hex]int, len(b.index))
	for k, v := range b.index {
		index[k] = v
	}
	return &Board{radius: b.radius, cells: cells, index: index}
}

// Equal returns true if two boards have the same shape and occupancy.
func (b *Board) Equal(other *Board) bool {
	if b.radius != other.radius || len(b.cells) != len(other.cells) {
		return false
	}
	for i, c := range b.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}
