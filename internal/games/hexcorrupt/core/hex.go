// Package core provides the simulation engine for the hexcorrupt puzzle game.
// This package is UI-agnostic and deterministic: it never renders, plays sound
// or reads input. Collaborators queue intents and read state between turns.
package core

import (
	"fmt"
	"math"
)

// Hex is a cube coordinate on the hex grid. Valid coordinates satisfy Q+R+S == 0.
type Hex struct {
	Q int
	R int
	S int
}

// Origin is the centre cell of every board.
var Origin = Hex{}

// H builds a cube coordinate from its axial part; S is derived.
func H(q, r int) Hex {
	return Hex{Q: q, R: r, S: -q - r}
}

// Valid reports whether the coordinate satisfies the cube invariant.
func (h Hex) Valid() bool {
	return h.Q+h.R+h.S == 0
}

// String returns a string representation of the coordinate.
func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d,%d)", h.Q, h.R, h.S)
}

// Add returns the component-wise sum.
func (h Hex) Add(o Hex) Hex {
	return Hex{Q: h.Q + o.Q, R: h.R + o.R, S: h.S + o.S}
}

// Sub returns the component-wise difference.
func (h Hex) Sub(o Hex) Hex {
	return Hex{Q: h.Q - o.Q, R: h.R - o.R, S: h.S - o.S}
}

// Scale multiplies every component by k.
func (h Hex) Scale(k int) Hex {
	return Hex{Q: h.Q * k, R: h.R * k, S: h.S * k}
}

// Length returns the distance from the origin.
func (h Hex) Length() int {
	return (abs(h.Q) + abs(h.R) + abs(h.S)) / 2
}

// Distance returns the number of steps between two coordinates.
func (h Hex) Distance(o Hex) int {
	return h.Sub(o).Length()
}

// Neighbor returns the adjacent coordinate in direction d.
func (h Hex) Neighbor(d Dir) Hex {
	return h.Add(d.Delta())
}

// Dir is one of the six hex directions.
type Dir uint8

const (
	DirRight Dir = iota
	DirUpRight
	DirUpLeft
	DirLeft
	DirDownLeft
	DirDownRight
)

// directions is indexed by Dir; the order is part of the engine contract.
var directions = [6]Hex{
	{Q: 1, R: 0, S: -1},
	{Q: 1, R: -1, S: 0},
	{Q: 0, R: -1, S: 1},
	{Q: -1, R: 0, S: 1},
	{Q: -1, R: 1, S: 0},
	{Q: 0, R: 1, S: -1},
}

// Directions returns the six unit offsets in Dir order.
func Directions() [6]Hex {
	return directions
}

// AllDirs returns every Dir in order.
func AllDirs() [6]Dir {
	return [6]Dir{DirRight, DirUpRight, DirUpLeft, DirLeft, DirDownLeft, DirDownRight}
}

// Valid reports whether d is one of the six directions.
func (d Dir) Valid() bool {
	return int(d) < len(directions)
}

// Delta returns the unit offset for this direction.
// Unknown directions yield the zero offset.
func (d Dir) Delta() Hex {
	if int(d) >= len(directions) {
		return Hex{}
	}
	return directions[d]
}

// Opposite returns the reverse direction.
func (d Dir) Opposite() Dir {
	return (d + 3) % 6
}

// String returns the string representation of a direction.
func (d Dir) String() string {
	switch d {
	case DirRight:
		return "Right"
	case DirUpRight:
		return "UpRight"
	case DirUpLeft:
		return "UpLeft"
	case DirLeft:
		return "Left"
	case DirDownLeft:
		return "DownLeft"
	case DirDownRight:
		return "DownRight"
	default:
		return "Unknown"
	}
}

// DirOf returns the direction whose unit offset equals delta.
func DirOf(delta Hex) (Dir, bool) {
	for i, d := range directions {
		if d == delta {
			return Dir(i), true
		}
	}
	return 0, false
}

// Line decomposes the straight path from -> to into a direction and a step count.
// ok is false when the two coordinates are equal or not on a common axis.
func Line(from, to Hex) (d Dir, steps int, ok bool) {
	steps = from.Distance(to)
	if steps == 0 {
		return 0, 0, false
	}
	delta := to.Sub(from)
	if delta.Q%steps != 0 || delta.R%steps != 0 || delta.S%steps != 0 {
		return 0, 0, false
	}
	d, ok = DirOf(Hex{Q: delta.Q / steps, R: delta.R / steps, S: delta.S / steps})
	return d, steps, ok
}

// Round snaps fractional cube coordinates to the nearest valid hex.
// Each axis is rounded half-to-even, then the axis with the largest rounding
// error is recomputed from the other two. Ties prefer fixing R over S.
func Round(q, r, s float64) Hex {
	rq := math.RoundToEven(q)
	rr := math.RoundToEven(r)
	rs := math.RoundToEven(s)

	dq := math.Abs(q - rq)
	dr := math.Abs(r - rr)
	ds := math.Abs(s - rs)

	h := Hex{Q: int(rq), R: int(rr), S: int(rs)}
	switch {
	case dq > dr && dq > ds:
		h.Q = -h.R - h.S
	case dr > ds:
		h.R = -h.Q - h.S
	default:
		h.S = -h.Q - h.R
	}
	return h
}

const sqrt3 = 1.7320508075688772

// ToPoint returns the centre of h in a pointy-top layout with the given cell size.
// Y grows downward.
func ToPoint(h Hex, size float64) (x, y float64) {
	x = size * (sqrt3*float64(h.Q) + sqrt3/2*float64(h.R))
	y = size * 1.5 * float64(h.R)
	return x, y
}

// FromPoint converts a layout point back to the hex containing it.
func FromPoint(x, y, size float64) Hex {
	q := (sqrt3/3*x - y/3) / size
	r := (2.0 / 3.0 * y) / size
	return Round(q, r, -q-r)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
