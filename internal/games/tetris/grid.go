package tetris

import (
	"github.com/kamstrup/intmap"
)

// Well dimensions.
const (
	Cols = 10
	Rows = 20
)

// Cell is one position of the rendered well.
// The zero value is the empty sentinel.
type Cell struct {
	Filled bool
	Color  RGB
}

// Matrix is the rendered well, indexed [row][col].
type Matrix [Rows][Cols]Cell

// cellKey packs a (col, row) pair into one integer so the locked cells can
// live in an integer hash map. Rows keep their sign in the high half.
type cellKey int64

func keyOf(col, row int) cellKey {
	return cellKey(int64(row)<<32 | int64(uint32(int32(col))))
}

func (k cellKey) point() Point {
	return Point{
		X: int(int32(uint32(k))),
		Y: int(int64(k) >> 32),
	}
}

// Grid holds the settled cells of the well.
// It knows nothing about the falling piece; see Overlay for the combined view.
type Grid struct {
	locked *intmap.Map[cellKey, RGB]
}

// NewGrid creates an empty well.
func NewGrid() *Grid {
	return &Grid{
		locked: intmap.New[cellKey, RGB](Cols * Rows),
	}
}

// Reset removes every locked cell.
func (g *Grid) Reset() {
	g.locked.Clear()
}

// Len returns the number of locked cells.
func (g *Grid) Len() int {
	return g.locked.Len()
}

// IsCellEmpty reports whether a piece may occupy (col, row).
// Columns outside the well are never empty. Rows above the well are always
// empty as far as the grid is concerned; the ceiling is the controller's
// business.
func (g *Grid) IsCellEmpty(col, row int) bool {
	if col < 0 || col >= Cols {
		return false
	}
	if row < 0 {
		return true
	}
	return !g.locked.Has(keyOf(col, row))
}

// Locked returns the color of a settled cell.
func (g *Grid) Locked(col, row int) (RGB, bool) {
	return g.locked.Get(keyOf(col, row))
}

// LockCells settles cells with a color, overwriting anything already there.
func (g *Grid) LockCells(cells []Point, color RGB) {
	for _, c := range cells {
		g.locked.Put(keyOf(c.X, c.Y), color)
	}
}

// ForEach visits every locked cell until visit returns false.
// Visit order is unspecified.
func (g *Grid) ForEach(visit func(p Point, c RGB) bool) {
	g.locked.ForEach(func(k cellKey, c RGB) bool {
		return visit(k.point(), c)
	})
}

// rowFull reports whether every column of a row is locked.
func (g *Grid) rowFull(row int) bool {
	for col := range Cols {
		if !g.locked.Has(keyOf(col, row)) {
			return false
		}
	}
	return true
}

// FullRows returns the indices of complete rows, bottom first.
func (g *Grid) FullRows() []int {
	var rows []int
	for row := Rows - 1; row >= 0; row-- {
		if g.rowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearFullRows removes every complete row and lets the cells above fall.
// A cell drops by the number of cleared rows below it, so gaps between
// non-adjacent cleared rows close up as well. Returns the number of rows
// removed.
func (g *Grid) ClearFullRows() int {
	full := g.FullRows()
	if len(full) == 0 {
		return 0
	}

	for _, row := range full {
		for col := range Cols {
			g.locked.Del(keyOf(col, row))
		}
	}

	type fall struct {
		from  Point
		by    int
		color RGB
	}
	var falls []fall
	g.ForEach(func(p Point, c RGB) bool {
		by := 0
		for _, row := range full {
			if row > p.Y {
				by++
			}
		}
		if by > 0 {
			falls = append(falls, fall{from: p, by: by, color: c})
		}
		return true
	})

	// Lift everything out before writing back so moved cells never
	// overwrite ones that have not moved yet.
	for _, f := range falls {
		g.locked.Del(keyOf(f.from.X, f.from.Y))
	}
	for _, f := range falls {
		g.locked.Put(keyOf(f.from.X, f.from.Y+f.by), f.color)
	}

	return len(full)
}

// Cells renders the locked cells into a matrix.
// Cells outside the well are left out.
func (g *Grid) Cells() Matrix {
	var m Matrix
	g.ForEach(func(p Point, c RGB) bool {
		if p.X >= 0 && p.X < Cols && p.Y >= 0 && p.Y < Rows {
			m[p.Y][p.X] = Cell{Filled: true, Color: c}
		}
		return true
	})
	return m
}

// Overlay renders the locked cells plus a falling piece on top.
// Piece cells above the well are not drawn.
func (g *Grid) Overlay(p Piece) Matrix {
	m := g.Cells()
	for _, c := range p.Cells() {
		if c.X >= 0 && c.X < Cols && c.Y >= 0 && c.Y < Rows {
			m[c.Y][c.X] = Cell{Filled: true, Color: p.RGB()}
		}
	}
	return m
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	clone := NewGrid()
	g.ForEach(func(p Point, c RGB) bool {
		clone.locked.Put(keyOf(p.X, p.Y), c)
		return true
	})
	return clone
}
