package tetris

// OccupiedCells returns the well cells a piece covers: its anchor plus the
// offsets of its current rotation.
func OccupiedCells(p Piece) []Point {
	return p.Cells()
}

// IsValid reports whether a piece fits the well.
// Cells above the top edge are exempt so pieces can enter from above; every
// other cell must lie inside the walls, above the floor and on an empty
// position.
func IsValid(p Piece, g *Grid) bool {
	for _, c := range OccupiedCells(p) {
		if c.Y < 0 {
			continue
		}
		if c.X < 0 || c.X >= Cols || c.Y >= Rows {
			return false
		}
		if !g.IsCellEmpty(c.X, c.Y) {
			return false
		}
	}
	return true
}

// Lock settles a piece into the grid with its shape's color.
// Cells above the well are stored too so that HasLost can see them.
func Lock(p Piece, g *Grid) {
	g.LockCells(OccupiedCells(p), p.RGB())
}

// HasLost reports whether any locked cell reached the top row or above.
func HasLost(g *Grid) bool {
	lost := false
	g.ForEach(func(p Point, _ RGB) bool {
		if p.Y < 1 {
			lost = true
			return false
		}
		return true
	})
	return lost
}
