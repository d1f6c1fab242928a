package tetris

// Piece is a live falling piece: a shape, its anchor on the well and a
// rotation index. Pieces are values; moving one returns a new Piece.
type Piece struct {
	Kind     Kind
	X, Y     int // Anchor; Y may be negative while spawning
	Rotation int // Always in [0, Kind.Rotations())
}

// NewPiece creates an unrotated piece at the given anchor.
func NewPiece(k Kind, x, y int) Piece {
	return Piece{Kind: k, X: x, Y: y}
}

// Cells returns the well coordinates the piece covers.
func (p Piece) Cells() []Point {
	cells := p.Kind.Offsets(p.Rotation)
	for i := range cells {
		cells[i].X += p.X
		cells[i].Y += p.Y
	}
	return cells
}

// Moved returns the piece shifted by (dx, dy).
func (p Piece) Moved(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Rotated returns the piece turned to its next rotation state.
func (p Piece) Rotated() Piece {
	p.Rotation = p.Kind.normalizeRotation(p.Rotation + 1)
	return p
}

// RGB returns the color the piece locks with.
func (p Piece) RGB() RGB {
	return p.Kind.RGB()
}

// Template returns the mask of the current rotation.
func (p Piece) Template() Template {
	return p.Kind.Template(p.Rotation)
}
