package tetris

import "testing"

func TestIsValid(t *testing.T) {
	g := NewGrid()
	g.LockCells([]Point{{5, 10}}, gray)

	tests := []struct {
		name  string
		piece Piece
		want  bool
	}{
		{"spawn", NewPiece(KindO, 5, 0), true},
		{"resting on floor", NewPiece(KindI, 5, 20), true},
		{"through floor", NewPiece(KindI, 5, 21), false},
		{"left wall", NewPiece(KindO, 0, 5), false},
		{"touching left wall", NewPiece(KindO, 1, 5), true},
		{"right wall", NewPiece(KindO, 10, 5), false},
		{"overlap", NewPiece(KindI, 5, 12), false},
		{"above the well past the wall", NewPiece(KindO, -3, 0), true},
		{"partly entered past the wall", NewPiece(KindO, -3, 2), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValid(tt.piece, g); got != tt.want {
				t.Errorf("IsValid(%+v) = %v, expected %v", tt.piece, got, tt.want)
			}
		})
	}
}

func TestLockWritesEveryCell(t *testing.T) {
	g := NewGrid()
	p := NewPiece(KindI, 3, 1) // rows -3..0
	Lock(p, g)

	if g.Len() != 4 {
		t.Fatalf("Len() = %d, expected 4", g.Len())
	}
	for _, c := range p.Cells() {
		if color, ok := g.Locked(c.X, c.Y); !ok || color != KindI.RGB() {
			t.Errorf("cell %+v not locked with I color", c)
		}
	}
	if !HasLost(g) {
		t.Error("cells above row 1 should lose the game")
	}
}

func TestHasLost(t *testing.T) {
	g := NewGrid()
	g.LockCells([]Point{{0, 1}, {0, 19}}, gray)
	if HasLost(g) {
		t.Error("row 1 is still in play")
	}
	g.LockCells([]Point{{0, 0}}, gray)
	if !HasLost(g) {
		t.Error("a locked cell in row 0 should lose the game")
	}
}
