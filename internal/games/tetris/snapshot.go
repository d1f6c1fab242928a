package tetris

import "time"

// Snapshot is everything a renderer or a replay check needs to know about
// an engine at one instant.
type Snapshot struct {
	Cells        Matrix // Locked cells with the falling piece drawn on top
	Current      Piece
	Next         Kind
	NextRotation int
	Score        int
	HighScore    int
	Lost         bool
	FinalScore   int
	FallInterval time.Duration
	Lines        int
	Pieces       int
	Phase        Phase
}

// Snapshot captures the engine state.
func (e *Engine) Snapshot() Snapshot {
	cells := e.grid.Cells()
	if !e.lost {
		cells = e.grid.Overlay(e.current)
	}
	return Snapshot{
		Cells:        cells,
		Current:      e.current,
		Next:         e.next,
		Score:        e.score,
		HighScore:    e.highScore,
		Lost:         e.lost,
		FinalScore:   e.finalScore,
		FallInterval: e.interval,
		Lines:        e.lines,
		Pieces:       e.pieces,
		Phase:        e.phase,
	}
}
