package tetris

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// Command is an abstract player intent.
type Command int

const (
	CmdNone Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdSoftDrop
	CmdRotate
)

// String returns the command name.
func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "move-left"
	case CmdMoveRight:
		return "move-right"
	case CmdSoftDrop:
		return "soft-drop"
	case CmdRotate:
		return "rotate"
	default:
		return "none"
	}
}

// Phase is the drop controller state.
type Phase int

const (
	PhaseSpawning Phase = iota
	PhaseFalling
	PhaseLocking
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseSpawning:
		return "spawning"
	case PhaseFalling:
		return "falling"
	case PhaseLocking:
		return "locking"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Randomizer picks piece kinds. *rand.Rand satisfies it.
type Randomizer interface {
	Intn(n int) int
}

// HighScoreStore persists the best score between games.
// HighScore must not fail; unreadable stores report 0.
type HighScoreStore interface {
	HighScore() int
	Record(score int) error
}

// Settings are the engine tunables.
type Settings struct {
	SpeedUp         bool
	InitialInterval time.Duration
	MinInterval     time.Duration
	Decrement       time.Duration
	SpeedUpEvery    time.Duration
	PointsPerRow    int
	SpawnX, SpawnY  int
}

// DefaultSettings returns the classic pacing.
func DefaultSettings() Settings {
	return SettingsFromConfig(config.DefaultTetrisConfig())
}

// SettingsFromConfig converts a loaded configuration.
func SettingsFromConfig(cfg config.TetrisConfig) Settings {
	return Settings{
		SpeedUp:         cfg.Speed.Enabled,
		InitialInterval: cfg.Speed.InitialInterval,
		MinInterval:     cfg.Speed.MinInterval,
		Decrement:       cfg.Speed.Decrement,
		SpeedUpEvery:    cfg.Speed.SpeedUpEvery,
		PointsPerRow:    cfg.Scoring.PointsPerRow,
		SpawnX:          cfg.Spawn.X,
		SpawnY:          cfg.Spawn.Y,
	}
}

// Event describes what a call to Advance or Frame did.
type Event struct {
	Fell     bool // The piece dropped one row on its own
	Locked   bool // A piece settled
	Cleared  int  // Rows removed by the lock
	GameOver bool // The lock ended the game
}

// Engine is the drop controller. It owns the grid, the falling piece, the
// queued next piece and the score, and advances them from commands and
// elapsed time. An Engine is not safe for concurrent use.
type Engine struct {
	settings Settings
	rng      Randomizer
	store    HighScoreStore

	grid    *Grid
	current Piece
	next    Kind
	queued  bool // next holds a drawn kind
	phase   Phase

	score      int
	highScore  int
	finalScore int
	lost       bool
	lines      int
	pieces     int

	interval time.Duration
	fallAcc  time.Duration
	levelAcc time.Duration

	recordErr error
}

// NewEngine creates an engine and spawns the first piece.
// A nil rng falls back to a zero-seeded source; a nil store keeps no history.
func NewEngine(settings Settings, rng Randomizer, store HighScoreStore) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewSource(0))
	}
	e := &Engine{
		settings: settings,
		rng:      rng,
		store:    store,
		grid:     NewGrid(),
	}
	e.Reset()
	return e
}

// Reset starts a new game: empty well, zero score, initial interval.
func (e *Engine) Reset() {
	e.grid.Reset()
	e.score = 0
	e.finalScore = 0
	e.lost = false
	e.lines = 0
	e.pieces = 0
	e.interval = e.settings.InitialInterval
	e.fallAcc = 0
	e.levelAcc = 0
	e.queued = false
	e.recordErr = nil
	e.highScore = 0
	if e.store != nil {
		e.highScore = e.store.HighScore()
	}
	e.phase = PhaseSpawning
	e.spawn()
}

// spawn promotes the queued piece and queues a fresh one.
func (e *Engine) spawn() {
	e.phase = PhaseSpawning
	kind := e.next
	if !e.queued {
		kind = e.draw()
	}
	e.current = NewPiece(kind, e.settings.SpawnX, e.settings.SpawnY)
	e.next = e.draw()
	e.queued = true
	e.phase = PhaseFalling
}

func (e *Engine) draw() Kind {
	return Kind(e.rng.Intn(KindCount))
}

// Apply executes one player command. Moves that would not fit are
// discarded. Returns true if the piece changed.
func (e *Engine) Apply(cmd Command) bool {
	if e.phase != PhaseFalling {
		return false
	}

	var candidate Piece
	switch cmd {
	case CmdMoveLeft:
		candidate = e.current.Moved(-1, 0)
	case CmdMoveRight:
		candidate = e.current.Moved(1, 0)
	case CmdSoftDrop:
		candidate = e.current.Moved(0, 1)
	case CmdRotate:
		candidate = e.current.Rotated()
	default:
		return false
	}

	if !IsValid(candidate, e.grid) {
		return false
	}
	e.current = candidate
	return true
}

// Advance lets dt of game time pass: the speed curve progresses and, once
// the fall interval has elapsed, the piece drops one row. A piece that
// cannot drop after entering the well locks. At most one row is dropped
// per call.
func (e *Engine) Advance(dt time.Duration) Event {
	if e.phase != PhaseFalling || dt < 0 {
		return Event{}
	}

	e.fallAcc += dt
	e.levelAcc += dt

	if e.levelAcc > e.settings.SpeedUpEvery {
		e.levelAcc = 0
		if e.settings.SpeedUp {
			e.interval = max(e.settings.MinInterval, e.interval-e.settings.Decrement)
		}
	}

	if e.fallAcc < e.interval {
		return Event{}
	}
	e.fallAcc = 0

	dropped := e.current.Moved(0, 1)
	if IsValid(dropped, e.grid) {
		e.current = dropped
		return Event{Fell: true}
	}
	if e.current.Y < 0 {
		// Still entering; wait for the next interval.
		return Event{}
	}
	return e.lock()
}

// Frame applies commands in order and then advances time.
func (e *Engine) Frame(cmds []Command, dt time.Duration) Event {
	for _, cmd := range cmds {
		e.Apply(cmd)
	}
	return e.Advance(dt)
}

// lock settles the current piece, clears rows, scores them and either
// spawns the next piece or ends the game.
func (e *Engine) lock() Event {
	e.phase = PhaseLocking

	Lock(e.current, e.grid)
	e.pieces++

	cleared := e.grid.ClearFullRows()
	e.lines += cleared
	e.score += cleared * e.settings.PointsPerRow

	ev := Event{Locked: true, Cleared: cleared}
	if HasLost(e.grid) {
		e.gameOver()
		ev.GameOver = true
		return ev
	}

	e.spawn()
	return ev
}

// gameOver freezes the engine and reports the final score once.
func (e *Engine) gameOver() {
	e.phase = PhaseGameOver
	e.lost = true
	e.finalScore = e.score
	if e.store != nil {
		e.recordErr = e.store.Record(e.finalScore)
	}
	e.highScore = max(e.highScore, e.finalScore)
}

// Current returns the falling piece.
func (e *Engine) Current() Piece { return e.current }

// Next returns the queued piece kind.
func (e *Engine) Next() Kind { return e.next }

// Score returns the running score.
func (e *Engine) Score() int { return e.score }

// HighScore returns the best score known, including a just-finished game.
func (e *Engine) HighScore() int { return e.highScore }

// Lost reports whether the game is over.
func (e *Engine) Lost() bool { return e.lost }

// FinalScore returns the score the game ended with, or 0 while playing.
func (e *Engine) FinalScore() int { return e.finalScore }

// FallInterval returns the current time per row.
func (e *Engine) FallInterval() time.Duration { return e.interval }

// Phase returns the controller state.
func (e *Engine) Phase() Phase { return e.phase }

// Grid returns the well. Callers must not modify it.
func (e *Engine) Grid() *Grid { return e.grid }

// LinesCleared returns the rows removed this game.
func (e *Engine) LinesCleared() int { return e.lines }

// PiecesLocked returns the pieces settled this game.
func (e *Engine) PiecesLocked() int { return e.pieces }

// RecordErr returns the error from reporting the final score, if any.
func (e *Engine) RecordErr() error { return e.recordErr }
