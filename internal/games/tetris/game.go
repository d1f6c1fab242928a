package tetris

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// Game identity used by the CLI and the score table.
const (
	GameID    = "tetris"
	GameTitle = "Tetris"
)

// Minimum screen size that fits the well and the side panel.
const (
	minScreenW = panelX + panelW
	minScreenH = boardTop + Rows + 2
)

// Options configure a Game.
type Options struct {
	// Settings are the engine tunables. The zero value means DefaultSettings.
	Settings Settings
	// Store receives the final score of every game. May be nil.
	Store HighScoreStore
	// Logger reports persistence problems. May be nil.
	Logger *log.Logger
}

// Game adapts an Engine to the fixed-tick platform loop: it turns input
// frames into commands, adds a start screen, pause and restart, and draws
// the well into a screen buffer.
type Game struct {
	opts   Options
	engine *Engine
	rng    *rand.Rand
	cfg    core.RuntimeConfig
	tick   uint64

	started  bool
	paused   bool
	tooSmall bool
}

// New creates a game. Reset must be called before the first Step.
func New(opts Options) *Game {
	if opts.Settings.InitialInterval <= 0 {
		opts.Settings = DefaultSettings()
	}
	return &Game{opts: opts}
}

// ID returns the game identifier.
func (g *Game) ID() string { return GameID }

// Title returns the display name.
func (g *Game) Title() string { return GameTitle }

// Reset starts a fresh session on the start screen.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.engine = NewEngine(g.opts.Settings, g.rng, g.opts.Store)
	g.tick = 0
	g.started = false
	g.paused = false
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(w, h int) {
	g.cfg.ScreenW = w
	g.cfg.ScreenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// Engine exposes the underlying drop controller.
func (g *Game) Engine() *Engine { return g.engine }

// Started reports whether the player left the start screen.
func (g *Game) Started() bool { return g.started }

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if !g.started {
		if !input.Empty() {
			g.started = true
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionRestart) && g.engine.Lost() {
		g.engine.Reset()
		g.paused = false
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && !g.engine.Lost() {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.engine.Lost() {
		return core.StepResult{State: g.State()}
	}

	ev := g.engine.Frame(commandsFor(input), g.cfg.TickInterval())
	if ev.GameOver {
		g.reportRecordErr()
	}

	return core.StepResult{
		State:   g.State(),
		Locked:  ev.Locked,
		Cleared: ev.Cleared,
	}
}

// commandsFor maps a frame's actions onto engine commands in arrival order.
func commandsFor(input core.InputFrame) []Command {
	var cmds []Command
	for _, a := range input.Sequence() {
		switch a {
		case core.ActionLeft:
			cmds = append(cmds, CmdMoveLeft)
		case core.ActionRight:
			cmds = append(cmds, CmdMoveRight)
		case core.ActionSoftDrop:
			cmds = append(cmds, CmdSoftDrop)
		case core.ActionRotate:
			cmds = append(cmds, CmdRotate)
		}
	}
	return cmds
}

func (g *Game) reportRecordErr() {
	err := g.engine.RecordErr()
	if err == nil || g.opts.Logger == nil {
		return
	}
	g.opts.Logger.Warn("could not save score", "score", g.engine.FinalScore(), "err", err)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:     g.engine.Score(),
		HighScore: g.engine.HighScore(),
		GameOver:  g.engine.Lost(),
		Paused:    g.paused,
	}
}

// Snapshot returns the engine snapshot for determinism checks.
func (g *Game) Snapshot() Snapshot {
	return g.engine.Snapshot()
}
