package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// stubGame records what the model feeds it.
type stubGame struct {
	resets   int
	steps    []core.InputFrame
	state    core.GameState
	w, h     int
	rendered int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.w, g.h = cfg.ScreenW, cfg.ScreenH
}
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.state}
}
func (g *stubGame) Render(dst *core.Screen) {
	g.rendered++
	dst.DrawText(0, 0, "stub")
}
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Resize(w, h int)       { g.w, g.h = w, h }

func newStubModel() (*stubGame, Model) {
	g := &stubGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 24, TickRate: 60, Seed: 1}, nil)
	m.Init()
	return g, m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelBuffersKeysUntilTick(t *testing.T) {
	g, m := newStubModel()
	if g.resets != 1 {
		t.Fatalf("Init should reset the game once, got %d", g.resets)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if len(g.steps) != 0 {
		t.Fatal("keys must not step the game")
	}

	m, cmd := update(t, m, TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if len(g.steps) != 1 {
		t.Fatalf("expected one step, got %d", len(g.steps))
	}
	seq := g.steps[0].Sequence()
	if len(seq) != 2 || seq[0] != core.ActionLeft || seq[1] != core.ActionRotate {
		t.Errorf("step input = %v", seq)
	}

	update(t, m, TickMsg{})
	if !g.steps[1].Empty() {
		t.Error("input should be cleared after each tick")
	}
}

func TestModelQuit(t *testing.T) {
	_, m := newStubModel()
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	g, m := newStubModel()

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back should be ignored while playing")
	}

	g.state.GameOver = true
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should work after game over")
	}
	if m.ClearBack().BackToMenu() {
		t.Error("ClearBack should reset the request")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g, m := newStubModel()
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	if g.resets != 1 {
		t.Error("resize must not restart the game")
	}
	if g.w != 100 || g.h != 30 {
		t.Errorf("game size = %dx%d, expected 100x30", g.w, g.h)
	}
	if !strings.Contains(m.View(), "stub") {
		t.Error("View should render the game")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawText(2, 0, "cd")
	s.DrawTextColored(0, 1, "xyz", core.Color(200))

	out := RenderScreen(s)
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("RenderScreen output missing %q: %q", want, out)
		}
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}
