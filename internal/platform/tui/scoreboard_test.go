package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/storage"
)

func TestScoreboardRowsAndToggle(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveScore("tetris", "alice", 30)
	store.SaveScore("tetris", "bob", 90)
	store.SaveScore("tetris", "alice", 50)

	m := NewScoreboardModel(store, "tetris", "Tetris", "alice", 80, 24)
	rows := m.Rows()
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0][1] != "bob" || rows[0][2] != "90" {
		t.Errorf("top row = %v, expected bob with 90", rows[0])
	}
	if !strings.Contains(m.View(), "HIGH SCORES - Tetris") {
		t.Error("missing title")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(ScoreboardModel)
	rows = m.Rows()
	if len(rows) != 2 {
		t.Fatalf("expected alice's 2 games, got %d", len(rows))
	}
	for _, r := range rows {
		if r[1] != "alice" {
			t.Errorf("unexpected row %v in player view", r)
		}
	}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(ScoreboardModel)
	if !m.IsGoingBack() || cmd == nil {
		t.Error("esc should go back")
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, "tetris", "Tetris", "", 80, 24)
	if len(m.Rows()) != 0 {
		t.Error("no store means no rows")
	}
	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("expected the empty message")
	}
}
