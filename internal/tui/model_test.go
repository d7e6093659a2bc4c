package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lgbarn/chess-match-go/internal/chess"
	"github.com/lgbarn/chess-match-go/internal/engine"
	"github.com/lgbarn/chess-match-go/internal/render"
	"github.com/lgbarn/chess-match-go/internal/testutil"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(key(k))
		m = next.(Model)
	}
	return m
}

func TestModel_PlaysMoveWithCursor(t *testing.T) {
	m := NewModel(engine.NewStandardMatch(), render.Options{}, true)
	testutil.AssertEqual(t, m.cursor, testutil.Square(t, "e2"))

	m = send(t, m, "enter")
	if m.selected == nil {
		t.Fatalf("enter on e2 did not select: %s", m.message)
	}
	testutil.AssertEqual(t, m.moves.Count(), 2)
	testutil.AssertContains(t, m.View(), "(-)")

	m = send(t, m, "up", "up", "enter")
	if m.selected != nil {
		t.Error("selection should clear after a move")
	}
	testutil.AssertEqual(t, m.Match().ActiveColour(), chess.Black)
	testutil.AssertEqual(t, m.message, "White e2-e4")
}

func TestModel_RejectsBadOrigin(t *testing.T) {
	m := NewModel(engine.NewStandardMatch(), render.Options{}, true)

	m = send(t, m, "left", "down", "enter")
	testutil.AssertEqual(t, m.cursor, testutil.Square(t, "d1"))
	testutil.AssertEqual(t, m.message, "that piece has no possible moves")

	m = send(t, m, "up", "up", "up", "enter")
	testutil.AssertEqual(t, m.message, "there is no piece on that square")

	m = send(t, m, "k", "k", "k", "enter")
	testutil.AssertEqual(t, m.cursor, testutil.Square(t, "d7"))
	testutil.AssertEqual(t, m.message, "that piece is not yours")
}

func TestModel_RejectsIllegalDestinationAndSelfCheck(t *testing.T) {
	match, err := engine.NewMatchFromFEN("4k3/4r3/8/8/8/8/4B3/4K3 w")
	testutil.AssertNoError(t, err)
	m := NewModel(match, render.Options{}, false)

	m = send(t, m, "enter", "up", "enter")
	testutil.AssertEqual(t, m.message, "that piece cannot move there")
	if m.selected == nil {
		t.Error("selection should survive an illegal destination")
	}

	m = send(t, m, "left", "enter")
	testutil.AssertEqual(t, m.message, "you cannot put yourself in check")
	testutil.AssertEqual(t, match.ActiveColour(), chess.White)
}

func TestModel_EscapeAndReselect(t *testing.T) {
	m := NewModel(engine.NewStandardMatch(), render.Options{}, true)

	m = send(t, m, "enter", "esc")
	if m.selected != nil || m.moves != nil {
		t.Error("esc should clear the selection")
	}

	m = send(t, m, "enter", "enter")
	testutil.AssertEqual(t, m.message, "selection cleared")
}

func TestModel_CursorStaysOnBoard(t *testing.T) {
	m := NewModel(engine.NewStandardMatch(), render.Options{}, true)
	m = send(t, m, "down", "down", "down", "right", "right", "right", "right")
	testutil.AssertEqual(t, m.cursor, testutil.Square(t, "h1"))
}

func TestModel_Checkmate(t *testing.T) {
	match, err := engine.NewMatchFromFEN("6k1/5ppp/8/8/8/8/8/R5K1 w")
	testutil.AssertNoError(t, err)
	m := NewModel(match, render.Options{}, true)
	m.cursor = testutil.Square(t, "a1")

	m = send(t, m, "enter")
	for i := 0; i < 7; i++ {
		m = send(t, m, "up")
	}
	m = send(t, m, "enter")

	testutil.AssertTrue(t, match.Finished(), "Finished()")
	view := m.View()
	testutil.AssertContains(t, view, "CHECKMATE! Winner: White")
	testutil.AssertContains(t, view, "press q to quit")

	// Input is ignored once finished.
	m = send(t, m, "enter")
	if m.selected != nil {
		t.Error("no selection after checkmate")
	}
}

func TestModel_Quit(t *testing.T) {
	m := NewModel(engine.NewStandardMatch(), render.Options{}, true)
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit")
	}
}

func TestModel_CentresScreenToWindowWidth(t *testing.T) {
	m := NewModel(engine.NewStandardMatch(), render.Options{}, true)
	narrow := strings.SplitN(m.View(), "\n", 2)[0]

	next, _ := m.Update(tea.WindowSizeMsg{Width: 160, Height: 40})
	m = next.(Model)
	testutil.AssertEqual(t, m.width, 160)

	wide := strings.SplitN(m.View(), "\n", 2)[0]
	testutil.AssertEqual(t, lipgloss.Width(wide), 160)
	testutil.AssertContains(t, wide, strings.TrimSpace(narrow))
	testutil.AssertTrue(t, strings.HasPrefix(wide, " "), "screen should be indented")
}
