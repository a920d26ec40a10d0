package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/hook-digger/internal/core"
	"github.com/vovakirdan/hook-digger/internal/registry"
)

func init() {
	registry.Register("scripted", func() registry.Game { return &scriptedGame{} })
}

func sessionUpdate(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionPlayAndReturn(t *testing.T) {
	store := openTestStore(t)

	var users []string
	hooks := func(user string) RoundHook {
		return func(string, core.RoundReport) { users = append(users, user) }
	}
	m := NewSessionModel(store, testConfig(), "bob", hooks)

	if !strings.Contains(m.View(), "H O O K") {
		t.Fatal("session does not start at the menu")
	}

	m, cmd := sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game == nil {
		t.Fatal("selecting a mode did not start a game")
	}
	if cmd == nil {
		t.Error("game start returned no tick command")
	}

	m, _ = sessionUpdate(t, m, TickMsg(time.Now()))
	m, _ = sessionUpdate(t, m, TickMsg(time.Now()))

	if len(users) != 1 || users[0] != "bob" {
		t.Errorf("round hook users = %v", users)
	}
	rounds, err := store.RecentRounds("scripted", 5)
	if err != nil || len(rounds) != 1 || rounds[0].Player != "bob" {
		t.Errorf("stored rounds = %+v, err = %v", rounds, err)
	}

	m, _ = sessionUpdate(t, m, runeKey("b"))
	if m.game != nil {
		t.Fatal("b after game over did not return to the menu")
	}
	if m.quitting {
		t.Error("returning to the menu ended the session")
	}
	if !strings.Contains(m.View(), "best") {
		t.Error("menu view missing after return")
	}
}

func TestSessionScoreboard(t *testing.T) {
	m := NewSessionModel(openTestStore(t), testConfig(), "carol", nil)

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab did not open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	m, _ = sessionUpdate(t, m, runeKey("v"))
	if !strings.Contains(m.View(), "ROUND HISTORY") {
		t.Error("v did not switch to the round history")
	}

	m, _ = sessionUpdate(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.scoreboard != nil || m.quitting {
		t.Error("esc did not return to the menu")
	}
}

func TestSessionQuit(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "dave", nil)
	m, cmd := sessionUpdate(t, m, runeKey("q"))
	if !m.quitting || cmd == nil {
		t.Error("q did not end the session")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestLevelSelect(t *testing.T) {
	choices := []LevelChoice{{Level: 1, Target: 650}, {Level: 2, Target: 850}}
	m := NewLevelSelectModel(choices, 40, 12)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(LevelSelectModel)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown}) // clamped at the last level
	m = next.(LevelSelectModel)
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(LevelSelectModel)

	if got := m.Selected(); got == nil || got.Level != 2 {
		t.Fatalf("Selected = %+v, want level 2", got)
	}
	if cmd == nil {
		t.Error("selection should end the selector")
	}

	back := NewLevelSelectModel(choices, 40, 12)
	next, _ = back.Update(tea.KeyMsg{Type: tea.KeyEsc})
	back = next.(LevelSelectModel)
	if !back.WantsBack() || back.Selected() != nil {
		t.Error("esc should back out without a selection")
	}
}
