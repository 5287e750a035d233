package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestDefaultKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"wasd w", runeKey('w'), core.ActionUp},
		{"wasd a", runeKey('a'), core.ActionLeft},
		{"vim j", runeKey('j'), core.ActionDown},
		{"vim l", runeKey('l'), core.ActionRight},
		{"pause", runeKey('p'), core.ActionPause},
		{"escape pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"restart", runeKey('r'), core.ActionRestart},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.expected {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.expected)
			}
		})
	}
}

func TestCustomKeyMap(t *testing.T) {
	kc := config.Default().Keys
	kc.Up = []string{"i"}
	kc.Screenshot = nil
	km := NewKeyMap(kc)

	if got := km.Action(runeKey('i')); got != core.ActionUp {
		t.Errorf("custom up key = %v, want Up", got)
	}
	if got := km.Action(runeKey('w')); got != core.ActionNone {
		t.Errorf("rebound key w = %v, want None", got)
	}
	if km.Screenshot.Enabled() {
		t.Error("empty binding should be disabled")
	}
	if km.Up.Help().Key != "i" {
		t.Errorf("help key = %q, want i", km.Up.Help().Key)
	}
}

func TestHelpGroups(t *testing.T) {
	km := DefaultKeyMap()
	if len(km.ShortHelp()) != 7 {
		t.Errorf("ShortHelp has %d bindings, want 7", len(km.ShortHelp()))
	}
	if len(km.FullHelp()) != 2 {
		t.Errorf("FullHelp has %d columns, want 2", len(km.FullHelp()))
	}
}
