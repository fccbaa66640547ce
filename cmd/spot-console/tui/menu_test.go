package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/spotget/spot-downloader/internal/config"
	"github.com/spotget/spot-downloader/internal/model"
)

func TestMenuNavigationOpensForm(t *testing.T) {
	m := New(config.DefaultFileConfig(), nil)

	down := tea.KeyMsg{Type: tea.KeyDown}
	updated, _ := m.Update(down)
	updated, _ = updated.Update(down)
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := updated.(Model)
	if got.screen != screenForm {
		t.Fatalf("expected form screen, got %d", got.screen)
	}
	if got.op != model.OperationSync {
		t.Fatalf("expected sync operation, got %s", got.op)
	}
	if len(got.fields) == 0 {
		t.Fatalf("expected form fields to be built")
	}
}

func TestMenuNumberShortcut(t *testing.T) {
	m := New(config.DefaultFileConfig(), nil)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'2'}})

	got := updated.(Model)
	if got.screen != screenForm || got.op != model.OperationSave {
		t.Fatalf("expected save form, got screen %d op %s", got.screen, got.op)
	}
}

func TestMenuExitQuits(t *testing.T) {
	m := New(config.DefaultFileConfig(), nil)

	// The Exit entry sits below the four operations
	var updated tea.Model = m
	for i := 0; i < len(menuItems()); i++ {
		updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	updated, cmd := updated.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected QuitMsg, got %T", cmd())
	}
	if updated.(Model).screen != screenMenu {
		t.Fatalf("exit should not leave the menu screen")
	}
}

func TestFormEscReturnsToMenu(t *testing.T) {
	m := New(config.DefaultFileConfig(), nil)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'1'}})
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyEsc})

	got := updated.(Model)
	if got.screen != screenMenu {
		t.Fatalf("expected menu screen after esc, got %d", got.screen)
	}
	if got.fields != nil {
		t.Fatalf("expected form state cleared")
	}
}
