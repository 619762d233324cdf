package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/hoardapp/hoard/internal/model"
	"github.com/hoardapp/hoard/internal/search"
)

func testResults() []search.Result {
	return []search.Result{
		{Bookmark: &model.Bookmark{ID: "b1", Title: "GitHub", URL: "https://github.com"}},
		{Bookmark: &model.Bookmark{ID: "b2", Title: "GitLab", URL: "https://gitlab.com"}},
	}
}

func TestPicker_InitialState(t *testing.T) {
	p := New(testResults(), "git")

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
	if len(p.results) != 2 {
		t.Errorf("expected 2 results, got %d", len(p.results))
	}
}

func TestPicker_NavigateDown(t *testing.T) {
	p := New(testResults(), "git")
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}

	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", p.cursor)
	}
}

func TestPicker_NavigateUp(t *testing.T) {
	p := New(testResults(), "git")
	p.cursor = 1

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
}

func TestPicker_BoundsCheck(t *testing.T) {
	p := New(testResults()[:1], "git")

	// Up from 0 stays at 0
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}

	// Down from last stays at last
	msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	newModel, _ = p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 (only 1 item), got %d", p.cursor)
	}
}

func TestPicker_SelectItem(t *testing.T) {
	p := New(testResults(), "git")
	p.cursor = 1 // Select GitLab

	msg := tea.KeyMsg{Type: tea.KeyEnter}
	newModel, cmd := p.Update(msg)
	p = newModel.(Picker)

	if !p.selected {
		t.Error("expected selected to be true after Enter")
	}
	if cmd == nil {
		t.Error("expected quit command after selection")
	}

	got := p.SelectedBookmark()
	if got == nil || got.ID != "b2" {
		t.Errorf("expected b2 selected, got %v", got)
	}
}

func TestPicker_Cancel(t *testing.T) {
	p := New(testResults(), "git")

	msg := tea.KeyMsg{Type: tea.KeyEsc}
	newModel, cmd := p.Update(msg)
	p = newModel.(Picker)

	if !p.cancelled {
		t.Error("expected cancelled to be true after Esc")
	}
	if cmd == nil {
		t.Error("expected quit command after cancel")
	}
	if p.SelectedBookmark() != nil {
		t.Error("expected nil selection when cancelled")
	}
}

func TestPicker_ArrowKeys(t *testing.T) {
	p := New(testResults(), "git")

	msg := tea.KeyMsg{Type: tea.KeyDown}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)
	if p.cursor != 1 {
		t.Errorf("expected cursor at 1 after down arrow, got %d", p.cursor)
	}

	msg = tea.KeyMsg{Type: tea.KeyUp}
	newModel, _ = p.Update(msg)
	p = newModel.(Picker)
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 after up arrow, got %d", p.cursor)
	}
}
