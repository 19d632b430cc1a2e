package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/wordjumble/internal/model"
)

type fakeRecorder struct {
	records []model.QueryRecord
	err     error
}

func (f *fakeRecorder) InsertQuery(_ context.Context, rec model.QueryRecord) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.records = append(f.records, rec)
	return int64(len(f.records)), nil
}

func writeDict(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "wordlist.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write dictionary: %v", err)
	}
	return path
}

func TestSearchOnEnter(t *testing.T) {
	rec := &fakeRecorder{}
	m := NewModel(writeDict(t, "eat\ntea\nate\ntax\ntea pot\n"), rec)
	m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m.input.SetValue("eat")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	matches := m.Matches()
	if len(matches) != 3 || matches[0] != "eat" || matches[2] != "ate" {
		t.Fatalf("unexpected matches: %v", matches)
	}
	if len(rec.records) != 1 || rec.records[0].Matches != 3 || rec.records[0].Alphagram != "aet" {
		t.Fatalf("unexpected recorded queries: %+v", rec.records)
	}
	view := m.View()
	if !strings.Contains(view, "3 matches") {
		t.Fatalf("expected match count in footer: %s", view)
	}
	if !strings.Contains(view, "tea") {
		t.Fatalf("expected matches in view: %s", view)
	}
}

func TestSearchRequiresLetters(t *testing.T) {
	m := NewModel(writeDict(t, "eat\n"), nil)
	m.input.SetValue("123 !")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.errMsg == "" {
		t.Fatalf("expected error for query without letters")
	}
	if len(m.Matches()) != 0 {
		t.Fatalf("expected no matches")
	}
}

func TestSearchMissingDictionary(t *testing.T) {
	m := NewModel(filepath.Join(t.TempDir(), "missing.txt"), nil)
	m.input.SetValue("eat")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !strings.Contains(m.errMsg, "missing.txt") {
		t.Fatalf("expected dictionary error, got %q", m.errMsg)
	}
}

func TestRecorderFailureKeepsResults(t *testing.T) {
	rec := &fakeRecorder{err: errors.New("db locked")}
	m := NewModel(writeDict(t, "a\naa\n"), rec)
	m.input.SetValue("aa")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(m.Matches()) != 2 {
		t.Fatalf("expected matches despite recorder failure, got %v", m.Matches())
	}
	if m.errMsg != "" {
		t.Fatalf("expected no user-facing error, got %q", m.errMsg)
	}
}

func TestQuitKeys(t *testing.T) {
	m := NewModel("unused", nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
