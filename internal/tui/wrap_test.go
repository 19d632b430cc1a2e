package tui

import "testing"

func TestWrapWordsPacksLines(t *testing.T) {
	lines := wrapWords([]string{"eat", "tea", "ate", "eta"}, 8)
	expected := []string{"eat  tea", "ate  eta"}
	if len(lines) != len(expected) {
		t.Fatalf("expected %d lines, got %d: %q", len(expected), len(lines), lines)
	}
	for i, line := range expected {
		if lines[i] != line {
			t.Fatalf("expected %q at line %d, got %q", line, i, lines[i])
		}
	}
}

func TestWrapWordsLongWordOwnLine(t *testing.T) {
	lines := wrapWords([]string{"a", "extraordinary", "b"}, 5)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	if lines[1] != "extraordinary" {
		t.Fatalf("expected long word on its own line, got %q", lines[1])
	}
}

func TestWrapWordsNoWidth(t *testing.T) {
	lines := wrapWords([]string{"a", "b"}, 0)
	if len(lines) != 1 || lines[0] != "a  b" {
		t.Fatalf("unexpected lines: %q", lines)
	}
	if wrapWords(nil, 10) != nil {
		t.Fatalf("expected nil for no words")
	}
}
