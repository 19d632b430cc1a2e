package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordjumble/internal/model"
)

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"Query", "Letters", "Matches"}
	rows := [][]string{
		{"eat", "aet", "12"},
		{"Listen!", "eilnst", "3"},
	}
	rightAlign := map[int]bool{2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "Query   Letters Matches" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "eat     aet          12" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "Listen! eilnst        3" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestFormatTableWideRunes(t *testing.T) {
	lines := formatTable([]string{"Q", "N"}, [][]string{{"日本", "1"}, {"ab", "2"}}, nil)
	if lines[1] != "日本 1" {
		t.Fatalf("unexpected wide row: %q", lines[1])
	}
	if lines[2] != "ab   2" {
		t.Fatalf("unexpected narrow row: %q", lines[2])
	}
}

func TestRenderHistory(t *testing.T) {
	report := Report{
		Queries: []model.QueryRecord{
			{AskedAt: time.Now(), Query: "eat", Alphagram: "aet", Matches: 3, DurationMs: 4},
			{AskedAt: time.Now(), Query: "stone", Alphagram: "enost", Matches: 11, DurationMs: 6},
		},
		TotalMatches: 14,
		Top:          []model.AlphagramCount{{Alphagram: "aet", Count: 1, Matches: 3}},
	}
	var buf bytes.Buffer
	if err := RenderHistory(&buf, report); err != nil {
		t.Fatalf("RenderHistory failed: %v", err)
	}
	out := buf.String()
	for _, needle := range []string{"Query", "stone", "enost", "Total matches: 14", "Searches"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("expected %q in output:\n%s", needle, out)
		}
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, Report{}); err != nil {
		t.Fatalf("RenderHistory failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "No queries found." {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
