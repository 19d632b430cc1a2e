package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordjumble/internal/model"
	"github.com/verte-zerg/wordjumble/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	st, err := store.Open(filepath.Join(dir, "history.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	var ids []int64
	for i, q := range []string{"eat", "tea", "stone"} {
		rec := model.QueryRecord{
			AskedAt:        time.Unix(0, 0).UTC().Add(time.Duration(i) * time.Minute),
			Query:          q,
			Alphagram:      map[string]string{"eat": "aet", "tea": "aet", "stone": "enost"}[q],
			DictionaryPath: "wordlist.txt",
			Matches:        i + 2,
			DurationMs:     5,
		}
		id, err := st.InsertQuery(ctx, rec)
		if err != nil {
			t.Fatalf("insert query: %v", err)
		}
		ids = append(ids, id)
	}

	report, err := BuildReport(ctx, st, model.HistoryConfig{Last: 2, Top: 5})
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Queries) != 2 {
		t.Fatalf("expected 2 queries, got %d", len(report.Queries))
	}
	if report.Queries[0].ID != ids[1] || report.Queries[1].ID != ids[2] {
		t.Fatalf("unexpected query ids: %+v", report.Queries)
	}
	if report.TotalMatches != 7 {
		t.Fatalf("expected 7 total matches, got %d", report.TotalMatches)
	}
	if len(report.Top) != 2 {
		t.Fatalf("expected 2 top alphagrams, got %d", len(report.Top))
	}
}

func TestRenderSummary(t *testing.T) {
	records := []model.QueryRecord{
		{Query: "eat", Matches: 3, DurationMs: 2},
		{Query: "stone", Matches: 9, DurationMs: 4},
	}
	var buf bytes.Buffer
	if err := RenderSummary(&buf, records); err != nil {
		t.Fatalf("RenderSummary failed: %v", err)
	}
	out := buf.String()
	for _, needle := range []string{"Queries: 2", "Avg matches: 6.00", "Most matches: 9 (stone)", "Avg scan time: 3.0 ms"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("expected %q in output:\n%s", needle, out)
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline(nil); got != "" {
		t.Fatalf("expected empty sparkline, got %q", got)
	}
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("unexpected sparkline: %q", got)
	}
	if got := Sparkline([]float64{2, 2, 2}); len(got) != 3 {
		t.Fatalf("unexpected flat sparkline: %q", got)
	}
}
