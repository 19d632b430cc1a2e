// Package stats contains query history calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/wordjumble/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// MatchCounts returns the number of matches of each query as floats.
func MatchCounts(records []model.QueryRecord) []float64 {
	out := make([]float64, len(records))
	for i, rec := range records {
		out[i] = float64(rec.Matches)
	}
	return out
}

// RenderSummary prints aggregate figures for the listed queries.
func RenderSummary(w io.Writer, records []model.QueryRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No queries found.")
		return err
	}
	var totalMatches int
	var totalMs int64
	best := records[0]
	for _, rec := range records {
		totalMatches += rec.Matches
		totalMs += rec.DurationMs
		if rec.Matches > best.Matches {
			best = rec
		}
	}
	count := float64(len(records))
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Queries: %d\n", len(records)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg matches: %.2f\n", float64(totalMatches)/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Most matches: %d (%s)\n", best.Matches, best.Query); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg scan time: %.1f ms\n", float64(totalMs)/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Matches: %s\n", Sparkline(MatchCounts(records))); err != nil {
		return err
	}
	return nil
}
