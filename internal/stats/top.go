package stats

import (
	"sort"

	"github.com/verte-zerg/wordjumble/internal/model"
)

// TopAlphagrams returns the N most frequently searched letter sets.
func TopAlphagrams(records []model.QueryRecord, n int) []model.AlphagramCount {
	if n <= 0 || len(records) == 0 {
		return nil
	}
	byKey := map[string]*model.AlphagramCount{}
	for _, rec := range records {
		entry, ok := byKey[rec.Alphagram]
		if !ok {
			entry = &model.AlphagramCount{Alphagram: rec.Alphagram}
			byKey[rec.Alphagram] = entry
		}
		entry.Count++
		entry.Matches = rec.Matches
	}
	items := make([]model.AlphagramCount, 0, len(byKey))
	for _, entry := range byKey {
		items = append(items, *entry)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count == items[j].Count {
			return items[i].Alphagram < items[j].Alphagram
		}
		return items[i].Count > items[j].Count
	})
	if n > len(items) {
		n = len(items)
	}
	return items[:n]
}
