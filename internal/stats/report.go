package stats

import (
	"context"

	"github.com/verte-zerg/wordjumble/internal/model"
	"github.com/verte-zerg/wordjumble/internal/store"
)

// Report contains precomputed data for history rendering.
type Report struct {
	Queries      []model.QueryRecord
	TotalMatches int
	Top          []model.AlphagramCount
}

// BuildReport loads and prepares data for history rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.HistoryConfig) (Report, error) {
	queries, err := st.ListQueries(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	if cfg.Last > 0 && len(queries) > cfg.Last {
		queries = queries[len(queries)-cfg.Last:]
	}
	total := 0
	for _, q := range queries {
		total += q.Matches
	}
	return Report{
		Queries:      queries,
		TotalMatches: total,
		Top:          TopAlphagrams(queries, cfg.Top),
	}, nil
}
