package jumble

import (
	"time"

	"github.com/verte-zerg/wordjumble/internal/letters"
	"github.com/verte-zerg/wordjumble/internal/model"
)

// Result describes one completed dictionary search.
type Result struct {
	Query          string
	Alphagram      string
	DictionaryPath string
	Matches        []string
	Elapsed        time.Duration
}

// Search scans the dictionary at path for words that query can spell.
func Search(query, path string) (Result, error) {
	started := time.Now()
	matches, err := FindMatchesInFile(query, path)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Query:          query,
		Alphagram:      letters.New(query).Alphagram(),
		DictionaryPath: path,
		Matches:        matches,
		Elapsed:        time.Since(started),
	}, nil
}

// Record converts the result into a history record stamped with at.
func (r Result) Record(at time.Time) model.QueryRecord {
	return model.QueryRecord{
		AskedAt:        at.UTC(),
		Query:          r.Query,
		Alphagram:      r.Alphagram,
		DictionaryPath: r.DictionaryPath,
		Matches:        len(r.Matches),
		DurationMs:     r.Elapsed.Milliseconds(),
	}
}
