// Package model defines shared data structures.
package model

import "time"

// Config defines solve settings.
type Config struct {
	DictPath string
	Format   string
	History  bool
}

// HistoryConfig defines filters and options for history output.
type HistoryConfig struct {
	Since    *time.Time
	Last     int
	Contains string
	Top      int
}

// QueryRecord captures a completed dictionary search.
type QueryRecord struct {
	ID             int64
	AskedAt        time.Time
	Query          string
	Alphagram      string
	DictionaryPath string
	Matches        int
	DurationMs     int64
}

// AlphagramCount aggregates how often a letter set was searched.
type AlphagramCount struct {
	Alphagram string
	Count     int
	Matches   int
}
