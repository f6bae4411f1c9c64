// Package table builds point tables for ranges of card values and encodes
// them for display.
package table

import (
	"errors"
	"fmt"

	"card-points/internal/shared"
)

// MaxRows caps the number of entries a single table may hold.
const MaxRows = 10000

var (
	ErrEmptyRange    = errors.New("empty card range")
	ErrRangeTooLarge = errors.New("card range too large")
)

// Entry is one row of a point table.
type Entry struct {
	Card   int    `json:"card" yaml:"card"`
	Points int    `json:"points" yaml:"points"`
	Tier   string `json:"tier" yaml:"tier"`
}

// Summary aggregates a table.
type Summary struct {
	Count    int         `json:"count" yaml:"count"`
	Total    int         `json:"total" yaml:"total"`
	ByPoints map[int]int `json:"by_points" yaml:"by_points"`
}

// Build returns one entry per card value in [from, to].
func Build(from, to int) ([]Entry, error) {
	if from > to {
		return nil, fmt.Errorf("table.Build: %d > %d: %w", from, to, ErrEmptyRange)
	}
	// Compare in uint64 so extreme bounds cannot overflow the row count.
	if uint64(to-from) >= MaxRows {
		return nil, fmt.Errorf("table.Build: [%d, %d] exceeds %d rows: %w", from, to, MaxRows, ErrRangeTooLarge)
	}

	entries := make([]Entry, 0, to-from+1)
	for n := from; ; n++ {
		tier := shared.Classify(n)
		entries = append(entries, Entry{Card: n, Points: tier.Score, Tier: tier.Label})
		if n == to {
			break
		}
	}
	return entries, nil
}

// Summarize counts entries and sums their points.
func Summarize(entries []Entry) Summary {
	s := Summary{ByPoints: make(map[int]int)}
	for _, e := range entries {
		s.Count++
		s.Total += e.Points
		s.ByPoints[e.Points]++
	}
	return s
}
