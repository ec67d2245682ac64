package faq

import "time"

// Config holds runtime knobs for the knowledge store service.
type Config struct {
	// FuzzyThreshold is the minimum similarity ratio (0-1) for the fuzzy
	// lookup tier. Carried over from the curated default of 0.7; no tuning
	// rationale is documented, so it stays configurable.
	FuzzyThreshold float64
	CacheTTL       time.Duration
	TopTrending    int
}
