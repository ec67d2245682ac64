package faq

import "context"

// Repository encapsulates persistence for the medical FAQ table.
type Repository interface {
	// FindExact matches the stored question text case-insensitively.
	FindExact(ctx context.Context, question string) (Entry, bool, error)
	// FindContaining returns the first stored question containing the query
	// as a substring. Ordering between multiple matches is not defined.
	FindContaining(ctx context.Context, query string) (Entry, bool, error)
	// ListEntries returns every stored entry, for the fuzzy lookup tier.
	ListEntries(ctx context.Context) ([]Entry, error)
	// Insert stores a new entry. Inserting an existing question (exact,
	// case-insensitive) is a silent no-op; the stored answer wins.
	Insert(ctx context.Context, entry Entry) error
	// Seed bulk-inserts curated entries with the same ignore-on-conflict
	// semantics as Insert, so repeated startups never duplicate rows.
	Seed(ctx context.Context, entries []Entry) error
}
