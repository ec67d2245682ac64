package faqrepo

import (
	"context"
	"strings"
	"sync"

	"github.com/pragatiwave/sehat-bandhu/internal/domain/faq"
)

// MemoryRepository is an in-memory faq.Repository used for tests/dev and as
// the fallback when no Postgres DSN is configured.
type MemoryRepository struct {
	mu      sync.RWMutex
	entries []faq.Entry
	byKey   map[string]int
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byKey: make(map[string]int)}
}

// FindExact implements faq.Repository.
func (r *MemoryRepository) FindExact(_ context.Context, question string) (faq.Entry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	idx, ok := r.byKey[entryKey(question)]
	if !ok {
		return faq.Entry{}, false, nil
	}
	return r.entries[idx], true, nil
}

// FindContaining implements faq.Repository. Entries are scanned in insertion
// order, mirroring the arbitrary-first-match contract.
func (r *MemoryRepository) FindContaining(_ context.Context, query string) (faq.Entry, bool, error) {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return faq.Entry{}, false, nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, entry := range r.entries {
		if strings.Contains(strings.ToLower(entry.Question), needle) {
			return entry, true, nil
		}
	}
	return faq.Entry{}, false, nil
}

// ListEntries implements faq.Repository.
func (r *MemoryRepository) ListEntries(_ context.Context) ([]faq.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]faq.Entry(nil), r.entries...), nil
}

// Insert implements faq.Repository. Duplicate questions are a no-op.
func (r *MemoryRepository) Insert(_ context.Context, entry faq.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.insertLocked(entry)
	return nil
}

// Seed implements faq.Repository.
func (r *MemoryRepository) Seed(_ context.Context, entries []faq.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, entry := range entries {
		r.insertLocked(entry)
	}
	return nil
}

func (r *MemoryRepository) insertLocked(entry faq.Entry) {
	key := entryKey(entry.Question)
	if _, exists := r.byKey[key]; exists {
		return
	}
	r.byKey[key] = len(r.entries)
	r.entries = append(r.entries, entry)
}

func entryKey(question string) string {
	return strings.ToLower(strings.TrimSpace(question))
}

var _ faq.Repository = (*MemoryRepository)(nil)
