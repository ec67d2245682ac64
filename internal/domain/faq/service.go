package faq

import (
	"context"
	"log/slog"
	"strings"

	apperrors "github.com/pragatiwave/sehat-bandhu/pkg/errors"
	"github.com/pragatiwave/sehat-bandhu/pkg/textutil"
)

// Service exposes the knowledge store with its tiered lookup.
type Service interface {
	// FindAnswer resolves a query through exact, substring and fuzzy tiers.
	FindAnswer(ctx context.Context, query string) (string, bool, error)
	// Add appends a new entry; an already known question is a no-op.
	Add(ctx context.Context, question, answer string) error
	// Trending returns the most frequently looked-up questions.
	Trending(ctx context.Context) ([]TrendingQuery, error)
}

type service struct {
	cfg    Config
	repo   Repository
	store  Store
	logger *slog.Logger
}

// NewService wires up the knowledge store domain.
func NewService(cfg Config, repo Repository, store Store, logger *slog.Logger) Service {
	return &service{
		cfg:    cfg,
		repo:   repo,
		store:  store,
		logger: logger.With("component", "faq.service"),
	}
}

func (s *service) FindAnswer(ctx context.Context, query string) (string, bool, error) {
	question := strings.TrimSpace(query)
	if question == "" {
		return "", false, nil
	}
	key := textutil.Normalize(question)

	if err := s.store.IncrementQuery(ctx, key, question); err != nil {
		s.logger.Warn("trending increment failed", "error", err)
	}

	if cached, ok, err := s.store.GetAnswer(ctx, key); err != nil {
		s.logger.Warn("answer cache lookup failed", "error", err)
	} else if ok {
		return cached, true, nil
	}

	entry, found, err := s.repo.FindExact(ctx, question)
	if err != nil {
		return "", false, apperrors.Wrap("faq_error", "exact lookup failed", err)
	}
	if !found {
		entry, found, err = s.repo.FindContaining(ctx, question)
		if err != nil {
			return "", false, apperrors.Wrap("faq_error", "substring lookup failed", err)
		}
	}
	if !found {
		entry, found, err = s.findFuzzy(ctx, key)
		if err != nil {
			return "", false, apperrors.Wrap("faq_error", "fuzzy lookup failed", err)
		}
	}
	if !found {
		return "", false, nil
	}

	if err := s.store.SaveAnswer(ctx, key, entry.Answer, s.cfg.CacheTTL); err != nil {
		s.logger.Warn("answer cache save failed", "error", err)
	}
	return entry.Answer, true, nil
}

// findFuzzy picks the single nearest stored question by normalized
// similarity ratio, subject to the configured threshold.
func (s *service) findFuzzy(ctx context.Context, normalizedQuery string) (Entry, bool, error) {
	if normalizedQuery == "" {
		return Entry{}, false, nil
	}
	entries, err := s.repo.ListEntries(ctx)
	if err != nil {
		return Entry{}, false, err
	}
	var (
		best      Entry
		bestRatio float64
	)
	for _, entry := range entries {
		ratio := similarityRatio(normalizedQuery, textutil.Normalize(entry.Question))
		if ratio > bestRatio {
			best = entry
			bestRatio = ratio
		}
	}
	if bestRatio < s.cfg.FuzzyThreshold {
		return Entry{}, false, nil
	}
	return best, true, nil
}

func (s *service) Add(ctx context.Context, question, answer string) error {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return apperrors.Wrap("invalid_input", "question and answer cannot be empty", nil)
	}
	if err := s.repo.Insert(ctx, Entry{Question: question, Answer: answer}); err != nil {
		return apperrors.Wrap("faq_error", "failed to store entry", err)
	}
	return nil
}

func (s *service) Trending(ctx context.Context) ([]TrendingQuery, error) {
	items, err := s.store.TopQueries(ctx, s.cfg.TopTrending)
	if err != nil {
		return nil, apperrors.Wrap("faq_error", "failed to load trending queries", err)
	}
	return items, nil
}
