package faq_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pragatiwave/sehat-bandhu/internal/domain/faq"
	"github.com/pragatiwave/sehat-bandhu/internal/infra/faqrepo"
	"github.com/pragatiwave/sehat-bandhu/internal/infra/faqstore"
)

func TestFindAnswerExactMatchIsCaseInsensitive(t *testing.T) {
	svc, _, _ := newServiceUnderTest(t)

	answer, found, err := svc.FindAnswer(context.Background(), "what is covid-19?")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "According to WHO, COVID-19 is caused by the SARS-CoV-2 virus.", answer)
}

func TestFindAnswerSubstringMatch(t *testing.T) {
	svc, _, _ := newServiceUnderTest(t)

	answer, found, err := svc.FindAnswer(context.Background(), "What is COVID")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "According to WHO, COVID-19 is caused by the SARS-CoV-2 virus.", answer)
}

func TestFindAnswerFuzzyMatch(t *testing.T) {
	svc, _, _ := newServiceUnderTest(t)

	// "COVID19" never matches exactly or as a substring of the stored
	// "COVID-19?", so resolution falls through to the fuzzy tier.
	answer, found, err := svc.FindAnswer(context.Background(), "What is COVID19")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "According to WHO, COVID-19 is caused by the SARS-CoV-2 virus.", answer)
}

func TestFindAnswerBelowFuzzyThreshold(t *testing.T) {
	svc, _, _ := newServiceUnderTest(t)

	_, found, err := svc.FindAnswer(context.Background(), "completely unrelated gibberish nobody asked")
	require.NoError(t, err)
	require.False(t, found)
}

func TestFindAnswerEmptyQuery(t *testing.T) {
	svc, _, _ := newServiceUnderTest(t)

	_, found, err := svc.FindAnswer(context.Background(), "   ")
	require.NoError(t, err)
	require.False(t, found)
}

func TestFindAnswerPopulatesCache(t *testing.T) {
	svc, _, store := newServiceUnderTest(t)

	_, found, err := svc.FindAnswer(context.Background(), "What is diabetes?")
	require.NoError(t, err)
	require.True(t, found)

	cached, ok, err := store.GetAnswer(context.Background(), "what is diabetes")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "CDC describes it as a condition with high blood sugar due to insulin problems.", cached)
}

func TestAddDuplicateQuestionKeepsOriginalAnswer(t *testing.T) {
	svc, _, _ := newServiceUnderTest(t)

	require.NoError(t, svc.Add(context.Background(), "What is diabetes?", "a different answer"))

	answer, found, err := svc.FindAnswer(context.Background(), "What is diabetes?")
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "CDC describes it as a condition with high blood sugar due to insulin problems.", answer)
}

func TestAddRejectsEmptyFields(t *testing.T) {
	svc, _, _ := newServiceUnderTest(t)

	require.Error(t, svc.Add(context.Background(), "", "answer"))
	require.Error(t, svc.Add(context.Background(), "question", "   "))
}

func TestTrendingCountsLookups(t *testing.T) {
	svc, _, _ := newServiceUnderTest(t)

	for i := 0; i < 3; i++ {
		_, _, err := svc.FindAnswer(context.Background(), "What is dengue?")
		require.NoError(t, err)
	}
	_, _, err := svc.FindAnswer(context.Background(), "What is diabetes?")
	require.NoError(t, err)

	items, err := svc.Trending(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	require.Equal(t, "What is dengue?", items[0].Query)
	require.Equal(t, int64(3), items[0].Count)
	require.Equal(t, "What is diabetes?", items[1].Query)
	require.Equal(t, int64(1), items[1].Count)
}

func newServiceUnderTest(t *testing.T) (faq.Service, *faqrepo.MemoryRepository, *faqstore.MemoryStore) {
	t.Helper()
	repo := faqrepo.NewMemoryRepository()
	require.NoError(t, repo.Seed(context.Background(), faq.DefaultSeed()))
	store := faqstore.NewMemoryStore()
	cfg := faq.Config{
		FuzzyThreshold: 0.7,
		CacheTTL:       time.Minute,
		TopTrending:    10,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return faq.NewService(cfg, repo, store, logger), repo, store
}
