package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valkey-io/valkey-go"

	"github.com/pragatiwave/sehat-bandhu/internal/domain/chat"
	"github.com/pragatiwave/sehat-bandhu/internal/domain/faq"
	"github.com/pragatiwave/sehat-bandhu/internal/infra/config"
	"github.com/pragatiwave/sehat-bandhu/internal/infra/faqrepo"
	"github.com/pragatiwave/sehat-bandhu/internal/infra/faqstore"
	"github.com/pragatiwave/sehat-bandhu/internal/infra/genai/gemini"
	golemnlp "github.com/pragatiwave/sehat-bandhu/internal/infra/nlp/golem"
	"github.com/pragatiwave/sehat-bandhu/internal/infra/speech/gtts"
	"github.com/pragatiwave/sehat-bandhu/internal/infra/translate/googletrans"
)

func provideChatConfig(cfg *config.Config) chat.Config {
	return chat.Config{
		GenerateTimeout: cfg.Chat.GenerateTimeout,
	}
}

func provideClassifier(cfg *config.Config, logger *slog.Logger) *chat.Classifier {
	var lemmatizer chat.Lemmatizer
	if cfg.Chat.LemmatizerEnabled {
		lem, err := golemnlp.New()
		if err != nil {
			logger.Warn("lemmatizer unavailable, relevance check degrades to substring matching", "error", err)
		} else {
			lemmatizer = lem
		}
	}
	return chat.NewClassifier(cfg.Chat.MedicalKeywords, lemmatizer)
}

func provideSeverityDetector(cfg *config.Config) *chat.SeverityDetector {
	return chat.NewSeverityDetector(cfg.Chat.SeverityPhrases)
}

func provideTranslator(cfg *config.Config) chat.Translator {
	return googletrans.NewClient(cfg.Translate.BaseURL, cfg.Translate.Timeout)
}

func provideAnswerGenerator(cfg *config.Config, logger *slog.Logger) chat.AnswerGenerator {
	client := gemini.NewClient(cfg.GenAI.APIKey, cfg.GenAI.BaseURL, cfg.GenAI.Model, cfg.GenAI.Timeout, logger)
	if !client.Available() {
		// Missing credential degrades the fallback path to always-not-found.
		logger.Warn("GEMINI_API_KEY is not set, generative answer fallback disabled")
	}
	return client
}

func provideSpeechSynthesizer(cfg *config.Config, logger *slog.Logger) chat.SpeechSynthesizer {
	if !cfg.Speech.Enabled {
		logger.Info("speech synthesis disabled, responses will carry no audio")
		return nil
	}
	return gtts.NewClient(cfg.Speech.BaseURL, cfg.Speech.Timeout)
}

func provideFAQConfig(cfg *config.Config) faq.Config {
	return faq.Config{
		FuzzyThreshold: cfg.FAQ.FuzzyThreshold,
		CacheTTL:       cfg.FAQ.CacheTTL,
		TopTrending:    cfg.FAQ.TopTrending,
	}
}

func provideFAQRepository(cfg *config.Config, logger *slog.Logger) faq.Repository {
	repo := buildFAQRepository(cfg, logger)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := repo.Seed(ctx, faq.DefaultSeed()); err != nil {
		logger.Error("seeding knowledge store failed", "error", err)
	}
	return repo
}

func buildFAQRepository(cfg *config.Config, logger *slog.Logger) faq.Repository {
	fallback := faqrepo.NewMemoryRepository()
	dsn := strings.TrimSpace(cfg.FAQ.Postgres.DSN)
	if dsn == "" {
		logger.Info("faq postgres dsn not set, using memory repository")
		return fallback
	}
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Error("invalid postgres dsn, using memory repository", "error", err)
		return fallback
	}
	if cfg.FAQ.Postgres.MaxConns > 0 {
		poolConfig.MaxConns = cfg.FAQ.Postgres.MaxConns
	}
	if cfg.FAQ.Postgres.MinConns > 0 {
		poolConfig.MinConns = cfg.FAQ.Postgres.MinConns
	}
	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		logger.Error("failed to initialize postgres pool, using memory repository", "error", err)
		return fallback
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := pool.Ping(ctx); err != nil {
		logger.Error("postgres ping failed, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	repo := faqrepo.NewPostgresRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("failed to ensure faq schema, using memory repository", "error", err)
		pool.Close()
		return fallback
	}
	logger.Info("faq postgres repository enabled")
	return repo
}

func provideFAQStore(cfg *config.Config, logger *slog.Logger) faq.Store {
	if cfg.FAQ.Valkey.Enabled {
		opt, err := buildValkeyOptions(cfg)
		if err != nil {
			logger.Error("invalid valkey configuration, falling back to memory store", "error", err)
			return faqstore.NewMemoryStore()
		}
		client, err := valkey.NewClient(opt)
		if err != nil {
			logger.Error("failed to create valkey client, falling back to memory store", "error", err)
			return faqstore.NewMemoryStore()
		}
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
			logger.Error("valkey ping failed, falling back to memory store", "error", err)
		} else {
			logger.Info("faq valkey store enabled", "addr", cfg.FAQ.Valkey.Addr)
			return faqstore.NewValkeyStore(client, "faq")
		}
	}
	return faqstore.NewMemoryStore()
}

func buildValkeyOptions(cfg *config.Config) (valkey.ClientOption, error) {
	var (
		opt valkey.ClientOption
		err error
	)
	if strings.Contains(cfg.FAQ.Valkey.Addr, "://") {
		opt, err = valkey.ParseURL(cfg.FAQ.Valkey.Addr)
	} else {
		opt = valkey.ClientOption{InitAddress: []string{cfg.FAQ.Valkey.Addr}}
	}
	if err != nil {
		return valkey.ClientOption{}, err
	}
	return opt, nil
}
