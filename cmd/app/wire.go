//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/pragatiwave/sehat-bandhu/internal/bootstrap"
	"github.com/pragatiwave/sehat-bandhu/internal/domain/chat"
	"github.com/pragatiwave/sehat-bandhu/internal/domain/faq"
	"github.com/pragatiwave/sehat-bandhu/internal/infra/config"
	httpiface "github.com/pragatiwave/sehat-bandhu/internal/interface/http"
	"github.com/pragatiwave/sehat-bandhu/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		provideChatConfig,
		provideClassifier,
		provideSeverityDetector,
		provideTranslator,
		provideAnswerGenerator,
		provideSpeechSynthesizer,
		provideFAQConfig,
		provideFAQRepository,
		provideFAQStore,
		faq.NewService,
		chat.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}
