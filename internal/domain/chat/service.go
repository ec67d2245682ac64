package chat

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/pragatiwave/sehat-bandhu/internal/domain/faq"
	apperrors "github.com/pragatiwave/sehat-bandhu/pkg/errors"
	"github.com/pragatiwave/sehat-bandhu/pkg/textutil"
)

// Service is the response orchestrator: one linear resolution pipeline per
// request, no state shared between requests.
type Service interface {
	Respond(ctx context.Context, req Request) (Response, error)
}

type service struct {
	cfg        Config
	classifier *Classifier
	severity   *SeverityDetector
	answers    faq.Service
	translator Translator
	generator  AnswerGenerator
	speech     SpeechSynthesizer
	logger     *slog.Logger
}

// NewService wires up the chat pipeline. speech may be nil, in which case
// responses carry no audio payload.
func NewService(
	cfg Config,
	classifier *Classifier,
	severity *SeverityDetector,
	answers faq.Service,
	translator Translator,
	generator AnswerGenerator,
	speech SpeechSynthesizer,
	logger *slog.Logger,
) Service {
	return &service{
		cfg:        cfg.withDefaults(),
		classifier: classifier,
		severity:   severity,
		answers:    answers,
		translator: translator,
		generator:  generator,
		speech:     speech,
		logger:     logger.With("component", "chat.service"),
	}
}

func (s *service) Respond(ctx context.Context, req Request) (Response, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return Response{}, apperrors.Wrap("invalid_input", "message cannot be empty", nil)
	}

	queryEN, sourceLang := s.toEnglish(ctx, message)
	s.logger.Info("query received", "lang", sourceLang)

	if !s.classifier.IsMedical(queryEN) {
		return s.deliver(ctx, s.cfg.OutOfDomainMessage, sourceLang, SourceOutOfDomain), nil
	}

	answerEN, found := s.lookup(ctx, queryEN)
	source := SourceDatabase
	if !found {
		answerEN, found = s.generate(ctx, queryEN)
		if found {
			source = SourceGenerated
		}
	}
	if !found {
		return s.deliver(ctx, s.cfg.NoInformationMessage, sourceLang, SourceNotFound), nil
	}

	if s.severity.HasSeriousSymptoms(queryEN) {
		answerEN += "\n\n" + s.cfg.UrgentCareWarning
	}
	if source == SourceGenerated {
		answerEN += "\n\n" + s.cfg.GeneratedDisclaimer
	}

	return s.deliver(ctx, answerEN, sourceLang, source), nil
}

// toEnglish detects the source language and translates the query to English.
// Translation failure degrades to passthrough with language "en".
func (s *service) toEnglish(ctx context.Context, message string) (string, string) {
	result, err := s.translator.Translate(ctx, message, "en", "auto")
	if err != nil {
		s.logger.Warn("inbound translation failed, using message as-is", "error", err)
		return message, "en"
	}
	lang := result.DetectedLang
	if lang == "" {
		lang = "en"
	}
	return result.Text, lang
}

func (s *service) lookup(ctx context.Context, queryEN string) (string, bool) {
	answer, found, err := s.answers.FindAnswer(ctx, queryEN)
	if err != nil {
		// Store failures mean "no data available", never a request failure.
		s.logger.Error("knowledge store lookup failed", "error", err)
		return "", false
	}
	return answer, found
}

// generate calls the generative gateway under the configured timeout bound,
// sanitizes the output, and persists it so the next identical query hits the
// knowledge store instead.
func (s *service) generate(ctx context.Context, queryEN string) (string, bool) {
	genCtx, cancel := context.WithTimeout(ctx, s.cfg.GenerateTimeout)
	defer cancel()

	raw, err := s.generator.GenerateAnswer(genCtx, queryEN)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			s.logger.Warn("answer generator unavailable, skipping fallback")
		} else {
			s.logger.Error("answer generation failed", "error", err)
		}
		return "", false
	}
	answer := textutil.Sanitize(raw)
	if answer == "" {
		return "", false
	}
	if err := s.answers.Add(ctx, queryEN, answer); err != nil {
		s.logger.Error("failed to persist generated answer", "error", err)
	}
	return answer, true
}

// deliver translates the English text back to the source language, renders
// emphasis markup as bold tags, and attaches best-effort audio.
func (s *service) deliver(ctx context.Context, textEN, lang string, source Source) Response {
	text := textEN
	if lang != "en" {
		result, err := s.translator.Translate(ctx, textEN, lang, "en")
		if err != nil {
			s.logger.Warn("outbound translation failed, responding in English", "lang", lang, "error", err)
		} else if result.Text != "" {
			text = result.Text
		}
	}
	text = renderEmphasis(text)
	return Response{
		Text:     text,
		Language: lang,
		Audio:    s.synthesize(ctx, text, lang),
		Source:   source,
	}
}

// synthesize strips presentation markup and renders audio, retrying once with
// English when the detected language is unsupported. Failures yield no audio.
func (s *service) synthesize(ctx context.Context, text, lang string) []byte {
	if s.speech == nil {
		return nil
	}
	plain := stripBoldTags(text)
	audio, err := s.speech.Synthesize(ctx, plain, lang)
	if err == nil {
		return audio
	}
	s.logger.Warn("speech synthesis failed", "lang", lang, "error", err)
	if lang == "en" {
		return nil
	}
	audio, err = s.speech.Synthesize(ctx, plain, "en")
	if err != nil {
		s.logger.Warn("english speech fallback failed", "error", err)
		return nil
	}
	return audio
}

var emphasisPattern = regexp.MustCompile(`\*\*(.*?)\*\*`)

func renderEmphasis(text string) string {
	return emphasisPattern.ReplaceAllString(text, "<b>$1</b>")
}

var boldTagStripper = strings.NewReplacer("<b>", "", "</b>", "")

func stripBoldTags(text string) string {
	return boldTagStripper.Replace(text)
}
