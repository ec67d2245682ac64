package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pragatiwave/sehat-bandhu/internal/domain/faq"
	apperrors "github.com/pragatiwave/sehat-bandhu/pkg/errors"
)

func TestServiceRespondEmptyMessage(t *testing.T) {
	svc := newServiceUnderTest(t, stubs{})

	_, err := svc.Respond(context.Background(), Request{Message: "   "})
	require.Error(t, err)
	require.True(t, apperrors.IsCode(err, "invalid_input"))
}

func TestServiceRespondOutOfDomain(t *testing.T) {
	svc := newServiceUnderTest(t, stubs{})

	resp, err := svc.Respond(context.Background(), Request{Message: "What is the capital of France?"})
	require.NoError(t, err)
	require.Equal(t, SourceOutOfDomain, resp.Source)
	require.Equal(t, defaultOutOfDomainMessage, resp.Text)
	require.Equal(t, "en", resp.Language)
}

func TestServiceRespondDatabaseHit(t *testing.T) {
	answers := &stubAnswers{
		findFn: func(ctx context.Context, query string) (string, bool, error) {
			require.Equal(t, "What is diabetes?", query)
			return "CDC describes it as a condition with high blood sugar.", true, nil
		},
	}
	svc := newServiceUnderTest(t, stubs{answers: answers})

	resp, err := svc.Respond(context.Background(), Request{Message: "What is diabetes?"})
	require.NoError(t, err)
	require.Equal(t, SourceDatabase, resp.Source)
	require.Equal(t, "CDC describes it as a condition with high blood sugar.", resp.Text)
	require.NotContains(t, resp.Text, "Disclaimer")
}

func TestServiceRespondAppendsUrgentCareWarning(t *testing.T) {
	answers := &stubAnswers{
		findFn: func(ctx context.Context, query string) (string, bool, error) {
			return "Call your local emergency services.", true, nil
		},
	}
	svc := newServiceUnderTest(t, stubs{answers: answers})

	resp, err := svc.Respond(context.Background(), Request{Message: "I have chest pain, what should I do?"})
	require.NoError(t, err)
	require.Equal(t, SourceDatabase, resp.Source)
	// Emphasis markers on the warning are rendered as bold tags on delivery.
	require.Contains(t, resp.Text, "<b>Based on your query, your symptoms could be serious. Please consult a doctor immediately.</b>")
	require.NotContains(t, resp.Text, "**")
}

func TestServiceRespondGeneratedAnswerIsSanitizedAndPersisted(t *testing.T) {
	answers := &stubAnswers{}
	generator := &stubGenerator{
		generateFn: func(ctx context.Context, queryEN string) (string, error) {
			_, hasDeadline := ctx.Deadline()
			require.True(t, hasDeadline)
			return "  Stay **hydrated** and\u200b rest.  ", nil
		},
	}
	svc := newServiceUnderTest(t, stubs{answers: answers, generator: generator})

	resp, err := svc.Respond(context.Background(), Request{Message: "How do I recover from the flu faster?"})
	require.NoError(t, err)
	require.Equal(t, SourceGenerated, resp.Source)
	require.Contains(t, resp.Text, "Stay hydrated and rest.")
	require.Contains(t, resp.Text, "<b>Disclaimer</b>")

	require.Equal(t, "How do I recover from the flu faster?", answers.addedQuestion)
	require.Equal(t, "Stay hydrated and rest.", answers.addedAnswer)
}

func TestServiceRespondGeneratorUnavailable(t *testing.T) {
	generator := &stubGenerator{
		generateFn: func(ctx context.Context, queryEN string) (string, error) {
			return "", ErrUnavailable
		},
	}
	svc := newServiceUnderTest(t, stubs{generator: generator})

	resp, err := svc.Respond(context.Background(), Request{Message: "What is a rare fever syndrome?"})
	require.NoError(t, err)
	require.Equal(t, SourceNotFound, resp.Source)
	require.Equal(t, defaultNoInfoMessage, resp.Text)
}

func TestServiceRespondLookupErrorDegradesToNotFound(t *testing.T) {
	answers := &stubAnswers{
		findFn: func(ctx context.Context, query string) (string, bool, error) {
			return "", false, errors.New("connection refused")
		},
	}
	svc := newServiceUnderTest(t, stubs{answers: answers})

	resp, err := svc.Respond(context.Background(), Request{Message: "What is dengue fever?"})
	require.NoError(t, err)
	require.Equal(t, SourceNotFound, resp.Source)
}

func TestServiceRespondTranslatesBackToSourceLanguage(t *testing.T) {
	answers := &stubAnswers{
		findFn: func(ctx context.Context, query string) (string, bool, error) {
			require.Equal(t, "What is a fever?", query)
			return "A fever is a high body temperature.", true, nil
		},
	}
	translator := &stubTranslator{
		translateFn: func(ctx context.Context, text, targetLang, sourceLang string) (Translation, error) {
			if targetLang == "en" {
				return Translation{Text: "What is a fever?", DetectedLang: "hi"}, nil
			}
			require.Equal(t, "hi", targetLang)
			require.Equal(t, "en", sourceLang)
			return Translation{Text: "बुखार शरीर का उच्च तापमान है।", DetectedLang: "en"}, nil
		},
	}
	svc := newServiceUnderTest(t, stubs{answers: answers, translator: translator})

	resp, err := svc.Respond(context.Background(), Request{Message: "बुखार क्या है?"})
	require.NoError(t, err)
	require.Equal(t, "hi", resp.Language)
	require.Equal(t, "बुखार शरीर का उच्च तापमान है।", resp.Text)
}

func TestServiceRespondSkipsOutboundTranslationForEnglish(t *testing.T) {
	translator := &stubTranslator{
		translateFn: func(ctx context.Context, text, targetLang, sourceLang string) (Translation, error) {
			require.Equal(t, "en", targetLang)
			return Translation{Text: text, DetectedLang: "en"}, nil
		},
	}
	answers := &stubAnswers{
		findFn: func(ctx context.Context, query string) (string, bool, error) {
			return "Rest and drink fluids.", true, nil
		},
	}
	svc := newServiceUnderTest(t, stubs{answers: answers, translator: translator})

	resp, err := svc.Respond(context.Background(), Request{Message: "I have a fever"})
	require.NoError(t, err)
	require.Equal(t, 1, translator.calls)
	require.Equal(t, "Rest and drink fluids.", resp.Text)
}

func TestServiceRespondTranslatorFailurePassesThrough(t *testing.T) {
	translator := &stubTranslator{
		translateFn: func(ctx context.Context, text, targetLang, sourceLang string) (Translation, error) {
			return Translation{}, errors.New("translate backend down")
		},
	}
	answers := &stubAnswers{
		findFn: func(ctx context.Context, query string) (string, bool, error) {
			require.Equal(t, "I have a fever", query)
			return "Rest and drink fluids.", true, nil
		},
	}
	svc := newServiceUnderTest(t, stubs{answers: answers, translator: translator})

	resp, err := svc.Respond(context.Background(), Request{Message: "I have a fever"})
	require.NoError(t, err)
	require.Equal(t, "en", resp.Language)
	require.Equal(t, SourceDatabase, resp.Source)
}

func TestServiceSynthesizeStripsMarkupAndRetriesEnglish(t *testing.T) {
	speech := &stubSpeech{
		synthesizeFn: func(ctx context.Context, text, lang string) ([]byte, error) {
			require.NotContains(t, text, "<b>")
			if lang != "en" {
				return nil, errors.New("language not supported")
			}
			return []byte("mp3-bytes"), nil
		},
	}
	svc := newServiceUnderTest(t, stubs{speech: speech}).(*service)

	audio := svc.synthesize(context.Background(), "<b>Serious symptoms.</b> See a doctor.", "xx")
	require.Equal(t, []byte("mp3-bytes"), audio)
	require.Equal(t, 2, speech.calls)
}

func TestServiceSynthesizeNoRetryForEnglish(t *testing.T) {
	speech := &stubSpeech{
		synthesizeFn: func(ctx context.Context, text, lang string) ([]byte, error) {
			return nil, errors.New("backend down")
		},
	}
	svc := newServiceUnderTest(t, stubs{speech: speech}).(*service)

	audio := svc.synthesize(context.Background(), "hello", "en")
	require.Nil(t, audio)
	require.Equal(t, 1, speech.calls)
}

func TestRenderEmphasis(t *testing.T) {
	require.Equal(t, "<b>bold</b> and <b>again</b>", renderEmphasis("**bold** and **again**"))
	require.Equal(t, "no markers", renderEmphasis("no markers"))
}

type stubs struct {
	answers    *stubAnswers
	translator *stubTranslator
	generator  *stubGenerator
	speech     *stubSpeech
}

func newServiceUnderTest(t *testing.T, s stubs) Service {
	t.Helper()
	if s.answers == nil {
		s.answers = &stubAnswers{}
	}
	if s.translator == nil {
		s.translator = &stubTranslator{}
	}
	if s.generator == nil {
		s.generator = &stubGenerator{}
	}
	var speech SpeechSynthesizer
	if s.speech != nil {
		speech = s.speech
	}
	return NewService(
		Config{GenerateTimeout: time.Second},
		NewClassifier(DefaultMedicalKeywords(), nil),
		NewSeverityDetector(DefaultSeverityPhrases()),
		s.answers,
		s.translator,
		s.generator,
		speech,
		newTestLogger(),
	)
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type stubAnswers struct {
	findFn        func(ctx context.Context, query string) (string, bool, error)
	addedQuestion string
	addedAnswer   string
}

func (s *stubAnswers) FindAnswer(ctx context.Context, query string) (string, bool, error) {
	if s.findFn != nil {
		return s.findFn(ctx, query)
	}
	return "", false, nil
}

func (s *stubAnswers) Add(_ context.Context, question, answer string) error {
	s.addedQuestion = question
	s.addedAnswer = answer
	return nil
}

func (s *stubAnswers) Trending(context.Context) ([]faq.TrendingQuery, error) {
	return nil, nil
}

type stubTranslator struct {
	translateFn func(ctx context.Context, text, targetLang, sourceLang string) (Translation, error)
	calls       int
}

func (s *stubTranslator) Translate(ctx context.Context, text, targetLang, sourceLang string) (Translation, error) {
	s.calls++
	if s.translateFn != nil {
		return s.translateFn(ctx, text, targetLang, sourceLang)
	}
	return Translation{Text: text, DetectedLang: "en"}, nil
}

type stubGenerator struct {
	generateFn func(ctx context.Context, queryEN string) (string, error)
}

func (s *stubGenerator) GenerateAnswer(ctx context.Context, queryEN string) (string, error) {
	if s.generateFn != nil {
		return s.generateFn(ctx, queryEN)
	}
	return "", ErrUnavailable
}

type stubSpeech struct {
	synthesizeFn func(ctx context.Context, text, lang string) ([]byte, error)
	calls        int
}

func (s *stubSpeech) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	s.calls++
	if s.synthesizeFn != nil {
		return s.synthesizeFn(ctx, text, lang)
	}
	return nil, errors.New("not configured")
}

var _ faq.Service = (*stubAnswers)(nil)
