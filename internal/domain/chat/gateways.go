package chat

import (
	"context"
	"errors"
)

// ErrUnavailable marks a generator with no usable credential. The orchestrator
// treats it as a permanent not-found, never as a request failure.
var ErrUnavailable = errors.New("answer generator unavailable")

// Translation is the result of a gateway translation call.
type Translation struct {
	Text         string
	DetectedLang string
}

// Translator converts text between languages with source auto-detection.
// Any error is absorbed by the orchestrator as untranslated passthrough with
// detected language "en"; implementations never need retry logic.
type Translator interface {
	Translate(ctx context.Context, text, targetLang, sourceLang string) (Translation, error)
}

// AnswerGenerator produces a free-text medical answer for queries absent from
// the knowledge store. Output still needs sanitizing before use.
type AnswerGenerator interface {
	GenerateAnswer(ctx context.Context, queryEN string) (string, error)
}

// SpeechSynthesizer renders plain text to audio. Callers must strip
// presentation markup first; audio is always best-effort.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}
