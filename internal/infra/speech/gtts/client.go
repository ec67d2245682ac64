// Package gtts renders text to MP3 audio through the Google Translate
// text-to-speech endpoint.
package gtts

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pragatiwave/sehat-bandhu/internal/domain/chat"
)

const defaultBaseURL = "https://translate.google.com"

// Client performs TTS requests. Unsupported languages surface as errors; the
// orchestrator owns the English retry.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a TTS client.
func NewClient(baseURL string, timeout time.Duration) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(base, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Synthesize converts plain text (markup already stripped) to audio bytes.
func (c *Client) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, errors.New("nothing to synthesize")
	}
	if strings.TrimSpace(lang) == "" {
		lang = "en"
	}

	params := url.Values{}
	params.Set("ie", "UTF-8")
	params.Set("client", "tw-ob")
	params.Set("tl", lang)
	params.Set("q", text)
	endpoint := c.baseURL + "/translate_tts?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build tts request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tts request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tts request error: status=%d lang=%s", resp.StatusCode, lang)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read tts response: %w", err)
	}
	if len(audio) == 0 {
		return nil, errors.New("tts response empty")
	}
	return audio, nil
}

var _ chat.SpeechSynthesizer = (*Client)(nil)
