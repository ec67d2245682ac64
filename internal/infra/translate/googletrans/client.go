// Package googletrans calls the unauthenticated Google Translate web endpoint
// for bidirectional translation with source-language auto-detection.
package googletrans

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/pragatiwave/sehat-bandhu/internal/domain/chat"
)

const defaultBaseURL = "https://translate.googleapis.com"

// Client performs translation requests. Callers absorb failures as
// untranslated passthrough; the client itself just reports them.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a translation client.
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

// Translate converts text to targetLang, auto-detecting the source when
// sourceLang is empty or "auto".
func (c *Client) Translate(ctx context.Context, text, targetLang, sourceLang string) (chat.Translation, error) {
	if strings.TrimSpace(text) == "" {
		return chat.Translation{Text: "", DetectedLang: "en"}, nil
	}
	if strings.TrimSpace(sourceLang) == "" {
		sourceLang = "auto"
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", sourceLang)
	params.Set("tl", targetLang)
	params.Set("dt", "t")
	params.Set("q", text)
	endpoint := c.baseURL + "/translate_a/single?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return chat.Translation{}, fmt.Errorf("build translate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return chat.Translation{}, fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return chat.Translation{}, fmt.Errorf("translate request error: status=%d body=%s", resp.StatusCode, string(payload))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return chat.Translation{}, fmt.Errorf("read translate response: %w", err)
	}
	return parseResponse(body)
}

// parseResponse decodes the gtx array-of-arrays payload: element 0 holds the
// translated sentence chunks, element 2 the detected source language.
func parseResponse(body []byte) (chat.Translation, error) {
	var payload []any
	if err := json.Unmarshal(body, &payload); err != nil {
		return chat.Translation{}, fmt.Errorf("decode translate response: %w", err)
	}
	if len(payload) == 0 {
		return chat.Translation{}, errors.New("empty translate response")
	}

	sentences, ok := payload[0].([]any)
	if !ok {
		return chat.Translation{}, errors.New("malformed translate response")
	}
	var builder strings.Builder
	for _, chunk := range sentences {
		parts, ok := chunk.([]any)
		if !ok || len(parts) == 0 {
			continue
		}
		if text, ok := parts[0].(string); ok {
			builder.WriteString(text)
		}
	}

	detected := "en"
	if len(payload) > 2 {
		if lang, ok := payload[2].(string); ok && lang != "" {
			detected = canonicalLang(lang)
		}
	}
	return chat.Translation{Text: builder.String(), DetectedLang: detected}, nil
}

// canonicalLang validates the detected code so downstream gateways never see
// garbage; anything unparseable falls back to English.
func canonicalLang(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return "en"
	}
	return tag.String()
}

var _ chat.Translator = (*Client)(nil)
