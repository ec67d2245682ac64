// Package gemini implements the generative answer gateway against the
// Google Generative Language REST API.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pragatiwave/sehat-bandhu/internal/domain/chat"
	"github.com/pragatiwave/sehat-bandhu/pkg/metrics"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	defaultModel   = "gemini-pro"

	// The fixed instruction template forbids diagnosis.
	promptTemplate = "Please answer the following medical question clearly and concisely. Do not provide a diagnosis. The question is: '%s'"
)

// Client calls the generateContent endpoint. A client without an API key is
// valid but permanently unavailable; callers get chat.ErrUnavailable.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient constructs a Gemini client.
func NewClient(apiKey, baseURL, model string, timeout time.Duration, logger *slog.Logger) *Client {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		base = defaultBaseURL
	}
	if strings.TrimSpace(model) == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		apiKey:  strings.TrimSpace(apiKey),
		baseURL: strings.TrimRight(base, "/"),
		model:   model,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger.With("component", "gemini.client"),
	}
}

// Available reports whether a credential was configured.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

// GenerateAnswer asks the model for an answer to an English medical query.
func (c *Client) GenerateAnswer(ctx context.Context, queryEN string) (string, error) {
	if !c.Available() {
		return "", chat.ErrUnavailable
	}

	payload, err := json.Marshal(generateRequest{
		Contents: []content{
			{Parts: []part{{Text: fmt.Sprintf(promptTemplate, queryEN)}}},
		},
	})
	if err != nil {
		return "", fmt.Errorf("encode generate request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build generate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("generate request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return "", fmt.Errorf("generate request error: status=%d body=%s", resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read generate response: %w", err)
	}

	var out generateResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("decode generate response: %w", err)
	}
	if usage := out.UsageMetadata; usage != nil {
		c.logUsage(*usage)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("generate response has no candidates")
	}
	text := strings.TrimSpace(out.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", errors.New("generate response text empty")
	}
	return text, nil
}

func (c *Client) logUsage(usage usageMetadata) {
	tokens := metrics.TokenUsage{
		PromptTokens:     usage.PromptTokenCount,
		CompletionTokens: usage.CandidatesTokenCount,
		TotalTokens:      usage.TotalTokenCount,
	}
	if tokens.IsZero() {
		return
	}
	c.logger.Debug("generate token usage",
		"promptTokens", tokens.PromptTokens,
		"completionTokens", tokens.CompletionTokens,
		"totalTokens", tokens.TotalTokens,
	)
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
	Role  string `json:"role,omitempty"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	UsageMetadata *usageMetadata `json:"usageMetadata"`
}

type usageMetadata struct {
	PromptTokenCount     int `json:"promptTokenCount"`
	CandidatesTokenCount int `json:"candidatesTokenCount"`
	TotalTokenCount      int `json:"totalTokenCount"`
}

var _ chat.AnswerGenerator = (*Client)(nil)
