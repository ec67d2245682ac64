package gemini

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pragatiwave/sehat-bandhu/internal/domain/chat"
)

func TestGenerateAnswerSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/models/gemini-pro:generateContent", r.URL.Path)
		require.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req generateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Contains(t, req.Contents[0].Parts[0].Text, "What is dengue?")
		require.Contains(t, req.Contents[0].Parts[0].Text, "Do not provide a diagnosis")

		_, _ = w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "Dengue is a mosquito-borne viral infection."}]}, "finishReason": "STOP"}
			],
			"usageMetadata": {"promptTokenCount": 25, "candidatesTokenCount": 12, "totalTokenCount": 37}
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, "test-key", server.URL)
	answer, err := client.GenerateAnswer(context.Background(), "What is dengue?")
	require.NoError(t, err)
	require.Equal(t, "Dengue is a mosquito-borne viral infection.", answer)
}

func TestGenerateAnswerWithoutKey(t *testing.T) {
	client := newTestClient(t, "", "http://127.0.0.1:1")

	require.False(t, client.Available())
	_, err := client.GenerateAnswer(context.Background(), "What is dengue?")
	require.ErrorIs(t, err, chat.ErrUnavailable)
}

func TestGenerateAnswerServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"internal"}}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(t, "test-key", server.URL)
	_, err := client.GenerateAnswer(context.Background(), "What is dengue?")
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=500")
}

func TestGenerateAnswerNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client := newTestClient(t, "test-key", server.URL)
	_, err := client.GenerateAnswer(context.Background(), "What is dengue?")
	require.Error(t, err)
}

func TestGenerateAnswerBlankText(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": [{"content": {"parts": [{"text": "   "}]}}]}`))
	}))
	defer server.Close()

	client := newTestClient(t, "test-key", server.URL)
	_, err := client.GenerateAnswer(context.Background(), "What is dengue?")
	require.Error(t, err)
}

func newTestClient(t *testing.T, apiKey, baseURL string) *Client {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewClient(apiKey, baseURL, "", time.Second, logger)
}
