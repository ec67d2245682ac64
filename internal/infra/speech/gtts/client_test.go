package gtts

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSynthesizeSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/translate_tts", r.URL.Path)
		query := r.URL.Query()
		require.Equal(t, "tw-ob", query.Get("client"))
		require.Equal(t, "hi", query.Get("tl"))
		require.Equal(t, "Take rest and drink fluids", query.Get("q"))

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-payload"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	audio, err := client.Synthesize(context.Background(), "Take rest and drink fluids", "hi")
	require.NoError(t, err)
	require.Equal(t, []byte("mp3-payload"), audio)
}

func TestSynthesizeUnsupportedLanguage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad request", http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Synthesize(context.Background(), "hello", "xx")
	require.Error(t, err)
	require.Contains(t, err.Error(), "lang=xx")
}

func TestSynthesizeEmptyText(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", time.Second)

	_, err := client.Synthesize(context.Background(), "   ", "en")
	require.Error(t, err)
}

func TestSynthesizeEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Synthesize(context.Background(), "hello", "en")
	require.Error(t, err)
}

func TestSynthesizeDefaultsLanguageToEnglish(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "en", r.URL.Query().Get("tl"))
		_, _ = w.Write([]byte("ok"))
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second)
	_, err := client.Synthesize(context.Background(), "hello", "  ")
	require.NoError(t, err)
}
