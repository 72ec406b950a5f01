package ai

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/openai/openai-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"mindflow/internal/config"
)

func TestNew_NoKey(t *testing.T) {
	cfg := &config.Config{AIProvider: config.ProviderGemini}
	_, err := New(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrNoKey)

	cfg = &config.Config{AIProvider: config.ProviderOpenAI, GeminiKey: "only-gemini"}
	_, err = New(context.Background(), cfg)
	assert.ErrorIs(t, err, ErrNoKey)
}

func TestNew_OpenAI(t *testing.T) {
	cfg := &config.Config{AIProvider: config.ProviderOpenAI, OpenAIKey: "sk-test"}
	g, err := New(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "openai:gpt-4o-mini", g.Name())
}

func TestCallWithRetry(t *testing.T) {
	backoff := []time.Duration{time.Millisecond, time.Millisecond}

	calls := 0
	out, err := callWithRetry(context.Background(), backoff, func() (string, error) {
		calls++
		if calls < 3 {
			return "", errors.New("429 Too Many Requests")
		}
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", out)
	assert.Equal(t, 3, calls)

	calls = 0
	_, err = callWithRetry(context.Background(), backoff, func() (string, error) {
		calls++
		return "", errors.New("400 bad request")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, calls)

	calls = 0
	_, err = callWithRetry(context.Background(), backoff, func() (string, error) {
		calls++
		return "", errors.New("500 internal server error")
	})
	assert.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestCallWithRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := callWithRetry(ctx, []time.Duration{time.Hour}, func() (int, error) {
		return 0, errors.New("rate limit reached")
	})
	assert.ErrorIs(t, err, context.Canceled)
}

const responseBody = `{
  "id": "resp_1",
  "object": "response",
  "created_at": 1700000000,
  "status": "completed",
  "model": "gpt-4o-mini",
  "output": [{
    "type": "message",
    "id": "msg_1",
    "role": "assistant",
    "status": "completed",
    "content": [{"type": "output_text", "text": "Take a short walk.", "annotations": []}]
  }]
}`

func TestOpenAIClient_Generate(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/responses"))
		assert.Contains(t, string(body), "how was my week")

		if hits.Add(1) == 1 {
			http.Error(w, `{"error":{"message":"boom"}}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, responseBody)
	}))
	defer srv.Close()

	c := NewOpenAIClient("sk-test", "", option.WithBaseURL(srv.URL+"/"))
	c.backoff = []time.Duration{time.Millisecond}

	text, err := c.Generate(context.Background(), "how was my week")
	require.NoError(t, err)
	assert.Equal(t, "Take a short walk.", text)
	assert.Equal(t, int32(2), hits.Load())
}

func geminiStub(t *testing.T, body string) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqBody, _ := io.ReadAll(r.Body)
		assert.True(t, strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent"), r.URL.Path)
		assert.Equal(t, "gm-test", r.Header.Get("x-goog-api-key"))
		assert.Contains(t, string(reqBody), "how was my week")

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGeminiClient_Generate(t *testing.T) {
	srv := geminiStub(t, `{"candidates":[{"content":{"role":"model","parts":[{"text":"Try an earlier "},{"text":"bedtime."}]}}]}`)

	g, err := newGeminiClient(context.Background(), "gm-test", "gemini-test", genai.HTTPOptions{BaseURL: srv.URL + "/"})
	require.NoError(t, err)
	assert.Equal(t, "gemini:gemini-test", g.Name())

	text, err := g.Generate(context.Background(), "how was my week")
	require.NoError(t, err)
	assert.Equal(t, "Try an earlier bedtime.", text)
}

func TestGeminiClient_EmptyText(t *testing.T) {
	srv := geminiStub(t, `{"candidates":[]}`)

	g, err := newGeminiClient(context.Background(), "gm-test", "gemini-test", genai.HTTPOptions{BaseURL: srv.URL + "/"})
	require.NoError(t, err)

	_, err = g.Generate(context.Background(), "how was my week")
	assert.ErrorContains(t, err, "no text")
}

func TestNewGeminiClient_Defaults(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), "", "")
	assert.ErrorIs(t, err, ErrNoKey)

	g, err := NewGeminiClient(context.Background(), "gm-test", "")
	require.NoError(t, err)
	assert.Equal(t, "gemini:"+defaultGeminiModel, g.Name())
}
