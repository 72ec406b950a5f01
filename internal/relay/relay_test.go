package relay

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSend(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	r := NewWebhookRelay(srv.URL)
	defer r.client.CloseIdleConnections()

	require.NoError(t, r.Send(context.Background(), "sleep more"))
	assert.Equal(t, map[string]string{"analysis": "sleep more"}, got)
}

func TestSend_Non2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "workflow inactive", http.StatusNotFound)
	}))
	defer srv.Close()

	r := NewWebhookRelay(srv.URL)
	defer r.client.CloseIdleConnections()

	err := r.Send(context.Background(), "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "workflow inactive")
}

func TestSend_Disabled(t *testing.T) {
	r := NewWebhookRelay("")
	assert.False(t, r.Enabled())
	assert.ErrorIs(t, r.Send(context.Background(), "x"), ErrDisabled)
}
