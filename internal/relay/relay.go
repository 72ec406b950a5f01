// Package relay forwards finished analysis text to an outside webhook
// (an automation flow that emails or stores it).
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

var ErrDisabled = errors.New("relay: no webhook configured")

type WebhookRelay struct {
	url    string
	client *http.Client
}

func NewWebhookRelay(url string) *WebhookRelay {
	return &WebhookRelay{
		url:    url,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *WebhookRelay) Enabled() bool {
	return r.url != ""
}

// Send posts {"analysis": text}. Any non-2xx answer is an error.
func (r *WebhookRelay) Send(ctx context.Context, analysis string) error {
	if !r.Enabled() {
		return ErrDisabled
	}

	payload, err := json.Marshal(map[string]string{"analysis": analysis})
	if err != nil {
		return fmt.Errorf("relay marshal failed: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("relay request create failed: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("relay request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("relay http %d: %s", resp.StatusCode, bytes.TrimSpace(body))
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
