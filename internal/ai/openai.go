package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/responses"
)

const defaultOpenAIModel = "gpt-4o-mini"

type OpenAIClient struct {
	client  openai.Client
	model   string
	backoff []time.Duration
}

func NewOpenAIClient(apiKey, model string, opts ...option.RequestOption) *OpenAIClient {
	if model == "" {
		model = defaultOpenAIModel
	}
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey), option.WithMaxRetries(0)}, opts...)

	return &OpenAIClient{
		client:  openai.NewClient(opts...),
		model:   model,
		backoff: []time.Duration{2 * time.Second, 5 * time.Second},
	}
}

func (o *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	params := responses.ResponseNewParams{
		Model:           o.model,
		MaxOutputTokens: openai.Int(800),
		Input: responses.ResponseNewParamsInputUnion{
			OfInputItemList: []responses.ResponseInputItemUnionParam{
				responses.ResponseInputItemParamOfMessage(prompt, responses.EasyInputMessageRoleUser),
			},
		},
	}

	resp, err := callWithRetry(ctx, o.backoff, func() (*responses.Response, error) {
		return o.client.Responses.New(ctx, params)
	})
	if err != nil {
		return "", fmt.Errorf("openai generate failed: %w", err)
	}

	text := resp.OutputText()
	if text == "" {
		return "", errors.New("openai returned no text")
	}
	return text, nil
}

func (o *OpenAIClient) Name() string {
	return fmt.Sprintf("openai:%s", o.model)
}

// callWithRetry retries rate-limit and server errors once per backoff step.
func callWithRetry[T any](ctx context.Context, backoff []time.Duration, call func() (T, error)) (T, error) {
	for attempt := 0; ; attempt++ {
		out, err := call()
		if err == nil {
			return out, nil
		}
		if attempt >= len(backoff) || !retryable(err) {
			return out, err
		}

		select {
		case <-ctx.Done():
			return out, ctx.Err()
		case <-time.After(backoff[attempt]):
		}
	}
}

func retryable(err error) bool {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 429 || apiErr.StatusCode >= 500
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "429") ||
		strings.Contains(errStr, "rate limit") ||
		strings.Contains(errStr, "internal server error")
}
