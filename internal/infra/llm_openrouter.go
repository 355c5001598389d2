package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

const openRouterURL = "https://openrouter.ai/api/v1/chat/completions"

// Rough blended price per 1K tokens; good enough for job cost reporting.
var openRouterPricePer1K = decimal.RequireFromString("0.0015")

type OpenRouterClient struct {
	apiKey string
	model  string
	client *http.Client
	log    *zap.SugaredLogger
}

func NewOpenRouterClient(apiKey, model string, log *zap.SugaredLogger) ports.ChatClient {
	return &OpenRouterClient{
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 120 * time.Second},
		log:    log,
	}
}

type orMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type orRequest struct {
	Model     string      `json:"model"`
	Messages  []orMessage `json:"messages"`
	MaxTokens int         `json:"max_tokens"`
}

type orResponse struct {
	Choices []struct {
		Message orMessage `json:"message"`
	} `json:"choices"`
	Usage struct {
		PromptTokens     int `json:"prompt_tokens"`
		CompletionTokens int `json:"completion_tokens"`
	} `json:"usage"`
}

func (g *OpenRouterClient) Complete(ctx context.Context, system, prompt string) (string, decimal.Decimal, error) {
	if g.apiKey == "" {
		return "", decimal.Zero, fmt.Errorf("no openrouter api key")
	}

	body := orRequest{
		Model:     g.model,
		MaxTokens: 4096,
		Messages: []orMessage{
			{Role: "system", Content: strings.ToValidUTF8(system, "")},
			{Role: "user", Content: strings.ToValidUTF8(prompt, "")},
		},
	}

	j, err := json.Marshal(body)
	if err != nil {
		return "", decimal.Zero, err
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, openRouterURL, bytes.NewReader(j))
		if err != nil {
			return "", decimal.Zero, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+g.apiKey)
		req.Header.Set("X-Title", "content-studio")

		resp, err := g.client.Do(req)
		if err != nil {
			lastErr = err
			g.log.Warnw("openrouter request failed", "attempt", attempt, "err", err)
			continue
		}

		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("openrouter http %d", resp.StatusCode)
			g.log.Warnw("openrouter bad status", "attempt", attempt, "status", resp.StatusCode)
			continue
		}

		raw = bytes.TrimLeft(raw, " \t\r\n")
		var out orResponse
		if err := json.Unmarshal(raw, &out); err != nil {
			lastErr = fmt.Errorf("openrouter decode: %w", err)
			continue
		}
		if len(out.Choices) == 0 {
			lastErr = fmt.Errorf("openrouter empty choices")
			continue
		}

		tokens := out.Usage.PromptTokens + out.Usage.CompletionTokens
		if tokens == 0 {
			// usage not always reported; estimate off the payload sizes
			tokens = (len(prompt) + len(out.Choices[0].Message.Content)) / 4
		}
		cost := openRouterPricePer1K.Mul(decimal.NewFromInt(int64(tokens))).Div(decimal.NewFromInt(1000))

		return out.Choices[0].Message.Content, cost, nil
	}

	return "", decimal.Zero, fmt.Errorf("openrouter failed after retries: %w", lastErr)
}
