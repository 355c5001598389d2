package infra

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

var imagePricePerRender = decimal.RequireFromString("0.04")

// ImageGenClient speaks the OpenAI-style /v1/images/generations API and
// requests base64 output so no second fetch is needed.
type ImageGenClient struct {
	url    string
	apiKey string
	model  string
	client *http.Client
	log    *zap.SugaredLogger
}

func NewImageGenClient(url, apiKey, model string, log *zap.SugaredLogger) ports.ImageClient {
	return &ImageGenClient{
		url:    url,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 180 * time.Second},
		log:    log,
	}
}

type imageRequest struct {
	Model          string `json:"model"`
	Prompt         string `json:"prompt"`
	N              int    `json:"n"`
	Size           string `json:"size"`
	ResponseFormat string `json:"response_format"`
}

type imageResponse struct {
	Data []struct {
		B64JSON string `json:"b64_json"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *ImageGenClient) Render(ctx context.Context, prompt string) ([]byte, decimal.Decimal, error) {
	if c.apiKey == "" {
		return nil, decimal.Zero, fmt.Errorf("no image api key")
	}

	body, err := json.Marshal(imageRequest{
		Model:          c.model,
		Prompt:         prompt,
		N:              1,
		Size:           "1024x1536",
		ResponseFormat: "b64_json",
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
		if err != nil {
			return nil, decimal.Zero, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+c.apiKey)

		resp, err := c.client.Do(req)
		if err != nil {
			lastErr = err
			c.log.Warnw("imagegen request failed", "attempt", attempt, "err", err)
			continue
		}

		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		var out imageResponse
		if err := json.Unmarshal(raw, &out); err != nil {
			lastErr = fmt.Errorf("imagegen decode: %w", err)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("imagegen http %d: %s", resp.StatusCode, out.Error.Message)
			c.log.Warnw("imagegen bad status", "attempt", attempt, "status", resp.StatusCode)
			continue
		}
		if len(out.Data) == 0 || out.Data[0].B64JSON == "" {
			lastErr = fmt.Errorf("imagegen empty data")
			continue
		}

		png, err := base64.StdEncoding.DecodeString(out.Data[0].B64JSON)
		if err != nil {
			lastErr = fmt.Errorf("imagegen base64: %w", err)
			continue
		}
		return png, imagePricePerRender, nil
	}

	return nil, decimal.Zero, fmt.Errorf("imagegen failed after retries: %w", lastErr)
}
