package infra

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

// Per-character pricing for speech synthesis, used for job cost reporting.
var ttsPricePerChar = decimal.RequireFromString("0.000015")

// TTSClient speaks the OpenAI-style /v1/audio/speech API and requests raw
// 16-bit PCM so the assembler can splice lines without re-decoding.
type TTSClient struct {
	url    string
	apiKey string
	model  string
	client *http.Client
	log    *zap.SugaredLogger
}

func NewTTSClient(url, apiKey, model string, log *zap.SugaredLogger) ports.SpeechClient {
	return &TTSClient{
		url:    url,
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 120 * time.Second},
		log:    log,
	}
}

type ttsRequest struct {
	Model          string `json:"model"`
	Voice          string `json:"voice"`
	Input          string `json:"input"`
	ResponseFormat string `json:"response_format"`
}

type ttsError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (s *TTSClient) Synthesize(ctx context.Context, voice, text string) ([]byte, decimal.Decimal, error) {
	if s.apiKey == "" {
		return nil, decimal.Zero, fmt.Errorf("no tts api key")
	}

	body, err := json.Marshal(ttsRequest{
		Model:          s.model,
		Voice:          voice,
		Input:          text,
		ResponseFormat: "pcm",
	})
	if err != nil {
		return nil, decimal.Zero, err
	}

	var lastErr error
	for attempt := 1; attempt <= 3; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
		if err != nil {
			return nil, decimal.Zero, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+s.apiKey)

		resp, err := s.client.Do(req)
		if err != nil {
			lastErr = err
			s.log.Warnw("tts request failed", "attempt", attempt, "err", err)
			continue
		}

		raw, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			var pe ttsError
			_ = json.Unmarshal(raw, &pe)
			lastErr = fmt.Errorf("tts http %d: %s", resp.StatusCode, pe.Error.Message)
			s.log.Warnw("tts bad status", "attempt", attempt, "status", resp.StatusCode)
			continue
		}
		if len(raw) == 0 {
			lastErr = fmt.Errorf("tts empty audio")
			continue
		}

		cost := ttsPricePerChar.Mul(decimal.NewFromInt(int64(len(text))))
		return raw, cost, nil
	}

	return nil, decimal.Zero, fmt.Errorf("tts failed after retries: %w", lastErr)
}
