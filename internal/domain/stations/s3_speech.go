package stations

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

// S3Synthesize speaks every script line through the TTS provider. Lines are
// synthesized concurrently up to the worker limit but returned in script
// order.
type S3Synthesize struct {
	tts     ports.SpeechClient
	workers int
	log     *zap.SugaredLogger
}

func NewS3Synthesize(tts ports.SpeechClient, workers int, log *zap.SugaredLogger) *S3Synthesize {
	if workers < 1 {
		workers = 1
	}
	return &S3Synthesize{tts: tts, workers: workers, log: log}
}

func (s *S3Synthesize) Run(ctx context.Context, lines []models.ScriptLine) ([][]byte, decimal.Decimal, error) {
	if len(lines) == 0 {
		return nil, decimal.Zero, fmt.Errorf("synthesize: empty script")
	}

	segments := make([][]byte, len(lines))
	total := decimal.Zero
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, line := range lines {
		g.Go(func() error {
			pcm, cost, err := s.tts.Synthesize(gctx, line.Voice, line.Text)
			if err != nil {
				return fmt.Errorf("synthesize line %d: %w", i+1, err)
			}
			if len(pcm) == 0 {
				return fmt.Errorf("synthesize line %d: empty audio", i+1)
			}
			segments[i] = pcm

			mu.Lock()
			total = total.Add(cost)
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, total, err
	}

	s.log.Infow("synthesis done", "lines", len(lines))
	return segments, total, nil
}
