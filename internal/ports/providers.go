package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// ChatClient is the language-model adapter used for script and prompt
// writing. Cost is the estimated provider spend for the call in USD.
type ChatClient interface {
	Complete(ctx context.Context, system, prompt string) (text string, cost decimal.Decimal, err error)
}

// SpeechClient synthesizes one spoken line into 24 kHz mono s16le PCM.
type SpeechClient interface {
	Synthesize(ctx context.Context, voice, text string) (pcm []byte, cost decimal.Decimal, err error)
}

// ImageClient renders an image from a prompt, returning PNG bytes.
type ImageClient interface {
	Render(ctx context.Context, prompt string) (png []byte, cost decimal.Decimal, err error)
}
