package stations

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

const artPromptSystem = `You write prompts for an image generation model. Given a brief, produce one
prompt describing an infographic that presents the document's key points
visually: clear visual hierarchy, labeled sections, readable layout.

Rules:
- Return ONLY the prompt text, one paragraph, no markdown.
- If brand colors are listed in the brief, name them in the prompt.
- Never ask for photorealistic people or logos.`

// S5ArtPrompt turns the brief into a single image-model prompt.
type S5ArtPrompt struct {
	chat ports.ChatClient
}

func NewS5ArtPrompt(chat ports.ChatClient) *S5ArtPrompt {
	return &S5ArtPrompt{chat: chat}
}

func (s *S5ArtPrompt) Run(ctx context.Context, brief string) (string, decimal.Decimal, error) {
	raw, cost, err := s.chat.Complete(ctx, artPromptSystem, brief)
	if err != nil {
		return "", cost, fmt.Errorf("art prompt: %w", err)
	}

	prompt := strings.TrimSpace(stripCodeFence(raw))
	if prompt == "" {
		return "", cost, fmt.Errorf("art prompt: empty reply")
	}
	return prompt, cost, nil
}
