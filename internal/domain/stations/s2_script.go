package stations

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

const dialoguePrompt = `You write podcast scripts. Given a brief, produce a natural two-speaker
conversation covering the document's key points for the stated audience.

Rules:
- Return ONLY a JSON array, no prose around it.
- Each element: {"speaker": "<name>", "text": "<spoken line>"}.
- Alternate speakers; the host opens and closes.
- 20 to 40 lines; each line one to three sentences of spoken language.
- No markdown, no stage directions, no sound effects.`

const narrationPrompt = `You write voiceover narration. Given a brief, produce a single-narrator
script covering the document's key points for the stated audience.

Rules:
- Return ONLY the narration text, no headings or markdown.
- Spoken language, short sentences, natural paragraph breaks.
- Three to eight paragraphs.`

// S2WriteScript turns a brief into a script via the chat provider: dialogue
// lines for podcasts, narration text for voiceovers.
type S2WriteScript struct {
	chat ports.ChatClient
	log  *zap.SugaredLogger
}

func NewS2WriteScript(chat ports.ChatClient, log *zap.SugaredLogger) *S2WriteScript {
	return &S2WriteScript{chat: chat, log: log}
}

func (s *S2WriteScript) RunDialogue(ctx context.Context, brief string, host, guest *models.Persona) ([]models.ScriptLine, decimal.Decimal, error) {
	prompt := fmt.Sprintf(
		"%s\n\nHOST: %s (style: %s)\nGUEST: %s (style: %s)\n\nUse exactly these speaker names.",
		brief, host.Name, host.Style, guest.Name, guest.Style,
	)

	raw, cost, err := s.chat.Complete(ctx, dialoguePrompt, prompt)
	if err != nil {
		return nil, cost, fmt.Errorf("write dialogue: %w", err)
	}

	var lines []models.ScriptLine
	if err := json.Unmarshal([]byte(extractJSONArray(raw)), &lines); err != nil {
		s.log.Warnw("dialogue parse failed", "err", err)
		return nil, cost, fmt.Errorf("parse dialogue: %w", err)
	}
	if len(lines) == 0 {
		return nil, cost, fmt.Errorf("parse dialogue: empty script")
	}

	// Attach provider voices; unknown speaker names fall back to the host.
	for i := range lines {
		switch {
		case strings.EqualFold(lines[i].Speaker, guest.Name):
			lines[i].Voice = guest.VoiceID
		default:
			lines[i].Voice = host.VoiceID
		}
	}
	return lines, cost, nil
}

func (s *S2WriteScript) RunNarration(ctx context.Context, brief string, narrator *models.Persona) (string, decimal.Decimal, error) {
	prompt := fmt.Sprintf("%s\n\nNARRATOR: %s (style: %s)", brief, narrator.Name, narrator.Style)

	raw, cost, err := s.chat.Complete(ctx, narrationPrompt, prompt)
	if err != nil {
		return "", cost, fmt.Errorf("write narration: %w", err)
	}

	text := strings.TrimSpace(stripCodeFence(raw))
	if text == "" {
		return "", cost, fmt.Errorf("write narration: empty script")
	}
	return text, cost, nil
}

// extractJSONArray tolerates models that wrap JSON in code fences or prose:
// it returns the outermost bracketed slice of the reply.
func extractJSONArray(s string) string {
	s = stripCodeFence(s)
	start := strings.Index(s, "[")
	end := strings.LastIndex(s, "]")
	if start >= 0 && end > start {
		return s[start : end+1]
	}
	return s
}

func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i >= 0 {
		s = s[i+1:] // drop the language tag line
	}
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}
