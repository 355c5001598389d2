package stations

import (
	"fmt"
	"strings"

	"github.com/brandonbryant12/content-studio-sub011/internal/models"
)

// maxBriefSourceChars caps how much document text reaches the LLM prompt.
const maxBriefSourceChars = 24000

// S1ComposeBrief folds the source document, brand guidelines and audience
// segment into the generation brief every downstream station works from.
type S1ComposeBrief struct{}

func NewS1ComposeBrief() *S1ComposeBrief { return &S1ComposeBrief{} }

func (s *S1ComposeBrief) Run(doc *models.Document, brand *models.Brand, segment *models.AudienceSegment) string {
	var sb strings.Builder

	text := doc.Text
	if len(text) > maxBriefSourceChars {
		text = text[:maxBriefSourceChars]
	}

	sb.WriteString("SOURCE DOCUMENT: ")
	sb.WriteString(doc.Title)
	sb.WriteString("\n\n")
	sb.WriteString(text)
	sb.WriteString("\n")

	if brand != nil {
		sb.WriteString("\nBRAND: ")
		sb.WriteString(brand.Name)
		if brand.Description != "" {
			sb.WriteString("\n")
			sb.WriteString(brand.Description)
		}
		if brand.Tone != "" {
			sb.WriteString("\nTONE GUIDELINES: ")
			sb.WriteString(brand.Tone)
		}
		if len(brand.Palette) > 0 {
			sb.WriteString("\nBRAND COLORS: ")
			sb.WriteString(strings.Join(brand.Palette, ", "))
		}
		sb.WriteString("\n")
	}

	if segment != nil {
		sb.WriteString("\nTARGET AUDIENCE: ")
		sb.WriteString(segment.Name)
		if segment.Description != "" {
			sb.WriteString("\n")
			sb.WriteString(segment.Description)
		}
		if segment.Demographics != "" {
			sb.WriteString("\nDEMOGRAPHICS: ")
			sb.WriteString(segment.Demographics)
		}
		if len(segment.Interests) > 0 {
			sb.WriteString(fmt.Sprintf("\nINTERESTS: %s", strings.Join(segment.Interests, ", ")))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
