package vision

import (
	"fmt"
	"strings"
)

// DefaultQuestion is used by scholar mode when the request omits one.
const DefaultQuestion = "Tell me the history and origins of this art form."

var lengthHints = map[string]string{
	"short":    "2-3 sentences",
	"medium":   "one well-crafted paragraph",
	"detailed": "2-3 rich paragraphs",
}

var audienceHints = map[string]string{
	"general":  "for the general public",
	"buyer":    "for an art buyer",
	"student":  "for a student or researcher",
	"children": "for children aged 8-12",
}

var toneValues = map[string]bool{
	"poetic":       true,
	"informative":  true,
	"storytelling": true,
	"academic":     true,
}

func keysOf[V any](m map[string]V) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}

// CreatorPrompt builds the creator-mode prompt. Empty option values fall
// back to the defaults (medium, general, poetic); unknown values are an error.
func CreatorPrompt(length, audience, tone string) (string, error) {
	if length == "" {
		length = "medium"
	}
	if audience == "" {
		audience = "general"
	}
	if tone == "" {
		tone = "poetic"
	}
	lh, ok := lengthHints[length]
	if !ok {
		return "", fmt.Errorf("invalid length %q, expected one of %v", length, keysOf(lengthHints))
	}
	ah, ok := audienceHints[audience]
	if !ok {
		return "", fmt.Errorf("invalid audience %q, expected one of %v", audience, keysOf(audienceHints))
	}
	if !toneValues[tone] {
		return "", fmt.Errorf("invalid tone %q, expected one of %v", tone, keysOf(toneValues))
	}
	return fmt.Sprintf(`You are an expert on Indian tribal and folk art traditions.

Analyze the tribal artwork in the image.

Return ONLY valid JSON with exactly these fields:

{
  "art_name": "Specific name of the artwork",
  "art_style": "Tribal art tradition identified",
  "region": "Indian state or region of origin",
  "english": "A %s description written in a %s tone, %s. Include motifs, cultural significance, symbolism."
}
`, lh, tone, ah), nil
}

// ScholarPrompt builds the scholar-mode prompt. Double quotes in the
// question are squashed to single quotes before interpolation so the model
// still sees a valid JSON template.
func ScholarPrompt(question string) string {
	if strings.TrimSpace(question) == "" {
		question = DefaultQuestion
	}
	safe := strings.ReplaceAll(question, `"`, "'")
	return fmt.Sprintf(`You are a renowned scholar of Indian tribal art.

Look at this artwork and answer:

"%s"

Return ONLY valid JSON:

{
  "art_name": "Artwork name",
  "art_style": "Art tradition",
  "region": "Region of origin",
  "question": "%s",
  "english": "A scholarly answer in 2-3 detailed paragraphs."
}
`, safe, safe)
}
