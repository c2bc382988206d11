package vision

import (
	"strings"
	"testing"
)

func TestCreatorPromptDefaults(t *testing.T) {
	p, err := CreatorPrompt("", "", "")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if !strings.Contains(p, "one well-crafted paragraph") {
		t.Fatalf("missing default length hint: %q", p)
	}
	if !strings.Contains(p, "poetic tone") {
		t.Fatalf("missing default tone: %q", p)
	}
	if !strings.Contains(p, "for the general public") {
		t.Fatalf("missing default audience: %q", p)
	}
}

func TestCreatorPromptOptions(t *testing.T) {
	p, err := CreatorPrompt("detailed", "children", "storytelling")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	for _, want := range []string{"2-3 rich paragraphs", "storytelling tone", "for children aged 8-12"} {
		if !strings.Contains(p, want) {
			t.Fatalf("missing %q in prompt", want)
		}
	}
}

func TestCreatorPromptInvalid(t *testing.T) {
	if _, err := CreatorPrompt("epic", "", ""); err == nil {
		t.Fatalf("expected length error")
	}
	if _, err := CreatorPrompt("", "aliens", ""); err == nil {
		t.Fatalf("expected audience error")
	}
	if _, err := CreatorPrompt("", "", "sarcastic"); err == nil {
		t.Fatalf("expected tone error")
	}
}

func TestScholarPromptQuotes(t *testing.T) {
	p := ScholarPrompt(`What does "tarpa" mean?`)
	if strings.Contains(p, `"tarpa"`) {
		t.Fatalf("double quotes not squashed: %q", p)
	}
	if !strings.Contains(p, "What does 'tarpa' mean?") {
		t.Fatalf("question missing: %q", p)
	}
}

func TestScholarPromptDefaultQuestion(t *testing.T) {
	p := ScholarPrompt("   ")
	if !strings.Contains(p, DefaultQuestion) {
		t.Fatalf("default question missing: %q", p)
	}
}
