package translate

import (
	"context"
	"fmt"
	"sort"
	"strings"
)

// Translator converts English text into one of the supported languages.
type Translator interface {
	Translate(ctx context.Context, text, language string) (string, error)
}

// LanguageCodes maps the API's language names to translation-engine codes.
var LanguageCodes = map[string]string{
	"hindi":   "hi",
	"marathi": "mr",
	"bengali": "bn",
	"tamil":   "ta",
	"telugu":  "te",
}

// Supported returns the sorted list of supported language names.
func Supported() []string {
	out := make([]string, 0, len(LanguageCodes))
	for k := range LanguageCodes {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// ParseLanguages splits a comma-separated language list, lowercases and
// trims entries, and rejects unknown names. An empty string yields nil.
func ParseLanguages(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var langs []string
	var unknown []string
	for _, part := range strings.Split(s, ",") {
		l := strings.ToLower(strings.TrimSpace(part))
		if l == "" {
			continue
		}
		if _, ok := LanguageCodes[l]; !ok {
			unknown = append(unknown, l)
			continue
		}
		langs = append(langs, l)
	}
	if len(unknown) > 0 {
		return nil, fmt.Errorf("unsupported language(s): %v, supported: %v", unknown, Supported())
	}
	return langs, nil
}

// Batch translates text into each requested language sequentially.
// A single failing language fails the whole batch.
func Batch(ctx context.Context, tr Translator, text string, languages []string) (map[string]string, error) {
	out := make(map[string]string, len(languages))
	for _, lang := range languages {
		translated, err := tr.Translate(ctx, text, lang)
		if err != nil {
			return nil, fmt.Errorf("translate to %s: %w", lang, err)
		}
		out[lang] = translated
	}
	return out, nil
}
