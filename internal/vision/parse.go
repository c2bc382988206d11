package vision

import (
	"encoding/json"
	"fmt"
	"strings"

	"tribald/pkg/types"
)

// ParseDescription extracts the structured description from a raw model
// reply. Vision models routinely wrap the JSON in ``` fences or surround it
// with prose, so the parser strips fences and then decodes the outermost
// JSON object it can find.
func ParseDescription(raw string) (types.Description, error) {
	var d types.Description
	cleaned := stripFences(raw)
	obj := outerObject(cleaned)
	if obj == "" {
		return d, fmt.Errorf("no JSON object in model reply")
	}
	if err := json.Unmarshal([]byte(obj), &d); err != nil {
		return d, fmt.Errorf("decode model reply: %w", err)
	}
	if strings.TrimSpace(d.English) == "" {
		return d, fmt.Errorf("model reply has no english text")
	}
	// Defaults the original applied when the model dropped a field.
	if strings.TrimSpace(d.ArtName) == "" {
		d.ArtName = "Unknown Art"
	}
	if strings.TrimSpace(d.Region) == "" {
		d.Region = "India"
	}
	return d, nil
}

// stripFences removes ``` / ```json markers and trailing backticks.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, "`")
	return strings.TrimSpace(s)
}

// outerObject returns the substring from the first '{' to its matching '}'.
// Brace counting ignores braces inside JSON strings.
func outerObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return ""
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return ""
}
