package types

// Model represents a vision-language model reported by the Ollama host.
type Model struct {
	// Model name as known to Ollama.
	// example: llava:latest
	Name string `json:"name" example:"llava:latest"`
	// Size of the model blob in bytes.
	// example: 4661224676
	Size int64 `json:"size,omitempty" example:"4661224676"`
	// Content digest reported by Ollama.
	// example: 8dd30f6b0cb1
	Digest string `json:"digest,omitempty" example:"8dd30f6b0cb1"`
	// Last modification time as reported by Ollama (RFC3339).
	// example: 2024-05-01T10:00:00Z
	ModifiedAt string `json:"modified_at,omitempty" example:"2024-05-01T10:00:00Z"`
}

// Description is the structured result of one vision call after parsing
// the model's fenced JSON reply.
type Description struct {
	ArtName  string `json:"art_name"`
	ArtStyle string `json:"art_style"`
	Region   string `json:"region"`
	Question string `json:"question,omitempty"`
	English  string `json:"english"`
}
