package types

// GenerateResponse is returned by POST /generate (creator mode).
type GenerateResponse struct {
	// Specific name of the artwork as identified by the model.
	// example: Warli Harvest Dance
	ArtName string `json:"art_name" example:"Warli Harvest Dance"`
	// Tribal art tradition identified.
	// example: Warli
	ArtStyle string `json:"art_style" example:"Warli"`
	// Indian state or region of origin.
	// example: Maharashtra
	Region string `json:"region" example:"Maharashtra"`
	// English description generated by the vision model.
	English string `json:"english"`
	// Requested translations keyed by language name.
	Translations map[string]string `json:"translations"`
}

// HistoryGenerateResponse is returned by POST /generate/history (scholar mode).
type HistoryGenerateResponse struct {
	ArtName  string `json:"art_name" example:"Warli Harvest Dance"`
	ArtStyle string `json:"art_style" example:"Warli"`
	Region   string `json:"region" example:"Maharashtra"`
	// The historical/cultural question that was answered.
	// example: Tell me the history and origins of this art form.
	Question string `json:"question" example:"Tell me the history and origins of this art form."`
	// Scholarly English answer generated by the vision model.
	English string `json:"english"`
	// Requested translations keyed by language name.
	Translations map[string]string `json:"translations"`
}

// ArtworkRecord is one persisted generation, as returned by GET /history.
type ArtworkRecord struct {
	// Row identifier.
	// example: 42
	ID       uint   `json:"id" example:"42"`
	ArtName  string `json:"art_name,omitempty"`
	ArtStyle string `json:"art_style,omitempty"`
	Region   string `json:"region,omitempty"`
	Question string `json:"question,omitempty"`
	English  string `json:"english"`
	Hindi    string `json:"hindi,omitempty"`
	Marathi  string `json:"marathi,omitempty"`
	Bengali  string `json:"bengali,omitempty"`
	Tamil    string `json:"tamil,omitempty"`
	Telugu   string `json:"telugu,omitempty"`
	// Creation time in unix seconds.
	// example: 1700000000
	CreatedAt int64 `json:"created_at_unix,omitempty" example:"1700000000"`
}

// ModelsResponse wraps the list of models returned by GET /models.
type ModelsResponse struct {
	// Models available on the Ollama host.
	Models []Model `json:"models"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: unsupported language(s): [klingon]
	Error string `json:"error" example:"unsupported language(s): [klingon]"`
	// HTTP status code.
	// example: 422
	Code int `json:"code" example:"422"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Ollama base URL the service talks to.
	// example: http://127.0.0.1:11434
	OllamaHost string `json:"ollama_host" example:"http://127.0.0.1:11434"`
	// Vision model used for generation.
	// example: llava
	VisionModel string `json:"vision_model" example:"llava"`
	// Number of artwork rows persisted.
	// example: 17
	Artworks int64 `json:"artworks" example:"17"`
	// Background persists started.
	// example: 18
	SavesTotal uint64 `json:"saves_total" example:"18"`
	// Background persists that failed.
	// example: 1
	SaveErrorsTotal uint64 `json:"save_errors_total" example:"1"`
	// Background persists not yet finished.
	// example: 0
	SavesPending int64 `json:"saves_pending" example:"0"`
	// Last error observed by the service (if any).
	LastError string `json:"last_error,omitempty"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
