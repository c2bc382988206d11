package httpapi

// maxUploadBytes controls the maximum allowed multipart request size for
// the generate endpoints. Default is 10 MiB.
var maxUploadBytes int64 = 10 << 20

// SetMaxUploadBytes allows configuring the maximum upload size.
func SetMaxUploadBytes(n int64) {
	if n <= 0 {
		maxUploadBytes = 10 << 20
		return
	}
	maxUploadBytes = n
}

// CORS configuration (opt-in). If disabled, no CORS middleware is added.
var (
	corsEnabled        bool
	corsAllowedOrigins []string
	corsAllowedMethods []string
	corsAllowedHeaders []string
)

// SetCORSOptions configures CORS behavior for the HTTP server. The original
// deployment allowed any origin so the browser frontend can live anywhere.
func SetCORSOptions(enabled bool, origins, methods, headers []string) {
	corsEnabled = enabled
	corsAllowedOrigins = append([]string(nil), origins...)
	corsAllowedMethods = append([]string(nil), methods...)
	corsAllowedHeaders = append([]string(nil), headers...)
}
