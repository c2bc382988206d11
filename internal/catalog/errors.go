package catalog

import "net/http"

// validationError covers bad request parameters (languages, tone, ...)
// and maps to 422 like the original backend.
type validationError struct{ msg string }

func (e validationError) Error() string   { return e.msg }
func (e validationError) StatusCode() int { return http.StatusUnprocessableEntity }

// ErrValidation wraps a message as a 422 validation error.
func ErrValidation(msg string) error { return validationError{msg: msg} }

// IsValidation reports whether err is a request validation failure.
func IsValidation(err error) bool {
	_, ok := err.(validationError)
	return ok
}

// badUploadError signals an upload that is not a decodable image (422).
type badUploadError struct{ msg string }

func (e badUploadError) Error() string   { return e.msg }
func (e badUploadError) StatusCode() int { return http.StatusUnprocessableEntity }

// ErrBadUpload wraps a message as a bad-upload error.
func ErrBadUpload(msg string) error { return badUploadError{msg: msg} }

// IsBadUpload reports whether err indicates an unreadable upload.
func IsBadUpload(err error) bool {
	_, ok := err.(badUploadError)
	return ok
}

// modelUnavailableError signals that the Ollama host could not be reached
// or refused the call, so the HTTP layer returns 503 instead of 500.
type modelUnavailableError struct{ msg string }

func (e modelUnavailableError) Error() string   { return e.msg }
func (e modelUnavailableError) StatusCode() int { return http.StatusServiceUnavailable }

// ErrModelUnavailable constructs a modelUnavailableError.
func ErrModelUnavailable(msg string) error { return modelUnavailableError{msg: msg} }

// IsModelUnavailable reports whether err indicates a missing/failed model host.
func IsModelUnavailable(err error) bool {
	_, ok := err.(modelUnavailableError)
	return ok
}

// badModelOutputError signals that the model answered but the reply could
// not be parsed into a description (502: upstream produced garbage).
type badModelOutputError struct{ msg string }

func (e badModelOutputError) Error() string   { return e.msg }
func (e badModelOutputError) StatusCode() int { return http.StatusBadGateway }

// ErrBadModelOutput constructs a badModelOutputError.
func ErrBadModelOutput(msg string) error { return badModelOutputError{msg: msg} }

// IsBadModelOutput reports whether err indicates an unparseable model reply.
func IsBadModelOutput(err error) bool {
	_, ok := err.(badModelOutputError)
	return ok
}
