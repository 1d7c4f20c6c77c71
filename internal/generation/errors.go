package generation

import (
	"errors"
	"net/http"
)

// ErrFailed is the single user-facing generation failure. Every error
// returned by Client.Generate wraps it.
var ErrFailed = errors.New("failed to generate content; check credential")

// Causes wrapped alongside ErrFailed.
var (
	ErrEmptyResponse       = errors.New("empty response from generation service")
	ErrMissingCredential   = errors.New("generation api key not configured")
	ErrUnsupportedProvider = errors.New("unsupported generation provider")
)

// MapHTTPStatus maps generation errors to HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrFailed) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
