package wizard

import (
	"errors"
	"net/http"

	"github.com/JaimeStill/charter/internal/form"
	"github.com/JaimeStill/charter/internal/generation"
	"github.com/JaimeStill/charter/internal/locale"
	"github.com/JaimeStill/charter/internal/policies"
)

// Domain errors for wizard operations.
var (
	ErrInvalidTransition = errors.New("operation not allowed at current step")
	ErrGenerating        = errors.New("generation already in progress")
	ErrClipboard         = errors.New("clipboard write failed")
)

// MapHTTPStatus maps wizard errors, and the errors of the packages the
// wizard surfaces, to HTTP status codes.
func MapHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrInvalidTransition), errors.Is(err, ErrGenerating):
		return http.StatusConflict
	case errors.Is(err, generation.ErrFailed):
		return generation.MapHTTPStatus(err)
	case errors.Is(err, policies.ErrUnknownKind):
		return policies.MapHTTPStatus(err)
	case errors.Is(err, locale.ErrUnknown):
		return locale.MapHTTPStatus(err)
	case errors.Is(err, form.ErrUnknownField),
		errors.Is(err, form.ErrInvalidPlatform),
		errors.Is(err, form.ErrInvalidDate):
		return form.MapHTTPStatus(err)
	default:
		return http.StatusInternalServerError
	}
}
