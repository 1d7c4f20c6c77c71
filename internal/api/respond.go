package api

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/charter/internal/wizard"
	"github.com/JaimeStill/charter/pkg/handlers"
)

// ErrInvalidBody is returned when a request body is not the expected JSON.
var ErrInvalidBody = errors.New("invalid request body")

func decode(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return err
		}
		if errors.Is(err, io.EOF) {
			return ErrInvalidBody
		}
		return errors.Join(ErrInvalidBody, err)
	}
	return nil
}

func mapHTTPStatus(err error) int {
	var maxErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, ErrInvalidBody):
		if status := wizard.MapHTTPStatus(err); status != http.StatusInternalServerError {
			return status
		}
		return http.StatusBadRequest
	default:
		return wizard.MapHTTPStatus(err)
	}
}

func respondError(w http.ResponseWriter, logger *slog.Logger, err error) {
	handlers.RespondError(w, logger, mapHTTPStatus(err), err)
}
