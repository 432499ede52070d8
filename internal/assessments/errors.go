package assessments

import (
	"errors"
	"net/http"

	"github.com/campuswell/pulse/internal/model"
	"github.com/campuswell/pulse/internal/schema"
)

// Domain errors for assessment operations.
var (
	ErrNotFound            = errors.New("assessment not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrDuplicate           = errors.New("assessment already exists")
	ErrInvalidID           = errors.New("invalid assessment id")
	ErrInvalidBody         = errors.New("invalid request body")
	ErrUnsupportedFormat   = errors.New("unsupported export format")
	ErrRequestBodyTooLarge = errors.New("request body exceeds maximum size")
)

// MapHTTPStatus maps assessment domain errors to appropriate HTTP status codes.
// Validation failures carry field details and map to 400; a missing model is a
// service availability problem, not a request problem.
func MapHTTPStatus(err error) int {
	var verr *schema.ValidationError
	if errors.As(err, &verr) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrUserNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidBody) ||
		errors.Is(err, ErrUnsupportedFormat) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrRequestBodyTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	if errors.Is(err, model.ErrModelUnavailable) {
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
