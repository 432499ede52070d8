package users

import (
	"errors"
	"net/http"
)

// Domain errors for user registry operations.
var (
	ErrNotFound     = errors.New("user not found")
	ErrDuplicate    = errors.New("user already exists")
	ErrInvalidID    = errors.New("invalid user id")
	ErrInvalidEmail = errors.New("email is required")
	ErrInvalidName  = errors.New("first and last name are required")
	ErrInvalidRole  = errors.New("invalid role")
)

// Roles a user may hold.
var ValidRoles = []string{"student", "counselor", "admin"}

// MapHTTPStatus maps user domain errors to appropriate HTTP status codes.
func MapHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrDuplicate) {
		return http.StatusConflict
	}
	if errors.Is(err, ErrInvalidID) ||
		errors.Is(err, ErrInvalidEmail) ||
		errors.Is(err, ErrInvalidName) ||
		errors.Is(err, ErrInvalidRole) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
