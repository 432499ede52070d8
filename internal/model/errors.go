package model

import "errors"

var (
	// ErrModelUnavailable indicates no valid model artifact could be loaded.
	// This is a fatal startup condition: the service must not accept
	// submissions until an artifact is available.
	ErrModelUnavailable = errors.New("model artifact unavailable")

	// ErrInference indicates the artifact could not produce a result for a
	// well-formed input. Fatal for the request, not for the process.
	ErrInference = errors.New("inference failed")
)
