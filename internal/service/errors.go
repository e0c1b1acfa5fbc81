package service

import "errors"

var (
	// ErrOperationInFlight is returned when a translation-store operation is
	// rejected because another one has not finished yet.
	ErrOperationInFlight = errors.New("operation already in flight")

	// ErrNotAuthenticated is returned by session operations that require a
	// signed-in user.
	ErrNotAuthenticated = errors.New("not authenticated")
)
