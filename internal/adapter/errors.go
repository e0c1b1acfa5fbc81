package adapter

import "errors"

// Sentinel errors mapped from HTTP status codes by mapHTTPError. The wrapped
// message is the server's `message` body field when present, or the standard
// status text otherwise.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
)
