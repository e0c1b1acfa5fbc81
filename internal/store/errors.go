package store

import "errors"

// ErrTokenNotFound is returned by [TokenStore.Load] when the slot holds no
// token. Callers treat it as "anonymous session", not as a failure.
var ErrTokenNotFound = errors.New("session token not found")
