// Package store provides the client's local persistence: a single durable
// credential slot holding the session token between runs.
//
// The slot is intentionally minimal. Translation history is never cached
// locally (the server is the only source of truth for records), so the only
// state worth keeping across restarts is the bearer token.
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_store.go -package=mock

// TokenStore is the durable credential slot. Exactly one token is held at a
// time; saving overwrites the previous value.
type TokenStore interface {
	// Save persists token, replacing any previously saved value.
	Save(token string) error

	// Load returns the persisted token. Returns [ErrTokenNotFound] when no
	// token has been saved or the slot was cleared.
	Load() (string, error)

	// Clear removes the persisted token. Clearing an empty slot is a no-op.
	Clear() error
}
