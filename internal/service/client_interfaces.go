// Package service contains the client-side business logic of the Traduzo
// application: session lifecycle, translation operations, and the cached
// translation history. Services talk to the backend through an
// adapter.ServerAdapter and never touch the network directly.
package service

import (
	"context"
	"time"

	"github.com/traduzo/traduzo/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/mock_services.go -package=mock

// SessionPhase describes where the session currently is in its lifecycle.
type SessionPhase int

const (
	// PhaseAnonymous means no user is signed in and no restore is in progress.
	PhaseAnonymous SessionPhase = iota

	// PhaseAuthenticating means a persisted token was found and the profile
	// fetch that validates it has not finished yet.
	PhaseAuthenticating

	// PhaseAuthenticated means a user profile is loaded and the token is live.
	PhaseAuthenticated
)

// String implements fmt.Stringer for log output.
func (p SessionPhase) String() string {
	switch p {
	case PhaseAuthenticating:
		return "authenticating"
	case PhaseAuthenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// TokenSource supplies the bearer token for authenticated backend calls.
// The session service implements it; the translation service consumes it.
type TokenSource interface {
	// Token returns the current bearer token, or "" when no user is signed in.
	Token() string
}

// ClientSessionService owns the authentication state of the client: the
// bearer token, the loaded user profile, and the lifecycle phase. All methods
// are safe for concurrent use.
type ClientSessionService interface {
	TokenSource

	// Hydrate restores a previously persisted session. If no token is stored
	// the session stays anonymous and Hydrate returns nil. If a token is found
	// it is validated with a profile fetch; a failed fetch clears the session.
	Hydrate(ctx context.Context) error

	// Login authenticates with email and password. On success the token is
	// persisted and the profile returned by the server becomes the current
	// user. On failure the session state is left untouched.
	Login(ctx context.Context, email, password string) error

	// Register creates a new account and signs it in, following the same
	// state rules as Login.
	Register(ctx context.Context, name, email, password string) error

	// Logout drops the in-memory session and removes the persisted token.
	// It never fails: a storage error is logged and swallowed.
	Logout()

	// RefreshProfile re-fetches the current user from the server. A fetch
	// failure is treated as an invalid token and forces a logout. With no
	// token present the call is a no-op.
	RefreshProfile(ctx context.Context) error

	// SaveProfile sends the given settings patch to the server and replaces
	// the local user with the server's response.
	SaveProfile(ctx context.Context, patch models.ProfilePatch) error

	// UpdateAvatar uploads a new avatar (data URL or remote URL) and replaces
	// the local user with the server's response.
	UpdateAvatar(ctx context.Context, avatar string) error

	// UpdateUserLocal merges the non-zero fields of patch into the in-memory
	// user without contacting the server. No-op when nobody is signed in.
	UpdateUserLocal(patch models.User) error

	// User returns a copy of the signed-in user and whether one is present.
	User() (models.User, bool)

	// Phase returns the current lifecycle phase.
	Phase() SessionPhase

	// LastError returns the user-facing message of the most recent failed
	// session operation, or "" after a success.
	LastError() string
}

// TranslateResult is what a successful translation request yields.
type TranslateResult struct {
	TranslatedText   string
	DetectedLanguage string
}

// ClientTranslationService performs translation operations and keeps the
// local copy of the user's translation history. At most one operation runs at
// a time: while one is in flight, mutating calls fail with
// ErrOperationInFlight and ListTranslations silently does nothing.
type ClientTranslationService interface {
	// Translate sends text to the backend. With autoDetect set (or an empty
	// source) the server picks the source language. On success the history is
	// re-fetched from the server on a best-effort basis before the result is
	// returned.
	Translate(ctx context.Context, text, source, target string, autoDetect bool) (TranslateResult, error)

	// DetectLanguage asks the backend which language text is written in.
	DetectLanguage(ctx context.Context, text string) (models.DetectResponse, error)

	// TranslateImage uploads an image and returns the text extracted from it.
	TranslateImage(ctx context.Context, filename string, image []byte) (string, error)

	// ListTranslations replaces the cached history with the server's list.
	// It is a silent no-op when nobody is signed in or another operation is
	// already in flight.
	ListTranslations(ctx context.Context) error

	// RemoveTranslation deletes one history entry on the server and, on
	// success, drops it from the cache without re-fetching the list.
	RemoveTranslation(ctx context.Context, id int64) error

	// ClearHistory deletes the whole history on the server and, on success,
	// empties the cache.
	ClearHistory(ctx context.Context) error

	// Records returns a copy of the cached history, newest first, in the
	// order the server returned it.
	Records() []models.TranslationRecord

	// InFlight reports whether an operation is currently running.
	InFlight() bool

	// LastError returns the user-facing message of the most recent failed
	// operation, or "" after a success.
	LastError() string
}

// ClientHistoryJob periodically refreshes the translation history in the
// background while a user is signed in.
type ClientHistoryJob interface {
	// Start launches the background refresh loop. A previously running loop
	// is stopped first. If interval is zero or negative it defaults to
	// 5 minutes. The loop exits when ctx is cancelled or Stop is called.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the loop and blocks until it has exited. Safe to call when
	// the job is not running.
	Stop()
}
