// Package adapter provides the transport layer for communicating with the
// remote translation server.
//
// The primary abstraction is [ServerAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Authenticated calls take the bearer token as an explicit argument: the
// session layer owns the credential and passes its current value into each
// request, so the transport never reads ambient state. Error values defined
// in errors.go are mapped from HTTP status codes by mapHTTPError so that
// callers can use [errors.Is] for transport-agnostic error handling
// (e.g. [ErrUnauthorized] for 401, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/traduzo/traduzo/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/mock_adapter.go -package=mock

// ServerAdapter defines transport-agnostic communication with the translation
// server. Implementations are responsible for serialisation, authentication
// header construction, and mapping transport-level errors to the sentinel
// values defined in this package.
type ServerAdapter interface {
	// Login sends the credentials to the login endpoint. On success the
	// server replies with a fresh bearer token and the account profile.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// Register creates a new account. The server replies with a token and
	// the created profile, so a successful registration doubles as a login.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Profile fetches the profile of the account identified by token.
	Profile(ctx context.Context, token string) (models.User, error)

	// UpdateProfile sends a partial profile update; only the fields set in
	// patch are changed. Returns the full updated profile.
	UpdateProfile(ctx context.Context, token string, patch models.ProfilePatch) (models.User, error)

	// UpdateAvatar uploads a base64-encoded avatar image. The server
	// validates and stores it and returns the full updated profile.
	UpdateAvatar(ctx context.Context, token, avatar string) (models.User, error)

	// Translate requests a translation. The server stores the result in the
	// account's history as a side effect and returns the translated text
	// together with the detected source language.
	Translate(ctx context.Context, token string, req models.TranslateRequest) (models.TranslateResponse, error)

	// Detect requests source-language detection for text without
	// translating it or touching the history.
	Detect(ctx context.Context, token, text string) (models.DetectResponse, error)

	// Translations fetches the full translation history, most recent
	// first. A missing list in the response body decodes to an empty
	// (non-nil) slice.
	Translations(ctx context.Context, token string) ([]models.TranslationRecord, error)

	// DeleteTranslation removes the single history record with the given
	// server-assigned id.
	DeleteTranslation(ctx context.Context, token string, id int64) error

	// ClearTranslations removes every history record of the account.
	ClearTranslations(ctx context.Context, token string) error

	// TranslateImage uploads an image as multipart form data and returns
	// the text the server extracted from it via OCR.
	TranslateImage(ctx context.Context, token, filename string, image []byte) (string, error)
}
