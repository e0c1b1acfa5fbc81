package adapter

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/traduzo/traduzo/internal/config"
	"github.com/traduzo/traduzo/internal/logger"
	"github.com/traduzo/traduzo/internal/utils"
	"github.com/traduzo/traduzo/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the server address from
// adapterCfg.ServerAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.ServerAddress is empty or cannot be parsed
// as a valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, log *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.ServerAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: log.Component("adapter")}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/login and decodes the token/user pair from the response body.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&auth).
		Post("/api/login")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return auth, nil
}

// Register implements [ServerAdapter]. It POSTs the new account data to
// POST /api/register; the response carries a fresh token plus the created
// user (auto-login semantics).
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error) {
	var auth models.AuthResponse

	resp, err := h.request(ctx).
		SetBody(req).
		SetResult(&auth).
		Post("/api/register")
	if err != nil {
		return models.AuthResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuthResponse{}, err
	}

	return auth, nil
}

// Profile implements [ServerAdapter]. It GETs /api/profile with the given
// bearer token and returns the unwrapped user object.
func (h *httpServerAdapter) Profile(ctx context.Context, token string) (models.User, error) {
	var profile models.ProfileResponse

	resp, err := h.authedRequest(ctx, token).
		SetResult(&profile).
		Get("/api/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return profile.User, nil
}

// UpdateProfile implements [ServerAdapter]. It PUTs the patch to
// PUT /api/profile; the server changes only the fields present in the body
// and replies with the full updated user.
func (h *httpServerAdapter) UpdateProfile(ctx context.Context, token string, patch models.ProfilePatch) (models.User, error) {
	var profile models.ProfileResponse

	resp, err := h.authedRequest(ctx, token).
		SetBody(patch).
		SetResult(&profile).
		Put("/api/profile")
	if err != nil {
		return models.User{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return profile.User, nil
}

// UpdateAvatar implements [ServerAdapter]. It POSTs the base64-encoded image
// to POST /api/profile/avatar and returns the full updated user; the server
// is the source of truth for the derived avatar URL.
func (h *httpServerAdapter) UpdateAvatar(ctx context.Context, token, avatar string) (models.User, error) {
	var profile models.ProfileResponse

	resp, err := h.authedRequest(ctx, token).
		SetBody(models.AvatarRequest{Avatar: avatar}).
		SetResult(&profile).
		Post("/api/profile/avatar")
	if err != nil {
		return models.User{}, fmt.Errorf("update avatar request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return profile.User, nil
}

// Translate implements [ServerAdapter]. It POSTs the translation request to
// POST /api/translate. req.Source must already be "auto" when the caller
// wants automatic detection.
func (h *httpServerAdapter) Translate(ctx context.Context, token string, req models.TranslateRequest) (models.TranslateResponse, error) {
	var result models.TranslateResponse

	resp, err := h.authedRequest(ctx, token).
		SetBody(req).
		SetResult(&result).
		Post("/api/translate")
	if err != nil {
		return models.TranslateResponse{}, fmt.Errorf("translate request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TranslateResponse{}, err
	}

	return result, nil
}

// Detect implements [ServerAdapter]. It POSTs the text to POST /api/detect
// and returns the detected language with its confidence.
func (h *httpServerAdapter) Detect(ctx context.Context, token, text string) (models.DetectResponse, error) {
	var result models.DetectResponse

	resp, err := h.authedRequest(ctx, token).
		SetBody(models.DetectRequest{Text: text}).
		SetResult(&result).
		Post("/api/detect")
	if err != nil {
		return models.DetectResponse{}, fmt.Errorf("detect request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DetectResponse{}, err
	}

	return result, nil
}

// Translations implements [ServerAdapter]. It GETs /api/translations and
// unwraps the record list. The returned slice is never nil so callers can
// replace their local state wholesale.
func (h *httpServerAdapter) Translations(ctx context.Context, token string) ([]models.TranslationRecord, error) {
	var history models.HistoryResponse

	resp, err := h.authedRequest(ctx, token).
		SetResult(&history).
		Get("/api/translations")
	if err != nil {
		return nil, fmt.Errorf("translations request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if history.Translations == nil {
		return []models.TranslationRecord{}, nil
	}
	return history.Translations, nil
}

// DeleteTranslation implements [ServerAdapter]. It DELETEs
// /api/translations/{id}.
func (h *httpServerAdapter) DeleteTranslation(ctx context.Context, token string, id int64) error {
	resp, err := h.authedRequest(ctx, token).
		Delete("/api/translations/" + strconv.FormatInt(id, 10))
	if err != nil {
		return fmt.Errorf("delete translation request: %w", err)
	}

	return mapHTTPError(resp)
}

// ClearTranslations implements [ServerAdapter]. It DELETEs /api/translations,
// removing the whole history of the account.
func (h *httpServerAdapter) ClearTranslations(ctx context.Context, token string) error {
	resp, err := h.authedRequest(ctx, token).
		Delete("/api/translations")
	if err != nil {
		return fmt.Errorf("clear translations request: %w", err)
	}

	return mapHTTPError(resp)
}

// TranslateImage implements [ServerAdapter]. It uploads the image bytes as a
// multipart form field named "image" to POST /api/translate-image and returns
// the OCR-extracted text.
func (h *httpServerAdapter) TranslateImage(ctx context.Context, token, filename string, image []byte) (string, error) {
	var result models.OCRResponse

	h.logger.Debug().Str("filename", filename).Int("size", len(image)).Msg("uploading image for ocr")

	resp, err := h.authedRequest(ctx, token).
		SetFileReader("image", filename, bytes.NewReader(image)).
		SetResult(&result).
		Post("/api/translate-image")
	if err != nil {
		return "", fmt.Errorf("translate image request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return result.OriginalText, nil
}

// request builds a base request with a fresh X-Request-Id so server and
// client log entries for the same call can be correlated. The content type is
// left to resty, which picks JSON for struct bodies and multipart when file
// readers are attached.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("X-Request-Id", uuid.NewString())
}

func (h *httpServerAdapter) authedRequest(ctx context.Context, token string) *resty.Request {
	req := h.request(ctx)
	if token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
