package models

// APIError is the uniform error body of the translation server. Every non-2xx
// response carries at most a human-readable Message; the client surfaces it
// as the error text and falls back to a generic message when it is absent.
type APIError struct {
	Message string `json:"message"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is the success body of both login and register. Registration
// returns a fresh token together with the created user (auto-login).
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ProfileResponse wraps the user object returned by the profile endpoints.
type ProfileResponse struct {
	User User `json:"user"`
}

// AvatarRequest is the body of POST /api/profile/avatar. Avatar is the
// base64-encoded image, optionally with a data-URL prefix; the server strips
// the prefix and validates the payload.
type AvatarRequest struct {
	Avatar string `json:"avatar"`
}

// TranslateRequest is the body of POST /api/translate. Source is "auto" when
// the caller asked for automatic language detection.
type TranslateRequest struct {
	Text   string `json:"text"`
	Source string `json:"source"`
	Target string `json:"target"`
}

// TranslateResponse is the success body of POST /api/translate.
type TranslateResponse struct {
	TranslatedText   string `json:"translated_text"`
	DetectedLanguage string `json:"detected_language"`
}

// DetectRequest is the body of POST /api/detect.
type DetectRequest struct {
	Text string `json:"text"`
}

// DetectResponse is the success body of POST /api/detect. Confidence is the
// detection confidence reported by the translation engine, in percent.
type DetectResponse struct {
	DetectedLanguage string  `json:"detected_language"`
	Confidence       float64 `json:"confidence"`
}

// HistoryResponse is the success body of GET /api/translations.
type HistoryResponse struct {
	Translations []TranslationRecord `json:"translations"`
}

// OCRResponse is the success body of POST /api/translate-image.
type OCRResponse struct {
	OriginalText string `json:"original_text"`
}
