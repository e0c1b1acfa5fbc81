package models

// User is the profile of the authenticated account as the server reports it.
// The server is the source of truth for every field: the client replaces the
// whole value after login, register, profile fetch, profile save, and avatar
// update. Field-wise local edits go through [ProfilePatch].
type User struct {
	// ID is the server-assigned account identifier.
	ID int64 `json:"id"`

	// Name is the display name shown in the UI.
	Name string `json:"name"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// PreferredLanguage is the default target language for translations
	// (ISO 639-1 code, e.g. "pt").
	PreferredLanguage string `json:"preferred_language"`

	// Theme is the UI theme preference ("light" or "dark").
	Theme string `json:"theme"`

	// Notifications reports whether the user opted into notifications.
	Notifications bool `json:"notifications"`

	// AutoDetectLanguage reports whether translations should default to
	// automatic source-language detection.
	AutoDetectLanguage bool `json:"auto_detect_language"`

	// AvatarURL holds the avatar image reference. The server derives it
	// from the uploaded image; the client never computes it.
	AvatarURL string `json:"avatar_url"`

	// CreatedAt is the account creation timestamp.
	CreatedAt Timestamp `json:"created_at"`

	// UpdatedAt is the timestamp of the last server-side profile change.
	UpdatedAt Timestamp `json:"updated_at"`
}

// ProfilePatch is a partial profile update. Only non-nil fields are sent to
// the server (PUT /api/profile) and only those fields are changed; the server
// replies with the full updated [User].
type ProfilePatch struct {
	Name               *string `json:"name,omitempty"`
	Email              *string `json:"email,omitempty"`
	PreferredLanguage  *string `json:"preferred_language,omitempty"`
	Theme              *string `json:"theme,omitempty"`
	Notifications      *bool   `json:"notifications,omitempty"`
	AutoDetectLanguage *bool   `json:"auto_detect_language,omitempty"`
	AvatarURL          *string `json:"avatar_url,omitempty"`
}
