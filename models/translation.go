package models

// TranslationRecord is one entry of the server-side translation history.
// Identity is ID, assigned by the server; records are immutable once created
// and only ever removed. The client keeps them in server order
// (most recent first).
type TranslationRecord struct {
	// ID is the server-assigned record identifier.
	ID int64 `json:"id"`

	// UserID is the owner of the record.
	UserID int64 `json:"user_id"`

	// SourceText is the original text that was translated.
	SourceText string `json:"source_text"`

	// TranslatedText is the translation result.
	TranslatedText string `json:"translated_text"`

	// SourceLanguage is the language the text was translated from. When the
	// translation ran with auto-detection this holds the detected language.
	SourceLanguage string `json:"source_language"`

	// TargetLanguage is the language the text was translated into.
	TargetLanguage string `json:"target_language"`

	// DetectedLanguage is set when the server reported a detection result
	// for this record separately from SourceLanguage.
	DetectedLanguage string `json:"detected_language,omitempty"`

	// CreatedAt is the server-side creation timestamp.
	CreatedAt Timestamp `json:"created_at"`
}
