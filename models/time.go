package models

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts are tried in order when decoding server timestamps. The
// server serialises datetimes without a timezone offset, so plain RFC 3339
// decoding would fail on its output.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// Timestamp is a time.Time that accepts the timestamp formats emitted by the
// translation server in addition to RFC 3339.
type Timestamp struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler. An empty or null value decodes
// to the zero Timestamp.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("unsupported timestamp format: %q", s)
}

// MarshalJSON implements json.Marshaler using RFC 3339 with nanoseconds.
// The zero value marshals as null.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}
