package service

import "strings"

// userMessage turns an adapter error into the message shown to the user.
// The adapter wraps the server's body as "<sentinel>: <body>", so the last
// segment is the server's own text; when nothing usable is left the
// operation-specific fallback is used instead.
func userMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	if idx := strings.LastIndex(msg, ": "); idx != -1 {
		msg = msg[idx+2:]
	}
	if strings.TrimSpace(msg) == "" {
		return fallback
	}
	return msg
}
