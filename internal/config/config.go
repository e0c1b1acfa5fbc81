package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the traduzo
// client. It aggregates all sub-configurations and is populated by merging
// values from command-line flags, environment variables, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds network address and timeout settings for the remote
	// translation server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local persistence settings (the token slot that
	// keeps the session alive across restarts).
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from flags and environment variables.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter groups the settings of the outbound HTTP transport.
type Adapter struct {
	// ServerAddress is the translation server address in host:port form.
	// The transport layer normalises it to a full base URL.
	ServerAddress string `env:"SERVER_ADDRESS"`

	// RequestTimeout is the timeout applied to every outbound request.
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// TokenFile is the path of the file holding the persisted session
	// token. Use ":memory:" to keep the token in memory only.
	TokenFile string `env:"TOKEN_FILE"`
}

// Workers groups the background job settings.
type Workers struct {
	// HistoryRefreshInterval defines how often the background job
	// refreshes the translation history from the server.
	HistoryRefreshInterval time.Duration `env:"HISTORY_REFRESH_INTERVAL"`
}

// GetStructuredConfig assembles the merged configuration from flags,
// environment variables, and the optional JSON file, in that priority order.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags().
		withEnv().
		withJSON().
		build()
}
