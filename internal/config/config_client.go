package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultServerAddress   = "localhost:5000"
	defaultRequestTimeout  = 15 * time.Second
	defaultRefreshInterval = 5 * time.Minute
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerAddress is the translation server address used by the client.
	ServerAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups the client's local persistence settings.
type ClientStorage struct {
	// TokenFile is the path of the persisted session token slot.
	TokenFile string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// HistoryRefreshInterval defines how often the background history
	// refresh job should run.
	HistoryRefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
	// Storage contains local persistence settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the merged
// structured configuration. Unset values fall back to defaults: the local
// development server address, a 15s request timeout, a 5m history refresh
// interval, and a token file under the user's home directory.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerAddress:  cfg.Adapter.ServerAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			TokenFile: cfg.Storage.TokenFile,
		},
		Workers: ClientWorkers{
			HistoryRefreshInterval: cfg.Workers.HistoryRefreshInterval,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.ServerAddress == "" {
		cfg.Adapter.ServerAddress = defaultServerAddress
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = defaultRequestTimeout
	}
	if cfg.Workers.HistoryRefreshInterval <= 0 {
		cfg.Workers.HistoryRefreshInterval = defaultRefreshInterval
	}
	if cfg.Storage.TokenFile == "" {
		cfg.Storage.TokenFile = defaultTokenFile()
	}
}

// defaultTokenFile places the token slot under the user's home directory so
// the session survives restarts; if the home directory cannot be resolved the
// slot lives next to the working directory.
func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "traduzo_session.json"
	}
	return filepath.Join(home, ".traduzo", "session.json")
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.TokenFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Workers.HistoryRefreshInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
