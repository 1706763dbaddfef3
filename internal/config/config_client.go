package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// LogFile is the path of the client log file.
	LogFile string
}

// ClientAdapter holds the settings of the client's card gateway.
type ClientAdapter struct {
	// Gateway is [GatewayRemote] or [GatewayLocal].
	Gateway string
	// HTTPAddress is the card service address.
	HTTPAddress string
	// RequestTimeout is the timeout of a single outbound request.
	RequestTimeout time.Duration
	// RetryCount is the number of retries after a failed request.
	RetryCount int
	// RetryWaitTime is the initial back-off between retries.
	RetryWaitTime time.Duration
	// HashKey signs request bodies when non-empty.
	HashKey string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
	// ExportDir is the directory export documents are written to.
	ExportDir string
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the card collection is reloaded.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. The client always has a local database
// (settings live there), so an empty DSN falls back to [DefaultClientDSN].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := loadStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	dsn := cfg.Storage.DB.DSN
	if dsn == "" {
		dsn = DefaultClientDSN
	}

	return &ClientConfig{
		App: ClientApp{
			LogFile: cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			Gateway:        cfg.Adapter.Gateway,
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
			RetryCount:     cfg.Adapter.RetryCount,
			RetryWaitTime:  cfg.Adapter.RetryWaitTime,
			HashKey:        cfg.Security.HashKey,
		},
		Storage: ClientStorage{
			DB:        ClientDB{DSN: dsn},
			ExportDir: cfg.Storage.Files.ExportDir,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
}
