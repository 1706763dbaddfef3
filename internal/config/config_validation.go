// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the server configuration.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	switch cfg.Adapter.Gateway {
	case GatewayRemote:
		if cfg.Adapter.HTTPAddress == "" {
			return fmt.Errorf("%w: remote gateway needs a server address", ErrInvalidAdapterConfigs)
		}
	case GatewayLocal:
	default:
		return fmt.Errorf("%w: unknown gateway %q", ErrInvalidAdapterConfigs, cfg.Adapter.Gateway)
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.RetryCount < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: empty database DSN", ErrInvalidStorageConfigs)
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
