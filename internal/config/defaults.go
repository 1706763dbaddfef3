// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

// Default values applied to every field no other source has set.
const (
	DefaultRequestTimeout = 10 * time.Second
	DefaultRetryCount     = 3
	DefaultRetryWaitTime  = 500 * time.Millisecond
	DefaultExportDir      = "."
	DefaultClientDSN      = "flashcards.db"
)

// Gateway kinds accepted by [Adapter.Gateway].
const (
	GatewayRemote = "remote"
	GatewayLocal  = "local"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		Server: Server{
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			Gateway:        GatewayRemote,
			RequestTimeout: DefaultRequestTimeout,
			RetryCount:     DefaultRetryCount,
			RetryWaitTime:  DefaultRetryWaitTime,
		},
		Storage: Storage{
			Files: Files{ExportDir: DefaultExportDir},
		},
	}
}
