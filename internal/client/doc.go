// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive flashcard client runtime.
//
// It wires the local storages, the card gateway (remote HTTP or local
// SQLite), the client services, the background refresh worker and the
// terminal UI into a single process lifecycle.
package client
