// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-flashcards/internal/adapter"
	"github.com/MKhiriev/go-flashcards/internal/validators"
)

// mapGatewayError wraps a gateway failure into the card store error op. A
// missing card additionally matches [ErrCardNotFound].
func mapGatewayError(op error, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrNotFound) {
		return fmt.Errorf("%w: %w: %w", op, ErrCardNotFound, err)
	}

	return fmt.Errorf("%w: %w", op, err)
}

// UserMessage returns the text shown to the user for an error produced by
// the client services.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var vErr *validators.ValidationError
	switch {
	case errors.As(err, &vErr):
		return vErr.Message
	case errors.Is(err, ErrNoLanguagesSelected):
		return ErrNoLanguagesSelected.Error()
	case errors.Is(err, ErrEmptyResult):
		return ErrEmptyResult.Error()
	case errors.Is(err, ErrImportTooLarge):
		return ErrImportTooLarge.Error()
	case errors.Is(err, ErrImportInvalidType):
		return ErrImportInvalidType.Error()
	case errors.Is(err, ErrImportInvalidFormat):
		return ErrImportInvalidFormat.Error()
	case errors.Is(err, ErrOperationInFlight), errors.Is(err, ErrSubmissionInFlight):
		return "Please wait for the current operation to finish"
	case errors.Is(err, ErrCardNotFound):
		return "Card not found"
	case errors.Is(err, ErrLoadFailed):
		return "Failed to load cards"
	case errors.Is(err, ErrCreateFailed):
		return "Failed to add card"
	case errors.Is(err, ErrUpdateFailed):
		return "Failed to update card"
	case errors.Is(err, ErrDeleteFailed):
		return "Failed to delete card"
	case errors.Is(err, ErrClipboardFailed):
		return "Failed to copy to clipboard"
	case errors.Is(err, ErrExportFailed):
		return "Failed to export cards"
	case errors.Is(err, ErrImportFailed):
		return "Failed to import cards"
	default:
		return err.Error()
	}
}
