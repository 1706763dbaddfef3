package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// Card store failures. Each wraps the gateway error that caused it.
	ErrLoadFailed   = errors.New("failed to load cards")
	ErrCreateFailed = errors.New("failed to create card")
	ErrUpdateFailed = errors.New("failed to update card")
	ErrDeleteFailed = errors.New("failed to delete card")

	// ErrCardNotFound additionally marks update and delete failures caused by
	// a card that no longer exists.
	ErrCardNotFound = errors.New("card not found")

	ErrOperationInFlight  = errors.New("operation already in progress")
	ErrSubmissionInFlight = errors.New("submission already in progress")

	ErrNoLanguagesSelected = errors.New("Please select at least one language")
	ErrEmptyResult         = errors.New("No cards to export for the selected criteria")
	ErrUnknownExportType   = errors.New("unknown export type")
	ErrUnknownFilterMode   = errors.New("unknown filter mode")
	ErrExportFailed        = errors.New("failed to export cards")
	ErrClipboardFailed     = errors.New("failed to copy to clipboard")

	ErrImportTooLarge      = errors.New("File size must be less than 5MB")
	ErrImportInvalidType   = errors.New("Only JSON files are supported")
	ErrImportInvalidFormat = errors.New("Invalid file format")
	ErrImportFailed        = errors.New("failed to import cards")
)
