// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Response messages of the card API.
const (
	msgInvalidCardID   = "Invalid card ID"
	msgInvalidBody     = "Invalid request body"
	msgBodyTooLarge    = "Request body too large"
	msgCardNotFound    = "Card not found"
	msgCardDeleted     = "Card deleted successfully"
	msgIntegrityFailed = "Integrity check failed"

	msgFetchCardsFailed = "Failed to fetch cards"
	msgFetchCardFailed  = "Failed to fetch card"
	msgCreateFailed     = "Failed to create card"
	msgUpdateFailed     = "Failed to update card"
	msgDeleteFailed     = "Failed to delete card"
)

// errInvalidCardID is returned by cardIDFromRequest for ids that are not
// positive integers.
var errInvalidCardID = errors.New("invalid card id")
