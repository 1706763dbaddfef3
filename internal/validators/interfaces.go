// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the card field rules shared by the card service
// and the client card form.
//
// Two [Validator] implementations exist:
//   - [CardValidator] enforces the card form rules (front and back required
//     after trimming, side and category length limits) with optional
//     field-level scoping.
//   - [RequestValidator] checks decoded request bodies against their
//     `validate` struct tags.
//
// Both report violations as [*ValidationError], which matches [ErrValidation].
package validators

import "context"

// Validator validates an arbitrary value, optionally restricted to the
// named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
