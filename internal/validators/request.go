// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// RequestValidator implements [Validator] for decoded request bodies using
// the `validate` struct tags of the model types.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a [RequestValidator]. Field names in
// reported errors are taken from the json tags.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given only
// those struct fields are checked. The first violation is returned as a
// [*ValidationError].
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}
	if err == nil {
		return nil
	}

	var invalidErr *validator.InvalidValidationError
	if errors.As(err, &invalidErr) {
		return fmt.Errorf("%w: %w", ErrUnsupportedType, err)
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	return newValidationError(fieldErrs[0].Field(), messageFor(fieldErrs[0]))
}

func messageFor(fe validator.FieldError) string {
	if fe.Tag() != "max" {
		return MsgMissingRequiredFields
	}

	switch fe.Field() {
	case FieldFront:
		return MsgFrontTooLong
	case FieldBack:
		return MsgBackTooLong
	case FieldCategory:
		return MsgCategoryTooLong
	default:
		return fmt.Sprintf("%s is too long", fe.Field())
	}
}
