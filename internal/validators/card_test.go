// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-flashcards/models"
)

func ptr(s string) *string { return &s }

func validDraft() models.CardFields {
	return models.CardFields{
		Front:     "Hello",
		Back:      "Hola",
		FrontLang: "English",
		BackLang:  "Spanish",
	}
}

// ---------------------------------------------------------------------------
// ValidateDraft
// ---------------------------------------------------------------------------

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *models.CardFields)
		wantField string
		wantMsg   string
	}{
		{name: "valid", mutate: func(c *models.CardFields) {}},
		{name: "valid without languages", mutate: func(c *models.CardFields) {
			c.FrontLang, c.BackLang = "", ""
		}},
		{name: "empty front", mutate: func(c *models.CardFields) { c.Front = "" },
			wantField: FieldFront, wantMsg: MsgFrontBackRequired},
		{name: "whitespace front", mutate: func(c *models.CardFields) { c.Front = "  \t " },
			wantField: FieldFront, wantMsg: MsgFrontBackRequired},
		{name: "empty back", mutate: func(c *models.CardFields) { c.Back = "\n" },
			wantField: FieldBack, wantMsg: MsgFrontBackRequired},
		{name: "front at limit", mutate: func(c *models.CardFields) {
			c.Front = strings.Repeat("a", models.MaxSideLength)
		}},
		{name: "front over limit", mutate: func(c *models.CardFields) {
			c.Front = strings.Repeat("a", models.MaxSideLength+1)
		}, wantField: FieldFront, wantMsg: MsgFrontTooLong},
		{name: "back over limit", mutate: func(c *models.CardFields) {
			c.Back = strings.Repeat("b", models.MaxSideLength+1)
		}, wantField: FieldBack, wantMsg: MsgBackTooLong},
		{name: "multibyte runes count once", mutate: func(c *models.CardFields) {
			c.Back = strings.Repeat("ễ", models.MaxSideLength)
		}},
		{name: "category over limit", mutate: func(c *models.CardFields) {
			c.Category = ptr(strings.Repeat("c", models.MaxCategoryLength+1))
		}, wantField: FieldCategory, wantMsg: MsgCategoryTooLong},
		{name: "category at limit", mutate: func(c *models.CardFields) {
			c.Category = ptr(strings.Repeat("c", models.MaxCategoryLength))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validDraft()
			tt.mutate(&card)

			err := ValidateDraft(card)
			if tt.wantMsg == "" {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)

			var vErr *ValidationError
			require.True(t, errors.As(err, &vErr))
			assert.Equal(t, tt.wantField, vErr.Field)
			assert.Equal(t, tt.wantMsg, vErr.Error())
		})
	}
}

// ---------------------------------------------------------------------------
// CardValidator
// ---------------------------------------------------------------------------

func TestCardValidator_Dispatch(t *testing.T) {
	v := NewCardValidator()
	ctx := context.Background()
	draft := validDraft()
	card := models.FlashCard{ID: 1}.WithFields(draft)

	assert.NoError(t, v.Validate(ctx, draft))
	assert.NoError(t, v.Validate(ctx, &draft))
	assert.NoError(t, v.Validate(ctx, card))
	assert.NoError(t, v.Validate(ctx, &card))
	assert.ErrorIs(t, v.Validate(ctx, "card"), ErrUnsupportedType)
}

func TestCardValidator_FieldScoping(t *testing.T) {
	v := NewCardValidator()
	ctx := context.Background()
	draft := models.CardFields{Front: "x", Back: "y"}

	assert.NoError(t, v.Validate(ctx, draft), "languages are not part of the draft rules")
	assert.ErrorIs(t, v.Validate(ctx, draft, FieldFrontLang), ErrValidation)
	assert.ErrorIs(t, v.Validate(ctx, draft, FieldBackLang), ErrValidation)
	assert.NoError(t, v.Validate(ctx, models.CardFields{}, FieldCategory))
	assert.ErrorIs(t, v.Validate(ctx, draft, "notes"), ErrUnknownField)
}

// ---------------------------------------------------------------------------
// NormalizeDraft / TrimFields
// ---------------------------------------------------------------------------

func TestNormalizeDraft(t *testing.T) {
	got := NormalizeDraft(models.CardFields{
		Front:    "  Hello ",
		Back:     "\tXin chào\n",
		Category: ptr("   "),
	})

	assert.Equal(t, "Hello", got.Front)
	assert.Equal(t, "Xin chào", got.Back)
	assert.Equal(t, models.DefaultFrontLang, got.FrontLang)
	assert.Equal(t, models.DefaultBackLang, got.BackLang)
	assert.Nil(t, got.Category, "blank category becomes nil")
}

func TestNormalizeDraft_KeepsExplicitValues(t *testing.T) {
	got := NormalizeDraft(models.CardFields{
		Front:     "a",
		Back:      "b",
		FrontLang: " German ",
		BackLang:  "French",
		Category:  ptr(" verbs "),
	})

	assert.Equal(t, "German", got.FrontLang)
	assert.Equal(t, "French", got.BackLang)
	require.NotNil(t, got.Category)
	assert.Equal(t, "verbs", *got.Category)
}

func TestTrimFields_NoLanguageDefaults(t *testing.T) {
	got := TrimFields(models.CardFields{Front: " a ", Back: " b "})

	assert.Equal(t, "a", got.Front)
	assert.Empty(t, got.FrontLang)
	assert.Empty(t, got.BackLang)
}

func TestTrimFields_DoesNotAliasInput(t *testing.T) {
	category := " verbs "
	in := models.CardFields{Category: &category}

	_ = TrimFields(in)
	assert.Equal(t, " verbs ", category)
}
