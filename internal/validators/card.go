package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-flashcards/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	FieldFront     = "front"
	FieldBack      = "back"
	FieldFrontLang = "frontLang"
	FieldBackLang  = "backLang"
	FieldCategory  = "category"
)

// draftFields are checked when no explicit field list is given. Languages
// are not blocking because a normalized draft always carries them.
var draftFields = []string{FieldFront, FieldBack, FieldCategory}

// CardValidator implements [Validator] for card drafts: [models.CardFields]
// and [models.FlashCard], by value or pointer.
type CardValidator struct{}

// NewCardValidator constructs a [CardValidator].
func NewCardValidator() Validator {
	return &CardValidator{}
}

// Validate dispatches on the type of obj and checks the named fields, or the
// draft rules when fields is empty.
func (v *CardValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.CardFields:
		return v.validateCardFields(value, fields...)
	case *models.CardFields:
		return v.validateCardFields(*value, fields...)
	case models.FlashCard:
		return v.validateCardFields(value.Fields(), fields...)
	case *models.FlashCard:
		return v.validateCardFields(value.Fields(), fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *CardValidator) validateCardFields(card models.CardFields, fields ...string) error {
	if len(fields) == 0 {
		fields = draftFields
	}

	for _, f := range fields {
		switch f {
		case FieldFront:
			front := strings.TrimSpace(card.Front)
			if front == "" {
				return newValidationError(FieldFront, MsgFrontBackRequired)
			}
			if utf8.RuneCountInString(front) > models.MaxSideLength {
				return newValidationError(FieldFront, MsgFrontTooLong)
			}
		case FieldBack:
			back := strings.TrimSpace(card.Back)
			if back == "" {
				return newValidationError(FieldBack, MsgFrontBackRequired)
			}
			if utf8.RuneCountInString(back) > models.MaxSideLength {
				return newValidationError(FieldBack, MsgBackTooLong)
			}
		case FieldFrontLang:
			if strings.TrimSpace(card.FrontLang) == "" {
				return newValidationError(FieldFrontLang, MsgMissingRequiredFields)
			}
		case FieldBackLang:
			if strings.TrimSpace(card.BackLang) == "" {
				return newValidationError(FieldBackLang, MsgMissingRequiredFields)
			}
		case FieldCategory:
			if card.Category != nil && utf8.RuneCountInString(strings.TrimSpace(*card.Category)) > models.MaxCategoryLength {
				return newValidationError(FieldCategory, MsgCategoryTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// ValidateDraft applies the card form rules: trimmed front and back must be
// non-empty, and the side and category length limits hold.
func ValidateDraft(card models.CardFields) error {
	return (&CardValidator{}).validateCardFields(card)
}

// TrimFields trims every string of the card and turns a blank category into nil.
func TrimFields(card models.CardFields) models.CardFields {
	card.Front = strings.TrimSpace(card.Front)
	card.Back = strings.TrimSpace(card.Back)
	card.FrontLang = strings.TrimSpace(card.FrontLang)
	card.BackLang = strings.TrimSpace(card.BackLang)
	if card.Category != nil {
		card.Category = models.NewCategory(*card.Category)
	}

	return card
}

// NormalizeDraft trims the draft and fills missing languages with the
// defaults a new card starts with.
func NormalizeDraft(card models.CardFields) models.CardFields {
	card = TrimFields(card)
	if card.FrontLang == "" {
		card.FrontLang = models.DefaultFrontLang
	}
	if card.BackLang == "" {
		card.BackLang = models.DefaultBackLang
	}

	return card
}
