package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("validation error")
)

// User-facing validation messages.
const (
	MsgFrontBackRequired     = "front/back required"
	MsgMissingRequiredFields = "Missing required fields"
	MsgFrontTooLong          = "Front text must be less than 500 characters"
	MsgBackTooLong           = "Back text must be less than 500 characters"
	MsgCategoryTooLong       = "Category must be less than 50 characters"
)

// ValidationError reports the first rule a card violated. Its message is
// shown to the user verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is makes every ValidationError match [ErrValidation].
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func newValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
