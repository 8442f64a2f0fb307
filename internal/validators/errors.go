package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyName       = errors.New("name is required")
	ErrInvalidEmail    = errors.New("a valid email address is required")
	ErrPasswordTooWeak = errors.New("password must be at least 8 characters")
	ErrEmptyPassword   = errors.New("password is required")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD form")
	ErrNoMealsMarked   = errors.New("at least one meal must be marked")
	ErrEmptyItems      = errors.New("item description is required")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrInvalidStatus   = errors.New("unknown status value")
	ErrInvalidRole     = errors.New("unknown role value")
)
