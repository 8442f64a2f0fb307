package validators

import (
	"context"
	"net/mail"

	"github.com/bachelormess/mess-manager/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldName targets the display name of a registration payload.
	FieldName = "name"

	// FieldEmail targets the email address of a registration or login payload.
	FieldEmail = "email"

	// FieldPassword targets the plain-text password of a registration payload,
	// including the minimum-length rule.
	FieldPassword = "password"

	// FieldLoginPassword targets the password of a login payload. Only
	// presence is checked; length rules apply at registration time.
	FieldLoginPassword = "login_password"

	// FieldDate targets the YYYY-MM-DD date of a meal or bazar payload.
	FieldDate = "date"

	// FieldMeals targets the breakfast/lunch/dinner markers of a meal payload.
	FieldMeals = "meals"

	// FieldItems targets the item description of a bazar payload.
	FieldItems = "items"

	// FieldAmount targets the amount of a bazar payload.
	FieldAmount = "amount"

	// FieldStatus targets the moderation or account status of an update payload.
	FieldStatus = "status"

	// FieldRole targets the role of a role-assignment payload.
	FieldRole = "role"
)

// minPasswordLength is the shortest password accepted at registration.
const minPasswordLength = 8

// RequestValidator implements the Validator interface for all inbound
// request payloads: RegisterRequest, LoginRequest, MealRequest,
// BazarRequest, StatusUpdateRequest, RoleUpdateRequest and
// UserStatusUpdateRequest.
//
// It supports both value and pointer receivers for every payload type
// and allows optional field-level scoping via variadic field name arguments.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator and returns it as
// the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported payload are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known payload.
// Optional fields restrict validation to the named subset; when omitted,
// every field of the payload is validated.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegister(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegister(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLogin(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLogin(ctx, *value, fields...)

	case models.MealRequest:
		return v.validateMeal(ctx, value, fields...)
	case *models.MealRequest:
		return v.validateMeal(ctx, *value, fields...)

	case models.BazarRequest:
		return v.validateBazar(ctx, value, fields...)
	case *models.BazarRequest:
		return v.validateBazar(ctx, *value, fields...)

	case models.StatusUpdateRequest:
		return v.validateApprovalStatus(ctx, value.Status)
	case *models.StatusUpdateRequest:
		return v.validateApprovalStatus(ctx, value.Status)

	case models.RoleUpdateRequest:
		return v.validateRole(ctx, value.Role)
	case *models.RoleUpdateRequest:
		return v.validateRole(ctx, value.Role)

	case models.UserStatusUpdateRequest:
		return v.validateUserStatus(ctx, value.Status)
	case *models.UserStatusUpdateRequest:
		return v.validateUserStatus(ctx, value.Status)

	default:
		return ErrUnsupportedType
	}
}

// isValidEmail reports whether the address parses as a bare RFC 5322
// address. Display names are not accepted.
func isValidEmail(address string) bool {
	parsed, err := mail.ParseAddress(address)
	return err == nil && parsed.Address == address
}

func (v *RequestValidator) validateRegister(_ context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if req.Name == "" {
				return ErrEmptyName
			}
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
			if len(req.Password) < minPasswordLength {
				return ErrPasswordTooWeak
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateLogin(_ context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldLoginPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isValidEmail(req.Email) {
				return ErrInvalidEmail
			}
		case FieldLoginPassword:
			if req.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateMeal(_ context.Context, req models.MealRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldMeals}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if _, err := models.RequestDate(req.Date); err != nil {
				return ErrInvalidDate
			}
		case FieldMeals:
			if !req.Breakfast && !req.Lunch && !req.Dinner {
				return ErrNoMealsMarked
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateBazar(_ context.Context, req models.BazarRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldDate, FieldItems, FieldAmount}
	}

	for _, f := range fields {
		switch f {
		case FieldDate:
			if _, err := models.RequestDate(req.Date); err != nil {
				return ErrInvalidDate
			}
		case FieldItems:
			if req.Items == "" {
				return ErrEmptyItems
			}
		case FieldAmount:
			if req.Amount <= 0 {
				return ErrInvalidAmount
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *RequestValidator) validateApprovalStatus(_ context.Context, status models.ApprovalStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}

func (v *RequestValidator) validateRole(_ context.Context, role models.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	return nil
}

func (v *RequestValidator) validateUserStatus(_ context.Context, status models.UserStatus) error {
	if !status.Valid() {
		return ErrInvalidStatus
	}
	return nil
}
