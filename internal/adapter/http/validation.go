package http

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Reusable error payload
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}
type ErrorResponse struct {
	Error   string       `json:"error"`
	Details []FieldError `json:"details,omitempty"`
}

var (
	reUserID = regexp.MustCompile(`^[A-Za-z0-9._-]{1,32}$`)
	reYard   = regexp.MustCompile(`^Y[1-3]$`)
)

type CustomValidator struct{ v *validator.Validate }

func NewValidator() *CustomValidator {
	v := validator.New()

	// yard workstation code: Y1, Y2 or Y3
	_ = v.RegisterValidation("yard", func(fl validator.FieldLevel) bool {
		return reYard.MatchString(fl.Field().String())
	})
	// username / employee number
	_ = v.RegisterValidation("userid", func(fl validator.FieldLevel) bool {
		return reUserID.MatchString(fl.Field().String())
	})
	// allocation role
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "WELDER" || s == "FOREMAN"
	})

	return &CustomValidator{v: v}
}

func (cv *CustomValidator) Validate(i any) error { return cv.v.Struct(i) }

// Map validator.ValidationErrors → []FieldError with readable messages.
func ToFieldErrors(err error) []FieldError {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "_", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(ve))
	for _, e := range ve {
		field := e.Field()
		switch e.Tag() {
		case "required":
			out = append(out, FieldError{Field: field, Message: "is required"})
		case "yard":
			out = append(out, FieldError{Field: field, Message: "must be a yard code (Y1, Y2 or Y3)"})
		case "userid":
			out = append(out, FieldError{Field: field, Message: "must be 1-32 chars of letters, digits, dot, dash or underscore"})
		case "role":
			out = append(out, FieldError{Field: field, Message: "must be WELDER or FOREMAN"})
		case "datetime":
			out = append(out, FieldError{Field: field, Message: "must be a date in YYYY-MM-DD form"})
		case "gte":
			out = append(out, FieldError{Field: field, Message: "must be greater than or equal to " + e.Param()})
		case "min":
			out = append(out, FieldError{Field: field, Message: "must have at least " + e.Param() + " entries"})
		default:
			out = append(out, FieldError{Field: field, Message: e.Tag() + " validation failed"})
		}
	}
	return out
}
