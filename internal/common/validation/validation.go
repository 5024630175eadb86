package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidID marks identifiers that do not match the persistence
	// layer's token format. Callers convert it to a clean 404 before
	// any repository lookup happens.
	ErrInvalidID = errors.New("invalid id format")

	ErrInvalidEmail = errors.New("invalid email address")
)

// ValidationError carries the first failing field and its
// human-readable message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func AsValidationError(err error) (*ValidationError, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr, true
	}
	return nil, false
}

type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	// Report fields by their json names so messages match the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct checks the struct's validate tags and returns a
// ValidationError for the first offending field.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		return &ValidationError{Field: fe.Field(), Message: messageFor(fe)}
	}

	return err
}

func (v *Validator) Email(email string) error {
	if err := v.validate.Var(email, "required,email"); err != nil {
		return ErrInvalidEmail
	}
	return nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fe.Field(), fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}

var recordIDRegex = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// ValidateRecordID rejects malformed identifiers before they reach the
// storage layer, where they would otherwise surface as driver errors.
func ValidateRecordID(id string) error {
	if !recordIDRegex.MatchString(id) {
		return ErrInvalidID
	}
	return nil
}
