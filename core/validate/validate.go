package validate

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
)

// ErrInvalid is the sentinel all validation failures unwrap to.
var ErrInvalid = errors.New("validation error")

// Error provides programmatic access to field-level validation failures.
type Error struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, field := range names {
		parts = append(parts, field+": "+e.Fields[field])
	}
	return fmt.Sprintf("%s: %s", ErrInvalid.Error(), strings.Join(parts, "; "))
}

func (e *Error) Unwrap() error {
	return ErrInvalid
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("langtag", func(fl validator.FieldLevel) bool {
		return IsLanguageTag(fl.Field().String())
	})
	return v
}

// IsLanguageTag reports whether s is a well-formed BCP 47 language tag.
func IsLanguageTag(s string) bool {
	if s == "" {
		return false
	}
	_, err := language.Parse(s)
	return err == nil
}

// Struct validates a struct (or pointer to struct) using its validate tags.
func Struct(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		msg := fmt.Sprintf("rule '%s'", fe.Tag())
		if fe.Param() != "" {
			msg += fmt.Sprintf(" expected '%s'", fe.Param())
		}
		msg += fmt.Sprintf(", got '%v'", fe.Value())
		fields[fe.Namespace()] = msg
	}
	return &Error{Fields: fields}
}
