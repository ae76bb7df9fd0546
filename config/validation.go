package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("level", validateLevel); err != nil {
		panic(err)
	}

	// Report field names as they appear in the TOML file
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateLevel(fl validator.FieldLevel) bool {
	switch strings.ToLower(fl.Field().String()) {
	case "silly", "trace", "debug", "verbose", "info", "warn", "warning", "error":
		return true
	}
	return false
}

// ValidationError describes one invalid field
type ValidationError struct {
	Field   string
	Message string
}

// ValidationErrors collects every invalid field of a Config
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "validation failed with %d error(s):", len(ve))
	for i, err := range ve {
		fmt.Fprintf(&sb, "\n  %d. %s: %s", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// Validate checks c and returns ValidationErrors when fields are invalid.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var validatorErrs validator.ValidationErrors
	if !errors.As(err, &validatorErrs) {
		return err
	}

	result := make(ValidationErrors, 0, len(validatorErrs))
	for _, e := range validatorErrs {
		result = append(result, ValidationError{
			Field:   fieldPath(e.Namespace()),
			Message: validationMessage(e),
		})
	}
	return result
}

// fieldPath drops the struct name from a validator namespace.
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "level":
		return fmt.Sprintf("unknown level %q", e.Value())
	case "printascii":
		return "must contain printable ASCII only"
	case "max":
		return fmt.Sprintf("must be at most %s characters", e.Param())
	default:
		return fmt.Sprintf("failed %q validation", e.Tag())
	}
}
