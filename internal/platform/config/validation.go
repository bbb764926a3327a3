package config

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// dsnPrefixes are the connection string forms the storage adapter can open.
var dsnPrefixes = []string{"postgres://", "postgresql://", "sqlite://", "file:", ":memory:"}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their config key, e.g. database.max_open_conns.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	// Both names are fixed and the funcs non-nil, so registration cannot fail.
	_ = v.RegisterValidation("dsn", isDSN)
	_ = v.RegisterValidation("origin", isOrigin)

	return v
}

func isDSN(fl validator.FieldLevel) bool {
	dsn := strings.ToLower(fl.Field().String())
	for _, prefix := range dsnPrefixes {
		if strings.HasPrefix(dsn, prefix) {
			return true
		}
	}

	return false
}

// isOrigin accepts "*" or a bare scheme://host[:port] origin.
func isOrigin(fl validator.FieldLevel) bool {
	origin := fl.Field().String()
	if origin == "*" {
		return true
	}

	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && (u.Path == "" || u.Path == "/") && u.RawQuery == ""
}

// Validate checks the loaded configuration. The service refuses to start on
// any failure, so every problem is reported at once.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	return nil
}

func formatValidationErrors(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	lines := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		lines = append(lines, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

// formatFieldError renders one failure. Values are never echoed, since
// database.url and database.password may hold credentials.
func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		return field + " is required when enabled"
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return field + " must be a valid URL"
	case "dsn":
		return fmt.Sprintf("%s must start with one of: %s", field, strings.Join(dsnPrefixes, " "))
	case "origin":
		return field + ` must be "*" or an http(s) origin such as https://example.com`
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// formatFieldPath drops the root type from a namespace such as
// "Config.database.max_open_conns".
func formatFieldPath(namespace string) string {
	_, path, found := strings.Cut(namespace, ".")
	if !found {
		return namespace
	}

	return path
}
