package domain

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var factValidator = newFactValidator()

func newFactValidator() *validator.Validate {
	v := validator.New()

	// Report json field names so errors line up with request bodies.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return IsHTTPURL(fl.Field().String())
	})
	_ = v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		return Category(fl.Field().String()).IsValid()
	})

	return v
}

// IsHTTPURL reports whether s parses as an absolute URL with scheme http or
// https and a non-empty host.
func IsHTTPURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}

// Normalize trims surrounding whitespace from the text and source.
func (n NewFact) Normalize() NewFact {
	n.Text = strings.TrimSpace(n.Text)
	n.Source = strings.TrimSpace(n.Source)
	return n
}

// Validate checks all fields and collects all errors. Callers are expected to
// Normalize first.
func (n NewFact) Validate() error {
	err := factValidator.Struct(n)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate fact: %w", err)
	}

	fields := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return NewValidationErrors(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "max":
		return fmt.Sprintf("max %s characters", fe.Param())
	case "httpurl":
		return "must be an absolute http or https URL"
	case "category":
		return "unknown category"
	}
	return "invalid"
}
