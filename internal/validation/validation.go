// Package validation configures go-playground/validator for the service and turns
// its failures into per-field errs.Validation errors.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/thereayou/socialgraph/internal/errs"
)

// labels overrides the human name derived from a struct field name.
var labels = map[string]string{
	"Dob":            "Date of birth",
	"ProfilePhotoID": "Profile photo id",
}

// New returns a validator reading `validate` tags.
func New() *validator.Validate {
	v := validator.New()
	Configure(v)
	return v
}

// Configure registers the custom rules and reports fields by their JSON names. It is
// applied to gin's binding engine as well.
func Configure(v *validator.Validate) {
	v.RegisterTagNameFunc(jsonName)
	// rule names are constants, registration cannot fail
	_ = v.RegisterValidation("past", past)
	_ = v.RegisterValidation("notblank", validators.NotBlank)
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// past accepts a time strictly before now.
func past(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return t.Before(time.Now())
}

// Struct validates s and returns an errs.Validation error describing every failing
// field, or nil.
func Struct(v *validator.Validate, s any) error {
	return FromError(v.Struct(s))
}

// FromError converts a validator (or decoding) failure into errs.Validation.
func FromError(err error) error {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return errs.Internal(err)
		}
		return errs.Validation(map[string]string{"body": "Malformed request body"})
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = Message(fe)
	}
	return errs.Validation(fields)
}

// Message renders one field failure, e.g. "Name is required".
func Message(fe validator.FieldError) string {
	label := Label(fe.StructField())

	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters long", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	case "notblank":
		return label + " must not be blank"
	case "email":
		return label + " must be a valid email address"
	case "past":
		return label + " must be in the past"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as %s", label, fe.Param())
	case "uuid":
		return label + " must be a valid id"
	}
	return label + " is invalid"
}

// Label turns a Go field name into a sentence-case label: UserType -> "User type".
func Label(field string) string {
	if l, ok := labels[field]; ok {
		return l
	}

	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && !unicode.IsUpper(runes[i-1]) {
			b.WriteRune(' ')
		}
		if i > 0 {
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}
