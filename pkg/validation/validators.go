package validation

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// Letters and whitespace only.
	alphaSpaceRegex = regexp.MustCompile(`^[a-zA-Z\s]+$`)

	// Loose international format: optional +, then 7-15 digits, spaces, dashes or parens.
	phoneRegex = regexp.MustCompile(`^[\+]?[0-9\s\-\(\)]{7,15}$`)
)

// New returns a validator with the custom tags registered and field names
// reported by their JSON name.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("alpha_space", AlphaSpace)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
}

// AlphaSpace validates that a string contains only ASCII letters and spaces.
func AlphaSpace(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return alphaSpaceRegex.MatchString(val)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return phoneRegex.MatchString(val)
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
