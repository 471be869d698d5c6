package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldMessages overrides the generic message for a field/tag pair. The
// wording matches what the web client shows for the same rules.
var FieldMessages = map[string]map[string]string{
	"fullName": {
		"required":    "Full name is required",
		"min":         "Full name must be at least 2 characters",
		"max":         "Full name must be less than 50 characters",
		"alpha_space": "Full name should only contain letters and spaces",
	},
	"email": {
		"required": "Email is required",
		"email":    "Please enter a valid email address",
		"min":      "Email is too short",
		"max":      "Email is too long",
	},
	"phone": {
		"valid_phone": "Please enter a valid phone number",
	},
	"location": {
		"min": "Location must be at least 2 characters",
	},
	"summary": {
		"min": "Summary should be between 50-500 characters for best results",
		"max": "Summary should be between 50-500 characters for best results",
	},
	"skills": {
		"required": "Please add at least one skill",
		"min":      "Please add at least 3 skills separated by commas",
	},
	"experience": {
		"required": "Please provide more details about your experience (at least 20 characters)",
		"min":      "Please provide more details about your experience (at least 20 characters)",
		"max":      "Experience description is too long",
	},
	"education": {
		"required": "Please provide your educational background (at least 10 characters)",
		"min":      "Please provide your educational background (at least 10 characters)",
		"max":      "Education description is too long",
	},
	"jobTitle": {
		"required": "Job title is required",
	},
	"message": {
		"required": "Message is required",
	},
	"answer": {
		"required": "Answer is required",
	},
}

// FormatValidationErrors converts validator.ValidationErrors to a map of
// JSON field name to message. Only the first failure per field is kept.
func FormatValidationErrors(err error) map[string]string {
	messages := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		messages["_"] = err.Error()
		return messages
	}

	for _, e := range validationErrors {
		field := e.Field()
		if _, seen := messages[field]; seen {
			continue
		}
		messages[field] = formatSingleError(e)
	}

	return messages
}

func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	tag := e.Tag()
	if byTag, ok := FieldMessages[field]; ok {
		if msg, ok := byTag[tag]; ok {
			return msg
		}
	}

	label := formatCamelCase(field)
	param := e.Param()

	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s must contain at least %s items", label, param)
		}
		return fmt.Sprintf("%s must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s must be at most %s", label, param)
	case "email":
		return fmt.Sprintf("%s is not a valid email address", label)
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", label, param)
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, tag)
	}
}

// formatCamelCase turns "jobTitle" into "Job title".
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		switch {
		case i == 0:
			result.WriteString(strings.ToUpper(string(r)))
		case r >= 'A' && r <= 'Z':
			result.WriteRune(' ')
			result.WriteString(strings.ToLower(string(r)))
		default:
			result.WriteRune(r)
		}
	}
	return result.String()
}
