package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// CandidateProfile fields
	"FullName":            "Full Name",
	"Nationality":         "Nationality",
	"TechnicalSkills":     "Technical Skills",
	"LanguageProficiency": "Language Proficiency",
	"ExperienceYears":     "Years of Experience",
	"CulturalAnswers":     "Cultural Assessment Answers",

	// JobProfile fields
	"CompanyName":          "Company Name",
	"Title":                "Job Title",
	"Description":          "Description",
	"Location":             "Location",
	"RequiredSkills":       "Required Skills",
	"CulturalRequirements": "Cultural Requirements",
	"MinExperienceYears":   "Minimum Years of Experience",
	"MaxExperienceYears":   "Maximum Years of Experience",
	"Status":               "Status",

	// Report fields
	"Format":  "Export Format",
	"Columns": "Columns",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: This field is required", label)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: Must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: Must be at most %s", label, param)

	case "gte":
		return fmt.Sprintf("%s: Must be %s or greater", label, param)

	case "oneof":
		return fmt.Sprintf("%s: Must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))

	case "iso_nationality":
		return fmt.Sprintf("%s: Must be a two-letter uppercase country code or OTHER", label)

	case "proficiency_level":
		return fmt.Sprintf("%s: Must be basic, conversational, business, native, or a CEFR/JLPT grade", label)

	case "locale_tag":
		return fmt.Sprintf("%s: Must be a valid language tag (e.g. en, ja-JP)", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: Validation failed (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	// Return field name with spaces between camelCase words
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
