package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// ISO 3166-1 alpha-2 country code, uppercase
	nationalityRegex = regexp.MustCompile(`^[A-Z]{2}$`)

	// BCP 47 primary subtag, optionally followed by a region
	localeRegex = regexp.MustCompile(`^[a-zA-Z]{2,8}([-_][a-zA-Z0-9]{2,8})*$`)
)

// proficiencyLevels lists the canonical rungs plus the CEFR and JLPT
// spellings the scorer folds into them.
var proficiencyLevels = map[string]bool{
	"basic": true, "conversational": true, "business": true, "native": true,
	"a1": true, "a2": true, "b1": true, "b2": true, "c1": true, "c2": true,
	"n1": true, "n2": true, "n3": true, "n4": true, "n5": true,
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("iso_nationality", ISONationality)
	_ = v.RegisterValidation("proficiency_level", ProficiencyLevel)
	_ = v.RegisterValidation("locale_tag", LocaleTag)
}

// ISONationality validates a two-letter uppercase country code.
// "OTHER" is accepted as the catch-all bucket for unlisted nationalities.
func ISONationality(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "OTHER" {
		return true
	}
	return nationalityRegex.MatchString(val)
}

// ProficiencyLevel validates a language proficiency spelling
func ProficiencyLevel(fl validator.FieldLevel) bool {
	val := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	if val == "" {
		return true // Optional, use required if needed
	}
	return proficiencyLevels[val]
}

// LocaleTag validates a BCP 47-shaped language tag
func LocaleTag(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return localeRegex.MatchString(val)
}
