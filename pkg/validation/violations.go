package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldNames maps struct field names to their wire names.
var fieldNames = map[string]string{
	"Name":               "name",
	"ContactInformation": "contactInformation",
	"JobPreferences":     "jobPreferences",
	"Title":              "title",
	"Description":        "description",
	"RequiredSkills":     "requiredSkills",
	"Experience":         "experience",
	"Company":            "company",
	"Location":           "location",
	"Email":              "email",
	"Username":           "username",
	"Password":           "password",
}

// Violations converts a validator error into a field -> messages map.
// An empty map means the entity is valid. Messages for a field keep the
// order in which its rules are declared.
func Violations(err error) map[string][]string {
	violations := make(map[string][]string)
	if err == nil {
		return violations
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		violations["_"] = []string{err.Error()}
		return violations
	}

	for _, e := range validationErrors {
		field := fieldName(e)
		violations[field] = append(violations[field], message(e))
	}
	return violations
}

func fieldName(e validator.FieldError) string {
	if name, ok := fieldNames[e.Field()]; ok {
		return name
	}
	return e.Field()
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "This value should not be blank."
	case "min":
		return fmt.Sprintf("This value is too short. It should have %s characters or more.", e.Param())
	case "max":
		return fmt.Sprintf("This value is too long. It should have %s characters or less.", e.Param())
	case "email":
		return "This value is not a valid email address."
	default:
		return fmt.Sprintf("This value is not valid (%s).", e.Tag())
	}
}
