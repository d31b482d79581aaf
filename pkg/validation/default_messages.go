package validation

import "fmt"

// DefaultMessage builds a generic message for tags without a field override.
func DefaultMessage(field, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "required_if":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "min":
		return fmt.Sprintf("%s is below the minimum length or value", field)
	case "max":
		return fmt.Sprintf("%s exceeds the maximum length or value", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of the allowed values", field)
	case "eqfield":
		return fmt.Sprintf("%s must match the referenced field", field)
	case "notblank":
		return fmt.Sprintf("%s must not be blank", field)
	case "passwd":
		return fmt.Sprintf("%s must contain at least one letter and one number", field)
	default:
		return fmt.Sprintf("%s is invalid: %s", field, tag)
	}
}
