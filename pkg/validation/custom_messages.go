package validation

// CustomMessage returns per-field message overrides keyed by validation tag.
// Field names are the JSON names reported by the validator.
func CustomMessage(field string) map[string]string {
	var customValidationMessages = map[string]map[string]string{
		"name": {
			"required": "Name is required",
			"min":      "Name must be between 2 and 50 characters",
			"max":      "Name must be between 2 and 50 characters",
		},
		"email": {
			"required": "Email is required",
			"email":    "Please provide a valid email address",
		},
		"password": {
			"required": "Password is required",
			"min":      "Password must be at least 6 characters long",
			"passwd":   "Password must contain at least one letter and one number",
		},
		"role": {
			"required": "Role is required",
			"oneof":    "Role must be either mentor or mentee",
		},
		"menteeEmail": {
			"required_if": "Please provide a valid mentee email address",
			"email":       "Please provide a valid mentee email address",
		},
		"expertise": {
			"required_if": "Mentors must specify at least one area of expertise",
			"notblank":    "Each expertise must be a non-empty string",
		},
		"bio": {
			"max": "Bio cannot exceed 500 characters",
		},
		"currentPassword": {
			"required": "Current password is required",
		},
		"newPassword": {
			"required": "New password is required",
			"min":      "New password must be at least 6 characters long",
			"passwd":   "New password must contain at least one letter and one number",
		},
		"confirmPassword": {
			"required": "Password confirmation is required",
			"eqfield":  "Password confirmation does not match",
		},
	}
	return customValidationMessages[field]
}
