package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"reflect"
	"strings"
	"unicode"

	"github.com/MentorBridge/backend/internal/constants"
	"github.com/MentorBridge/backend/pkg/logger"
	"github.com/MentorBridge/backend/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// FieldError is one entry of the complete failure set a validation response
// carries.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationMiddleware struct {
	validate *validator.Validate
}

func NewValidationMiddleware() *ValidationMiddleware {
	validate := validator.New()

	// Report JSON field names instead of Go struct field names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = validate.RegisterValidation("passwd", validatePassword)
	_ = validate.RegisterValidation("notblank", validateNotBlank)

	return &ValidationMiddleware{validate: validate}
}

// ValidateRequestBody decodes the body into the payload built by factory and
// runs the declarative rules, reporting every failure at once. The body is
// restored so handlers can bind it again.
func (m *ValidationMiddleware) ValidateRequestBody(factory func() interface{}) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bodyBytes []byte
		if c.Request.Body != nil {
			var err error
			bodyBytes, err = io.ReadAll(c.Request.Body)
			if err != nil {
				logger.GetLogger().Error("Failed to read request body",
					zap.String("path", c.Request.URL.Path),
					zap.Error(err))
				c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Failed to read request body"))
				c.Abort()
				return
			}
		}

		// Restore the body so handlers can re-read it if needed.
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		request := factory()
		if err := json.Unmarshal(bodyBytes, request); err != nil {
			logger.GetLogger().Warn("JSON unmarshaling failed",
				zap.String("path", c.Request.URL.Path),
				zap.Int("body_size", len(bodyBytes)),
				zap.Error(err))
			c.JSON(http.StatusBadRequest, constants.BuildErrorResponse("Invalid JSON payload"))
			c.Abort()
			return
		}

		if err := m.validate.Struct(request); err != nil {
			fieldErrors := collectFieldErrors(err)

			logger.GetLogger().Warn("Request validation failed",
				zap.String("path", c.Request.URL.Path),
				zap.Int("error_count", len(fieldErrors)))

			c.JSON(http.StatusBadRequest,
				constants.BuildValidationErrorResponse(constants.MsgValidationFailed, fieldErrors))
			c.Abort()
			return
		}

		c.Next()
	}
}

// collectFieldErrors converts validator failures to the response shape,
// keeping the complete set rather than the first failure.
func collectFieldErrors(err error) []FieldError {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		field := baseFieldName(e.Field())
		message := ""
		if fieldMessages := validation.CustomMessage(field); fieldMessages != nil {
			message = fieldMessages[e.Tag()]
		}
		if message == "" {
			message = validation.DefaultMessage(field, e.Tag())
		}
		fieldErrors = append(fieldErrors, FieldError{Field: field, Message: message})
	}
	return fieldErrors
}

// baseFieldName strips a slice index suffix so expertise[2] reports as
// expertise.
func baseFieldName(field string) string {
	if i := strings.IndexByte(field, '['); i > 0 {
		return field[:i]
	}
	return field
}

// validatePassword requires at least one letter and one number.
func validatePassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()

	var hasLetter, hasNumber bool
	for _, r := range value {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsNumber(r):
			hasNumber = true
		}
	}
	return hasLetter && hasNumber
}

// validateNotBlank rejects strings that are empty after trimming.
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
