package validation

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Code    string       `json:"code"`
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

const CodeValidationFailed = "VALIDATION_FAILED"

// BindAndValidateJSON binds the request body into dst and aborts with 400 when
// it is malformed or fails its binding rules.
func BindAndValidateJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			c.AbortWithStatusJSON(http.StatusBadRequest, formatValidationErrors(verrs))
			return false
		}

		c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
			Code:    "INVALID_BODY",
			Message: "invalid request body",
			Errors: []FieldError{
				{
					Field:   "",
					Rule:    "syntax",
					Message: err.Error(),
				},
			},
		})
		return false
	}

	return true
}

// Fail aborts with a single field error.
func Fail(c *gin.Context, field, rule, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorResponse{
		Code:    CodeValidationFailed,
		Message: "validation failed",
		Errors: []FieldError{
			{Field: field, Rule: rule, Message: message},
		},
	})
}

func formatValidationErrors(verrs validator.ValidationErrors) ErrorResponse {
	fields := make([]FieldError, 0, len(verrs))

	for _, fe := range verrs {
		jsonField := toJSONFieldName(fe.Field())
		fields = append(fields, FieldError{
			Field:   jsonField,
			Rule:    fe.Tag(),
			Message: buildMessage(jsonField, fe),
		})
	}

	return ErrorResponse{
		Code:    CodeValidationFailed,
		Message: "validation failed",
		Errors:  fields,
	}
}

// toJSONFieldName turns a Go field name like WriterID into writer_id.
func toJSONFieldName(field string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range field {
		upper := r >= 'A' && r <= 'Z'
		if upper {
			if prevLower {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		prevLower = !upper
		b.WriteRune(r)
	}
	return b.String()
}

func buildMessage(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "min", "max":
		return field + " must satisfy " + fe.Tag() + "=" + fe.Param()
	}

	return field + " is invalid (" + fe.Tag() + ")"
}
