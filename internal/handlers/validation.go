package handlers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validationErrorMessage flattens validator errors into a single message
// enumerating the violated fields, suitable for the API's {"error": string}
// body.
func validationErrorMessage(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "validation failed"
	}
	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field(), e.Tag()))
	}
	return "validation failed: " + strings.Join(messages, "; ")
}
