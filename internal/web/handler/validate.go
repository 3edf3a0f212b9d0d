package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validate checks struct fields against their validate tags. Shared by all
// API handlers so validation behaves the same everywhere.
var Validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationMessage turns a validator error into a readable message for the
// JSON error envelope.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("field %s failed on %s", fe.Field(), fe.Tag()))
	}

	return strings.Join(parts, "; ")
}
