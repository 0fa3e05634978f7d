package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator is a high-level wrapper for go-playground/validator.
type Validator struct {
	validator *validator.Validate
}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{
		validator: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// ValidateStruct validates a struct and returns a map of field namespaces to error messages.
func (v *Validator) ValidateStruct(s any) map[string]string {
	err := v.validator.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"error": err.Error()}
	}

	errorMap := make(map[string]string, len(validationErrors))
	for _, fieldError := range validationErrors {
		errorMap[fieldError.Namespace()] = v.getErrorMessage(fieldError)
	}
	return errorMap
}

// ValidateField validates a single value against a tag.
func (v *Validator) ValidateField(field any, tag string) string {
	err := v.validator.Var(field, tag)
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "unexpected validation error"
	}
	if len(validationErrors) > 0 {
		return v.getErrorMessage(validationErrors[0])
	}
	return "validation error"
}

// RegisterValidation registers a custom validation function for a specific tag.
func (v *Validator) RegisterValidation(tag string, fn validator.Func) error {
	return v.validator.RegisterValidation(tag, fn)
}

// Summarise joins the messages of a ValidateStruct result in key order.
func Summarise(errs map[string]string) string {
	keys := make([]string, 0, len(errs))
	for key := range errs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, errs[key])
	}
	return strings.Join(parts, "; ")
}

// getErrorMessage generates a user-friendly error message from a FieldError.
func (v *Validator) getErrorMessage(fieldError validator.FieldError) string {
	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fieldError.Namespace())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters long", fieldError.Namespace(), fieldError.Param())
	case "required_with":
		return fmt.Sprintf("%s is required when %s is set", fieldError.Namespace(), fieldError.Param())
	default:
		return fmt.Sprintf("invalid %s", fieldError.Namespace())
	}
}
