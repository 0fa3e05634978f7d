package types

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// ErrorCode represents an error code.
type ErrorCode string

// String returns the string representation of the ErrorCode.
func (e ErrorCode) String() string {
	return string(e)
}

// ResponseErrorType represents the type of response error.
type ResponseErrorType string

// String returns the string representation of the ResponseErrorType.
func (e ResponseErrorType) String() string {
	return string(e)
}

// ComponentErrorType represents the type of component error.
type ComponentErrorType string

// String returns the string representation of the ComponentErrorType.
func (e ComponentErrorType) String() string {
	return string(e)
}

// DBType defines the type of database (e.g., PostgreSQL, MySQL).
type DBType string

// String returns the string representation of the DBType.
func (e DBType) String() string {
	return string(e)
}

// Field is an alias for zap.Field so callers don't import zap directly.
type Field = zap.Field

// LogMode represents the logging mode
type LogMode string

// String returns the string representation of the LogMode.
func (l LogMode) String() string {
	return string(l)
}

// EmptyCheck is implemented by types that know their own zero state.
type EmptyCheck interface {
	IsEmpty() bool
}

// LanguageTag wraps language.Tag for error translation.
type LanguageTag language.Tag

// IsEmpty checks if the language tag is empty
func (l LanguageTag) IsEmpty() bool {
	return l == LanguageTag{}
}

// ToLanguageTag converts LanguageTag to language.Tag
func ToLanguageTag(l LanguageTag) language.Tag {
	return language.Tag(l)
}

// String returns the BCP 47 representation of the tag.
func (l LanguageTag) String() string {
	return language.Tag(l).String()
}
