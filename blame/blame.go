// Package blame provides a custom error type that adds additional information and functionality to standard errors.
package blame

import (
	"github.com/abhissng/sqlhelper/utils/types"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Blame represents a custom error type that provides additional information and functionality.
type Blame interface {
	// error is embedded to ensure Blame implements the error interface.
	error

	// FetchReasonCode returns the reason code associated with the error.
	FetchReasonCode() string

	// FetchErrCode returns the error code associated with the error.
	FetchErrCode() types.ErrorCode

	// FetchMessage returns the error message.
	FetchMessage() string

	// FetchDescription returns the error description.
	FetchDescription() string

	// FetchFields returns a map of additional error fields.
	FetchFields() map[string]any

	// FetchSource returns the source of the error.
	FetchSource() string

	// FetchComponent returns the component associated with the error.
	FetchComponent() types.ComponentErrorType

	// FetchResponseType returns the response type associated with the error.
	FetchResponseType() types.ResponseErrorType

	// FetchCauses returns a slice of underlying errors that caused this error.
	FetchCauses() []error

	// FetchBundle returns a local bundle for internal error transformation.
	FetchBundle() *i18n.Bundle

	// WithField adds a new field to the error and returns the updated Blame instance.
	WithField(key string, value any) *Error

	// WithCause adds a new underlying error to the error and returns the updated Blame instance.
	WithCause(err error) *Error

	// WithComponent sets the component associated with the error and returns the updated Blame instance.
	WithComponent(component types.ComponentErrorType) *Error

	// WithResponseType sets the response type associated with the error and returns the updated Blame instance.
	WithResponseType(responseType types.ResponseErrorType) *Error

	// Translate translates the error message and description using the i18n bundle and language in the error instance.
	Translate() (string, string)

	// FetchErrorResponse returns a serialisable view of the error.
	FetchErrorResponse(options ...SendErrorResponseOption) ErrorResponse

	// Wrap applies the options to the error and returns it as a Blame.
	Wrap(opts ...BlameOption) Blame
}
