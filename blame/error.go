package blame

import (
	"errors"
	"fmt"
	"maps"
	"runtime"
	"strings"

	"github.com/abhissng/sqlhelper/utils/constant"
	"github.com/abhissng/sqlhelper/utils/helpers"
	"github.com/abhissng/sqlhelper/utils/types"
	"github.com/nicksnyder/go-i18n/v2/i18n"
)

// Error struct holds the error information
type Error struct {
	reasonCode   string          //SQLH-100001
	errCode      types.ErrorCode //error-invalid-argument
	component    types.ComponentErrorType
	responseType types.ResponseErrorType
	message      string
	description  string
	fields       map[string]any
	causes       []error
	source       string
	bundle       *i18n.Bundle
	language     types.LanguageTag
}

// NewError creates a new Error instance
func NewError(
	reasonCode string,
	errorCode types.ErrorCode,
	message, description string,
) *Error {
	if helpers.IsEmpty(reasonCode) {
		reasonCode = string(errorCode)
	}
	return &Error{
		reasonCode:  reasonCode,
		errCode:     errorCode,
		message:     message,
		description: description,
		language:    helpers.GetDefaultLanguageTag(),
		fields:      map[string]any{},
		causes:      make([]error, 0),
		source:      findSource(),
	}
}

// NewBasicError creates a new Error instance with the given error code
func NewBasicError(
	errorCode types.ErrorCode,
) *Error {
	return &Error{
		reasonCode: errorCode.String(),
		errCode:    errorCode,
		language:   helpers.GetDefaultLanguageTag(),
		fields:     map[string]any{},
		causes:     make([]error, 0),
		source:     findSource(),
	}
}

// FetchReasonCode returns the reason code of the error as a string
func (e *Error) FetchReasonCode() string {
	return e.reasonCode
}

// FetchErrCode returns the error code of the error as a ErrorCode
func (e *Error) FetchErrCode() types.ErrorCode {
	return e.errCode
}

// FetchMessage returns the message of the error as a string
func (e *Error) FetchMessage() string {
	return e.message
}

// FetchDescription returns the description of the error as a string
func (e *Error) FetchDescription() string {
	return e.description
}

// FetchBundle returns the bundle of the error as a *i18n.Bundle
func (e *Error) FetchBundle() *i18n.Bundle {
	return e.bundle
}

// WithBundle sets the bundle of the error and returns the updated Error instance.
func (e *Error) WithBundle(localBundle *i18n.Bundle) *Error {
	e.bundle = localBundle
	return e
}

// WithLanguageTag sets the language tag of the error and returns the updated Error instance.
func (e *Error) WithLanguageTag(language types.LanguageTag) *Error {
	e.language = language
	return e
}

// FetchFields returns the fields of the error as a map[string]any
func (e *Error) FetchFields() map[string]any {
	return e.fields
}

// FetchSource returns the source of the error as a string
func (e *Error) FetchSource() string {
	return e.source
}

// FetchComponent returns the component of the error as a ComponentErrorType
func (e *Error) FetchComponent() types.ComponentErrorType {
	return e.component
}

// FetchResponseType returns the response type of the error as a ResponseErrorType
func (e *Error) FetchResponseType() types.ResponseErrorType {
	return e.responseType
}

// FetchCauses returns the causes of the error as a slice of errors
func (e *Error) FetchCauses() []error {
	return e.causes
}

// WithField adds a field to the error and returns the updated Error instance.
func (e *Error) WithField(key string, value any) *Error {
	e.fields[key] = value
	return e
}

// WithCause adds a cause to the error and returns the updated Error instance.
func (e *Error) WithCause(err error) *Error {
	if err == nil {
		return e
	}
	e.causes = append(e.causes, err)
	return e
}

// WithComponent sets the component of the error and returns the updated Error instance.
func (e *Error) WithComponent(component types.ComponentErrorType) *Error {
	e.component = component
	return e
}

// WithResponseType sets the response type of the error and returns the updated Error instance.
func (e *Error) WithResponseType(responseType types.ResponseErrorType) *Error {
	e.responseType = responseType
	return e
}

// Error returns the error code, the rendered message and the causes as a string
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.errCode.String())
	if message := e.render(e.message); message != "" {
		sb.WriteString(": ")
		sb.WriteString(message)
	}
	if len(e.causes) > 0 {
		fmt.Fprintf(&sb, " (causes: %v)", e.causes)
	}
	return sb.String()
}

// Is matches any *Error carrying the same error code, so sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	var other *Error
	if !errors.As(target, &other) {
		return false
	}
	return other.errCode == e.errCode
}

// Unwrap exposes the causes to errors.Is and errors.As.
func (e *Error) Unwrap() []error {
	return e.causes
}

// clone returns a copy that can be decorated without touching the cached definition.
func (e *Error) clone() *Error {
	c := *e
	c.fields = maps.Clone(e.fields)
	if c.fields == nil {
		c.fields = map[string]any{}
	}
	c.causes = make([]error, 0)
	c.source = findSource()
	return &c
}

// findSource captures the source of the error at the point of instantiation.
func findSource() string {
	_, file, line, _ := runtime.Caller(2)
	return fmt.Sprintf("%s:%d", strings.TrimPrefix(file, helpers.GetGoROOT()+"/src/"), line)
}

// Wrap applies fields and causes from the options and returns the updated Blame instance.
func (e *Error) Wrap(opts ...BlameOption) Blame {
	options := NewBlameOptions()
	for _, opt := range opts {
		opt(options)
	}
	for k, v := range options.Fields {
		e.fields[k] = v
	}
	for _, cause := range options.Causes {
		_ = e.WithCause(cause)
	}
	return e
}

// render replaces {{.key}} placeholders with the error fields.
func (e *Error) render(text string) string {
	for key, value := range e.fields {
		text = strings.ReplaceAll(text, "{{."+key+"}}", "["+fmt.Sprintf("%v", value)+"]")
	}
	return text
}

// Translate translates the message and description and returns the localized Message and Description
func (e *Error) Translate() (string, string) {
	message := e.render(e.message)
	description := e.render(e.description)

	if e.bundle == nil || helpers.IsEmpty(e.language) {
		return message, description
	}

	localizer := i18n.NewLocalizer(e.bundle, e.language.String())
	localizedMessage, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:          e.errCode.String(),
			Other:       message,
			Description: description,
		},
		TemplateData: e.fields,
	})
	if err != nil || localizedMessage == "" {
		helpers.Println(constant.DEBUG, "falling back to untranslated message for ", e.errCode.String())
		return message, description
	}

	localizedDescription, err := localizer.Localize(&i18n.LocalizeConfig{
		DefaultMessage: &i18n.Message{
			ID:    e.errCode.String() + ".description",
			Other: description,
		},
		TemplateData: e.fields,
	})
	if err != nil || localizedDescription == "" {
		return localizedMessage, description
	}
	return localizedMessage, localizedDescription
}

// ErrorResponse struct holds the error information for sending as a response
type ErrorResponse struct {
	ReasonCode   string                   `json:"reason_code,omitempty"`
	ErrorCode    types.ErrorCode          `json:"error_code,omitempty"`
	Message      string                   `json:"message,omitempty"`
	Description  string                   `json:"description,omitempty"`
	Fields       map[string]any           `json:"fields,omitempty"`
	Component    types.ComponentErrorType `json:"component,omitempty"`
	ResponseType types.ResponseErrorType  `json:"response_type,omitempty"`
	Causes       []string                 `json:"causes,omitempty"`
}

// FetchErrorResponse returns the error as an ErrorResponse
func (e *Error) FetchErrorResponse(options ...SendErrorResponseOption) ErrorResponse {
	response := ErrorResponse{
		ReasonCode:   e.FetchReasonCode(),
		ErrorCode:    e.FetchErrCode(),
		Message:      e.render(e.FetchMessage()),
		Description:  e.render(e.FetchDescription()),
		Fields:       e.FetchFields(),
		Component:    e.FetchComponent(),
		ResponseType: e.FetchResponseType(),
		Causes:       helpers.FetchErrorStrings(e.FetchCauses()),
	}

	for _, opt := range options {
		opt(&response, e)
	}

	return response
}

// SendErrorResponseOption is a function that can be used to modify the error response
type SendErrorResponseOption func(*ErrorResponse, Blame)

// WithTranslation translates the error message and description
func WithTranslation() SendErrorResponseOption {
	return func(response *ErrorResponse, err Blame) {
		response.Message, response.Description = err.Translate()
	}
}
