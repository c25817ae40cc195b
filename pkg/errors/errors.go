package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorType represents different categories of errors
type ErrorType string

const (
	ErrorTypeValidation          ErrorType = "validation"
	ErrorTypeParseUnavailable    ErrorType = "parse_unavailable"
	ErrorTypeParseFailed         ErrorType = "parse_failed"
	ErrorTypeUnsupportedLanguage ErrorType = "unsupported_language"
	ErrorTypeProvider            ErrorType = "provider"
	ErrorTypeTransport           ErrorType = "transport"
	ErrorTypeMissingCredential   ErrorType = "missing_credential"
	ErrorTypePrecondition        ErrorType = "precondition"
	ErrorTypeUnauthorized        ErrorType = "unauthorized"
	ErrorTypeInternal            ErrorType = "internal"
)

// AppError represents a structured application error
type AppError struct {
	Type           ErrorType `json:"type"`
	Message        string    `json:"message"`
	Details        string    `json:"details,omitempty"`
	ProviderStatus int       `json:"provider_status,omitempty"`
	StatusCode     int       `json:"-"`
	Cause          error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(message string, details ...string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{
		Type:       ErrorTypeValidation,
		Message:    message,
		Details:    detail,
		StatusCode: http.StatusBadRequest,
	}
}

// NewParseUnavailableError reports that no PDF parser can be used
func NewParseUnavailableError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeParseUnavailable,
		Message:    message,
		StatusCode: http.StatusServiceUnavailable,
		Cause:      cause,
	}
}

// NewParseFailedError reports bytes that could not be parsed as a PDF
func NewParseFailedError(message string, cause error) *AppError {
	e := &AppError{
		Type:       ErrorTypeParseFailed,
		Message:    message,
		StatusCode: http.StatusUnprocessableEntity,
		Cause:      cause,
	}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// NewUnsupportedLanguageError reports a target the provider cannot translate into
func NewUnsupportedLanguageError(language string) *AppError {
	return &AppError{
		Type:       ErrorTypeUnsupportedLanguage,
		Message:    "unsupported target language",
		Details:    language,
		StatusCode: http.StatusBadRequest,
	}
}

// NewProviderError carries a non-success answer from a translation backend.
// status is the upstream HTTP status, 0 when the backend has none.
func NewProviderError(message string, status int, body string, cause error) *AppError {
	return &AppError{
		Type:           ErrorTypeProvider,
		Message:        message,
		Details:        body,
		ProviderStatus: status,
		StatusCode:     http.StatusBadGateway,
		Cause:          cause,
	}
}

// NewTransportError creates a new network-level error
func NewTransportError(message string, cause error) *AppError {
	e := &AppError{
		Type:       ErrorTypeTransport,
		Message:    message,
		StatusCode: http.StatusGatewayTimeout,
		Cause:      cause,
	}
	if cause != nil {
		e.Details = cause.Error()
	}
	return e
}

// NewMissingCredentialError reports that the selected provider has no key
func NewMissingCredentialError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeMissingCredential,
		Message:    message,
		StatusCode: http.StatusPreconditionFailed,
	}
}

// NewPreconditionError reports an action issued in the wrong session state
func NewPreconditionError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypePrecondition,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

// NewUnauthorizedError creates a new unauthorized error
func NewUnauthorizedError(message string) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

// NewInternalError creates a new internal server error
func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// As returns the AppError in err's chain, if any
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsType checks if the error is of a specific type
func IsType(err error, errorType ErrorType) bool {
	if appErr, ok := As(err); ok {
		return appErr.Type == errorType
	}
	return false
}

// GetStatusCode returns the HTTP status code for an error
func GetStatusCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.StatusCode
	}
	return http.StatusInternalServerError
}
