package treasury

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorDetail is the error object returned by the API.
type ErrorDetail struct {
	Code      string `json:"code"                yaml:"code"`
	Message   string `json:"message"             yaml:"message"`
	Parameter string `json:"parameter,omitempty" yaml:"parameter,omitempty"`
}

// APIError represents a non-2xx response from the API.
type APIError struct {
	StatusCode int         `json:"-"      yaml:"-"`
	Errors     ErrorDetail `json:"errors" yaml:"errors"`
	Body       []byte      `json:"-"      yaml:"-"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Errors.Code == "" && e.Errors.Message == "" {
		return fmt.Sprintf("%d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}

	if e.Errors.Parameter != "" {
		return fmt.Sprintf("%s: %s (parameter: %s, status: %d)", e.Errors.Code, e.Errors.Message, e.Errors.Parameter, e.StatusCode)
	}

	return fmt.Sprintf("%s: %s (status: %d)", e.Errors.Code, e.Errors.Message, e.StatusCode)
}

// Common error codes.
const (
	ErrorCodeParameterInvalid = "parameter_invalid"
	ErrorCodeParameterMissing = "parameter_missing"
	ErrorCodeResourceNotFound = "resource_not_found"
	ErrorCodeUnauthorized     = "unauthorized"
	ErrorCodeRateLimited      = "rate_limited"
	ErrorCodeIdempotencyError = "idempotency_error"
)

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired          = errors.New("config is required")
	ErrBaseURLRequired         = errors.New("base URL is required")
	ErrAPIKeyRequired          = errors.New("API key is required")
	ErrOrganizationIDRequired  = errors.New("organization ID is required")
	ErrMissingIDParameter      = errors.New("missing required id parameter")
	ErrNoMoreItems             = errors.New("no more items")
	ErrCacheDisabled           = errors.New("cache disabled")
	ErrKeyNotFound             = errors.New("key not found")
	ErrEntryExpired            = errors.New("entry expired")
	ErrNATSConfigRequired      = errors.New("NATS configuration required for NATS cache")
	ErrUnsupportedCacheType    = errors.New("unsupported cache type")
	ErrKeyNotFoundInAnyCache   = errors.New("key not found in any cache")
	ErrRequestValidationFailed = errors.New("request validation failed")
)

// ParseAPIError decodes an error response body.
func ParseAPIError(statusCode int, data []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode, Body: data}

	_ = json.Unmarshal(data, apiErr)
	apiErr.StatusCode = statusCode

	return apiErr
}

func hasStatus(err error, status int) bool {
	apiErr := &APIError{}
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == status
	}

	return false
}

// IsNotFound checks if the error is a not found error.
func IsNotFound(err error) bool {
	return hasStatus(err, http.StatusNotFound)
}

// IsUnauthorized checks if the error is an unauthorized error.
func IsUnauthorized(err error) bool {
	return hasStatus(err, http.StatusUnauthorized)
}

// IsConflict checks if the error is a conflict error, typically an idempotency key reuse.
func IsConflict(err error) bool {
	return hasStatus(err, http.StatusConflict)
}

// IsRateLimited checks if the error is a rate limit error.
func IsRateLimited(err error) bool {
	return hasStatus(err, http.StatusTooManyRequests)
}

// ValidationError lists the request fields that failed validation.
type ValidationError struct {
	Fields map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	messages := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		messages = append(messages, field+": "+msg)
	}

	slices.Sort(messages)

	return fmt.Sprintf("%s: %s", ErrRequestValidationFailed.Error(), strings.Join(messages, "; "))
}

// Unwrap returns ErrRequestValidationFailed.
func (e *ValidationError) Unwrap() error {
	return ErrRequestValidationFailed
}

// NewValidationError converts validator errors into a ValidationError.
// Other errors are returned unchanged.
func NewValidationError(err error) error {
	var valErrs validator.ValidationErrors
	if !errors.As(err, &valErrs) {
		return err
	}

	fields := make(map[string]string, len(valErrs))
	for _, ve := range valErrs {
		fields[ve.Namespace()] = formatValidationError(ve)
	}

	return &ValidationError{Fields: fields}
}

func formatValidationError(ve validator.FieldError) string {
	switch ve.Tag() {
	case "required":
		return "required"
	case "min":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", ve.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters", ve.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", ve.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", ve.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", ve.Param())
	case "email":
		return "must be a valid email address"
	case "uuid":
		return "must be a valid UUID"
	case "iso4217":
		return "must be an ISO 4217 currency code"
	default:
		return fmt.Sprintf("failed %s validation", ve.Tag())
	}
}
