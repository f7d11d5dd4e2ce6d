package treasury

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		expected string
	}{
		{
			name:     "no body",
			err:      &APIError{StatusCode: http.StatusBadGateway},
			expected: "502 Bad Gateway",
		},
		{
			name: "with code",
			err: &APIError{
				StatusCode: http.StatusNotFound,
				Errors:     ErrorDetail{Code: ErrorCodeResourceNotFound, Message: "Payment order not found"},
			},
			expected: "resource_not_found: Payment order not found (status: 404)",
		},
		{
			name: "with parameter",
			err: &APIError{
				StatusCode: http.StatusUnprocessableEntity,
				Errors:     ErrorDetail{Code: ErrorCodeParameterInvalid, Message: "is invalid", Parameter: "amount"},
			},
			expected: "parameter_invalid: is invalid (parameter: amount, status: 422)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestParseAPIError(t *testing.T) {
	t.Run("decodes the error object", func(t *testing.T) {
		body := []byte(`{"errors":{"code":"parameter_missing","message":"is required","parameter":"direction"}}`)

		apiErr := ParseAPIError(http.StatusBadRequest, body)
		assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
		assert.Equal(t, ErrorCodeParameterMissing, apiErr.Errors.Code)
		assert.Equal(t, "direction", apiErr.Errors.Parameter)
		assert.Equal(t, body, apiErr.Body)
	})

	t.Run("keeps a body that is not JSON", func(t *testing.T) {
		apiErr := ParseAPIError(http.StatusServiceUnavailable, []byte("<html>down</html>"))
		assert.Equal(t, "503 Service Unavailable", apiErr.Error())
		assert.Equal(t, "<html>down</html>", string(apiErr.Body))
	})
}

func TestStatusHelpers(t *testing.T) {
	wrap := func(status int) error {
		return fmt.Errorf("retrieving payment order: %w", &APIError{StatusCode: status})
	}

	assert.True(t, IsNotFound(wrap(http.StatusNotFound)))
	assert.True(t, IsUnauthorized(wrap(http.StatusUnauthorized)))
	assert.True(t, IsConflict(wrap(http.StatusConflict)))
	assert.True(t, IsRateLimited(wrap(http.StatusTooManyRequests)))

	assert.False(t, IsNotFound(wrap(http.StatusInternalServerError)))
	assert.False(t, IsNotFound(errors.New("plain")))
	assert.False(t, IsNotFound(nil))
}

func TestNewValidationError(t *testing.T) {
	type params struct {
		Amount    int64  `validate:"gt=0"`
		Direction string `validate:"required,oneof=credit debit"`
		Currency  string `validate:"omitempty,len=3"`
	}

	err := validator.New().Struct(params{Currency: "DOLLARS"})
	require.Error(t, err)

	converted := NewValidationError(err)
	require.ErrorIs(t, converted, ErrRequestValidationFailed)

	var valErr *ValidationError
	require.ErrorAs(t, converted, &valErr)
	assert.Equal(t, map[string]string{
		"params.Amount":    "must be greater than 0",
		"params.Direction": "required",
		"params.Currency":  "must be exactly 3 characters",
	}, valErr.Fields)
	assert.Equal(t,
		"request validation failed: params.Amount: must be greater than 0; params.Currency: must be exactly 3 characters; params.Direction: required",
		converted.Error())

	other := errors.New("not a validation error")
	assert.Same(t, other, NewValidationError(other))
}
