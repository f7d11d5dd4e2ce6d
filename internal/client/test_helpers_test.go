package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// NewTestClient creates a client for baseURL with retries disabled.
func NewTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	client, err := New(context.Background(), &treasury.Config{
		BaseURL:        baseURL,
		OrganizationID: "test-org",
		APIKey:         "test-key",
		RetryMax:       -1,
	})
	require.NoError(t, err)

	return client
}

// NewTestServer starts a server for handler and returns a client talking to it.
func NewTestServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewTestClient(t, server.URL)
}

// WriteJSON writes body with the given status.
func WriteJSON(t *testing.T, writer http.ResponseWriter, status int, body interface{}) {
	t.Helper()

	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)

	if body != nil {
		assert.NoError(t, json.NewEncoder(writer).Encode(body))
	}
}

// NotFoundBody is the error body returned for unknown IDs.
func NotFoundBody() map[string]interface{} {
	return map[string]interface{}{
		"errors": map[string]interface{}{
			"code":    treasury.ErrorCodeResourceNotFound,
			"message": "Resource not found",
		},
	}
}

// TestCreateOperation represents a generic create operation test case.
type TestCreateOperation[TRequest, TResponse any] struct {
	Name         string
	Request      *TRequest
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
	// SkipsServer marks requests rejected before they are sent.
	SkipsServer bool
}

// TestGetOperation represents a generic retrieve operation test case.
type TestGetOperation[TResponse any] struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// TestUpdateOperation represents a generic update operation test case.
type TestUpdateOperation[TRequest, TResponse any] struct {
	Name         string
	ID           string
	Request      *TRequest
	ExpectedPath string
	// ExpectedBody is compared against the decoded request body.
	ExpectedBody map[string]interface{}
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// TestDeleteOperation represents a generic delete operation test case.
type TestDeleteOperation struct {
	Name         string
	ID           string
	ExpectedPath string
	StatusCode   int
	Response     interface{}
	WantErr      bool
	ErrMessage   string
}

// RunCreateTests runs a series of create operation tests.
func RunCreateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestCreateOperation[TRequest, TResponse],
	createFunc func(*Client) func(context.Context, *TRequest) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			var called atomic.Bool

			client := NewTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
				called.Store(true)

				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodPost, request.Method)
				assert.NotEmpty(t, request.Header.Get("Idempotency-Key"))

				WriteJSON(t, writer, testCase.StatusCode, testCase.Response)
			})

			result, err := createFunc(client)(context.Background(), testCase.Request)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}

			assert.Equal(t, !testCase.SkipsServer, called.Load())
		})
	}
}

// RunGetTests runs a series of retrieve operation tests.
func RunGetTests[TResponse any](
	t *testing.T,
	tests []TestGetOperation[TResponse],
	getFunc func(*Client) func(context.Context, string) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			client := NewTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodGet, request.Method)

				WriteJSON(t, writer, testCase.StatusCode, testCase.Response)
			})

			result, err := getFunc(client)(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// RunUpdateTests runs a series of update operation tests.
func RunUpdateTests[TRequest, TResponse any](
	t *testing.T,
	tests []TestUpdateOperation[TRequest, TResponse],
	updateFunc func(*Client) func(context.Context, string, *TRequest) (*TResponse, error),
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			client := NewTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodPatch, request.Method)

				if testCase.ExpectedBody != nil {
					var body map[string]interface{}
					assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
					assert.Equal(t, testCase.ExpectedBody, body)
				}

				WriteJSON(t, writer, testCase.StatusCode, testCase.Response)
			})

			result, err := updateFunc(client)(context.Background(), testCase.ID, testCase.Request)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}

				assert.Nil(t, result)
			} else {
				require.NoError(t, err)
				require.NotNil(t, result)
			}
		})
	}
}

// RunDeleteTests runs a series of delete operation tests.
func RunDeleteTests(
	t *testing.T,
	tests []TestDeleteOperation,
	deleteFunc func(*Client) func(context.Context, string) error,
) {
	t.Helper()

	for _, testCase := range tests {
		t.Run(testCase.Name, func(t *testing.T) {
			client := NewTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.ExpectedPath, request.URL.Path)
				assert.Equal(t, http.MethodDelete, request.Method)

				if testCase.Response == nil {
					writer.WriteHeader(testCase.StatusCode)

					return
				}

				WriteJSON(t, writer, testCase.StatusCode, testCase.Response)
			})

			err := deleteFunc(client)(context.Background(), testCase.ID)

			if testCase.WantErr {
				require.Error(t, err)

				if testCase.ErrMessage != "" {
					assert.Contains(t, err.Error(), testCase.ErrMessage)
				}
			} else {
				require.NoError(t, err)
			}
		})
	}
}
