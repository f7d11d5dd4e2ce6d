package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

func counterpartyBody(id, name string) map[string]interface{} {
	return map[string]interface{}{
		"id":         id,
		"object":     "counterparty",
		"live_mode":  false,
		"name":       name,
		"created_at": "2024-01-02T03:04:05Z",
		"updated_at": "2024-01-02T03:04:05Z",
	}
}

func TestCounterpartiesClient_Create(t *testing.T) {
	t.Parallel()

	tests := []TestCreateOperation[treasury.CounterpartyCreateParams, treasury.Counterparty]{
		{
			Name:         "successful create",
			Request:      &treasury.CounterpartyCreateParams{Name: "Acme"},
			ExpectedPath: "/api/counterparties",
			StatusCode:   http.StatusCreated,
			Response:     counterpartyBody("cp_1", "Acme"),
		},
		{
			Name:        "missing name",
			Request:     &treasury.CounterpartyCreateParams{},
			WantErr:     true,
			ErrMessage:  "request validation failed",
			SkipsServer: true,
		},
		{
			Name:        "invalid email",
			Request:     &treasury.CounterpartyCreateParams{Name: "Acme", Email: "not-an-email"},
			WantErr:     true,
			ErrMessage:  "must be a valid email address",
			SkipsServer: true,
		},
		{
			Name:        "nil params",
			WantErr:     true,
			ErrMessage:  "creating counterparty",
			SkipsServer: true,
		},
		{
			Name:         "rejected by API",
			Request:      &treasury.CounterpartyCreateParams{Name: "Acme"},
			ExpectedPath: "/api/counterparties",
			StatusCode:   http.StatusUnprocessableEntity,
			Response: map[string]interface{}{
				"errors": map[string]interface{}{
					"code":      treasury.ErrorCodeParameterInvalid,
					"message":   "Name is taken",
					"parameter": "name",
				},
			},
			WantErr:    true,
			ErrMessage: "parameter_invalid: Name is taken (parameter: name, status: 422)",
		},
	}

	RunCreateTests(t, tests, func(c *Client) func(context.Context, *treasury.CounterpartyCreateParams) (*treasury.Counterparty, error) {
		return c.Counterparties().Create
	})
}

func TestCounterpartiesClient_Retrieve(t *testing.T) {
	t.Parallel()

	tests := []TestGetOperation[treasury.Counterparty]{
		{
			Name:         "successful retrieve",
			ID:           "cp_1",
			ExpectedPath: "/api/counterparties/cp_1",
			StatusCode:   http.StatusOK,
			Response:     counterpartyBody("cp_1", "Acme"),
		},
		{
			Name:         "not found",
			ID:           "missing",
			ExpectedPath: "/api/counterparties/missing",
			StatusCode:   http.StatusNotFound,
			Response:     NotFoundBody(),
			WantErr:      true,
			ErrMessage:   "retrieving counterparty",
		},
	}

	RunGetTests(t, tests, func(c *Client) func(context.Context, string) (*treasury.Counterparty, error) {
		return c.Counterparties().Retrieve
	})
}

func TestCounterpartiesClient_RetrieveDecodesFields(t *testing.T) {
	t.Parallel()

	client := NewTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		body := counterpartyBody("cp_1", "Acme")
		body["email"] = nil
		body["verification_status"] = "brand_new_status"
		body["legal_entity_id"] = "le_1"

		WriteJSON(t, writer, http.StatusOK, body)
	})

	counterparty, err := client.Counterparties().Retrieve(context.Background(), "cp_1")
	require.NoError(t, err)

	name, err := counterparty.Name.GetRequired("name")
	require.NoError(t, err)
	assert.Equal(t, "Acme", name)
	assert.True(t, counterparty.Email.IsNull())
	assert.True(t, counterparty.SendRemittanceAdvice.IsMissing())

	status, err := counterparty.VerificationStatus.GetRequired("verification_status")
	require.NoError(t, err)
	assert.True(t, status.Value().IsUnrecognized())

	assert.JSONEq(t, `"le_1"`, string(counterparty.ExtraFields["legal_entity_id"]))
}

func TestCounterpartiesClient_RetrieveNotFound(t *testing.T) {
	t.Parallel()

	client := NewTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		WriteJSON(t, writer, http.StatusNotFound, NotFoundBody())
	})

	_, err := client.Counterparties().Retrieve(context.Background(), "cp_missing")
	require.Error(t, err)
	assert.True(t, treasury.IsNotFound(err))

	var apiErr *treasury.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, treasury.ErrorCodeResourceNotFound, apiErr.Errors.Code)
}

func TestCounterpartiesClient_RetrieveEmptyID(t *testing.T) {
	t.Parallel()

	client := NewTestClient(t, "http://127.0.0.1:0")

	_, err := client.Counterparties().Retrieve(context.Background(), "")
	require.ErrorIs(t, err, treasury.ErrMissingIDParameter)
}

func TestCounterpartiesClient_Update(t *testing.T) {
	t.Parallel()

	tests := []TestUpdateOperation[treasury.CounterpartyUpdateParams, treasury.Counterparty]{
		{
			Name: "sets and clears fields",
			ID:   "cp_1",
			Request: &treasury.CounterpartyUpdateParams{
				Name:  treasury.F("Acme Corp"),
				Email: treasury.Null[string](),
			},
			ExpectedPath: "/api/counterparties/cp_1",
			ExpectedBody: map[string]interface{}{
				"name":  "Acme Corp",
				"email": nil,
			},
			StatusCode: http.StatusOK,
			Response:   counterpartyBody("cp_1", "Acme Corp"),
		},
		{
			Name:         "empty update",
			ID:           "cp_1",
			Request:      &treasury.CounterpartyUpdateParams{},
			ExpectedPath: "/api/counterparties/cp_1",
			ExpectedBody: map[string]interface{}{},
			StatusCode:   http.StatusOK,
			Response:     counterpartyBody("cp_1", "Acme"),
		},
		{
			Name:         "not found",
			ID:           "missing",
			Request:      &treasury.CounterpartyUpdateParams{Name: treasury.F("x")},
			ExpectedPath: "/api/counterparties/missing",
			StatusCode:   http.StatusNotFound,
			Response:     NotFoundBody(),
			WantErr:      true,
			ErrMessage:   "updating counterparty",
		},
	}

	RunUpdateTests(t, tests, func(c *Client) func(context.Context, string, *treasury.CounterpartyUpdateParams) (*treasury.Counterparty, error) {
		return c.Counterparties().Update
	})
}

func TestCounterpartiesClient_Delete(t *testing.T) {
	t.Parallel()

	tests := []TestDeleteOperation{
		{
			Name:         "successful delete",
			ID:           "cp_1",
			ExpectedPath: "/api/counterparties/cp_1",
			StatusCode:   http.StatusNoContent,
		},
		{
			Name:         "not found",
			ID:           "missing",
			ExpectedPath: "/api/counterparties/missing",
			StatusCode:   http.StatusNotFound,
			Response:     NotFoundBody(),
			WantErr:      true,
			ErrMessage:   "deleting counterparty",
		},
	}

	RunDeleteTests(t, tests, func(c *Client) func(context.Context, string) error {
		return c.Counterparties().Delete
	})
}

func TestCounterpartiesClient_CollectAccountDetails(t *testing.T) {
	t.Parallel()

	t.Run("posts the request", func(t *testing.T) {
		t.Parallel()

		client := NewTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/counterparties/cp_1/collect_account", request.URL.Path)
			assert.Equal(t, http.MethodPost, request.Method)

			var body map[string]interface{}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Equal(t, "credit", body["direction"])
			assert.Equal(t, true, body["send_email"])

			WriteJSON(t, writer, http.StatusOK, map[string]interface{}{
				"id":        "cp_1",
				"form_link": "https://example.com/form",
				"is_resend": false,
				"direction": "credit",
			})
		})

		resp, err := client.Counterparties().CollectAccountDetails(context.Background(), "cp_1",
			&treasury.CounterpartyCollectAccountParams{
				Direction: treasury.PaymentDirectionCredit,
				SendEmail: true,
			})
		require.NoError(t, err)
		assert.Equal(t, "https://example.com/form", resp.FormLink)
		assert.Equal(t, "credit", resp.Direction.Or(""))
	})

	t.Run("rejects unknown direction", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, "http://127.0.0.1:0")

		_, err := client.Counterparties().CollectAccountDetails(context.Background(), "cp_1",
			&treasury.CounterpartyCollectAccountParams{Direction: "sideways"})
		require.ErrorIs(t, err, treasury.ErrRequestValidationFailed)

		var validationErr *treasury.ValidationError
		require.True(t, errors.As(err, &validationErr))
		assert.Contains(t, validationErr.Fields, "CounterpartyCollectAccountParams.Direction")
	})
}
