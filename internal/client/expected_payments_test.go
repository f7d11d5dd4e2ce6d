package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

func expectedPaymentBody(id string) map[string]interface{} {
	return map[string]interface{}{
		"id":                  id,
		"object":              "expected_payment",
		"amount_upper_bound":  2000,
		"amount_lower_bound":  1000,
		"direction":           "debit",
		"internal_account_id": "ia_1",
		"status":              "unreconciled",
		"created_at":          "2024-01-02T03:04:05Z",
		"updated_at":          "2024-01-02T03:04:05Z",
	}
}

func TestExpectedPaymentsClient_Create(t *testing.T) {
	t.Parallel()

	RunCreateTests(t, []TestCreateOperation[treasury.ExpectedPaymentCreateParams, treasury.ExpectedPayment]{
		{
			Name: "successful create",
			Request: &treasury.ExpectedPaymentCreateParams{
				AmountUpperBound:  2000,
				AmountLowerBound:  1000,
				Direction:         treasury.PaymentDirectionDebit,
				InternalAccountID: "ia_1",
			},
			ExpectedPath: "/api/expected_payments",
			StatusCode:   http.StatusCreated,
			Response:     expectedPaymentBody("ep_1"),
		},
		{
			Name: "upper bound below lower bound",
			Request: &treasury.ExpectedPaymentCreateParams{
				AmountUpperBound:  500,
				AmountLowerBound:  1000,
				Direction:         treasury.PaymentDirectionDebit,
				InternalAccountID: "ia_1",
			},
			WantErr:     true,
			ErrMessage:  "AmountUpperBound",
			SkipsServer: true,
		},
	}, func(c *Client) func(context.Context, *treasury.ExpectedPaymentCreateParams) (*treasury.ExpectedPayment, error) {
		return c.ExpectedPayments().Create
	})
}

func TestExpectedPaymentsClient_Retrieve(t *testing.T) {
	t.Parallel()

	RunGetTests(t, []TestGetOperation[treasury.ExpectedPayment]{
		{
			Name:         "successful retrieve",
			ID:           "ep_1",
			ExpectedPath: "/api/expected_payments/ep_1",
			StatusCode:   http.StatusOK,
			Response:     expectedPaymentBody("ep_1"),
		},
	}, func(c *Client) func(context.Context, string) (*treasury.ExpectedPayment, error) {
		return c.ExpectedPayments().Retrieve
	})
}

func TestExpectedPaymentsClient_Update(t *testing.T) {
	t.Parallel()

	RunUpdateTests(t, []TestUpdateOperation[treasury.ExpectedPaymentUpdateParams, treasury.ExpectedPayment]{
		{
			Name:         "clear counterparty",
			ID:           "ep_1",
			Request:      &treasury.ExpectedPaymentUpdateParams{CounterpartyID: treasury.Null[string]()},
			ExpectedPath: "/api/expected_payments/ep_1",
			ExpectedBody: map[string]interface{}{"counterparty_id": nil},
			StatusCode:   http.StatusOK,
			Response:     expectedPaymentBody("ep_1"),
		},
	}, func(c *Client) func(context.Context, string, *treasury.ExpectedPaymentUpdateParams) (*treasury.ExpectedPayment, error) {
		return c.ExpectedPayments().Update
	})
}

func TestExpectedPaymentsClient_Delete(t *testing.T) {
	t.Parallel()

	RunDeleteTests(t, []TestDeleteOperation{
		{
			Name:         "successful delete",
			ID:           "ep_1",
			ExpectedPath: "/api/expected_payments/ep_1",
			StatusCode:   http.StatusOK,
			Response:     expectedPaymentBody("ep_1"),
		},
		{
			Name:       "empty ID",
			WantErr:    true,
			ErrMessage: "missing required id parameter",
		},
	}, func(c *Client) func(context.Context, string) error {
		return c.ExpectedPayments().Delete
	})
}
