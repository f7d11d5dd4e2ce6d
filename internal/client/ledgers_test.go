package client

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

func TestLedgersClient_CRUD(t *testing.T) {
	t.Parallel()

	RunCreateTests(t, []TestCreateOperation[treasury.LedgerCreateParams, treasury.Ledger]{
		{
			Name:         "create",
			Request:      &treasury.LedgerCreateParams{Name: "Operating"},
			ExpectedPath: "/api/ledgers",
			StatusCode:   http.StatusCreated,
			Response:     ledgerBody("lg_1"),
		},
	}, func(c *Client) func(context.Context, *treasury.LedgerCreateParams) (*treasury.Ledger, error) {
		return c.Ledgers().Create
	})

	RunGetTests(t, []TestGetOperation[treasury.Ledger]{
		{
			Name:         "retrieve",
			ID:           "lg_1",
			ExpectedPath: "/api/ledgers/lg_1",
			StatusCode:   http.StatusOK,
			Response:     ledgerBody("lg_1"),
		},
	}, func(c *Client) func(context.Context, string) (*treasury.Ledger, error) {
		return c.Ledgers().Retrieve
	})

	RunUpdateTests(t, []TestUpdateOperation[treasury.LedgerUpdateParams, treasury.Ledger]{
		{
			Name:         "rename",
			ID:           "lg_1",
			Request:      &treasury.LedgerUpdateParams{Name: treasury.F("Treasury")},
			ExpectedPath: "/api/ledgers/lg_1",
			ExpectedBody: map[string]interface{}{"name": "Treasury"},
			StatusCode:   http.StatusOK,
			Response:     ledgerBody("lg_1"),
		},
	}, func(c *Client) func(context.Context, string, *treasury.LedgerUpdateParams) (*treasury.Ledger, error) {
		return c.Ledgers().Update
	})

	RunDeleteTests(t, []TestDeleteOperation{
		{
			Name:         "delete",
			ID:           "lg_1",
			ExpectedPath: "/api/ledgers/lg_1",
			StatusCode:   http.StatusNoContent,
		},
	}, func(c *Client) func(context.Context, string) error {
		return c.Ledgers().Delete
	})
}

func TestLedgerAccountsClient_RetrieveBalances(t *testing.T) {
	t.Parallel()

	client := NewTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/ledger_accounts/la_1", request.URL.Path)

		WriteJSON(t, writer, http.StatusOK, map[string]interface{}{
			"id":             "la_1",
			"object":         "ledger_account",
			"name":           "Cash",
			"ledger_id":      "lg_1",
			"currency":       "USD",
			"normal_balance": "debit",
			"balances": map[string]interface{}{
				"pending_balance":   map[string]interface{}{"amount": 100, "credits": 0, "debits": 100, "currency": "USD"},
				"posted_balance":    map[string]interface{}{"amount": 50, "credits": 0, "debits": 50, "currency": "USD"},
				"available_balance": map[string]interface{}{"amount": 50, "credits": 0, "debits": 50, "currency": "USD"},
			},
			"lock_version": 3,
			"created_at":   "2024-01-02T03:04:05Z",
			"updated_at":   "2024-01-02T03:04:05Z",
		})
	})

	account, err := client.LedgerAccounts().Retrieve(context.Background(), "la_1")
	require.NoError(t, err)

	balances, err := account.Balances.GetRequired("balances")
	require.NoError(t, err)
	assert.Equal(t, int64(50), balances.PostedBalance.Amount)
	assert.Equal(t, int64(3), account.LockVersion.Or(0))
	assert.Equal(t, treasury.NormalBalanceDebit, account.NormalBalance.Or(""))
}

func TestLedgerAccountsClient_Create(t *testing.T) {
	t.Parallel()

	RunCreateTests(t, []TestCreateOperation[treasury.LedgerAccountCreateParams, treasury.LedgerAccount]{
		{
			Name:        "normal balance must be credit or debit",
			Request:     &treasury.LedgerAccountCreateParams{Name: "Cash", LedgerID: "lg_1", Currency: "USD", NormalBalance: "both"},
			WantErr:     true,
			ErrMessage:  "NormalBalance: must be one of [credit debit]",
			SkipsServer: true,
		},
	}, func(c *Client) func(context.Context, *treasury.LedgerAccountCreateParams) (*treasury.LedgerAccount, error) {
		return c.LedgerAccounts().Create
	})
}

func TestLedgerTransactionsClient_Create(t *testing.T) {
	t.Parallel()

	t.Run("posts balanced entries", func(t *testing.T) {
		t.Parallel()

		client := NewTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/ledger_transactions", request.URL.Path)

			var body struct {
				LedgerEntries []map[string]interface{} `json:"ledger_entries"`
				Status        string                   `json:"status"`
			}
			assert.NoError(t, json.NewDecoder(request.Body).Decode(&body))
			assert.Len(t, body.LedgerEntries, 2)
			assert.Equal(t, "posted", body.Status)

			WriteJSON(t, writer, http.StatusCreated, map[string]interface{}{
				"id":        "lt_1",
				"object":    "ledger_transaction",
				"ledger_id": "lg_1",
				"status":    "posted",
				"ledger_entries": []map[string]interface{}{
					{"id": "le_1", "amount": 100, "direction": "debit", "ledger_account_id": "la_1"},
					{"id": "le_2", "amount": 100, "direction": "credit", "ledger_account_id": "la_2"},
				},
				"created_at": "2024-01-02T03:04:05Z",
				"updated_at": "2024-01-02T03:04:05Z",
			})
		})

		txn, err := client.LedgerTransactions().Create(context.Background(), &treasury.LedgerTransactionCreateParams{
			Status: treasury.LedgerTransactionStatusPosted,
			LedgerEntries: []treasury.LedgerEntryParams{
				{Amount: 100, Direction: treasury.PaymentDirectionDebit, LedgerAccountID: "la_1"},
				{Amount: 100, Direction: treasury.PaymentDirectionCredit, LedgerAccountID: "la_2"},
			},
		})
		require.NoError(t, err)
		require.Len(t, txn.LedgerEntries, 2)
		assert.Equal(t, treasury.PaymentDirectionCredit, txn.LedgerEntries[1].Direction.Or(""))
	})

	t.Run("requires two entries", func(t *testing.T) {
		t.Parallel()

		client := NewTestClient(t, "http://127.0.0.1:0")

		_, err := client.LedgerTransactions().Create(context.Background(), &treasury.LedgerTransactionCreateParams{
			LedgerEntries: []treasury.LedgerEntryParams{
				{Amount: 100, Direction: treasury.PaymentDirectionDebit, LedgerAccountID: "la_1"},
			},
		})
		require.ErrorIs(t, err, treasury.ErrRequestValidationFailed)
		assert.Contains(t, err.Error(), "LedgerEntries: must be at least 2")
	})
}

func TestLedgerTransactionsClient_List(t *testing.T) {
	t.Parallel()

	client := NewTestServer(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/ledger_transactions", request.URL.Path)
		assert.Equal(t, "lg_1", request.URL.Query().Get("ledger_id"))
		assert.Equal(t, "pending", request.URL.Query().Get("status"))

		WriteJSON(t, writer, http.StatusOK, map[string]interface{}{"items": []interface{}{}})
	})

	page, err := client.LedgerTransactions().List(context.Background(), &treasury.LedgerTransactionListParams{
		LedgerID: "lg_1",
		Status:   treasury.LedgerTransactionStatusPending,
	})
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNextPage())
}
