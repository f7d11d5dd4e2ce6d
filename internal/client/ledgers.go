package client

import (
	internalhttp "github.com/fivetwenty-io/treasury-client/internal/http"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// LedgersClient implements treasury.LedgersClient.
type LedgersClient struct {
	*ResourceClient[
		treasury.Ledger,
		treasury.LedgerCreateParams,
		treasury.LedgerUpdateParams,
		treasury.LedgerListParams,
	]
}

// NewLedgersClient creates a new ledgers client.
func NewLedgersClient(httpClient *internalhttp.Client) *LedgersClient {
	return &LedgersClient{
		ResourceClient: NewResourceClient[
			treasury.Ledger,
			treasury.LedgerCreateParams,
			treasury.LedgerUpdateParams,
			treasury.LedgerListParams,
		](httpClient, "/api/ledgers", "ledger", "ledgers"),
	}
}

// LedgerAccountsClient implements treasury.LedgerAccountsClient.
type LedgerAccountsClient struct {
	*ResourceClient[
		treasury.LedgerAccount,
		treasury.LedgerAccountCreateParams,
		treasury.LedgerAccountUpdateParams,
		treasury.LedgerAccountListParams,
	]
}

// NewLedgerAccountsClient creates a new ledger accounts client.
func NewLedgerAccountsClient(httpClient *internalhttp.Client) *LedgerAccountsClient {
	return &LedgerAccountsClient{
		ResourceClient: NewResourceClient[
			treasury.LedgerAccount,
			treasury.LedgerAccountCreateParams,
			treasury.LedgerAccountUpdateParams,
			treasury.LedgerAccountListParams,
		](httpClient, "/api/ledger_accounts", "ledger account", "ledger accounts"),
	}
}

// LedgerTransactionsClient implements treasury.LedgerTransactionsClient.
type LedgerTransactionsClient struct {
	*ResourceClient[
		treasury.LedgerTransaction,
		treasury.LedgerTransactionCreateParams,
		treasury.LedgerTransactionUpdateParams,
		treasury.LedgerTransactionListParams,
	]
}

// NewLedgerTransactionsClient creates a new ledger transactions client.
func NewLedgerTransactionsClient(httpClient *internalhttp.Client) *LedgerTransactionsClient {
	return &LedgerTransactionsClient{
		ResourceClient: NewResourceClient[
			treasury.LedgerTransaction,
			treasury.LedgerTransactionCreateParams,
			treasury.LedgerTransactionUpdateParams,
			treasury.LedgerTransactionListParams,
		](httpClient, "/api/ledger_transactions", "ledger transaction", "ledger transactions"),
	}
}
