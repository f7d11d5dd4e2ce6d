package treasury

import (
	"context"
	"time"
)

// CounterpartiesClient provides access to counterparties.
type CounterpartiesClient interface {
	Create(ctx context.Context, params *CounterpartyCreateParams) (*Counterparty, error)
	Retrieve(ctx context.Context, id string) (*Counterparty, error)
	Update(ctx context.Context, id string, params *CounterpartyUpdateParams) (*Counterparty, error)
	List(ctx context.Context, params *CounterpartyListParams) (*CounterpartyPage, error)
	Delete(ctx context.Context, id string) error
	CollectAccountDetails(ctx context.Context, id string, params *CounterpartyCollectAccountParams) (*CounterpartyCollectAccountResponse, error)
}

// ExternalAccountsClient provides access to external accounts.
type ExternalAccountsClient interface {
	Create(ctx context.Context, params *ExternalAccountCreateParams) (*ExternalAccount, error)
	Retrieve(ctx context.Context, id string) (*ExternalAccount, error)
	Update(ctx context.Context, id string, params *ExternalAccountUpdateParams) (*ExternalAccount, error)
	List(ctx context.Context, params *ExternalAccountListParams) (*ExternalAccountPage, error)
	Delete(ctx context.Context, id string) error
	Verify(ctx context.Context, id string, params *ExternalAccountVerifyParams) (*ExternalAccount, error)
	CompleteVerification(ctx context.Context, id string, params *ExternalAccountCompleteVerificationParams) (*ExternalAccount, error)
}

// PaymentOrdersClient provides access to payment orders.
type PaymentOrdersClient interface {
	Create(ctx context.Context, params *PaymentOrderCreateParams) (*PaymentOrder, error)
	Retrieve(ctx context.Context, id string) (*PaymentOrder, error)
	Update(ctx context.Context, id string, params *PaymentOrderUpdateParams) (*PaymentOrder, error)
	List(ctx context.Context, params *PaymentOrderListParams) (*PaymentOrderPage, error)
}

// ExpectedPaymentsClient provides access to expected payments.
type ExpectedPaymentsClient interface {
	Create(ctx context.Context, params *ExpectedPaymentCreateParams) (*ExpectedPayment, error)
	Retrieve(ctx context.Context, id string) (*ExpectedPayment, error)
	Update(ctx context.Context, id string, params *ExpectedPaymentUpdateParams) (*ExpectedPayment, error)
	List(ctx context.Context, params *ExpectedPaymentListParams) (*ExpectedPaymentPage, error)
	Delete(ctx context.Context, id string) error
}

// InvoicesClient provides access to invoices.
type InvoicesClient interface {
	Create(ctx context.Context, params *InvoiceCreateParams) (*Invoice, error)
	Retrieve(ctx context.Context, id string) (*Invoice, error)
	Update(ctx context.Context, id string, params *InvoiceUpdateParams) (*Invoice, error)
	List(ctx context.Context, params *InvoiceListParams) (*InvoicePage, error)
	AddPaymentOrder(ctx context.Context, id string, paymentOrderID string) error
}

// LedgersClient provides access to ledgers.
type LedgersClient interface {
	Create(ctx context.Context, params *LedgerCreateParams) (*Ledger, error)
	Retrieve(ctx context.Context, id string) (*Ledger, error)
	Update(ctx context.Context, id string, params *LedgerUpdateParams) (*Ledger, error)
	List(ctx context.Context, params *LedgerListParams) (*LedgerPage, error)
	Delete(ctx context.Context, id string) error
}

// LedgerAccountsClient provides access to ledger accounts.
type LedgerAccountsClient interface {
	Create(ctx context.Context, params *LedgerAccountCreateParams) (*LedgerAccount, error)
	Retrieve(ctx context.Context, id string) (*LedgerAccount, error)
	Update(ctx context.Context, id string, params *LedgerAccountUpdateParams) (*LedgerAccount, error)
	List(ctx context.Context, params *LedgerAccountListParams) (*LedgerAccountPage, error)
	Delete(ctx context.Context, id string) error
}

// LedgerTransactionsClient provides access to ledger transactions.
type LedgerTransactionsClient interface {
	Create(ctx context.Context, params *LedgerTransactionCreateParams) (*LedgerTransaction, error)
	Retrieve(ctx context.Context, id string) (*LedgerTransaction, error)
	Update(ctx context.Context, id string, params *LedgerTransactionUpdateParams) (*LedgerTransaction, error)
	List(ctx context.Context, params *LedgerTransactionListParams) (*LedgerTransactionPage, error)
}

// PaymentClients groups the payment related resource clients.
type PaymentClients interface {
	Counterparties() CounterpartiesClient
	ExternalAccounts() ExternalAccountsClient
	PaymentOrders() PaymentOrdersClient
	ExpectedPayments() ExpectedPaymentsClient
	Invoices() InvoicesClient
}

// LedgerClients groups the ledger resource clients.
type LedgerClients interface {
	Ledgers() LedgersClient
	LedgerAccounts() LedgerAccountsClient
	LedgerTransactions() LedgerTransactionsClient
}

// Client is the API client.
type Client interface {
	PaymentClients
	LedgerClients

	// Ping checks connectivity and credentials.
	Ping(ctx context.Context) (*PingResponse, error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a treasury.Client.
//
// Requests are authenticated with HTTP basic auth, the organization ID as
// user name and the API key as password. treasuryclient.New reads
// TREASURY_ORGANIZATION_ID and TREASURY_API_KEY when these are empty.
//
// Per-request timeouts should generally be controlled via the context passed
// to client methods. Retry behavior can be tuned via RetryMax, RetryWaitMin
// and RetryWaitMax.
type Config struct {
	// BaseURL: API root, e.g. "https://app.moderntreasury.com". treasuryclient.New
	// trims a trailing slash and adds "https://" if no scheme is present.
	BaseURL string
	// OrganizationID: basic auth user name.
	OrganizationID string
	// APIKey: basic auth password.
	APIKey string

	// HTTPTimeout: timeout of the underlying http.Client.
	HTTPTimeout time.Duration
	// RetryMax: maximum number of retries for 429, 5xx and connection errors.
	// If 0, a default is used; negative disables retries.
	RetryMax int
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration
	// RequestsPerSecond: client-side rate limit. Zero disables it.
	RequestsPerSecond float64
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// Cache: enables response caching of single-resource reads.
	Cache *CacheConfig
	// Interceptors run around every request in the order given.
	RequestInterceptors  []RequestInterceptor
	ResponseInterceptors []ResponseInterceptor
}
