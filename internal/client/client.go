package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fivetwenty-io/treasury-client/internal/auth"
	"github.com/fivetwenty-io/treasury-client/internal/http"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// Client implements the treasury.Client interface.
type Client struct {
	httpClient  *http.Client
	credentials auth.CredentialProvider
	logger      treasury.Logger
	cache       treasury.Cache

	// Resource clients
	counterparties     *CounterpartiesClient
	externalAccounts   *ExternalAccountsClient
	paymentOrders      *PaymentOrdersClient
	expectedPayments   *ExpectedPaymentsClient
	invoices           *InvoicesClient
	ledgers            *LedgersClient
	ledgerAccounts     *LedgerAccountsClient
	ledgerTransactions *LedgerTransactionsClient
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *treasury.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax != 0 || config.RetryWaitMin > 0 || config.RetryWaitMax > 0 {
		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, config.RetryWaitMin, config.RetryWaitMax))
	}

	return httpOpts
}

// createInterceptorChain combines the configured interceptors with the rate limiter.
func createInterceptorChain(config *treasury.Config) *treasury.InterceptorChain {
	chain := treasury.NewInterceptorChain()

	if config.RequestsPerSecond > 0 {
		chain.AddRequestInterceptor(treasury.RateLimitInterceptor(config.RequestsPerSecond))
	}

	for _, interceptor := range config.RequestInterceptors {
		chain.AddRequestInterceptor(interceptor)
	}

	for _, interceptor := range config.ResponseInterceptors {
		chain.AddResponseInterceptor(interceptor)
	}

	return chain
}

// New creates a new API client. The context bounds cache setup and any
// background cache maintenance.
func New(ctx context.Context, config *treasury.Config) (*Client, error) {
	if config == nil {
		return nil, treasury.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, treasury.ErrBaseURLRequired
	}

	credentials := auth.StaticCredentials{
		OrganizationID: config.OrganizationID,
		APIKey:         config.APIKey,
	}

	return NewWithCredentials(ctx, config, credentials)
}

// NewWithCredentials creates a new API client with a custom credential provider.
func NewWithCredentials(ctx context.Context, config *treasury.Config, credentials auth.CredentialProvider) (*Client, error) {
	httpOpts := createHTTPClientOptions(config)
	httpOpts = append(httpOpts, http.WithInterceptors(createInterceptorChain(config)))

	var cache treasury.Cache

	if config.Cache != nil {
		var err error

		cache, err = treasury.NewCacheFromConfig(ctx, config.Cache)
		if err != nil {
			return nil, fmt.Errorf("creating cache: %w", err)
		}

		manager := treasury.NewCacheManager(cache, config.Cache.Options)
		httpOpts = append(httpOpts, http.WithCache(manager, config.Cache.Policy))
	}

	client := &Client{
		httpClient:  http.NewClient(config.BaseURL, credentials, httpOpts...),
		credentials: credentials,
		logger:      config.Logger,
		cache:       cache,
	}

	client.initializeResourceClients()

	return client, nil
}

// NewFromHTTPClient wires resource clients around an existing transport.
func NewFromHTTPClient(httpClient *http.Client) *Client {
	client := &Client{httpClient: httpClient}
	client.initializeResourceClients()

	return client
}

func (c *Client) initializeResourceClients() {
	c.counterparties = NewCounterpartiesClient(c.httpClient)
	c.externalAccounts = NewExternalAccountsClient(c.httpClient)
	c.paymentOrders = NewPaymentOrdersClient(c.httpClient)
	c.expectedPayments = NewExpectedPaymentsClient(c.httpClient)
	c.invoices = NewInvoicesClient(c.httpClient)
	c.ledgers = NewLedgersClient(c.httpClient)
	c.ledgerAccounts = NewLedgerAccountsClient(c.httpClient)
	c.ledgerTransactions = NewLedgerTransactionsClient(c.httpClient)
}

// Close releases the cache connection, if any.
func (c *Client) Close() {
	if closer, ok := c.cache.(interface{ Close() }); ok {
		closer.Close()
	}
}

// Ping implements treasury.Client.Ping.
func (c *Client) Ping(ctx context.Context) (*treasury.PingResponse, error) {
	resp, err := c.httpClient.Get(ctx, "/api/ping", nil)
	if err != nil {
		return nil, fmt.Errorf("pinging API: %w", err)
	}

	var ping treasury.PingResponse

	err = json.Unmarshal(resp.Body, &ping)
	if err != nil {
		return nil, fmt.Errorf("parsing ping response: %w", err)
	}

	return &ping, nil
}

// Counterparties implements treasury.Client.Counterparties.
func (c *Client) Counterparties() treasury.CounterpartiesClient {
	return c.counterparties
}

// ExternalAccounts implements treasury.Client.ExternalAccounts.
func (c *Client) ExternalAccounts() treasury.ExternalAccountsClient {
	return c.externalAccounts
}

// PaymentOrders implements treasury.Client.PaymentOrders.
func (c *Client) PaymentOrders() treasury.PaymentOrdersClient {
	return c.paymentOrders
}

// ExpectedPayments implements treasury.Client.ExpectedPayments.
func (c *Client) ExpectedPayments() treasury.ExpectedPaymentsClient {
	return c.expectedPayments
}

// Invoices implements treasury.Client.Invoices.
func (c *Client) Invoices() treasury.InvoicesClient {
	return c.invoices
}

// Ledgers implements treasury.Client.Ledgers.
func (c *Client) Ledgers() treasury.LedgersClient {
	return c.ledgers
}

// LedgerAccounts implements treasury.Client.LedgerAccounts.
func (c *Client) LedgerAccounts() treasury.LedgerAccountsClient {
	return c.ledgerAccounts
}

// LedgerTransactions implements treasury.Client.LedgerTransactions.
func (c *Client) LedgerTransactions() treasury.LedgerTransactionsClient {
	return c.ledgerTransactions
}

var _ treasury.Client = (*Client)(nil)
