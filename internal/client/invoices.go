package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	internalhttp "github.com/fivetwenty-io/treasury-client/internal/http"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// InvoicesClient implements treasury.InvoicesClient.
type InvoicesClient struct {
	*ResourceClient[
		treasury.Invoice,
		treasury.InvoiceCreateParams,
		treasury.InvoiceUpdateParams,
		treasury.InvoiceListParams,
	]
}

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(httpClient *internalhttp.Client) *InvoicesClient {
	return &InvoicesClient{
		ResourceClient: NewResourceClient[
			treasury.Invoice,
			treasury.InvoiceCreateParams,
			treasury.InvoiceUpdateParams,
			treasury.InvoiceListParams,
		](httpClient, "/api/invoices", "invoice", "invoices"),
	}
}

// AddPaymentOrder implements treasury.InvoicesClient.AddPaymentOrder.
func (c *InvoicesClient) AddPaymentOrder(ctx context.Context, id string, paymentOrderID string) error {
	if paymentOrderID == "" {
		return fmt.Errorf("adding payment order to invoice: %w", treasury.ErrMissingIDParameter)
	}

	err := c.action(ctx, http.MethodPut, id, "payment_orders/"+url.PathEscape(paymentOrderID), nil, nil)
	if err != nil {
		return fmt.Errorf("adding payment order to invoice: %w", err)
	}

	return nil
}
