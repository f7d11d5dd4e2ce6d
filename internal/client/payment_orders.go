package client

import (
	internalhttp "github.com/fivetwenty-io/treasury-client/internal/http"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// PaymentOrdersClient implements treasury.PaymentOrdersClient.
type PaymentOrdersClient struct {
	*ResourceClient[
		treasury.PaymentOrder,
		treasury.PaymentOrderCreateParams,
		treasury.PaymentOrderUpdateParams,
		treasury.PaymentOrderListParams,
	]
}

// NewPaymentOrdersClient creates a new payment orders client.
func NewPaymentOrdersClient(httpClient *internalhttp.Client) *PaymentOrdersClient {
	return &PaymentOrdersClient{
		ResourceClient: NewResourceClient[
			treasury.PaymentOrder,
			treasury.PaymentOrderCreateParams,
			treasury.PaymentOrderUpdateParams,
			treasury.PaymentOrderListParams,
		](httpClient, "/api/payment_orders", "payment order", "payment orders"),
	}
}
