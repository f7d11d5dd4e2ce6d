package client

import (
	internalhttp "github.com/fivetwenty-io/treasury-client/internal/http"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// ExpectedPaymentsClient implements treasury.ExpectedPaymentsClient.
type ExpectedPaymentsClient struct {
	*ResourceClient[
		treasury.ExpectedPayment,
		treasury.ExpectedPaymentCreateParams,
		treasury.ExpectedPaymentUpdateParams,
		treasury.ExpectedPaymentListParams,
	]
}

// NewExpectedPaymentsClient creates a new expected payments client.
func NewExpectedPaymentsClient(httpClient *internalhttp.Client) *ExpectedPaymentsClient {
	return &ExpectedPaymentsClient{
		ResourceClient: NewResourceClient[
			treasury.ExpectedPayment,
			treasury.ExpectedPaymentCreateParams,
			treasury.ExpectedPaymentUpdateParams,
			treasury.ExpectedPaymentListParams,
		](httpClient, "/api/expected_payments", "expected payment", "expected payments"),
	}
}
