package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/fivetwenty-io/treasury-client/internal/http"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// CounterpartiesClient implements treasury.CounterpartiesClient.
type CounterpartiesClient struct {
	*ResourceClient[
		treasury.Counterparty,
		treasury.CounterpartyCreateParams,
		treasury.CounterpartyUpdateParams,
		treasury.CounterpartyListParams,
	]
}

// NewCounterpartiesClient creates a new counterparties client.
func NewCounterpartiesClient(httpClient *internalhttp.Client) *CounterpartiesClient {
	return &CounterpartiesClient{
		ResourceClient: NewResourceClient[
			treasury.Counterparty,
			treasury.CounterpartyCreateParams,
			treasury.CounterpartyUpdateParams,
			treasury.CounterpartyListParams,
		](httpClient, "/api/counterparties", "counterparty", "counterparties"),
	}
}

// CollectAccountDetails implements treasury.CounterpartiesClient.CollectAccountDetails.
func (c *CounterpartiesClient) CollectAccountDetails(
	ctx context.Context, id string, params *treasury.CounterpartyCollectAccountParams,
) (*treasury.CounterpartyCollectAccountResponse, error) {
	var result treasury.CounterpartyCollectAccountResponse

	err := c.action(ctx, http.MethodPost, id, "collect_account", params, &result)
	if err != nil {
		return nil, fmt.Errorf("collecting counterparty account details: %w", err)
	}

	return &result, nil
}
