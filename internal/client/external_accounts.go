package client

import (
	"context"
	"fmt"
	"net/http"

	internalhttp "github.com/fivetwenty-io/treasury-client/internal/http"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// ExternalAccountsClient implements treasury.ExternalAccountsClient.
type ExternalAccountsClient struct {
	*ResourceClient[
		treasury.ExternalAccount,
		treasury.ExternalAccountCreateParams,
		treasury.ExternalAccountUpdateParams,
		treasury.ExternalAccountListParams,
	]
}

// NewExternalAccountsClient creates a new external accounts client.
func NewExternalAccountsClient(httpClient *internalhttp.Client) *ExternalAccountsClient {
	return &ExternalAccountsClient{
		ResourceClient: NewResourceClient[
			treasury.ExternalAccount,
			treasury.ExternalAccountCreateParams,
			treasury.ExternalAccountUpdateParams,
			treasury.ExternalAccountListParams,
		](httpClient, "/api/external_accounts", "external account", "external accounts"),
	}
}

// Verify implements treasury.ExternalAccountsClient.Verify.
func (c *ExternalAccountsClient) Verify(
	ctx context.Context, id string, params *treasury.ExternalAccountVerifyParams,
) (*treasury.ExternalAccount, error) {
	var account treasury.ExternalAccount

	err := c.action(ctx, http.MethodPost, id, "verify", params, &account)
	if err != nil {
		return nil, fmt.Errorf("verifying external account: %w", err)
	}

	return &account, nil
}

// CompleteVerification implements treasury.ExternalAccountsClient.CompleteVerification.
func (c *ExternalAccountsClient) CompleteVerification(
	ctx context.Context, id string, params *treasury.ExternalAccountCompleteVerificationParams,
) (*treasury.ExternalAccount, error) {
	var account treasury.ExternalAccount

	err := c.action(ctx, http.MethodPost, id, "complete_verification", params, &account)
	if err != nil {
		return nil, fmt.Errorf("completing external account verification: %w", err)
	}

	return &account, nil
}
