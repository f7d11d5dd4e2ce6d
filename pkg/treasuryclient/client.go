package treasuryclient

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/fivetwenty-io/treasury-client/internal/client"
	"github.com/fivetwenty-io/treasury-client/internal/constants"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// New creates a new treasury API client. Empty credentials and base URL are
// read from the TREASURY_ORGANIZATION_ID, TREASURY_API_KEY and
// TREASURY_BASE_URL environment variables. The config is not modified.
func New(ctx context.Context, config *treasury.Config) (treasury.Client, error) {
	if config == nil {
		return nil, treasury.ErrConfigRequired
	}

	resolved := *config
	resolved.BaseURL = normalizeBaseURL(firstNonEmpty(config.BaseURL, os.Getenv(constants.EnvBaseURL), constants.DefaultBaseURL))
	resolved.OrganizationID = firstNonEmpty(config.OrganizationID, os.Getenv(constants.EnvOrganizationID))
	resolved.APIKey = firstNonEmpty(config.APIKey, os.Getenv(constants.EnvAPIKey))

	if resolved.OrganizationID == "" {
		return nil, treasury.ErrOrganizationIDRequired
	}

	if resolved.APIKey == "" {
		return nil, treasury.ErrAPIKeyRequired
	}

	c, err := client.New(ctx, &resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithCredentials creates a client for the default API root.
func NewWithCredentials(ctx context.Context, organizationID, apiKey string) (treasury.Client, error) {
	return New(ctx, &treasury.Config{
		OrganizationID: organizationID,
		APIKey:         apiKey,
	})
}

// NewFromEnv creates a client configured entirely from the environment.
func NewFromEnv(ctx context.Context) (treasury.Client, error) {
	return New(ctx, &treasury.Config{})
}

// normalizeBaseURL trims a trailing slash and defaults the scheme to https.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	return baseURL
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
