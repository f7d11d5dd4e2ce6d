package treasuryclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
	"github.com/fivetwenty-io/treasury-client/pkg/treasuryclient"
)

func clearEnv(t *testing.T) {
	t.Helper()

	t.Setenv("TREASURY_ORGANIZATION_ID", "")
	t.Setenv("TREASURY_API_KEY", "")
	t.Setenv("TREASURY_BASE_URL", "")
}

func TestNew(t *testing.T) {
	clearEnv(t)

	t.Run("nil config", func(t *testing.T) {
		client, err := treasuryclient.New(context.Background(), nil)
		require.ErrorIs(t, err, treasury.ErrConfigRequired)
		assert.Nil(t, client)
	})

	t.Run("missing organization ID", func(t *testing.T) {
		_, err := treasuryclient.New(context.Background(), &treasury.Config{APIKey: "key"})
		require.ErrorIs(t, err, treasury.ErrOrganizationIDRequired)
	})

	t.Run("missing API key", func(t *testing.T) {
		_, err := treasuryclient.New(context.Background(), &treasury.Config{OrganizationID: "org"})
		require.ErrorIs(t, err, treasury.ErrAPIKeyRequired)
	})

	t.Run("creates client with config", func(t *testing.T) {
		config := &treasury.Config{OrganizationID: "org", APIKey: "key", BaseURL: "api.example.com/"}

		client, err := treasuryclient.New(context.Background(), config)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, "api.example.com/", config.BaseURL)
	})
}

func TestNewWithCredentials(t *testing.T) {
	clearEnv(t)

	client, err := treasuryclient.NewWithCredentials(context.Background(), "org", "key")
	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewFromEnv(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		user, pass, ok := request.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "env-org", user)
		assert.Equal(t, "env-key", pass)

		_ = json.NewEncoder(writer).Encode(map[string]string{"ping": "pong"})
	}))
	defer server.Close()

	t.Setenv("TREASURY_ORGANIZATION_ID", "env-org")
	t.Setenv("TREASURY_API_KEY", "env-key")
	t.Setenv("TREASURY_BASE_URL", server.URL+"/")

	client, err := treasuryclient.NewFromEnv(context.Background())
	require.NoError(t, err)

	resp, err := client.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "pong", resp.Ping)
}

func TestClientIntegration(t *testing.T) {
	clearEnv(t)

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		switch {
		case request.URL.Path == "/api/payment_orders" && request.URL.Query().Get("after_cursor") == "":
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{
				"items": []map[string]interface{}{
					{"id": "po_1", "amount": 100, "status": "pending"},
					{"id": "po_2", "amount": 200, "status": "sent"},
				},
				"after_cursor": "po_2",
			})
		case request.URL.Path == "/api/payment_orders":
			_ = json.NewEncoder(writer).Encode(map[string]interface{}{"items": []interface{}{}})
		default:
			writer.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client, err := treasuryclient.New(context.Background(), &treasury.Config{
		BaseURL:        server.URL,
		OrganizationID: "org",
		APIKey:         "key",
	})
	require.NoError(t, err)

	page, err := client.PaymentOrders().List(context.Background(), nil)
	require.NoError(t, err)

	var ids []string

	err = page.AutoPager().ForEach(context.Background(), func(order treasury.PaymentOrder) error {
		ids = append(ids, order.ID)

		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "po_1,po_2", strings.Join(ids, ","))
}
