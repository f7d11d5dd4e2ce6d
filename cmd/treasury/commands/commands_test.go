package commands

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
)

func TestResourceCommandTrees(t *testing.T) {
	tests := []struct {
		name        string
		cmd         *cobra.Command
		use         string
		subcommands []string
	}{
		{"counterparties", NewCounterpartiesCommand(), "counterparties", []string{"list", "get", "create", "update", "delete", "collect-account"}},
		{"external accounts", NewExternalAccountsCommand(), "external-accounts", []string{"list", "get", "create", "delete", "verify", "complete-verification"}},
		{"payment orders", NewPaymentOrdersCommand(), "payment-orders", []string{"list", "get", "create", "update", "batch-create"}},
		{"expected payments", NewExpectedPaymentsCommand(), "expected-payments", []string{"list", "get", "create", "delete"}},
		{"invoices", NewInvoicesCommand(), "invoices", []string{"list", "get", "create", "void", "add-payment-order"}},
		{"ledgers", NewLedgersCommand(), "ledgers", []string{"list", "get", "create", "update", "delete"}},
		{"ledger accounts", NewLedgerAccountsCommand(), "ledger-accounts", []string{"list", "get", "create"}},
		{"ledger transactions", NewLedgerTransactionsCommand(), "ledger-transactions", []string{"list", "get", "create", "post"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.use, tt.cmd.Use)
			assert.NotEmpty(t, tt.cmd.Short)
			assert.ElementsMatch(t, tt.subcommands, subcommandNames(tt.cmd))

			list := findSubcommand(tt.cmd, "list")
			require.NotNil(t, list)
			assert.NotNil(t, list.Flags().Lookup("all"))
			assert.NotNil(t, list.Flags().Lookup("per-page"))
			assert.NotNil(t, list.Flags().Lookup("max-items"))

			get := findSubcommand(tt.cmd, "get")
			require.NotNil(t, get)
			assert.NotNil(t, get.Args)
			assert.NotNil(t, get.RunE)
		})
	}
}

func TestDeleteCommandsHaveForceFlag(t *testing.T) {
	for _, group := range []*cobra.Command{
		NewCounterpartiesCommand(),
		NewExternalAccountsCommand(),
		NewExpectedPaymentsCommand(),
		NewLedgersCommand(),
	} {
		del := findSubcommand(group, "delete")
		require.NotNil(t, del, group.Name())

		force := del.Flags().Lookup("force")
		require.NotNil(t, force, group.Name())
		assert.Equal(t, "f", force.Shorthand)
		assert.Equal(t, "false", force.DefValue)
	}
}

func TestListFlags_Validate(t *testing.T) {
	tests := []struct {
		name    string
		perPage int
		wantErr bool
	}{
		{"default", constants.DefaultPageSize, false},
		{"max", constants.MaxPageSize, false},
		{"zero", 0, true},
		{"too large", constants.MaxPageSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := listFlags{perPage: tt.perPage}

			err := flags.validate()
			if tt.wantErr {
				require.ErrorIs(t, err, constants.ErrInvalidFlag)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestParseMetadata(t *testing.T) {
	metadata, err := parseMetadata(nil)
	require.NoError(t, err)
	assert.Nil(t, metadata)

	metadata, err = parseMetadata([]string{"team=payments", "env=", "url=a=b"})
	require.NoError(t, err)
	assert.Equal(t, "payments", metadata["team"])
	assert.Empty(t, metadata["env"])
	assert.Contains(t, metadata, "env")
	assert.Equal(t, "a=b", metadata["url"])

	_, err = parseMetadata([]string{"novalue"})
	require.ErrorIs(t, err, constants.ErrInvalidFlag)

	_, err = parseMetadata([]string{"=value"})
	require.ErrorIs(t, err, constants.ErrInvalidFlag)
}

func TestFormatMetadata(t *testing.T) {
	assert.Empty(t, formatMetadata(nil))
	assert.Equal(t, "a=1, b=2", formatMetadata(map[string]string{"b": "2", "a": "1"}))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1500", formatAmount(1500, ""))
	assert.Equal(t, "1500 USD", formatAmount(1500, "USD"))
}
