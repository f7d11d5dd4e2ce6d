package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// NewLedgersCommand creates the ledgers command group
func NewLedgersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ledgers",
		Aliases: []string{"ledger"},
		Short:   "Manage ledgers",
		Long:    "List, create, rename and delete ledgers",
	}

	cmd.AddCommand(newLedgersListCommand())
	cmd.AddCommand(newLedgersGetCommand())
	cmd.AddCommand(newLedgersCreateCommand())
	cmd.AddCommand(newLedgersUpdateCommand())
	cmd.AddCommand(newLedgersDeleteCommand())

	return cmd
}

func newLedgersListCommand() *cobra.Command {
	var (
		flags    listFlags
		ids      []string
		metadata []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledgers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := flags.validate()
			if err != nil {
				return err
			}

			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			page, err := client.Ledgers().List(ctx, &treasury.LedgerListParams{
				PerPage:  flags.perPage,
				IDs:      ids,
				Metadata: meta,
			})
			if err != nil {
				return fmt.Errorf("failed to list ledgers: %w", err)
			}

			ledgers, err := collectItems(ctx, page, &flags)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(ledgers))
			for _, ledger := range ledgers {
				rows = append(rows, []string{
					ledger.ID,
					ledger.Name,
					fieldString(ledger.Description),
					ledger.CreatedAt.Format(timeLayout),
				})
			}

			err = renderTable(cmd, ledgers, []string{"ID", "Name", "Description", "Created"}, rows)
			if err != nil {
				return err
			}

			printMoreHint(cmd, page, &flags)

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringSliceVar(&ids, "id", nil, "only these ledger IDs")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "filter by metadata key=value")

	return cmd
}

func newLedgersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LEDGER_ID",
		Short: "Get ledger details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			ledger, err := client.Ledgers().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get ledger: %w", err)
			}

			return renderLedger(cmd, ledger)
		},
	}
}

func renderLedger(cmd *cobra.Command, ledger *treasury.Ledger) error {
	return renderDetails(cmd, ledger, [][]string{
		{"ID", ledger.ID},
		{"Name", ledger.Name},
		{"Description", fieldString(ledger.Description)},
		{"Metadata", formatMetadata(ledger.Metadata)},
		{"Created", ledger.CreatedAt.Format(timeLayout)},
		{"Updated", ledger.UpdatedAt.Format(timeLayout)},
	})
}

func newLedgersCreateCommand() *cobra.Command {
	var (
		name        string
		description string
		metadata    []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			ledger, err := client.Ledgers().Create(ctx, &treasury.LedgerCreateParams{
				Name:        name,
				Description: description,
				Metadata:    meta,
			})
			if err != nil {
				return fmt.Errorf("failed to create ledger: %w", err)
			}

			return renderLedger(cmd, ledger)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "ledger name")
	cmd.Flags().StringVar(&description, "description", "", "description")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata key=value")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newLedgersUpdateCommand() *cobra.Command {
	var (
		name             string
		description      string
		clearDescription bool
	)

	cmd := &cobra.Command{
		Use:   "update LEDGER_ID",
		Short: "Update a ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &treasury.LedgerUpdateParams{}

			if cmd.Flags().Changed("name") {
				params.Name = treasury.F(name)
			}

			switch {
			case clearDescription:
				params.Description = treasury.Null[string]()
			case cmd.Flags().Changed("description"):
				params.Description = treasury.F(description)
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			ledger, err := client.Ledgers().Update(ctx, args[0], params)
			if err != nil {
				return fmt.Errorf("failed to update ledger: %w", err)
			}

			return renderLedger(cmd, ledger)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().BoolVar(&clearDescription, "clear-description", false, "remove the description")
	cmd.MarkFlagsMutuallyExclusive("description", "clear-description")

	return cmd
}

func newLedgersDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete LEDGER_ID",
		Short: "Delete a ledger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, force, fmt.Sprintf("Really delete ledger '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Ledgers().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete ledger: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted ledger '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

// NewLedgerAccountsCommand creates the ledger accounts command group
func NewLedgerAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ledger-accounts",
		Aliases: []string{"ledger-account", "la"},
		Short:   "Manage ledger accounts",
		Long:    "List, create and inspect the balances of ledger accounts",
	}

	cmd.AddCommand(newLedgerAccountsListCommand())
	cmd.AddCommand(newLedgerAccountsGetCommand())
	cmd.AddCommand(newLedgerAccountsCreateCommand())

	return cmd
}

func newLedgerAccountsListCommand() *cobra.Command {
	var (
		flags    listFlags
		ledgerID string
		currency string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := flags.validate()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			page, err := client.LedgerAccounts().List(ctx, &treasury.LedgerAccountListParams{
				PerPage:  flags.perPage,
				LedgerID: ledgerID,
				Currency: treasury.Currency(currency),
			})
			if err != nil {
				return fmt.Errorf("failed to list ledger accounts: %w", err)
			}

			accounts, err := collectItems(ctx, page, &flags)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(accounts))
			for _, account := range accounts {
				rows = append(rows, []string{
					account.ID,
					account.Name,
					account.LedgerID,
					fieldString(account.NormalBalance),
					postedBalance(account),
				})
			}

			err = renderTable(cmd, accounts, []string{"ID", "Name", "Ledger", "Normal Balance", "Posted"}, rows)
			if err != nil {
				return err
			}

			printMoreHint(cmd, page, &flags)

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&ledgerID, "ledger-id", "", "filter by ledger")
	cmd.Flags().StringVar(&currency, "currency", "", "filter by currency")

	return cmd
}

func postedBalance(account treasury.LedgerAccount) string {
	balances, err := account.Balances.GetRequired("balances")
	if err != nil {
		return constants.NotAvailable
	}

	return formatAmount(balances.PostedBalance.Amount, fieldString(account.Currency))
}

func newLedgerAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LEDGER_ACCOUNT_ID",
		Short: "Get ledger account details and balances",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			account, err := client.LedgerAccounts().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get ledger account: %w", err)
			}

			return renderLedgerAccount(cmd, account)
		},
	}
}

func renderLedgerAccount(cmd *cobra.Command, account *treasury.LedgerAccount) error {
	currency := fieldString(account.Currency)

	rows := [][]string{
		{"ID", account.ID},
		{"Name", account.Name},
		{"Ledger", account.LedgerID},
		{"Currency", currency},
		{"Normal Balance", fieldString(account.NormalBalance)},
		{"Lock Version", fieldString(account.LockVersion)},
	}

	if balances, err := account.Balances.GetRequired("balances"); err == nil {
		rows = append(rows,
			[]string{"Pending Balance", formatAmount(balances.PendingBalance.Amount, currency)},
			[]string{"Posted Balance", formatAmount(balances.PostedBalance.Amount, currency)},
			[]string{"Available Balance", formatAmount(balances.AvailableBalance.Amount, currency)},
		)
	}

	rows = append(rows,
		[]string{"Description", fieldString(account.Description)},
		[]string{"Created", account.CreatedAt.Format(timeLayout)},
	)

	return renderDetails(cmd, account, rows)
}

func newLedgerAccountsCreateCommand() *cobra.Command {
	var (
		name          string
		ledgerID      string
		currency      string
		normalBalance string
		description   string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a ledger account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			account, err := client.LedgerAccounts().Create(ctx, &treasury.LedgerAccountCreateParams{
				Name:          name,
				LedgerID:      ledgerID,
				Currency:      treasury.Currency(currency),
				NormalBalance: treasury.NormalBalance(normalBalance),
				Description:   description,
			})
			if err != nil {
				return fmt.Errorf("failed to create ledger account: %w", err)
			}

			return renderLedgerAccount(cmd, account)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "account name")
	cmd.Flags().StringVar(&ledgerID, "ledger-id", "", "owning ledger")
	cmd.Flags().StringVar(&currency, "currency", string(treasury.CurrencyUSD), "currency code")
	cmd.Flags().StringVar(&normalBalance, "normal-balance", "", "credit or debit")
	cmd.Flags().StringVar(&description, "description", "", "description")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("ledger-id")
	_ = cmd.MarkFlagRequired("normal-balance")

	return cmd
}

// NewLedgerTransactionsCommand creates the ledger transactions command group
func NewLedgerTransactionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ledger-transactions",
		Aliases: []string{"ledger-transaction", "lt"},
		Short:   "Manage ledger transactions",
		Long:    "List, record and post double-entry ledger transactions",
	}

	cmd.AddCommand(newLedgerTransactionsListCommand())
	cmd.AddCommand(newLedgerTransactionsGetCommand())
	cmd.AddCommand(newLedgerTransactionsCreateCommand())
	cmd.AddCommand(newLedgerTransactionsPostCommand())

	return cmd
}

func newLedgerTransactionsListCommand() *cobra.Command {
	var (
		flags           listFlags
		ledgerID        string
		ledgerAccountID string
		status          string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List ledger transactions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := flags.validate()
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			page, err := client.LedgerTransactions().List(ctx, &treasury.LedgerTransactionListParams{
				PerPage:         flags.perPage,
				LedgerID:        ledgerID,
				LedgerAccountID: ledgerAccountID,
				Status:          treasury.LedgerTransactionStatus(status),
			})
			if err != nil {
				return fmt.Errorf("failed to list ledger transactions: %w", err)
			}

			transactions, err := collectItems(ctx, page, &flags)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(transactions))
			for _, txn := range transactions {
				rows = append(rows, []string{
					txn.ID,
					txn.LedgerID,
					fieldString(txn.Status),
					strconv.Itoa(len(txn.LedgerEntries)),
					fieldString(txn.Description),
					fieldTime(txn.PostedAt),
				})
			}

			err = renderTable(cmd, transactions, []string{"ID", "Ledger", "Status", "Entries", "Description", "Posted"}, rows)
			if err != nil {
				return err
			}

			printMoreHint(cmd, page, &flags)

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&ledgerID, "ledger-id", "", "filter by ledger")
	cmd.Flags().StringVar(&ledgerAccountID, "ledger-account-id", "", "filter by ledger account")
	cmd.Flags().StringVar(&status, "status", "", "filter by status (pending, posted, archived)")

	return cmd
}

func newLedgerTransactionsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get LEDGER_TRANSACTION_ID",
		Short: "Get ledger transaction details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			txn, err := client.LedgerTransactions().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get ledger transaction: %w", err)
			}

			return renderLedgerTransaction(cmd, txn)
		},
	}
}

func renderLedgerTransaction(cmd *cobra.Command, txn *treasury.LedgerTransaction) error {
	entries := make([]string, 0, len(txn.LedgerEntries))
	for _, entry := range txn.LedgerEntries {
		entries = append(entries, fmt.Sprintf("%s %d %s", fieldString(entry.Direction), entry.Amount, entry.LedgerAccountID))
	}

	return renderDetails(cmd, txn, [][]string{
		{"ID", txn.ID},
		{"Ledger", txn.LedgerID},
		{"Status", fieldString(txn.Status)},
		{"Entries", strings.Join(entries, "\n")},
		{"Description", fieldString(txn.Description)},
		{"External ID", fieldString(txn.ExternalID)},
		{"Effective Date", fieldString(txn.EffectiveDate)},
		{"Posted", fieldTime(txn.PostedAt)},
		{"Created", txn.CreatedAt.Format(timeLayout)},
	})
}

func newLedgerTransactionsCreateCommand() *cobra.Command {
	var (
		file           string
		idempotencyKey string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Record a ledger transaction",
		Long:  "Record a ledger transaction from a JSON request body (--file, or - for stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &treasury.LedgerTransactionCreateParams{}

			err := readJSONFile(cmd, file, params)
			if err != nil {
				return err
			}

			params.IdempotencyKey = idempotencyKey

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			txn, err := client.LedgerTransactions().Create(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to create ledger transaction: %w", err)
			}

			return renderLedgerTransaction(cmd, txn)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON request body")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "reuse a key to retry a create safely")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func newLedgerTransactionsPostCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "post LEDGER_TRANSACTION_ID",
		Short: "Post a pending ledger transaction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			txn, err := client.LedgerTransactions().Update(ctx, args[0], &treasury.LedgerTransactionUpdateParams{
				Status: treasury.F(treasury.LedgerTransactionStatusPosted),
			})
			if err != nil {
				return fmt.Errorf("failed to post ledger transaction: %w", err)
			}

			return renderLedgerTransaction(cmd, txn)
		},
	}
}
