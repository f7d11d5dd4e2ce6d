package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// NewExternalAccountsCommand creates the external accounts command group
func NewExternalAccountsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "external-accounts",
		Aliases: []string{"external-account", "ea"},
		Short:   "Manage external accounts",
		Long:    "List, create, verify and delete the bank accounts of counterparties",
	}

	cmd.AddCommand(newExternalAccountsListCommand())
	cmd.AddCommand(newExternalAccountsGetCommand())
	cmd.AddCommand(newExternalAccountsCreateCommand())
	cmd.AddCommand(newExternalAccountsDeleteCommand())
	cmd.AddCommand(newExternalAccountsVerifyCommand())
	cmd.AddCommand(newExternalAccountsCompleteVerificationCommand())

	return cmd
}

func newExternalAccountsListCommand() *cobra.Command {
	var (
		flags          listFlags
		counterpartyID string
		partyName      string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List external accounts",
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

			page, err := client.ExternalAccounts().List(ctx, &treasury.ExternalAccountListParams{
				PerPage:        flags.perPage,
				CounterpartyID: counterpartyID,
				PartyName:      partyName,
			})
			if err != nil {
				return fmt.Errorf("failed to list external accounts: %w", err)
			}

			accounts, err := collectItems(ctx, page, &flags)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(accounts))
			for _, account := range accounts {
				rows = append(rows, []string{
					account.ID,
					fieldString(account.Name),
					fieldString(account.AccountType),
					fieldString(account.CounterpartyID),
					fieldString(account.VerificationStatus),
				})
			}

			err = renderTable(cmd, accounts, []string{"ID", "Name", "Type", "Counterparty", "Verification"}, rows)
			if err != nil {
				return err
			}

			printMoreHint(cmd, page, &flags)

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&counterpartyID, "counterparty-id", "", "filter by counterparty")
	cmd.Flags().StringVar(&partyName, "party-name", "", "filter by account holder name")

	return cmd
}

func newExternalAccountsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EXTERNAL_ACCOUNT_ID",
		Short: "Get external account details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			account, err := client.ExternalAccounts().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get external account: %w", err)
			}

			return renderExternalAccount(cmd, account)
		},
	}
}

func renderExternalAccount(cmd *cobra.Command, account *treasury.ExternalAccount) error {
	numbers := make([]string, 0, len(account.AccountDetails))
	for _, detail := range account.AccountDetails {
		numbers = append(numbers, fieldString(detail.AccountNumberSafe))
	}

	routing := make([]string, 0, len(account.RoutingDetails))
	for _, detail := range account.RoutingDetails {
		routing = append(routing, fmt.Sprintf("%s (%s)", fieldString(detail.RoutingNumber), fieldString(detail.RoutingNumberType)))
	}

	return renderDetails(cmd, account, [][]string{
		{"ID", account.ID},
		{"Name", fieldString(account.Name)},
		{"Account Type", fieldString(account.AccountType)},
		{"Party Name", fieldString(account.PartyName)},
		{"Party Type", fieldString(account.PartyType)},
		{"Counterparty", fieldString(account.CounterpartyID)},
		{"Account Numbers", strings.Join(numbers, ", ")},
		{"Routing Numbers", strings.Join(routing, ", ")},
		{"Verification", fieldString(account.VerificationStatus)},
		{"Metadata", formatMetadata(account.Metadata)},
		{"Created", account.CreatedAt.Format(timeLayout)},
	})
}

func newExternalAccountsCreateCommand() *cobra.Command {
	var (
		file              string
		counterpartyID    string
		name              string
		accountType       string
		accountNumber     string
		routingNumber     string
		routingNumberType string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an external account",
		Long:  "Create an external account from flags or from a JSON request body (--file, or - for stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &treasury.ExternalAccountCreateParams{}

			if file != "" {
				err := readJSONFile(cmd, file, params)
				if err != nil {
					return err
				}
			}

			if counterpartyID != "" {
				params.CounterpartyID = counterpartyID
			}

			if name != "" {
				params.Name = name
			}

			if accountType != "" {
				params.AccountType = treasury.AccountType(accountType)
			}

			if accountNumber != "" {
				params.AccountDetails = append(params.AccountDetails, treasury.AccountDetailParams{AccountNumber: accountNumber})
			}

			if routingNumber != "" {
				params.RoutingDetails = append(params.RoutingDetails, treasury.RoutingDetailParams{
					RoutingNumber:     routingNumber,
					RoutingNumberType: treasury.RoutingNumberType(routingNumberType),
				})
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			account, err := client.ExternalAccounts().Create(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to create external account: %w", err)
			}

			return renderExternalAccount(cmd, account)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON request body")
	cmd.Flags().StringVar(&counterpartyID, "counterparty-id", "", "owning counterparty")
	cmd.Flags().StringVar(&name, "name", "", "account nickname")
	cmd.Flags().StringVar(&accountType, "account-type", "", "checking, savings, ...")
	cmd.Flags().StringVar(&accountNumber, "account-number", "", "bank account number")
	cmd.Flags().StringVar(&routingNumber, "routing-number", "", "bank routing number")
	cmd.Flags().StringVar(&routingNumberType, "routing-number-type", string(treasury.RoutingNumberTypeABA), "routing number type")

	return cmd
}

func newExternalAccountsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete EXTERNAL_ACCOUNT_ID",
		Short: "Delete an external account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, force, fmt.Sprintf("Really delete external account '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.ExternalAccounts().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete external account: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted external account '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func newExternalAccountsVerifyCommand() *cobra.Command {
	var (
		originatingAccountID string
		paymentType          string
		currency             string
	)

	cmd := &cobra.Command{
		Use:   "verify EXTERNAL_ACCOUNT_ID",
		Short: "Start micro-deposit verification",
		Long:  "Send two micro-deposits to the external account from one of your internal accounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			account, err := client.ExternalAccounts().Verify(ctx, args[0], &treasury.ExternalAccountVerifyParams{
				OriginatingAccountID: originatingAccountID,
				PaymentType:          treasury.PaymentType(paymentType),
				Currency:             treasury.Currency(currency),
			})
			if err != nil {
				return fmt.Errorf("failed to start verification: %w", err)
			}

			return renderExternalAccount(cmd, account)
		},
	}

	cmd.Flags().StringVar(&originatingAccountID, "originating-account-id", "", "internal account sending the micro-deposits")
	cmd.Flags().StringVar(&paymentType, "payment-type", string(treasury.PaymentTypeACH), "payment rail")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code")
	_ = cmd.MarkFlagRequired("originating-account-id")

	return cmd
}

func newExternalAccountsCompleteVerificationCommand() *cobra.Command {
	var amounts []int64

	cmd := &cobra.Command{
		Use:   "complete-verification EXTERNAL_ACCOUNT_ID",
		Short: "Confirm micro-deposit amounts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(amounts) != 2 {
				return constants.ErrInvalidAmounts
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			account, err := client.ExternalAccounts().CompleteVerification(ctx, args[0], &treasury.ExternalAccountCompleteVerificationParams{
				Amounts: amounts,
			})
			if err != nil {
				return fmt.Errorf("failed to complete verification: %w", err)
			}

			return renderExternalAccount(cmd, account)
		},
	}

	cmd.Flags().Int64SliceVar(&amounts, "amounts", nil, "the two deposited amounts in cents, e.g. 12,34")

	return cmd
}
