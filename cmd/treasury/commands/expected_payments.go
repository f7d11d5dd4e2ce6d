package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// NewExpectedPaymentsCommand creates the expected payments command group
func NewExpectedPaymentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "expected-payments",
		Aliases: []string{"expected-payment", "ep"},
		Short:   "Manage expected payments",
		Long:    "List, create and delete payments you expect to receive or send, used for reconciliation",
	}

	cmd.AddCommand(newExpectedPaymentsListCommand())
	cmd.AddCommand(newExpectedPaymentsGetCommand())
	cmd.AddCommand(newExpectedPaymentsCreateCommand())
	cmd.AddCommand(newExpectedPaymentsDeleteCommand())

	return cmd
}

func newExpectedPaymentsListCommand() *cobra.Command {
	var (
		flags             listFlags
		status            string
		direction         string
		counterpartyID    string
		internalAccountID string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List expected payments",
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

			page, err := client.ExpectedPayments().List(ctx, &treasury.ExpectedPaymentListParams{
				PerPage:           flags.perPage,
				Status:            treasury.ExpectedPaymentStatus(status),
				Direction:         treasury.PaymentDirection(direction),
				CounterpartyID:    counterpartyID,
				InternalAccountID: internalAccountID,
			})
			if err != nil {
				return fmt.Errorf("failed to list expected payments: %w", err)
			}

			payments, err := collectItems(ctx, page, &flags)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(payments))
			for _, payment := range payments {
				currency := fieldString(payment.Currency)
				rows = append(rows, []string{
					payment.ID,
					fieldString(payment.Direction),
					formatAmount(payment.AmountLowerBound, currency),
					formatAmount(payment.AmountUpperBound, currency),
					fieldString(payment.Status),
				})
			}

			err = renderTable(cmd, payments, []string{"ID", "Direction", "Lower Bound", "Upper Bound", "Status"}, rows)
			if err != nil {
				return err
			}

			printMoreHint(cmd, page, &flags)

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&status, "status", "", "filter by reconciliation status")
	cmd.Flags().StringVar(&direction, "direction", "", "filter by direction (credit or debit)")
	cmd.Flags().StringVar(&counterpartyID, "counterparty-id", "", "filter by counterparty")
	cmd.Flags().StringVar(&internalAccountID, "internal-account-id", "", "filter by internal account")

	return cmd
}

func newExpectedPaymentsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get EXPECTED_PAYMENT_ID",
		Short: "Get expected payment details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			payment, err := client.ExpectedPayments().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get expected payment: %w", err)
			}

			return renderExpectedPayment(cmd, payment)
		},
	}
}

func renderExpectedPayment(cmd *cobra.Command, payment *treasury.ExpectedPayment) error {
	currency := fieldString(payment.Currency)

	return renderDetails(cmd, payment, [][]string{
		{"ID", payment.ID},
		{"Direction", fieldString(payment.Direction)},
		{"Type", fieldString(payment.Type)},
		{"Lower Bound", formatAmount(payment.AmountLowerBound, currency)},
		{"Upper Bound", formatAmount(payment.AmountUpperBound, currency)},
		{"Date Window", fieldString(payment.DateLowerBound) + " - " + fieldString(payment.DateUpperBound)},
		{"Status", fieldString(payment.Status)},
		{"Internal Account", fieldString(payment.InternalAccountID)},
		{"Counterparty", fieldString(payment.CounterpartyID)},
		{"Description", fieldString(payment.Description)},
		{"Metadata", formatMetadata(payment.Metadata)},
		{"Created", payment.CreatedAt.Format(timeLayout)},
	})
}

func newExpectedPaymentsCreateCommand() *cobra.Command {
	var (
		file              string
		lowerBound        int64
		upperBound        int64
		direction         string
		internalAccountID string
		counterpartyID    string
		currency          string
		description       string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an expected payment",
		Long:  "Create an expected payment from flags or from a JSON request body (--file, or - for stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &treasury.ExpectedPaymentCreateParams{}

			if file != "" {
				err := readJSONFile(cmd, file, params)
				if err != nil {
					return err
				}
			}

			if cmd.Flags().Changed("amount-lower-bound") {
				params.AmountLowerBound = lowerBound
			}

			if cmd.Flags().Changed("amount-upper-bound") {
				params.AmountUpperBound = upperBound
			}

			if direction != "" {
				params.Direction = treasury.PaymentDirection(direction)
			}

			if internalAccountID != "" {
				params.InternalAccountID = internalAccountID
			}

			if counterpartyID != "" {
				params.CounterpartyID = counterpartyID
			}

			if currency != "" {
				params.Currency = treasury.Currency(currency)
			}

			if description != "" {
				params.Description = description
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			payment, err := client.ExpectedPayments().Create(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to create expected payment: %w", err)
			}

			return renderExpectedPayment(cmd, payment)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON request body")
	cmd.Flags().Int64Var(&lowerBound, "amount-lower-bound", 0, "lowest acceptable amount")
	cmd.Flags().Int64Var(&upperBound, "amount-upper-bound", 0, "highest acceptable amount")
	cmd.Flags().StringVar(&direction, "direction", "", "credit or debit")
	cmd.Flags().StringVar(&internalAccountID, "internal-account-id", "", "internal account the payment is expected on")
	cmd.Flags().StringVar(&counterpartyID, "counterparty-id", "", "expected counterparty")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code")
	cmd.Flags().StringVar(&description, "description", "", "description")

	return cmd
}

func newExpectedPaymentsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete EXPECTED_PAYMENT_ID",
		Short: "Delete an expected payment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, force, fmt.Sprintf("Really delete expected payment '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.ExpectedPayments().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete expected payment: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted expected payment '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}
