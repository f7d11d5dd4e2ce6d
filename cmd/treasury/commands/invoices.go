package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

const dateLayout = "2006-01-02"

// NewInvoicesCommand creates the invoices command group
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice", "inv"},
		Short:   "Manage invoices",
		Long:    "List, create, void and settle invoices",
	}

	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesCreateCommand())
	cmd.AddCommand(newInvoicesVoidCommand())
	cmd.AddCommand(newInvoicesAddPaymentOrderCommand())

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var (
		flags          listFlags
		counterpartyID string
		status         string
		number         string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
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

			page, err := client.Invoices().List(ctx, &treasury.InvoiceListParams{
				PerPage:        flags.perPage,
				CounterpartyID: counterpartyID,
				Status:         treasury.InvoiceStatus(status),
				Number:         number,
			})
			if err != nil {
				return fmt.Errorf("failed to list invoices: %w", err)
			}

			invoices, err := collectItems(ctx, page, &flags)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(invoices))
			for _, invoice := range invoices {
				rows = append(rows, []string{
					invoice.ID,
					fieldString(invoice.Number),
					fieldString(invoice.Status),
					formatAmount(invoice.TotalAmount, fieldString(invoice.Currency)),
					formatDueDate(invoice.DueDate),
				})
			}

			err = renderTable(cmd, invoices, []string{"ID", "Number", "Status", "Total", "Due"}, rows)
			if err != nil {
				return err
			}

			printMoreHint(cmd, page, &flags)

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&counterpartyID, "counterparty-id", "", "filter by counterparty")
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&number, "number", "", "filter by invoice number")

	return cmd
}

func newInvoicesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get INVOICE_ID",
		Short: "Get invoice details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get invoice: %w", err)
			}

			return renderInvoice(cmd, invoice)
		},
	}
}

func renderInvoice(cmd *cobra.Command, invoice *treasury.Invoice) error {
	currency := fieldString(invoice.Currency)

	remaining := constants.NotAvailable
	if value, err := invoice.AmountRemaining.GetNullable("amount_remaining"); err == nil && value != nil {
		remaining = formatAmount(*value, currency)
	}

	return renderDetails(cmd, invoice, [][]string{
		{"ID", invoice.ID},
		{"Number", fieldString(invoice.Number)},
		{"Status", fieldString(invoice.Status)},
		{"Counterparty", fieldString(invoice.CounterpartyID)},
		{"Originating Account", fieldString(invoice.OriginatingAccountID)},
		{"Total", formatAmount(invoice.TotalAmount, currency)},
		{"Remaining", remaining},
		{"Due", formatDueDate(invoice.DueDate)},
		{"Payment Orders", strconv.Itoa(len(invoice.PaymentOrders))},
		{"Hosted URL", fieldString(invoice.HostedURL)},
		{"Description", fieldString(invoice.Description)},
		{"Created", invoice.CreatedAt.Format(timeLayout)},
	})
}

func formatDueDate(f treasury.Field[time.Time]) string {
	due, err := f.GetRequired("due_date")
	if err != nil {
		return ""
	}

	return due.Format(dateLayout)
}

func newInvoicesCreateCommand() *cobra.Command {
	var (
		file                 string
		counterpartyID       string
		originatingAccountID string
		dueDate              string
		currency             string
		description          string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an invoice",
		Long:  "Create a draft invoice from flags or from a JSON request body (--file, or - for stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &treasury.InvoiceCreateParams{}

			if file != "" {
				err := readJSONFile(cmd, file, params)
				if err != nil {
					return err
				}
			}

			if counterpartyID != "" {
				params.CounterpartyID = counterpartyID
			}

			if originatingAccountID != "" {
				params.OriginatingAccountID = originatingAccountID
			}

			if dueDate != "" {
				due, err := time.Parse(dateLayout, dueDate)
				if err != nil {
					return fmt.Errorf("%w: due-date must be YYYY-MM-DD", constants.ErrInvalidFlag)
				}

				params.DueDate = due
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

			invoice, err := client.Invoices().Create(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to create invoice: %w", err)
			}

			return renderInvoice(cmd, invoice)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON request body")
	cmd.Flags().StringVar(&counterpartyID, "counterparty-id", "", "billed counterparty")
	cmd.Flags().StringVar(&originatingAccountID, "originating-account-id", "", "internal account receiving the payment")
	cmd.Flags().StringVar(&dueDate, "due-date", "", "due date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code")
	cmd.Flags().StringVar(&description, "description", "", "description")

	return cmd
}

func newInvoicesVoidCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "void INVOICE_ID",
		Short: "Void an invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			invoice, err := client.Invoices().Update(ctx, args[0], &treasury.InvoiceUpdateParams{
				Status: treasury.F(treasury.InvoiceStatusVoided),
			})
			if err != nil {
				return fmt.Errorf("failed to void invoice: %w", err)
			}

			return renderInvoice(cmd, invoice)
		},
	}
}

func newInvoicesAddPaymentOrderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-payment-order INVOICE_ID PAYMENT_ORDER_ID",
		Short: "Attach a payment order to an invoice",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Invoices().AddPaymentOrder(ctx, args[0], args[1])
			if err != nil {
				return fmt.Errorf("failed to add payment order: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added payment order '%s' to invoice '%s'\n", args[1], args[0])

			return nil
		},
	}
}
