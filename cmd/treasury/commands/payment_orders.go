package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// NewPaymentOrdersCommand creates the payment orders command group
func NewPaymentOrdersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "payment-orders",
		Aliases: []string{"payment-order", "po"},
		Short:   "Manage payment orders",
		Long:    "List, create and update instructions to move money",
	}

	cmd.AddCommand(newPaymentOrdersListCommand())
	cmd.AddCommand(newPaymentOrdersGetCommand())
	cmd.AddCommand(newPaymentOrdersCreateCommand())
	cmd.AddCommand(newPaymentOrdersUpdateCommand())
	cmd.AddCommand(newPaymentOrdersBatchCreateCommand())

	return cmd
}

func newPaymentOrdersListCommand() *cobra.Command {
	var (
		flags          listFlags
		status         string
		direction      string
		paymentType    string
		counterpartyID string
		metadata       []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payment orders",
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

			page, err := client.PaymentOrders().List(ctx, &treasury.PaymentOrderListParams{
				PerPage:        flags.perPage,
				Status:         treasury.PaymentOrderStatus(status),
				Direction:      treasury.PaymentDirection(direction),
				Type:           treasury.PaymentType(paymentType),
				CounterpartyID: counterpartyID,
				Metadata:       meta,
			})
			if err != nil {
				return fmt.Errorf("failed to list payment orders: %w", err)
			}

			orders, err := collectItems(ctx, page, &flags)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(orders))
			for _, order := range orders {
				rows = append(rows, []string{
					order.ID,
					fieldString(order.Type),
					fieldString(order.Direction),
					formatAmount(order.Amount, fieldString(order.Currency)),
					fieldString(order.Status),
					fieldString(order.EffectiveDate),
				})
			}

			err = renderTable(cmd, orders, []string{"ID", "Type", "Direction", "Amount", "Status", "Effective"}, rows)
			if err != nil {
				return err
			}

			printMoreHint(cmd, page, &flags)

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&direction, "direction", "", "filter by direction (credit or debit)")
	cmd.Flags().StringVar(&paymentType, "type", "", "filter by payment type")
	cmd.Flags().StringVar(&counterpartyID, "counterparty-id", "", "filter by counterparty")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "filter by metadata key=value")

	return cmd
}

func newPaymentOrdersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PAYMENT_ORDER_ID",
		Short: "Get payment order details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			order, err := client.PaymentOrders().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get payment order: %w", err)
			}

			return renderPaymentOrder(cmd, order)
		},
	}
}

func renderPaymentOrder(cmd *cobra.Command, order *treasury.PaymentOrder) error {
	status := fieldString(order.Status)
	if value, err := order.Status.GetRequired("status"); err == nil && value.Value().IsUnrecognized() {
		status += " (unrecognized)"
	}

	return renderDetails(cmd, order, [][]string{
		{"ID", order.ID},
		{"Type", fieldString(order.Type)},
		{"Direction", fieldString(order.Direction)},
		{"Amount", formatAmount(order.Amount, fieldString(order.Currency))},
		{"Status", status},
		{"Originating Account", fieldString(order.OriginatingAccountID)},
		{"Receiving Account", fieldString(order.ReceivingAccountID)},
		{"Counterparty", fieldString(order.CounterpartyID)},
		{"Description", fieldString(order.Description)},
		{"Effective Date", fieldString(order.EffectiveDate)},
		{"Metadata", formatMetadata(order.Metadata)},
		{"Live Mode", strconv.FormatBool(order.LiveMode)},
		{"Created", order.CreatedAt.Format(timeLayout)},
		{"Updated", order.UpdatedAt.Format(timeLayout)},
	})
}

func newPaymentOrdersCreateCommand() *cobra.Command {
	var (
		file                 string
		paymentType          string
		amount               int64
		direction            string
		originatingAccountID string
		receivingAccountID   string
		currency             string
		description          string
		effectiveDate        string
		idempotencyKey       string
		metadata             []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a payment order",
		Long:  "Create a payment order from flags or from a JSON request body (--file, or - for stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &treasury.PaymentOrderCreateParams{}

			if file != "" {
				err := readJSONFile(cmd, file, params)
				if err != nil {
					return err
				}
			}

			if paymentType != "" {
				params.Type = treasury.PaymentType(paymentType)
			}

			if cmd.Flags().Changed("amount") {
				params.Amount = amount
			}

			if direction != "" {
				params.Direction = treasury.PaymentDirection(direction)
			}

			if originatingAccountID != "" {
				params.OriginatingAccountID = originatingAccountID
			}

			if receivingAccountID != "" {
				params.ReceivingAccountID = receivingAccountID
			}

			if currency != "" {
				params.Currency = treasury.Currency(currency)
			}

			if description != "" {
				params.Description = description
			}

			if effectiveDate != "" {
				params.EffectiveDate = effectiveDate
			}

			params.IdempotencyKey = idempotencyKey

			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			if meta != nil {
				params.Metadata = meta
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			order, err := client.PaymentOrders().Create(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to create payment order: %w", err)
			}

			return renderPaymentOrder(cmd, order)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON request body")
	cmd.Flags().StringVar(&paymentType, "type", "", "payment type (ach, wire, rtp, ...)")
	cmd.Flags().Int64Var(&amount, "amount", 0, "amount in the smallest currency unit")
	cmd.Flags().StringVar(&direction, "direction", "", "credit or debit")
	cmd.Flags().StringVar(&originatingAccountID, "originating-account-id", "", "internal account the money moves from or to")
	cmd.Flags().StringVar(&receivingAccountID, "receiving-account-id", "", "external account on the other side")
	cmd.Flags().StringVar(&currency, "currency", "", "currency code")
	cmd.Flags().StringVar(&description, "description", "", "internal description")
	cmd.Flags().StringVar(&effectiveDate, "effective-date", "", "date to send the payment (YYYY-MM-DD)")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "reuse a key to retry a create safely")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata key=value")

	return cmd
}

func newPaymentOrdersUpdateCommand() *cobra.Command {
	var (
		status           string
		description      string
		clearDescription bool
		effectiveDate    string
	)

	cmd := &cobra.Command{
		Use:   "update PAYMENT_ORDER_ID",
		Short: "Update a payment order",
		Long:  "Update a payment order, for example to approve or cancel it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &treasury.PaymentOrderUpdateParams{}

			if cmd.Flags().Changed("status") {
				params.Status = treasury.F(treasury.PaymentOrderStatus(status))
			}

			switch {
			case clearDescription:
				params.Description = treasury.Null[string]()
			case cmd.Flags().Changed("description"):
				params.Description = treasury.F(description)
			}

			if cmd.Flags().Changed("effective-date") {
				params.EffectiveDate = treasury.F(effectiveDate)
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			order, err := client.PaymentOrders().Update(ctx, args[0], params)
			if err != nil {
				return fmt.Errorf("failed to update payment order: %w", err)
			}

			return renderPaymentOrder(cmd, order)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "new status (approved, cancelled, ...)")
	cmd.Flags().StringVar(&description, "description", "", "new description")
	cmd.Flags().BoolVar(&clearDescription, "clear-description", false, "remove the description")
	cmd.Flags().StringVar(&effectiveDate, "effective-date", "", "new effective date (YYYY-MM-DD)")
	cmd.MarkFlagsMutuallyExclusive("description", "clear-description")

	return cmd
}

// BatchCreateResult is one row of the batch-create output.
type BatchCreateResult struct {
	Index          string `json:"index"                      yaml:"index"`
	PaymentOrderID string `json:"payment_order_id,omitempty" yaml:"payment_order_id,omitempty"`
	Error          string `json:"error,omitempty"            yaml:"error,omitempty"`
}

func newPaymentOrdersBatchCreateCommand() *cobra.Command {
	var (
		file        string
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "batch-create",
		Short: "Create many payment orders",
		Long:  "Create payment orders concurrently from a JSON array of request bodies (--file, or - for stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var requests []*treasury.PaymentOrderCreateParams

			err := readJSONFile(cmd, file, &requests)
			if err != nil {
				return err
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			builder := treasury.NewBatchBuilder()
			for i, params := range requests {
				builder.AddCreatePaymentOrder(strconv.Itoa(i+1), params)
			}

			results, err := treasury.NewBatchExecutor(client, concurrency).Execute(ctx, builder.Build())
			if err != nil {
				return fmt.Errorf("failed to create payment orders: %w", err)
			}

			summary := make([]BatchCreateResult, 0, len(results))
			rows := make([][]string, 0, len(results))

			for _, result := range results {
				row := BatchCreateResult{Index: result.ID}

				if order, ok := result.Data.(*treasury.PaymentOrder); ok && order != nil {
					row.PaymentOrderID = order.ID
				}

				if result.Error != nil {
					row.Error = result.Error.Error()
				}

				summary = append(summary, row)
				rows = append(rows, []string{row.Index, valueOrNA(row.PaymentOrderID), row.Error})
			}

			err = renderTable(cmd, summary, []string{"#", "Payment Order", "Error"}, rows)
			if err != nil {
				return err
			}

			return treasury.BatchErrors(results)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON array of request bodies")
	cmd.Flags().IntVar(&concurrency, "concurrency", constants.DefaultBatchConcurrency, "number of requests in flight")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
