package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
)

// NewCounterpartiesCommand creates the counterparties command group
func NewCounterpartiesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "counterparties",
		Aliases: []string{"counterparty", "cp"},
		Short:   "Manage counterparties",
		Long:    "List, create, update and delete the people and businesses you pay or are paid by",
	}

	cmd.AddCommand(newCounterpartiesListCommand())
	cmd.AddCommand(newCounterpartiesGetCommand())
	cmd.AddCommand(newCounterpartiesCreateCommand())
	cmd.AddCommand(newCounterpartiesUpdateCommand())
	cmd.AddCommand(newCounterpartiesDeleteCommand())
	cmd.AddCommand(newCounterpartiesCollectAccountCommand())

	return cmd
}

func newCounterpartiesListCommand() *cobra.Command {
	var (
		flags    listFlags
		name     string
		email    string
		metadata []string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List counterparties",
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

			page, err := client.Counterparties().List(ctx, &treasury.CounterpartyListParams{
				PerPage:  flags.perPage,
				Name:     name,
				Email:    email,
				Metadata: meta,
			})
			if err != nil {
				return fmt.Errorf("failed to list counterparties: %w", err)
			}

			counterparties, err := collectItems(ctx, page, &flags)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(counterparties))
			for _, cp := range counterparties {
				rows = append(rows, []string{
					cp.ID,
					fieldString(cp.Name),
					fieldString(cp.Email),
					fieldString(cp.VerificationStatus),
					cp.CreatedAt.Format(timeLayout),
				})
			}

			err = renderTable(cmd, counterparties, []string{"ID", "Name", "Email", "Verification", "Created"}, rows)
			if err != nil {
				return err
			}

			printMoreHint(cmd, page, &flags)

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&name, "name", "", "filter by name")
	cmd.Flags().StringVar(&email, "email", "", "filter by email")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "filter by metadata key=value")

	return cmd
}

func newCounterpartiesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get COUNTERPARTY_ID",
		Short: "Get counterparty details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			counterparty, err := client.Counterparties().Retrieve(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to get counterparty: %w", err)
			}

			return renderCounterparty(cmd, counterparty)
		},
	}
}

func renderCounterparty(cmd *cobra.Command, counterparty *treasury.Counterparty) error {
	return renderDetails(cmd, counterparty, [][]string{
		{"ID", counterparty.ID},
		{"Name", fieldString(counterparty.Name)},
		{"Email", fieldString(counterparty.Email)},
		{"Verification", fieldString(counterparty.VerificationStatus)},
		{"Remittance Advice", fieldString(counterparty.SendRemittanceAdvice)},
		{"Accounts", strconv.Itoa(len(counterparty.Accounts))},
		{"Metadata", formatMetadata(counterparty.Metadata)},
		{"Live Mode", strconv.FormatBool(counterparty.LiveMode)},
		{"Created", counterparty.CreatedAt.Format(timeLayout)},
		{"Updated", counterparty.UpdatedAt.Format(timeLayout)},
	})
}

func newCounterpartiesCreateCommand() *cobra.Command {
	var (
		file     string
		name     string
		email    string
		metadata []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a counterparty",
		Long:  "Create a counterparty from flags or from a JSON request body (--file, or - for stdin)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &treasury.CounterpartyCreateParams{}

			if file != "" {
				err := readJSONFile(cmd, file, params)
				if err != nil {
					return err
				}
			}

			if name != "" {
				params.Name = name
			}

			if email != "" {
				params.Email = email
			}

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

			counterparty, err := client.Counterparties().Create(ctx, params)
			if err != nil {
				return fmt.Errorf("failed to create counterparty: %w", err)
			}

			return renderCounterparty(cmd, counterparty)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON request body")
	cmd.Flags().StringVar(&name, "name", "", "counterparty name")
	cmd.Flags().StringVar(&email, "email", "", "contact email")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata key=value")

	return cmd
}

func newCounterpartiesUpdateCommand() *cobra.Command {
	var (
		name       string
		email      string
		clearEmail bool
		metadata   []string
	)

	cmd := &cobra.Command{
		Use:   "update COUNTERPARTY_ID",
		Short: "Update a counterparty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := &treasury.CounterpartyUpdateParams{}

			if cmd.Flags().Changed("name") {
				params.Name = treasury.F(name)
			}

			switch {
			case clearEmail:
				params.Email = treasury.Null[string]()
			case cmd.Flags().Changed("email"):
				params.Email = treasury.F(email)
			}

			meta, err := parseMetadata(metadata)
			if err != nil {
				return err
			}

			params.Metadata = meta

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			counterparty, err := client.Counterparties().Update(ctx, args[0], params)
			if err != nil {
				return fmt.Errorf("failed to update counterparty: %w", err)
			}

			return renderCounterparty(cmd, counterparty)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&email, "email", "", "new contact email")
	cmd.Flags().BoolVar(&clearEmail, "clear-email", false, "remove the contact email")
	cmd.Flags().StringSliceVar(&metadata, "metadata", nil, "metadata key=value, an empty value removes the key")
	cmd.MarkFlagsMutuallyExclusive("email", "clear-email")

	return cmd
}

func newCounterpartiesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete COUNTERPARTY_ID",
		Short: "Delete a counterparty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !confirm(cmd, force, fmt.Sprintf("Really delete counterparty '%s'?", args[0])) {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Cancelled")

				return nil
			}

			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			err = client.Counterparties().Delete(ctx, args[0])
			if err != nil {
				return fmt.Errorf("failed to delete counterparty: %w", err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Successfully deleted counterparty '%s'\n", args[0])

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")

	return cmd
}

func newCounterpartiesCollectAccountCommand() *cobra.Command {
	var (
		direction string
		sendEmail bool
		redirect  string
	)

	cmd := &cobra.Command{
		Use:   "collect-account COUNTERPARTY_ID",
		Short: "Request account details from a counterparty",
		Long:  "Generate a form link the counterparty can use to submit their bank account details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			resp, err := client.Counterparties().CollectAccountDetails(ctx, args[0], &treasury.CounterpartyCollectAccountParams{
				Direction:      treasury.PaymentDirection(direction),
				SendEmail:      sendEmail,
				CustomRedirect: redirect,
			})
			if err != nil {
				return fmt.Errorf("failed to collect account details: %w", err)
			}

			return renderDetails(cmd, resp, [][]string{
				{"ID", resp.ID},
				{"Form Link", resp.FormLink},
				{"Resend", strconv.FormatBool(resp.IsResend)},
				{"Direction", fieldString(resp.Direction)},
			})
		},
	}

	cmd.Flags().StringVar(&direction, "direction", string(treasury.PaymentDirectionCredit), "credit or debit")
	cmd.Flags().BoolVar(&sendEmail, "send-email", false, "email the form link to the counterparty")
	cmd.Flags().StringVar(&redirect, "redirect", "", "URL to redirect to after the form is submitted")

	return cmd
}
