package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
)

// NewPingCommand creates the ping command
func NewPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check API connectivity",
		Long:  "Send an authenticated ping to verify the base URL and credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), constants.ShortHTTPTimeout)
			defer cancel()

			client, err := CreateClient(ctx)
			if err != nil {
				return err
			}

			start := time.Now()

			resp, err := client.Ping(ctx)
			if err != nil {
				return fmt.Errorf("ping failed: %w", err)
			}

			elapsed := time.Since(start).Round(time.Millisecond)

			return renderDetails(cmd, resp, [][]string{
				{"Response", resp.Ping},
				{"Latency", elapsed.String()},
			})
		},
	}
}
