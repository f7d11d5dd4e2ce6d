package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
)

// NewLoginCommand creates the login command
func NewLoginCommand() *cobra.Command {
	var (
		organizationID string
		apiKey         string
		skipVerify     bool
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store API credentials",
		Long:  "Verify an organization ID and API key against the API and save them to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reader := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			if organizationID == "" {
				organizationID = viper.GetString("organization_id")
			}

			if organizationID == "" {
				_, _ = fmt.Fprint(out, "Organization ID: ")
				organizationID, _ = reader.ReadString('\n')
				organizationID = strings.TrimSpace(organizationID)
			}

			if apiKey == "" {
				_, _ = fmt.Fprint(out, "API key: ")

				if file, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(file.Fd())) {
					byteKey, err := term.ReadPassword(int(file.Fd()))
					if err != nil {
						return fmt.Errorf("failed to read API key: %w", err)
					}

					apiKey = string(byteKey)

					_, _ = fmt.Fprintln(out)
				} else {
					apiKey, _ = reader.ReadString('\n')
				}

				apiKey = strings.TrimSpace(apiKey)
			}

			if apiKey == "" {
				return constants.ErrEmptyAPIKey
			}

			config, err := readConfigFile()
			if err != nil {
				return err
			}

			config.OrganizationID = organizationID
			config.APIKey = apiKey

			if baseURL := viper.GetString("base_url"); baseURL != "" {
				config.BaseURL = baseURL
			}

			if !skipVerify {
				client, err := newClient(cmd.Context(), config)
				if err != nil {
					return err
				}

				_, err = client.Ping(cmd.Context())
				if err != nil {
					return fmt.Errorf("failed to connect to API: %w", err)
				}
			}

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintf(out, "Logged in as organization %s\n", organizationID)

			return nil
		},
	}

	cmd.Flags().StringVar(&organizationID, "organization-id", "", "organization ID")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key")
	cmd.Flags().BoolVar(&skipVerify, "skip-verify", false, "save credentials without pinging the API")

	return cmd
}

// NewLogoutCommand creates the logout command
func NewLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored API credentials",
		Long:  "Clear the organization ID and API key from the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := readConfigFile()
			if err != nil {
				return err
			}

			config.OrganizationID = ""
			config.APIKey = ""

			err = saveConfigStruct(config)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Successfully logged out")

			return nil
		},
	}
}
