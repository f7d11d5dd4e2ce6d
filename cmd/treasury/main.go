package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/treasury-client/cmd/treasury/commands"
	"github.com/fivetwenty-io/treasury-client/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "treasury",
	Short: "Payments and ledger API CLI",
	Long: `A command-line interface for the payments and ledger REST API.

This CLI provides access to counterparties, external accounts, payment orders,
expected payments, invoices, ledgers, ledger accounts and ledger transactions.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default is $HOME/.treasury/config.yml)")
	rootCmd.PersistentFlags().String("base-url", "", "API base URL")
	rootCmd.PersistentFlags().StringP("output", "o", constants.FormatTable, "output format (table, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewLoginCommand())
	rootCmd.AddCommand(commands.NewLogoutCommand())
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewPingCommand())
	rootCmd.AddCommand(commands.NewCounterpartiesCommand())
	rootCmd.AddCommand(commands.NewExternalAccountsCommand())
	rootCmd.AddCommand(commands.NewPaymentOrdersCommand())
	rootCmd.AddCommand(commands.NewExpectedPaymentsCommand())
	rootCmd.AddCommand(commands.NewInvoicesCommand())
	rootCmd.AddCommand(commands.NewLedgersCommand())
	rootCmd.AddCommand(commands.NewLedgerAccountsCommand())
	rootCmd.AddCommand(commands.NewLedgerTransactionsCommand())
}

func initConfig() {
	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".treasury")

		// Search config in ~/.treasury/config.yml
		viper.AddConfigPath(configDir)
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// TREASURY_API_KEY, TREASURY_ORGANIZATION_ID, TREASURY_BASE_URL
	viper.SetEnvPrefix("TREASURY")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
