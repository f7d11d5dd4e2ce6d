package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
)

// Config represents the CLI configuration file.
type Config struct {
	BaseURL        string `json:"base_url,omitempty"        yaml:"base_url,omitempty"`
	OrganizationID string `json:"organization_id,omitempty" yaml:"organization_id,omitempty"`
	APIKey         string `json:"api_key,omitempty"         yaml:"api_key,omitempty"`
	Output         string `json:"output,omitempty"          yaml:"output,omitempty"`
}

var configKeys = []string{"base_url", "organization_id", "api_key", "output"}

func loadConfig() *Config {
	return &Config{
		BaseURL:        viper.GetString("base_url"),
		OrganizationID: viper.GetString("organization_id"),
		APIKey:         viper.GetString("api_key"),
		Output:         viper.GetString("output"),
	}
}

func (c *Config) set(key, value string) error {
	switch key {
	case "base_url":
		c.BaseURL = value
	case "organization_id":
		c.OrganizationID = value
	case "api_key":
		c.APIKey = value
	case "output":
		if value != "" && value != constants.FormatTable && value != constants.FormatJSON && value != constants.FormatYAML {
			return fmt.Errorf("%w: %s", constants.ErrInvalidOutput, value)
		}

		c.Output = value
	default:
		return fmt.Errorf("%w: %s (valid keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(configKeys, ", "))
	}

	return nil
}

func (c *Config) masked() *Config {
	masked := *c
	if masked.APIKey != "" {
		masked.APIKey = constants.MaskedSecret
	}

	return &masked
}

// configFilePath returns the file viper read, or ~/.treasury/config.yml.
func configFilePath() (string, error) {
	configFile := viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".treasury", "config.yml"), nil
}

// readConfigFile loads the persisted configuration only, ignoring flags and
// environment variables.
func readConfigFile() (*Config, error) {
	configFile, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &Config{}

	// configFile is built from the user home dir or the --config flag
	// #nosec G304
	data, err := os.ReadFile(configFile)
	if os.IsNotExist(err) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

func saveConfigStruct(config *Config) error {
	configFile, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	viper.Set("base_url", config.BaseURL)
	viper.Set("organization_id", config.OrganizationID)
	viper.Set("api_key", config.APIKey)

	if config.Output != "" {
		viper.Set("output", config.Output)
	}

	return nil
}

// NewConfigCommand creates the config command group
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "View and modify the CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigPathCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration with the API key masked",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfig().masked()

			baseURL := config.BaseURL
			if baseURL == "" {
				baseURL = constants.DefaultBaseURL
			}

			return renderDetails(cmd, config, [][]string{
				{"Base URL", baseURL},
				{"Organization ID", valueOrNA(config.OrganizationID)},
				{"API Key", valueOrNA(config.APIKey)},
				{"Output", valueOrNA(config.Output)},
			})
		},
	}
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Valid keys: " + strings.Join(configKeys, ", "),
		Args:  cobra.ExactArgs(2),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}

			return configKeys, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := readConfigFile()
			if err != nil {
				return err
			}

			err = config.set(args[0], args[1])
			if err != nil {
				return err
			}

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Set %s\n", args[0])

			return nil
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Long:  "Remove a configuration value. Valid keys: " + strings.Join(configKeys, ", "),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(configKeys, args[0]) {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, args[0])
			}

			config, err := readConfigFile()
			if err != nil {
				return err
			}

			_ = config.set(args[0], "")

			err = saveConfigStruct(config)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Unset %s\n", args[0])

			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Show the configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configFile, err := configFilePath()
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), configFile)

			return nil
		},
	}
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
