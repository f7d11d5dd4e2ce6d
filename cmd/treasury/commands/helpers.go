package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
	"github.com/fivetwenty-io/treasury-client/pkg/treasury"
	"github.com/fivetwenty-io/treasury-client/pkg/treasuryclient"
)

const timeLayout = "2006-01-02 15:04:05"

// CreateClient builds an API client from the loaded configuration.
func CreateClient(ctx context.Context) (treasury.Client, error) {
	config := loadConfig()
	if config.OrganizationID == "" || config.APIKey == "" {
		return nil, constants.ErrNotLoggedIn
	}

	return newClient(ctx, config)
}

func newClient(ctx context.Context, config *Config) (treasury.Client, error) {
	clientConfig := &treasury.Config{
		BaseURL:        config.BaseURL,
		OrganizationID: config.OrganizationID,
		APIKey:         config.APIKey,
		UserAgent:      "treasury-cli",
	}

	if viper.GetBool("verbose") {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}

		clientConfig.Logger = treasury.NewZapLogger(logger)
		clientConfig.Debug = true
	}

	client, err := treasuryclient.New(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// outputFormat returns the configured output format.
func outputFormat() (string, error) {
	format := viper.GetString("output")

	switch format {
	case "", constants.FormatTable:
		return constants.FormatTable, nil
	case constants.FormatJSON, constants.FormatYAML:
		return format, nil
	default:
		return "", fmt.Errorf("%w: %s", constants.ErrInvalidOutput, format)
	}
}

// renderDetails prints a single resource as a property/value table, or
// encodes value when a structured output format is selected.
func renderDetails(cmd *cobra.Command, value any, rows [][]string) error {
	return renderTable(cmd, value, []string{"Property", "Value"}, rows)
}

// renderTable prints rows under header, or encodes value when a structured
// output format is selected.
func renderTable(cmd *cobra.Command, value any, header []string, rows [][]string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	switch format {
	case constants.FormatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", strings.Repeat(" ", constants.JSONIndentSize))

		return encoder.Encode(value)
	case constants.FormatYAML:
		encoder := yaml.NewEncoder(out)
		defer func() { _ = encoder.Close() }()

		return encoder.Encode(value)
	}

	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}

	table := tablewriter.NewWriter(out)
	table.Header(cells...)

	for _, row := range rows {
		_ = table.Append(row)
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// listFlags are the pagination flags shared by every list command.
type listFlags struct {
	all      bool
	perPage  int
	maxItems int
}

func (f *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.all, "all", false, "fetch all pages")
	cmd.Flags().IntVar(&f.perPage, "per-page", constants.DefaultPageSize, "results per page")
	cmd.Flags().IntVar(&f.maxItems, "max-items", 0, "stop after this many results when --all is set")
}

func (f *listFlags) validate() error {
	if f.perPage < 1 || f.perPage > constants.MaxPageSize {
		return fmt.Errorf("%w: per-page must be between 1 and %d", constants.ErrInvalidFlag, constants.MaxPageSize)
	}

	return nil
}

// collectItems returns the first page, or every page when --all is set.
func collectItems[T any, P treasury.CursorParams[P]](ctx context.Context, page *treasury.Page[T, P], flags *listFlags) ([]T, error) {
	if !flags.all {
		return page.Items, nil
	}

	items, err := page.AutoPager().Collect(ctx, &treasury.PaginationOptions{MaxItems: flags.maxItems})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch all pages: %w", err)
	}

	return items, nil
}

// printMoreHint tells table users how to fetch the remaining pages.
func printMoreHint[T any, P treasury.CursorParams[P]](cmd *cobra.Command, page *treasury.Page[T, P], flags *listFlags) {
	if flags.all || !page.HasNextPage() || page.AfterCursor == "" {
		return
	}

	format, err := outputFormat()
	if err != nil || format != constants.FormatTable {
		return
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nMore results may be available, use --all to fetch every page\n")
}

// parseMetadata converts key=value pairs into metadata.
func parseMetadata(pairs []string) (treasury.Metadata, error) {
	if len(pairs) == 0 {
		return nil, nil
	}

	metadata := make(treasury.Metadata, len(pairs))

	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: metadata must be key=value, got %q", constants.ErrInvalidFlag, pair)
		}

		metadata[key] = value
	}

	return metadata, nil
}

// readJSONFile decodes a request body from path, or from stdin when path is "-".
func readJSONFile(cmd *cobra.Command, path string, dst any) error {
	var (
		data []byte
		err  error
	)

	if path == "-" {
		decoder := json.NewDecoder(cmd.InOrStdin())

		err = decoder.Decode(dst)
		if err != nil {
			return fmt.Errorf("failed to parse request from stdin: %w", err)
		}

		return nil
	}

	// path is supplied by the user running the CLI
	// #nosec G304
	data, err = os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	err = json.Unmarshal(data, dst)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

// confirm asks for a y/N answer unless force is set.
func confirm(cmd *cobra.Command, force bool, prompt string) bool {
	if force {
		return true
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s (y/N): ", prompt)

	var response string

	_, _ = fmt.Fscanln(cmd.InOrStdin(), &response)

	return response == "y" || response == "Y"
}

func fieldString[T any](f treasury.Field[T]) string {
	switch {
	case f.IsMissing(), f.IsNull():
		return ""
	case f.IsRaw():
		return string(f.Raw())
	default:
		return f.String()
	}
}

func fieldTime(f treasury.Field[time.Time]) string {
	t, err := f.GetRequired("time")
	if err != nil {
		return ""
	}

	return t.Format(timeLayout)
}

func formatAmount(amount int64, currency string) string {
	if currency == "" {
		return strconv.FormatInt(amount, 10)
	}

	return fmt.Sprintf("%s %s", strconv.FormatInt(amount, 10), currency)
}

func formatMetadata(metadata treasury.Metadata) string {
	if len(metadata) == 0 {
		return ""
	}

	pairs := make([]string, 0, len(metadata))
	for key, value := range metadata {
		pairs = append(pairs, key+"="+value)
	}

	slices.Sort(pairs)

	return strings.Join(pairs, ", ")
}
