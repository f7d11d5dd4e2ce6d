package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API endpoint defaults.
const (
	// DefaultBaseURL is the production API root.
	DefaultBaseURL = "https://app.moderntreasury.com"

	// APIPrefix is prepended to every resource path.
	APIPrefix = "/api"

	// DefaultUserAgent is sent when Config.UserAgent is empty.
	DefaultUserAgent = "treasury-go-client"
)

// Environment variables read by treasuryclient.New.
const (
	// EnvOrganizationID names the organization ID variable.
	EnvOrganizationID = "TREASURY_ORGANIZATION_ID"

	// EnvAPIKey names the API key variable.
	EnvAPIKey = "TREASURY_API_KEY"

	// EnvBaseURL names the base URL variable.
	EnvBaseURL = "TREASURY_BASE_URL"
)

// Header names.
const (
	// HeaderIdempotencyKey is set on every POST.
	HeaderIdempotencyKey = "Idempotency-Key"

	// HeaderAfterCursor carries the next cursor of a list response.
	HeaderAfterCursor = "X-After-Cursor"

	// HeaderPerPage carries the page size of a list response.
	HeaderPerPage = "X-Per-Page"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Batch execution.
const (
	// DefaultBatchConcurrency is the number of batch operations run at once.
	DefaultBatchConcurrency = 5
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 2

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 8 * time.Second
)

// Pagination limits.
const (
	// DefaultPageSize is the page size used by the CLI.
	DefaultPageSize = 25

	// MaxPageSize is the largest page size the API accepts.
	MaxPageSize = 100
)

// Cache defaults.
const (
	// DefaultCacheSize is the default cache size limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute

	// DefaultCacheBucket is the default NATS key-value bucket.
	DefaultCacheBucket = "treasury-cache"

	// MaxCacheValueSize is the maximum size for cached values (1MB).
	MaxCacheValueSize = 1024 * 1024
)

// Circuit breaker defaults.
const (
	// CircuitBreakerThreshold is the failure threshold for circuit breaker.
	CircuitBreakerThreshold = 5

	// CircuitBreakerSuccessThreshold is the success threshold for circuit breaker.
	CircuitBreakerSuccessThreshold = 2

	// CircuitBreakerTimeout is the timeout for circuit breaker.
	CircuitBreakerTimeout = 30 * time.Second
)

// State and status constants.
const (
	// StatusClosed indicates a closed circuit.
	StatusClosed = "closed"

	// StatusOpen indicates an open state.
	StatusOpen = "open"

	// StatusHalfOpen indicates a half-open state.
	StatusHalfOpen = "half-open"
)

// Format constants.
const (
	// FormatTable for table output format.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// UI and display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret is used to hide sensitive information.
	MaskedSecret = "***"

	// JSONIndentSize is the number of spaces for JSON indentation.
	JSONIndentSize = 2

	// StringTruncationLength is the default length for truncating strings.
	StringTruncationLength = 40

	// UnknownVersion is reported when build info is missing.
	UnknownVersion = "dev"
)
