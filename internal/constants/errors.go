package constants

import "errors"

// CLI configuration errors.
var (
	ErrNotLoggedIn      = errors.New("no credentials configured, run 'treasury login' first")
	ErrEmptyAPIKey      = errors.New("API key must not be empty")
	ErrInvalidOutput    = errors.New("invalid output format, use table, json or yaml")
	ErrUnknownConfigKey = errors.New("unknown configuration key")
	ErrInvalidAmounts   = errors.New("exactly two amounts are required")
	ErrInvalidFlag      = errors.New("invalid flag value")
)
