package settings

import "os"

// Format selects the settings-file syntax.
type Format string

const (
	// FormatAuto detects the format from the file extension.
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

type options struct {
	format    Format
	lookupEnv func(string) (string, bool)
}

func defaultOptions() options {
	return options{
		format:    FormatAuto,
		lookupEnv: os.LookupEnv,
	}
}

// Option customizes gateway behavior.
type Option func(*options)

// WithFormat forces a settings-file format instead of relying on extension
// detection.
func WithFormat(format Format) Option {
	return func(o *options) {
		o.format = format
	}
}

// WithLookupEnv overrides environment lookup, mainly for tests.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(o *options) {
		if fn != nil {
			o.lookupEnv = fn
		}
	}
}
