package chunker

import "log/slog"

// options holds configuration for the Chunker facade.
type options struct {
	logger   *slog.Logger
	detector DetectorVariant
}

// Option configures a Chunker.
type Option func(*options)

// WithLogger sets the logger used for operational debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithDetector sets the default sentence boundary detector used when a call
// does not select one explicitly.
func WithDetector(variant DetectorVariant) Option {
	return func(o *options) {
		o.detector = variant
	}
}
