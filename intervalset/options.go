package intervalset

import "go.uber.org/zap"

const defaultMaxPending = 1 << 10

// Config holds the settings of a Builder.
type Config struct {
	// Logger receives debug logs about compactions. Defaults to zap.L().
	Logger *zap.Logger

	// MaxPending is the number of pending intervals that triggers a
	// compaction. Zero or negative disables compaction until Build.
	MaxPending int
}

type Option func(*Config)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func WithMaxPending(n int) Option {
	return func(c *Config) {
		c.MaxPending = n
	}
}
