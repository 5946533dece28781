package abi

import (
	"github.com/cwbudde/algo-pcm/internal/hostlog"
	"github.com/cwbudde/algo-pcm/memory"
	"github.com/rs/zerolog"
)

// Config holds the collaborators of a Runtime.
type Config struct {
	Allocator memory.Allocator
	Logger    zerolog.Logger
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the Go heap allocator and the LOG_LEVEL host logger.
func DefaultConfig() Config {
	return Config{
		Allocator: memory.DefaultAllocator,
		Logger:    hostlog.New(),
	}
}

// WithAllocator sets the allocator backing every buffer.
func WithAllocator(a memory.Allocator) Option {
	return func(cfg *Config) {
		if a != nil {
			cfg.Allocator = a
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = l
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
