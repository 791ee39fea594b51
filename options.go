package id3tags

import (
	"io"
	"log"
)

// Option configures a read.
type Option func(*Config)

// Config is the resolved set of options handed to each registered decoder.
type Config struct {
	// SkipUndecodableFrames drops a frame whose payload cannot be decoded
	// instead of failing the whole ID3v2 pass.
	SkipUndecodableFrames bool

	// Logger receives notes about frames that were skipped and about where
	// frame iteration stopped. Never nil after NewConfig.
	Logger *log.Logger
}

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) *Config {
	c := &Config{
		Logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard, "", 0)
	}
	return c
}

// WithSkipUndecodableFrames makes a frame with an unknown text encoding or
// a malformed payload non-fatal. The frame is left out of the result and
// logged.
func WithSkipUndecodableFrames() Option {
	return func(c *Config) {
		c.SkipUndecodableFrames = true
	}
}

// WithLogger sets the logger used for non-fatal decode problems.
func WithLogger(l *log.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
