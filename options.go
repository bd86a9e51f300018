package gocube

import "go.uber.org/zap"

// Option configures Tracker behavior.
type Option func(*config)

type config struct {
	moveHistory bool
	merge       bool
	logger      *zap.Logger
}

func defaultConfig() *config {
	return &config{
		moveHistory: true,
		merge:       false,
		logger:      zap.NewNop(),
	}
}

// WithMoveHistory enables or disables move history tracking.
// When enabled (default), all moves are stored and accessible via History().
// Undo needs the history.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithMerge merges each move into the previous history entry when both turn
// the same layer, so R R is recorded as R2 and R R' disappears.
func WithMerge(enabled bool) Option {
	return func(c *config) {
		c.merge = enabled
	}
}

// WithLogger sets the logger used for move and state events.
// Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
