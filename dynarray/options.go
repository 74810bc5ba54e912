package dynarray

import "go.uber.org/zap"

// Option configures an Array built by New.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	capacity int
}

// WithLogger makes the array log every reallocation at debug level.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCapacity reserves n slots up front. Values <= 0 are ignored.
func WithCapacity(n int) Option {
	return func(o *options) { o.capacity = n }
}
