// SPDX-License-Identifier: MIT

package chain

import (
	"runtime"

	"go.uber.org/zap"
)

// Option configures a Pipeline.
type Option func(*options)

type options struct {
	logger  *zap.Logger
	workers int
	degrees bool
}

// WithLogger sets the logger used for step construction and batch progress.
// A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l == nil {
			l = zap.NewNop()
		}
		o.logger = l
	}
}

// WithWorkers bounds the goroutines used by TransformAll.
// It panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("chain: WithWorkers(n) requires n >= 1")
	}

	return func(o *options) { o.workers = n }
}

// WithDegrees reads angles as degrees when the document does not set units.
func WithDegrees() Option {
	return func(o *options) { o.degrees = true }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) options {
	o := options{
		logger:  zap.NewNop(),
		workers: runtime.GOMAXPROCS(0),
	}
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
