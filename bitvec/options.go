// SPDX-License-Identifier: MIT

package bitvec

import (
	"log/slog"

	"github.com/katalvlaran/lvvec/internal/logging"
)

// DefaultCapacity is the capacity, in bits, used by NewDefault.
const DefaultCapacity = 256

const panicNilLogger = "bitvec: WithLogger: logger must not be nil"

// Option mutates internal options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger *logging.Logger
}

// WithLogger routes lifecycle records to l at debug level. Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logging.From(l) }
}

func gatherOptions(opts ...Option) Options {
	o := Options{logger: logging.Noop()}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.logger = o.logger.WithKind("bitvec")

	return o
}
