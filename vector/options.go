// SPDX-License-Identifier: MIT

package vector

import (
	"log/slog"

	"github.com/katalvlaran/lvvec/internal/logging"
	"github.com/katalvlaran/lvvec/interp"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCapacity is the capacity used by NewDefault and NewFloatDefault.
	DefaultCapacity = 256

	// DefaultMode is the interpolation mode a Float starts with.
	DefaultMode = interp.None
)

// ---------- Internal panic messages ----------

const (
	panicNilLogger   = "vector: WithLogger: logger must not be nil"
	panicUnknownMode = "vector: WithMode: unknown interpolation mode"
)

// Option mutates internal options.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger *logging.Logger // lifecycle debug records; no-op by default
	mode   interp.Mode     // initial mode for Float; ignored by Vector
}

// WithLogger routes lifecycle records (construct, clone, move, release) to l
// at debug level. Panics when l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logging.From(l) }
}

// WithMode sets the interpolation mode a Float starts with. It has no effect
// on a plain Vector. Panics on values outside the known Mode set; None is allowed.
func WithMode(m interp.Mode) Option {
	if m != interp.None && !m.Valid() {
		panic(panicUnknownMode)
	}

	return func(o *Options) { o.mode = m }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{
		logger: logging.Noop(),
		mode:   DefaultMode,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	o.logger = o.logger.WithKind("vector")

	return o
}
