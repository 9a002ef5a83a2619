package reconstruct

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/coulomb3d/mds"
	"github.com/katalvlaran/coulomb3d/trilat"
)

// Options is the effective configuration of FromCoulomb and Batch.
// Build it with functional Option setters; the zero value is not used.
type Options struct {
	method        Method
	verbose       bool
	progressEvery int
	logger        *zap.Logger
	mds           mds.Options
	trilat        trilat.Options
}

// Option mutates Options.
type Option func(*Options)

// WithMethod selects the embedding strategy.
func WithMethod(m Method) Option {
	return func(o *Options) { o.method = m }
}

// WithVerbose toggles progress logging in Batch; on by default.
func WithVerbose(v bool) Option {
	return func(o *Options) { o.verbose = v }
}

// WithProgressEvery sets how many molecules pass between progress entries.
// Panics when every < 1.
func WithProgressEvery(every int) Option {
	if every < 1 {
		panic(panicProgressEvery)
	}

	return func(o *Options) { o.progressEvery = every }
}

// WithLogger routes diagnostics to l. Panics when l is nil; pass zap.NewNop()
// to silence output.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// WithMDSOptions overrides the MDS solver settings. Coordinates are always
// three-dimensional here, so opts.Dim must be 3; it panics otherwise.
func WithMDSOptions(opts mds.Options) Option {
	if opts.Dim != Dim {
		panic(panicMDSDim)
	}

	return func(o *Options) { o.mds = opts }
}

// WithTrilatOptions overrides the per-atom optimizer settings.
func WithTrilatOptions(opts trilat.Options) Option {
	return func(o *Options) { o.trilat = opts }
}

// gatherOptions applies setters on top of the defaults, last writer wins.
func gatherOptions(user ...Option) Options {
	o := Options{
		method:        DefaultMethod,
		verbose:       DefaultVerbose,
		progressEvery: DefaultProgressEvery,
		logger:        zap.NewNop(),
		mds:           mds.DefaultOptions(),
		trilat:        trilat.DefaultOptions(),
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
