package matching

import "context"

// Reporter receives progress updates during matching construction. It is a
// write-only side channel: nothing a Reporter does can affect the computed
// matching. The zero Reporter (nil) reports nothing.
type Reporter interface {
	// Step is called with the number of cells processed so far and the
	// total expected, each time processed changes.
	Step(processed, total int)
}

// Options configures matching construction. The defaults come from
// defaultOptions, not from the zero value (whose matchDim is 0): no
// truncation, full complex, no reporter, background context.
type Options struct {
	truncate bool
	maxGrade int
	matchDim int
	reporter Reporter
	ctx      context.Context
}

// Option mutates an Options value.
type Option func(*Options)

// defaultOptions returns the default configuration (match_dim = -1, no
// truncation, no reporter, background context).
func defaultOptions() Options {
	return Options{matchDim: -1, ctx: context.Background()}
}

// resolveOptions applies opts over the defaults.
func resolveOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithTruncate restricts matching and criticality to cells of grade at
// most maxGrade.
func WithTruncate(maxGrade int) Option {
	return func(o *Options) {
		o.truncate = true
		o.maxGrade = maxGrade
	}
}

// WithMatchDim caps matching at dimension d: cells of dimension above d
// are neither matched nor listed as critical. Homology below dimension d
// remains correct. The default, -1, uses the full complex.
func WithMatchDim(d int) Option {
	return func(o *Options) {
		o.matchDim = d
	}
}

// WithReporter attaches a progress Reporter. It never changes the result.
func WithReporter(r Reporter) Option {
	return func(o *Options) {
		o.reporter = r
	}
}

// WithContext attaches ctx for cancellation. It is checked only at natural
// step boundaries between cells, never mid-invariant-update, so a
// cancelled context never leaves a partially-updated matching visible to
// the caller: construction simply returns an error wrapping ctx.Err()
// instead of a result.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		o.ctx = ctx
	}
}

func (o Options) report(processed, total int) {
	if o.reporter != nil {
		o.reporter.Step(processed, total)
	}
}

// checkContext reports ctx.Err() if o's context has been cancelled.
func (o Options) checkContext() error {
	if o.ctx == nil {
		return nil
	}
	select {
	case <-o.ctx.Done():
		return o.ctx.Err()
	default:
		return nil
	}
}
