package sheetsapi

import (
	"time"

	"go.alis.build/sheetorm/grid"
)

// Options configures a [Client].
type Options struct {
	// InputMode controls how written values are interpreted. Defaults to [grid.Raw].
	InputMode grid.InputMode
	// ValueRenderOption controls how read values are rendered. Defaults to [grid.FormattedValue].
	ValueRenderOption grid.ValueRenderOption
	// Attempts is the number of tries per call, at most [MaxAttempts]. Values below 1 mean a single try.
	Attempts int
	// BaseSleep is the initial back-off between tries.
	BaseSleep time.Duration
}

// Option is a functional option for [New] and [NewClient].
type Option func(*Options)

// WithInputMode sets how written values are interpreted.
func WithInputMode(mode grid.InputMode) Option {
	return func(o *Options) {
		o.InputMode = mode
	}
}

// WithValueRenderOption sets how read values are rendered.
func WithValueRenderOption(render grid.ValueRenderOption) Option {
	return func(o *Options) {
		o.ValueRenderOption = render
	}
}

const (
	// DefaultBaseSleep is the back-off used when [WithRetry] is given a non-positive base sleep.
	DefaultBaseSleep = 100 * time.Millisecond
	// MaxAttempts bounds the attempts accepted by [WithRetry].
	MaxAttempts = 10
	// MaxBaseSleep bounds the base sleep accepted by [WithRetry].
	MaxBaseSleep = time.Minute
)

// WithRetry retries calls that fail with a rate limit or server error, with exponential back-off starting at
// baseSleep. attempts is capped at [MaxAttempts] and baseSleep at [MaxBaseSleep]; a baseSleep of zero or less
// means [DefaultBaseSleep].
func WithRetry(attempts int, baseSleep time.Duration) Option {
	attempts = min(attempts, MaxAttempts)
	if baseSleep <= 0 {
		baseSleep = DefaultBaseSleep
	}
	baseSleep = min(baseSleep, MaxBaseSleep)
	return func(o *Options) {
		o.Attempts = attempts
		o.BaseSleep = baseSleep
	}
}
