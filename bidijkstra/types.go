package bidijkstra

import "github.com/wayfare-dev/pathkit/queue"

// defaultSkew biases the two frontiers evenly.
const defaultSkew = 0.5

// Options controls a Search. The zero value is not usable directly;
// construct via newOptions so QueueVariant and Skew carry their defaults.
type Options struct {
	QueueVariant queue.Variant
	Skew         float64
}

// Option mutates Options; pass zero or more to New.
type Option func(*Options)

func newOptions() Options {
	return Options{
		QueueVariant: queue.Binary,
		Skew:         defaultSkew,
	}
}

// WithQueueVariant selects which queue.Queue[N] implementation backs both
// frontiers. Binary by default.
func WithQueueVariant(v queue.Variant) Option {
	return func(o *Options) { o.QueueVariant = v }
}

// WithSkew sets sigma, which weights the choice of frontier to expand: the
// forward side is chosen whenever |Qf|*(1-sigma) <= |Qb|*sigma, so a larger
// sigma favors the forward side and a smaller one the backward side. sigma
// is clamped to [0, 1]; 0.5 (the default) alternates by raw frontier size
// with no bias.
func WithSkew(sigma float64) Option {
	return func(o *Options) {
		if sigma < 0 {
			sigma = 0
		}
		if sigma > 1 {
			sigma = 1
		}
		o.Skew = sigma
	}
}
