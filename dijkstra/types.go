package dijkstra

import "github.com/wayfare-dev/pathkit/queue"

// Options controls a single Run call. The zero value is not usable
// directly; construct via newOptions so QueueVariant and MaxDistance carry
// their defaults.
type Options struct {
	QueueVariant queue.Variant
	ReturnPath   bool
	MaxDistance  int64
}

// Option mutates Options; pass zero or more to Run.
type Option func(*Options)

func newOptions() Options {
	return Options{
		QueueVariant: queue.Binary,
		MaxDistance:  maxDistance,
	}
}

// WithQueueVariant selects which queue.Queue[N] implementation backs the
// run. Binary by default.
func WithQueueVariant(v queue.Variant) Option {
	return func(o *Options) { o.QueueVariant = v }
}

// WithReturnPath causes Run to additionally populate a predecessor map
// suitable for path reconstruction; see Path.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithMaxDistance caps the search: nodes whose true distance exceeds d are
// left at +∞ and never expanded past. A negative d is treated as 0.
func WithMaxDistance(d int64) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.MaxDistance = d
	}
}
