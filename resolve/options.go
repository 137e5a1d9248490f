package resolve

import (
	"github.com/katalvlaran/wavecollapse/gridpos"
	"github.com/katalvlaran/wavecollapse/queue"
)

// queueKind selects which queue.Queue implementation a Resolver builds.
type queueKind int

const (
	entropyQueueKind queueKind = iota
	positionQueueKind
)

// Subscriber observes a run without altering it. Both methods are called
// synchronously from within Generate.
type Subscriber interface {
	// OnStart fires once, after pre-seed validation and seed propagation
	// succeed, before the first selection.
	OnStart(size gridpos.Size)
	// OnCollapse fires once per cell collapsed, including pre-seeded cells,
	// reporting the external id (tid or pid) chosen.
	OnCollapse(pos gridpos.Position, externalID uint64)
}

// Options configures a Resolver. The zero value selects the entropy queue
// with corner/axis defaults, seed 0, no pre-seed, and no subscriber.
type Options struct {
	seed       int64
	preSeed    *gridpos.CollapsedGrid
	subscriber Subscriber
	kind       queueKind
	corner     queue.Corner
	axis       queue.Axis
}

func defaultOptions() Options {
	return Options{kind: entropyQueueKind}
}

// Option configures a Resolver at construction time.
type Option func(*Options)

// WithSeed sets the seed Run() derives its rng.Source from. Generate
// ignores it; pass an explicit rng.Source there instead.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.seed = seed }
}

// WithPreSeed fixes the given positions to the given tids/pids before any
// selection begins.
func WithPreSeed(grid *gridpos.CollapsedGrid) Option {
	return func(o *Options) { o.preSeed = grid }
}

// WithSubscriber registers a Subscriber to observe the run.
func WithSubscriber(sub Subscriber) Option {
	return func(o *Options) { o.subscriber = sub }
}

// WithEntropyQueue selects the always-propagating, minimum-entropy
// selection discipline (the default).
func WithEntropyQueue() Option {
	return func(o *Options) { o.kind = entropyQueueKind }
}

// WithPositionQueue selects the fixed-order, non-propagating selection
// discipline, visiting positions from corner along axis.
func WithPositionQueue(corner queue.Corner, axis queue.Axis) Option {
	return func(o *Options) {
		o.kind = positionQueueKind
		o.corner = corner
		o.axis = axis
	}
}
