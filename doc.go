// Package wavecollapse implements a constraint-collapse ("wave function
// collapse") engine for procedural 2D grid generation: given adjacency and
// frequency rules over a small tile or pattern alphabet, it produces a
// fully-assigned grid that satisfies every local adjacency constraint, one
// cell at a time, eliminating incompatible options as each choice is made.
//
// The engine is organized as a pipeline of independent subpackages, each
// usable on its own:
//
//	gridpos/     — position, size, direction, and the tid-keyed CollapsedGrid I/O type
//	rules/       — adjacency/frequency tables and sample-driven analyzers
//	option/      — the compacted, per-run OptionIndex
//	rng/         — the injected randomness source
//	cellgrid/    — per-cell possibility state and the dense Grid
//	propagate/   — the elimination cascade
//	queue/       — position-order and minimum-entropy selection disciplines
//	overlap/     — the overlapping-pattern variant, reusing option/cellgrid/
//	               propagate/queue/resolve unchanged over pattern ids
//	resolve/     — the Resolver that drives a run end to end
//	materialize/ — converts a resolved grid into caller-defined artifacts
//
// A minimal run looks like:
//
//	freq, err := rules.ExtractFrequency(samples...)
//	adj, err := rules.IdentityAnalyze(samples...)
//	idx, err := option.Build(freq, adj)
//	r := resolve.New(gridpos.NewSize(32, 32), idx, resolve.WithSeed(42))
//	out, err := r.Run()
//
// The core is single-threaded and synchronous: a Resolver owns its grid for
// the duration of one Generate/Run call and makes no I/O, network, or
// filesystem calls. Rendering, tile images, file formats, and editor
// integration are callers' concerns, reached through materialize.Builder.
package wavecollapse
