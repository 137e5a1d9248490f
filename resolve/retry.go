package resolve

import "github.com/katalvlaran/wavecollapse/rng"

// RetryWithSeeds calls run with a fresh rng.Source derived from baseSeed on
// each attempt, stopping at the first attempt that returns nil. It returns
// the last error if every attempt fails, per spec.md §7's guidance that a
// contradiction should retry with a new seed rather than fail the whole
// generation outright.
//
// Each derived source is independent of the others (rng.Derive's
// SplitMix64-style mix), so retries are not correlated with one another
// even though they share a base seed.
func RetryWithSeeds(attempts int, baseSeed int64, run func(src rng.Source) error) error {
	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		src := rng.Derive(baseSeed, uint64(attempt))
		if err := run(src); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}
