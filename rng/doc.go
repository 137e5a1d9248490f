// Package rng defines the narrow, injected randomness source the core
// consumes, and a deterministic default implementation.
//
// The core itself is not cryptographic: it needs a uniform integer source
// for weighted-option selection and a uniform float source for the entropy
// queue's tiebreak noise. Centralizing both behind one interface lets
// callers swap in their own source without the core depending on
// math/rand directly, mirroring tsp/rng.go's rngFromSeed/deriveRNG
// convention (deterministic seed -> stream, no time-based sources hidden
// anywhere).
package rng
