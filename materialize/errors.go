package materialize

import "fmt"

// ErrUnknownID reports that a Builder was asked to produce an id it has no
// recipe for.
type ErrUnknownID struct {
	ID uint64
}

func (e *ErrUnknownID) Error() string {
	return fmt.Sprintf("materialize: no builder recipe for id %d", e.ID)
}

// ErrMissingCoverage reports that a grid references ids no Builder recipe
// covers, found during Materialize's upfront CheckMissing pass rather than
// partway through building.
type ErrMissingCoverage struct {
	Missing []uint64
}

func (e *ErrMissingCoverage) Error() string {
	return fmt.Sprintf("materialize: grid references ids with no builder recipe: %v", e.Missing)
}
