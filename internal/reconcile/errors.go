package reconcile

import (
	"errors"
	"fmt"
)

// Counts tallies the records a batch wrote.
type Counts struct {
	Teams   int
	Players int
	Prefabs int
}

// BatchError reports a batch that stopped part way. Records written before
// the failure stay in place.
type BatchError struct {
	Operation string
	Counts    Counts
	Err       error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s aborted after %d teams and %d players: %v",
		e.Operation, e.Counts.Teams, e.Counts.Players, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// AsBatchError unwraps err into a *BatchError when possible.
func AsBatchError(err error) (*BatchError, bool) {
	var be *BatchError
	if errors.As(err, &be) {
		return be, true
	}
	return nil, false
}
