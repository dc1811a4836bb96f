package storage

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a thread, lead or task id is unknown
var ErrNotFound = errors.New("not found")

// RecordError reports a single rejected record in an import batch.
// The rest of the batch still commits.
type RecordError struct {
	Index  int
	Reason string
}

func (e RecordError) Error() string {
	return fmt.Sprintf("record %d: %s", e.Index, e.Reason)
}
