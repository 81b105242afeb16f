package impex

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	// ErrLookup reports that the entity for a record could not be resolved or created.
	ErrLookup = errors.New("entity lookup failed")
	// ErrPersistence reports that saving or deleting an entity failed.
	ErrPersistence = errors.New("entity persistence failed")
	// ErrUnmapped reports an element or reference that no handler is mapped to.
	ErrUnmapped = errors.New("unmapped")
	// ErrRecordType reports a record whose Go type does not match the bound handler.
	ErrRecordType = errors.New("unexpected record type")
	// ErrDuplicateHandler reports two handlers registered under one identity.
	ErrDuplicateHandler = errors.New("duplicate handler")
)

// RecordError is a failure of the reconciliation of one record.
// It unwraps to both Kind (one of the sentinels above) and the underlying cause.
type RecordError struct {
	Identity Identity
	Key      string
	Op       string
	Kind     error
	Err      error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("%s %s [%s]: %s: %v", e.Op, e.Identity, e.Key, e.Kind, e.Err)
}

func (e *RecordError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
