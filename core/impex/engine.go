package impex

import (
	"context"
)

// EntityHandler defines the entity specific part of the reconciliation of one record kind.
// R is the record type (decoded from the import document) and E the entity handle.
// The sequencing and skip rules are implemented once by Handle.
type EntityHandler[R any, E any] interface {
	// Identity returns the (namespace, element) pair the handler is registered under.
	Identity() Identity

	// Key returns the natural key of the record, used for reporting.
	Key(record *R) string

	// ResolveMode returns the import mode for the record. It must be a pure function
	// of the record and return ModeMerge when the record declares no mode.
	ResolveMode(record *R) ImportMode

	// GetOrCreate resolves the entity for the record, or allocates a new one.
	// isNew is true when the entity was freshly allocated. It must not mutate
	// persisted state.
	GetOrCreate(ctx context.Context, record *R) (entity E, isNew bool, err error)

	// Delete removes an existing entity.
	Delete(ctx context.Context, entity E) error

	// SaveOrUpdate applies the record fields onto the entity and persists it.
	SaveOrUpdate(ctx context.Context, entity E, record *R, mode ImportMode) error
}

// Handle reconciles one record against persisted state.
//
// The entity is resolved first and classified as new exactly once, before the mode
// is resolved and before any mutation. Then:
//   - DELETE deletes an existing entity and ignores a new one.
//   - INSERT_ONLY ignores an existing entity and otherwise saves.
//   - UPDATE_ONLY ignores a new entity and otherwise saves.
//   - MERGE (and anything else) saves.
//
// Lookup failures are returned as a *RecordError wrapping ErrLookup, save and delete
// failures as a *RecordError wrapping ErrPersistence.
func Handle[R any, E any](ctx context.Context, h EntityHandler[R, E], record *R) (Outcome, error) {
	outcome := Outcome{
		Identity: h.Identity(),
		Key:      h.Key(record),
	}

	entity, isNew, err := h.GetOrCreate(ctx, record)
	if err != nil {
		return outcome, &RecordError{Identity: outcome.Identity, Key: outcome.Key, Op: "lookup", Kind: ErrLookup, Err: err}
	}
	outcome.IsNew = isNew

	mode := h.ResolveMode(record)
	outcome.Mode = mode

	switch mode {
	case ModeDelete:
		if isNew {
			return skip(outcome, ReasonNothingToDelete), nil
		}
		if err := h.Delete(ctx, entity); err != nil {
			return outcome, &RecordError{Identity: outcome.Identity, Key: outcome.Key, Op: "delete", Kind: ErrPersistence, Err: err}
		}
		outcome.Action = ActionDelete
		return outcome, nil
	case ModeInsertOnly:
		if !isNew {
			return skip(outcome, ReasonExists), nil
		}
	case ModeUpdateOnly:
		if isNew {
			return skip(outcome, ReasonNotFound), nil
		}
	}

	if err := h.SaveOrUpdate(ctx, entity, record, mode); err != nil {
		return outcome, &RecordError{Identity: outcome.Identity, Key: outcome.Key, Op: "save", Kind: ErrPersistence, Err: err}
	}

	if isNew {
		outcome.Action = ActionInsert
	} else {
		outcome.Action = ActionUpdate
	}
	return outcome, nil
}

func skip(outcome Outcome, reason string) Outcome {
	outcome.Action = ActionSkip
	outcome.Reason = reason
	return outcome
}
