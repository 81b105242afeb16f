package impex

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// RecordHandler is a type-erased EntityHandler, as stored in a Registry.
type RecordHandler interface {
	// Identity returns the (namespace, element) pair the handler is registered under.
	Identity() Identity

	// NewRecord allocates an empty record for the driver to decode into.
	NewRecord() any

	// Key returns the natural key of a record allocated by NewRecord, "" for any other value.
	Key(record any) string

	// Handle reconciles a record previously allocated by NewRecord.
	Handle(ctx context.Context, record any) (Outcome, error)
}

// Bind adapts an EntityHandler to a RecordHandler. Records are passed as *R.
func Bind[R any, E any](h EntityHandler[R, E]) RecordHandler {
	return &boundHandler[R, E]{handler: h}
}

type boundHandler[R any, E any] struct {
	handler EntityHandler[R, E]
}

func (b *boundHandler[R, E]) Identity() Identity {
	return b.handler.Identity()
}

func (b *boundHandler[R, E]) NewRecord() any {
	return new(R)
}

func (b *boundHandler[R, E]) Key(record any) string {
	rec, ok := record.(*R)
	if !ok || rec == nil {
		return ""
	}
	return b.handler.Key(rec)
}

func (b *boundHandler[R, E]) Handle(ctx context.Context, record any) (Outcome, error) {
	rec, ok := record.(*R)
	if !ok || rec == nil {
		return Outcome{Identity: b.Identity()}, fmt.Errorf("%w: %T for %s", ErrRecordType, record, b.Identity())
	}
	return Handle(ctx, b.handler, rec)
}

// Registry maps handler identities to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[Identity]RecordHandler
}

// NewRegistry creates a registry holding the given handlers.
func NewRegistry(handlers ...RecordHandler) (*Registry, error) {
	r := &Registry{handlers: make(map[Identity]RecordHandler)}
	for _, h := range handlers {
		if err := r.Register(h); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds a handler. Registering two handlers under one identity is an error.
func (r *Registry) Register(h RecordHandler) error {
	id := h.Identity()

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[id]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateHandler, id)
	}
	r.handlers[id] = h
	return nil
}

// Lookup returns the handler registered under the identity.
func (r *Registry) Lookup(id Identity) (RecordHandler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[id]
	return h, ok
}

// Identities returns all registered identities, sorted by namespace then element.
func (r *Registry) Identities() []Identity {
	r.mu.RLock()
	ids := make([]Identity, 0, len(r.handlers))
	for id := range r.handlers {
		ids = append(ids, id)
	}
	r.mu.RUnlock()

	sort.Slice(ids, func(i, j int) bool {
		if ids[i].Namespace != ids[j].Namespace {
			return ids[i].Namespace < ids[j].Namespace
		}
		return ids[i].Element < ids[j].Element
	})
	return ids
}
