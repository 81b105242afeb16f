package impex

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

// testRecord is the record type used by engine tests.
type testRecord struct {
	GUID       string     `xml:"guid,attr" validate:"required"`
	ImportMode ImportMode `xml:"import-mode,attr" validate:"omitempty,oneof=DELETE INSERT_ONLY UPDATE_ONLY MERGE"`
	Name       string     `xml:"name"`
	Title      *I18nBlock `xml:"title"`
	Seo        *SeoBlock  `xml:"seo"`
}

// testEntity is the entity type used by engine tests.
type testEntity struct {
	GUID  string
	Name  string
	Title *string
	Seo   Seo
}

// memoryHandler is an in-memory EntityHandler that records every call.
type memoryHandler struct {
	store     map[string]*testEntity
	lookupErr error
	saveErr   error
	deleteErr error

	saved   []*testEntity
	deleted []*testEntity
	modes   []ImportMode
}

func newMemoryHandler() *memoryHandler {
	return &memoryHandler{store: make(map[string]*testEntity)}
}

func (h *memoryHandler) Identity() Identity {
	return Identity{Namespace: "test", Element: "item"}
}

func (h *memoryHandler) Key(record *testRecord) string {
	return record.GUID
}

func (h *memoryHandler) ResolveMode(record *testRecord) ImportMode {
	return ResolveMode(record.ImportMode)
}

func (h *memoryHandler) GetOrCreate(ctx context.Context, record *testRecord) (*testEntity, bool, error) {
	if h.lookupErr != nil {
		return nil, false, h.lookupErr
	}
	if existing, ok := h.store[record.GUID]; ok {
		return existing, false, nil
	}
	return &testEntity{GUID: record.GUID}, true, nil
}

func (h *memoryHandler) Delete(ctx context.Context, entity *testEntity) error {
	if h.deleteErr != nil {
		return h.deleteErr
	}
	delete(h.store, entity.GUID)
	h.deleted = append(h.deleted, entity)
	return nil
}

func (h *memoryHandler) SaveOrUpdate(ctx context.Context, entity *testEntity, record *testRecord, mode ImportMode) error {
	if h.saveErr != nil {
		return h.saveErr
	}
	if record.Name != "" {
		entity.Name = record.Name
	}
	entity.Title = ProcessI18n(record.Title, entity.Title)
	ApplySeo(record.Seo, &entity.Seo)

	h.store[entity.GUID] = entity
	h.saved = append(h.saved, entity)
	h.modes = append(h.modes, mode)
	return nil
}

// directTx runs fn without a transaction, recording rollbacks requested by fn.
type directTx struct {
	rollbacks int
	commitErr error
}

func (d *directTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := fn(ctx); err != nil {
		d.rollbacks++
		return err
	}
	return d.commitErr
}

type nestingTxKey struct{}

// nestingTx counts outermost and nested transactions. Nested transactions are
// detected through a context marker set by the outer one.
type nestingTx struct {
	outer     int
	nested    int
	rollbacks int
}

func (n *nestingTx) InTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(nestingTxKey{}) != nil {
		n.nested++
	} else {
		n.outer++
		ctx = context.WithValue(ctx, nestingTxKey{}, true)
	}
	if err := fn(ctx); err != nil {
		n.rollbacks++
		return err
	}
	return nil
}

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()

	var m dto.Metric
	require.NoError(t, c.Write(&m))
	return m.GetCounter().GetValue()
}

func seriesCount(c prometheus.Collector) int {
	ch := make(chan prometheus.Metric, 1024)
	c.Collect(ch)
	close(ch)
	return len(ch)
}

var errBoom = errors.New("boom")
