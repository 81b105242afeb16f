package impex

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestImporter(t *testing.T, h *memoryHandler, tx TxRunner, descriptor *Descriptor) *Importer {
	t.Helper()

	registry, err := NewRegistry(Bind[testRecord, *testEntity](h))
	require.NoError(t, err)

	if descriptor == nil {
		descriptor = DefaultDescriptor(testConfig())
	}
	return NewImporter(registry, descriptor, tx, zap.NewNop())
}

func TestImport(t *testing.T) {
	h := newMemoryHandler()
	h.store["C2"] = &testEntity{GUID: "C2", Name: "Boots"}
	h.store["C3"] = &testEntity{GUID: "C3", Name: "Sandals"}
	im := newTestImporter(t, h, &directTx{}, nil)

	doc := `<?xml version="1.0" encoding="UTF-8"?>
<import>
	<item guid="C1"><name>Shoes</name></item>
	<item guid="C2" import-mode="UPDATE_ONLY"><name>Winter boots</name></item>
	<item guid="C3" import-mode="DELETE"/>
	<item guid="C4" import-mode="UPDATE_ONLY"/>
	<item guid="C2" import-mode="INSERT_ONLY"/>
</import>`

	summary, err := im.Import(context.Background(), strings.NewReader(doc), Options{})

	require.NoError(t, err)
	assert.NotEmpty(t, summary.RunID)
	assert.Equal(t, 5, summary.Total)
	assert.Equal(t, 1, summary.Inserted)
	assert.Equal(t, 1, summary.Updated)
	assert.Equal(t, 1, summary.Deleted)
	assert.Equal(t, 2, summary.Skipped)
	assert.Equal(t, 0, summary.Failed)
	assert.Empty(t, summary.Failures)

	assert.Equal(t, "Shoes", h.store["C1"].Name)
	assert.Equal(t, "Winter boots", h.store["C2"].Name)
	assert.NotContains(t, h.store, "C3")
	assert.NotContains(t, h.store, "C4")
}

func TestImportLocalizedScenarios(t *testing.T) {
	tests := []struct {
		name     string
		existing *string
		doc      string
		want     string
		action   Action
	}{
		{
			name:   "new entity",
			doc:    `<import><item guid="C1" import-mode="MERGE"><title><i18n lang="en">Hello</i18n><i18n lang="fr">Bonjour</i18n></title></item></import>`,
			want:   "en#~#Hello#~#fr#~#Bonjour#~#",
			action: ActionInsert,
		},
		{
			name:     "merge into existing",
			existing: strPtr("en#~#Old#~#"),
			doc:      `<import><item guid="C1" import-mode="MERGE"><title><i18n lang="fr">Nouveau</i18n></title></item></import>`,
			want:     "en#~#Old#~#fr#~#Nouveau#~#",
			action:   ActionUpdate,
		},
		{
			name:     "replace existing",
			existing: strPtr("en#~#Old#~#"),
			doc:      `<import><item guid="C1" import-mode="MERGE"><title import-mode="REPLACE"><i18n lang="fr">Nouveau</i18n></title></item></import>`,
			want:     "fr#~#Nouveau#~#",
			action:   ActionUpdate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newMemoryHandler()
			if tt.existing != nil {
				h.store["C1"] = &testEntity{GUID: "C1", Title: tt.existing}
			}
			im := newTestImporter(t, h, &directTx{}, nil)

			summary, err := im.Import(context.Background(), strings.NewReader(tt.doc), Options{})

			require.NoError(t, err)
			assert.Equal(t, 0, summary.Failed)
			require.Contains(t, h.store, "C1")
			require.NotNil(t, h.store["C1"].Title)
			assert.Equal(t, tt.want, *h.store["C1"].Title)
			if tt.action == ActionInsert {
				assert.Equal(t, 1, summary.Inserted)
			} else {
				assert.Equal(t, 1, summary.Updated)
			}
		})
	}
}

func TestImportUnmapped(t *testing.T) {
	t.Run("unknown element", func(t *testing.T) {
		h := newMemoryHandler()
		im := newTestImporter(t, h, &directTx{}, nil)

		summary, err := im.Import(context.Background(), strings.NewReader(
			`<import><unknown guid="X"><nested/></unknown><item guid="C1"/></import>`), Options{})

		require.NoError(t, err)
		assert.Equal(t, 2, summary.Total)
		assert.Equal(t, 1, summary.Unmapped)
		assert.Equal(t, 1, summary.Inserted)
	})

	t.Run("element outside descriptor", func(t *testing.T) {
		h := newMemoryHandler()
		descriptor := DefaultDescriptor(testConfig())
		descriptor.Elements = []string{"brand"}
		im := newTestImporter(t, h, &directTx{}, descriptor)

		summary, err := im.Import(context.Background(), strings.NewReader(`<import><item guid="C1"/></import>`), Options{})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Unmapped)
		assert.Empty(t, h.store)
	})

	t.Run("fixed metric label", func(t *testing.T) {
		h := newMemoryHandler()
		im := newTestImporter(t, h, &directTx{}, nil)
		unmapped := RecordsTotal.WithLabelValues(unmappedLabel, "unmapped")
		before := counterValue(t, unmapped)
		series := seriesCount(RecordsTotal)

		summary, err := im.Import(context.Background(), strings.NewReader(
			`<import><generated-a1/><generated-b2/><generated-c3/></import>`), Options{})

		require.NoError(t, err)
		assert.Equal(t, 3, summary.Unmapped)
		assert.Equal(t, before+3, counterValue(t, unmapped))
		assert.Equal(t, series, seriesCount(RecordsTotal))
	})

	t.Run("other namespace", func(t *testing.T) {
		h := newMemoryHandler()
		descriptor := DefaultDescriptor(Config{ContextNamespace: "other"})
		im := newTestImporter(t, h, &directTx{}, descriptor)

		summary, err := im.Import(context.Background(), strings.NewReader(`<import><item guid="C1"/></import>`), Options{})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Unmapped)
	})
}

func TestImportFailures(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		h := newMemoryHandler()
		im := newTestImporter(t, h, &directTx{}, nil)

		summary, err := im.Import(context.Background(), strings.NewReader(
			`<import><item import-mode="UPSERT"/><item guid="C1"/></import>`), Options{})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Failed)
		assert.Equal(t, 1, summary.Inserted)
		require.Len(t, summary.Failures, 1)
		assert.Equal(t, "validation", summary.Failures[0].Kind)
		assert.Equal(t, 1, summary.Failures[0].Index)
		assert.Equal(t, "item", summary.Failures[0].Element)
		assert.Empty(t, summary.Failures[0].Key)
	})

	t.Run("validation keeps key", func(t *testing.T) {
		h := newMemoryHandler()
		im := newTestImporter(t, h, &directTx{}, nil)

		summary, err := im.Import(context.Background(), strings.NewReader(
			`<import><item guid="C1" import-mode="UPSERT"/></import>`), Options{})

		require.NoError(t, err)
		require.Len(t, summary.Failures, 1)
		assert.Equal(t, "validation", summary.Failures[0].Kind)
		assert.Equal(t, "C1", summary.Failures[0].Key)
	})

	t.Run("invalid language tag", func(t *testing.T) {
		h := newMemoryHandler()
		im := newTestImporter(t, h, &directTx{}, nil)

		summary, err := im.Import(context.Background(), strings.NewReader(
			`<import><item guid="C1"><title><i18n lang="not a tag">x</i18n></title></item></import>`), Options{})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Failed)
		assert.Empty(t, h.store)
	})

	t.Run("lookup", func(t *testing.T) {
		h := newMemoryHandler()
		h.lookupErr = errBoom
		tx := &directTx{}
		im := newTestImporter(t, h, tx, nil)

		summary, err := im.Import(context.Background(), strings.NewReader(`<import><item guid="C1"/><item guid="C2"/></import>`), Options{})

		require.NoError(t, err)
		assert.Equal(t, 2, summary.Failed)
		assert.Equal(t, "lookup", summary.Failures[0].Kind)
		assert.Equal(t, "C1", summary.Failures[0].Key)
		assert.Equal(t, 2, tx.rollbacks)
	})

	t.Run("persistence", func(t *testing.T) {
		h := newMemoryHandler()
		h.saveErr = errBoom
		im := newTestImporter(t, h, &directTx{}, nil)

		summary, err := im.Import(context.Background(), strings.NewReader(`<import><item guid="C1"/></import>`), Options{})

		require.NoError(t, err)
		require.Len(t, summary.Failures, 1)
		assert.Equal(t, "persistence", summary.Failures[0].Kind)
		assert.Contains(t, summary.Failures[0].Error, "boom")
	})

	t.Run("commit", func(t *testing.T) {
		h := newMemoryHandler()
		im := newTestImporter(t, h, &directTx{commitErr: errBoom}, nil)

		summary, err := im.Import(context.Background(), strings.NewReader(`<import><item guid="C1"/></import>`), Options{})

		require.NoError(t, err)
		require.Len(t, summary.Failures, 1)
		assert.Equal(t, "persistence", summary.Failures[0].Kind)
		assert.Contains(t, summary.Failures[0].Error, "commit")
		assert.Equal(t, 0, summary.Inserted)
	})

	t.Run("fail fast", func(t *testing.T) {
		h := newMemoryHandler()
		h.saveErr = errBoom
		im := newTestImporter(t, h, &directTx{}, nil)

		summary, err := im.Import(context.Background(), strings.NewReader(
			`<import><item guid="C1"/><item guid="C2"/><item guid="C3"/></import>`), Options{FailFast: true})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Total)
		assert.Equal(t, 1, summary.Failed)
	})
}

func TestImportDryRun(t *testing.T) {
	h := newMemoryHandler()
	tx := &directTx{}
	im := newTestImporter(t, h, tx, nil)

	summary, err := im.Import(context.Background(), strings.NewReader(
		`<import><item guid="C1"/><item guid="C2"/></import>`), Options{DryRun: true})

	require.NoError(t, err)
	assert.True(t, summary.DryRun)
	assert.Equal(t, 2, summary.Inserted)
	assert.Equal(t, 0, summary.Failed)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestImportDryRunMatchesRealRun(t *testing.T) {
	doc := `<import><item guid="C1" import-mode="MERGE"/><item guid="C1" import-mode="INSERT_ONLY"/></import>`

	for _, dryRun := range []bool{true, false} {
		h := newMemoryHandler()
		tx := &directTx{}
		im := newTestImporter(t, h, tx, nil)

		summary, err := im.Import(context.Background(), strings.NewReader(doc), Options{DryRun: dryRun})

		require.NoError(t, err)
		assert.Equal(t, 1, summary.Inserted, "dry run %v", dryRun)
		assert.Equal(t, 1, summary.Skipped, "dry run %v", dryRun)
		assert.Equal(t, 0, summary.Failed, "dry run %v", dryRun)
	}
}

func TestImportDryRunSingleTransaction(t *testing.T) {
	h := newMemoryHandler()
	tx := &nestingTx{}
	im := newTestImporter(t, h, tx, nil)

	summary, err := im.Import(context.Background(), strings.NewReader(
		`<import><item guid="C1"/><item guid="C2"/><item guid="C3"/></import>`), Options{DryRun: true})

	require.NoError(t, err)
	assert.Equal(t, 3, summary.Inserted)
	assert.Equal(t, 1, tx.outer)
	assert.Equal(t, 3, tx.nested)
	assert.Equal(t, 1, tx.rollbacks)
}

func TestImportMalformedDocument(t *testing.T) {
	h := newMemoryHandler()
	im := newTestImporter(t, h, &directTx{}, nil)

	summary, err := im.Import(context.Background(), strings.NewReader(`<import><item guid="C1"><name>Shoes</item>`), Options{})

	require.Error(t, err)
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Total)
}

func TestImportCanceledContext(t *testing.T) {
	h := newMemoryHandler()
	im := newTestImporter(t, h, &directTx{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := im.Import(ctx, strings.NewReader(`<import><item guid="C1"/></import>`), Options{})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, h.store)
}
