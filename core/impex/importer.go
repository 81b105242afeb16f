package impex

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"time"

	"catalog-impex/core/validate"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TxRunner demarcates the transaction one record is reconciled in.
// The context passed to fn carries the transaction.
type TxRunner interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Options controls a single import run.
type Options struct {
	// DryRun reconciles the whole document in one transaction and rolls it back.
	DryRun bool

	// FailFast stops the run at the first failed record.
	FailFast bool
}

// RecordFailure describes a record that could not be reconciled.
type RecordFailure struct {
	// Index is the 1-based position of the record in the document.
	Index int `json:"index"`

	// Element is the record element name.
	Element string `json:"element"`

	// Key is the natural key of the record, when known.
	Key string `json:"key,omitempty"`

	// Kind classifies the failure: validation, lookup, persistence or error.
	Kind string `json:"kind"`

	// Error is the failure message.
	Error string `json:"error"`
}

// Summary provides aggregate counts for one import run.
type Summary struct {
	RunID    string          `json:"run_id"`
	DryRun   bool            `json:"dry_run"`
	Total    int             `json:"total"`
	Inserted int             `json:"inserted"`
	Updated  int             `json:"updated"`
	Deleted  int             `json:"deleted"`
	Skipped  int             `json:"skipped"`
	Unmapped int             `json:"unmapped"`
	Failed   int             `json:"failed"`
	Failures []RecordFailure `json:"failures"`
	Duration time.Duration   `json:"duration"`
}

func (s *Summary) tally(outcome Outcome) {
	switch outcome.Action {
	case ActionInsert:
		s.Inserted++
	case ActionUpdate:
		s.Updated++
	case ActionDelete:
		s.Deleted++
	case ActionSkip:
		s.Skipped++
	}
}

var errDryRun = errors.New("dry run rollback")

// unmappedLabel replaces the element label of unmapped records. Element names of
// unmapped records come from the document and would make the label set unbounded.
const unmappedLabel = "_unmapped"

// Importer streams an import document and reconciles each record with the handler
// registered for its element.
type Importer struct {
	registry   *Registry
	descriptor *Descriptor
	tx         TxRunner
	logger     *zap.Logger
}

// NewImporter creates a new importer.
func NewImporter(registry *Registry, descriptor *Descriptor, tx TxRunner, logger *zap.Logger) *Importer {
	return &Importer{
		registry:   registry,
		descriptor: descriptor,
		tx:         tx,
		logger:     logger,
	}
}

// Descriptor returns the descriptor the importer resolves elements with.
func (im *Importer) Descriptor() *Descriptor {
	return im.descriptor
}

// Import reads the document from r. Every child element of the document root is one
// record. Records that fail are collected in the summary and the run continues,
// unless opts.FailFast is set. A malformed document aborts the run with an error.
func (im *Importer) Import(ctx context.Context, r io.Reader, opts Options) (*Summary, error) {
	start := time.Now()
	summary := &Summary{
		RunID:    uuid.NewString(),
		DryRun:   opts.DryRun,
		Failures: []RecordFailure{},
	}
	log := im.logger.With(zap.String("run_id", summary.RunID), zap.String("descriptor", im.descriptor.Name))

	err := im.runDocument(ctx, xml.NewDecoder(r), summary, opts, log)
	summary.Duration = time.Since(start)

	switch {
	case err != nil:
		DocumentsTotal.WithLabelValues("aborted").Inc()
		log.Error("Import aborted", zap.Error(err), zap.Int("processed", summary.Total))
		return summary, err
	case summary.Failed > 0:
		DocumentsTotal.WithLabelValues("failed").Inc()
	default:
		DocumentsTotal.WithLabelValues("ok").Inc()
	}

	log.Info("Import completed",
		zap.Bool("dry_run", opts.DryRun),
		zap.Int("total", summary.Total),
		zap.Int("inserted", summary.Inserted),
		zap.Int("updated", summary.Updated),
		zap.Int("deleted", summary.Deleted),
		zap.Int("skipped", summary.Skipped),
		zap.Int("unmapped", summary.Unmapped),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", summary.Duration),
	)
	return summary, nil
}

// runDocument runs a dry run inside one outer transaction that is rolled back at the
// end, so every record sees the effects of the records before it. Per-record
// transactions nest inside it.
func (im *Importer) runDocument(ctx context.Context, dec *xml.Decoder, summary *Summary, opts Options, log *zap.Logger) error {
	if !opts.DryRun {
		return im.run(ctx, dec, summary, opts, log)
	}

	err := im.tx.InTx(ctx, func(ctx context.Context) error {
		if err := im.run(ctx, dec, summary, opts, log); err != nil {
			return err
		}
		return errDryRun
	})
	if errors.Is(err, errDryRun) {
		return nil
	}
	return err
}

func (im *Importer) run(ctx context.Context, dec *xml.Decoder, summary *Summary, opts Options, log *zap.Logger) error {
	inRoot := false
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		tok, err := dec.Token()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read import document: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if !inRoot {
				inRoot = true
				continue
			}
			summary.Total++
			stop, err := im.importElement(ctx, dec, t, summary.Total, summary, opts, log)
			if err != nil {
				return err
			}
			if stop {
				return nil
			}
		case xml.EndElement:
			// Records are consumed whole, so this closes the root.
			inRoot = false
		}
	}
}

// importElement reconciles one record element. It returns stop=true when the run
// must end after a failure in fail-fast mode.
func (im *Importer) importElement(ctx context.Context, dec *xml.Decoder, start xml.StartElement, index int, summary *Summary, opts Options, log *zap.Logger) (stop bool, err error) {
	element := start.Name.Local
	id := im.descriptor.Identity(element)

	h, ok := im.registry.Lookup(id)
	if !ok || !im.descriptor.Accepts(element) {
		summary.Unmapped++
		RecordsTotal.WithLabelValues(unmappedLabel, "unmapped").Inc()
		log.Warn("Element is not mapped to a handler, skipping", zap.String("element", id.String()), zap.Int("index", index))
		return false, dec.Skip()
	}

	record := h.NewRecord()
	if err := dec.DecodeElement(record, &start); err != nil {
		return false, fmt.Errorf("failed to decode %s record #%d: %w", element, index, err)
	}

	if err := validate.Struct(record); err != nil {
		im.fail(summary, index, element, h.Key(record), err, log)
		return opts.FailFast, nil
	}

	began := time.Now()
	var outcome Outcome
	err = im.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		outcome, err = h.Handle(ctx, record)
		return err
	})
	RecordDuration.WithLabelValues(element).Observe(time.Since(began).Seconds())

	if err != nil {
		var recErr *RecordError
		if !errors.As(err, &recErr) && outcome.Action != "" {
			// Handle succeeded, the commit did not.
			err = &RecordError{Identity: id, Key: outcome.Key, Op: "commit", Kind: ErrPersistence, Err: err}
		}
		im.fail(summary, index, element, outcome.Key, err, log)
		return opts.FailFast, nil
	}

	summary.tally(outcome)
	RecordsTotal.WithLabelValues(element, string(outcome.Action)).Inc()
	log.Debug("Record reconciled",
		zap.String("element", element),
		zap.String("key", outcome.Key),
		zap.String("mode", string(outcome.Mode)),
		zap.Bool("is_new", outcome.IsNew),
		zap.String("action", string(outcome.Action)),
		zap.String("reason", outcome.Reason),
	)
	return false, nil
}

func (im *Importer) fail(summary *Summary, index int, element, key string, err error, log *zap.Logger) {
	kind := failureKind(err)
	summary.Failed++
	summary.Failures = append(summary.Failures, RecordFailure{
		Index:   index,
		Element: element,
		Key:     key,
		Kind:    kind,
		Error:   err.Error(),
	})
	RecordsTotal.WithLabelValues(element, "failed").Inc()
	log.Error("Record failed",
		zap.String("element", element),
		zap.String("key", key),
		zap.Int("index", index),
		zap.String("kind", kind),
		zap.Error(err),
	)
}

func failureKind(err error) string {
	switch {
	case errors.Is(err, validate.ErrInvalid):
		return "validation"
	case errors.Is(err, ErrLookup):
		return "lookup"
	case errors.Is(err, ErrPersistence):
		return "persistence"
	default:
		return "error"
	}
}
