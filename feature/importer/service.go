package importer

import (
	"context"
	"errors"
	"fmt"
	"io"

	"catalog-impex/core/impex"
	"catalog-impex/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrStorageUnavailable reports a bucket import without a configured storage client.
var ErrStorageUnavailable = errors.New("storage is not configured")

// FileReport is the result of importing one document from the bucket.
type FileReport struct {
	// Key is the object key the document was read from.
	Key string `json:"key"`
	// MovedTo is the key the document was moved to. Empty on dry runs.
	MovedTo string `json:"moved_to,omitempty"`
	// Summary is the import summary, nil when the document could not be read.
	Summary *impex.Summary `json:"summary,omitempty"`
	// Error is set when the document was aborted or could not be moved.
	Error string `json:"error,omitempty"`
}

// Failed reports whether the document goes to the failed prefix.
func (r FileReport) Failed() bool {
	return r.Summary == nil || r.Summary.Failed > 0 || r.Error != ""
}

// Service runs imports from request bodies, files and the storage bucket.
type Service struct {
	importer *impex.Importer
	registry *impex.Registry
	client   storage.Client
	bucket   string
	cfg      impex.Config
	logger   *zap.Logger

	// sf collapses concurrent bucket imports with the same options into one run.
	sf singleflight.Group
}

// NewService creates a new import service. client may be nil when no bucket is used.
func NewService(importer *impex.Importer, registry *impex.Registry, client storage.Client, bucket string, cfg impex.Config, logger *zap.Logger) *Service {
	return &Service{
		importer: importer,
		registry: registry,
		client:   client,
		bucket:   bucket,
		cfg:      cfg,
		logger:   logger,
	}
}

// Import reconciles one document.
func (s *Service) Import(ctx context.Context, r io.Reader, opts impex.Options) (*impex.Summary, error) {
	return s.importer.Import(ctx, r, opts)
}

// Handlers returns the identities of the registered handlers.
func (s *Service) Handlers() []impex.Identity {
	return s.registry.Identities()
}

// Descriptor returns the active import descriptor.
func (s *Service) Descriptor() *impex.Descriptor {
	return s.importer.Descriptor()
}

// ImportBucket imports every inbox document accepted by the descriptor, in key order.
// Unless opts.DryRun is set, each document is then moved to the processed prefix, or
// to the failed prefix when it was aborted or had failed records.
// Callers arriving while a run with the same options is in progress share its result.
func (s *Service) ImportBucket(ctx context.Context, opts impex.Options) ([]FileReport, error) {
	if s.client == nil {
		return nil, ErrStorageUnavailable
	}

	key := fmt.Sprintf("dry_run=%t,fail_fast=%t", opts.DryRun, opts.FailFast)
	v, err, shared := s.sf.Do(key, func() (any, error) {
		return s.importBucket(ctx, opts)
	})
	if shared {
		s.logger.Debug("Joined in-flight bucket import", zap.String("key", key))
	}
	reports, _ := v.([]FileReport)
	return reports, err
}

func (s *Service) importBucket(ctx context.Context, opts impex.Options) ([]FileReport, error) {
	keys, err := storage.ListKeys(ctx, s.client, s.bucket, s.cfg.InboxPrefix)
	if err != nil {
		return nil, err
	}

	descriptor := s.importer.Descriptor()
	reports := make([]FileReport, 0, len(keys))
	for _, key := range keys {
		if err := ctx.Err(); err != nil {
			return reports, err
		}
		if !descriptor.MatchFile(key) {
			s.logger.Debug("Skipping document not matching descriptor", zap.String("key", key), zap.String("pattern", descriptor.FilePattern))
			continue
		}
		reports = append(reports, s.importObject(ctx, key, opts))
	}

	s.logger.Info("Bucket import completed",
		zap.String("bucket", s.bucket),
		zap.String("prefix", s.cfg.InboxPrefix),
		zap.Int("documents", len(reports)),
		zap.Bool("dry_run", opts.DryRun),
	)
	return reports, nil
}

func (s *Service) importObject(ctx context.Context, key string, opts impex.Options) FileReport {
	report := FileReport{Key: key}
	log := s.logger.With(zap.String("key", key))

	summary, err := s.readAndImport(ctx, key, opts)
	report.Summary = summary
	if err != nil {
		report.Error = err.Error()
		log.Error("Document import failed", zap.Error(err))
	}

	if opts.DryRun {
		return report
	}

	target := s.cfg.ProcessedPrefix
	if report.Failed() {
		target = s.cfg.FailedPrefix
	}

	movedTo, err := storage.Move(ctx, s.client, s.bucket, key, target)
	if err != nil {
		log.Error("Failed to move document", zap.String("target", target), zap.Error(err))
		report.Error = joinError(report.Error, err)
		return report
	}
	report.MovedTo = movedTo
	log.Info("Document moved", zap.String("target", movedTo))
	return report
}

func (s *Service) readAndImport(ctx context.Context, key string, opts impex.Options) (*impex.Summary, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	defer obj.Close()

	return s.importer.Import(ctx, obj, opts)
}

func joinError(existing string, err error) string {
	if existing == "" {
		return err.Error()
	}
	return existing + "; " + err.Error()
}
