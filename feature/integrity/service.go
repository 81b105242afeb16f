package integrity

import (
	"context"

	"catalog-impex/core/impex"
	"catalog-impex/core/storage"
	"catalog-impex/feature/catalog"
	"catalog-impex/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StructureReport is the result of a structure check, optionally followed by a fix.
type StructureReport struct {
	// Status is "ok", "missing" or "fixed".
	Status  string   `json:"status"`
	Missing []string `json:"missing"`
}

// Report combines every check. A failed check carries its error instead of a result.
type Report struct {
	Structure      *StructureReport     `json:"structure,omitempty"`
	StructureError string               `json:"structure_error,omitempty"`
	Schema         *checks.SchemaReport `json:"schema,omitempty"`
	SchemaError    string               `json:"schema_error,omitempty"`
}

// Service runs the integrity checks of the bucket layout and the catalog tables.
type Service struct {
	client storage.Client
	bucket string
	cfg    impex.Config
	db     *gorm.DB
	logger *zap.Logger
}

// NewService creates a new integrity service. db may be nil, the schema check then fails.
func NewService(client storage.Client, bucket string, cfg impex.Config, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		db:     db,
		logger: logger,
	}
}

// CheckStructure returns the import prefixes missing from the bucket.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, checks.RequiredPrefixes(s.cfg))
}

// FixStructure creates the missing prefixes.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// Structure checks the import prefixes and creates the missing ones when fix is set.
func (s *Service) Structure(ctx context.Context, fix bool) (*StructureReport, error) {
	missing, err := s.CheckStructure(ctx)
	if err != nil {
		return nil, err
	}

	report := &StructureReport{Status: "ok", Missing: missing}
	if len(missing) == 0 {
		return report, nil
	}

	report.Status = "missing"
	if fix {
		if err := s.FixStructure(ctx, missing); err != nil {
			return report, err
		}
		report.Status = "fixed"
	}
	return report, nil
}

// CheckSchema compares the catalog tables with the catalog models.
func (s *Service) CheckSchema() (*checks.SchemaReport, error) {
	return checks.CheckSchema(s.db, catalog.Models()...)
}

// CheckAll runs the structure and schema checks without fixing anything.
func (s *Service) CheckAll(ctx context.Context) Report {
	var report Report

	if structure, err := s.Structure(ctx, false); err != nil {
		report.StructureError = err.Error()
	} else {
		report.Structure = structure
	}

	if schema, err := s.CheckSchema(); err != nil {
		report.SchemaError = err.Error()
	} else {
		report.Schema = schema
	}

	return report
}
