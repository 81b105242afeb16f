package impex

// Config holds configuration for the import engine and its drivers.
type Config struct {
	// ContextNamespace is the namespace handlers are registered and looked up under.
	ContextNamespace string `mapstructure:"context_namespace" default:"catalog-impex/xml" validate:"required"`
	// TimestampLayout is the Go time layout of timestamps in import documents.
	TimestampLayout string `mapstructure:"timestamp_layout" default:"2006-01-02 15:04:05" validate:"required"`
	// DescriptorPath is an optional YAML import descriptor.
	DescriptorPath string `mapstructure:"descriptor_path" default:""`
	// InboxPrefix is the storage prefix scanned for documents to import.
	InboxPrefix string `mapstructure:"inbox_prefix" default:"import/inbox" validate:"required"`
	// ProcessedPrefix receives documents imported without failures.
	ProcessedPrefix string `mapstructure:"processed_prefix" default:"import/processed" validate:"required,nefield=InboxPrefix"`
	// FailedPrefix receives documents with at least one failed record.
	FailedPrefix string `mapstructure:"failed_prefix" default:"import/failed" validate:"required,nefield=InboxPrefix"`
	// FailFast stops a document at its first failed record.
	FailFast bool `mapstructure:"fail_fast" default:"false"`
}
