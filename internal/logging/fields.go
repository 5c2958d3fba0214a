package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldProjectDir = "project_dir"
	FieldManifest   = "manifest"

	// Plugin fields.
	FieldPlugin = "plugin"
	FieldRule   = "rule"
	FieldConfig = "config"

	// Run configuration fields.
	FieldCheck  = "check"
	FieldFormat = "format"

	// Statistics fields.
	FieldDocsProcessed = "docs_processed"
	FieldDocsChanged   = "docs_changed"
	FieldDocsWritten   = "docs_written"
	FieldDocsStubbed   = "docs_stubbed"
	FieldViolations    = "violations"
	FieldWarnings      = "warnings"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
