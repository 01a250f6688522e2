package catalog

// Schema names (relative to the embedded schemas directory)
const (
	SchemaItems   = "items.schema.json"
	SchemaRecipes = "recipes.schema.json"
	SchemaJobs    = "jobs.schema.json"
)

// CSV header expected for item catalogs
var itemCSVHeader = []string{"category", "name", "type", "level", "image_url"}

// Error messages
const (
	ErrMsgReadFileFailed   = "failed to read %s: %w"
	ErrMsgParseFileFailed  = "failed to parse %s: %w"
	ErrMsgSchemaFailed     = "schema validation failed for %s: %w"
	ErrMsgUnsupportedExt   = "unsupported catalog format %q"
	ErrMsgMisalignedArrays = "recipe %q has %d names, %d ids and %d quantities"
	ErrMsgDuplicateItem    = "duplicate item name %q"
	ErrMsgBadCSVHeader     = "unexpected CSV header %v"
	ErrMsgBadCSVLevel      = "line %d: invalid level %q"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Catalog loaded"
	LogMsgJobsMissing   = "Jobs file not found, deriving jobs from recipes"
)

// Search tuning
const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 50
	minPrefixLength    = 2
)
