package utils

// Structured log field names shared across packages.
const (
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldURL        = "url"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldKind       = "kind"
	FieldID         = "id"
	FieldFile       = "file"
	FieldEdition    = "edition"
	FieldCommand    = "command"
)
