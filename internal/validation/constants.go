package validation

// SchemaPathPattern locates a named schema inside the embedded filesystem
const SchemaPathPattern = "schemas/%s.schema.json"

// Error messages
const (
	ErrMsgParseDocument    = "failed to parse document"
	ErrMsgUnknownSchema    = "unknown schema"
	ErrMsgParseSchema      = "failed to parse schema"
	ErrMsgCompileSchema    = "failed to compile schema"
	ErrMsgValidationFailed = "schema validation failed"
)
