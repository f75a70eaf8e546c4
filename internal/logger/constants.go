package logger

// Attribute keys attached by this package
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// Accepted formats
const (
	FormatJSON = "json"
	FormatText = "text"
)
