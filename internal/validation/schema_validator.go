package validation

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed schemas/*.schema.json
var schemaFS embed.FS

// Schema names shipped with the binary
const (
	SchemaTable = "table"
)

// SchemaValidator validates configuration documents against the embedded JSON schemas
type SchemaValidator interface {
	ValidateJSON(data []byte, schema string) error
	ValidateYAML(data []byte, schema string) error
}

type validator struct {
	mu       sync.Mutex
	compiler *jsonschema.Compiler
	schemas  map[string]*jsonschema.Schema
}

// NewSchemaValidator creates a new schema validator
func NewSchemaValidator() SchemaValidator {
	return &validator{
		compiler: jsonschema.NewCompiler(),
		schemas:  make(map[string]*jsonschema.Schema),
	}
}

// ValidateJSON validates JSON data bytes against the named schema
func (v *validator) ValidateJSON(data []byte, schema string) error {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgParseDocument, err)
	}
	return v.validate(doc, schema)
}

// ValidateYAML validates a YAML document against the named schema. An empty
// document is valid.
func (v *validator) ValidateYAML(data []byte, schema string) error {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgParseDocument, err)
	}
	if raw == nil {
		return nil
	}

	// Round-trip through JSON so numbers reach the validator as json.Number
	asJSON, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgParseDocument, err)
	}
	return v.ValidateJSON(asJSON, schema)
}

func (v *validator) validate(doc interface{}, name string) error {
	schema, err := v.loadSchema(name)
	if err != nil {
		return err
	}
	if err := schema.Validate(doc); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// loadSchema compiles an embedded schema once and caches it
func (v *validator) loadSchema(name string) (*jsonschema.Schema, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if schema, ok := v.schemas[name]; ok {
		return schema, nil
	}

	path := fmt.Sprintf(SchemaPathPattern, name)
	data, err := schemaFS.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s %q: %w", ErrMsgUnknownSchema, name, err)
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseSchema, err)
	}
	if err := v.compiler.AddResource(path, doc); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCompileSchema, err)
	}
	schema, err := v.compiler.Compile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgCompileSchema, err)
	}

	v.schemas[name] = schema
	return schema, nil
}

// formatValidationError flattens the error tree into one line per failure
func formatValidationError(err error) error {
	var validationErr *jsonschema.ValidationError
	if !errors.As(err, &validationErr) {
		return fmt.Errorf("%s: %w", ErrMsgValidationFailed, err)
	}

	var lines []string
	collectErrors(validationErr, &lines)
	return fmt.Errorf("%s:\n%s", ErrMsgValidationFailed, strings.Join(lines, "\n"))
}

func collectErrors(err *jsonschema.ValidationError, lines *[]string) {
	if len(err.Causes) == 0 {
		*lines = append(*lines, formatError(err))
		return
	}
	for _, cause := range err.Causes {
		collectErrors(cause, lines)
	}
}

func formatError(err *jsonschema.ValidationError) string {
	location := "(root)"
	if len(err.InstanceLocation) > 0 {
		location = "/" + strings.Join(err.InstanceLocation, "/")
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywords = strings.Join(err.ErrorKind.KeywordPath(), ".")
	}
	if keywords == "" {
		return fmt.Sprintf("  - at %s: validation failed", location)
	}
	return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
}
