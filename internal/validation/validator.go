package validation

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.schema.json
var embeddedSchemas embed.FS

const (
	schemaNameGetSchema      = "schemas/get_schema.schema.json"
	schemaNameGetPlayerItems = "schemas/get_player_items.schema.json"
)

// Validator checks raw Steam WebAPI payloads against embedded JSON Schemas
// before they are decoded into domain types. It is optional and intended for
// staging environments where malformed upstream responses should fail loudly.
type Validator struct {
	schemas map[string]*jsonschema.Schema
}

// NewValidator compiles the embedded payload schemas
func NewValidator() (*Validator, error) {
	compiler := jsonschema.NewCompiler()
	schemas := make(map[string]*jsonschema.Schema, 2)

	for _, name := range []string{schemaNameGetSchema, schemaNameGetPlayerItems} {
		raw, err := embeddedSchemas.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded schema %s: %w", name, err)
		}

		var doc any
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse schema %s: %w", name, err)
		}

		if err := compiler.AddResource(name, doc); err != nil {
			return nil, fmt.Errorf("failed to add schema resource %s: %w", name, err)
		}

		compiled, err := compiler.Compile(name)
		if err != nil {
			return nil, fmt.Errorf("failed to compile schema %s: %w", name, err)
		}
		schemas[name] = compiled
	}

	return &Validator{schemas: schemas}, nil
}

// ValidateSchema checks a GetSchema response body
func (v *Validator) ValidateSchema(data []byte) error {
	return v.validate(data, schemaNameGetSchema)
}

// ValidateBackpack checks a GetPlayerItems response body
func (v *Validator) ValidateBackpack(data []byte) error {
	return v.validate(data, schemaNameGetPlayerItems)
}

func (v *Validator) validate(data []byte, name string) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to parse JSON data: %w", err)
	}

	if err := v.schemas[name].Validate(doc); err != nil {
		return formatValidationError(err)
	}

	return nil
}

// formatValidationError formats validation errors to be user-friendly
func formatValidationError(err error) error {
	if validationErr, ok := err.(*jsonschema.ValidationError); ok {
		var errors []string
		collectErrors(validationErr, &errors)
		return fmt.Errorf("schema validation failed:\n%s", strings.Join(errors, "\n"))
	}
	return fmt.Errorf("validation error: %w", err)
}

// collectErrors recursively collects all validation errors
func collectErrors(err *jsonschema.ValidationError, errors *[]string) {
	msg := formatError(err)
	if msg != "" {
		*errors = append(*errors, msg)
	}

	for _, cause := range err.Causes {
		collectErrors(cause, errors)
	}
}

// formatError formats a single validation error
func formatError(err *jsonschema.ValidationError) string {
	// Instance location is the path to the invalid data
	location := strings.Join(err.InstanceLocation, "/")
	if location == "" {
		location = "(root)"
	} else {
		location = "/" + location
	}

	keywords := ""
	if err.ErrorKind != nil {
		keywordPath := err.ErrorKind.KeywordPath()
		if len(keywordPath) > 0 {
			keywords = strings.Join(keywordPath, ".")
		}
	}

	if keywords != "" {
		return fmt.Sprintf("  - at %s: %s validation failed", location, keywords)
	}
	return fmt.Sprintf("  - at %s: validation failed", location)
}
