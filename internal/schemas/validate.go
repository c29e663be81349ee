// Package schemas validates profile documents against JSON Schema files.
package schemas

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ProfileSchema is the repo-relative path of the CV profile schema.
const ProfileSchema = "schemas/cv_profile.schema.json"

// ResolveSchemaPath finds relativePath from the working directory or up to
// two parent directories, so commands and tests run from any package dir.
// It returns an absolute path, or "" when nothing exists.
func ResolveSchemaPath(relativePath string) string {
	candidates := []string{
		relativePath,
		filepath.Join("..", relativePath),
		filepath.Join("..", "..", relativePath),
	}

	for _, candidate := range candidates {
		absPath, err := filepath.Abs(candidate)
		if err != nil {
			continue
		}
		if _, err := os.Stat(absPath); err == nil {
			return absPath
		}
	}

	return ""
}

// FieldError is a single violation at a document path
type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every violation found in a document
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, err.Field, err.Message)
	}
	return sb.String()
}

// SchemaLoadError is returned when the schema or document cannot be loaded
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSON validates the JSON file at jsonPath against the schema file at schemaPath.
func ValidateJSON(schemaPath, jsonPath string) error {
	jsonAbsPath, err := existingAbs(jsonPath, "JSON")
	if err != nil {
		return err
	}
	return ValidateFile(schemaPath, gojsonschema.NewReferenceLoader("file://"+jsonAbsPath))
}

// ValidateBytes validates an in-memory JSON document against the schema file at schemaPath.
func ValidateBytes(schemaPath string, document []byte) error {
	return ValidateFile(schemaPath, gojsonschema.NewBytesLoader(document))
}

// ValidateFile validates a loaded document against the schema file at schemaPath.
func ValidateFile(schemaPath string, document gojsonschema.JSONLoader) error {
	schemaAbsPath, err := existingAbs(schemaPath, "schema")
	if err != nil {
		return err
	}
	return validate(schemaAbsPath, gojsonschema.NewReferenceLoader("file://"+schemaAbsPath), document)
}

// ValidateJSONString validates JSON content against schema content.
func ValidateJSONString(schemaContent, jsonContent string) error {
	return validate("(string schema)",
		gojsonschema.NewStringLoader(schemaContent),
		gojsonschema.NewStringLoader(jsonContent))
}

func existingAbs(path, kind string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %s path: %w", kind, err)
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return "", fmt.Errorf("%s file not found: %s", kind, absPath)
	}
	return absPath, nil
}

func validate(schemaName string, schema, document gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(schema, document)
	if err != nil {
		return &SchemaLoadError{
			Path:    schemaName,
			Message: "schema validation failed during load",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
