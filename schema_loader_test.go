package valida

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const yamlSchemaTest = `
type: object
required: name
properties:
  name:
    type: string
    minLength: 1
  tags:
    type: array
    uniqueItems: true
    items:
      type: string
additionalProperties: false`

func TestSchemaFromYAMLString(t *testing.T) {
	s, err := SchemaFromYAMLString(yamlSchemaTest)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if s.Type != "object" {
		t.Errorf("expected type object, got %q", s.Type)
	}
	// Scalar required decodes to a one-element list.
	if diff := cmp.Diff([]string{"name"}, s.Required); diff != "" {
		t.Errorf("unexpected required (-want +got):\n%s", diff)
	}
	if s.AdditionalProperties == nil || *s.AdditionalProperties {
		t.Error("expected additionalProperties false")
	}

	tags := s.Properties["tags"]
	if tags == nil {
		t.Fatal("expected tags property schema")
	}
	// Single-schema items decodes to a one-element list.
	if len(tags.Items) != 1 || tags.Items[0].Type != "string" {
		t.Errorf("expected single string item schema, got %+v", tags.Items)
	}
	if !tags.UniqueItems {
		t.Error("expected uniqueItems true")
	}
}

func TestSchemaFromJSONBytes(t *testing.T) {
	s, err := SchemaFromJSONBytes([]byte(`{
		"type": "string",
		"minLength": 2,
		"maxLength": 5,
		"pattern": "^a",
		"format": "email",
		"enum": ["ab", "abc"],
		"nullable": true
	}`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if s.Type != "string" || !s.Nullable {
		t.Errorf("unexpected type/nullable: %q %v", s.Type, s.Nullable)
	}
	if s.MinLength == nil || *s.MinLength != 2 || s.MaxLength == nil || *s.MaxLength != 5 {
		t.Errorf("unexpected length bounds: %v %v", s.MinLength, s.MaxLength)
	}
	if s.Pattern == nil || *s.Pattern != "^a" {
		t.Errorf("unexpected pattern: %v", s.Pattern)
	}
	if s.Format == nil || *s.Format != "email" {
		t.Errorf("unexpected format: %v", s.Format)
	}
	if diff := cmp.Diff([]any{"ab", "abc"}, s.Enum); diff != "" {
		t.Errorf("unexpected enum (-want +got):\n%s", diff)
	}
}

func TestSchemaFromJSONBytes_DropsWrongTypedKeywords(t *testing.T) {
	s, err := SchemaFromJSONBytes([]byte(`{
		"type": 5,
		"pattern": 12,
		"minLength": "three",
		"required": [1, "a", true],
		"uniqueItems": "yes"
	}`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if s.Type != "" {
		t.Errorf("expected wrong-typed type keyword to be dropped, got %q", s.Type)
	}
	if s.Pattern != nil {
		t.Errorf("expected wrong-typed pattern keyword to be dropped, got %v", *s.Pattern)
	}
	if s.MinLength != nil {
		t.Errorf("expected wrong-typed minLength keyword to be dropped, got %v", *s.MinLength)
	}
	if s.UniqueItems {
		t.Error("expected wrong-typed uniqueItems keyword to be dropped")
	}
	// Non-string entries drop, string entries survive.
	if diff := cmp.Diff([]string{"a"}, s.Required); diff != "" {
		t.Errorf("unexpected required (-want +got):\n%s", diff)
	}
}

func TestSchemaFromJSONBytes_NonObjectDocument(t *testing.T) {
	s, err := SchemaFromJSONBytes([]byte(`"just a string"`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s != nil {
		t.Errorf("expected nil schema for non-object document, got %+v", s)
	}

	// And a nil schema validates as "no constraints".
	if !New().IsValid(s, map[string]any{"anything": true}) {
		t.Error("expected nil schema to accept any value")
	}
}

func TestSchemaFromJSONBytes_Composition(t *testing.T) {
	s, err := SchemaFromJSONBytes([]byte(`{
		"oneOf": [
			{"type": "string"},
			{"type": "number", "minimum": 3}
		]
	}`))
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if len(s.OneOf) != 2 {
		t.Fatalf("expected two alternatives, got %d", len(s.OneOf))
	}
	if s.OneOf[1].Minimum == nil || *s.OneOf[1].Minimum != 3 {
		t.Errorf("unexpected nested minimum: %v", s.OneOf[1].Minimum)
	}
}

func TestSchemaFromYAMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	if err := os.WriteFile(path, []byte(yamlSchemaTest), 0o600); err != nil {
		t.Fatalf("failed to write schema file: %v", err)
	}

	s, err := SchemaFromYAMLFile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.Type != "object" {
		t.Errorf("expected type object, got %q", s.Type)
	}

	if _, err := SchemaFromYAMLFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}

func TestSchemaFromJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.json")
	if err := os.WriteFile(path, []byte(`{"type": "array", "minItems": 1}`), 0o600); err != nil {
		t.Fatalf("failed to write schema file: %v", err)
	}

	s, err := SchemaFromJSONFile(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if s.Type != "array" || s.MinItems == nil || *s.MinItems != 1 {
		t.Errorf("unexpected schema: %+v", s)
	}
}
