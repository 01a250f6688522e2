package validation

import (
	"strings"
	"testing"
	"testing/fstest"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	},
	"required": ["name"]
}`

func TestSchemaValidator_ValidateFile(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "John", "age": "thirty"}`, wantError: true, errorMsg: "age"},
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, wantError: true, errorMsg: "age"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, wantError: true, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schemas := fstest.MapFS{"person.schema.json": {Data: []byte(personSchema)}}
			data := fstest.MapFS{"person.json": {Data: []byte(tt.data)}}
			validator := NewSchemaValidator(schemas, data)

			err := validator.ValidateFile("person.json", "person.schema.json")

			if tt.wantError {
				if err == nil {
					t.Errorf("Expected error but got none")
				} else if tt.errorMsg != "" && !strings.Contains(err.Error(), tt.errorMsg) {
					t.Errorf("Expected error to contain %q, got: %v", tt.errorMsg, err)
				}
			} else if err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_ValidateBytes(t *testing.T) {
	schemas := fstest.MapFS{"list.schema.json": {Data: []byte(`{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "array",
		"items": {
			"type": "object",
			"properties": {
				"id": {"type": "integer"},
				"name": {"type": "string"}
			},
			"required": ["id", "name"]
		}
	}`)}}
	validator := NewSchemaValidator(schemas, fstest.MapFS{})

	tests := []struct {
		name      string
		data      string
		wantError bool
	}{
		{name: "valid array", data: `[{"id": 1, "name": "Item1"}, {"id": 2, "name": "Item2"}]`},
		{name: "empty array", data: `[]`},
		{name: "invalid item in array", data: `[{"id": 1, "name": "Item1"}, {"id": "two", "name": "Item2"}]`, wantError: true},
		{name: "missing required field", data: `[{"id": 1}]`, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), "list.schema.json")

			if tt.wantError && err == nil {
				t.Errorf("Expected error but got none")
			}
			if !tt.wantError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestSchemaValidator_MissingSchema(t *testing.T) {
	validator := NewSchemaValidator(fstest.MapFS{}, fstest.MapFS{"data.json": {Data: []byte(`{}`)}})

	err := validator.ValidateFile("data.json", "nonexistent.schema.json")
	if err == nil {
		t.Fatal("Expected error for non-existent schema file")
	}
	if !strings.Contains(err.Error(), "failed to load schema") {
		t.Errorf("Expected 'failed to load schema' error, got: %v", err)
	}
}

func TestSchemaValidator_MissingDataFile(t *testing.T) {
	schemas := fstest.MapFS{"obj.schema.json": {Data: []byte(`{"type": "object"}`)}}
	validator := NewSchemaValidator(schemas, fstest.MapFS{})

	err := validator.ValidateFile("nonexistent.json", "obj.schema.json")
	if err == nil {
		t.Fatal("Expected error for non-existent data file")
	}
	if !strings.Contains(err.Error(), "failed to read data file") {
		t.Errorf("Expected 'failed to read data file' error, got: %v", err)
	}
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	schemas := fstest.MapFS{"obj.schema.json": {Data: []byte(`{"type": "object"}`)}}
	v := NewSchemaValidator(schemas, fstest.MapFS{}).(*validator)

	data := []byte(`{"test": "value"}`)
	if err := v.ValidateBytes(data, "obj.schema.json"); err != nil {
		t.Fatalf("First validation failed: %v", err)
	}
	if len(v.schemas) != 1 {
		t.Errorf("Expected 1 cached schema, got %d", len(v.schemas))
	}

	if err := v.ValidateBytes(data, "obj.schema.json"); err != nil {
		t.Fatalf("Second validation failed: %v", err)
	}
	if len(v.schemas) != 1 {
		t.Errorf("Expected 1 cached schema after second validation, got %d", len(v.schemas))
	}
}
