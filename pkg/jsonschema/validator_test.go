package jsonschema

import (
	"strings"
	"testing"
)

const userSchema = `{
	"type": "object",
	"required": ["name", "age"],
	"properties": {
		"name": {"type": "string"},
		"age": {"type": "integer", "minimum": 0}
	}
}`

func TestValidate(t *testing.T) {
	err := Validate([]byte(`{"name":"alice","age":30}`), []byte(userSchema))
	if err != nil {
		t.Errorf("Expected valid document, got %v", err)
	}
}

func TestValidateFailure(t *testing.T) {
	err := Validate([]byte(`{"name":"alice","age":-1}`), []byte(userSchema))
	if err == nil {
		t.Fatal("Expected validation failure")
	}
	if !strings.Contains(err.Error(), "schema validation failed") {
		t.Errorf("Expected validation message, got %q", err.Error())
	}
}

func TestValidateMissingRequired(t *testing.T) {
	err := Validate([]byte(`{"name":"alice"}`), []byte(userSchema))
	if err == nil {
		t.Fatal("Expected validation failure for missing required field")
	}
}

func TestValidateBadInputs(t *testing.T) {
	if err := Validate([]byte(`{`), []byte(userSchema)); err == nil {
		t.Error("Expected error for malformed JSON document")
	}
	if err := Validate([]byte(`{}`), []byte(`{"type": 42}`)); err == nil {
		t.Error("Expected error for malformed schema")
	}
}
