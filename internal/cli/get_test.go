package cli

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wesleyorama2/jfetch/pkg/fetch"
)

func TestGetCommand(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != "GET" {
			t.Errorf("Expected GET request, got %s", r.Method)
		}
		if r.Header.Get("X-Test-Header") != "test-value" {
			t.Errorf("Expected X-Test-Header: test-value, got %q", r.Header.Get("X-Test-Header"))
		}
		if r.URL.Query().Get("page") != "2" {
			t.Errorf("Expected page=2 query, got %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"success"}`))
	}))
	defer server.Close()

	resetRequestCmd(getCmd, false)
	out, _, err := execute(t, "get", server.URL,
		"-H", "X-Test-Header: test-value",
		"-q", "page=2",
		"--no-color")
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	if !strings.Contains(out, "200") {
		t.Errorf("Expected status in output, got %q", out)
	}
	if !strings.Contains(out, `"message": "success"`) {
		t.Errorf("Expected body in output, got %q", out)
	}
}

func TestGetCommandExtract(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"user":{"name":"alice"}}`))
	}))
	defer server.Close()

	resetRequestCmd(getCmd, false)
	out, _, err := execute(t, "get", server.URL, "--extract", "$.user.name", "--no-color")
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	if !strings.Contains(out, "alice") {
		t.Errorf("Expected extracted value in output, got %q", out)
	}
}

func TestGetCommandSchema(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":"alice"}`))
	}))
	defer server.Close()

	schemaPath := filepath.Join(t.TempDir(), "schema.json")
	schema := `{"type":"object","required":["name"],"properties":{"name":{"type":"string"}}}`
	if err := os.WriteFile(schemaPath, []byte(schema), 0o644); err != nil {
		t.Fatalf("Error writing schema: %v", err)
	}

	resetRequestCmd(getCmd, false)
	out, _, err := execute(t, "get", server.URL, "--schema", schemaPath, "--no-color")
	if err != nil {
		t.Fatalf("Command returned error: %v", err)
	}
	if !strings.Contains(out, "schema: valid") {
		t.Errorf("Expected schema confirmation, got %q", out)
	}
}

func TestGetCommandSchemaFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"name":42}`))
	}))
	defer server.Close()

	schemaPath := filepath.Join(t.TempDir(), "schema.json")
	schema := `{"type":"object","properties":{"name":{"type":"string"}}}`
	if err := os.WriteFile(schemaPath, []byte(schema), 0o644); err != nil {
		t.Fatalf("Error writing schema: %v", err)
	}

	resetRequestCmd(getCmd, false)
	_, _, err := execute(t, "get", server.URL, "--schema", schemaPath, "--no-color")
	if err == nil {
		t.Fatal("Expected schema validation to fail")
	}
}

func TestGetCommandServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	resetRequestCmd(getCmd, false)
	_, errOut, err := execute(t, "get", server.URL, "--no-color")
	if !fetch.IsNetwork(err) {
		t.Fatalf("Expected network error, got %v", err)
	}
	if !strings.Contains(errOut, "responded with 500") {
		t.Errorf("Expected failure message on stderr, got %q", errOut)
	}
}
