package matrix

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/absolutejs/create-absolutejs/internal/compat"
)

func TestWriteArtifact_ThenValidate(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "matrix.json")
	configs := Generate()

	if err := WriteArtifact(path, configs); err != nil {
		t.Fatalf("WriteArtifact() error = %v", err)
	}

	n, err := ValidateArtifact(path)
	if err != nil {
		t.Fatalf("ValidateArtifact() error = %v", err)
	}
	if n != len(configs) {
		t.Errorf("ValidateArtifact() = %d, want %d", n, len(configs))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("[\n  {\n    \"frontend\": \"react\"")) {
		t.Errorf("artifact is not pretty-printed:\n%.80s", data)
	}
	if !bytes.HasSuffix(data, []byte("]\n")) {
		t.Error("artifact does not end with a newline")
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if diff := cmp.Diff(configs, decoded); diff != "" {
		t.Errorf("decoded matrix differs (-want +got):\n%s", diff)
	}
}

func TestDecode_Schema(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{"not an array", `{"frontend": "react"}`},
		{"unknown property", `[{"frontend":"react","databaseEngine":"none","orm":"none","databaseHost":"none","authProvider":"none","directoryConfig":"default","useTailwind":false,"extra":1}]`},
		{"missing field", `[{"frontend":"react","databaseEngine":"none","orm":"none","databaseHost":"none","authProvider":"none","directoryConfig":"default"}]`},
		{"enum outside domain", `[{"frontend":"solid","databaseEngine":"none","orm":"none","databaseHost":"none","authProvider":"none","directoryConfig":"default","useTailwind":false}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Decode([]byte(tt.data)); !errors.Is(err, ErrSchema) {
				t.Errorf("Decode() error = %v, want ErrSchema", err)
			}
		})
	}
}

func TestValidateArtifact_RuleViolation(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matrix.json")
	data := `[
  {"frontend":"react","databaseEngine":"none","orm":"none","databaseHost":"none","authProvider":"none","directoryConfig":"default","useTailwind":false},
  {"frontend":"vue","databaseEngine":"mysql","orm":"none","databaseHost":"turso","authProvider":"none","directoryConfig":"default","useTailwind":true}
]`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ValidateArtifact(path)
	var entryErr *EntryError
	if !errors.As(err, &entryErr) || entryErr.Index != 1 {
		t.Fatalf("ValidateArtifact() error = %v, want entry 1 failure", err)
	}
	if !errors.Is(err, compat.ErrIncompatible) {
		t.Errorf("error %v does not wrap ErrIncompatible", err)
	}
}

func TestValidateArtifact_Empty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "matrix.json")
	if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ValidateArtifact(path); !errors.Is(err, ErrEmptyMatrix) {
		t.Errorf("ValidateArtifact() error = %v, want ErrEmptyMatrix", err)
	}
}

func TestValidateArtifact_Missing(t *testing.T) {
	t.Parallel()

	if _, err := ValidateArtifact(filepath.Join(t.TempDir(), "nope.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ValidateArtifact() error = %v, want os.ErrNotExist", err)
	}
}
