package matrix

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/renameio/v2"
	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/absolutejs/create-absolutejs/internal/defs"
	"github.com/absolutejs/create-absolutejs/pkg/models"
)

//go:embed schema.json
var schemaJSON []byte

const schemaURL = "matrix.schema.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

// loadSchema compiles the embedded artifact schema once.
func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		if err := compiler.AddResource(schemaURL, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add matrix schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, schemaErr
}

// Marshal encodes configs as a pretty-printed JSON array with a trailing newline.
func Marshal(configs []models.Configuration) ([]byte, error) {
	if configs == nil {
		configs = []models.Configuration{}
	}
	data, err := json.MarshalIndent(configs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode matrix: %w", err)
	}
	return append(data, '\n'), nil
}

// WriteArtifact writes configs to path atomically so readers never observe a
// partially written matrix.
func WriteArtifact(path string, configs []models.Configuration) error {
	data, err := Marshal(configs)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), defs.DirPerm); err != nil {
		return fmt.Errorf("create matrix directory: %w", err)
	}
	if err := renameio.WriteFile(path, data, defs.FilePerm); err != nil {
		return fmt.Errorf("write matrix %s: %w", path, err)
	}
	return nil
}

// Decode checks raw artifact bytes against the schema and decodes them.
func Decode(data []byte) ([]models.Configuration, error) {
	schema, err := loadSchema()
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse matrix: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSchema, err)
	}

	var configs []models.Configuration
	if err := json.Unmarshal(data, &configs); err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}
	return configs, nil
}

// ValidateArtifact reads a previously generated matrix and validates it.
// It returns the number of configurations checked.
func ValidateArtifact(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read matrix %s: %w", path, err)
	}
	configs, err := Decode(data)
	if err != nil {
		return 0, err
	}
	if err := Validate(configs); err != nil {
		return 0, err
	}
	return len(configs), nil
}
