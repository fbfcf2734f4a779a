package metadata

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var validate = validator.New()

// Parse decodes and validates a metadata document.
func Parse(data []byte) (*Metadata, error) {
	var meta Metadata
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("failed to decode metadata document: %w", err)
	}
	if err := validate.Struct(&meta); err != nil {
		return nil, fmt.Errorf("invalid metadata document: %w", err)
	}
	return &meta, nil
}

// Read decodes and validates a metadata document from a reader.
func Read(r io.Reader) (*Metadata, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read metadata document: %w", err)
	}
	return Parse(data)
}

// LoadFile decodes and validates a metadata document from a file.
func LoadFile(path string) (*Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	meta, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return meta, nil
}
