package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/KirkDiggler/fridaynight/internal/engine"
	"gopkg.in/yaml.v3"
)

// LoadVariant returns the named built-in variant, with fields from the YAML
// file at path laid over it when path is set.
func LoadVariant(name, path string) (*engine.Variant, error) {
	variant, err := engine.LookupVariant(name)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return variant, variant.Validate()
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read league file: %w", err)
	}
	return ParseVariant(variant, raw)
}

// ParseVariant lays YAML fields over base. Lists in the YAML replace lists in base.
func ParseVariant(base *engine.Variant, raw []byte) (*engine.Variant, error) {
	variant := base.Clone()

	decoder := yaml.NewDecoder(bytes.NewReader(raw))
	decoder.KnownFields(true)
	if err := decoder.Decode(variant); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse league file: %w", err)
	}

	if err := variant.Validate(); err != nil {
		return nil, err
	}
	return variant, nil
}
