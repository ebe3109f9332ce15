package params

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/sosocrosswalk/soso/pkg/soso"
)

// ParseEnvFile parses override file content in .env format.
// It returns a map of key-value pairs.
//
// Format rules follow godotenv:
// - Lines starting with # are comments
// - Empty lines are ignored
// - Format: KEY=VALUE, optionally prefixed with "export "
// - Values can be quoted with single or double quotes
// - Double-quoted values expand escapes such as \n
func ParseEnvFile(content []byte) (map[string]string, error) {
	values, err := godotenv.UnmarshalBytes(content)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, soso.ErrInvalidOverride)
	}
	for key := range values {
		if key == "" {
			return nil, fmt.Errorf("empty key: %w", soso.ErrInvalidOverride)
		}
	}
	return values, nil
}

// LoadOverridesFile reads and parses an override file.
func LoadOverridesFile(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read overrides file: %w", err)
	}
	values, err := ParseEnvFile(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return values, nil
}
