package params

import (
	"fmt"
	"strings"

	"github.com/segmentio/encoding/json"

	"github.com/sosocrosswalk/soso/pkg/soso"
)

// ParseKeyValuePairs converts a slice of "key=value" strings into a map.
//
// Example:
//
//	values, err := ParseKeyValuePairs([]string{"license=CC-BY-4.0", "inLanguage=en"})
//	// Returns: map[string]string{"license": "CC-BY-4.0", "inLanguage": "en"}
func ParseKeyValuePairs(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, err := cut(pair, "--set license=CC-BY-4.0")
		if err != nil {
			return nil, err
		}
		result[key] = value
	}

	return result, nil
}

// ParseJSONPairs converts "key=<json>" strings into a map of decoded values.
// Objects decode to map[string]any and arrays to []any.
func ParseJSONPairs(pairs []string) (map[string]any, error) {
	result := make(map[string]any, len(pairs))

	for _, pair := range pairs {
		key, raw, err := cut(pair, `--set-json provider={"name":"SPDF"}`)
		if err != nil {
			return nil, err
		}
		var value any
		if err := json.Unmarshal([]byte(raw), &value); err != nil {
			return nil, fmt.Errorf("parameter %q is not valid JSON: %v: %w", key, err, soso.ErrInvalidOverride)
		}
		result[key] = value
	}

	return result, nil
}

func cut(pair, example string) (string, string, error) {
	key, value, ok := strings.Cut(pair, "=")
	if !ok {
		return "", "", fmt.Errorf("parameter %q is not in key=value format (example: %s): %w", pair, example, soso.ErrInvalidOverride)
	}
	if key == "" {
		return "", "", fmt.Errorf("parameter has empty key: %q: %w", pair, soso.ErrInvalidOverride)
	}
	return key, value, nil
}

// Strings widens a string map so it can be merged with other layers.
func Strings(values map[string]string) map[string]any {
	if len(values) == 0 {
		return nil
	}
	result := make(map[string]any, len(values))
	for k, v := range values {
		result[k] = v
	}
	return result
}

// Merge combines override layers. Later layers win on key collision.
// Returns nil when every layer is empty.
func Merge(layers ...map[string]any) map[string]any {
	var result map[string]any
	for _, layer := range layers {
		for k, v := range layer {
			if result == nil {
				result = make(map[string]any)
			}
			result[k] = v
		}
	}
	return result
}
