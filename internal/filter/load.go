package filter

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"
)

// LoadPatterns reads glob patterns from a JSONC file holding an array of
// strings. Comments and trailing commas are allowed.
func LoadPatterns(path string) ([]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path comes from a user flag
	if err != nil {
		return nil, fmt.Errorf("reading exclude patterns %q: %w", path, err)
	}

	var patterns []string
	if err := json.Unmarshal(jsonc.ToJSONInPlace(data), &patterns); err != nil {
		return nil, fmt.Errorf("parsing exclude patterns %q: %w", path, err)
	}

	return patterns, nil
}
