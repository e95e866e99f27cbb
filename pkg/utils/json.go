package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
)

// WriteJSON writes obj to path as two-space indented JSON without HTML
// escaping, the same shape as the hand-maintained files in the project
// tree.
func WriteJSON(path string, obj interface{}) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(obj); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
