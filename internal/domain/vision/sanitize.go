package vision

import (
	"encoding/json"
	"strings"
)

// StripFences removes the code-fence markers some models wrap JSON output in.
// Order matters: leading "```json" first, then a trailing "```". Applying it
// to already-clean text is a no-op.
func StripFences(s string) string {
	out := strings.TrimSpace(s)
	if strings.HasPrefix(out, "```json") {
		out = out[len("```json"):]
	}
	if strings.HasSuffix(out, "```") {
		out = out[:len(out)-len("```")]
	}
	return strings.TrimSpace(out)
}

// ParseObject strips fences and attempts a strict JSON parse of what remains.
func ParseObject(raw string) (any, error) {
	var parsed any
	if err := json.Unmarshal([]byte(StripFences(raw)), &parsed); err != nil {
		return nil, err
	}
	return parsed, nil
}
