package content

import (
	"strconv"
	"strings"
)

// Accessors for the loosely typed TMDB details document. Numbers arrive as
// float64 from JSON decoding but other shapes show up in tests and cached
// payloads, so each accessor coerces the common ones.

func stringVal(m map[string]any, key string) string {
	if value, ok := m[key]; ok {
		if s, ok := value.(string); ok {
			return s
		}
	}
	return ""
}

func intVal(m map[string]any, key string) (int, bool) {
	value, ok := m[key]
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case int64:
		return int(v), true
	case string:
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed, true
		}
	}
	return 0, false
}

func floatVal(m map[string]any, key string) (float64, bool) {
	value, ok := m[key]
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func boolVal(m map[string]any, key string) bool {
	value, ok := m[key]
	if !ok {
		return false
	}
	switch v := value.(type) {
	case bool:
		return v
	case string:
		return strings.EqualFold(v, "true")
	case float64:
		return v != 0
	case int:
		return v != 0
	}
	return false
}

func stringSlice(m map[string]any, key string) []string {
	value, ok := m[key]
	if !ok {
		return nil
	}
	switch arr := value.(type) {
	case []any:
		out := make([]string, 0, len(arr))
		for _, item := range arr {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return append([]string(nil), arr...)
	default:
		return nil
	}
}

// nestedString reads inner[nestedKey] as text. Numeric IDs (tvdb_id arrives
// as a JSON number) render as their integer form.
func nestedString(m map[string]any, key, nestedKey string) string {
	inner, ok := m[key].(map[string]any)
	if !ok {
		return ""
	}
	switch v := inner[nestedKey].(type) {
	case string:
		return v
	case float64:
		return strconv.Itoa(int(v))
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		return ""
	}
}

// firstStringFromArray returns the first non-empty nested string from an
// array of objects, e.g. the name of the first network.
func firstStringFromArray(m map[string]any, key, nested string) string {
	arr, ok := m[key].([]any)
	if !ok {
		return ""
	}
	for _, item := range arr {
		if obj, ok := item.(map[string]any); ok {
			if value := stringVal(obj, nested); value != "" {
				return value
			}
		}
	}
	return ""
}

// usContentRating digs the US entry out of the content_ratings payload.
func usContentRating(details map[string]any) string {
	raw, ok := details["content_ratings"].(map[string]any)
	if !ok {
		return ""
	}
	results, ok := raw["results"].([]any)
	if !ok {
		return ""
	}
	for _, entry := range results {
		if obj, ok := entry.(map[string]any); ok {
			if strings.EqualFold(stringVal(obj, "iso_3166_1"), "US") {
				return stringVal(obj, "rating")
			}
		}
	}
	return ""
}
