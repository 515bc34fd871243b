package note

import (
	"bytes"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Frontmatter holds a note's YAML properties in document order. Obsidian
// users arrange properties deliberately, so edits must not shuffle keys:
// existing keys update in place and new keys append at the end.
type Frontmatter struct {
	fields *orderedmap.OrderedMap[string, any]
}

func NewFrontmatter() *Frontmatter {
	return &Frontmatter{fields: orderedmap.New[string, any]()}
}

// parseFrontmatter splits raw note content into frontmatter and body. Content
// without a leading delimiter, or with YAML that fails to parse, comes back
// with empty frontmatter and the untouched content as body so a save never
// destroys what the user wrote.
func parseFrontmatter(content string) (*Frontmatter, string) {
	fm := NewFrontmatter()
	if !strings.HasPrefix(content, frontmatterDelimiter) {
		return fm, content
	}

	trimmed := strings.TrimPrefix(content, frontmatterDelimiter)
	trimmed = strings.TrimPrefix(trimmed, "\n")
	parts := strings.SplitN(trimmed, "\n"+frontmatterDelimiter+"\n", 2)
	if len(parts) != 2 {
		return fm, content
	}

	raw := strings.TrimSuffix(parts[0], "\n")
	if err := yaml.Unmarshal([]byte(raw), fm.fields); err != nil {
		return NewFrontmatter(), content
	}
	return fm, parts[1]
}

func (f *Frontmatter) Len() int {
	return f.fields.Len()
}

func (f *Frontmatter) Get(key string) (any, bool) {
	return f.fields.Get(key)
}

// Set updates an existing key in place or appends a new one.
func (f *Frontmatter) Set(key string, value any) {
	f.fields.Set(key, value)
}

// GetString returns the value for key when it is a non-empty string.
func (f *Frontmatter) GetString(key string) (string, bool) {
	value, ok := f.fields.Get(key)
	if !ok {
		return "", false
	}
	s, ok := value.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// GetInt returns the value for key when it carries an integer. YAML decoding
// may surface numbers as int, int64, or float64 depending on the source.
func (f *Frontmatter) GetInt(key string) (int, bool) {
	value, ok := f.fields.Get(key)
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}

// GetStringSlice returns the value for key as a string slice, skipping
// non-string and empty elements.
func (f *Frontmatter) GetStringSlice(key string) []string {
	value, ok := f.fields.Get(key)
	if !ok {
		return nil
	}
	switch v := value.(type) {
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				result = append(result, s)
			}
		}
		return result
	case []string:
		return append([]string(nil), v...)
	default:
		return nil
	}
}

// Keys returns the property names in document order.
func (f *Frontmatter) Keys() []string {
	keys := make([]string, 0, f.fields.Len())
	for pair := f.fields.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

func (f *Frontmatter) marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(f.fields); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
