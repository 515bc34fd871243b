package note

import (
	"errors"
	"strings"
)

const (
	startMarker = "<!-- TMDB_DATA_START -->"
	endMarker   = "<!-- TMDB_DATA_END -->"
)

// HasContentMarkers reports whether the body contains the managed content
// region markers.
func (n *Note) HasContentMarkers() bool {
	return strings.Contains(n.body, startMarker) && strings.Contains(n.body, endMarker)
}

// SetGeneratedContent replaces the managed region of the body with content,
// or appends a new marker-delimited region when none exists. Text outside the
// markers is preserved.
func (n *Note) SetGeneratedContent(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return errors.New("empty content")
	}

	if n.HasContentMarkers() {
		startIdx := strings.Index(n.body, startMarker)
		endIdx := strings.Index(n.body, endMarker)
		if startIdx != -1 && endIdx != -1 && endIdx > startIdx {
			before := strings.TrimSpace(n.body[:startIdx])
			after := strings.TrimSpace(n.body[endIdx+len(endMarker):])

			var builder strings.Builder
			if before != "" {
				builder.WriteString(before)
				builder.WriteString("\n\n")
			}
			writeRegion(&builder, content)
			if after != "" {
				builder.WriteString("\n")
				builder.WriteString(after)
			}
			n.body = builder.String()
			return nil
		}
	}

	var builder strings.Builder
	if body := strings.TrimRight(n.body, "\n"); body != "" {
		builder.WriteString(body)
		builder.WriteString("\n\n")
	}
	writeRegion(&builder, content)
	builder.WriteString("\n")
	n.body = builder.String()
	return nil
}

func writeRegion(builder *strings.Builder, content string) {
	builder.WriteString(startMarker)
	builder.WriteString("\n")
	builder.WriteString(content)
	builder.WriteString("\n")
	builder.WriteString(endMarker)
}
