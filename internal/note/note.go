package note

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"reelnote/internal/textutil"
)

// htmlColorPattern matches the hex color placeholders Obsidian themes drop
// into the cover property, e.g. "#1e1e2e". A color is not a real cover.
var htmlColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Metadata carries the frontmatter fields an enrichment run may write.
// Nil pointer fields are left untouched in the note.
type Metadata struct {
	Runtime       *int
	TotalEpisodes *int
	GenreTags     []string
	TMDBID        *int
	TMDBType      *string
}

// Note is an Obsidian markdown note split into frontmatter and body.
type Note struct {
	Path        string
	frontmatter *Frontmatter
	body        string
}

// Load reads and parses a note from disk. Files without frontmatter, or with
// frontmatter that fails to parse, load with an empty property set and the
// full file content as body.
func Load(path string) (*Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load note: %w", err)
	}
	fm, body := parseFrontmatter(string(data))
	return &Note{Path: path, frontmatter: fm, body: body}, nil
}

func (n *Note) Frontmatter() *Frontmatter {
	return n.frontmatter
}

func (n *Note) Body() string {
	return n.body
}

// Title derives the note title: the frontmatter title property wins, then the
// first H1 heading in the body, then the filename without extension.
func (n *Note) Title() string {
	if title, ok := n.frontmatter.GetString("title"); ok {
		return title
	}
	for _, line := range strings.Split(n.body, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(line[2:])
		}
	}
	return strings.TrimSuffix(filepath.Base(n.Path), filepath.Ext(n.Path))
}

func (n *Note) cover() (string, bool) {
	return n.frontmatter.GetString("cover")
}

// NeedsCover reports whether the note lacks a usable local cover image.
// Missing covers, hex color placeholders, and external URLs all qualify.
func (n *Note) NeedsCover() bool {
	cover, ok := n.cover()
	if !ok {
		return true
	}
	if htmlColorPattern.MatchString(cover) {
		return true
	}
	return strings.HasPrefix(cover, "http")
}

// ExternalCoverURL returns the cover property when it holds an HTTP(S) URL.
// Such a URL is reused as the download source instead of querying anew.
func (n *Note) ExternalCoverURL() (string, bool) {
	cover, ok := n.cover()
	if !ok || htmlColorPattern.MatchString(cover) {
		return "", false
	}
	if !strings.HasPrefix(cover, "http") {
		return "", false
	}
	return cover, true
}

// NeedsMetadata reports whether runtime or genre tags are missing.
func (n *Note) NeedsMetadata() bool {
	if _, ok := n.frontmatter.Get("runtime"); !ok {
		return true
	}
	for _, tag := range n.frontmatter.GetStringSlice("tags") {
		if strings.HasPrefix(tag, "movie/") || strings.HasPrefix(tag, "tv/") {
			return false
		}
	}
	return true
}

// NeedsLookupID reports whether the note lacks a usable stored lookup
// identity, meaning a title search is required to resolve it.
func (n *Note) NeedsLookupID() bool {
	_, hasID := n.TMDBID()
	_, hasType := n.TMDBType()
	return !hasID || !hasType
}

// TMDBID returns the stored TMDB identifier when it is an integer.
func (n *Note) TMDBID() (int, bool) {
	return n.frontmatter.GetInt("tmdb_id")
}

// TMDBType returns the stored media type when it is "movie" or "tv".
func (n *Note) TMDBType() (string, bool) {
	value, ok := n.frontmatter.GetString("tmdb_type")
	if !ok {
		return "", false
	}
	value = strings.TrimSpace(value)
	if value != "movie" && value != "tv" {
		return "", false
	}
	return value, true
}

// CoverFileName builds the attachment filename for this note's cover image.
func (n *Note) CoverFileName() string {
	return textutil.SanitizeFileName(n.Title() + " - cover.jpg")
}

// SetCover updates the cover property. The path should be relative to the
// note file so the vault stays portable.
func (n *Note) SetCover(path string) {
	n.frontmatter.Set("cover", path)
}

// ApplyMetadata writes the populated metadata fields into frontmatter. Genre
// tags merge with existing tags: the union is deduplicated, sorted, and
// written back as the full tag list.
func (n *Note) ApplyMetadata(meta Metadata) {
	if meta.Runtime != nil {
		n.frontmatter.Set("runtime", *meta.Runtime)
	}
	if meta.TotalEpisodes != nil {
		n.frontmatter.Set("total_episodes", *meta.TotalEpisodes)
	}
	if len(meta.GenreTags) > 0 {
		n.frontmatter.Set("tags", mergeTags(n.frontmatter.GetStringSlice("tags"), meta.GenreTags))
	}
	if meta.TMDBID != nil {
		n.frontmatter.Set("tmdb_id", *meta.TMDBID)
	}
	if meta.TMDBType != nil {
		n.frontmatter.Set("tmdb_type", *meta.TMDBType)
	}
}

func mergeTags(existing, added []string) []string {
	set := make(map[string]struct{}, len(existing)+len(added))
	for _, tag := range existing {
		set[tag] = struct{}{}
	}
	for _, tag := range added {
		set[tag] = struct{}{}
	}
	merged := make([]string, 0, len(set))
	for tag := range set {
		merged = append(merged, tag)
	}
	sort.Strings(merged)
	return merged
}

// Save serializes frontmatter and body back to disk.
func (n *Note) Save() error {
	var builder strings.Builder
	builder.WriteString(frontmatterDelimiter)
	builder.WriteString("\n")

	if n.frontmatter.Len() > 0 {
		data, err := n.frontmatter.marshal()
		if err != nil {
			return fmt.Errorf("save note: marshal frontmatter: %w", err)
		}
		builder.Write(data)
		if !strings.HasSuffix(builder.String(), "\n") {
			builder.WriteString("\n")
		}
	}

	builder.WriteString(frontmatterDelimiter)
	builder.WriteString("\n")
	builder.WriteString(strings.TrimLeft(n.body, "\n"))
	if !strings.HasSuffix(builder.String(), "\n") {
		builder.WriteString("\n")
	}

	if err := os.WriteFile(n.Path, []byte(builder.String()), 0o644); err != nil {
		return fmt.Errorf("save note: %w", err)
	}
	return nil
}
