package tmdb

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"reelnote/internal/logging"
	"reelnote/internal/textutil"
)

// Metadata holds the frontmatter-bound fields extracted from a details
// payload.
type Metadata struct {
	TMDBID        int
	TMDBType      string
	Runtime       *int
	TotalEpisodes *int
	GenreTags     []string
}

// Metadata extracts metadata from an already fetched details payload so a
// single details request serves cover, metadata, and content generation.
// Genre IDs resolve through the per-type genre list, fetched once per run.
func (c *Client) Metadata(ctx context.Context, mediaType string, id int, details Details) (*Metadata, error) {
	if mediaType != "movie" && mediaType != "tv" {
		return nil, ErrInvalidMediaType
	}

	meta := &Metadata{TMDBID: id, TMDBType: mediaType}

	// TMDB reports unknown runtimes and counts as zero; zero never reaches
	// the note.
	switch mediaType {
	case "movie":
		if runtime, ok := detailInt(details, "runtime"); ok && runtime > 0 {
			meta.Runtime = &runtime
		}
	case "tv":
		if runtime, ok := episodeRuntime(details); ok && runtime > 0 {
			meta.Runtime = &runtime
		}
		if episodes, ok := detailInt(details, "number_of_episodes"); ok && episodes > 0 {
			meta.TotalEpisodes = &episodes
		}
	}

	// runtime and identifiers are still written when the genre list fetch fails
	tags, err := c.genreTags(ctx, mediaType, details)
	if err != nil {
		c.logger.Warn("genre lookup failed",
			logging.String("media_type", mediaType),
			logging.Error(err))
	} else {
		meta.GenreTags = tags
	}

	return meta, nil
}

// genreTags converts the genre entries of a details payload into
// "<mediaType>/<sanitized name>" tags. Entries arriving as bare IDs resolve
// through the genre list; entries with names use them directly.
func (c *Client) genreTags(ctx context.Context, mediaType string, details Details) ([]string, error) {
	rawGenres, ok := details["genres"].([]any)
	if !ok || len(rawGenres) == 0 {
		return nil, nil
	}

	var genres map[int]string
	tags := make([]string, 0, len(rawGenres))
	for _, raw := range rawGenres {
		entry, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		name, _ := entry["name"].(string)
		if name == "" {
			id, ok := detailInt(entry, "id")
			if !ok {
				continue
			}
			if genres == nil {
				var err error
				genres, err = c.genreList(ctx, mediaType)
				if err != nil {
					return nil, err
				}
			}
			name, ok = genres[id]
			if !ok {
				continue
			}
		}
		tags = append(tags, fmt.Sprintf("%s/%s", mediaType, textutil.SanitizeGenre(name)))
	}
	return tags, nil
}

// genreList returns the id-to-name genre mapping for a media type, cached
// for the lifetime of the client.
func (c *Client) genreList(ctx context.Context, mediaType string) (map[int]string, error) {
	c.mu.RLock()
	if genres, ok := c.genreCache[mediaType]; ok {
		c.mu.RUnlock()
		return genres, nil
	}
	c.mu.RUnlock()

	var response struct {
		Genres []struct {
			ID   int    `json:"id"`
			Name string `json:"name"`
		} `json:"genres"`
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/genre/%s/list", mediaType), url.Values{}, &response); err != nil {
		return nil, err
	}

	genres := make(map[int]string, len(response.Genres))
	for _, g := range response.Genres {
		genres[g.ID] = g.Name
	}

	c.mu.Lock()
	c.genreCache[mediaType] = genres
	c.mu.Unlock()
	return genres, nil
}

func detailInt(m map[string]any, key string) (int, bool) {
	value, ok := m[key]
	if !ok {
		return 0, false
	}
	switch v := value.(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		i, err := strconv.Atoi(v)
		if err != nil {
			return 0, false
		}
		return i, true
	default:
		return 0, false
	}
}

// episodeRuntime picks the first entry of the episode_run_time list.
func episodeRuntime(details Details) (int, bool) {
	value, ok := details["episode_run_time"]
	if !ok {
		return 0, false
	}
	list, ok := value.([]any)
	if !ok || len(list) == 0 {
		return 0, false
	}
	switch first := list[0].(type) {
	case float64:
		return int(first), true
	case int:
		return first, true
	default:
		return 0, false
	}
}
