package content

import (
	"strings"
	"testing"
)

func movieDetails() map[string]any {
	return map[string]any{
		"overview":     "A thief plans one last heist.",
		"tagline":      "One last score.",
		"status":       "Released",
		"runtime":      float64(170),
		"release_date": "1995-12-15",
		"vote_average": float64(8.268),
		"vote_count":   float64(7345),
		"budget":       float64(60000000),
		"revenue":      float64(187436818),
		"origin_country": []any{"US"},
		"external_ids": map[string]any{"imdb_id": "tt0113277"},
		"homepage":     "https://www.example.com/heat",
	}
}

func tvDetails() map[string]any {
	return map[string]any{
		"overview":           "A chemistry teacher turns to crime.",
		"status":             "Ended",
		"in_production":      false,
		"number_of_seasons":  float64(5),
		"number_of_episodes": float64(62),
		"first_air_date":     "2008-01-20",
		"last_air_date":      "2013-09-29",
		"vote_average":       float64(8.9),
		"vote_count":         float64(12345),
		"networks":           []any{map[string]any{"name": "AMC"}},
		"origin_country":     []any{"US"},
		"external_ids":       map[string]any{"tvdb_id": float64(81189)},
		"content_ratings": map[string]any{
			"results": []any{
				map[string]any{"iso_3166_1": "DE", "rating": "16"},
				map[string]any{"iso_3166_1": "US", "rating": "TV-MA"},
			},
		},
		"seasons": []any{
			map[string]any{
				"name":          "Season 1",
				"air_date":      "2008-01-20",
				"episode_count": float64(7),
				"vote_average":  float64(8.3),
				"overview":      "It begins.",
				"poster_path":   "/s1.jpg",
			},
			map[string]any{
				"name":          "Season 2",
				"air_date":      "2009-03-08",
				"episode_count": float64(13),
				"vote_average":  float64(8.7),
			},
		},
	}
}

func TestBuildMovieDefaultSections(t *testing.T) {
	out := Build(movieDetails(), "movie", nil)

	if !strings.Contains(out, "## Overview\n\nA thief plans one last heist.") {
		t.Errorf("overview missing:\n%s", out)
	}
	if !strings.Contains(out, "> _\"One last score.\"_") {
		t.Errorf("tagline missing:\n%s", out)
	}
	if !strings.Contains(out, "## Movie Info") {
		t.Errorf("info header missing:\n%s", out)
	}
	if !strings.Contains(out, "| **Runtime** | 170 min |") {
		t.Errorf("runtime row missing:\n%s", out)
	}
	if !strings.Contains(out, "| **Rating** | ⭐ 8.3/10 (7,345 votes) |") {
		t.Errorf("rating row missing:\n%s", out)
	}
	if !strings.Contains(out, "| **Budget** | $60,000,000 |") {
		t.Errorf("budget row missing:\n%s", out)
	}
	if !strings.Contains(out, "| **Origin** | 🇺🇸 US |") {
		t.Errorf("origin row missing:\n%s", out)
	}
	if !strings.Contains(out, "[imdb.com/title/tt0113277](https://www.imdb.com/title/tt0113277/)") {
		t.Errorf("imdb row missing:\n%s", out)
	}
	if !strings.Contains(out, "| **Homepage** | [Official Website](https://www.example.com/heat) |") {
		t.Errorf("homepage row missing:\n%s", out)
	}
	if strings.Contains(out, "## Seasons") {
		t.Errorf("movie should not render seasons:\n%s", out)
	}
}

func TestBuildTVDefaultSections(t *testing.T) {
	out := Build(tvDetails(), "tv", nil)

	if !strings.Contains(out, "## Series Info") {
		t.Errorf("info header missing:\n%s", out)
	}
	if !strings.Contains(out, "| **Status** | Ended |") {
		t.Errorf("status row missing:\n%s", out)
	}
	if !strings.Contains(out, "| **Seasons** | 5 (62 episodes) |") {
		t.Errorf("seasons row missing:\n%s", out)
	}
	if !strings.Contains(out, "| **Aired** | 2008-01-20 → 2013-09-29 |") {
		t.Errorf("aired row missing:\n%s", out)
	}
	if !strings.Contains(out, "| **Network** | AMC |") {
		t.Errorf("network row missing:\n%s", out)
	}
	if !strings.Contains(out, "| **Content Rating** | TV-MA |") {
		t.Errorf("content rating row missing:\n%s", out)
	}
	if !strings.Contains(out, "[thetvdb.com/81189](https://thetvdb.com/series/81189)") {
		t.Errorf("tvdb row missing:\n%s", out)
	}
	if !strings.Contains(out, "### Season 1 (2008) • ⭐ 8.3/10") {
		t.Errorf("season heading missing:\n%s", out)
	}
	if !strings.Contains(out, "![Season 1](https://image.tmdb.org/t/p/w300/s1.jpg)") {
		t.Errorf("season poster missing:\n%s", out)
	}
	if !strings.Contains(out, "_It begins._") {
		t.Errorf("season overview missing:\n%s", out)
	}
	if strings.Contains(out, "Currently Airing") {
		t.Errorf("ended show should have no airing season:\n%s", out)
	}
	if strings.Count(out, "**Status:** ✅ Complete") != 2 {
		t.Errorf("both seasons should be complete:\n%s", out)
	}
}

func TestBuildInProductionMarksOnlyLastSeasonAiring(t *testing.T) {
	details := tvDetails()
	details["in_production"] = true
	delete(details, "last_air_date")

	out := Build(details, "tv", []string{SectionInfo, SectionSeasons})

	if !strings.Contains(out, "| **Status** | Ended (In Production) |") {
		t.Errorf("in production status missing:\n%s", out)
	}
	if !strings.Contains(out, "| **Aired** | 2008-01-20 → Present |") {
		t.Errorf("present aired row missing:\n%s", out)
	}
	if strings.Count(out, "Currently Airing") != 1 {
		t.Errorf("exactly one airing season expected:\n%s", out)
	}
	s1 := strings.Index(out, "### Season 1")
	s2 := strings.Index(out, "### Season 2")
	airing := strings.Index(out, "Currently Airing")
	if airing < s2 || s2 < s1 {
		t.Errorf("airing marker should follow the last season:\n%s", out)
	}
}

func TestBuildSeasonsSortsShuffledPayload(t *testing.T) {
	details := tvDetails()
	details["in_production"] = true
	details["seasons"] = []any{
		map[string]any{"name": "Season 3", "season_number": float64(3), "air_date": "2010-07-25", "episode_count": float64(13)},
		map[string]any{"name": "Season 1", "season_number": float64(1), "air_date": "2008-01-20", "episode_count": float64(7)},
		map[string]any{"name": "Season 2", "season_number": float64(2), "air_date": "2009-03-08", "episode_count": float64(13)},
	}

	out := Build(details, "tv", []string{SectionSeasons})

	s1 := strings.Index(out, "### Season 1")
	s2 := strings.Index(out, "### Season 2")
	s3 := strings.Index(out, "### Season 3")
	if s1 == -1 || s2 == -1 || s3 == -1 || s2 < s1 || s3 < s2 {
		t.Fatalf("seasons out of order (%d, %d, %d):\n%s", s1, s2, s3, out)
	}
	if airing := strings.Index(out, "Currently Airing"); airing < s3 {
		t.Fatalf("airing marker should follow the last sorted season:\n%s", out)
	}
	if strings.Count(out, "Currently Airing") != 1 {
		t.Fatalf("exactly one airing season expected:\n%s", out)
	}
}

func TestBuildSectionSelection(t *testing.T) {
	out := Build(movieDetails(), "movie", []string{SectionOverview})
	if strings.Contains(out, "## Movie Info") {
		t.Errorf("info should be excluded:\n%s", out)
	}
	if !strings.Contains(out, "## Overview") {
		t.Errorf("overview missing:\n%s", out)
	}

	out = Build(movieDetails(), "movie", []string{SectionSeasons})
	if out != "" {
		t.Errorf("seasons for a movie should render nothing, got:\n%s", out)
	}
}

func TestBuildOverviewSkippedWhenEmpty(t *testing.T) {
	details := movieDetails()
	details["overview"] = "   "
	out := Build(details, "movie", []string{SectionOverview})
	if out != "" {
		t.Errorf("blank overview should render nothing, got:\n%s", out)
	}
}

func TestHomepageLabels(t *testing.T) {
	cases := []struct {
		url  string
		want string
	}{
		{"https://tv.apple.com/show/x", "Apple TV+"},
		{"https://www.netflix.com/title/1", "Netflix"},
		{"https://www.hulu.com/series/x", "Hulu"},
		{"https://www.disneyplus.com/series/x", "Disney+"},
		{"https://www.primevideo.com/detail/x", "Prime Video"},
		{"https://www.amazon.com/dp/x", "Prime Video"},
		{"https://www.hbo.com/show", "Max"},
		{"https://www.max.com/show", "Max"},
		{"https://example.org", "Official Website"},
	}
	for _, tc := range cases {
		if got := homepageLabel(tc.url); got != tc.want {
			t.Errorf("homepageLabel(%q) = %q, want %q", tc.url, got, tc.want)
		}
	}
}

func TestCountryFlag(t *testing.T) {
	cases := []struct {
		code string
		want string
	}{
		{"US", "🇺🇸"},
		{"gb", "🇬🇧"},
		{"JP", "🇯🇵"},
		{"ZZZ", "🌍"},
		{"", "🌍"},
	}
	for _, tc := range cases {
		if got := countryFlag(tc.code); got != tc.want {
			t.Errorf("countryFlag(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestGroupDigits(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{187436818, "187,436,818"},
	}
	for _, tc := range cases {
		if got := groupDigits(tc.in); got != tc.want {
			t.Errorf("groupDigits(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
