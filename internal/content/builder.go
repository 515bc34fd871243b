package content

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const seasonPosterBaseURL = "https://image.tmdb.org/t/p/w300"

// Section names accepted by Build.
const (
	SectionOverview = "overview"
	SectionInfo     = "info"
	SectionSeasons  = "seasons"
)

// numberPrinter renders integers with thousands separators ("9,344").
var numberPrinter = message.NewPrinter(language.English)

// Build renders markdown blocks from a TMDB details document. With no
// explicit sections, movies get overview and info; TV shows additionally get
// the season list. Sections that have no source data render nothing.
func Build(details map[string]any, mediaType string, sections []string) string {
	if len(sections) == 0 {
		sections = []string{SectionOverview, SectionInfo}
		if mediaType == "tv" {
			sections = append(sections, SectionSeasons)
		}
	}

	var blocks []string
	for _, section := range sections {
		switch section {
		case SectionOverview:
			if block := buildOverview(details); block != "" {
				blocks = append(blocks, block)
			}
		case SectionInfo:
			if block := buildInfo(details, mediaType); block != "" {
				blocks = append(blocks, block)
			}
		case SectionSeasons:
			if mediaType != "tv" {
				continue
			}
			if block := buildSeasons(details); block != "" {
				blocks = append(blocks, block)
			}
		}
	}
	return strings.Join(blocks, "\n\n")
}

func buildOverview(details map[string]any) string {
	overview := strings.TrimSpace(stringVal(details, "overview"))
	if overview == "" {
		return ""
	}

	var builder strings.Builder
	builder.WriteString("## Overview\n\n")
	builder.WriteString(overview)
	builder.WriteString("\n")

	if tagline := strings.TrimSpace(stringVal(details, "tagline")); tagline != "" {
		builder.WriteString("\n> _\"")
		builder.WriteString(tagline)
		builder.WriteString("\"_\n")
	}
	return builder.String()
}

func buildInfo(details map[string]any, mediaType string) string {
	var builder strings.Builder
	if mediaType == "tv" {
		builder.WriteString("## Series Info\n\n")
	} else {
		builder.WriteString("## Movie Info\n\n")
	}
	builder.WriteString("| | |\n")
	builder.WriteString("|---|---|\n")

	status := stringVal(details, "status")
	if status == "" {
		status = "Unknown"
	}
	inProduction := boolVal(details, "in_production")
	if mediaType == "tv" && inProduction {
		fmt.Fprintf(&builder, "| **Status** | %s (In Production) |\n", status)
	} else {
		fmt.Fprintf(&builder, "| **Status** | %s |\n", status)
	}

	if mediaType == "tv" {
		seasons, _ := intVal(details, "number_of_seasons")
		episodes, _ := intVal(details, "number_of_episodes")
		fmt.Fprintf(&builder, "| **Seasons** | %d (%d episodes) |\n", seasons, episodes)

		firstAir := stringVal(details, "first_air_date")
		lastAir := stringVal(details, "last_air_date")
		if firstAir != "" {
			airText := firstAir
			switch {
			case lastAir != "" && lastAir != firstAir:
				airText = fmt.Sprintf("%s → %s", firstAir, lastAir)
			case inProduction:
				airText = fmt.Sprintf("%s → Present", firstAir)
			}
			fmt.Fprintf(&builder, "| **Aired** | %s |\n", airText)
		}
	} else {
		if runtime, ok := intVal(details, "runtime"); ok && runtime > 0 {
			fmt.Fprintf(&builder, "| **Runtime** | %d min |\n", runtime)
		}
		if release := stringVal(details, "release_date"); release != "" {
			fmt.Fprintf(&builder, "| **Released** | %s |\n", release)
		}
	}

	if rating, ok := floatVal(details, "vote_average"); ok && rating > 0 {
		votes, _ := intVal(details, "vote_count")
		fmt.Fprintf(&builder, "| **Rating** | ⭐ %.1f/10 (%s votes) |\n", rating, groupDigits(votes))
	}

	if mediaType == "tv" {
		if network := firstStringFromArray(details, "networks", "name"); network != "" {
			fmt.Fprintf(&builder, "| **Network** | %s |\n", network)
		}
	} else {
		if budget, ok := intVal(details, "budget"); ok && budget > 0 {
			fmt.Fprintf(&builder, "| **Budget** | $%s |\n", groupDigits(budget))
		}
		if revenue, ok := intVal(details, "revenue"); ok && revenue > 0 {
			fmt.Fprintf(&builder, "| **Revenue** | $%s |\n", groupDigits(revenue))
		}
	}

	if countries := stringSlice(details, "origin_country"); len(countries) > 0 {
		if len(countries) > 3 {
			countries = countries[:3]
		}
		parts := make([]string, 0, len(countries))
		for _, code := range countries {
			parts = append(parts, fmt.Sprintf("%s %s", countryFlag(code), strings.ToUpper(code)))
		}
		fmt.Fprintf(&builder, "| **Origin** | %s |\n", strings.Join(parts, " "))
	}

	if mediaType == "tv" {
		if rating := usContentRating(details); rating != "" {
			fmt.Fprintf(&builder, "| **Content Rating** | %s |\n", rating)
		}
	}

	if imdb := nestedString(details, "external_ids", "imdb_id"); imdb != "" {
		fmt.Fprintf(&builder, "| **IMDB** | [imdb.com/title/%s](https://www.imdb.com/title/%s/) |\n", imdb, imdb)
	}
	if tvdb := nestedString(details, "external_ids", "tvdb_id"); tvdb != "" {
		fmt.Fprintf(&builder, "| **TVDB** | [thetvdb.com/%s](https://thetvdb.com/series/%s) |\n", tvdb, tvdb)
	}
	if homepage := stringVal(details, "homepage"); homepage != "" {
		fmt.Fprintf(&builder, "| **Homepage** | [%s](%s) |\n", homepageLabel(homepage), homepage)
	}

	return strings.TrimRight(builder.String(), "\n")
}

// buildSeasons lists every season in ascending season order, whatever order
// the payload arrives in. Only the newest season of an in-production show
// reads "Currently Airing"; everything else is complete.
func buildSeasons(details map[string]any) string {
	raw, ok := details["seasons"].([]any)
	if !ok || len(raw) == 0 {
		return ""
	}
	inProduction := boolVal(details, "in_production")

	seasons := make([]map[string]any, 0, len(raw))
	for _, entry := range raw {
		if season, ok := entry.(map[string]any); ok {
			seasons = append(seasons, season)
		}
	}
	if len(seasons) == 0 {
		return ""
	}
	sort.SliceStable(seasons, func(i, j int) bool {
		ni, iok := intVal(seasons[i], "season_number")
		nj, jok := intVal(seasons[j], "season_number")
		if iok && jok && ni != nj {
			return ni < nj
		}
		return stringVal(seasons[i], "air_date") < stringVal(seasons[j], "air_date")
	})

	var builder strings.Builder
	builder.WriteString("## Seasons\n\n")

	for idx, season := range seasons {
		name := stringVal(season, "name")
		if name == "" {
			if num, ok := intVal(season, "season_number"); ok {
				name = fmt.Sprintf("Season %d", num)
			} else {
				name = "Season"
			}
		}

		year := "TBA"
		if airDate := stringVal(season, "air_date"); len(airDate) >= 4 {
			year = airDate[:4]
		}

		fmt.Fprintf(&builder, "### %s (%s)", name, year)
		if vote, _ := floatVal(season, "vote_average"); vote > 0 {
			fmt.Fprintf(&builder, " • ⭐ %.1f/10", vote)
		}
		builder.WriteString("\n\n")

		if poster := stringVal(season, "poster_path"); poster != "" {
			fmt.Fprintf(&builder, "![%s](%s%s)\n\n", name, seasonPosterBaseURL, poster)
		}
		if overview := strings.TrimSpace(stringVal(season, "overview")); overview != "" {
			fmt.Fprintf(&builder, "_%s_\n\n", overview)
		}

		episodeCount, _ := intVal(season, "episode_count")
		fmt.Fprintf(&builder, "**Episodes:** %d", episodeCount)
		if idx == len(seasons)-1 && inProduction {
			builder.WriteString(" • **Status:** Currently Airing\n\n")
		} else {
			builder.WriteString(" • **Status:** ✅ Complete\n\n")
		}
		builder.WriteString("---\n\n")
	}

	out := strings.TrimRight(builder.String(), "\n")
	return out + "\n"
}

func groupDigits(value int) string {
	return numberPrinter.Sprintf("%d", value)
}

// homepageLabel maps well-known streaming hosts to their brand names.
func homepageLabel(url string) string {
	switch {
	case strings.Contains(url, "apple.com"):
		return "Apple TV+"
	case strings.Contains(url, "netflix.com"):
		return "Netflix"
	case strings.Contains(url, "hulu.com"):
		return "Hulu"
	case strings.Contains(url, "disneyplus.com"):
		return "Disney+"
	case strings.Contains(url, "primevideo.com"), strings.Contains(url, "amazon.com"):
		return "Prime Video"
	case strings.Contains(url, "hbo.com"), strings.Contains(url, "max.com"):
		return "Max"
	default:
		return "Official Website"
	}
}

// countryFlag builds the flag emoji for an ISO 3166-1 alpha-2 code from
// regional indicator symbols. Codes that are not two ASCII letters fall back
// to the globe.
func countryFlag(code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 2 || code[0] < 'A' || code[0] > 'Z' || code[1] < 'A' || code[1] > 'Z' {
		return "🌍"
	}
	const base = 0x1F1E6
	return string([]rune{
		rune(base + int(code[0]-'A')),
		rune(base + int(code[1]-'A')),
	})
}
