package textutil

import "strings"

// fileNameReplacer substitutes filesystem-unsafe characters with underscores.
var fileNameReplacer = strings.NewReplacer(
	"<", "_",
	">", "_",
	":", "_",
	"\"", "_",
	"/", "_",
	"\\", "_",
	"|", "_",
	"?", "_",
	"*", "_",
)

// maxFileNameLen caps generated attachment names well below common
// filesystem limits while leaving room for directory prefixes.
const maxFileNameLen = 200

// SanitizeFileName replaces filesystem-unsafe characters in a filename with
// underscores and trims leading/trailing dots and spaces. Names longer than
// 200 bytes are truncated.
func SanitizeFileName(name string) string {
	name = fileNameReplacer.Replace(name)
	name = strings.Trim(name, ". ")
	if len(name) > maxFileNameLen {
		name = name[:maxFileNameLen]
	}
	return name
}

// genreReplacer rewrites genre names into characters Obsidian accepts in
// tags. Ampersands become the word "and"; hash marks would start a new tag
// and are dropped outright.
var genreReplacer = strings.NewReplacer(
	"&", "and",
	"#", "",
	"/", "-",
	" ", "-",
)

// SanitizeGenre converts a TMDB genre name into a tag-safe fragment.
func SanitizeGenre(name string) string {
	name = strings.TrimSpace(name)
	return strings.Trim(genreReplacer.Replace(name), "-")
}
