// Command reelnote enriches Obsidian movie and TV notes with TMDB cover
// art, frontmatter metadata, and generated body content.
package main
