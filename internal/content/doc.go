// Package content renders markdown blocks from TMDB details documents:
// an overview with tagline, a two-column info table, and a per-season
// breakdown for TV shows.
package content
