// Package tmdb implements the TMDB v3 API client used for note enrichment:
// multi-search, movie and TV details, genre resolution, and poster image
// download.
package tmdb
