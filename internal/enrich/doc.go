// Package enrich orchestrates a run: detect what each note is missing, plan
// the cheapest acquisition path, fetch once, and merge covers, metadata, and
// generated content back into the note.
package enrich
