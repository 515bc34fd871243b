// Package note parses and rewrites Obsidian markdown notes. A note splits
// into YAML frontmatter and a markdown body; frontmatter keeps its document
// order across edits, and a marker-delimited region of the body holds
// generated content so user-written text survives regeneration.
package note
