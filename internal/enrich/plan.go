package enrich

import "reelnote/internal/note"

// Needs captures what a note is missing.
type Needs struct {
	Cover    bool
	Metadata bool
	LookupID bool
}

// Any reports whether the note is missing anything.
func (n Needs) Any() bool {
	return n.Cover || n.Metadata || n.LookupID
}

// DetectNeeds inspects a note's frontmatter.
func DetectNeeds(n *note.Note) Needs {
	return Needs{
		Cover:    n.NeedsCover(),
		Metadata: n.NeedsMetadata(),
		LookupID: n.NeedsLookupID(),
	}
}

// PlanKind names the fetch strategy for a note.
type PlanKind int

const (
	// PlanNoFetch means the note is complete and gets skipped.
	PlanNoFetch PlanKind = iota
	// PlanDirectByID means the stored identifier resolves the title directly.
	PlanDirectByID
	// PlanSearchByTitle means a title search with disambiguation is required.
	PlanSearchByTitle
)

// Plan is the cheapest acquisition path for one note.
type Plan struct {
	Kind      PlanKind
	ID        int
	MediaType string
}

// BuildPlan decides how to acquire data for a note. A complete note plans no
// fetch unless force or content generation demands one. A stored identifier
// short-circuits the search unless force discards it.
func BuildPlan(n *note.Note, needs Needs, force, generateContent bool) Plan {
	if !needs.Any() && !force && !generateContent {
		return Plan{Kind: PlanNoFetch}
	}

	id, hasID := n.TMDBID()
	mediaType, hasType := n.TMDBType()
	if hasID && hasType && !force {
		return Plan{Kind: PlanDirectByID, ID: id, MediaType: mediaType}
	}
	return Plan{Kind: PlanSearchByTitle}
}
