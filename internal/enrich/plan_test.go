package enrich

import (
	"os"
	"path/filepath"
	"testing"

	"reelnote/internal/note"
)

func loadNote(t *testing.T, content string) *note.Note {
	t.Helper()
	path := filepath.Join(t.TempDir(), "Note.md")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	n, err := note.Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	return n
}

const completeNote = `---
cover: attachments/X - cover.jpg
runtime: 120
tags:
  - movie/Action
tmdb_id: 603
tmdb_type: movie
---
`

func TestDetectNeedsCompleteNote(t *testing.T) {
	needs := DetectNeeds(loadNote(t, completeNote))
	if needs.Any() {
		t.Fatalf("needs = %+v, want none", needs)
	}
}

func TestDetectNeedsEmptyNote(t *testing.T) {
	needs := DetectNeeds(loadNote(t, "---\ntitle: X\n---\n"))
	if !needs.Cover || !needs.Metadata || !needs.LookupID {
		t.Fatalf("needs = %+v, want all", needs)
	}
}

func TestBuildPlanSkipsCompleteNote(t *testing.T) {
	n := loadNote(t, completeNote)
	plan := BuildPlan(n, DetectNeeds(n), false, false)
	if plan.Kind != PlanNoFetch {
		t.Fatalf("kind = %v, want no fetch", plan.Kind)
	}
}

func TestBuildPlanForceFetchesCompleteNote(t *testing.T) {
	n := loadNote(t, completeNote)
	plan := BuildPlan(n, DetectNeeds(n), true, false)
	if plan.Kind != PlanSearchByTitle {
		t.Fatalf("kind = %v, want search (force discards stored identity)", plan.Kind)
	}
}

func TestBuildPlanContentOnlyUsesStoredID(t *testing.T) {
	n := loadNote(t, completeNote)
	plan := BuildPlan(n, DetectNeeds(n), false, true)
	if plan.Kind != PlanDirectByID {
		t.Fatalf("kind = %v, want direct", plan.Kind)
	}
	if plan.ID != 603 || plan.MediaType != "movie" {
		t.Fatalf("plan = %+v", plan)
	}
}

func TestBuildPlanStoredIDShortCircuitsSearch(t *testing.T) {
	n := loadNote(t, "---\ntmdb_id: 1396\ntmdb_type: tv\n---\n")
	plan := BuildPlan(n, DetectNeeds(n), false, false)
	if plan.Kind != PlanDirectByID || plan.ID != 1396 || plan.MediaType != "tv" {
		t.Fatalf("plan = %+v", plan)
	}
}

func TestBuildPlanSearchWithoutIdentity(t *testing.T) {
	n := loadNote(t, "---\ntitle: X\n---\n")
	plan := BuildPlan(n, DetectNeeds(n), false, false)
	if plan.Kind != PlanSearchByTitle {
		t.Fatalf("kind = %v, want search", plan.Kind)
	}
}
