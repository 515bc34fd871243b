package note

import (
	"strings"
	"testing"
)

func TestSetGeneratedContentAppendsRegion(t *testing.T) {
	n := loadNote(t, "X.md", "---\ntitle: X\n---\nMy own notes.\n")
	if err := n.SetGeneratedContent("## Overview\n\nText."); err != nil {
		t.Fatalf("SetGeneratedContent: %v", err)
	}

	body := n.Body()
	if !strings.Contains(body, "My own notes.") {
		t.Fatalf("user text lost: %q", body)
	}
	startIdx := strings.Index(body, startMarker)
	endIdx := strings.Index(body, endMarker)
	if startIdx == -1 || endIdx == -1 || endIdx < startIdx {
		t.Fatalf("markers missing or inverted: %q", body)
	}
	if !strings.Contains(body[startIdx:endIdx], "## Overview") {
		t.Fatalf("content not inside region: %q", body)
	}
}

func TestSetGeneratedContentReplacesExistingRegion(t *testing.T) {
	original := "---\ntitle: X\n---\nBefore text.\n\n" +
		startMarker + "\nold content\n" + endMarker + "\nAfter text.\n"
	n := loadNote(t, "X.md", original)
	if err := n.SetGeneratedContent("new content"); err != nil {
		t.Fatalf("SetGeneratedContent: %v", err)
	}

	body := n.Body()
	if strings.Contains(body, "old content") {
		t.Fatalf("old content survived: %q", body)
	}
	if !strings.Contains(body, "new content") {
		t.Fatalf("new content missing: %q", body)
	}
	if !strings.Contains(body, "Before text.") || !strings.Contains(body, "After text.") {
		t.Fatalf("surrounding text lost: %q", body)
	}
	if strings.Count(body, startMarker) != 1 || strings.Count(body, endMarker) != 1 {
		t.Fatalf("marker count wrong: %q", body)
	}
}

func TestSetGeneratedContentIdempotent(t *testing.T) {
	original := "---\ntitle: X\n---\nBefore text.\n\n" +
		startMarker + "\nold content\n" + endMarker + "\nAfter text.\n"
	n := loadNote(t, "X.md", original)
	content := "## Overview\n\nSame text."

	if err := n.SetGeneratedContent(content); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	first := n.Body()
	if err := n.SetGeneratedContent(content); err != nil {
		t.Fatalf("second apply: %v", err)
	}
	if n.Body() != first {
		t.Fatalf("second apply changed body:\nfirst:  %q\nsecond: %q", first, n.Body())
	}
	if !strings.Contains(n.Body(), "Before text.") || !strings.Contains(n.Body(), "After text.") {
		t.Fatalf("text outside markers lost: %q", n.Body())
	}
}

func TestSetGeneratedContentRejectsEmpty(t *testing.T) {
	n := loadNote(t, "X.md", "Body.\n")
	if err := n.SetGeneratedContent("  \n "); err == nil {
		t.Fatal("expected error for empty content")
	}
}

func TestSetGeneratedContentOnEmptyBody(t *testing.T) {
	n := loadNote(t, "X.md", "---\ntitle: X\n---\n")
	if err := n.SetGeneratedContent("generated"); err != nil {
		t.Fatalf("SetGeneratedContent: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(n.Body()), startMarker) {
		t.Fatalf("region should lead empty body: %q", n.Body())
	}
}
