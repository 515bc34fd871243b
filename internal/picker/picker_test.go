package picker

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"reelnote/internal/services/tmdb"
)

func sampleResults() []tmdb.SearchResult {
	return []tmdb.SearchResult{
		{ID: 1, MediaType: "movie", Title: "Heat", ReleaseDate: "1995-12-15", PosterPath: "/a.jpg"},
		{ID: 2, MediaType: "tv", Name: "Heat of the Night", FirstAirDate: "1988-03-06", PosterPath: "/b.jpg"},
	}
}

func pressKey(m *model, key string) *model {
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		msg = tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	return updated.(*model)
}

func TestModelEnterSelectsCurrentItem(t *testing.T) {
	m := pressKey(newModel("Heat", sampleResults()), "enter")
	if m.result.Action != ActionSelected {
		t.Fatalf("action = %v, want selected", m.result.Action)
	}
	if m.result.Selection == nil || m.result.Selection.ID != 1 {
		t.Fatalf("selection = %+v", m.result.Selection)
	}
}

func TestModelSkipKeys(t *testing.T) {
	for _, key := range []string{"s", "esc"} {
		m := pressKey(newModel("Heat", sampleResults()), key)
		if m.result.Action != ActionSkipped {
			t.Fatalf("key %q: action = %v, want skipped", key, m.result.Action)
		}
	}
}

func TestModelStopKeys(t *testing.T) {
	for _, key := range []string{"q", "ctrl+c"} {
		m := pressKey(newModel("Heat", sampleResults()), key)
		if m.result.Action != ActionStopped {
			t.Fatalf("key %q: action = %v, want stopped", key, m.result.Action)
		}
	}
}

func TestModelNavigationChangesSelection(t *testing.T) {
	m := newModel("Heat", sampleResults())
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = pressKey(updated.(*model), "enter")
	if m.result.Selection == nil || m.result.Selection.ID != 2 {
		t.Fatalf("selection = %+v, want second item", m.result.Selection)
	}
}

func TestAutoPicksFirst(t *testing.T) {
	result, err := Auto{}.Pick("Heat", sampleResults())
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if result.Action != ActionSelected || result.Selection == nil || result.Selection.ID != 1 {
		t.Fatalf("result = %+v", result)
	}
}

func TestAutoSkipsWhenEmpty(t *testing.T) {
	result, err := Auto{}.Pick("Heat", nil)
	if err != nil {
		t.Fatalf("Pick: %v", err)
	}
	if result.Action != ActionSkipped {
		t.Fatalf("action = %v, want skipped", result.Action)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("a  long   overview here", 10); got != "a long ..." {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate = %q", got)
	}
}
