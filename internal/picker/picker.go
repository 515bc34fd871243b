// Package picker resolves ambiguous search matches. Interactive runs show a
// terminal list UI; non-interactive runs fall back to the top-ranked match.
package picker

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"reelnote/internal/services/tmdb"
)

// Action is the outcome of a candidate selection.
type Action int

const (
	// ActionNone means the selection ended without a decision.
	ActionNone Action = iota
	// ActionSelected means a candidate was chosen.
	ActionSelected
	// ActionSkipped means the current note should be skipped.
	ActionSkipped
	// ActionStopped means the whole run should stop.
	ActionStopped
)

// Result is the outcome of picking among search candidates.
type Result struct {
	Action    Action
	Selection *tmdb.SearchResult
}

// Picker chooses one candidate from a multi-result search.
type Picker interface {
	Pick(title string, results []tmdb.SearchResult) (Result, error)
}

// Interactive presents a bubbletea list UI for candidate selection.
type Interactive struct{}

// Pick runs the selection UI and blocks until the user decides.
func (Interactive) Pick(title string, results []tmdb.SearchResult) (Result, error) {
	m := newModel(title, results)
	program := tea.NewProgram(m)

	final, err := program.Run()
	if err != nil {
		return Result{}, fmt.Errorf("picker: %w", err)
	}
	typed, ok := final.(*model)
	if !ok {
		return Result{}, fmt.Errorf("picker: unexpected final model %T", final)
	}
	return typed.result, nil
}

// Auto selects the first candidate without prompting. Used when stdout is
// not a terminal.
type Auto struct{}

func (Auto) Pick(_ string, results []tmdb.SearchResult) (Result, error) {
	if len(results) == 0 {
		return Result{Action: ActionSkipped}, nil
	}
	first := results[0]
	return Result{Action: ActionSelected, Selection: &first}, nil
}
