package enrich

// Status classifies the outcome for one note.
type Status int

const (
	StatusProcessed Status = iota
	StatusSkipped
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusProcessed:
		return "processed"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// NoteResult is the per-note outcome shown in the run summary.
type NoteResult struct {
	Path   string
	Title  string
	Status Status
	Detail string
}

// Report tallies a run.
type Report struct {
	Results   []NoteResult
	Processed int
	Skipped   int
	Failed    int
	Stopped   bool
}

func (r *Report) add(result NoteResult) {
	r.Results = append(r.Results, result)
	switch result.Status {
	case StatusProcessed:
		r.Processed++
	case StatusSkipped:
		r.Skipped++
	case StatusFailed:
		r.Failed++
	}
}
