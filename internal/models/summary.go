package models

import "time"

// Outcome is what happened to a single record during a run.
type Outcome string

const (
	// OutcomeApplied means the action ran to completion.
	OutcomeApplied Outcome = "applied"
	// OutcomeFiltered means the name filter excluded the record.
	OutcomeFiltered Outcome = "filtered"
	// OutcomeMissing means a declared file was absent, so the action was skipped.
	OutcomeMissing Outcome = "missing"
	// OutcomeSkipped means the action declined to run (archive exists, nothing to archive).
	OutcomeSkipped Outcome = "skipped"
	// OutcomeFailed means the action reported an error.
	OutcomeFailed Outcome = "failed"
)

// RecordResult captures the outcome of one record.
type RecordResult struct {
	Name    string
	Outcome Outcome
	Missing []string // missing paths when Outcome is OutcomeMissing
	Err     error    // action error when Outcome is OutcomeSkipped or OutcomeFailed
}

// RunSummary aggregates the outcomes of one operation over a config file.
type RunSummary struct {
	Operation string
	Config    string
	Total     int
	Applied   int
	Filtered  int
	Missing   int
	Skipped   int
	Failed    int
	Results   []RecordResult
	Duration  time.Duration
}

// Add records one result and updates the counters.
func (s *RunSummary) Add(r RecordResult) {
	s.Total++
	switch r.Outcome {
	case OutcomeApplied:
		s.Applied++
	case OutcomeFiltered:
		s.Filtered++
	case OutcomeMissing:
		s.Missing++
	case OutcomeSkipped:
		s.Skipped++
	case OutcomeFailed:
		s.Failed++
	}
	s.Results = append(s.Results, r)
}

// Clean returns true if no selected record was missing files or failed.
// Skipped records do not count against a run.
func (s *RunSummary) Clean() bool {
	return s.Missing == 0 && s.Failed == 0
}

// NamesWith returns the record names that ended with the given outcome, in order.
func (s *RunSummary) NamesWith(o Outcome) []string {
	var names []string
	for _, r := range s.Results {
		if r.Outcome == o {
			names = append(names, r.Name)
		}
	}
	return names
}
