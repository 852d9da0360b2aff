package scaffold

import (
	"fmt"
	"strings"
)

// Report is the ordered sequence of outcomes from one run.
type Report struct {
	Outcomes []FileOutcome
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{Outcomes: make([]FileOutcome, 0)}
}

// Add appends an outcome.
func (r *Report) Add(o FileOutcome) {
	r.Outcomes = append(r.Outcomes, o)
}

// Failed returns the failed outcomes in order.
func (r *Report) Failed() []FileOutcome {
	var failed []FileOutcome
	for _, o := range r.Outcomes {
		if o.Action == ActionFailed {
			failed = append(failed, o)
		}
	}
	return failed
}

// HasFailures reports whether any entry failed.
func (r *Report) HasFailures() bool {
	for _, o := range r.Outcomes {
		if o.Action == ActionFailed {
			return true
		}
	}
	return false
}

// Count returns the number of outcomes with the given action.
func (r *Report) Count(action Action) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.Action == action {
			n++
		}
	}
	return n
}

// Summary returns a short human-readable count line, e.g.
// "21 created, 3 skipped, 1 failed".
func (r *Report) Summary() string {
	if len(r.Outcomes) == 0 {
		return "No changes"
	}

	parts := make([]string, 0, 5)
	for _, action := range []Action{
		ActionCreated,
		ActionOverwritten,
		ActionSkipped,
		ActionDeleted,
		ActionFailed,
	} {
		if n := r.Count(action); n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, action))
		}
	}

	return strings.Join(parts, ", ")
}
