package types

import "fmt"

// Counts tallies outcomes for one target kind.
type Counts struct {
	Removed  int
	NotFound int
	Failed   int
}

// Total returns the number of targets attempted for this kind.
func (c Counts) Total() int {
	return c.Removed + c.NotFound + c.Failed
}

// RunSummary aggregates per-kind outcome counts for a whole run.
type RunSummary map[TargetKind]Counts

// RunReport is the orchestrator's return value: every per-target result
// in pipeline order, plus non-fatal warnings (a profile with no hive
// file, a package inventory that could not be enumerated).
type RunReport struct {
	Results  []TargetResult
	Warnings []string
}

// Add appends a result to the report.
func (r *RunReport) Add(res TargetResult) {
	r.Results = append(r.Results, res)
}

// Warnf records a non-fatal warning.
func (r *RunReport) Warnf(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// Summary rolls the per-target results up into counts by kind.
func (r *RunReport) Summary() RunSummary {
	s := make(RunSummary)
	for _, res := range r.Results {
		c := s[res.Kind]
		switch res.Outcome.Status {
		case StatusRemoved:
			c.Removed++
		case StatusNotFound:
			c.NotFound++
		case StatusFailed:
			c.Failed++
		}
		s[res.Kind] = c
	}
	return s
}

// FailedCount returns the number of failed targets across all kinds.
func (r *RunReport) FailedCount() int {
	n := 0
	for _, res := range r.Results {
		if res.Outcome.Status == StatusFailed {
			n++
		}
	}
	return n
}
