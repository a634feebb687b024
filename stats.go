package docscrape

import (
	"time"

	"github.com/google/uuid"
)

// RunStats tracks per-run scrape counters. It is owned exclusively by the
// driver; sections are processed sequentially so no synchronization is
// needed. After processing completes, SuccessfulScrapes+FailedScrapes
// always equals TotalSections.
type RunStats struct {
	RunID             string
	TotalSections     int
	SuccessfulScrapes int
	FailedScrapes     int
	StartTime         time.Time
}

// NewRunStats creates run statistics for a run over total sections.
func NewRunStats(total int, start time.Time) *RunStats {
	return &RunStats{
		RunID:         uuid.NewString(),
		TotalSections: total,
		StartTime:     start,
	}
}

// RecordSuccess counts one section as successfully scraped.
func (s *RunStats) RecordSuccess() { s.SuccessfulScrapes++ }

// RecordFailure counts one section as failed.
func (s *RunStats) RecordFailure() { s.FailedScrapes++ }

// SuccessRate returns the fraction of sections scraped successfully.
func (s *RunStats) SuccessRate() float64 {
	if s.TotalSections == 0 {
		return 0
	}
	return float64(s.SuccessfulScrapes) / float64(s.TotalSections)
}

// Duration returns the wall-clock duration of the run as of end.
func (s *RunStats) Duration(end time.Time) time.Duration {
	return end.Sub(s.StartTime)
}
