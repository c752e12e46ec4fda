package domain

import "time"

// RunStats holds statistics about one aggregation run.
type RunStats struct {
	Primary      int // eligible records extracted from the primary source
	Secondary    int // eligible records extracted from the secondary source
	Duplicates   int
	Emitted      int
	SourceErrors int
	Duration     time.Duration
}
