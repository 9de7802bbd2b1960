package importer

// Progress is a snapshot of how far a reconciliation traversal has come.
// Values are pure counters; the reporter performs no I/O itself.
type Progress struct {
	TotalLists       int    `json:"total_lists"`
	ProcessedLists   int    `json:"processed_lists"`
	TotalItems       int    `json:"total_items"`
	ProcessedItems   int    `json:"processed_items"`
	CurrentOperation string `json:"current_operation"`
}

// ProgressFunc receives progress snapshots during a traversal.
// Snapshots are delivered in order and never decrease. A nil ProgressFunc
// disables reporting.
type ProgressFunc func(Progress)

// OverallProgress returns the completed fraction in [0, 1].
// It is 0 when there is nothing to process.
func (p Progress) OverallProgress() float64 {
	total := p.TotalLists + p.TotalItems
	if total == 0 {
		return 0
	}
	f := float64(p.ProcessedLists+p.ProcessedItems) / float64(total)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// Percentage returns OverallProgress as an integer percentage.
func (p Progress) Percentage() int {
	return int(p.OverallProgress() * 100)
}
