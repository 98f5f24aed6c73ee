package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total   int   // Planned renames, including missing range sources.
	Current int   // 1-based position of the last rename attempted.
	Renamed int   // Completed (or, in a dry run, previewed) renames.
	Missing int   // Range sources that did not exist.
	Bytes   int64 // Combined size of renamed entries.
}

// Pending returns how many planned renames were not reached, e.g. after an
// abort or interrupt.
func (s *RunStats) Pending() int {
	return s.Total - s.Renamed - s.Missing
}
