package sim

// GanttEntry records one contiguous stretch of CPU time granted to a pid.
// Start is inclusive, End exclusive, Start < End always.
type GanttEntry struct {
	PID   int
	Start int
	End   int
}

// Duration returns the number of ticks the entry covers.
func (g GanttEntry) Duration() int { return g.End - g.Start }

// appendRun extends the chart by one execution interval for pid, merging into
// the previous entry when the same pid ran through the adjacent tick. This
// keeps uninterrupted execution as a single entry so context-switch counts
// stay honest. Round robin bypasses this helper and appends one entry per
// quantum slice.
func appendRun(chart []GanttEntry, pid, start, end int) []GanttEntry {
	if n := len(chart); n > 0 && chart[n-1].PID == pid && chart[n-1].End == start {
		chart[n-1].End = end
		return chart
	}
	return append(chart, GanttEntry{PID: pid, Start: start, End: end})
}
