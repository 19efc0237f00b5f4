// Textual rendering of scheduling results. Everything here consumes the
// engine's SchedulingResult and writes to an io.Writer; the engine never
// depends on this package.

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sched-sim/sched-sim/sim"
)

// WriteGantt renders the result's timeline as an ASCII Gantt chart: one cell
// per entry sized by its duration, followed by a row of time markers.
func WriteGantt(w io.Writer, result *sim.SchedulingResult) {
	fmt.Fprintf(w, "Gantt Chart for %s\n", result.Algorithm)
	if len(result.Gantt) == 0 {
		fmt.Fprintln(w, "(no execution)")
		return
	}

	var timeline, markers strings.Builder
	timeline.WriteString("|")
	markers.WriteString(strconv.Itoa(result.Gantt[0].Start))
	for _, entry := range result.Gantt {
		width := entry.Duration() * 3
		timeline.WriteString(center(fmt.Sprintf(" P%d ", entry.PID), width))
		timeline.WriteString("|")

		end := strconv.Itoa(entry.End)
		pad := width + 1 - len(end)
		if pad < 1 {
			pad = 1
		}
		markers.WriteString(strings.Repeat(" ", pad))
		markers.WriteString(end)
	}

	fmt.Fprintln(w, timeline.String())
	fmt.Fprintln(w, markers.String())
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
