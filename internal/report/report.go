// Package report writes the plain text record of a computed dial.
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/chrissnell/sundial/internal/planner"
)

// WriteInfo writes the narrative followed by one line per hour line.
func WriteInfo(w io.Writer, plan *planner.Plan) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, plan.Text())
	fmt.Fprintln(bw)
	fmt.Fprintf(bw, "Hour lines (UTC offset %+.2f h, central meridian %.2f°):\n", plan.Result.UTCOffset, plan.Result.CentralMeridian)

	sunlit := make(map[int]bool, len(plan.SunlitHours))
	for _, h := range plan.SunlitHours {
		sunlit[h] = true
	}
	for _, l := range plan.Result.HourLines {
		mark := ""
		if !sunlit[l.ClockHour] {
			mark = "  (dark today)"
		}
		fmt.Fprintf(bw, "%s  %7.2f°%s\n", l.Clock, l.Angle, mark)
	}

	return bw.Flush()
}

// WriteInfoFile writes the report to path, replacing any existing file.
func WriteInfoFile(path string, plan *planner.Plan) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create info file: %w", err)
	}
	if err := WriteInfo(f, plan); err != nil {
		f.Close()
		return fmt.Errorf("write info file: %w", err)
	}
	return f.Close()
}
