package report

import (
	"fmt"
	"io"

	"github.com/verte-zerg/fitcalc/internal/model"
)

const messageFormat = "Workout type: %s; Duration: %.3f h.; Distance: %.3f km; Avg speed: %.3f km/h; Calories burned: %.3f."

// Message renders the summary line for a report.
func Message(r model.Report) string {
	return formatMessage(r, r.Kind)
}

func formatMessage(r model.Report, kind string) string {
	return fmt.Sprintf(messageFormat, kind, r.DurationHours, r.DistanceKm, r.SpeedKmh, r.CaloriesKcal)
}

// RenderLines prints one summary line per report.
func RenderLines(w io.Writer, reports []model.Report, useColor bool) error {
	for _, r := range reports {
		line := Message(r)
		if useColor {
			line = formatMessage(r, kindStyle.Render(r.Kind))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
