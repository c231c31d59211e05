package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/fitcalc/internal/model"
)

var tableHeaders = []string{"Workout", "Duration (h)", "Distance (km)", "Avg speed (km/h)", "Calories"}

// RenderTable prints the reports as an aligned table followed by a totals row.
func RenderTable(w io.Writer, reports []model.Report, useColor bool) error {
	if len(reports) == 0 {
		_, err := fmt.Fprintln(w, "No workouts found.")
		return err
	}
	rows := append(TableRows(reports), tableRow(Totals(reports)))

	rightAlign := map[int]bool{1: true, 2: true, 3: true, 4: true}
	lines := formatTable(tableHeaders, rows, rightAlign)
	for i, line := range lines {
		if useColor {
			switch i {
			case 0:
				line = headerStyle.Render(line)
			case len(lines) - 1:
				line = totalStyle.Render(line)
			}
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// TableRows returns the formatted cells used by the table renderers.
func TableRows(reports []model.Report) [][]string {
	rows := make([][]string, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, tableRow(r))
	}
	return rows
}

// TableHeaders returns the column titles used by the table renderers.
func TableHeaders() []string {
	return append([]string(nil), tableHeaders...)
}

func tableRow(r model.Report) []string {
	return []string{
		r.Kind,
		fmt.Sprintf("%.3f", r.DurationHours),
		fmt.Sprintf("%.3f", r.DistanceKm),
		fmt.Sprintf("%.3f", r.SpeedKmh),
		fmt.Sprintf("%.3f", r.CaloriesKcal),
	}
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = DisplayWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := DisplayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return strings.TrimRight(b.String(), " ")
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := DisplayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

// DisplayWidth returns the number of terminal cells needed for value.
func DisplayWidth(value string) int {
	return runewidth.StringWidth(value)
}
