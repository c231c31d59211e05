// Package report builds workout reports and renders them as text.
package report

import (
	"fmt"

	"github.com/verte-zerg/fitcalc/internal/model"
	"github.com/verte-zerg/fitcalc/internal/workout"
)

// BuildReports reads each package and computes its report, preserving input order.
func BuildReports(packages []model.Package) ([]model.Report, error) {
	reports := make([]model.Report, 0, len(packages))
	for i, pkg := range packages {
		training, err := workout.ReadPackage(pkg.Code, pkg.Data)
		if err != nil {
			return nil, fmt.Errorf("failed to read package %d: %w", i+1, err)
		}
		r, err := workout.Summarize(training)
		if err != nil {
			return nil, fmt.Errorf("failed to read package %d: %w", i+1, err)
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// Totals sums duration, distance and calories across reports.
// Speed is recomputed from the summed distance and duration.
func Totals(reports []model.Report) model.Report {
	total := model.Report{Kind: "Total"}
	for _, r := range reports {
		total.DurationHours += r.DurationHours
		total.DistanceKm += r.DistanceKm
		total.CaloriesKcal += r.CaloriesKcal
	}
	if total.DurationHours > 0 {
		total.SpeedKmh = total.DistanceKm / total.DurationHours
	}
	return total
}
