package workout

import "github.com/verte-zerg/fitcalc/internal/model"

// SamplePackages returns the built-in sensor readings in processing order.
func SamplePackages() []model.Package {
	return []model.Package{
		{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
		{Code: "RUN", Data: []float64{15000, 1, 75}},
		{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
	}
}
