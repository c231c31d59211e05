package workout

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/verte-zerg/fitcalc/internal/model"
)

// ErrUnsupportedWorkoutType is matched by errors returned for unknown workout codes.
var ErrUnsupportedWorkoutType = errors.New("unsupported workout type")

// ErrConstruction is matched by errors returned when sensor data does not fit a workout.
var ErrConstruction = errors.New("failed to construct workout")

// UnsupportedWorkoutTypeError reports an unknown workout code.
type UnsupportedWorkoutTypeError struct {
	Code string
}

func (e *UnsupportedWorkoutTypeError) Error() string {
	return fmt.Sprintf("unsupported workout type %q (supported: %s)", e.Code, supportedCodes())
}

// Is reports whether target is ErrUnsupportedWorkoutType.
func (e *UnsupportedWorkoutTypeError) Is(target error) bool {
	return target == ErrUnsupportedWorkoutType
}

type kindEntry struct {
	label  string
	fields []string
	build  func(data []float64) Training
}

var kinds = map[string]kindEntry{
	"SWM": {
		label:  KindSwimming,
		fields: []string{"strokes", "duration_h", "weight_kg", "pool_length_m", "pool_count"},
		build: func(d []float64) Training {
			return NewSwimming(int(d[0]), d[1], d[2], d[3], d[4])
		},
	},
	"RUN": {
		label:  KindRunning,
		fields: []string{"steps", "duration_h", "weight_kg"},
		build: func(d []float64) Training {
			return NewRunning(int(d[0]), d[1], d[2])
		},
	},
	"WLK": {
		label:  KindSportsWalking,
		fields: []string{"steps", "duration_h", "weight_kg", "height_cm"},
		build: func(d []float64) Training {
			return NewSportsWalking(int(d[0]), d[1], d[2], d[3])
		},
	},
}

// ReadPackage builds the workout for a sensor code from its positional values.
// The first value is the step or stroke count; a fractional count is
// truncated toward zero.
func ReadPackage(code string, data []float64) (Training, error) {
	entry, ok := kinds[code]
	if !ok {
		return nil, &UnsupportedWorkoutTypeError{Code: code}
	}
	if len(data) != len(entry.fields) {
		return nil, fmt.Errorf("%w %s: expected %d values, got %d", ErrConstruction, entry.label, len(entry.fields), len(data))
	}
	return entry.build(data), nil
}

// Kinds lists the supported workout codes sorted by code.
func Kinds() []model.KindInfo {
	out := make([]model.KindInfo, 0, len(kinds))
	for code, entry := range kinds {
		out = append(out, model.KindInfo{
			Code:   code,
			Label:  entry.label,
			Fields: append([]string(nil), entry.fields...),
		})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Code < out[j].Code
	})
	return out
}

func supportedCodes() string {
	codes := make([]string, 0, len(kinds))
	for code := range kinds {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return strings.Join(codes, ", ")
}
