package workout

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestReadPackageBuildsKinds(t *testing.T) {
	for _, pkg := range SamplePackages() {
		tr, err := ReadPackage(pkg.Code, pkg.Data)
		if err != nil {
			t.Fatalf("read %s: %v", pkg.Code, err)
		}
		switch pkg.Code {
		case "SWM":
			if _, ok := tr.(*Swimming); !ok {
				t.Fatalf("expected *Swimming for SWM, got %T", tr)
			}
		case "RUN":
			if _, ok := tr.(*Running); !ok {
				t.Fatalf("expected *Running for RUN, got %T", tr)
			}
		case "WLK":
			if _, ok := tr.(*SportsWalking); !ok {
				t.Fatalf("expected *SportsWalking for WLK, got %T", tr)
			}
		}
	}
}

func TestReadPackageUnsupportedCode(t *testing.T) {
	_, err := ReadPackage("XYZ", []float64{1, 1, 1})
	if err == nil {
		t.Fatalf("expected error for unknown code")
	}
	if !errors.Is(err, ErrUnsupportedWorkoutType) {
		t.Fatalf("expected ErrUnsupportedWorkoutType, got %v", err)
	}
	var typed *UnsupportedWorkoutTypeError
	if !errors.As(err, &typed) || typed.Code != "XYZ" {
		t.Fatalf("expected typed error with code XYZ, got %v", err)
	}
	if !strings.Contains(err.Error(), "RUN, SWM, WLK") {
		t.Fatalf("expected supported codes in message: %v", err)
	}
}

func TestReadPackageWrongLength(t *testing.T) {
	_, err := ReadPackage("RUN", []float64{15000, 1})
	if !errors.Is(err, ErrConstruction) {
		t.Fatalf("expected ErrConstruction, got %v", err)
	}
	if errors.Is(err, ErrUnsupportedWorkoutType) {
		t.Fatalf("length error must not match unsupported type")
	}
}

func TestKindsSortedByCode(t *testing.T) {
	list := Kinds()
	if len(list) != 3 {
		t.Fatalf("expected 3 kinds, got %d", len(list))
	}
	if list[0].Code != "RUN" || list[1].Code != "SWM" || list[2].Code != "WLK" {
		t.Fatalf("unexpected order: %+v", list)
	}
	if len(list[1].Fields) != 5 || list[2].Label != "SportsWalking" {
		t.Fatalf("unexpected kind info: %+v", list)
	}
}

func TestKindsMatchBuiltWorkouts(t *testing.T) {
	for _, kind := range Kinds() {
		data := make([]float64, len(kind.Fields))
		for i := range data {
			data[i] = 1
		}
		tr, err := ReadPackage(kind.Code, data)
		if err != nil {
			t.Fatalf("read %s: %v", kind.Code, err)
		}
		if tr.Kind() != kind.Label {
			t.Fatalf("%s: label %q does not match built kind %q", kind.Code, kind.Label, tr.Kind())
		}
	}
}

func TestReadPackageTruncatesActionCount(t *testing.T) {
	tr, err := ReadPackage("RUN", []float64{15000.9, 1, 75})
	if err != nil {
		t.Fatalf("read RUN: %v", err)
	}
	if got := tr.Distance(); math.Abs(got-9.75) > 1e-9 {
		t.Fatalf("expected truncated distance 9.75, got %v", got)
	}
}
