package reportui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/fitcalc/internal/report"
	"github.com/verte-zerg/fitcalc/internal/workout"
)

func newSampleModel(t *testing.T) *Model {
	t.Helper()
	reports, err := report.BuildReports(workout.SamplePackages())
	if err != nil {
		t.Fatalf("build reports: %v", err)
	}
	m := NewModel(reports)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return m
}

func TestViewShowsReports(t *testing.T) {
	m := newSampleModel(t)
	out := m.View()
	for _, want := range []string{"Workouts", "Swimming", "Running", "SportsWalking", "Calories burned: 336.000."} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q: %s", want, out)
		}
	}
}

func TestViewEmptyBeforeResize(t *testing.T) {
	m := NewModel(nil)
	if out := m.View(); out != "" {
		t.Fatalf("expected empty view before window size, got %q", out)
	}
}

func TestDownMovesSelection(t *testing.T) {
	m := newSampleModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	r, ok := m.Selected()
	if !ok || r.Kind != "Running" {
		t.Fatalf("expected Running selected, got %+v", r)
	}
}

func TestQuitKeys(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		m := newSampleModel(t)
		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Fatalf("expected quit command for %q", msg.String())
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected tea.QuitMsg for %q", msg.String())
		}
	}
}

func TestEmptyReportsDetail(t *testing.T) {
	m := NewModel(nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})
	if !strings.Contains(m.View(), "No workouts found.") {
		t.Fatalf("expected empty notice in view")
	}
}
