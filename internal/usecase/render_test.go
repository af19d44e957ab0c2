package usecase

import (
	"strings"
	"testing"

	"telegram-blackout-bot/internal/domain/model"
)

func TestFormatMinutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{30, "00:30"},
		{90, "01:30"},
		{600, "10:00"},
		{1439, "23:59"},
		// The upstream schedule closes the day at 1440; no wrap.
		{1440, "24:00"},
		{1500, "25:00"},
	}
	for _, c := range cases {
		if got := FormatMinutes(c.in); got != c.want {
			t.Errorf("FormatMinutes(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRenderDay_Absent(t *testing.T) {
	t.Parallel()

	uc := newTestUC(t, newMemScheduleProvider())
	lines := uc.renderDay(nil)
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line, got %d: %v", len(lines), lines)
	}
	if lines[0] != "No data." {
		t.Fatalf("expected the no-data line, got %q", lines[0])
	}
}

func TestRenderDay_EmptySlots(t *testing.T) {
	t.Parallel()

	uc := newTestUC(t, newMemScheduleProvider())
	lines := uc.renderDay(&model.DaySchedule{Date: "2026-01-09T00:00:00", Slots: nil})
	if len(lines) != 1 {
		t.Fatalf("expected exactly one line, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "empty") {
		t.Fatalf("expected the empty-schedule line, got %q", lines[0])
	}
}

func TestRenderDay_StatusMapping(t *testing.T) {
	t.Parallel()

	uc := newTestUC(t, newMemScheduleProvider())
	day := &model.DaySchedule{
		Date: "2026-01-09T00:00:00",
		Slots: []model.Slot{
			{Start: 0, End: 90, Type: model.StatusDefinite},
			{Start: 90, End: 600, Type: model.StatusNotPlanned},
			{Start: 600, End: 1440, Type: "Possible"},
		},
	}
	lines := uc.renderDay(day)
	if len(lines) != 4 {
		t.Fatalf("expected header + 3 slot lines, got %d: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], "2026-01-09") {
		t.Errorf("header should carry the date before 'T', got %q", lines[0])
	}
	if lines[1] != "🔴 00:00 - 01:30 : Outage" {
		t.Errorf("Definite slot rendered as %q", lines[1])
	}
	if lines[2] != "🟢 01:30 - 10:00 : Power on" {
		t.Errorf("NotPlanned slot rendered as %q", lines[2])
	}
	// unrecognized tags pass through verbatim with the neutral icon
	if lines[3] != "⚪️ 10:00 - 24:00 : Possible" {
		t.Errorf("unknown-status slot rendered as %q", lines[3])
	}
}

func TestRenderGroup_Sections(t *testing.T) {
	t.Parallel()

	uc := newTestUC(t, newMemScheduleProvider())
	city, _ := model.CityByKey("kyiv")
	gs := model.GroupSchedule{
		UpdatedOn: "2026-01-09 10:00",
		Today: &model.DaySchedule{
			Date:  "2026-01-09T00:00:00",
			Slots: []model.Slot{{Start: 0, End: 60, Type: model.StatusDefinite}},
		},
		// tomorrow absent from the document
	}

	text := uc.renderGroup(city, "3.1", gs)
	for _, want := range []string{"3.1", "2026-01-09 10:00", "TODAY", "TOMORROW", "No data."} {
		if !strings.Contains(text, want) {
			t.Errorf("rendered group missing %q:\n%s", want, text)
		}
	}
}

func TestRenderGroup_UnknownUpdatedOn(t *testing.T) {
	t.Parallel()

	uc := newTestUC(t, newMemScheduleProvider())
	city, _ := model.CityByKey("kyiv")
	text := uc.renderGroup(city, "3.1", model.GroupSchedule{})
	if !strings.Contains(text, "unknown") {
		t.Fatalf("empty updatedOn should render the unknown placeholder:\n%s", text)
	}
}
