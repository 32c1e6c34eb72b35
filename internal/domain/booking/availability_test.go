package booking

import (
	"testing"

	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

func TestResolveDay_Open(t *testing.T) {
	tpl := &models.WeeklyAvailability{
		Weekday:     1,
		IsOpen:      true,
		OpeningTime: "09:00",
		ClosingTime: "18:00",
	}
	breaks := []models.BreakSlot{
		{Weekday: 1, StartTime: "13:00", EndTime: "14:00"},
	}

	day := ResolveDay(tpl, breaks, false)
	if !day.IsOpen {
		t.Fatal("expected open day")
	}
	if day.OpeningTime != "09:00" || day.ClosingTime != "18:00" {
		t.Fatalf("unexpected hours: %s-%s", day.OpeningTime, day.ClosingTime)
	}
	if len(day.Breaks) != 1 || day.Breaks[0].Start != "13:00" || day.Breaks[0].End != "14:00" {
		t.Fatalf("unexpected breaks: %+v", day.Breaks)
	}
}

func TestResolveDay_Closed(t *testing.T) {
	open := &models.WeeklyAvailability{IsOpen: true, OpeningTime: "09:00", ClosingTime: "18:00"}

	cases := []struct {
		name       string
		tpl        *models.WeeklyAvailability
		dateClosed bool
	}{
		{"no template row", nil, false},
		{"weekday closed", &models.WeeklyAvailability{IsOpen: false}, false},
		{"closed date overrides template", open, true},
		{"missing hours", &models.WeeklyAvailability{IsOpen: true}, false},
	}

	for _, c := range cases {
		day := ResolveDay(c.tpl, nil, c.dateClosed)
		if day.IsOpen {
			t.Fatalf("%s: expected closed day", c.name)
		}
	}
}
