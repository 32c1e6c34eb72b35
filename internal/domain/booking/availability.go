package booking

import (
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

// BreakWindow is a non-bookable interval inside the day's open hours.
type BreakWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayAvailability is the weekly template resolved for one calendar date.
type DayAvailability struct {
	IsOpen      bool          `json:"is_open"`
	OpeningTime string        `json:"opening_time"`
	ClosingTime string        `json:"closing_time"`
	Breaks      []BreakWindow `json:"breaks"`
}

// ResolveDay collapses the weekday template row, its break slots and the
// closed-date flag into the availability for one date. Pure; a nil or
// inactive template row means closed.
func ResolveDay(
	tpl *models.WeeklyAvailability,
	breaks []models.BreakSlot,
	dateClosed bool,
) DayAvailability {

	if dateClosed || tpl == nil || !tpl.IsOpen {
		return DayAvailability{IsOpen: false}
	}
	if tpl.OpeningTime == "" || tpl.ClosingTime == "" {
		return DayAvailability{IsOpen: false}
	}

	day := DayAvailability{
		IsOpen:      true,
		OpeningTime: tpl.OpeningTime,
		ClosingTime: tpl.ClosingTime,
	}

	for _, b := range breaks {
		day.Breaks = append(day.Breaks, BreakWindow{
			Start: b.StartTime,
			End:   b.EndTime,
		})
	}

	return day
}
