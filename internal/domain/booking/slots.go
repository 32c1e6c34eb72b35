package booking

// Slot is a candidate start that can host the requested total duration.
type Slot struct {
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	DurationMin int    `json:"duration"`
}

// Reasons for an empty (but valid) slot listing.
const (
	ReasonClosed = "salon_closed"
	ReasonNoFit  = "duration_exceeds_window"
)

// overlaps is the half-open interval test used everywhere in this
// package: touching endpoints do not count as overlap.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && aEnd > bStart
}

// GenerateSlots enumerates candidate starts from opening time up to
// closing − totalDuration inclusive, stepping by the salon's cadence,
// and discards candidates that intersect a break. An empty result with a
// reason is a normal outcome, not an error; the only error is a
// malformed template time.
func GenerateSlots(day DayAvailability, totalDurationMin, cadenceMin int) ([]Slot, string, error) {
	if !day.IsOpen {
		return nil, ReasonClosed, nil
	}
	if cadenceMin <= 0 {
		cadenceMin = 30
	}

	open, err := TimeToMinutes(day.OpeningTime)
	if err != nil {
		return nil, "", err
	}
	closing, err := TimeToMinutes(day.ClosingTime)
	if err != nil {
		return nil, "", err
	}

	if totalDurationMin > closing-open {
		return nil, ReasonNoFit, nil
	}

	type window struct{ start, end int }
	breaks := make([]window, 0, len(day.Breaks))
	for _, b := range day.Breaks {
		bs, err := TimeToMinutes(b.Start)
		if err != nil {
			return nil, "", err
		}
		be, err := TimeToMinutes(b.End)
		if err != nil {
			return nil, "", err
		}
		breaks = append(breaks, window{bs, be})
	}

	var slots []Slot
	for t := open; t <= closing-totalDurationMin; t += cadenceMin {
		end := t + totalDurationMin

		blocked := false
		for _, b := range breaks {
			if overlaps(t, end, b.start, b.end) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		slots = append(slots, Slot{
			StartTime:   MinutesToTime(t),
			EndTime:     MinutesToTime(end),
			DurationMin: totalDurationMin,
		})
	}

	if len(slots) == 0 {
		return nil, ReasonNoFit, nil
	}
	return slots, "", nil
}
