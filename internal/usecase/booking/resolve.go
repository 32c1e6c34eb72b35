package booking

import (
	"context"
	"time"

	domain "github.com/MikyMack/Blushley-full-sub000/internal/domain/booking"
)

// resolveDay is shared by the listing and admission paths.
func resolveDay(
	ctx context.Context,
	repo domain.Repository,
	salonID uint,
	date time.Time,
) (domain.DayAvailability, error) {

	closed, err := repo.IsClosedDate(ctx, salonID, date)
	if err != nil {
		return domain.DayAvailability{}, err
	}

	tpl, breaks, err := repo.GetDayTemplate(ctx, salonID, int(date.Weekday()))
	if err != nil {
		// No template row for this weekday means the salon never opens
		// on that day.
		return domain.DayAvailability{IsOpen: false}, nil
	}

	return domain.ResolveDay(tpl, breaks, closed), nil
}
