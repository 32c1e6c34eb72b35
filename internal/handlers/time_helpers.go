package handlers

import (
	"time"

	"github.com/MikyMack/Blushley-full-sub000/internal/models"
	"github.com/MikyMack/Blushley-full-sub000/internal/timezone"
)

// Timezone policy: a salon's wall-clock strings are interpreted in its
// own IANA location, decided once here at the boundary.

func locationFromSalon(salon *models.Salon) *time.Location {
	if salon != nil {
		return timezone.Location(salon.Timezone)
	}
	return timezone.Location("")
}

func parseDateInSalon(salon *models.Salon, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		locationFromSalon(salon),
	)
}
