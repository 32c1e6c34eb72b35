package booking

import (
	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

// DefaultServiceDurationMin applies when a catalog record omits duration.
const DefaultServiceDurationMin = 60

// Quote is the aggregation of a requested service selection. The payment
// fields become the booking's snapshot at creation.
type Quote struct {
	Services []models.SalonService

	TotalDurationMin   int
	TotalServiceAmount float64
	TotalAdminAmount   float64
	SalonEarning       float64
	HomeServiceCharge  float64
}

// BuildQuote validates the requested ids against the salon's catalog and
// sums durations and prices. A service is offered once per appointment,
// so duplicate ids are rejected rather than summed. For home bookings
// the flat surcharge is added to the customer total but never to the
// salon's earning.
func BuildQuote(
	catalog []models.SalonService,
	requested []uint,
	homeService bool,
	homeCharge float64,
) (*Quote, error) {

	if len(requested) == 0 {
		return nil, httperr.ErrBusiness("no_services_selected")
	}

	byID := make(map[uint]models.SalonService, len(catalog))
	for _, s := range catalog {
		byID[s.ID] = s
	}

	seen := make(map[uint]bool, len(requested))
	q := &Quote{}

	for _, id := range requested {
		if seen[id] {
			return nil, httperr.ErrBusiness("duplicate_service")
		}
		seen[id] = true

		svc, ok := byID[id]
		if !ok {
			return nil, httperr.ErrBusiness("unknown_service")
		}

		duration := svc.DurationMin
		if duration <= 0 {
			duration = DefaultServiceDurationMin
		}

		q.Services = append(q.Services, svc)
		q.TotalDurationMin += duration
		q.TotalServiceAmount += svc.Price
		q.TotalAdminAmount += svc.AdminPrice
	}

	q.SalonEarning = q.TotalServiceAmount - q.TotalAdminAmount

	if homeService {
		q.HomeServiceCharge = homeCharge
		q.TotalServiceAmount += homeCharge
	}

	return q, nil
}
