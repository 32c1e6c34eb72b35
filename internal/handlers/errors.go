package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
)

// English messages for every business code the booking core can raise.
var bookingErrorMessages = map[string]string{
	"invalid_time_format":        "Time must be in HH:MM format.",
	"invalid_date":               "Date must be in YYYY-MM-DD format.",
	"no_services_selected":       "Select at least one service.",
	"duplicate_service":          "A service can be selected only once.",
	"unknown_service":            "One of the selected services does not exist.",
	"salon_not_found":            "Salon not found.",
	"user_not_found":             "User not found.",
	"salon_closed":               "The salon is closed on the requested date.",
	"slot_outside_hours":         "The requested time falls outside opening hours.",
	"slot_during_break":          "The requested time falls inside a break.",
	"slot_in_past":               "The requested time is in the past.",
	"slot_already_booked":        "The slot was just taken. Please pick another one.",
	"home_service_unavailable":   "This salon does not offer home service.",
	"address_not_found":          "Address not found.",
	"booking_not_found":          "Booking not found.",
	"not_cancellable":            "The booking can no longer be cancelled.",
	"cancellation_window_closed": "Bookings can only be cancelled at least 2 hours in advance.",
	"invalid_state":              "The booking is not in a state that allows this action.",
	"invalid_status_filter":      "Unknown booking status filter.",
	"invalid_opening_hours":      "Opening time must be before closing time.",
	"invalid_break_slot":         "Break slots must fall inside opening hours.",
}

// mapBookingError translates a business error into the right HTTP
// response. slot_already_booked is a normal pick-another-slot outcome,
// so it gets 409 rather than a server fault.
func mapBookingError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Something went wrong. Please try again.")
		return
	}

	msg, ok := bookingErrorMessages[be.Code]
	if !ok {
		msg = "Request failed."
	}

	switch be.Code {
	case "slot_already_booked":
		httperr.Conflict(c, be.Code, msg)
	case "salon_not_found", "user_not_found", "booking_not_found", "address_not_found":
		httperr.NotFound(c, be.Code, msg)
	default:
		httperr.BadRequest(c, be.Code, msg)
	}
}
