package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/httpresp"
	"github.com/MikyMack/Blushley-full-sub000/internal/middleware"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
	ucBooking "github.com/MikyMack/Blushley-full-sub000/internal/usecase/booking"
)

// SalonBookingHandler covers the salon side of the booking lifecycle.
type SalonBookingHandler struct {
	db       *gorm.DB
	listUC   *ucBooking.ListSalonBookings
	actionUC *ucBooking.SalonAction
}

func NewSalonBookingHandler(
	db *gorm.DB,
	listUC *ucBooking.ListSalonBookings,
	actionUC *ucBooking.SalonAction,
) *SalonBookingHandler {
	return &SalonBookingHandler{
		db:       db,
		listUC:   listUC,
		actionUC: actionUC,
	}
}

// ======================================================
// LIST BY DATE
// ======================================================

func (h *SalonBookingHandler) ListByDate(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	date, err := parseDateInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be in YYYY-MM-DD format.")
		return
	}

	bookings, err := h.listUC.Execute(c.Request.Context(), salonID, date)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// LIFECYCLE ACTIONS
// ======================================================

func (h *SalonBookingHandler) Confirm(c *gin.Context) {
	h.action(c, h.actionUC.Confirm)
}

func (h *SalonBookingHandler) Complete(c *gin.Context) {
	h.action(c, h.actionUC.Complete)
}

func (h *SalonBookingHandler) Reject(c *gin.Context) {
	h.action(c, h.actionUC.Reject)
}

func (h *SalonBookingHandler) Cancel(c *gin.Context) {
	h.action(c, h.actionUC.Cancel)
}

func (h *SalonBookingHandler) action(
	c *gin.Context,
	do func(ctx context.Context, salonID, bookingID, actorID uint) (*models.Booking, error),
) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := do(c.Request.Context(), salonID, uint(bookingID), actorID)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, b)
}
