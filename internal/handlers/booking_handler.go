package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/httpresp"
	"github.com/MikyMack/Blushley-full-sub000/internal/middleware"
	ucBooking "github.com/MikyMack/Blushley-full-sub000/internal/usecase/booking"
)

// ======================================================
// HANDLER (customer-facing booking endpoints)
// ======================================================

type BookingHandler struct {
	createUC *ucBooking.CreateBooking
	cancelUC *ucBooking.CancelBooking
	listUC   *ucBooking.ListUserBookings
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	listUC *ucBooking.ListUserBookings,
) *BookingHandler {
	return &BookingHandler{
		createUC: createUC,
		cancelUC: cancelUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	SalonID    uint   `json:"salon_id" binding:"required"`
	ServiceIDs []uint `json:"service_ids" binding:"required"`
	Date       string `json:"date" binding:"required"` // YYYY-MM-DD
	Time       string `json:"time" binding:"required"` // HH:MM

	BookingType string `json:"booking_type"` // salon (default) | home
	AddressID   *uint  `json:"address_id"`
	Notes       string `json:"notes"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.BookingType != "" &&
		req.BookingType != ucBooking.BookingTypeSalon &&
		req.BookingType != ucBooking.BookingTypeHome {
		httperr.BadRequest(c, "invalid_booking_type", "booking_type must be salon or home.")
		return
	}

	b, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:      userID,
		SalonID:     req.SalonID,
		ServiceIDs:  req.ServiceIDs,
		Date:        req.Date,
		Time:        req.Time,
		BookingType: req.BookingType,
		AddressID:   req.AddressID,
		Notes:       req.Notes,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"booking_token": b.BookingToken,
		"booking_id":    b.ID,
		"total_amount":  b.TotalServiceAmount,
		"status":        b.Status,
	})
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), userID, uint(bookingID))
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"booking_token": b.BookingToken,
		"status":        b.Status,
		"cancelled_at":  b.CancelledAt,
	})
}

// ======================================================
// LIST (paginated history)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	status := c.Query("status")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	items, total, page, pageSize, err := h.listUC.Execute(
		c.Request.Context(), userID, status, page, pageSize,
	)
	if err != nil {
		mapBookingError(c, err)
		return
	}

	httpresp.Page(c, items, total, page, pageSize)
}
