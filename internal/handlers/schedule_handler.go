package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MikyMack/Blushley-full-sub000/internal/cache"
	domain "github.com/MikyMack/Blushley-full-sub000/internal/domain/booking"
	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/middleware"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

type ScheduleHandler struct {
	db        *gorm.DB
	schedules *cache.ScheduleCache
}

func NewScheduleHandler(db *gorm.DB, schedules *cache.ScheduleCache) *ScheduleHandler {
	return &ScheduleHandler{db: db, schedules: schedules}
}

// --------- Requests ---------

type BreakSlotConfig struct {
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type WeekdayConfig struct {
	Weekday     int               `json:"weekday" binding:"min=0,max=6"`
	IsOpen      bool              `json:"is_open"`
	OpeningTime string            `json:"opening_time"`
	ClosingTime string            `json:"closing_time"`
	BreakSlots  []BreakSlotConfig `json:"break_slots"`
}

type ScheduleUpdateRequest struct {
	SlotDurationMin int             `json:"slot_duration_min"`
	Days            []WeekdayConfig `json:"days" binding:"required"`
}

type ClosedDatesUpdateRequest struct {
	Dates []struct {
		Date   string `json:"date" binding:"required"` // YYYY-MM-DD
		Reason string `json:"reason"`
	} `json:"dates" binding:"required"`
}

// ======================================================
// GET
// ======================================================

func (h *ScheduleHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var days []models.WeeklyAvailability
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("weekday ASC").
		Find(&days).Error; err != nil {
		httperr.Internal(c, "failed_to_get_schedule", "Failed to load schedule.")
		return
	}

	var breaks []models.BreakSlot
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("weekday ASC, start_time ASC").
		Find(&breaks).Error; err != nil {
		httperr.Internal(c, "failed_to_get_schedule", "Failed to load break slots.")
		return
	}

	var closed []models.ClosedDate
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("date ASC").
		Find(&closed).Error; err != nil {
		httperr.Internal(c, "failed_to_get_schedule", "Failed to load closed dates.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"days":         days,
		"break_slots":  breaks,
		"closed_dates": closed,
	})
}

// ======================================================
// UPDATE (replace-all, like the weekly template it mirrors)
// ======================================================

func (h *ScheduleHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req ScheduleUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	for _, d := range req.Days {
		if !d.IsOpen {
			continue
		}
		if err := validateDayConfig(d); err != nil {
			mapBookingError(c, err)
			return
		}
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("salon_id = ?", salonID).Delete(&models.WeeklyAvailability{}).Error; err != nil {
			return err
		}
		if err := tx.Where("salon_id = ?", salonID).Delete(&models.BreakSlot{}).Error; err != nil {
			return err
		}

		for _, d := range req.Days {
			wa := models.WeeklyAvailability{
				SalonID:     salonID,
				Weekday:     d.Weekday,
				IsOpen:      d.IsOpen,
				OpeningTime: d.OpeningTime,
				ClosingTime: d.ClosingTime,
			}
			if err := tx.Create(&wa).Error; err != nil {
				return err
			}

			for _, b := range d.BreakSlots {
				bs := models.BreakSlot{
					SalonID:   salonID,
					Weekday:   d.Weekday,
					StartTime: b.StartTime,
					EndTime:   b.EndTime,
				}
				if err := tx.Create(&bs).Error; err != nil {
					return err
				}
			}
		}

		if req.SlotDurationMin > 0 {
			return tx.Model(&models.Salon{}).
				Where("id = ?", salonID).
				Update("slot_duration_min", req.SlotDurationMin).Error
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_schedule", "Failed to save schedule.")
		return
	}

	h.schedules.InvalidateSalon(c.Request.Context(), salonID)

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ======================================================
// CLOSED DATES (replace-all)
// ======================================================

func (h *ScheduleHandler) UpdateClosedDates(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	var req ClosedDatesUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var toCreate []models.ClosedDate
	for _, d := range req.Dates {
		date, err := parseDateInSalon(&salon, d.Date)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Dates must be in YYYY-MM-DD format.")
			return
		}
		toCreate = append(toCreate, models.ClosedDate{
			SalonID: salonID,
			Date:    date,
			Reason:  d.Reason,
		})
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("salon_id = ?", salonID).Delete(&models.ClosedDate{}).Error; err != nil {
			return err
		}
		if len(toCreate) > 0 {
			return tx.Create(&toCreate).Error
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "failed_to_save_closed_dates", "Failed to save closed dates.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// --------------------------------------------------

// validateDayConfig enforces the template invariant: opening before
// closing, each break well-formed and contained in the open window.
func validateDayConfig(d WeekdayConfig) error {
	open, err := domain.TimeToMinutes(d.OpeningTime)
	if err != nil {
		return err
	}
	closing, err := domain.TimeToMinutes(d.ClosingTime)
	if err != nil {
		return err
	}
	if open >= closing {
		return httperr.ErrBusiness("invalid_opening_hours")
	}

	for _, b := range d.BreakSlots {
		bs, err := domain.TimeToMinutes(b.StartTime)
		if err != nil {
			return err
		}
		be, err := domain.TimeToMinutes(b.EndTime)
		if err != nil {
			return err
		}
		if bs >= be || bs < open || be > closing {
			return httperr.ErrBusiness("invalid_break_slot")
		}
	}
	return nil
}
