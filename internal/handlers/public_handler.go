package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
	ucBooking "github.com/MikyMack/Blushley-full-sub000/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type PublicHandler struct {
	db      *gorm.DB
	slotsUC *ucBooking.GetAvailableSlots
}

func NewPublicHandler(db *gorm.DB, slotsUC *ucBooking.GetAvailableSlots) *PublicHandler {
	return &PublicHandler{
		db:      db,
		slotsUC: slotsUC,
	}
}

// ======================================================
// SALONS
// ======================================================

func (h *PublicHandler) ListSalons(c *gin.Context) {
	city := strings.TrimSpace(strings.ToLower(c.Query("city")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")

	if city != "" {
		q = q.Where("LOWER(city) = ?", city)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ?", like)
	}

	var salons []models.Salon
	if err := q.Order("id ASC").Find(&salons).Error; err != nil {
		httperr.Internal(c, "failed_to_list_salons", "Failed to list salons.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"salons": salons})
}

func (h *PublicHandler) GetSalon(c *gin.Context) {
	slug := c.Param("slug")

	var salon models.Salon
	if err := h.db.Where("slug = ? AND active = true", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	var services []models.SalonService
	if err := h.db.
		Where("salon_id = ? AND active = true", salon.ID).
		Order("id ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *PublicHandler) Availability(c *gin.Context) {
	slug := c.Param("slug")
	dateStr := c.Query("date")
	serviceIDsStr := c.Query("service_ids")

	if dateStr == "" || serviceIDsStr == "" {
		httperr.BadRequest(c, "missing_params", "date and service_ids are required.")
		return
	}

	serviceIDs, err := parseServiceIDs(serviceIDsStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_ids", "service_ids must be a comma-separated list of ids.")
		return
	}

	var salon models.Salon
	if err := h.db.Where("slug = ? AND active = true", slug).First(&salon).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	date, err := parseDateInSalon(&salon, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Date must be in YYYY-MM-DD format.")
		return
	}

	homeService := c.Query("booking_type") == ucBooking.BookingTypeHome

	out, err := h.slotsUC.Execute(c.Request.Context(), ucBooking.AvailableSlotsInput{
		SalonID:     salon.ID,
		Date:        date,
		ServiceIDs:  serviceIDs,
		HomeService: homeService,
	})
	if err != nil {
		mapBookingError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":           dateStr,
		"slots":          out.Slots,
		"total_duration": out.TotalDurationMin,
		"reason":         out.Reason,
	})
}

func parseServiceIDs(s string) ([]uint, error) {
	parts := strings.Split(s, ",")
	ids := make([]uint, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		id, err := strconv.ParseUint(p, 10, 64)
		if err != nil {
			return nil, err
		}
		ids = append(ids, uint(id))
	}
	return ids, nil
}

// ======================================================
// PRODUCTS
// ======================================================

func (h *PublicHandler) ListProducts(c *gin.Context) {
	category := strings.TrimSpace(strings.ToLower(c.Query("category")))
	query := strings.TrimSpace(strings.ToLower(c.Query("query")))

	q := h.db.Where("active = true")

	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}
	if query != "" {
		like := "%" + query + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", like, like)
	}

	var products []models.Product
	if err := q.Order("id ASC").Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Failed to list products.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}
