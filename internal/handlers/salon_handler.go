package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/middleware"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
	"github.com/MikyMack/Blushley-full-sub000/internal/storage"
	"github.com/MikyMack/Blushley-full-sub000/internal/timezone"
)

type SalonHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewSalonHandler(db *gorm.DB, uploader *storage.Uploader) *SalonHandler {
	return &SalonHandler{db: db, uploader: uploader}
}

// ======================================================
// OWNER: own salon
// ======================================================

func (h *SalonHandler) GetMine(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"salon": salon})
}

type SalonUpdateRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`

	Timezone string `json:"timezone"`

	HomeServiceAvailable *bool    `json:"home_service_available"`
	HomeServiceCharge    *float64 `json:"home_service_charge"`

	Active *bool `json:"active"`
}

func (h *SalonHandler) UpdateMine(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req SalonUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	if req.Name != "" {
		salon.Name = req.Name
	}
	if req.Phone != "" {
		salon.Phone = req.Phone
	}
	if req.Address != "" {
		salon.Address = req.Address
	}
	if req.City != "" {
		salon.City = req.City
	}
	if req.Timezone != "" {
		if !timezone.IsValid(req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown IANA timezone.")
			return
		}
		salon.Timezone = req.Timezone
	}
	if req.HomeServiceAvailable != nil {
		salon.HomeServiceAvailable = *req.HomeServiceAvailable
	}
	if req.HomeServiceCharge != nil {
		salon.HomeServiceCharge = *req.HomeServiceCharge
	}
	if req.Active != nil {
		salon.Active = *req.Active
	}

	if err := h.db.Save(&salon).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Failed to update salon.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"salon": salon})
}

// UploadImage accepts a multipart "image" field, re-encodes it and
// stores the resulting URL on the salon.
func (h *SalonHandler) UploadImage(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	if h.uploader == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "uploads_disabled", "Image uploads are not configured.")
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "Send the image as multipart field 'image'.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.BadRequest(c, "invalid_image", "Could not read the uploaded file.")
		return
	}
	defer file.Close()

	url, err := h.uploader.UploadImage(c.Request.Context(), file, "salons")
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to store the image.")
		return
	}

	if err := h.db.Model(&models.Salon{}).
		Where("id = ?", salonID).
		Update("image_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_salon", "Failed to save the image URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
