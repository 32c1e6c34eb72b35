package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MikyMack/Blushley-full-sub000/internal/audit"
	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/middleware"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

type SalonServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewSalonServiceHandler(db *gorm.DB, auditor *audit.Dispatcher) *SalonServiceHandler {
	return &SalonServiceHandler{db: db, audit: auditor}
}

// --------- Requests ---------

type SalonServiceCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	AdminPrice  float64 `json:"admin_price" binding:"gte=0"`
	DurationMin int     `json:"duration_min" binding:"required,gt=0"`
	Category    string  `json:"category"`
}

type SalonServiceUpdateRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	AdminPrice  *float64 `json:"admin_price"`
	DurationMin *int     `json:"duration_min"`
	Category    *string  `json:"category"`
	Active      *bool    `json:"active"`
}

// ======================================================
// LIST
// ======================================================

func (h *SalonServiceHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var services []models.SalonService
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("category ASC, name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"services": services})
}

// ======================================================
// CREATE
// ======================================================

func (h *SalonServiceHandler) Create(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req SalonServiceCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.AdminPrice > req.Price {
		httperr.BadRequest(c, "invalid_admin_price", "Platform cut cannot exceed the service price.")
		return
	}

	service := models.SalonService{
		SalonID:     salonID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		AdminPrice:  req.AdminPrice,
		DurationMin: req.DurationMin,
		Category:    req.Category,
		Active:      true,
	}

	if err := h.db.Create(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_create_service", "Failed to create the service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "service_created",
		Entity:   "salon_service",
		EntityID: &service.ID,
		Metadata: gin.H{"name": service.Name, "duration_min": service.DurationMin},
	})

	c.JSON(http.StatusCreated, gin.H{"service": service})
}

// ======================================================
// UPDATE
// ======================================================

func (h *SalonServiceHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Service id must be numeric.")
		return
	}

	var req SalonServiceUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var service models.SalonService
	if err := h.db.
		Where("id = ? AND salon_id = ?", serviceID, salonID).
		First(&service).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Service not found.")
		return
	}

	if req.Name != "" {
		service.Name = req.Name
	}
	if req.Description != nil {
		service.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			httperr.BadRequest(c, "invalid_price", "Price must be positive.")
			return
		}
		service.Price = *req.Price
	}
	if req.AdminPrice != nil {
		service.AdminPrice = *req.AdminPrice
	}
	if req.DurationMin != nil {
		if *req.DurationMin <= 0 {
			httperr.BadRequest(c, "invalid_duration", "Duration must be positive.")
			return
		}
		service.DurationMin = *req.DurationMin
	}
	if req.Category != nil {
		service.Category = *req.Category
	}
	if req.Active != nil {
		service.Active = *req.Active
	}

	if service.AdminPrice > service.Price {
		httperr.BadRequest(c, "invalid_admin_price", "Platform cut cannot exceed the service price.")
		return
	}

	if err := h.db.Save(&service).Error; err != nil {
		httperr.Internal(c, "failed_to_update_service", "Failed to update the service.")
		return
	}

	h.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		UserID:   &userID,
		Action:   "service_updated",
		Entity:   "salon_service",
		EntityID: &service.ID,
		Metadata: gin.H{"name": service.Name, "active": service.Active},
	})

	c.JSON(http.StatusOK, gin.H{"service": service})
}
