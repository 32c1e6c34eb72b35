package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/middleware"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
)

type AddressHandler struct {
	db *gorm.DB
}

func NewAddressHandler(db *gorm.DB) *AddressHandler {
	return &AddressHandler{db: db}
}

type AddressCreateRequest struct {
	Label   string `json:"label"`
	Line1   string `json:"line1" binding:"required"`
	Line2   string `json:"line2"`
	City    string `json:"city" binding:"required"`
	State   string `json:"state"`
	Pincode string `json:"pincode" binding:"required"`
	Phone   string `json:"phone"`
}

func (h *AddressHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var addresses []models.Address
	if err := h.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&addresses).Error; err != nil {
		httperr.Internal(c, "failed_to_list_addresses", "Failed to list addresses.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"addresses": addresses})
}

func (h *AddressHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req AddressCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	address := models.Address{
		UserID:  userID,
		Label:   req.Label,
		Line1:   req.Line1,
		Line2:   req.Line2,
		City:    req.City,
		State:   req.State,
		Pincode: req.Pincode,
		Phone:   req.Phone,
	}

	if err := h.db.Create(&address).Error; err != nil {
		httperr.Internal(c, "failed_to_create_address", "Failed to save the address.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"address": address})
}

func (h *AddressHandler) Delete(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	addressID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_address_id", "Address id must be numeric.")
		return
	}

	result := h.db.
		Where("id = ? AND user_id = ?", addressID, userID).
		Delete(&models.Address{})
	if result.Error != nil {
		httperr.Internal(c, "failed_to_delete_address", "Failed to delete the address.")
		return
	}
	if result.RowsAffected == 0 {
		httperr.NotFound(c, "address_not_found", "Address not found.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
