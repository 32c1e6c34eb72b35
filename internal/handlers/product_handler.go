package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/MikyMack/Blushley-full-sub000/internal/httperr"
	"github.com/MikyMack/Blushley-full-sub000/internal/middleware"
	"github.com/MikyMack/Blushley-full-sub000/internal/models"
	"github.com/MikyMack/Blushley-full-sub000/internal/storage"
)

type ProductHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader
}

func NewProductHandler(db *gorm.DB, uploader *storage.Uploader) *ProductHandler {
	return &ProductHandler{db: db, uploader: uploader}
}

type ProductCreateRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Stock       int     `json:"stock" binding:"gte=0"`
	Category    string  `json:"category"`
}

type ProductUpdateRequest struct {
	Name        string   `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	Category    *string  `json:"category"`
	Active      *bool    `json:"active"`
}

// ======================================================
// RESELLER CATALOG
// ======================================================

func (h *ProductHandler) ListMine(c *gin.Context) {
	resellerID := c.MustGet(middleware.ContextUserID).(uint)

	var products []models.Product
	if err := h.db.
		Where("reseller_id = ?", resellerID).
		Order("created_at DESC").
		Find(&products).Error; err != nil {
		httperr.Internal(c, "failed_to_list_products", "Failed to list products.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"products": products})
}

func (h *ProductHandler) Create(c *gin.Context) {
	resellerID := c.MustGet(middleware.ContextUserID).(uint)

	var req ProductCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	product := models.Product{
		ResellerID:  resellerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		Category:    req.Category,
		Active:      true,
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_create_product", "Failed to create the product.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

func (h *ProductHandler) Update(c *gin.Context) {
	resellerID := c.MustGet(middleware.ContextUserID).(uint)

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_product_id", "Product id must be numeric.")
		return
	}

	var req ProductUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	var product models.Product
	if err := h.db.
		Where("id = ? AND reseller_id = ?", productID, resellerID).
		First(&product).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Product not found.")
		return
	}

	if req.Name != "" {
		product.Name = req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		if *req.Price <= 0 {
			httperr.BadRequest(c, "invalid_price", "Price must be positive.")
			return
		}
		product.Price = *req.Price
	}
	if req.Stock != nil {
		if *req.Stock < 0 {
			httperr.BadRequest(c, "invalid_stock", "Stock cannot be negative.")
			return
		}
		product.Stock = *req.Stock
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Failed to update the product.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// UploadImage mirrors the salon image flow for a reseller product.
func (h *ProductHandler) UploadImage(c *gin.Context) {
	resellerID := c.MustGet(middleware.ContextUserID).(uint)

	if h.uploader == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "uploads_disabled", "Image uploads are not configured.")
		return
	}

	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_product_id", "Product id must be numeric.")
		return
	}

	var product models.Product
	if err := h.db.
		Where("id = ? AND reseller_id = ?", productID, resellerID).
		First(&product).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Product not found.")
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

	url, err := h.uploader.UploadImage(c.Request.Context(), file, "products")
	if err != nil {
		httperr.Internal(c, "upload_failed", "Failed to store the image.")
		return
	}

	if err := h.db.Model(&product).Update("image_url", url).Error; err != nil {
		httperr.Internal(c, "failed_to_update_product", "Failed to save the image URL.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"image_url": url})
}
