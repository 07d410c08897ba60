package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"property-api/internal/models"
	"property-api/internal/resources"
	"property-api/internal/response"
	"property-api/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// PropertyStore is the persistence surface the property handlers need.
type PropertyStore interface {
	PaginateProperties(page, perPage int) ([]models.Property, int64, error)
	FirstOrCreateProperty(p *models.Property) error
	GetPropertyByID(id uint) (*models.Property, error)
	UpdateProperty(id uint, attrs map[string]interface{}) (*models.Property, error)
	DeletePropertyWithRooms(id uint) error
}

// PropertyHandler handles property CRUD requests
type PropertyHandler struct {
	store   PropertyStore
	perPage int
	logger  *zap.Logger
}

// NewPropertyHandler creates a new property handler
func NewPropertyHandler(store PropertyStore, perPage int, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{
		store:   store,
		perPage: perPage,
		logger:  logger,
	}
}

// List returns properties in creation order, paginated, each with its rooms.
func (h *PropertyHandler) List(c *gin.Context) {
	page := positiveQueryInt(c, "page", 1)
	perPage := positiveQueryInt(c, "per_page", h.perPage)

	properties, total, err := h.store.PaginateProperties(page, perPage)
	if err != nil {
		h.logger.Error("failed to list properties", zap.Error(err))
		response.Message(c, "Error retrieving properties", http.StatusInternalServerError)
		return
	}

	collection := resources.NewPropertyCollection(
		properties,
		response.NewPagination(c, total, len(properties), perPage, page),
	)
	response.JSON(c, "Properties retrieved", collection, http.StatusOK)
}

// Create validates the payload and stores the property. A payload that
// exactly matches an existing row returns that row instead of a duplicate.
func (h *PropertyHandler) Create(c *gin.Context) {
	var req validation.StorePropertyRequest
	// Malformed and empty bodies fall through to field validation
	_ = c.ShouldBindJSON(&req)

	if errs := validation.Validate(req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	property := models.Property{Name: *req.Name, Address: *req.Address}
	if err := h.store.FirstOrCreateProperty(&property); err != nil {
		h.logger.Error("failed to create property", zap.Error(err))
		response.Internal(c, err)
		return
	}

	response.JSON(c, "Property created", resources.NewPropertyResource(property), http.StatusCreated)
}

// Get returns one property by id.
func (h *PropertyHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.NotFound(c)
		return
	}

	property, err := h.store.GetPropertyByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		h.logger.Error("failed to get property", zap.Uint("id", id), zap.Error(err))
		response.Internal(c, err)
		return
	}

	response.JSON(c, "Property retrieved", resources.NewPropertyResource(*property), http.StatusOK)
}

// Update overwrites the named fields of an existing property. Existence is
// checked before the payload so an unknown id is a 404 even with a bad body.
func (h *PropertyHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.NotFound(c)
		return
	}

	if _, err := h.store.GetPropertyByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		h.logger.Error("failed to get property", zap.Uint("id", id), zap.Error(err))
		response.Internal(c, err)
		return
	}

	var req validation.UpdatePropertyRequest
	_ = c.ShouldBindJSON(&req)

	if errs := validation.Validate(req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	property, err := h.store.UpdateProperty(id, map[string]interface{}{
		"name":    *req.Name,
		"address": *req.Address,
	})
	if err != nil {
		h.logger.Error("failed to update property", zap.Uint("id", id), zap.Error(err))
		response.Internal(c, err)
		return
	}

	response.JSON(c, "Property updated", resources.NewPropertyResource(*property), http.StatusOK)
}

// Delete removes a property and all of its rooms.
func (h *PropertyHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.NotFound(c)
		return
	}

	if err := h.store.DeletePropertyWithRooms(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		h.logger.Error("failed to delete property", zap.Uint("id", id), zap.Error(err))
		response.Internal(c, err)
		return
	}

	response.Message(c, "Property deleted", http.StatusOK)
}

// pathID parses a numeric id path parameter. Non-numeric ids behave like
// ids that do not exist.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// positiveQueryInt parses a positive integer query parameter, falling back
// to the default on absence or garbage.
func positiveQueryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 1 {
		return fallback
	}
	return value
}
