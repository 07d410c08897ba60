package handlers

import (
	"errors"
	"net/http"

	"property-api/internal/models"
	"property-api/internal/resources"
	"property-api/internal/response"
	"property-api/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RoomStore is the persistence surface the room handlers need.
type RoomStore interface {
	GetRoomsByPropertyID(propertyID uint) ([]models.Room, error)
	FirstOrCreateRoom(r *models.Room) error
	GetRoomByID(id uint) (*models.Room, error)
	UpdateRoom(id uint, attrs map[string]interface{}) (*models.Room, error)
	DeleteRoom(id uint) error
}

// PropertyFinder resolves a room's parent property at write time.
type PropertyFinder interface {
	GetPropertyByID(id uint) (*models.Property, error)
}

// RoomHandler handles room CRUD requests
type RoomHandler struct {
	store      RoomStore
	properties PropertyFinder
	logger     *zap.Logger
}

// NewRoomHandler creates a new room handler
func NewRoomHandler(store RoomStore, properties PropertyFinder, logger *zap.Logger) *RoomHandler {
	return &RoomHandler{
		store:      store,
		properties: properties,
		logger:     logger,
	}
}

// List returns all rooms for a property id. An id with no property behind
// it yields an empty list, not a 404.
func (h *RoomHandler) List(c *gin.Context) {
	propertyID, ok := pathID(c, "property_id")
	if !ok {
		response.NotFound(c)
		return
	}

	rooms, err := h.store.GetRoomsByPropertyID(propertyID)
	if err != nil {
		h.logger.Error("failed to list rooms", zap.Uint("property_id", propertyID), zap.Error(err))
		response.Internal(c, err)
		return
	}

	response.JSON(c, "Rooms retrieved", resources.NewRoomCollection(rooms), http.StatusOK)
}

// Create validates the payload, resolves the parent property and stores
// the room with create-if-absent semantics.
func (h *RoomHandler) Create(c *gin.Context) {
	var req validation.StoreRoomRequest
	_ = c.ShouldBindJSON(&req)

	if errs := validation.Validate(req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	property, err := h.properties.GetPropertyByID(*req.PropertyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		h.logger.Error("failed to resolve property", zap.Uint("property_id", *req.PropertyID), zap.Error(err))
		response.Internal(c, err)
		return
	}

	room := models.Room{
		PropertyID: property.ID,
		Name:       *req.Name,
		Size:       *req.Size,
		SizeUnit:   models.SizeUnit(*req.SizeUnit),
	}
	if err := h.store.FirstOrCreateRoom(&room); err != nil {
		h.logger.Error("failed to create room", zap.Error(err))
		response.Internal(c, err)
		return
	}

	resource := resources.NewRoomResource(room).WithProperty(*property)
	response.JSON(c, "Room created", resource, http.StatusCreated)
}

// Update replaces all fields of an existing room. Moving the room to a
// different property via property_id is allowed.
func (h *RoomHandler) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.NotFound(c)
		return
	}

	if _, err := h.store.GetRoomByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		h.logger.Error("failed to get room", zap.Uint("id", id), zap.Error(err))
		response.Internal(c, err)
		return
	}

	var req validation.UpdateRoomRequest
	_ = c.ShouldBindJSON(&req)

	if errs := validation.Validate(req); errs != nil {
		response.ValidationFailed(c, errs)
		return
	}

	if _, err := h.properties.GetPropertyByID(*req.PropertyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		h.logger.Error("failed to resolve property", zap.Uint("property_id", *req.PropertyID), zap.Error(err))
		response.Internal(c, err)
		return
	}

	room, err := h.store.UpdateRoom(id, map[string]interface{}{
		"property_id": *req.PropertyID,
		"name":        *req.Name,
		"size":        *req.Size,
		"size_unit":   models.SizeUnit(*req.SizeUnit),
	})
	if err != nil {
		h.logger.Error("failed to update room", zap.Uint("id", id), zap.Error(err))
		response.Internal(c, err)
		return
	}

	response.JSON(c, "Room updated", resources.NewRoomResource(*room), http.StatusOK)
}

// Delete removes a single room.
func (h *RoomHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		response.NotFound(c)
		return
	}

	if err := h.store.DeleteRoom(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c)
			return
		}
		h.logger.Error("failed to delete room", zap.Uint("id", id), zap.Error(err))
		response.Internal(c, err)
		return
	}

	response.Message(c, "Room deleted", http.StatusOK)
}
