package resources

import (
	"time"

	"property-api/internal/models"
	"property-api/internal/response"
)

// PropertyResource is the API shape of a property with its rooms.
type PropertyResource struct {
	ID        uint           `json:"id"`
	Name      string         `json:"name"`
	Address   string         `json:"address"`
	Rooms     []RoomResource `json:"rooms"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewPropertyResource formats a property for API responses.
func NewPropertyResource(property models.Property) PropertyResource {
	return PropertyResource{
		ID:        property.ID,
		Name:      property.Name,
		Address:   property.Address,
		Rooms:     NewRoomCollection(property.Rooms),
		CreatedAt: property.CreatedAt,
		UpdatedAt: property.UpdatedAt,
	}
}

// PropertyCollection wraps one page of properties with its pagination
// metadata.
type PropertyCollection struct {
	Properties []PropertyResource  `json:"properties"`
	Pagination response.Pagination `json:"pagination"`
}

// NewPropertyCollection formats a page of properties.
func NewPropertyCollection(properties []models.Property, pagination response.Pagination) PropertyCollection {
	out := make([]PropertyResource, 0, len(properties))
	for _, property := range properties {
		out = append(out, NewPropertyResource(property))
	}
	return PropertyCollection{Properties: out, Pagination: pagination}
}
