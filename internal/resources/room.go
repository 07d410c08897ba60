package resources

import (
	"fmt"

	"property-api/internal/models"
)

// RoomResource is the API shape of a room. HumanReadableSize is derived
// from the stored fields at serialization time and never persisted.
type RoomResource struct {
	ID                uint              `json:"id"`
	PropertyID        uint              `json:"property_id"`
	Name              string            `json:"name"`
	Size              int               `json:"size"`
	SizeUnit          models.SizeUnit   `json:"size_unit"`
	HumanReadableSize string            `json:"human_readable_size"`
	Property          *PropertyResource `json:"property,omitempty"`
}

// NewRoomResource formats a room for API responses.
func NewRoomResource(room models.Room) RoomResource {
	return RoomResource{
		ID:                room.ID,
		PropertyID:        room.PropertyID,
		Name:              room.Name,
		Size:              room.Size,
		SizeUnit:          room.SizeUnit,
		HumanReadableSize: HumanReadableSize(room),
	}
}

// WithProperty attaches the eagerly loaded parent property.
func (r RoomResource) WithProperty(property models.Property) RoomResource {
	resource := NewPropertyResource(property)
	r.Property = &resource
	return r
}

// NewRoomCollection formats a set of rooms. The result is never nil so an
// empty set serializes as [].
func NewRoomCollection(rooms []models.Room) []RoomResource {
	out := make([]RoomResource, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, NewRoomResource(room))
	}
	return out
}

// HumanReadableSize renders "{size} {size_unit}", e.g. "100 sqm".
func HumanReadableSize(room models.Room) string {
	return fmt.Sprintf("%d %s", room.Size, room.SizeUnit)
}
