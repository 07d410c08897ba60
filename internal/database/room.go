package database

import (
	"property-api/internal/models"
)

// GetRoomsByPropertyID retrieves all rooms for a property id. An unknown
// property yields an empty list, not an error.
func (gdb *GormDB) GetRoomsByPropertyID(propertyID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := gdb.db.Where("property_id = ?", propertyID).Order("id ASC").Find(&rooms).Error
	return rooms, err
}

// FirstOrCreateRoom returns the existing room whose attributes all match r,
// creating it when no such row exists.
func (gdb *GormDB) FirstOrCreateRoom(r *models.Room) error {
	cond := models.Room{
		PropertyID: r.PropertyID,
		Name:       r.Name,
		Size:       r.Size,
		SizeUnit:   r.SizeUnit,
	}
	return firstOrCreate(gdb.db, cond, r)
}

// GetRoomByID retrieves a room by ID
func (gdb *GormDB) GetRoomByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := gdb.db.First(&room, id).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// UpdateRoom overwrites the named fields of an existing room, including
// re-parenting via property_id.
func (gdb *GormDB) UpdateRoom(id uint, attrs map[string]interface{}) (*models.Room, error) {
	var room models.Room
	if err := gdb.db.First(&room, id).Error; err != nil {
		return nil, err
	}
	if err := gdb.db.Model(&room).Updates(attrs).Error; err != nil {
		return nil, err
	}
	return &room, nil
}

// DeleteRoom removes a single room. The parent property is untouched.
func (gdb *GormDB) DeleteRoom(id uint) error {
	var room models.Room
	if err := gdb.db.First(&room, id).Error; err != nil {
		return err
	}
	return gdb.db.Delete(&room).Error
}
