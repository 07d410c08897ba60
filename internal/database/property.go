package database

import (
	"property-api/internal/models"

	"gorm.io/gorm"
)

// PaginateProperties retrieves one page of properties in creation order,
// each with its rooms, along with the total row count.
func (gdb *GormDB) PaginateProperties(page, perPage int) ([]models.Property, int64, error) {
	var total int64
	if err := gdb.db.Model(&models.Property{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var properties []models.Property
	err := gdb.db.Preload("Rooms").
		Order("id ASC").
		Offset((page - 1) * perPage).
		Limit(perPage).
		Find(&properties).Error
	if err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}

// FirstOrCreateProperty returns the existing property whose attributes all
// match p, creating it when no such row exists.
func (gdb *GormDB) FirstOrCreateProperty(p *models.Property) error {
	cond := models.Property{Name: p.Name, Address: p.Address}
	return firstOrCreate(gdb.db, cond, p)
}

// GetPropertyByID retrieves a property and its rooms by ID
func (gdb *GormDB) GetPropertyByID(id uint) (*models.Property, error) {
	var property models.Property
	err := gdb.db.Preload("Rooms").First(&property, id).Error
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// UpdateProperty overwrites the named fields of an existing property
func (gdb *GormDB) UpdateProperty(id uint, attrs map[string]interface{}) (*models.Property, error) {
	var property models.Property
	if err := gdb.db.First(&property, id).Error; err != nil {
		return nil, err
	}
	if err := gdb.db.Model(&property).Updates(attrs).Error; err != nil {
		return nil, err
	}
	return &property, nil
}

// DeletePropertyWithRooms removes a property and its rooms in one unit of
// work. Rooms go first so a failure leaves no orphans behind.
func (gdb *GormDB) DeletePropertyWithRooms(id uint) error {
	return gdb.db.Transaction(func(tx *gorm.DB) error {
		var property models.Property
		if err := tx.First(&property, id).Error; err != nil {
			return err
		}
		if err := tx.Where("property_id = ?", id).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		return tx.Delete(&property).Error
	})
}
