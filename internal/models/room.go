package models

import "time"

// Room belongs to exactly one property and carries a measured size.
type Room struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	PropertyID uint     `gorm:"not null;index" json:"property_id"`
	Name       string   `gorm:"type:varchar(100);not null" json:"name"`
	Size       int      `gorm:"not null" json:"size"`
	SizeUnit   SizeUnit `gorm:"type:varchar(10);not null" json:"size_unit"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name explicitly
func (Room) TableName() string {
	return "rooms"
}
