package models

import "time"

// Property is a top-level resource owning zero or more rooms.
type Property struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"type:varchar(100);not null" json:"name"`
	Address string `gorm:"type:text;not null" json:"address"`

	Rooms []Room `gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE" json:"rooms"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// TableName sets the table name explicitly
func (Property) TableName() string {
	return "properties"
}
