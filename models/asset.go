package models

import "time"

// Asset is a piece of physical equipment maintenance records hang off of.
// AssetID is user-supplied, not auto-generated.
type Asset struct {
	AssetID   uint      `gorm:"primaryKey" json:"asset_id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Type      string    `gorm:"type:varchar(100)" json:"type"`
	Location  string    `gorm:"type:varchar(255)" json:"location"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (Asset) TableName() string {
	return "assets"
}
