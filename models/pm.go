package models

import "time"

// PM is a recurring preventive maintenance task on an asset.
// AssetID is a soft reference; it is not enforced as a foreign key.
type PM struct {
	PMID        uint      `gorm:"primaryKey" json:"pm_id"`
	AssetID     uint      `gorm:"not null;index" json:"asset_id"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	Frequency   string    `gorm:"type:varchar(20);not null" json:"frequency"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (PM) TableName() string {
	return "pms"
}
