package models

import "time"

// Breakdown is an unplanned failure record against an asset.
type Breakdown struct {
	BreakdownID uint       `gorm:"primaryKey" json:"breakdown_id"`
	AssetID     uint       `gorm:"not null;index" json:"asset_id"`
	Description string     `gorm:"type:varchar(255)" json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

func (Breakdown) TableName() string {
	return "breakdowns"
}
