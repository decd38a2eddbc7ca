package models

import "time"

// OperatorCheck is a routine inspection logged by an equipment operator.
type OperatorCheck struct {
	CheckID     uint       `gorm:"primaryKey" json:"check_id"`
	AssetID     uint       `gorm:"not null;index" json:"asset_id"`
	Description string     `gorm:"type:varchar(255)" json:"description"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

func (OperatorCheck) TableName() string {
	return "operator_checks"
}
