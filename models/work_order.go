package models

import "time"

// WorkOrder is a one-off or recurring maintenance task. Frequency is
// optional; without one the order is due on the day it was raised.
type WorkOrder struct {
	OrderID     uint      `gorm:"primaryKey" json:"order_id"`
	AssetID     uint      `gorm:"not null;index" json:"asset_id"`
	Description string    `gorm:"type:varchar(255)" json:"description"`
	Frequency   string    `gorm:"type:varchar(20)" json:"frequency,omitempty"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`
	CreatedAt   time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time `gorm:"not null" json:"updated_at"`
}

func (WorkOrder) TableName() string {
	return "work_orders"
}
