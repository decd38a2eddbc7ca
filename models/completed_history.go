package models

import "time"

// Item types recorded in the completed history log.
const (
	ItemTypePM        = "PM"
	ItemTypeWorkOrder = "WorkOrder"
)

// CompletedHistoryEntry is the archival record written when a PM or work
// order is marked complete. The log is append-only; entries are never
// updated or deleted.
type CompletedHistoryEntry struct {
	ID            uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	ItemType      string    `gorm:"type:varchar(20);not null;index" json:"item_type"`
	ItemID        uint      `gorm:"not null" json:"item_id"`
	AssetID       uint      `gorm:"not null" json:"asset_id"`
	Description   string    `gorm:"type:varchar(255)" json:"description"`
	CompletedDate time.Time `gorm:"not null;index" json:"completed_date"`
}

func (CompletedHistoryEntry) TableName() string {
	return "completed_history"
}
