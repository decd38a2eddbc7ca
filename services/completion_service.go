package services

import (
	"time"

	"github.com/mfgops/tpm-tracker/models"
	"github.com/mfgops/tpm-tracker/utils"
	"gorm.io/gorm"
)

// CompletionService moves a PM or work order out of its active table and
// into the completed history log. The transition is terminal: completed
// items only exist as history entries afterwards.
type CompletionService struct {
	DB *gorm.DB
}

func NewCompletionService(db *gorm.DB) *CompletionService {
	return &CompletionService{DB: db}
}

// CompletePM archives PM `id`. Delete and history insert run in one
// transaction so the item can never be lost without a history record.
// Returns gorm.ErrRecordNotFound when no such PM is active.
func (cs *CompletionService) CompletePM(id uint) (*models.CompletedHistoryEntry, error) {
	var entry *models.CompletedHistoryEntry

	tx := cs.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var pm models.PM
	if err := tx.First(&pm, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Delete(&models.PM{}, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	entry = &models.CompletedHistoryEntry{
		ItemType:      models.ItemTypePM,
		ItemID:        pm.PMID,
		AssetID:       pm.AssetID,
		Description:   pm.Description,
		CompletedDate: time.Now(),
	}
	if err := tx.Create(entry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("PM %d completed and archived (asset %d)", pm.PMID, pm.AssetID)
	return entry, nil
}

// CompleteWorkOrder archives work order `id`, same contract as CompletePM.
func (cs *CompletionService) CompleteWorkOrder(id uint) (*models.CompletedHistoryEntry, error) {
	var entry *models.CompletedHistoryEntry

	tx := cs.DB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var wo models.WorkOrder
	if err := tx.First(&wo, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Delete(&models.WorkOrder{}, id).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	entry = &models.CompletedHistoryEntry{
		ItemType:      models.ItemTypeWorkOrder,
		ItemID:        wo.OrderID,
		AssetID:       wo.AssetID,
		Description:   wo.Description,
		CompletedDate: time.Now(),
	}
	if err := tx.Create(entry).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Work order %d completed and archived (asset %d)", wo.OrderID, wo.AssetID)
	return entry, nil
}

// History returns the full completed log, newest first.
func (cs *CompletionService) History() ([]models.CompletedHistoryEntry, error) {
	var entries []models.CompletedHistoryEntry
	if err := cs.DB.Order("completed_date desc, id desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
