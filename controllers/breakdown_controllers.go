package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mfgops/tpm-tracker/models"
	"github.com/mfgops/tpm-tracker/services"
	"github.com/mfgops/tpm-tracker/utils"
	"gorm.io/gorm"
)

type BreakdownController struct {
	DB *gorm.DB
}

func NewBreakdownController(db *gorm.DB) *BreakdownController {
	return &BreakdownController{DB: db}
}

type breakdownView struct {
	models.Breakdown
	Status string `json:"status"`
}

func annotateBreakdowns(breakdowns []models.Breakdown, today time.Time) []breakdownView {
	views := make([]breakdownView, 0, len(breakdowns))
	for _, bd := range breakdowns {
		views = append(views, breakdownView{
			Breakdown: bd,
			Status:    services.ClassifyDueDate(bd.DueDate, today),
		})
	}
	return views
}

// CreateBreakdown records an unplanned failure. The due date (target fix
// date) is optional and defaults to today.
func (bc *BreakdownController) CreateBreakdown(c *gin.Context) {
	type reqBody struct {
		BreakdownID string `json:"breakdown_id" binding:"required"`
		AssetID     string `json:"asset_id" binding:"required"`
		Description string `json:"description"`
		DueDate     string `json:"due_date"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id, err := utils.ParseID(body.BreakdownID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	assetID, err := utils.ParseID(body.AssetID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	due, err := parseDueDate(body.DueDate)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.Breakdown
	if err := bc.DB.First(&existing, id).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("breakdown id already exists"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	breakdown := models.Breakdown{
		BreakdownID: id,
		AssetID:     assetID,
		Description: body.Description,
		DueDate:     due,
	}
	if err := bc.DB.Create(&breakdown).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Breakdown created", breakdown)
}

// GetAllBreakdowns lists every breakdown with its due status.
func (bc *BreakdownController) GetAllBreakdowns(c *gin.Context) {
	var breakdowns []models.Breakdown
	if err := bc.DB.Order("breakdown_id").Find(&breakdowns).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of breakdowns", annotateBreakdowns(breakdowns, time.Now()))
}

// DeleteBreakdown removes a breakdown record. Unknown ids are a no-op.
func (bc *BreakdownController) DeleteBreakdown(c *gin.Context) {
	id, err := utils.ParseID(c.Param("breakdown_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := bc.DB.Delete(&models.Breakdown{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Breakdown deleted", gin.H{"breakdown_id": id})
}
