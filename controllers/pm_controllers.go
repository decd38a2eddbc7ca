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

type PMController struct {
	DB         *gorm.DB
	Completion *services.CompletionService
}

func NewPMController(db *gorm.DB) *PMController {
	return &PMController{
		DB:         db,
		Completion: services.NewCompletionService(db),
	}
}

// pmView is a PM row annotated with its computed due status for display.
type pmView struct {
	models.PM
	Status string `json:"status"`
}

func annotatePMs(pms []models.PM, today time.Time) []pmView {
	views := make([]pmView, 0, len(pms))
	for _, pm := range pms {
		views = append(views, pmView{
			PM:     pm,
			Status: services.ClassifyDueDate(&pm.DueDate, today),
		})
	}
	return views
}

// CreatePM adds a preventive maintenance task. The due date is computed
// from the recurrence frequency counted from now. The asset reference is
// not verified against the registry (soft reference).
func (pc *PMController) CreatePM(c *gin.Context) {
	type reqBody struct {
		PMID        string `json:"pm_id" binding:"required"`
		AssetID     string `json:"asset_id" binding:"required"`
		Description string `json:"description"`
		Frequency   string `json:"frequency" binding:"required"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id, err := utils.ParseID(body.PMID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	assetID, err := utils.ParseID(body.AssetID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.PM
	if err := pc.DB.First(&existing, id).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("pm id already exists"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	pm := models.PM{
		PMID:        id,
		AssetID:     assetID,
		Description: body.Description,
		Frequency:   body.Frequency,
		DueDate:     services.NextDueDate(body.Frequency, time.Now()),
	}
	if err := pc.DB.Create(&pm).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "PM created", pm)
}

// GetAllPMs lists every active PM with its due status.
func (pc *PMController) GetAllPMs(c *gin.Context) {
	var pms []models.PM
	if err := pc.DB.Order("pm_id").Find(&pms).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of PMs", annotatePMs(pms, time.Now()))
}

// DeletePM removes a PM without archiving it. Unknown ids are a no-op.
func (pc *PMController) DeletePM(c *gin.Context) {
	id, err := utils.ParseID(c.Param("pm_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := pc.DB.Delete(&models.PM{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "PM deleted", gin.H{"pm_id": id})
}

// CompletePM marks a PM done: removed from the active table and logged to
// completed history in a single transaction.
func (pc *PMController) CompletePM(c *gin.Context) {
	id, err := utils.ParseID(c.Param("pm_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry, err := pc.Completion.CompletePM(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("pm not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "PM completed", entry)
}
