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

type OperatorCheckController struct {
	DB *gorm.DB
}

func NewOperatorCheckController(db *gorm.DB) *OperatorCheckController {
	return &OperatorCheckController{DB: db}
}

type operatorCheckView struct {
	models.OperatorCheck
	Status string `json:"status"`
}

func annotateOperatorChecks(checks []models.OperatorCheck, today time.Time) []operatorCheckView {
	views := make([]operatorCheckView, 0, len(checks))
	for _, oc := range checks {
		views = append(views, operatorCheckView{
			OperatorCheck: oc,
			Status:        services.ClassifyDueDate(oc.DueDate, today),
		})
	}
	return views
}

// CreateOperatorCheck logs a routine inspection. The due date is optional
// (YYYY-MM-DD); when omitted the check is due today.
func (occ *OperatorCheckController) CreateOperatorCheck(c *gin.Context) {
	type reqBody struct {
		CheckID     string `json:"check_id" binding:"required"`
		AssetID     string `json:"asset_id" binding:"required"`
		Description string `json:"description"`
		DueDate     string `json:"due_date"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id, err := utils.ParseID(body.CheckID)
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

	var existing models.OperatorCheck
	if err := occ.DB.First(&existing, id).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("check id already exists"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	check := models.OperatorCheck{
		CheckID:     id,
		AssetID:     assetID,
		Description: body.Description,
		DueDate:     due,
	}
	if err := occ.DB.Create(&check).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Operator check created", check)
}

// GetAllOperatorChecks lists every check with its due status.
func (occ *OperatorCheckController) GetAllOperatorChecks(c *gin.Context) {
	var checks []models.OperatorCheck
	if err := occ.DB.Order("check_id").Find(&checks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of operator checks", annotateOperatorChecks(checks, time.Now()))
}

// DeleteOperatorCheck removes a check. Unknown ids are a no-op.
func (occ *OperatorCheckController) DeleteOperatorCheck(c *gin.Context) {
	id, err := utils.ParseID(c.Param("check_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := occ.DB.Delete(&models.OperatorCheck{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Operator check deleted", gin.H{"check_id": id})
}

// parseDueDate turns an optional form date into a due timestamp, defaulting
// to today when the field is left empty.
func parseDueDate(s string) (*time.Time, error) {
	if s == "" {
		now := time.Now()
		return &now, nil
	}
	due, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return nil, errors.New("due_date must be YYYY-MM-DD")
	}
	return &due, nil
}
