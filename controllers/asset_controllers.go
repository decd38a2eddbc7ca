package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mfgops/tpm-tracker/models"
	"github.com/mfgops/tpm-tracker/utils"
	"gorm.io/gorm"
)

type AssetController struct {
	DB *gorm.DB
}

func NewAssetController(db *gorm.DB) *AssetController {
	return &AssetController{DB: db}
}

// CreateAsset registers a new piece of equipment. The asset id comes from
// the form, so it is validated as a positive integer and rejected when it
// already exists.
func (ac *AssetController) CreateAsset(c *gin.Context) {
	type reqBody struct {
		AssetID  string `json:"asset_id" binding:"required"`
		Name     string `json:"name" binding:"required"`
		Type     string `json:"type"`
		Location string `json:"location"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id, err := utils.ParseID(body.AssetID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.Asset
	if err := ac.DB.First(&existing, id).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("asset id already exists"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	asset := models.Asset{
		AssetID:  id,
		Name:     body.Name,
		Type:     body.Type,
		Location: body.Location,
	}
	if err := ac.DB.Create(&asset).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Asset %d registered: %s", asset.AssetID, asset.Name)
	utils.RespondJSON(c, http.StatusCreated, "Asset created", asset)
}

// GetAllAssets lists every asset ordered by id. The list also feeds the
// asset selection control on the maintenance forms.
func (ac *AssetController) GetAllAssets(c *gin.Context) {
	var assets []models.Asset
	if err := ac.DB.Order("asset_id").Find(&assets).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of assets", assets)
}

// DeleteAsset removes an asset. Deleting an unknown id is a no-op.
func (ac *AssetController) DeleteAsset(c *gin.Context) {
	id, err := utils.ParseID(c.Param("asset_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := ac.DB.Delete(&models.Asset{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Asset deleted", gin.H{"asset_id": id})
}
