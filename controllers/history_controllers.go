package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mfgops/tpm-tracker/services"
	"github.com/mfgops/tpm-tracker/utils"
	"gorm.io/gorm"
)

type HistoryController struct {
	Completion *services.CompletionService
}

func NewHistoryController(db *gorm.DB) *HistoryController {
	return &HistoryController{Completion: services.NewCompletionService(db)}
}

// GetHistory returns the completed log, newest first.
func (hc *HistoryController) GetHistory(c *gin.Context) {
	entries, err := hc.Completion.History()
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Completed history", entries)
}
