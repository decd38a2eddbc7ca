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

type DashboardController struct {
	DB *gorm.DB
}

func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

type storeStats struct {
	Total    int64 `json:"total"`
	Overdue  int64 `json:"overdue"`
	DueToday int64 `json:"due_today"`
}

// GetOverview returns every maintenance store annotated with due status,
// the JSON counterpart of the dashboard page.
func (dc *DashboardController) GetOverview(c *gin.Context) {
	today := time.Now()

	var pms []models.PM
	if err := dc.DB.Order("pm_id").Find(&pms).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	var orders []models.WorkOrder
	if err := dc.DB.Order("order_id").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	var checks []models.OperatorCheck
	if err := dc.DB.Order("check_id").Find(&checks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	var breakdowns []models.Breakdown
	if err := dc.DB.Order("breakdown_id").Find(&breakdowns).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard overview", gin.H{
		"pms":             annotatePMs(pms, today),
		"work_orders":     annotateWorkOrders(orders, today),
		"operator_checks": annotateOperatorChecks(checks, today),
		"breakdowns":      annotateBreakdowns(breakdowns, today),
	})
}

// GetDashboardStats returns aggregate counts for the admin dashboard.
func (dc *DashboardController) GetDashboardStats(c *gin.Context) {
	roleInterface, exists := c.Get("role")
	if !exists {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("no role found"))
		return
	}
	if role, ok := roleInterface.(string); !ok || role != "admin" {
		utils.RespondError(c, http.StatusForbidden, ErrNoPermission)
		return
	}

	today := time.Now()

	var stats struct {
		TotalAssets    int64      `json:"total_assets"`
		PMs            storeStats `json:"pms"`
		WorkOrders     storeStats `json:"work_orders"`
		OperatorChecks storeStats `json:"operator_checks"`
		Breakdowns     storeStats `json:"breakdowns"`
		TotalCompleted int64      `json:"total_completed"`
	}

	if err := dc.DB.Model(&models.Asset{}).Count(&stats.TotalAssets).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	if err := dc.DB.Model(&models.CompletedHistoryEntry{}).Count(&stats.TotalCompleted).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	// Status counting goes through the classifier rather than SQL date
	// comparison so sqlite and mysql agree with the list views.
	var pms []models.PM
	if err := dc.DB.Find(&pms).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for _, pm := range pms {
		tally(&stats.PMs, services.ClassifyDueDate(&pm.DueDate, today))
	}

	var orders []models.WorkOrder
	if err := dc.DB.Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for _, wo := range orders {
		tally(&stats.WorkOrders, services.ClassifyDueDate(&wo.DueDate, today))
	}

	var checks []models.OperatorCheck
	if err := dc.DB.Find(&checks).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for _, oc := range checks {
		tally(&stats.OperatorChecks, services.ClassifyDueDate(oc.DueDate, today))
	}

	var breakdowns []models.Breakdown
	if err := dc.DB.Find(&breakdowns).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	for _, bd := range breakdowns {
		tally(&stats.Breakdowns, services.ClassifyDueDate(bd.DueDate, today))
	}

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", stats)
}

func tally(s *storeStats, status string) {
	s.Total++
	switch status {
	case services.StatusOverdue:
		s.Overdue++
	case services.StatusDueToday:
		s.DueToday++
	}
}
