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

type WorkOrderController struct {
	DB         *gorm.DB
	Completion *services.CompletionService
}

func NewWorkOrderController(db *gorm.DB) *WorkOrderController {
	return &WorkOrderController{
		DB:         db,
		Completion: services.NewCompletionService(db),
	}
}

type workOrderView struct {
	models.WorkOrder
	Status string `json:"status"`
}

func annotateWorkOrders(orders []models.WorkOrder, today time.Time) []workOrderView {
	views := make([]workOrderView, 0, len(orders))
	for _, wo := range orders {
		views = append(views, workOrderView{
			WorkOrder: wo,
			Status:    services.ClassifyDueDate(&wo.DueDate, today),
		})
	}
	return views
}

// CreateWorkOrder raises a work order. Frequency is optional: a recurring
// order gets its due date from the recurrence calculator, a one-off is due
// the day it was raised (the calculator falls through to "now" for an
// empty label).
func (wc *WorkOrderController) CreateWorkOrder(c *gin.Context) {
	type reqBody struct {
		OrderID     string `json:"order_id" binding:"required"`
		AssetID     string `json:"asset_id" binding:"required"`
		Description string `json:"description"`
		Frequency   string `json:"frequency"`
	}
	var body reqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	id, err := utils.ParseID(body.OrderID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}
	assetID, err := utils.ParseID(body.AssetID)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.WorkOrder
	if err := wc.DB.First(&existing, id).Error; err == nil {
		utils.RespondError(c, http.StatusConflict, errors.New("order id already exists"))
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	wo := models.WorkOrder{
		OrderID:     id,
		AssetID:     assetID,
		Description: body.Description,
		Frequency:   body.Frequency,
		DueDate:     services.NextDueDate(body.Frequency, time.Now()),
	}
	if err := wc.DB.Create(&wo).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Work order created", wo)
}

// GetAllWorkOrders lists every active work order with its due status.
func (wc *WorkOrderController) GetAllWorkOrders(c *gin.Context) {
	var orders []models.WorkOrder
	if err := wc.DB.Order("order_id").Find(&orders).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "List of work orders", annotateWorkOrders(orders, time.Now()))
}

// DeleteWorkOrder removes a work order without archiving it.
func (wc *WorkOrderController) DeleteWorkOrder(c *gin.Context) {
	id, err := utils.ParseID(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := wc.DB.Delete(&models.WorkOrder{}, id).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Work order deleted", gin.H{"order_id": id})
}

// CompleteWorkOrder archives a work order into completed history.
func (wc *WorkOrderController) CompleteWorkOrder(c *gin.Context) {
	id, err := utils.ParseID(c.Param("order_id"))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	entry, err := wc.Completion.CompleteWorkOrder(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondError(c, http.StatusNotFound, errors.New("work order not found"))
			return
		}
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Work order completed", entry)
}
