package Controllers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mfgops/tpm-tracker/controllers"
	"github.com/mfgops/tpm-tracker/models"
	"github.com/mfgops/tpm-tracker/services"
	"github.com/mfgops/tpm-tracker/utils"
)

func setupTestDBForWorkOrders() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:wo_ctrl_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.WorkOrder{}, &models.CompletedHistoryEntry{}); err != nil {
		panic(err)
	}
	return db
}

func setupWorkOrderRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	woCtrl := controllers.NewWorkOrderController(db)
	historyCtrl := controllers.NewHistoryController(db)
	router.POST("/work-orders", woCtrl.CreateWorkOrder)
	router.GET("/work-orders", woCtrl.GetAllWorkOrders)
	router.DELETE("/work-orders/:order_id", woCtrl.DeleteWorkOrder)
	router.POST("/work-orders/:order_id/complete", woCtrl.CompleteWorkOrder)
	router.GET("/history", historyCtrl.GetHistory)
	return router
}

func TestCreateWorkOrderWithoutFrequencyDueToday(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForWorkOrders()
	router := setupWorkOrderRouter(db)

	w := postJSON(t, router, "/work-orders", map[string]string{
		"order_id":    "1",
		"asset_id":    "4",
		"description": "Repair conveyor guard",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	code, response := getJSON(t, router, "/work-orders")
	assert.Equal(t, http.StatusOK, code)

	var found map[string]interface{}
	for _, item := range response["data"].([]interface{}) {
		row := item.(map[string]interface{})
		if row["order_id"] == float64(1) {
			found = row
			break
		}
	}
	assert.NotNil(t, found)
	assert.Equal(t, services.StatusDueToday, found["status"])
}

func TestCreateWorkOrderDuplicateRejected(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForWorkOrders()
	router := setupWorkOrderRouter(db)

	payload := map[string]string{
		"order_id":    "9",
		"asset_id":    "4",
		"description": "Weld bracket",
		"frequency":   "7days",
	}
	w := postJSON(t, router, "/work-orders", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/work-orders", payload)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCompleteWorkOrderMovesItemToHistory(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForWorkOrders()
	router := setupWorkOrderRouter(db)

	postJSON(t, router, "/work-orders", map[string]string{
		"order_id":    "15",
		"asset_id":    "2",
		"description": "Replace seal",
	})

	req, err := http.NewRequest("POST", "/work-orders/15/complete", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var completeResp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &completeResp))
	entry := completeResp["data"].(map[string]interface{})
	assert.Equal(t, models.ItemTypeWorkOrder, entry["item_type"])
	assert.Equal(t, float64(15), entry["item_id"])

	var count int64
	db.Model(&models.WorkOrder{}).Where("order_id = ?", 15).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCompleteWorkOrderNotFound(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForWorkOrders()
	router := setupWorkOrderRouter(db)

	req, err := http.NewRequest("POST", "/work-orders/777/complete", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteWorkOrderMissingIsNoop(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForWorkOrders()
	router := setupWorkOrderRouter(db)

	var before int64
	db.Model(&models.WorkOrder{}).Count(&before)

	req, err := http.NewRequest("DELETE", "/work-orders/555", nil)
	assert.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	var after int64
	db.Model(&models.WorkOrder{}).Count(&after)
	assert.Equal(t, before, after)
}
