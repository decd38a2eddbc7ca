package Controllers_test

import (
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

func setupTestDBForOperatorChecks() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:oc_ctrl_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.OperatorCheck{}); err != nil {
		panic(err)
	}
	return db
}

func setupOperatorCheckRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	checkCtrl := controllers.NewOperatorCheckController(db)
	router.POST("/operator-checks", checkCtrl.CreateOperatorCheck)
	router.GET("/operator-checks", checkCtrl.GetAllOperatorChecks)
	router.DELETE("/operator-checks/:check_id", checkCtrl.DeleteOperatorCheck)
	return router
}

func findRow(response map[string]interface{}, key string, id float64) map[string]interface{} {
	for _, item := range response["data"].([]interface{}) {
		row := item.(map[string]interface{})
		if row[key] == id {
			return row
		}
	}
	return nil
}

func TestCreateOperatorCheckWithExplicitDueDate(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOperatorChecks()
	router := setupOperatorCheckRouter(db)

	w := postJSON(t, router, "/operator-checks", map[string]string{
		"check_id":    "1",
		"asset_id":    "2",
		"description": "Daily oil level check",
		"due_date":    "2099-01-01",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	code, response := getJSON(t, router, "/operator-checks")
	assert.Equal(t, http.StatusOK, code)

	row := findRow(response, "check_id", 1)
	assert.NotNil(t, row)
	assert.Equal(t, services.StatusUpcoming, row["status"])
}

func TestCreateOperatorCheckDefaultsDueToday(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOperatorChecks()
	router := setupOperatorCheckRouter(db)

	w := postJSON(t, router, "/operator-checks", map[string]string{
		"check_id":    "2",
		"asset_id":    "2",
		"description": "Guard inspection",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	_, response := getJSON(t, router, "/operator-checks")
	row := findRow(response, "check_id", 2)
	assert.NotNil(t, row)
	assert.Equal(t, services.StatusDueToday, row["status"])
}

func TestCreateOperatorCheckRejectsBadDate(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOperatorChecks()
	router := setupOperatorCheckRouter(db)

	w := postJSON(t, router, "/operator-checks", map[string]string{
		"check_id":    "3",
		"asset_id":    "2",
		"description": "Noise check",
		"due_date":    "01/02/2030",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateOperatorCheckDuplicateRejected(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOperatorChecks()
	router := setupOperatorCheckRouter(db)

	payload := map[string]string{
		"check_id":    "8",
		"asset_id":    "2",
		"description": "Belt tension check",
	}
	w := postJSON(t, router, "/operator-checks", payload)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/operator-checks", payload)
	assert.Equal(t, http.StatusConflict, w.Code)

	var count int64
	db.Model(&models.OperatorCheck{}).Where("check_id = ?", 8).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestDeleteOperatorCheck(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForOperatorChecks()
	router := setupOperatorCheckRouter(db)

	w := postJSON(t, router, "/operator-checks", map[string]string{
		"check_id":    "4",
		"asset_id":    "1",
		"description": "Vibration check",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	req, err := http.NewRequest("DELETE", "/operator-checks/4", nil)
	assert.NoError(t, err)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	_, response := getJSON(t, router, "/operator-checks")
	assert.Nil(t, findRow(response, "check_id", 4))
}
