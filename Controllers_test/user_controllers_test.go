package Controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/mfgops/tpm-tracker/controllers"
	"github.com/mfgops/tpm-tracker/models"
	"github.com/mfgops/tpm-tracker/utils"
)

func setupTestDBForUsers() *gorm.DB {
	db, err := gorm.Open(sqlite.Open("file:user_ctrl_test?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		panic(err)
	}
	return db
}

func setupUserRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.Default()
	userCtrl := controllers.NewUserController(db)
	router.POST("/register", userCtrl.Register)
	router.POST("/login", userCtrl.Login)
	return router
}

func TestRegisterAndLogin(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers()
	router := setupUserRouter(db)

	w := postJSON(t, router, "/register", map[string]string{
		"name":     "Maintenance Lead",
		"email":    "lead@example.com",
		"password": "secret123",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, router, "/login", map[string]string{
		"email":    "lead@example.com",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	data := response["data"].(map[string]interface{})
	assert.NotEmpty(t, data["token"])
	assert.Equal(t, "admin", data["user_role"])
}

func TestLoginWrongPassword(t *testing.T) {
	utils.InitLogger()
	db := setupTestDBForUsers()
	router := setupUserRouter(db)

	postJSON(t, router, "/register", map[string]string{
		"name":     "Tech",
		"email":    "tech@example.com",
		"password": "rightpass",
		"role":     "technician",
	})

	w := postJSON(t, router, "/login", map[string]string{
		"email":    "tech@example.com",
		"password": "wrongpass",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
