package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mfgops/tpm-tracker/controllers"
	"github.com/mfgops/tpm-tracker/middlewares"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(50, 1).RateLimit())

	userCtrl := controllers.NewUserController(db)
	assetCtrl := controllers.NewAssetController(db)
	pmCtrl := controllers.NewPMController(db)
	workOrderCtrl := controllers.NewWorkOrderController(db)
	checkCtrl := controllers.NewOperatorCheckController(db)
	breakdownCtrl := controllers.NewBreakdownController(db)
	historyCtrl := controllers.NewHistoryController(db)
	dashboardCtrl := controllers.NewDashboardController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", userCtrl.Register)
		public.POST("/login", userCtrl.Login)
	}

	// Read-only views need no login; the shop floor displays these.
	r.GET("/assets", assetCtrl.GetAllAssets)
	r.GET("/pms", pmCtrl.GetAllPMs)
	r.GET("/work-orders", workOrderCtrl.GetAllWorkOrders)
	r.GET("/operator-checks", checkCtrl.GetAllOperatorChecks)
	r.GET("/breakdowns", breakdownCtrl.GetAllBreakdowns)
	r.GET("/history", historyCtrl.GetHistory)
	r.GET("/dashboard", dashboardCtrl.GetOverview)

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/admin")
	auth.Use(middlewares.AuthMiddleware())

	auth.GET("/profile", userCtrl.GetProfile)
	auth.GET("/users", userCtrl.GetAllUsers)

	// ASSETS
	auth.POST("/assets", assetCtrl.CreateAsset)
	auth.DELETE("/assets/:asset_id", assetCtrl.DeleteAsset)

	// PMS
	auth.POST("/pms", pmCtrl.CreatePM)
	auth.DELETE("/pms/:pm_id", pmCtrl.DeletePM)
	auth.POST("/pms/:pm_id/complete", pmCtrl.CompletePM)

	// WORK ORDERS
	auth.POST("/work-orders", workOrderCtrl.CreateWorkOrder)
	auth.DELETE("/work-orders/:order_id", workOrderCtrl.DeleteWorkOrder)
	auth.POST("/work-orders/:order_id/complete", workOrderCtrl.CompleteWorkOrder)

	// OPERATOR CHECKS
	auth.POST("/operator-checks", checkCtrl.CreateOperatorCheck)
	auth.DELETE("/operator-checks/:check_id", checkCtrl.DeleteOperatorCheck)

	// BREAKDOWNS
	auth.POST("/breakdowns", breakdownCtrl.CreateBreakdown)
	auth.DELETE("/breakdowns/:breakdown_id", breakdownCtrl.DeleteBreakdown)

	// DASHBOARD (admin stats)
	auth.GET("/dashboard/stats", dashboardCtrl.GetDashboardStats)

	return r
}
