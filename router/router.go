package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"barbersystem-backend/controllers"
	"barbersystem-backend/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// 50 requests per second per IP across the whole surface. Must be
	// attached before any route is registered or gin never runs it.
	rateLimiter := middlewares.NewRateLimiter(50, 1)
	r.Use(rateLimiter.RateLimit())

	kioskCtrl := controllers.NewKioskController(db)
	queueCtrl := controllers.NewQueueController(db)
	planCtrl := controllers.NewPlanController(db)
	financeCtrl := controllers.NewFinanceController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// ----------------------------------------------------------------
	//                      KIOSK (waiting room tablet)
	// ----------------------------------------------------------------
	kiosk := r.Group("/")
	kiosk.Use(middlewares.NewKioskRateLimiter())
	{
		kiosk.POST("/checkin", kioskCtrl.CheckIn)
	}

	// ----------------------------------------------------------------
	//                      ADMIN (barber's screen)
	// ----------------------------------------------------------------
	r.GET("/queue", queueCtrl.GetQueue)
	r.PATCH("/queue/:visit_id/depart", queueCtrl.MarkDeparted)
	r.PATCH("/queue/:visit_id/pay", queueCtrl.MarkPaid)

	r.POST("/plans", planCtrl.CreatePlan)
	r.GET("/plans", planCtrl.GetAllPlans)
	r.DELETE("/plans/:plan_id", planCtrl.DeletePlan)

	r.GET("/finance/summary", financeCtrl.GetSummary)
	r.GET("/finance/ledger", financeCtrl.GetLedger)

	return r
}
