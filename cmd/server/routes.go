package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"campus-canteen.backend/internal/interfaces/http/handlers"
	"campus-canteen.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	walletHandler   *handlers.WalletHandler
	orderHandler    *handlers.OrderHandler
	wellnessHandler *handlers.WellnessHandler
	mealHandler     *handlers.MealHandler
	slotHandler     *handlers.TimeSlotHandler
	authMiddleware  gin.HandlerFunc
}

func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Idempotency-Key, X-Request-ID")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "campus-canteen-backend",
			"version": "0.1.0",
		})
	})
}

func registerMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

func registerAPIV1Routes(r *gin.Engine, deps routeDeps) {
	v1 := r.Group("/api/v1")

	// Public catalog routes
	v1.GET("/meals", deps.mealHandler.ListMeals)
	v1.GET("/meals/:id", deps.mealHandler.GetMeal)
	v1.GET("/time-slots", deps.slotHandler.ListTimeSlots)
	v1.GET("/time-slots/:id", deps.slotHandler.GetTimeSlot)

	authed := v1.Group("")
	authed.Use(deps.authMiddleware)

	wallet := authed.Group("/wallet")
	{
		wallet.GET("", deps.walletHandler.GetWallet)
		wallet.GET("/summary", deps.walletHandler.GetSummary)
		wallet.GET("/transactions", deps.walletHandler.ListTransactions)
		wallet.POST("/recharge", deps.walletHandler.Recharge)
		wallet.PUT("/budget-cap", deps.walletHandler.UpdateBudgetCap)
	}

	orders := authed.Group("/orders")
	{
		orders.POST("", middleware.IdempotencyMiddleware(), deps.orderHandler.CreateOrder)
		orders.GET("", deps.orderHandler.ListMyOrders)
		orders.GET("/:id", deps.orderHandler.GetOrder)
		orders.POST("/:id/cancel", deps.orderHandler.CancelOrder)
	}

	wellness := authed.Group("/wellness")
	{
		wellness.GET("/today", deps.wellnessHandler.GetToday)
		wellness.GET("/days/:date", deps.wellnessHandler.GetDay)
		wellness.GET("/monthly", deps.wellnessHandler.GetMonthlyStats)
		wellness.PUT("/goals", deps.wellnessHandler.UpdateGoals)
	}

	staff := authed.Group("/staff")
	staff.Use(middleware.RequireStaff())
	{
		staff.GET("/orders", deps.orderHandler.ListAllOrders)
		staff.PUT("/orders/:id/status", deps.orderHandler.UpdateStatus)
		staff.POST("/orders/:id/collect", deps.orderHandler.CollectOrder)

		staff.POST("/meals", deps.mealHandler.CreateMeal)
		staff.PUT("/meals/:id", deps.mealHandler.UpdateMeal)
		staff.DELETE("/meals/:id", deps.mealHandler.DeleteMeal)

		staff.POST("/time-slots", deps.slotHandler.CreateTimeSlot)

		staff.GET("/wellness/:userId", deps.wellnessHandler.GetForUser)
		staff.GET("/wellness/:userId/monthly", deps.wellnessHandler.GetMonthlyForUser)
	}

	admin := authed.Group("/staff")
	admin.Use(middleware.RequireAdmin())
	{
		admin.POST("/wallets/reset-monthly", deps.walletHandler.ResetMonthlySpending)
	}
}
