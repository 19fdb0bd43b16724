package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/nurlanmnn/roomate-sub001/config"
	"github.com/nurlanmnn/roomate-sub001/database"
	"github.com/nurlanmnn/roomate-sub001/handlers"
	"github.com/nurlanmnn/roomate-sub001/middleware"
	"github.com/nurlanmnn/roomate-sub001/services"
)

func main() {
	// Load configuration
	config.Load()

	// Initialize logger
	logrus.SetFormatter(&logrus.JSONFormatter{})
	if level, err := logrus.ParseLevel(config.AppConfig.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	// Connect to database
	database.Connect()

	// Connect to Redis (optional, won't crash if unavailable)
	database.ConnectRedis()

	// Push notifications (optional, won't crash if unconfigured)
	services.InitNotificationService(context.Background())

	// Balance reminder scheduler. Cooldowns live in Redis when it is
	// up, in memory otherwise.
	var reminderStore services.ReminderStore
	if database.Redis != nil {
		reminderStore = &services.RedisReminderStore{Client: database.Redis}
	} else {
		reminderStore = services.NewMemoryReminderStore()
	}
	reminders := services.NewReminderService(reminderStore, services.GetNotificationService(), config.AppConfig.ReminderCooldown)
	if err := reminders.Start(config.AppConfig.ReminderCron); err != nil {
		logrus.Fatal("Failed to start reminder scheduler: ", err)
	}
	defer reminders.Stop()

	// Setup router
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": config.AppConfig.AppName,
		})
	})

	// ==========================================
	// AUTH ROUTES (public)
	// ==========================================
	auth := r.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	// ==========================================
	// API ROUTES (authenticated)
	// ==========================================
	api := r.Group("/api")
	api.Use(middleware.AuthRequired())
	{
		// User
		api.GET("/users/me", handlers.GetProfile)
		api.PUT("/users/me", handlers.UpdateProfile)
		api.PUT("/users/me/fcm-token", handlers.UpdateFCMToken)
		api.POST("/users/search", handlers.SearchUsers)

		// Households
		api.POST("/households", handlers.CreateHousehold)
		api.GET("/households", handlers.GetHouseholds)
		api.GET("/households/:id", handlers.GetHousehold)
		api.PUT("/households/:id", handlers.UpdateHousehold)
		api.POST("/households/:id/members", handlers.AddMember)
		api.DELETE("/households/:id/members/:uid", handlers.RemoveMember)
		api.POST("/households/:id/invite", handlers.InviteToHouseholdHandler)

		// Expenses
		api.POST("/households/:id/expenses", handlers.CreateExpense)
		api.GET("/households/:id/expenses", handlers.GetHouseholdExpenses)
		api.GET("/expenses/:id", handlers.GetExpense)
		api.PUT("/expenses/:id", handlers.UpdateExpense)
		api.DELETE("/expenses/:id", handlers.DeleteExpense)

		// Balances & insights
		api.GET("/households/:id/balances", handlers.GetHouseholdBalances)
		api.GET("/households/:id/insights", handlers.GetHouseholdInsights)
		api.GET("/balances", handlers.GetOverallBalances)

		// Settlements
		api.POST("/households/:id/settle", handlers.CreateSettlement)
		api.GET("/households/:id/settlements", handlers.GetHouseholdSettlements)

		// Shopping list
		api.POST("/households/:id/shopping", handlers.CreateShoppingItem)
		api.GET("/households/:id/shopping", handlers.GetShoppingList)
		api.PUT("/shopping/:id", handlers.UpdateShoppingItem)
		api.DELETE("/shopping/:id", handlers.DeleteShoppingItem)

		// Events
		api.POST("/households/:id/events", handlers.CreateEvent)
		api.GET("/households/:id/events", handlers.GetHouseholdEvents)
		api.PUT("/events/:id", handlers.UpdateEvent)
		api.DELETE("/events/:id", handlers.DeleteEvent)

		// Goals
		api.POST("/households/:id/goals", handlers.CreateGoal)
		api.GET("/households/:id/goals", handlers.GetHouseholdGoals)
		api.POST("/goals/:id/contribute", handlers.ContributeToGoal)
		api.DELETE("/goals/:id", handlers.DeleteGoal)

		// Activity
		api.GET("/activity", handlers.GetActivity)
		api.GET("/households/:id/activity", handlers.GetHouseholdActivity)
	}

	// Start server
	port := config.AppConfig.Port
	addr := "0.0.0.0:" + port
	logrus.Infof("🚀 %s listening on %s", config.AppConfig.AppName, addr)
	if err := r.Run(addr); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}
