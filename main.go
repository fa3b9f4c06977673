package main

import (
	"context"
	"log"
	"os"
	"time"

	"dailysync/handler"
	"dailysync/middleware"
	"dailysync/repository"
	"dailysync/subscription"
	"dailysync/usecase"
	"dailysync/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Fatalf("Error loading .env file: %v", err)
	}

	// Check required environment variables
	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"REDIS_URL",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
		"SESSION_DURATION",
		"PORT",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
	utils.InitRedisClient()
}

func setupRouter(hub *subscription.Hub, gateway *usecase.Gateway) *gin.Engine {
	router := gin.Default()

	userRepo := repository.GetUserRepo(utils.MongoClient)
	sessionRepo := repository.GetSessionRepo(utils.MongoClient)

	taskService := &usecase.TaskService{Gateway: gateway}
	eventService := &usecase.EventService{Gateway: gateway}
	noteService := &usecase.NoteService{Gateway: gateway}
	habitService := &usecase.HabitService{Gateway: gateway}
	goalService := &usecase.GoalService{Gateway: gateway}
	routineService := &usecase.RoutineService{Gateway: gateway}
	profileService := &usecase.ProfileService{Gateway: gateway}
	summaryService := &usecase.SummaryService{
		Tasks:    taskService,
		Events:   eventService,
		Notes:    noteService,
		Habits:   habitService,
		Goals:    goalService,
		Routines: routineService,
	}

	authHandler := handler.NewAuthHandler(userRepo, sessionRepo, hub)
	taskHandler := handler.NewTaskHandler(taskService)
	eventHandler := handler.NewEventHandler(eventService)
	noteHandler := handler.NewNoteHandler(noteService)
	habitHandler := handler.NewHabitHandler(habitService)
	goalHandler := handler.NewGoalHandler(goalService)
	routineHandler := handler.NewRoutineHandler(routineService)
	profileHandler := handler.NewProfileHandler(profileService)
	statsHandler := handler.NewStatsHandler(summaryService)
	streamHandler := handler.NewStreamHandler(hub)

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RecoveryMiddleware())

	if utils.GetEnvAsBool("METRICS_ENDPOINT", true) {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/me", authHandler.Me)
			user.POST("/logout", authHandler.Logout)
			user.POST("/logout-all", authHandler.LogoutAll)
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", authHandler.GetActiveSessions)
			sessions.DELETE("/:id", authHandler.EndSession)
		}

		todos := protected.Group("/todos")
		{
			todos.GET("/", taskHandler.GetUserTasks)
			todos.POST("/", taskHandler.CreateTask)
			todos.PUT("/:id", taskHandler.UpdateTask)
			todos.POST("/:id/toggle", taskHandler.ToggleComplete)
			todos.PUT("/:id/order", taskHandler.ReorderTask)
			todos.DELETE("/:id", taskHandler.DeleteTask)
		}

		events := protected.Group("/events")
		{
			events.GET("/", eventHandler.GetUserEvents)
			events.POST("/", eventHandler.CreateEvent)
			events.PUT("/:id", eventHandler.UpdateEvent)
			events.DELETE("/:id", eventHandler.DeleteEvent)
		}

		notes := protected.Group("/notes")
		{
			notes.GET("/", noteHandler.GetUserNotes)
			notes.POST("/", noteHandler.CreateNote)
			notes.PUT("/:id", noteHandler.UpdateNote)
			notes.POST("/:id/pin", noteHandler.TogglePin)
			notes.DELETE("/:id", noteHandler.DeleteNote)
		}

		habits := protected.Group("/habits")
		{
			habits.GET("/", habitHandler.GetUserHabits)
			habits.POST("/", habitHandler.CreateHabit)
			habits.PUT("/:id", habitHandler.UpdateHabit)
			habits.POST("/:id/toggle", habitHandler.ToggleCompletion)
			habits.DELETE("/:id", habitHandler.DeleteHabit)
		}

		goals := protected.Group("/goals")
		{
			goals.GET("/", goalHandler.GetUserGoals)
			goals.POST("/", goalHandler.CreateGoal)
			goals.PUT("/:id", goalHandler.UpdateGoal)
			goals.POST("/:id/milestones", goalHandler.AddMilestone)
			goals.POST("/:id/milestones/:milestoneId/toggle", goalHandler.ToggleMilestone)
			goals.DELETE("/:id/milestones/:milestoneId", goalHandler.DeleteMilestone)
			goals.DELETE("/:id", goalHandler.DeleteGoal)
		}

		routines := protected.Group("/routines")
		{
			routines.GET("/", routineHandler.GetUserRoutines)
			routines.POST("/", routineHandler.CreateRoutine)
			routines.POST("/template", routineHandler.CreateFromTemplate)
			routines.PUT("/:id", routineHandler.UpdateRoutine)
			routines.POST("/:id/active", routineHandler.SetActive)
			routines.POST("/:id/activities", routineHandler.AddActivity)
			routines.POST("/:id/activities/:activityId/toggle", routineHandler.ToggleActivity)
			routines.DELETE("/:id/activities/:activityId", routineHandler.RemoveActivity)
			routines.DELETE("/:id", routineHandler.DeleteRoutine)
		}

		profile := protected.Group("/profile")
		{
			profile.GET("/", profileHandler.GetProfile)
			profile.PUT("/", profileHandler.SaveProfile)
		}

		protected.GET("/summary", statsHandler.GetDashboardSummary)

		stream := protected.Group("/stream")
		{
			stream.GET("/:collection", streamHandler.StreamCollection)
			stream.GET("/:collection/snapshot", streamHandler.GetSnapshot)
		}
	}

	return router
}

func main() {
	db := utils.MongoClient.Database(os.Getenv("MONGO_DB"))
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	store := repository.NewMongoStore(db)
	cache := repository.NewOfflineCacheWithClient(utils.RedisClient)
	publisher := repository.NewRedisPublisher(utils.RedisClient)
	gateway := usecase.NewGateway(store, cache, publisher)

	fetchers := usecase.Fetchers(
		&usecase.TaskService{Gateway: gateway},
		&usecase.EventService{Gateway: gateway},
		&usecase.NoteService{Gateway: gateway},
		&usecase.HabitService{Gateway: gateway},
		&usecase.GoalService{Gateway: gateway},
		&usecase.RoutineService{Gateway: gateway},
	)
	hub := subscription.NewHub(utils.RedisClient, fetchers)
	defer hub.Close()

	utils.StartSystemMetrics(15 * time.Second)

	router := setupRouter(hub, gateway)

	port := utils.GetEnvAsString("PORT", "8080")

	log.Printf("Starting server on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}

	if err := utils.MongoClient.Disconnect(context.Background()); err != nil {
		log.Printf("Error disconnecting from MongoDB: %v", err)
	}
}
