package routes

import (
	"github.com/12Danish/NextRepBackend-sub000/config"
	"github.com/12Danish/NextRepBackend-sub000/controllers"
	"github.com/12Danish/NextRepBackend-sub000/middlewares"
	"github.com/12Danish/NextRepBackend-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	hub := services.NewProgressHub()
	services.InitProgressHub(hub)

	progressCtl := controllers.NewProgressController(
		services.NewProgressService(config.DB),
		services.NewGraphService(config.DB),
	)
	foodCtl := controllers.NewFoodController(services.NewSpoonacularService())
	locationCtl := controllers.NewLocationController(services.NewOSMService(config.DB))
	realtimeCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/firebase", controllers.FirebaseLogin)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		user := api.Group("/user")
		{
			user.GET("/profile", controllers.GetProfile)
			user.PUT("/profile", controllers.UpdateProfile)
			user.DELETE("/", controllers.DeleteAccount)
		}

		goals := api.Group("/goals")
		{
			goals.POST("", controllers.CreateGoal)
			goals.GET("", controllers.ListGoals)
			goals.GET("/:id", controllers.GetGoal)
			goals.PATCH("/:id/status", controllers.UpdateGoalStatus)
			goals.PATCH("/:id/weight", controllers.UpdateGoalWeight)
			goals.DELETE("/:id", controllers.DeleteGoal)
		}

		diet := api.Group("/diet")
		{
			diet.POST("", controllers.CreateDietEntry)
			diet.GET("", controllers.ListDietEntries)
			diet.PUT("/:id", controllers.UpdateDietEntry)
			diet.DELETE("/:id", controllers.DeleteDietEntry)
		}

		workouts := api.Group("/workouts")
		{
			workouts.POST("", controllers.CreateWorkoutEntry)
			workouts.GET("", controllers.ListWorkoutEntries)
			workouts.PUT("/:id", controllers.UpdateWorkoutEntry)
			workouts.DELETE("/:id", controllers.DeleteWorkoutEntry)
		}

		sleep := api.Group("/sleep")
		{
			sleep.POST("", controllers.CreateSleepEntry)
			sleep.GET("", controllers.ListSleepEntries)
			sleep.PUT("/:id", controllers.UpdateSleepEntry)
			sleep.DELETE("/:id", controllers.DeleteSleepEntry)
		}

		trackers := api.Group("/trackers")
		{
			trackers.POST("", controllers.CreateTracker)
			trackers.GET("", controllers.ListTrackers)
			trackers.DELETE("/:id", controllers.DeleteTracker)
		}

		progress := api.Group("/progress")
		{
			progress.GET("/goals/:id/weight", progressCtl.GetWeightProgress)
			progress.GET("/goals/:id/diet", progressCtl.GetDietProgress)
			progress.GET("/goals/:id/sleep", progressCtl.GetSleepProgress)
			progress.GET("/goals/:id/workout", progressCtl.GetWorkoutProgress)

			progress.GET("/graph/diet", progressCtl.GetDietGraph)
			progress.GET("/graph/workout", progressCtl.GetWorkoutGraph)
			progress.GET("/graph/sleep", progressCtl.GetSleepGraph)
		}

		api.GET("/food/search", foodCtl.SearchFoods)
		api.GET("/food/:id/nutrition", foodCtl.GetFoodNutrition)
		api.GET("/gyms/nearby", locationCtl.GetNearbyGyms)
		api.GET("/ws/progress", realtimeCtl.ProgressWS)
	}

	return r
}
