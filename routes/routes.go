package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/SillyCatLover68/NourishNine-Web-App/controllers"
	"github.com/SillyCatLover68/NourishNine-Web-App/logger"
	"github.com/SillyCatLover68/NourishNine-Web-App/middlewares"
	"github.com/SillyCatLover68/NourishNine-Web-App/services"
)

func SetupRouter(log *logger.Logger, hub *services.ProgressHub) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	lookup := controllers.NewLookupController(log)
	foodlog := controllers.NewFoodLogController(log, hub)
	profile := controllers.NewProfileController(log)
	realtime := controllers.NewRealtimeController(hub)

	// LLM-backed lookups and write mirrors; identity is optional here so the
	// browser app works before the user ever signs in.
	api := r.Group("/api")
	api.Use(middlewares.OptionalIdentity())
	{
		api.POST("/nutrients", lookup.LookupNutrients)
		api.POST("/suggest", lookup.SuggestMeals)
		api.POST("/foodlog", foodlog.MirrorEntry)
	}

	// Profile writes always require a verified identity.
	prof := r.Group("/api/profile")
	prof.Use(middlewares.RequireIdentity())
	{
		prof.POST("", profile.UpsertProfile)
		prof.DELETE("", profile.DeleteProfile)
	}

	// Public reference catalogs
	catalog := r.Group("/api/catalog")
	{
		catalog.GET("/nutrients", controllers.ListNutrients)
		catalog.GET("/meals", controllers.ListMealSuggestions)
		catalog.GET("/food-safety", controllers.ListFoodSafety)
		catalog.GET("/trimester-tips", controllers.ListTrimesterTips)
		catalog.GET("/cultural-foods", controllers.ListCulturalFoods)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.RequireIdentity())
	{
		ws.GET("/progress", realtime.ProgressWS)
	}

	return r
}
