package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"fjordcruice/cmd/fx/activities_fx"
	"fjordcruice/cmd/fx/assistant_fx"
	"fjordcruice/cmd/fx/db_fx"
	"fjordcruice/cmd/fx/schedule_fx"
	"fjordcruice/cmd/fx/tours_fx"
	"fjordcruice/cmd/fx/trip_fx"
	"fjordcruice/internal/api/controllers"
	"fjordcruice/pkg/middleware"
	"fjordcruice/pkg/utils"
)

func main() {
	_ = godotenv.Load()

	app := fx.New(
		db_fx.Module,
		tours_fx.Module,
		schedule_fx.Module,
		trip_fx.Module,
		activities_fx.Module,
		assistant_fx.Module,

		fx.Invoke(StartServer),
		fx.Provide(ProvideRouter),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := utils.GetEnvWithDefault("PORT", "8080")
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	toursController *controllers.ToursController,
	scheduleController *controllers.ScheduleController,
	tripController *controllers.TripController,
	activitiesController *controllers.ActivitiesController,
	assistantController *controllers.AssistantController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, toursController, scheduleController, tripController, activitiesController, assistantController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	toursController *controllers.ToursController,
	scheduleController *controllers.ScheduleController,
	tripController *controllers.TripController,
	activitiesController *controllers.ActivitiesController,
	assistantController *controllers.AssistantController) {

	r.GET("/tours", toursController.ListToursHandler)
	r.GET("/tours/:slug", toursController.GetTourBySlugHandler)
	r.GET("/categories", toursController.ListCategoriesHandler)

	scheduleGroup := r.Group("/schedule")
	scheduleGroup.GET("/day", scheduleController.DayScheduleHandler)
	scheduleGroup.GET("/week", scheduleController.WeekScheduleHandler)

	tripGroup := r.Group("/trip")
	tripGroup.POST("/plan", tripController.BuildPlanHandler)
	tripGroup.POST("/plan/ics", tripController.ExportICSHandler)
	tripGroup.POST("/plan/itinerary", tripController.ExportItineraryHandler)
	tripGroup.POST("/share", tripController.CreateShareTokenHandler)
	tripGroup.GET("/share/:token", tripController.DecodeShareTokenHandler)

	r.GET("/activities", activitiesController.RecommendHandler)

	aiGroup := r.Group("/ai")
	aiGroup.POST("/chat", assistantController.ChatHandler)
	aiGroup.POST("/recommend", assistantController.RecommendHandler)
}
