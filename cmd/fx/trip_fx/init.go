package trip_fx

import (
	"go.uber.org/fx"

	"fjordcruice/internal/api/controllers"
	"fjordcruice/internal/repositories"
	"fjordcruice/internal/services"
)

var Module = fx.Provide(
	provideTripService, provideExportService, provideTripController)

func provideTripService(tourRepo repositories.TourRepositoryInterface) services.TripServiceInterface {
	return services.NewTripService(tourRepo)
}

func provideExportService(
	tripService services.TripServiceInterface,
	activityService services.ActivityServiceInterface,
) services.ExportServiceInterface {
	return services.NewExportService(tripService, activityService)
}

func provideTripController(
	tripService services.TripServiceInterface,
	exportService services.ExportServiceInterface,
) *controllers.TripController {
	return controllers.NewTripController(tripService, exportService)
}
