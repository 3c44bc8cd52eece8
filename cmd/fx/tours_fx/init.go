package tours_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"fjordcruice/internal/api/controllers"
	"fjordcruice/internal/repositories"
	"fjordcruice/internal/services"
)

var Module = fx.Provide(
	provideTourRepo, provideTourService, provideToursController)

func provideTourRepo(db *gorm.DB) repositories.TourRepositoryInterface {
	if db == nil {
		return repositories.NewSeedTourRepository()
	}
	return repositories.NewTourRepository(db)
}

func provideTourService(tourRepo repositories.TourRepositoryInterface) services.TourServiceInterface {
	return services.NewTourService(tourRepo)
}

func provideToursController(tourService services.TourServiceInterface) *controllers.ToursController {
	return controllers.NewToursController(tourService)
}
