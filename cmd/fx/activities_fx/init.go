package activities_fx

import (
	"go.uber.org/fx"

	"fjordcruice/internal/api/controllers"
	"fjordcruice/internal/repositories"
	"fjordcruice/internal/services"
)

var Module = fx.Provide(
	provideActivityRepo, provideActivityService, provideActivitiesController)

func provideActivityRepo() repositories.ActivityRepositoryInterface {
	return repositories.NewActivityRepository()
}

func provideActivityService(activityRepo repositories.ActivityRepositoryInterface) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo)
}

func provideActivitiesController(activityService services.ActivityServiceInterface) *controllers.ActivitiesController {
	return controllers.NewActivitiesController(activityService)
}
