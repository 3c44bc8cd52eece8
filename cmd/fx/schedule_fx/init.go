package schedule_fx

import (
	"go.uber.org/fx"

	"fjordcruice/internal/api/controllers"
	"fjordcruice/internal/repositories"
	"fjordcruice/internal/services"
)

var Module = fx.Provide(
	provideScheduleService, provideScheduleController)

func provideScheduleService(tourRepo repositories.TourRepositoryInterface) services.ScheduleServiceInterface {
	return services.NewScheduleService(tourRepo)
}

func provideScheduleController(scheduleService services.ScheduleServiceInterface) *controllers.ScheduleController {
	return controllers.NewScheduleController(scheduleService)
}
