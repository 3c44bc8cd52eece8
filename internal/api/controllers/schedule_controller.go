package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fjordcruice/internal/services"
	"fjordcruice/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

func (sc *ScheduleController) DayScheduleHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.RespondError(c, http.StatusBadRequest, "date query parameter is required")
		return
	}

	language, err := services.NormalizeLanguage(c.Query("lang"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	schedule, err := sc.scheduleService.ScheduleForDate(c.Request.Context(), date, language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Fetched day schedule successfully")
}

func (sc *ScheduleController) WeekScheduleHandler(c *gin.Context) {
	start := c.Query("start")
	if start == "" {
		utils.RespondError(c, http.StatusBadRequest, "start query parameter is required")
		return
	}

	language, err := services.NormalizeLanguage(c.Query("lang"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	week, err := sc.scheduleService.ScheduleForWeek(c.Request.Context(), start, language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, week, "Fetched week schedule successfully")
}
