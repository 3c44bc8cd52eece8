package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"fjordcruice/internal/services"
	"fjordcruice/pkg/utils"
)

type ActivitiesController struct {
	activityService services.ActivityServiceInterface
}

func NewActivitiesController(activityService services.ActivityServiceInterface) *ActivitiesController {
	return &ActivitiesController{
		activityService: activityService,
	}
}

// RecommendHandler fills a free-time gap. Without a gap parameter it
// returns the whole catalogue.
func (ac *ActivitiesController) RecommendHandler(c *gin.Context) {
	gapStr := c.Query("gap")
	if gapStr == "" {
		utils.RespondSuccess(c, ac.activityService.ListActivities(), "Fetched activities successfully")
		return
	}

	gap, err := strconv.Atoi(gapStr)
	if err != nil || gap < 0 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid gap (minutes)")
		return
	}

	count, err := strconv.Atoi(c.DefaultQuery("count", "3"))
	if err != nil || count < 1 || count > 10 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid count (must be 1-10)")
		return
	}

	var rawInterests []string
	if raw := c.Query("interests"); raw != "" {
		rawInterests = strings.Split(raw, ",")
	}

	activities := ac.activityService.RecommendForGap(gap, count, services.ParseInterests(rawInterests))
	utils.RespondSuccess(c, activities, "Fetched recommendations successfully")
}
