package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fjordcruice/internal/models/request_models"
	"fjordcruice/internal/services"
	"fjordcruice/pkg/utils"
)

type TripController struct {
	tripService   services.TripServiceInterface
	exportService services.ExportServiceInterface
}

func NewTripController(tripService services.TripServiceInterface, exportService services.ExportServiceInterface) *TripController {
	return &TripController{
		tripService:   tripService,
		exportService: exportService,
	}
}

func (tc *TripController) bindPlanRequest(c *gin.Context) (request_models.TripPlanRequest, string, bool) {
	var req request_models.TripPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return req, "", false
	}

	language, err := services.NormalizeLanguage(req.Language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return req, "", false
	}
	return req, language, true
}

func (tc *TripController) BuildPlanHandler(c *gin.Context) {
	req, language, ok := tc.bindPlanRequest(c)
	if !ok {
		return
	}

	result, err := tc.tripService.BuildPlan(c.Request.Context(), req.SelectedKeys, req.PersonCount, language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	if result.Plan == nil {
		utils.RespondSuccess(c, nil, "No trip selected")
		return
	}
	utils.RespondSuccess(c, result, "Built trip plan successfully")
}

func (tc *TripController) ExportICSHandler(c *gin.Context) {
	req, language, ok := tc.bindPlanRequest(c)
	if !ok {
		return
	}

	ics, err := tc.exportService.BuildICS(c.Request.Context(), req.SelectedKeys, req.PersonCount, language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="fjordcruice-trip.ics"`)
	c.Data(http.StatusOK, "text/calendar; charset=utf-8", []byte(ics))
}

func (tc *TripController) ExportItineraryHandler(c *gin.Context) {
	req, language, ok := tc.bindPlanRequest(c)
	if !ok {
		return
	}

	interests := services.ParseInterests(req.Interests)
	doc, err := tc.exportService.BuildItinerary(c.Request.Context(), req.SelectedKeys, req.PersonCount, language, interests)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(doc))
}

func (tc *TripController) CreateShareTokenHandler(c *gin.Context) {
	req, _, ok := tc.bindPlanRequest(c)
	if !ok {
		return
	}

	token := tc.tripService.EncodeShareToken(req.SelectedKeys, req.PersonCount)
	utils.RespondSuccess(c, gin.H{"token": token}, "Created share token successfully")
}

func (tc *TripController) DecodeShareTokenHandler(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		utils.RespondError(c, http.StatusBadRequest, "Share token is required")
		return
	}

	payload, err := tc.tripService.DecodeShareToken(token)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, payload, "Decoded share token successfully")
}
