package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fjordcruice/internal/services"
	"fjordcruice/pkg/utils"
)

type ToursController struct {
	tourService services.TourServiceInterface
}

func NewToursController(tourService services.TourServiceInterface) *ToursController {
	return &ToursController{
		tourService: tourService,
	}
}

func (tc *ToursController) ListToursHandler(c *gin.Context) {
	language, err := services.NormalizeLanguage(c.Query("lang"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	filter := services.TourFilter{
		Category: c.Query("category"),
		Sort:     c.Query("sort"),
		Order:    c.DefaultQuery("order", "asc"),
	}

	if raw := c.Query("duration_min"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid duration_min")
			return
		}
		filter.DurationMin = &v
	}
	if raw := c.Query("duration_max"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid duration_max")
			return
		}
		filter.DurationMax = &v
	}
	if raw := c.Query("price_max"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid price_max")
			return
		}
		filter.PriceMax = &v
	}

	tours, err := tc.tourService.ListTours(c.Request.Context(), language, filter)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"tours": tours, "total": len(tours)}, "Fetched tours successfully")
}

func (tc *ToursController) GetTourBySlugHandler(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		utils.RespondError(c, http.StatusBadRequest, "Tour slug is required")
		return
	}

	language, err := services.NormalizeLanguage(c.Query("lang"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	tour, err := tc.tourService.GetTourBySlug(c.Request.Context(), slug, language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, tour, "Fetched tour successfully")
}

func (tc *ToursController) ListCategoriesHandler(c *gin.Context) {
	categories, err := tc.tourService.ListCategories(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, categories, "Fetched categories successfully")
}
