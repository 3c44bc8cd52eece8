package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fjordcruice/internal/api/controllers"
	"fjordcruice/internal/repositories"
	"fjordcruice/internal/services"
)

func newToursRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := controllers.NewToursController(
		services.NewTourService(repositories.NewSeedTourRepository()))

	r := gin.New()
	r.GET("/tours", controller.ListToursHandler)
	r.GET("/tours/:slug", controller.GetTourBySlugHandler)
	r.GET("/categories", controller.ListCategoriesHandler)
	return r
}

func TestListToursHandler(t *testing.T) {
	r := newToursRouter()

	w, resp := doRequest(t, r, http.MethodGet, "/tours", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 7, data["total"])
}

func TestListToursHandler_Filtered(t *testing.T) {
	r := newToursRouter()

	w, resp := doRequest(t, r, http.MethodGet, "/tours?category=nightlife&sort=price&order=desc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 2, data["total"])

	tours, ok := data["tours"].([]interface{})
	require.True(t, ok)
	first, ok := tours[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "captains-secret-bars", first["slug"])
}

func TestListToursHandler_BadParams(t *testing.T) {
	r := newToursRouter()

	w, _ := doRequest(t, r, http.MethodGet, "/tours?duration_min=short", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodGet, "/tours?price_max=cheap", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = doRequest(t, r, http.MethodGet, "/tours?lang=sv", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetTourBySlugHandler(t *testing.T) {
	r := newToursRouter()

	w, resp := doRequest(t, r, http.MethodGet, "/tours/jazz-cruise?lang=de", nil)
	require.Equal(t, http.StatusOK, w.Code)

	tour, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Jazz-Kreuzfahrt", tour["name"])
}

func TestGetTourBySlugHandler_NotFound(t *testing.T) {
	r := newToursRouter()

	w, _ := doRequest(t, r, http.MethodGet, "/tours/submarine-safari", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCategoriesHandler(t *testing.T) {
	r := newToursRouter()

	w, resp := doRequest(t, r, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	categories, ok := resp.Data.([]interface{})
	require.True(t, ok)
	assert.Len(t, categories, 6)
}
