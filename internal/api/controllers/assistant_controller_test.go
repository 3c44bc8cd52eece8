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

func newAssistantRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	// No chat client configured, so every reply comes from the fallback.
	controller := controllers.NewAssistantController(
		services.NewAssistantService(repositories.NewSeedTourRepository(), nil))

	r := gin.New()
	r.POST("/ai/chat", controller.ChatHandler)
	r.POST("/ai/recommend", controller.RecommendHandler)
	return r
}

func TestChatHandler(t *testing.T) {
	r := newAssistantRouter()

	body := `{"session_id":"s1","message":"northern lights cruise","language":"en"}`
	w, resp := doRequest(t, r, http.MethodPost, "/ai/chat", strPtr(body))
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	reply, ok := data["reply"].(string)
	require.True(t, ok)
	assert.Contains(t, reply, "Northern Lights Fjord Cruise")
}

func TestChatHandler_EmptyMessage(t *testing.T) {
	r := newAssistantRouter()

	w, _ := doRequest(t, r, http.MethodPost, "/ai/chat", strPtr(`{"session_id":"s1","message":"  "}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHandler_BadBody(t *testing.T) {
	r := newAssistantRouter()

	w, _ := doRequest(t, r, http.MethodPost, "/ai/chat", strPtr(`{"message":`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendHandler(t *testing.T) {
	r := newAssistantRouter()

	body := `{"language":"en","preferences":{"travel_month":1,"interests":["northern-lights"]}}`
	w, resp := doRequest(t, r, http.MethodPost, "/ai/recommend", strPtr(body))
	require.Equal(t, http.StatusOK, w.Code)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	recommendation, ok := data["recommendation"].(string)
	require.True(t, ok)
	assert.Contains(t, recommendation, "## Your day in Tromsø")
	assert.Contains(t, recommendation, "Northern Lights Fjord Cruise")
}

func TestRecommendHandler_InvalidMonth(t *testing.T) {
	r := newAssistantRouter()

	w, _ := doRequest(t, r, http.MethodPost, "/ai/recommend", strPtr(`{"preferences":{"travel_month":13}}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
