package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fjordcruice/internal/models/request_models"
	"fjordcruice/internal/services"
	"fjordcruice/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

func (ac *AssistantController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	language, err := services.NormalizeLanguage(req.Language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	reply, err := ac.assistantService.Chat(c.Request.Context(), req.SessionID, req.Message, language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"reply": reply}, "Chat reply generated")
}

func (ac *AssistantController) RecommendHandler(c *gin.Context) {
	var req request_models.RecommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	language, err := services.NormalizeLanguage(req.Language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	reply, err := ac.assistantService.Recommend(c.Request.Context(), req.Preferences, language)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"recommendation": reply}, "Recommendation generated")
}
