package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/service"
	"github.com/rs/zerolog/log"
)

type AIController struct {
	generateSvc service.GenerateService
}

func NewAIController(generateSvc service.GenerateService) *AIController {
	return &AIController{generateSvc: generateSvc}
}

func (ctrl *AIController) RegisterRoutes(rg *gin.RouterGroup) {
	ai := rg.Group("/ai")
	ai.POST("/generate", ctrl.GenerateHandler)
}

// GenerateHandler godoc
// @Summary Generate text from a prompt
// @Description Forwards the prompt to the configured generation API and returns
// @Description the normalized reply text together with the raw upstream payload.
// @Tags ai
// @Accept json
// @Produce json
// @Param request body dto.AIGenerateRequest true "Prompt"
// @Success 200 {object} dto.AIGenerateResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 502 {object} dto.ErrorResponse "Upstream unreachable"
// @Router /ai/generate [post]
func (ctrl *AIController) GenerateHandler(c *gin.Context) {
	var req dto.AIGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind AIGenerateRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.generateSvc.Generate(c.Request.Context(), req)
	if err != nil {
		// Non-2xx upstream answers are relayed with their own status and body.
		var upstream *service.UpstreamError
		if errors.As(err, &upstream) {
			c.JSON(upstream.StatusCode, gin.H{"upstream": upstream.Body})
			return
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, resp)
}
