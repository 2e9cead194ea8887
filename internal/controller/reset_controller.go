package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/service"
	"github.com/rs/zerolog/log"
)

type ResetController struct {
	resetSvc service.ResetService
}

func NewResetController(resetSvc service.ResetService) *ResetController {
	return &ResetController{resetSvc: resetSvc}
}

func (ctrl *ResetController) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/reset", ctrl.ResetHandler)
}

// ResetHandler godoc
// @Summary Reset the database
// @Description Drops all tables, recreates the schema and applies the seed script
// @Description when one is configured. Destructive.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 500 {object} dto.ErrorResponse "Reset failed"
// @Router /reset [post]
func (ctrl *ResetController) ResetHandler(c *gin.Context) {
	if err := ctrl.resetSvc.Reset(); err != nil {
		log.Error().Err(err).Msg("Database reset failed")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "database reset complete"})
}
