package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/service"
	"github.com/rs/zerolog/log"
)

type PreferenceController struct {
	prefSvc service.PreferenceService
}

func NewPreferenceController(prefSvc service.PreferenceService) *PreferenceController {
	return &PreferenceController{prefSvc: prefSvc}
}

func (ctrl *PreferenceController) RegisterRoutes(rg *gin.RouterGroup) {
	prefs := rg.Group("/prefs")
	prefs.POST("", ctrl.CreatePreferenceHandler)
	prefs.GET("", ctrl.GetAllPreferencesHandler)
	prefs.GET("/:id", ctrl.GetPreferenceHandler)
	prefs.PUT("/:id", ctrl.UpdatePreferenceHandler)
	prefs.DELETE("/:id", ctrl.DeletePreferenceHandler)
}

// CreatePreferenceHandler godoc
// @Summary Create study preferences for a user
// @Description Rejects unknown user_id with 400
// @Tags preferences
// @Accept json
// @Produce json
// @Param preferences body dto.CreatePreferenceRequest true "Preference data"
// @Success 201 {object} dto.PreferenceResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or unknown user"
// @Router /prefs [post]
func (ctrl *PreferenceController) CreatePreferenceHandler(c *gin.Context) {
	var req dto.CreatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreatePreferenceRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.prefSvc.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetAllPreferencesHandler godoc
// @Summary List preferences
// @Tags preferences
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Maximum rows to return"
// @Success 200 {array} dto.PreferenceResponse
// @Router /prefs [get]
func (ctrl *PreferenceController) GetAllPreferencesHandler(c *gin.Context) {
	offset, limit, ok := pagination(c)
	if !ok {
		return
	}
	prefs, err := ctrl.prefSvc.List(offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// GetPreferenceHandler godoc
// @Summary Get preferences by ID
// @Tags preferences
// @Produce json
// @Param id path int true "Preference ID"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 404 {object} dto.ErrorResponse "Preferences not found"
// @Router /prefs/{id} [get]
func (ctrl *PreferenceController) GetPreferenceHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.prefSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdatePreferenceHandler godoc
// @Summary Update preferences
// @Tags preferences
// @Accept json
// @Produce json
// @Param id path int true "Preference ID"
// @Param preferences body dto.UpdatePreferenceRequest true "Fields to update"
// @Success 200 {object} dto.PreferenceResponse
// @Failure 404 {object} dto.ErrorResponse "Preferences not found"
// @Router /prefs/{id} [put]
func (ctrl *PreferenceController) UpdatePreferenceHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.prefSvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeletePreferenceHandler godoc
// @Summary Delete preferences
// @Tags preferences
// @Param id path int true "Preference ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Preferences not found"
// @Router /prefs/{id} [delete]
func (ctrl *PreferenceController) DeletePreferenceHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.prefSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
