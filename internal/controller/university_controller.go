package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/service"
	"github.com/rs/zerolog/log"
)

type UniversityController struct {
	univSvc service.UniversityService
}

func NewUniversityController(univSvc service.UniversityService) *UniversityController {
	return &UniversityController{univSvc: univSvc}
}

func (ctrl *UniversityController) RegisterRoutes(rg *gin.RouterGroup) {
	universities := rg.Group("/universities")
	universities.POST("", ctrl.CreateUniversityHandler)
	universities.GET("", ctrl.GetAllUniversitiesHandler)
	universities.GET("/count", ctrl.CountUniversitiesHandler)
	universities.GET("/:id", ctrl.GetUniversityHandler)
	universities.PUT("/:id", ctrl.UpdateUniversityHandler)
	universities.DELETE("/:id", ctrl.DeleteUniversityHandler)
}

// CreateUniversityHandler godoc
// @Summary Create a university
// @Tags universities
// @Accept json
// @Produce json
// @Param university body dto.CreateUniversityRequest true "University data"
// @Success 201 {object} dto.UniversityResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Router /universities [post]
func (ctrl *UniversityController) CreateUniversityHandler(c *gin.Context) {
	var req dto.CreateUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateUniversityRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.univSvc.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetAllUniversitiesHandler godoc
// @Summary List universities
// @Tags universities
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Maximum rows to return"
// @Success 200 {array} dto.UniversityResponse
// @Router /universities [get]
func (ctrl *UniversityController) GetAllUniversitiesHandler(c *gin.Context) {
	offset, limit, ok := pagination(c)
	if !ok {
		return
	}
	univs, err := ctrl.univSvc.List(offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, univs)
}

// CountUniversitiesHandler godoc
// @Summary Count universities
// @Tags universities
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Router /universities/count [get]
func (ctrl *UniversityController) CountUniversitiesHandler(c *gin.Context) {
	count, err := ctrl.univSvc.Count()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// GetUniversityHandler godoc
// @Summary Get a university by ID
// @Tags universities
// @Produce json
// @Param id path int true "University ID"
// @Success 200 {object} dto.UniversityResponse
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{id} [get]
func (ctrl *UniversityController) GetUniversityHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.univSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateUniversityHandler godoc
// @Summary Update a university
// @Tags universities
// @Accept json
// @Produce json
// @Param id path int true "University ID"
// @Param university body dto.UpdateUniversityRequest true "Fields to update"
// @Success 200 {object} dto.UniversityResponse
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{id} [put]
func (ctrl *UniversityController) UpdateUniversityHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateUniversityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.univSvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteUniversityHandler godoc
// @Summary Delete a university
// @Tags universities
// @Param id path int true "University ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "University not found"
// @Router /universities/{id} [delete]
func (ctrl *UniversityController) DeleteUniversityHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.univSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
