package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/service"
	"github.com/rs/zerolog/log"
)

type ResultController struct {
	resultSvc service.ResultService
}

func NewResultController(resultSvc service.ResultService) *ResultController {
	return &ResultController{resultSvc: resultSvc}
}

func (ctrl *ResultController) RegisterRoutes(rg *gin.RouterGroup) {
	results := rg.Group("/results")
	results.POST("", ctrl.SubmitResultHandler)
	results.GET("", ctrl.GetAllResultsHandler)
	results.GET("/progress/:user_id", ctrl.GetProgressHandler)
	results.GET("/user/result/:user_id/mean", ctrl.GetMeanScoreHandler)
	results.GET("/user/:user_id", ctrl.GetResultsByUserHandler)
	results.DELETE("/user/:user_id/:id", ctrl.DeleteResultForUserHandler)
	results.GET("/:id", ctrl.GetResultHandler)
	results.PUT("/:id", ctrl.UpdateResultHandler)
	results.DELETE("/:id", ctrl.DeleteResultHandler)
}

// SubmitResultHandler godoc
// @Summary Submit a test result
// @Description Store a result with its answers. Resubmitting the identical answer
// @Description sequence for the same user and test returns the existing result
// @Description instead of creating a duplicate.
// @Tags results
// @Accept json
// @Produce json
// @Param result body dto.CreateResultRequest true "Result data with answers"
// @Success 201 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results [post]
func (ctrl *ResultController) SubmitResultHandler(c *gin.Context) {
	var req dto.CreateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateResultRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := ctrl.resultSvc.Submit(req)
	if err != nil {
		respondError(c, err)
		return
	}
	// 201 either way; a deduplicated submission carries the original id.
	c.JSON(http.StatusCreated, resp)
}

// GetAllResultsHandler godoc
// @Summary List results
// @Description Retrieve all results, optionally filtered by user_id
// @Tags results
// @Produce json
// @Param user_id query int false "Filter by User ID"
// @Success 200 {array} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user_id format"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /results [get]
func (ctrl *ResultController) GetAllResultsHandler(c *gin.Context) {
	userID, ok := parseUintQuery(c, "user_id")
	if !ok {
		return
	}
	results, err := ctrl.resultSvc.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// GetResultHandler godoc
// @Summary Get a result by ID
// @Tags results
// @Produce json
// @Param id path int true "Result ID"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /results/{id} [get]
func (ctrl *ResultController) GetResultHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.resultSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetResultsByUserHandler godoc
// @Summary List a user's results
// @Description Returns an empty array when the user has no results
// @Tags results
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user_id format"
// @Router /results/user/{user_id} [get]
func (ctrl *ResultController) GetResultsByUserHandler(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}
	results, err := ctrl.resultSvc.ListByUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

// UpdateResultHandler godoc
// @Summary Update a result
// @Description Partially update result fields; a supplied answers list replaces
// @Description the stored answers wholesale.
// @Tags results
// @Accept json
// @Produce json
// @Param id path int true "Result ID"
// @Param result body dto.UpdateResultRequest true "Fields to update"
// @Success 200 {object} dto.ResultResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /results/{id} [put]
func (ctrl *ResultController) UpdateResultHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.resultSvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteResultHandler godoc
// @Summary Delete a result
// @Description Removes the result and all its answers
// @Tags results
// @Param id path int true "Result ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /results/{id} [delete]
func (ctrl *ResultController) DeleteResultHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.resultSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteResultForUserHandler godoc
// @Summary Delete a result owned by a user
// @Description Fails with 403 when the result belongs to a different user
// @Tags results
// @Param user_id path int true "User ID"
// @Param id path int true "Result ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 403 {object} dto.ErrorResponse "Result belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Result not found"
// @Router /results/user/{user_id}/{id} [delete]
func (ctrl *ResultController) DeleteResultForUserHandler(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.resultSvc.DeleteForUser(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GetProgressHandler godoc
// @Summary Get a user's test progress
// @Description Distinct tests taken vs. total tests, as a percentage
// @Tags results
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.ProgressResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user_id format"
// @Router /results/progress/{user_id} [get]
func (ctrl *ResultController) GetProgressHandler(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}
	resp, err := ctrl.resultSvc.Progress(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetMeanScoreHandler godoc
// @Summary Get a user's mean score
// @Description Average score over the user's results; mean is null with no results
// @Tags results
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {object} dto.MeanScoreResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user_id format"
// @Router /results/user/result/{user_id}/mean [get]
func (ctrl *ResultController) GetMeanScoreHandler(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}
	resp, err := ctrl.resultSvc.MeanScore(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
