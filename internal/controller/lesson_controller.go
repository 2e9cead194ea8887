package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/service"
	"github.com/rs/zerolog/log"
)

type LessonController struct {
	lessonSvc service.LessonService
}

func NewLessonController(lessonSvc service.LessonService) *LessonController {
	return &LessonController{lessonSvc: lessonSvc}
}

func (ctrl *LessonController) RegisterRoutes(rg *gin.RouterGroup) {
	lessons := rg.Group("/lessons")
	lessons.POST("", ctrl.CreateLessonHandler)
	lessons.GET("", ctrl.GetAllLessonsHandler)
	lessons.GET("/count", ctrl.CountLessonsHandler)

	// Tracking routes sit under /lessons/tracking; the param routes use
	// /id/:id so they cannot collide with the literal segments.
	tracking := lessons.Group("/tracking")
	tracking.POST("", ctrl.CreateTrackingHandler)
	tracking.GET("", ctrl.GetAllTrackingHandler)
	tracking.GET("/check", ctrl.CheckLearnedHandler)
	tracking.GET("/id/:id", ctrl.GetTrackingHandler)
	tracking.PUT("/id/:id", ctrl.UpdateTrackingHandler)
	tracking.DELETE("/id/:id", ctrl.DeleteTrackingHandler)
	tracking.GET("/user/:user_id", ctrl.GetTrackingByUserHandler)
	tracking.GET("/user/:user_id/lessons", ctrl.GetLessonsWithTrackingHandler)

	lessons.GET("/:id", ctrl.GetLessonHandler)
	lessons.PUT("/:id", ctrl.UpdateLessonHandler)
	lessons.DELETE("/:id", ctrl.DeleteLessonHandler)
}

// CreateLessonHandler godoc
// @Summary Create a new lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param lesson body dto.CreateLessonRequest true "Lesson data"
// @Success 201 {object} dto.LessonResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lessons [post]
func (ctrl *LessonController) CreateLessonHandler(c *gin.Context) {
	var req dto.CreateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateLessonRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.lessonSvc.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetAllLessonsHandler godoc
// @Summary List lessons
// @Tags lessons
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Maximum rows to return"
// @Success 200 {array} dto.LessonResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid pagination params"
// @Router /lessons [get]
func (ctrl *LessonController) GetAllLessonsHandler(c *gin.Context) {
	offset, limit, ok := pagination(c)
	if !ok {
		return
	}
	lessons, err := ctrl.lessonSvc.List(offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lessons)
}

// CountLessonsHandler godoc
// @Summary Count lessons
// @Tags lessons
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /lessons/count [get]
func (ctrl *LessonController) CountLessonsHandler(c *gin.Context) {
	count, err := ctrl.lessonSvc.Count()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// GetLessonHandler godoc
// @Summary Get a lesson by ID
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Success 200 {object} dto.LessonResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id} [get]
func (ctrl *LessonController) GetLessonHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.lessonSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateLessonHandler godoc
// @Summary Update a lesson
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Param lesson body dto.UpdateLessonRequest true "Fields to update"
// @Success 200 {object} dto.LessonResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id} [put]
func (ctrl *LessonController) UpdateLessonHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateLessonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.lessonSvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteLessonHandler godoc
// @Summary Delete a lesson
// @Tags lessons
// @Param id path int true "Lesson ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Lesson not found"
// @Router /lessons/{id} [delete]
func (ctrl *LessonController) DeleteLessonHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.lessonSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateTrackingHandler godoc
// @Summary Mark a lesson as learned for a user
// @Description Creates (or updates) the tracking entry for the (user, lesson) pair
// @Tags tracking
// @Accept json
// @Produce json
// @Param tracking body dto.CreateTrackingRequest true "Tracking data"
// @Success 201 {object} dto.TrackingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or unknown user/lesson"
// @Router /lessons/tracking [post]
func (ctrl *LessonController) CreateTrackingHandler(c *gin.Context) {
	var req dto.CreateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateTrackingRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.lessonSvc.Track(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetAllTrackingHandler godoc
// @Summary List tracking entries
// @Tags tracking
// @Produce json
// @Param user_id query int false "Filter by User ID"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Maximum rows to return"
// @Success 200 {array} dto.TrackingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid params"
// @Router /lessons/tracking [get]
func (ctrl *LessonController) GetAllTrackingHandler(c *gin.Context) {
	userID, ok := parseUintQuery(c, "user_id")
	if !ok {
		return
	}
	offset, limit, ok := pagination(c)
	if !ok {
		return
	}
	entries, err := ctrl.lessonSvc.ListTracking(userID, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetTrackingHandler godoc
// @Summary Get a tracking entry by ID
// @Tags tracking
// @Produce json
// @Param id path int true "Tracking entry ID"
// @Success 200 {object} dto.TrackingResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Router /lessons/tracking/id/{id} [get]
func (ctrl *LessonController) GetTrackingHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.lessonSvc.GetTracking(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetTrackingByUserHandler godoc
// @Summary List a user's tracking entries
// @Tags tracking
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} dto.TrackingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid user_id format"
// @Router /lessons/tracking/user/{user_id} [get]
func (ctrl *LessonController) GetTrackingByUserHandler(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}
	offset, limit, ok := pagination(c)
	if !ok {
		return
	}
	entries, err := ctrl.lessonSvc.ListTracking(&userID, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GetLessonsWithTrackingHandler godoc
// @Summary List all lessons with the user's learned flag
// @Tags tracking
// @Produce json
// @Param user_id path int true "User ID"
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Maximum rows to return"
// @Success 200 {array} dto.LessonWithTrackingResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid params"
// @Router /lessons/tracking/user/{user_id}/lessons [get]
func (ctrl *LessonController) GetLessonsWithTrackingHandler(c *gin.Context) {
	userID, ok := parseUintParam(c, "user_id")
	if !ok {
		return
	}
	offset, limit, ok := pagination(c)
	if !ok {
		return
	}
	lessons, err := ctrl.lessonSvc.ListWithTracking(userID, offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lessons)
}

// CheckLearnedHandler godoc
// @Summary Check whether a user has learned a lesson
// @Tags tracking
// @Produce json
// @Param user_id query int true "User ID"
// @Param lesson_id query int true "Lesson ID"
// @Success 200 {object} dto.IsLearnedResponse
// @Failure 400 {object} dto.ErrorResponse "Missing or invalid user_id/lesson_id"
// @Router /lessons/tracking/check [get]
func (ctrl *LessonController) CheckLearnedHandler(c *gin.Context) {
	userID, ok := parseUintQuery(c, "user_id")
	if !ok {
		return
	}
	lessonID, ok := parseUintQuery(c, "lesson_id")
	if !ok {
		return
	}
	if userID == nil || lessonID == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "user_id and lesson_id are required"})
		return
	}
	resp, err := ctrl.lessonSvc.IsLearned(*userID, *lessonID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateTrackingHandler godoc
// @Summary Update a tracking entry
// @Tags tracking
// @Accept json
// @Produce json
// @Param id path int true "Tracking entry ID"
// @Param tracking body dto.UpdateTrackingRequest true "Fields to update"
// @Success 200 {object} dto.TrackingResponse
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Router /lessons/tracking/id/{id} [put]
func (ctrl *LessonController) UpdateTrackingHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTrackingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.lessonSvc.UpdateTracking(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteTrackingHandler godoc
// @Summary Delete a tracking entry
// @Tags tracking
// @Param id path int true "Tracking entry ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Entry not found"
// @Router /lessons/tracking/id/{id} [delete]
func (ctrl *LessonController) DeleteTrackingHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.lessonSvc.DeleteTracking(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
