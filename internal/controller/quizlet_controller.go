package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/service"
	"github.com/rs/zerolog/log"
)

type QuizletController struct {
	quizletSvc service.QuizletService
}

func NewQuizletController(quizletSvc service.QuizletService) *QuizletController {
	return &QuizletController{quizletSvc: quizletSvc}
}

func (ctrl *QuizletController) RegisterRoutes(rg *gin.RouterGroup) {
	quizlets := rg.Group("/quizlets")
	quizlets.POST("", ctrl.CreateQuizletHandler)
	quizlets.GET("", ctrl.GetAllQuizletsHandler)
	quizlets.GET("/lesson/:lesson_id", ctrl.GetQuizletsByLessonHandler)
	quizlets.GET("/:id", ctrl.GetQuizletHandler)
	quizlets.PUT("/:id", ctrl.UpdateQuizletHandler)
	quizlets.DELETE("/:id", ctrl.DeleteQuizletHandler)
}

// CreateQuizletHandler godoc
// @Summary Create a flashcard
// @Tags quizlets
// @Accept json
// @Produce json
// @Param quizlet body dto.CreateQuizletRequest true "Flashcard data"
// @Success 201 {object} dto.QuizletResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or unknown lesson"
// @Router /quizlets [post]
func (ctrl *QuizletController) CreateQuizletHandler(c *gin.Context) {
	var req dto.CreateQuizletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuizletRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.quizletSvc.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetAllQuizletsHandler godoc
// @Summary List flashcards
// @Tags quizlets
// @Produce json
// @Param skip query int false "Rows to skip"
// @Param limit query int false "Maximum rows to return"
// @Success 200 {array} dto.QuizletResponse
// @Router /quizlets [get]
func (ctrl *QuizletController) GetAllQuizletsHandler(c *gin.Context) {
	offset, limit, ok := pagination(c)
	if !ok {
		return
	}
	items, err := ctrl.quizletSvc.List(offset, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetQuizletsByLessonHandler godoc
// @Summary List flashcards for a lesson
// @Tags quizlets
// @Produce json
// @Param lesson_id path int true "Lesson ID"
// @Success 200 {array} dto.QuizletResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid lesson_id format"
// @Router /quizlets/lesson/{lesson_id} [get]
func (ctrl *QuizletController) GetQuizletsByLessonHandler(c *gin.Context) {
	lessonID, ok := parseUintParam(c, "lesson_id")
	if !ok {
		return
	}
	items, err := ctrl.quizletSvc.ListByLesson(lessonID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetQuizletHandler godoc
// @Summary Get a flashcard by ID
// @Tags quizlets
// @Produce json
// @Param id path int true "Quizlet ID"
// @Success 200 {object} dto.QuizletResponse
// @Failure 404 {object} dto.ErrorResponse "Quizlet not found"
// @Router /quizlets/{id} [get]
func (ctrl *QuizletController) GetQuizletHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.quizletSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateQuizletHandler godoc
// @Summary Update a flashcard
// @Tags quizlets
// @Accept json
// @Produce json
// @Param id path int true "Quizlet ID"
// @Param quizlet body dto.UpdateQuizletRequest true "Fields to update"
// @Success 200 {object} dto.QuizletResponse
// @Failure 404 {object} dto.ErrorResponse "Quizlet not found"
// @Router /quizlets/{id} [put]
func (ctrl *QuizletController) UpdateQuizletHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateQuizletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.quizletSvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuizletHandler godoc
// @Summary Delete a flashcard
// @Tags quizlets
// @Param id path int true "Quizlet ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Quizlet not found"
// @Router /quizlets/{id} [delete]
func (ctrl *QuizletController) DeleteQuizletHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.quizletSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
