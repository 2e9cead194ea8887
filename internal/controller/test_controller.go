package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/service"
	"github.com/rs/zerolog/log"
)

type TestController struct {
	testSvc service.TestService
}

func NewTestController(testSvc service.TestService) *TestController {
	return &TestController{testSvc: testSvc}
}

func (ctrl *TestController) RegisterRoutes(rg *gin.RouterGroup) {
	tests := rg.Group("/tests")
	tests.POST("", ctrl.CreateTestHandler)
	tests.GET("", ctrl.GetAllTestsHandler)
	tests.GET("/count", ctrl.CountTestsHandler)

	// Standalone question routes live under /tests/questions/:question_id;
	// per-test creation and listing under /tests/:id/questions.
	questions := tests.Group("/questions")
	questions.GET("/:question_id", ctrl.GetQuestionHandler)
	questions.PUT("/:question_id", ctrl.UpdateQuestionHandler)
	questions.DELETE("/:question_id", ctrl.DeleteQuestionHandler)

	tests.GET("/:id", ctrl.GetTestHandler)
	tests.PUT("/:id", ctrl.UpdateTestHandler)
	tests.DELETE("/:id", ctrl.DeleteTestHandler)
	tests.POST("/:id/questions", ctrl.AddQuestionHandler)
	tests.GET("/:id/questions", ctrl.GetQuestionsHandler)
}

// CreateTestHandler godoc
// @Summary Create a new test
// @Tags tests
// @Accept json
// @Produce json
// @Param test body dto.CreateTestRequest true "Test data"
// @Success 201 {object} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [post]
func (ctrl *TestController) CreateTestHandler(c *gin.Context) {
	var req dto.CreateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateTestRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.testSvc.Create(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetAllTestsHandler godoc
// @Summary List tests with their questions
// @Tags tests
// @Produce json
// @Success 200 {array} dto.TestResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /tests [get]
func (ctrl *TestController) GetAllTestsHandler(c *gin.Context) {
	tests, err := ctrl.testSvc.List()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

// CountTestsHandler godoc
// @Summary Count tests
// @Tags tests
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Router /tests/count [get]
func (ctrl *TestController) CountTestsHandler(c *gin.Context) {
	count, err := ctrl.testSvc.Count()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CountResponse{Count: count})
}

// GetTestHandler godoc
// @Summary Get a test by ID with its questions
// @Tags tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {object} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id} [get]
func (ctrl *TestController) GetTestHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	resp, err := ctrl.testSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateTestHandler godoc
// @Summary Update a test's metadata
// @Tags tests
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param test body dto.UpdateTestRequest true "Fields to update"
// @Success 200 {object} dto.TestResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id} [put]
func (ctrl *TestController) UpdateTestHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.testSvc.Update(id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteTestHandler godoc
// @Summary Delete a test and its questions
// @Tags tests
// @Param id path int true "Test ID"
// @Success 204 "No Content"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID format"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id} [delete]
func (ctrl *TestController) DeleteTestHandler(c *gin.Context) {
	id, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	if err := ctrl.testSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddQuestionHandler godoc
// @Summary Add a question to a test
// @Tags tests
// @Accept json
// @Produce json
// @Param id path int true "Test ID"
// @Param question body dto.CreateQuestionRequest true "Question data"
// @Success 201 {object} dto.QuestionResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request body or ID"
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id}/questions [post]
func (ctrl *TestController) AddQuestionHandler(c *gin.Context) {
	testID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn().Err(err).Msg("Failed to bind CreateQuestionRequest")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.testSvc.AddQuestion(testID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// GetQuestionsHandler godoc
// @Summary List a test's questions
// @Tags tests
// @Produce json
// @Param id path int true "Test ID"
// @Success 200 {array} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Test not found"
// @Router /tests/{id}/questions [get]
func (ctrl *TestController) GetQuestionsHandler(c *gin.Context) {
	testID, ok := parseUintParam(c, "id")
	if !ok {
		return
	}
	questions, err := ctrl.testSvc.ListQuestions(testID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, questions)
}

// GetQuestionHandler godoc
// @Summary Get a question by ID
// @Tags tests
// @Produce json
// @Param question_id path int true "Question ID"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /tests/questions/{question_id} [get]
func (ctrl *TestController) GetQuestionHandler(c *gin.Context) {
	questionID, ok := parseUintParam(c, "question_id")
	if !ok {
		return
	}
	question, err := ctrl.testSvc.GetQuestion(questionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

// UpdateQuestionHandler godoc
// @Summary Update a question
// @Tags tests
// @Accept json
// @Produce json
// @Param question_id path int true "Question ID"
// @Param question body dto.UpdateQuestionRequest true "Fields to update"
// @Success 200 {object} dto.QuestionResponse
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /tests/questions/{question_id} [put]
func (ctrl *TestController) UpdateQuestionHandler(c *gin.Context) {
	questionID, ok := parseUintParam(c, "question_id")
	if !ok {
		return
	}
	var req dto.UpdateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}
	resp, err := ctrl.testSvc.UpdateQuestion(questionID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteQuestionHandler godoc
// @Summary Delete a question
// @Tags tests
// @Param question_id path int true "Question ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Router /tests/questions/{question_id} [delete]
func (ctrl *TestController) DeleteQuestionHandler(c *gin.Context) {
	questionID, ok := parseUintParam(c, "question_id")
	if !ok {
		return
	}
	if err := ctrl.testSvc.DeleteQuestion(questionID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
