package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/model"
	"github.com/lshigami/Lapras/internal/repository"
	"github.com/lshigami/Lapras/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newResultRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Test{}, &model.TestResult{}, &model.QuestionAnswer{}))

	svc := service.NewResultService(repository.NewResultRepository(db), repository.NewTestRepository(db), db)
	router := gin.New()
	NewResultController(svc).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func postResult(t *testing.T, router *gin.Engine, body dto.CreateResultRequest) dto.ResultResponse {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/results", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp dto.ResultResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSubmitEndpointDeduplicates(t *testing.T) {
	router := newResultRouter(t)

	body := dto.CreateResultRequest{
		UserID: 1,
		TestID: 1,
		Answers: []dto.AnswerCreate{
			{QuestionID: 1, UserAnswer: []string{"A"}},
		},
	}
	first := postResult(t, router, body)
	second := postResult(t, router, body)
	assert.Equal(t, first.ID, second.ID)
}

func TestSubmitEndpointRejectsMissingUser(t *testing.T) {
	router := newResultRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/results", bytes.NewBufferString(`{"test_id":1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetResultNotFoundStatus(t *testing.T) {
	router := newResultRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/results/999", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)

	var errResp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errResp))
	assert.NotEmpty(t, errResp.Error)
}

func TestOwnerScopedDeleteStatuses(t *testing.T) {
	router := newResultRouter(t)

	created := postResult(t, router, dto.CreateResultRequest{
		UserID: 7,
		TestID: 1,
		Answers: []dto.AnswerCreate{
			{QuestionID: 1, UserAnswer: []string{"A"}},
		},
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/v1/results/user/9/%d", created.ID), nil))
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/v1/results/user/7/%d", created.ID), nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete,
		fmt.Sprintf("/api/v1/results/user/7/%d", created.ID), nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestInvalidIDFormatStatus(t *testing.T) {
	router := newResultRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/results/abc", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
