package service

import (
	"testing"

	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/model"
	"github.com/lshigami/Lapras/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func ptr[T any](v T) *T {
	return &v
}

func newResultService(t *testing.T) (ResultService, *gorm.DB) {
	db := newTestDB(t)
	svc := NewResultService(repository.NewResultRepository(db), repository.NewTestRepository(db), db)
	return svc, db
}

func submission(userID, testID uint) dto.CreateResultRequest {
	return dto.CreateResultRequest{
		UserID:         userID,
		TestID:         testID,
		Score:          ptr(0.8),
		TotalQuestions: ptr(2),
		CorrectAnswers: ptr(1),
		PointsEarned:   1,
		PointsPossible: 2,
		Answers: []dto.AnswerCreate{
			{QuestionID: 10, UserAnswer: []string{"A"}, IsCorrect: true},
			{QuestionID: 11, UserAnswer: []string{"B", "C"}, IsCorrect: false},
		},
	}
}

func TestSubmitIdempotentResubmission(t *testing.T) {
	svc, db := newResultService(t)

	first, err := svc.Submit(submission(1, 1))
	require.NoError(t, err)

	second, err := svc.Submit(submission(1, 1))
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.TestResult{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestSubmitRollsBackParentWhenAnswerInsertFails(t *testing.T) {
	svc, db := newResultService(t)

	// Losing the answers table makes the child inserts fail after the
	// parent row is written, so the whole transaction must roll back.
	require.NoError(t, db.Migrator().DropTable(&model.QuestionAnswer{}))

	_, err := svc.Submit(submission(1, 1))
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Unscoped().Model(&model.TestResult{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestSubmitDifferentAnswersCreatesNewResult(t *testing.T) {
	svc, db := newResultService(t)

	first, err := svc.Submit(submission(1, 1))
	require.NoError(t, err)

	changed := submission(1, 1)
	changed.Answers[1].UserAnswer = []string{"D"}
	second, err := svc.Submit(changed)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&model.TestResult{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSubmitOrderSensitiveComparison(t *testing.T) {
	svc, db := newResultService(t)

	_, err := svc.Submit(submission(1, 1))
	require.NoError(t, err)

	// Same options for one answer but in reverse order is a different attempt.
	reordered := submission(1, 1)
	reordered.Answers[1].UserAnswer = []string{"C", "B"}
	_, err = svc.Submit(reordered)
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.TestResult{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestSubmitOtherUserNotDeduplicated(t *testing.T) {
	svc, _ := newResultService(t)

	first, err := svc.Submit(submission(1, 1))
	require.NoError(t, err)

	second, err := svc.Submit(submission(2, 1))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestSubmitPreservesAnswerOrder(t *testing.T) {
	svc, _ := newResultService(t)

	req := submission(1, 1)
	req.Answers = []dto.AnswerCreate{
		{QuestionID: 5, UserAnswer: []string{"A"}},
		{QuestionID: 2, UserAnswer: []string{"B"}},
	}
	created, err := svc.Submit(req)
	require.NoError(t, err)

	fetched, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Answers, 2)
	assert.EqualValues(t, 5, fetched.Answers[0].QuestionID)
	assert.EqualValues(t, 2, fetched.Answers[1].QuestionID)
}

func TestSubmitValidationRejectedBeforeWrite(t *testing.T) {
	svc, db := newResultService(t)

	req := submission(1, 1)
	req.Answers[0].QuestionID = 0
	_, err := svc.Submit(req)
	require.ErrorIs(t, err, ErrValidation)

	var count int64
	require.NoError(t, db.Model(&model.TestResult{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestUpdateReplacesAnswersWholesale(t *testing.T) {
	svc, db := newResultService(t)

	created, err := svc.Submit(submission(1, 1))
	require.NoError(t, err)
	require.Len(t, created.Answers, 2)

	updated, err := svc.Update(created.ID, dto.UpdateResultRequest{
		Answers: &[]dto.AnswerCreate{
			{QuestionID: 99, UserAnswer: []string{"D"}, IsCorrect: true},
		},
	})
	require.NoError(t, err)
	require.Len(t, updated.Answers, 1)
	assert.EqualValues(t, 99, updated.Answers[0].QuestionID)

	var count int64
	require.NoError(t, db.Model(&model.QuestionAnswer{}).Where("test_result_id = ?", created.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestUpdateNilAnswersLeavesChildrenUntouched(t *testing.T) {
	svc, _ := newResultService(t)

	created, err := svc.Submit(submission(1, 1))
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, dto.UpdateResultRequest{Score: ptr(0.95)})
	require.NoError(t, err)
	require.NotNil(t, updated.Score)
	assert.InDelta(t, 0.95, *updated.Score, 1e-9)
	assert.Len(t, updated.Answers, 2)
}

func TestUpdateEmptyAnswersClearsChildren(t *testing.T) {
	svc, _ := newResultService(t)

	created, err := svc.Submit(submission(1, 1))
	require.NoError(t, err)

	updated, err := svc.Update(created.ID, dto.UpdateResultRequest{Answers: &[]dto.AnswerCreate{}})
	require.NoError(t, err)
	assert.Empty(t, updated.Answers)
}

func TestUpdateNotFound(t *testing.T) {
	svc, _ := newResultService(t)
	_, err := svc.Update(404, dto.UpdateResultRequest{Score: ptr(0.5)})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRemovesAnswers(t *testing.T) {
	svc, db := newResultService(t)

	created, err := svc.Submit(submission(1, 1))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(created.ID))

	_, err = svc.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Unscoped().Model(&model.QuestionAnswer{}).
		Where("test_result_id = ? AND deleted_at IS NULL", created.ID).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestDeleteForUserForbiddenLeavesResult(t *testing.T) {
	svc, _ := newResultService(t)

	created, err := svc.Submit(submission(1, 1))
	require.NoError(t, err)

	err = svc.DeleteForUser(2, created.ID)
	require.ErrorIs(t, err, ErrForbidden)

	fetched, err := svc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)
}

func TestDeleteForUserOwner(t *testing.T) {
	svc, _ := newResultService(t)

	created, err := svc.Submit(submission(1, 1))
	require.NoError(t, err)

	require.NoError(t, svc.DeleteForUser(1, created.ID))
	_, err = svc.GetByID(created.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByIDNotFound(t *testing.T) {
	svc, _ := newResultService(t)
	_, err := svc.GetByID(12345)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByUserEmpty(t *testing.T) {
	svc, _ := newResultService(t)
	results, err := svc.ListByUser(7)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestListFiltersByUser(t *testing.T) {
	svc, _ := newResultService(t)

	_, err := svc.Submit(submission(1, 1))
	require.NoError(t, err)
	_, err = svc.Submit(submission(2, 1))
	require.NoError(t, err)

	all, err := svc.List(nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := svc.List(ptr(uint(1)))
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.EqualValues(t, 1, mine[0].UserID)
}

func TestMeanScore(t *testing.T) {
	svc, _ := newResultService(t)

	first := submission(1, 1)
	first.Score = ptr(0.5)
	_, err := svc.Submit(first)
	require.NoError(t, err)

	second := submission(1, 2)
	second.Score = ptr(0.9)
	_, err = svc.Submit(second)
	require.NoError(t, err)

	mean, err := svc.MeanScore(1)
	require.NoError(t, err)
	require.NotNil(t, mean.MeanScore)
	assert.InDelta(t, 0.7, *mean.MeanScore, 1e-9)
	assert.EqualValues(t, 2, mean.Count)
}

func TestMeanScoreNoResults(t *testing.T) {
	svc, _ := newResultService(t)

	mean, err := svc.MeanScore(1)
	require.NoError(t, err)
	assert.Nil(t, mean.MeanScore)
	assert.EqualValues(t, 0, mean.Count)
}

func TestProgress(t *testing.T) {
	svc, db := newResultService(t)

	for i := 0; i < 5; i++ {
		require.NoError(t, db.Create(&model.Test{Title: "t"}).Error)
	}
	_, err := svc.Submit(submission(1, 1))
	require.NoError(t, err)
	_, err = svc.Submit(submission(1, 2))
	require.NoError(t, err)

	progress, err := svc.Progress(1)
	require.NoError(t, err)
	assert.EqualValues(t, 2, progress.TestsTaken)
	assert.EqualValues(t, 5, progress.TotalTests)
	assert.InDelta(t, 40.0, progress.Percent, 1e-9)
}

func TestProgressNoTests(t *testing.T) {
	svc, _ := newResultService(t)

	progress, err := svc.Progress(1)
	require.NoError(t, err)
	assert.EqualValues(t, 0, progress.TotalTests)
	assert.InDelta(t, 0.0, progress.Percent, 1e-9)
}
