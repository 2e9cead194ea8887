package service

import (
	"testing"

	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) TestService {
	db := newTestDB(t)
	return NewTestService(repository.NewTestRepository(db), repository.NewQuestionRepository(db), db)
}

func TestAddQuestionRoundTripsCorrectOptions(t *testing.T) {
	svc := newTestService(t)

	test, err := svc.Create(dto.CreateTestRequest{Title: "Multi", SupportsMultipleAnswers: true})
	require.NoError(t, err)

	question, err := svc.AddQuestion(test.ID, dto.CreateQuestionRequest{
		QuestionText:   "Pick two",
		OptionA:        ptr("first"),
		OptionB:        ptr("second"),
		QuestionType:   "multiple",
		CorrectOptions: []string{"A", "B"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, question.CorrectOptions)
	assert.Equal(t, "multiple", question.QuestionType)

	fetched, err := svc.GetByID(test.ID)
	require.NoError(t, err)
	require.Len(t, fetched.Questions, 1)
	assert.Equal(t, []string{"A", "B"}, fetched.Questions[0].CorrectOptions)
}

func TestAddQuestionUnknownTest(t *testing.T) {
	svc := newTestService(t)
	_, err := svc.AddQuestion(99, dto.CreateQuestionRequest{QuestionText: "q"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTestRemovesQuestions(t *testing.T) {
	svc := newTestService(t)

	test, err := svc.Create(dto.CreateTestRequest{Title: "Doomed"})
	require.NoError(t, err)
	question, err := svc.AddQuestion(test.ID, dto.CreateQuestionRequest{QuestionText: "q"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(test.ID))

	_, err = svc.GetByID(test.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = svc.GetQuestion(question.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateQuestionReplacesOptions(t *testing.T) {
	svc := newTestService(t)

	test, err := svc.Create(dto.CreateTestRequest{Title: "T"})
	require.NoError(t, err)
	question, err := svc.AddQuestion(test.ID, dto.CreateQuestionRequest{
		QuestionText:   "q",
		CorrectOptions: []string{"A"},
	})
	require.NoError(t, err)

	updated, err := svc.UpdateQuestion(question.ID, dto.UpdateQuestionRequest{
		CorrectOptions: ptr([]string{"C", "D"}),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"C", "D"}, updated.CorrectOptions)
}
