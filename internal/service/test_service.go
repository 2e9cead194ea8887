package service

import (
	"errors"
	"fmt"

	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/model"
	"github.com/lshigami/Lapras/internal/repository"
	"gorm.io/gorm"
)

// TestService manages tests and their question banks. Question option lists
// share the JSON-array codec used for submitted answers.
type TestService interface {
	Create(req dto.CreateTestRequest) (*dto.TestResponse, error)
	GetByID(id uint) (*dto.TestResponse, error)
	List() ([]dto.TestResponse, error)
	Count() (int64, error)
	Update(id uint, req dto.UpdateTestRequest) (*dto.TestResponse, error)
	Delete(id uint) error

	AddQuestion(testID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error)
	ListQuestions(testID uint) ([]dto.QuestionResponse, error)
	GetQuestion(questionID uint) (*dto.QuestionResponse, error)
	UpdateQuestion(questionID uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error)
	DeleteQuestion(questionID uint) error
}

type testService struct {
	testRepo     repository.TestRepository
	questionRepo repository.QuestionRepository
	db           *gorm.DB
}

func NewTestService(testRepo repository.TestRepository, questionRepo repository.QuestionRepository, db *gorm.DB) TestService {
	return &testService{testRepo: testRepo, questionRepo: questionRepo, db: db}
}

func (s *testService) Create(req dto.CreateTestRequest) (*dto.TestResponse, error) {
	test := model.Test{
		Title:                   req.Title,
		Description:             req.Description,
		CreatedBy:               req.CreatedBy,
		SupportsMultipleAnswers: req.SupportsMultipleAnswers,
	}
	if err := s.testRepo.Create(&test); err != nil {
		return nil, err
	}
	resp := toTestResponse(&test)
	return &resp, nil
}

func (s *testService) GetByID(id uint) (*dto.TestResponse, error) {
	test, err := s.testRepo.FindByIDWithQuestions(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test %d", ErrNotFound, id)
		}
		return nil, err
	}
	resp := toTestResponse(test)
	return &resp, nil
}

func (s *testService) List() ([]dto.TestResponse, error) {
	tests, err := s.testRepo.FindAllWithQuestions()
	if err != nil {
		return nil, err
	}
	out := make([]dto.TestResponse, len(tests))
	for i := range tests {
		out[i] = toTestResponse(&tests[i])
	}
	return out, nil
}

func (s *testService) Count() (int64, error) {
	return s.testRepo.Count()
}

func (s *testService) Update(id uint, req dto.UpdateTestRequest) (*dto.TestResponse, error) {
	test, err := s.testRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test %d", ErrNotFound, id)
		}
		return nil, err
	}
	if req.Title != nil {
		test.Title = *req.Title
	}
	if req.Description != nil {
		test.Description = *req.Description
	}
	if req.SupportsMultipleAnswers != nil {
		test.SupportsMultipleAnswers = *req.SupportsMultipleAnswers
	}
	if err := s.testRepo.Update(test); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

// Delete removes a test together with its questions.
func (s *testService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var test model.Test
		if err := tx.First(&test, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: test %d", ErrNotFound, id)
			}
			return err
		}
		if err := tx.Where("test_id = ?", id).Delete(&model.TestQuestion{}).Error; err != nil {
			return err
		}
		return tx.Delete(&test).Error
	})
}

func (s *testService) AddQuestion(testID uint, req dto.CreateQuestionRequest) (*dto.QuestionResponse, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test %d", ErrNotFound, testID)
		}
		return nil, err
	}

	question := model.TestQuestion{
		TestID:         testID,
		QuestionText:   req.QuestionText,
		OptionA:        req.OptionA,
		OptionB:        req.OptionB,
		OptionC:        req.OptionC,
		OptionD:        req.OptionD,
		CorrectOptions: encodeStringList(req.CorrectOptions),
	}
	if req.QuestionType != "" {
		question.QuestionType = req.QuestionType
	}
	if req.Points != nil {
		question.Points = *req.Points
	}
	if err := s.questionRepo.Create(&question); err != nil {
		return nil, err
	}
	resp := toQuestionResponse(&question)
	return &resp, nil
}

func (s *testService) ListQuestions(testID uint) ([]dto.QuestionResponse, error) {
	if _, err := s.testRepo.FindByID(testID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: test %d", ErrNotFound, testID)
		}
		return nil, err
	}
	questions, err := s.questionRepo.FindByTestID(testID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.QuestionResponse, len(questions))
	for i := range questions {
		out[i] = toQuestionResponse(&questions[i])
	}
	return out, nil
}

func (s *testService) GetQuestion(questionID uint) (*dto.QuestionResponse, error) {
	question, err := s.findQuestion(questionID)
	if err != nil {
		return nil, err
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *testService) UpdateQuestion(questionID uint, req dto.UpdateQuestionRequest) (*dto.QuestionResponse, error) {
	question, err := s.findQuestion(questionID)
	if err != nil {
		return nil, err
	}
	if req.QuestionText != nil {
		question.QuestionText = *req.QuestionText
	}
	if req.OptionA != nil {
		question.OptionA = req.OptionA
	}
	if req.OptionB != nil {
		question.OptionB = req.OptionB
	}
	if req.OptionC != nil {
		question.OptionC = req.OptionC
	}
	if req.OptionD != nil {
		question.OptionD = req.OptionD
	}
	if req.QuestionType != nil {
		question.QuestionType = *req.QuestionType
	}
	if req.CorrectOptions != nil {
		question.CorrectOptions = encodeStringList(*req.CorrectOptions)
	}
	if req.Points != nil {
		question.Points = *req.Points
	}
	if err := s.questionRepo.Update(question); err != nil {
		return nil, err
	}
	resp := toQuestionResponse(question)
	return &resp, nil
}

func (s *testService) DeleteQuestion(questionID uint) error {
	if _, err := s.findQuestion(questionID); err != nil {
		return err
	}
	return s.questionRepo.Delete(questionID)
}

func (s *testService) findQuestion(questionID uint) (*model.TestQuestion, error) {
	question, err := s.questionRepo.FindByID(questionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: question %d", ErrNotFound, questionID)
		}
		return nil, err
	}
	return question, nil
}

func toQuestionResponse(q *model.TestQuestion) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:             q.ID,
		QuestionText:   q.QuestionText,
		OptionA:        q.OptionA,
		OptionB:        q.OptionB,
		OptionC:        q.OptionC,
		OptionD:        q.OptionD,
		QuestionType:   q.QuestionType,
		CorrectOptions: decodeStringList(q.CorrectOptions),
		Points:         q.Points,
	}
}

func toTestResponse(test *model.Test) dto.TestResponse {
	questions := make([]dto.QuestionResponse, len(test.Questions))
	for i := range test.Questions {
		questions[i] = toQuestionResponse(&test.Questions[i])
	}
	return dto.TestResponse{
		ID:                      test.ID,
		Title:                   test.Title,
		Description:             test.Description,
		CreatedBy:               test.CreatedBy,
		SupportsMultipleAnswers: test.SupportsMultipleAnswers,
		CreatedAt:               test.CreatedAt,
		Questions:               questions,
	}
}
