package service

import (
	"errors"
	"fmt"
	"sync"

	"github.com/lshigami/Lapras/internal/dto"
	"github.com/lshigami/Lapras/internal/model"
	"github.com/lshigami/Lapras/internal/repository"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ResultService persists test attempts. Submit carries the one non-trivial
// guarantee in this API: resubmitting an unchanged answer set for the same
// (user, test) pair returns the already-stored attempt instead of creating a
// new row, and the parent row plus all its answer rows appear atomically.
type ResultService interface {
	Submit(req dto.CreateResultRequest) (*dto.ResultResponse, error)
	Update(id uint, req dto.UpdateResultRequest) (*dto.ResultResponse, error)
	GetByID(id uint) (*dto.ResultResponse, error)
	List(userID *uint) ([]dto.ResultResponse, error)
	ListByUser(userID uint) ([]dto.ResultResponse, error)
	Delete(id uint) error
	DeleteForUser(userID, id uint) error
	Progress(userID uint) (*dto.ProgressResponse, error)
	MeanScore(userID uint) (*dto.MeanScoreResponse, error)
}

type resultService struct {
	resultRepo repository.ResultRepository
	testRepo   repository.TestRepository
	db         *gorm.DB

	// Per-(user,test) locks serialize the duplicate-check-then-insert
	// sequence; without them two concurrent submissions could both observe
	// "no prior result" and insert twice. The map is never pruned: it is
	// bounded by the number of distinct (user, test) pairs, a few words
	// each, which stays negligible for any realistic catalogue.
	mu    sync.Mutex
	locks map[attemptKey]*sync.Mutex
}

type attemptKey struct {
	userID uint
	testID uint
}

func NewResultService(resultRepo repository.ResultRepository, testRepo repository.TestRepository, db *gorm.DB) ResultService {
	return &resultService{
		resultRepo: resultRepo,
		testRepo:   testRepo,
		db:         db,
		locks:      make(map[attemptKey]*sync.Mutex),
	}
}

func (s *resultService) lockFor(userID, testID uint) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := attemptKey{userID: userID, testID: testID}
	l, ok := s.locks[key]
	if !ok {
		l = &sync.Mutex{}
		s.locks[key] = l
	}
	return l
}

func (s *resultService) Submit(req dto.CreateResultRequest) (*dto.ResultResponse, error) {
	for _, a := range req.Answers {
		if a.QuestionID == 0 {
			return nil, fmt.Errorf("%w: answer is missing question_id", ErrValidation)
		}
	}

	lock := s.lockFor(req.UserID, req.TestID)
	lock.Lock()
	defer lock.Unlock()

	var stored model.TestResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Duplicate check against the most recent attempt for this pair.
		var latest model.TestResult
		lookupErr := tx.Where("user_id = ? AND test_id = ?", req.UserID, req.TestID).
			Order("id DESC").
			First(&latest).Error
		if lookupErr == nil {
			var existingAnswers []model.QuestionAnswer
			if err := tx.Where("test_result_id = ?", latest.ID).
				Order("id ASC").
				Find(&existingAnswers).Error; err != nil {
				return err
			}
			if sameAnswerSequences(existingAnswers, req.Answers) {
				log.Info().
					Uint("user_id", req.UserID).
					Uint("test_id", req.TestID).
					Uint("result_id", latest.ID).
					Msg("Duplicate submission detected, returning existing result")
				latest.Answers = existingAnswers
				stored = latest
				return nil
			}
		} else if !errors.Is(lookupErr, gorm.ErrRecordNotFound) {
			return lookupErr
		}

		result := model.TestResult{
			UserID:         req.UserID,
			TestID:         req.TestID,
			Score:          req.Score,
			TotalQuestions: req.TotalQuestions,
			CorrectAnswers: req.CorrectAnswers,
			PointsEarned:   req.PointsEarned,
			PointsPossible: req.PointsPossible,
		}
		for _, a := range req.Answers {
			result.Answers = append(result.Answers, model.QuestionAnswer{
				QuestionID:    a.QuestionID,
				UserAnswer:    encodeStringList(a.UserAnswer),
				IsCorrect:     a.IsCorrect,
				PartialCredit: a.PartialCredit,
			})
		}
		// Creates the parent and all children in input order; any failure
		// rolls the whole attempt back.
		if err := tx.Create(&result).Error; err != nil {
			return fmt.Errorf("failed to create test result: %w", err)
		}
		stored = result
		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("user_id", req.UserID).Uint("test_id", req.TestID).Msg("Result submission failed")
		return nil, err
	}

	resp := toResultResponse(&stored)
	return &resp, nil
}

// sameAnswerSequences compares stored answers against an incoming submission
// position by position. The match is order- and length-sensitive: only the
// exact same sequence of option lists counts as a duplicate.
func sameAnswerSequences(existing []model.QuestionAnswer, incoming []dto.AnswerCreate) bool {
	if len(existing) != len(incoming) {
		return false
	}
	for i := range existing {
		stored := decodeStringList(existing[i].UserAnswer)
		submitted := incoming[i].UserAnswer
		if submitted == nil {
			submitted = []string{}
		}
		if len(stored) != len(submitted) {
			return false
		}
		for j := range stored {
			if stored[j] != submitted[j] {
				return false
			}
		}
	}
	return true
}

func (s *resultService) Update(id uint, req dto.UpdateResultRequest) (*dto.ResultResponse, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var result model.TestResult
		if err := tx.First(&result, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: result %d", ErrNotFound, id)
			}
			return err
		}

		if req.Score != nil {
			result.Score = req.Score
		}
		if req.TotalQuestions != nil {
			result.TotalQuestions = req.TotalQuestions
		}
		if req.CorrectAnswers != nil {
			result.CorrectAnswers = req.CorrectAnswers
		}
		if req.PointsEarned != nil {
			result.PointsEarned = *req.PointsEarned
		}
		if req.PointsPossible != nil {
			result.PointsPossible = *req.PointsPossible
		}
		if err := tx.Save(&result).Error; err != nil {
			return err
		}

		// Replace-not-merge: a supplied answers list (even empty) wipes the
		// existing children and inserts the new ones in order.
		if req.Answers != nil {
			if err := tx.Where("test_result_id = ?", id).Delete(&model.QuestionAnswer{}).Error; err != nil {
				return err
			}
			for _, a := range *req.Answers {
				answer := model.QuestionAnswer{
					TestResultID:  id,
					QuestionID:    a.QuestionID,
					UserAnswer:    encodeStringList(a.UserAnswer),
					IsCorrect:     a.IsCorrect,
					PartialCredit: a.PartialCredit,
				}
				if err := tx.Create(&answer).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *resultService) GetByID(id uint) (*dto.ResultResponse, error) {
	result, err := s.resultRepo.FindByIDWithAnswers(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: result %d", ErrNotFound, id)
		}
		return nil, err
	}
	resp := toResultResponse(result)
	return &resp, nil
}

func (s *resultService) List(userID *uint) ([]dto.ResultResponse, error) {
	results, err := s.resultRepo.FindAll(userID)
	if err != nil {
		return nil, err
	}
	return toResultResponses(results), nil
}

func (s *resultService) ListByUser(userID uint) ([]dto.ResultResponse, error) {
	results, err := s.resultRepo.FindAllByUser(userID)
	if err != nil {
		return nil, err
	}
	return toResultResponses(results), nil
}

func (s *resultService) Delete(id uint) error {
	return s.deleteResult(id, nil)
}

func (s *resultService) DeleteForUser(userID, id uint) error {
	return s.deleteResult(id, &userID)
}

// deleteResult removes a result and its answers. The answer delete is
// explicit rather than left to the FK constraint so the cascade holds on
// every deployment path.
func (s *resultService) deleteResult(id uint, expectedUserID *uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var result model.TestResult
		if err := tx.First(&result, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: result %d", ErrNotFound, id)
			}
			return err
		}
		if expectedUserID != nil && result.UserID != *expectedUserID {
			return fmt.Errorf("%w: result %d does not belong to user %d", ErrForbidden, id, *expectedUserID)
		}
		if err := tx.Where("test_result_id = ?", id).Delete(&model.QuestionAnswer{}).Error; err != nil {
			return err
		}
		return tx.Delete(&result).Error
	})
}

func (s *resultService) Progress(userID uint) (*dto.ProgressResponse, error) {
	testsTaken, err := s.resultRepo.DistinctTestCount(userID)
	if err != nil {
		return nil, err
	}

	// A missing test catalogue degrades to zero rather than failing the call.
	totalTests, err := s.testRepo.Count()
	if err != nil {
		log.Warn().Err(err).Msg("Failed to count tests for progress, defaulting to 0")
		totalTests = 0
	}

	percent := 0.0
	if totalTests > 0 {
		percent = float64(testsTaken) / float64(totalTests) * 100.0
	}
	return &dto.ProgressResponse{
		UserID:     userID,
		TestsTaken: testsTaken,
		TotalTests: totalTests,
		Percent:    percent,
	}, nil
}

func (s *resultService) MeanScore(userID uint) (*dto.MeanScoreResponse, error) {
	mean, count, err := s.resultRepo.MeanScore(userID)
	if err != nil {
		return nil, err
	}
	return &dto.MeanScoreResponse{
		UserID:    userID,
		MeanScore: mean,
		Count:     count,
	}, nil
}

func toResultResponse(result *model.TestResult) dto.ResultResponse {
	answers := make([]dto.AnswerResponse, len(result.Answers))
	for i, a := range result.Answers {
		answers[i] = dto.AnswerResponse{
			ID:            a.ID,
			QuestionID:    a.QuestionID,
			UserAnswer:    decodeStringList(a.UserAnswer),
			IsCorrect:     a.IsCorrect,
			PartialCredit: a.PartialCredit,
		}
	}
	return dto.ResultResponse{
		ID:             result.ID,
		UserID:         result.UserID,
		TestID:         result.TestID,
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		CorrectAnswers: result.CorrectAnswers,
		PointsEarned:   result.PointsEarned,
		PointsPossible: result.PointsPossible,
		TakenAt:        result.TakenAt,
		Answers:        answers,
	}
}

func toResultResponses(results []model.TestResult) []dto.ResultResponse {
	out := make([]dto.ResultResponse, len(results))
	for i := range results {
		out[i] = toResultResponse(&results[i])
	}
	return out
}
