package repository

import (
	"github.com/lshigami/Lapras/internal/model"
	"gorm.io/gorm"
)

type ResultRepository interface {
	FindByID(id uint) (*model.TestResult, error)
	FindByIDWithAnswers(id uint) (*model.TestResult, error)
	FindAll(userID *uint) ([]model.TestResult, error)
	FindAllByUser(userID uint) ([]model.TestResult, error)
	DistinctTestCount(userID uint) (int64, error)
	MeanScore(userID uint) (*float64, int64, error)
}

type resultRepository struct {
	db *gorm.DB
}

func NewResultRepository(db *gorm.DB) ResultRepository {
	return &resultRepository{db: db}
}

// answersInOrder preloads children ordered by insertion id; that order is the
// contract for both display and duplicate comparison.
func answersInOrder(db *gorm.DB) *gorm.DB {
	return db.Order("question_answers.id ASC")
}

func (r *resultRepository) FindByID(id uint) (*model.TestResult, error) {
	var result model.TestResult
	if err := r.db.First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindByIDWithAnswers(id uint) (*model.TestResult, error) {
	var result model.TestResult
	if err := r.db.Preload("Answers", answersInOrder).First(&result, id).Error; err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *resultRepository) FindAll(userID *uint) ([]model.TestResult, error) {
	var results []model.TestResult
	query := r.db.Preload("Answers", answersInOrder)
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}
	err := query.Order("test_results.id ASC").Find(&results).Error
	return results, err
}

func (r *resultRepository) FindAllByUser(userID uint) ([]model.TestResult, error) {
	var results []model.TestResult
	err := r.db.Preload("Answers", answersInOrder).
		Where("user_id = ?", userID).
		Order("test_results.id ASC").
		Find(&results).Error
	return results, err
}

func (r *resultRepository) DistinctTestCount(userID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.TestResult{}).
		Where("user_id = ?", userID).
		Distinct("test_id").
		Count(&count).Error
	return count, err
}

func (r *resultRepository) MeanScore(userID uint) (*float64, int64, error) {
	var row struct {
		Mean  *float64
		Count int64
	}
	err := r.db.Model(&model.TestResult{}).
		Select("AVG(score) AS mean, COUNT(id) AS count").
		Where("user_id = ?", userID).
		Scan(&row).Error
	if err != nil {
		return nil, 0, err
	}
	return row.Mean, row.Count, nil
}
