package repository

import (
	"github.com/lshigami/Lapras/internal/model"
	"gorm.io/gorm"
)

type QuestionRepository interface {
	Create(question *model.TestQuestion) error
	FindByID(id uint) (*model.TestQuestion, error)
	FindByTestID(testID uint) ([]model.TestQuestion, error)
	Update(question *model.TestQuestion) error
	Delete(id uint) error
}

type questionRepository struct {
	db *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) QuestionRepository {
	return &questionRepository{db: db}
}

func (r *questionRepository) Create(question *model.TestQuestion) error {
	return r.db.Create(question).Error
}

func (r *questionRepository) FindByID(id uint) (*model.TestQuestion, error) {
	var question model.TestQuestion
	if err := r.db.First(&question, id).Error; err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *questionRepository) FindByTestID(testID uint) ([]model.TestQuestion, error) {
	var questions []model.TestQuestion
	err := r.db.Where("test_id = ?", testID).Order("id ASC").Find(&questions).Error
	return questions, err
}

func (r *questionRepository) Update(question *model.TestQuestion) error {
	return r.db.Save(question).Error
}

func (r *questionRepository) Delete(id uint) error {
	return r.db.Delete(&model.TestQuestion{}, id).Error
}
