package repository

import (
	"github.com/lshigami/Lapras/internal/model"
	"gorm.io/gorm"
)

type QuizletRepository interface {
	Create(item *model.Quizlet) error
	FindByID(id uint) (*model.Quizlet, error)
	FindAll(offset, limit int) ([]model.Quizlet, error)
	FindByLessonID(lessonID uint) ([]model.Quizlet, error)
	Update(item *model.Quizlet) error
	Delete(id uint) error
}

type quizletRepository struct {
	db *gorm.DB
}

func NewQuizletRepository(db *gorm.DB) QuizletRepository {
	return &quizletRepository{db: db}
}

func (r *quizletRepository) Create(item *model.Quizlet) error {
	return r.db.Create(item).Error
}

func (r *quizletRepository) FindByID(id uint) (*model.Quizlet, error) {
	var item model.Quizlet
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *quizletRepository) FindAll(offset, limit int) ([]model.Quizlet, error) {
	var items []model.Quizlet
	err := r.db.Offset(offset).Limit(limit).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *quizletRepository) FindByLessonID(lessonID uint) ([]model.Quizlet, error) {
	var items []model.Quizlet
	err := r.db.Where("lesson_id = ?", lessonID).Order("id ASC").Find(&items).Error
	return items, err
}

func (r *quizletRepository) Update(item *model.Quizlet) error {
	return r.db.Save(item).Error
}

func (r *quizletRepository) Delete(id uint) error {
	return r.db.Delete(&model.Quizlet{}, id).Error
}
