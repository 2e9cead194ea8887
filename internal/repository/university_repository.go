package repository

import (
	"github.com/lshigami/Lapras/internal/model"
	"gorm.io/gorm"
)

type UniversityRepository interface {
	Create(univ *model.University) error
	FindByID(id uint) (*model.University, error)
	FindAll(offset, limit int) ([]model.University, error)
	Count() (int64, error)
	Update(univ *model.University) error
	Delete(id uint) error
}

type universityRepository struct {
	db *gorm.DB
}

func NewUniversityRepository(db *gorm.DB) UniversityRepository {
	return &universityRepository{db: db}
}

func (r *universityRepository) Create(univ *model.University) error {
	return r.db.Create(univ).Error
}

func (r *universityRepository) FindByID(id uint) (*model.University, error) {
	var univ model.University
	if err := r.db.First(&univ, id).Error; err != nil {
		return nil, err
	}
	return &univ, nil
}

func (r *universityRepository) FindAll(offset, limit int) ([]model.University, error) {
	var univs []model.University
	err := r.db.Offset(offset).Limit(limit).Order("id ASC").Find(&univs).Error
	return univs, err
}

func (r *universityRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.University{}).Count(&count).Error
	return count, err
}

func (r *universityRepository) Update(univ *model.University) error {
	return r.db.Save(univ).Error
}

func (r *universityRepository) Delete(id uint) error {
	return r.db.Delete(&model.University{}, id).Error
}
