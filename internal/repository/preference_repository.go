package repository

import (
	"github.com/lshigami/Lapras/internal/model"
	"gorm.io/gorm"
)

type PreferenceRepository interface {
	Create(pref *model.UserPreferences) error
	FindByID(id uint) (*model.UserPreferences, error)
	FindAll(offset, limit int) ([]model.UserPreferences, error)
	Update(pref *model.UserPreferences) error
	Delete(id uint) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) Create(pref *model.UserPreferences) error {
	return r.db.Create(pref).Error
}

func (r *preferenceRepository) FindByID(id uint) (*model.UserPreferences, error) {
	var pref model.UserPreferences
	if err := r.db.First(&pref, id).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

func (r *preferenceRepository) FindAll(offset, limit int) ([]model.UserPreferences, error) {
	var prefs []model.UserPreferences
	err := r.db.Offset(offset).Limit(limit).Order("id ASC").Find(&prefs).Error
	return prefs, err
}

func (r *preferenceRepository) Update(pref *model.UserPreferences) error {
	return r.db.Save(pref).Error
}

func (r *preferenceRepository) Delete(id uint) error {
	return r.db.Delete(&model.UserPreferences{}, id).Error
}
