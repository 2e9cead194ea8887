package repository

import (
	"github.com/lshigami/Lapras/internal/model"
	"gorm.io/gorm"
)

type TrackingRepository interface {
	Create(entry *model.LessonTracking) error
	FindByID(id uint) (*model.LessonTracking, error)
	FindAll(offset, limit int) ([]model.LessonTracking, error)
	FindByUser(userID uint, offset, limit int) ([]model.LessonTracking, error)
	FindByUserAndLesson(userID, lessonID uint) (*model.LessonTracking, error)
	Update(entry *model.LessonTracking) error
	Delete(id uint) error
}

type trackingRepository struct {
	db *gorm.DB
}

func NewTrackingRepository(db *gorm.DB) TrackingRepository {
	return &trackingRepository{db: db}
}

func (r *trackingRepository) Create(entry *model.LessonTracking) error {
	return r.db.Create(entry).Error
}

func (r *trackingRepository) FindByID(id uint) (*model.LessonTracking, error) {
	var entry model.LessonTracking
	if err := r.db.First(&entry, id).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *trackingRepository) FindAll(offset, limit int) ([]model.LessonTracking, error) {
	var entries []model.LessonTracking
	err := r.db.Offset(offset).Limit(limit).Order("id ASC").Find(&entries).Error
	return entries, err
}

func (r *trackingRepository) FindByUser(userID uint, offset, limit int) ([]model.LessonTracking, error) {
	var entries []model.LessonTracking
	err := r.db.Where("user_id = ?", userID).Offset(offset).Limit(limit).Order("id ASC").Find(&entries).Error
	return entries, err
}

func (r *trackingRepository) FindByUserAndLesson(userID, lessonID uint) (*model.LessonTracking, error) {
	var entry model.LessonTracking
	err := r.db.Where("user_id = ? AND lesson_id = ?", userID, lessonID).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *trackingRepository) Update(entry *model.LessonTracking) error {
	return r.db.Save(entry).Error
}

func (r *trackingRepository) Delete(id uint) error {
	return r.db.Delete(&model.LessonTracking{}, id).Error
}
