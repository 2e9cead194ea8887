package model

import (
	"time"

	"gorm.io/gorm"
)

// LessonTracking marks that a user has opened a lesson. Presence of a row is
// what the "learned" checks key on, independent of IsFinished.
type LessonTracking struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	UserID     uint           `json:"user_id" gorm:"not null;index"`
	LessonID   uint           `json:"lesson_id" gorm:"not null;index"`
	IsFinished bool           `json:"is_finished" gorm:"default:false"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
