package model

import (
	"time"

	"gorm.io/gorm"
)

type Quizlet struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	LessonID  uint           `json:"lesson_id" gorm:"not null;index"`
	Question  string         `json:"question" gorm:"not null;type:text"`
	Answer    string         `json:"answer" gorm:"not null;type:text"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
