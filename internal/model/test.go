package model

import (
	"time"

	"gorm.io/gorm"
)

type Test struct {
	ID                      uint           `gorm:"primarykey" json:"id"`
	Title                   string         `json:"title" gorm:"not null"`
	Description             string         `json:"description,omitempty" gorm:"type:text"`
	CreatedBy               *uint          `json:"created_by,omitempty"`
	SupportsMultipleAnswers bool           `json:"supports_multiple_answers" gorm:"default:false"`
	Questions               []TestQuestion `json:"questions,omitempty" gorm:"foreignKey:TestID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt               time.Time      `json:"created_at"`
	UpdatedAt               time.Time      `json:"updated_at"`
	DeletedAt               gorm.DeletedAt `gorm:"index" json:"-"`
}
