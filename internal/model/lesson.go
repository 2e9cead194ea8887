package model

import (
	"time"

	"gorm.io/gorm"
)

type Lesson struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `json:"title" gorm:"not null"`
	Description string         `json:"description,omitempty"`
	Content     string         `json:"content,omitempty" gorm:"type:text"`
	Subject     string         `json:"subject,omitempty"`
	ContentURL  *string        `json:"content_url,omitempty"`
	CreatedBy   *uint          `json:"created_by,omitempty" gorm:"index"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
