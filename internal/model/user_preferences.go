package model

import (
	"time"

	"gorm.io/gorm"
)

type UserPreferences struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `json:"user_id" gorm:"not null;index"`
	PreferredMajor *string        `json:"preferred_major,omitempty"`
	CurrentScore   *float64       `json:"current_score,omitempty"`
	ExpectedScore  *float64       `json:"expected_score,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
