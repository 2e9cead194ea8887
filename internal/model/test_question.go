package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TestQuestion struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	TestID         uint           `json:"test_id" gorm:"not null;index"`
	QuestionText   string         `json:"question_text" gorm:"not null;type:text"`
	OptionA        *string        `json:"option_a,omitempty"`
	OptionB        *string        `json:"option_b,omitempty"`
	OptionC        *string        `json:"option_c,omitempty"`
	OptionD        *string        `json:"option_d,omitempty"`
	QuestionType   string         `json:"question_type" gorm:"default:'single'"` // "single", "multiple"
	CorrectOptions datatypes.JSON `json:"correct_options,omitempty"`             // serialized []string
	Points         float64        `json:"points" gorm:"default:1.0"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}
