package model

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// QuestionAnswer is a single answered question inside a TestResult. UserAnswer
// is an ordered list of selected options serialized as a JSON array; insertion
// order matters, it is what the duplicate-submission comparison runs over.
type QuestionAnswer struct {
	ID            uint           `gorm:"primarykey" json:"id"`
	TestResultID  uint           `json:"test_result_id" gorm:"not null;index"`
	QuestionID    uint           `json:"question_id" gorm:"not null"`
	UserAnswer    datatypes.JSON `json:"user_answer,omitempty"`
	IsCorrect     bool           `json:"is_correct" gorm:"default:false"`
	PartialCredit float64        `json:"partial_credit" gorm:"default:0"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}
