package model

import (
	"time"

	"gorm.io/gorm"
)

// TestResult is one graded attempt of a test by a user. It exclusively owns
// its QuestionAnswer rows: they are created together with the result and
// deleted with it.
type TestResult struct {
	ID             uint             `gorm:"primarykey" json:"id"`
	UserID         uint             `json:"user_id" gorm:"not null;index:idx_results_user_test"`
	TestID         uint             `json:"test_id" gorm:"not null;index:idx_results_user_test"`
	Score          *float64         `json:"score,omitempty"`
	TotalQuestions *int             `json:"total_questions,omitempty"`
	CorrectAnswers *int             `json:"correct_answers,omitempty"`
	PointsEarned   float64          `json:"points_earned" gorm:"default:0"`
	PointsPossible float64          `json:"points_possible" gorm:"default:0"`
	TakenAt        time.Time        `json:"taken_at" gorm:"autoCreateTime"`
	Answers        []QuestionAnswer `json:"answers,omitempty" gorm:"foreignKey:TestResultID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
	DeletedAt      gorm.DeletedAt   `gorm:"index" json:"-"`
}
