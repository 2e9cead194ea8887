package dto

import "time"

// AnswerCreate carries one answered question inside a result submission.
// UserAnswer keeps the order the student selected options in.
type AnswerCreate struct {
	QuestionID    uint     `json:"question_id" binding:"required"`
	UserAnswer    []string `json:"user_answer"`
	IsCorrect     bool     `json:"is_correct"`
	PartialCredit float64  `json:"partial_credit" binding:"omitempty,min=0,max=1"`
}

type CreateResultRequest struct {
	UserID         uint           `json:"user_id" binding:"required"`
	TestID         uint           `json:"test_id" binding:"required"`
	Score          *float64       `json:"score"`
	TotalQuestions *int           `json:"total_questions" binding:"omitempty,min=0"`
	CorrectAnswers *int           `json:"correct_answers" binding:"omitempty,min=0"`
	PointsEarned   float64        `json:"points_earned" binding:"omitempty,min=0"`
	PointsPossible float64        `json:"points_possible" binding:"omitempty,min=0"`
	Answers        []AnswerCreate `json:"answers" binding:"omitempty,dive"`
}

// UpdateResultRequest patches scalar fields; only non-nil fields change.
// A non-nil Answers list (including an empty one) replaces the whole child
// set, there is no per-answer patching.
type UpdateResultRequest struct {
	Score          *float64        `json:"score"`
	TotalQuestions *int            `json:"total_questions" binding:"omitempty,min=0"`
	CorrectAnswers *int            `json:"correct_answers" binding:"omitempty,min=0"`
	PointsEarned   *float64        `json:"points_earned" binding:"omitempty,min=0"`
	PointsPossible *float64        `json:"points_possible" binding:"omitempty,min=0"`
	Answers        *[]AnswerCreate `json:"answers" binding:"omitempty,dive"`
}

type AnswerResponse struct {
	ID            uint     `json:"id"`
	QuestionID    uint     `json:"question_id"`
	UserAnswer    []string `json:"user_answer"`
	IsCorrect     bool     `json:"is_correct"`
	PartialCredit float64  `json:"partial_credit"`
}

type ResultResponse struct {
	ID             uint             `json:"id"`
	UserID         uint             `json:"user_id"`
	TestID         uint             `json:"test_id"`
	Score          *float64         `json:"score,omitempty"`
	TotalQuestions *int             `json:"total_questions,omitempty"`
	CorrectAnswers *int             `json:"correct_answers,omitempty"`
	PointsEarned   float64          `json:"points_earned"`
	PointsPossible float64          `json:"points_possible"`
	TakenAt        time.Time        `json:"taken_at"`
	Answers        []AnswerResponse `json:"answers"`
}

type ProgressResponse struct {
	UserID     uint    `json:"user_id"`
	TestsTaken int64   `json:"tests_taken"`
	TotalTests int64   `json:"total_tests"`
	Percent    float64 `json:"percent"`
}

type MeanScoreResponse struct {
	UserID    uint     `json:"user_id"`
	MeanScore *float64 `json:"mean_score"`
	Count     int64    `json:"count"`
}
