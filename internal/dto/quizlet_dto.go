package dto

import "time"

type CreateQuizletRequest struct {
	LessonID uint   `json:"lesson_id" binding:"required"`
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
}

type UpdateQuizletRequest struct {
	Question *string `json:"question"`
	Answer   *string `json:"answer"`
}

type QuizletResponse struct {
	ID        uint      `json:"id"`
	LessonID  uint      `json:"lesson_id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
