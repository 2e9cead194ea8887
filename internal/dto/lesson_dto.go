package dto

import "time"

type CreateLessonRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Content     string  `json:"content"`
	Subject     string  `json:"subject"`
	ContentURL  *string `json:"content_url" binding:"omitempty,url"`
	CreatedBy   *uint   `json:"created_by"`
}

type UpdateLessonRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Content     *string `json:"content"`
	Subject     *string `json:"subject"`
	ContentURL  *string `json:"content_url" binding:"omitempty,url"`
}

type LessonResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Content     string    `json:"content,omitempty"`
	Subject     string    `json:"subject,omitempty"`
	ContentURL  *string   `json:"content_url,omitempty"`
	CreatedBy   *uint     `json:"created_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// LessonWithTrackingResponse is LessonResponse plus the per-user learned flag.
type LessonWithTrackingResponse struct {
	LessonResponse
	IsLearned bool `json:"isLearned"`
}

type CreateTrackingRequest struct {
	UserID     uint `json:"user_id" binding:"required"`
	LessonID   uint `json:"lesson_id" binding:"required"`
	IsFinished bool `json:"is_finished"`
}

type UpdateTrackingRequest struct {
	IsFinished *bool `json:"is_finished"`
}

type TrackingResponse struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	LessonID   uint      `json:"lesson_id"`
	IsFinished bool      `json:"is_finished"`
	CreatedAt  time.Time `json:"created_at"`
}

type IsLearnedResponse struct {
	IsLearned bool `json:"isLearned"`
}
